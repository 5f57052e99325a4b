package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// typeCall implements spec §4.2.4's eight-step call resolution.
func (c *checker) typeCall(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.Call(e)
	span := c.mod.Exprs.Get(e).Span

	fnID, recv, ok := c.resolveCallee(data.Callee, fid)
	if !ok {
		for _, a := range data.Args {
			c.typeOfExpr(a.Expr, fid)
		}
		return types.NoType
	}
	decl, _ := c.table.Func(fnID)

	argTypes := make([]types.TypeId, len(data.Args))
	for i, a := range data.Args {
		argTypes[i] = c.typeOfExpr(a.Expr, fid)
	}

	c.checkArgCount(decl, len(data.Args), span)
	for i, at := range argTypes {
		if i >= len(decl.Params) {
			break
		}
		c.checkExpectedCallArg(decl, at, decl.Params[i].Type, span)
	}

	retTyp := decl.Return
	if len(decl.GenericNames) > 0 {
		var concrete []types.TypeId
		if len(data.ExplicitTypeArgs) > 0 {
			concrete = data.ExplicitTypeArgs
		} else {
			concrete = c.inferFnGenericTypes(decl, argTypes, span)
		}
		if c.table.RegisterFnConcreteTypes(fnID, concrete) {
			c.needsRecheck[fnID] = true
		}
		retTyp = c.table.ResolveGenericToConcrete(decl.Return, decl.GenericNames, concrete)
	}

	c.checkCallAttrs(decl, span)
	_ = recv

	if data.OrBlock.IsValid() {
		return c.checkOrBlock(data.OrBlock, retTyp, fid, span)
	}
	return retTyp
}

// resolveCallee implements step 1: direct free function, method through the
// receiver type (with embedded-method search), or a variable of function
// type.
func (c *checker) resolveCallee(callee ast.ExprID, fid ast.FileID) (types.FuncId, types.TypeId, bool) {
	node := c.mod.Exprs.Get(callee)
	switch node.Kind {
	case ast.ExprIdent:
		ident := c.mod.Exprs.Ident(callee)
		if bid, ok := c.scopes.resolve(ident.Name); ok {
			c.mod.Bindings.MarkUsed(bid)
			return types.NoFunc, c.mod.Bindings.Get(bid).Typ, true
		}
		name, _ := c.lookupString(ident.Name)
		if fnID, ok := c.table.FindFn(name); ok {
			return fnID, types.NoType, true
		}
		file := c.mod.Files.Get(fid)
		if file != nil {
			if modName, ok2 := c.lookupString(file.Module); ok2 {
				if fnID, ok3 := c.table.FindFn(modName + "." + name); ok3 {
					return fnID, types.NoType, true
				}
			}
		}
		c.reportAt(diag.SevError, diag.CheckUnknownIdent, node.Span, "unknown function \""+name+"\"")
		return types.NoFunc, types.NoType, false
	case ast.ExprSelector:
		sel := c.mod.Exprs.Selector(callee)
		recvTyp := c.typeOfExpr(sel.Target, fid)
		if fnID, ok := c.table.FindMethodWithEmbeds(recvTyp, sel.Field); ok {
			return fnID, recvTyp, true
		}
		name, _ := c.lookupString(sel.Field)
		c.reportAt(diag.SevError, diag.CheckUnknownIdent, node.Span, "unknown method \""+name+"\"")
		return types.NoFunc, recvTyp, false
	default:
		c.typeOfExpr(callee, fid)
		return types.NoFunc, types.NoType, false
	}
}

func (c *checker) checkArgCount(decl types.FuncDecl, argc int, span source.Span) {
	variadic := len(decl.Params) > 0 && decl.Params[len(decl.Params)-1].Type.HasFlag(types.FlagVariadic)
	switch {
	case variadic && argc < len(decl.Params)-1:
		c.reportAt(diag.SevError, diag.CheckArgCountMismatch, span, "not enough arguments")
	case !variadic && argc != len(decl.Params):
		c.reportAt(diag.SevError, diag.CheckArgCountMismatch, span, "argument count does not match parameter count")
	}
}

// checkExpectedCallArg is step 3: language-aware argument compatibility.
func (c *checker) checkExpectedCallArg(decl types.FuncDecl, argTyp, paramTyp types.TypeId, span source.Span) {
	if argTyp == paramTyp {
		return
	}
	argSym, paramSym := c.table.FinalSym(argTyp), c.table.FinalSym(paramTyp)
	numeric := func(k types.Kind) bool {
		return k == types.KindInteger || k == types.KindUint || k == types.KindFloat ||
			k == types.KindIntLiteral || k == types.KindFloatLiteral || k == types.KindBool
	}
	if decl.Lang == types.LangC {
		if numeric(argSym.Kind) && numeric(paramSym.Kind) {
			return
		}
		if argTyp.PtrDepth() > 0 && paramTyp.PtrDepth() > 0 {
			return
		}
	}
	if c.table.DoesTypeImplementInterface(argTyp, paramTyp) {
		return
	}
	if argSym.Kind == types.KindIntLiteral && (paramSym.Kind == types.KindInteger || paramSym.Kind == types.KindUint) {
		return
	}
	if argSym.Kind == types.KindFloatLiteral && paramSym.Kind == types.KindFloat {
		return
	}
	if paramSym.Kind == types.KindInterface && argSym.Kind != types.KindInterface {
		c.reportInterfaceMismatch(argTyp, paramTyp, span)
		return
	}
	c.reportAt(diag.SevError, diag.CheckArgTypeMismatch, span, "argument type does not match parameter type")
}

func (c *checker) checkCallAttrs(decl types.FuncDecl, span source.Span) {
	if decl.Attrs.Has(types.AttrDeprecated) {
		c.reportAt(diag.SevWarning, diag.CheckDeprecatedUse, span, "call to deprecated function")
	}
	if decl.Attrs.Has(types.AttrUnsafe) && !c.inUnsafeBlock() {
		c.reportAt(diag.SevError, diag.MutUnsafeRequired, span, "call to an `unsafe` function requires an `unsafe` block")
	}
}

// checkOrBlock implements step 8: an `or { … }` fallback for an optional
// return must either produce the unwrapped type or diverge.
func (c *checker) checkOrBlock(block ast.StmtID, retTyp types.TypeId, fid ast.FileID, span source.Span) types.TypeId {
	unwrapped := retTyp.ClearFlag(types.FlagOptional)
	if !retTyp.HasFlag(types.FlagOptional) {
		c.reportAt(diag.SevError, diag.CheckOptionalUnhandled, span, "`or` block on a non-optional call")
	}
	last := c.typeStmtValue(block, fid)
	if last != unwrapped && last != types.NoType && !c.blockDiverges(block) {
		c.reportAt(diag.SevError, diag.CheckOptionalUnhandled, span,
			"`or` block must produce the unwrapped type or diverge")
	}
	return unwrapped
}

// blockDiverges reports whether block's final statement always transfers
// control away (return/break/continue, or a call to a `[noreturn]` function).
func (c *checker) blockDiverges(s ast.StmtID) bool {
	st := c.mod.Stmts.Get(s)
	if st.Kind != ast.StmtBlock {
		return false
	}
	block := c.mod.Stmts.Block(s)
	if len(block.Stmts) == 0 {
		return false
	}
	last := c.mod.Stmts.Get(block.Stmts[len(block.Stmts)-1])
	switch last.Kind {
	case ast.StmtReturn, ast.StmtBranch:
		return true
	case ast.StmtExpr:
		exprData := c.mod.Stmts.ExprStmt(block.Stmts[len(block.Stmts)-1])
		callNode := c.mod.Exprs.Get(exprData.Expr)
		if callNode.Kind != ast.ExprCall {
			return false
		}
		callData := c.mod.Exprs.Call(exprData.Expr)
		if fnID, _, ok := c.resolveCalleeQuiet(callData.Callee); ok {
			decl, _ := c.table.Func(fnID)
			return decl.Attrs.Has(types.AttrNoReturn)
		}
		return false
	default:
		return false
	}
}

// resolveCalleeQuiet mirrors resolveCallee but never reports diagnostics,
// used for speculative divergence checks.
func (c *checker) resolveCalleeQuiet(callee ast.ExprID) (types.FuncId, types.TypeId, bool) {
	node := c.mod.Exprs.Get(callee)
	if node.Kind != ast.ExprIdent {
		return types.NoFunc, types.NoType, false
	}
	ident := c.mod.Exprs.Ident(callee)
	name, ok := c.lookupString(ident.Name)
	if !ok {
		return types.NoFunc, types.NoType, false
	}
	fnID, ok := c.table.FindFn(name)
	return fnID, types.NoType, ok
}
