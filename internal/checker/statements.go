package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// checkStmt is the statement-level counterpart to typeOfExpr: it dispatches
// on every StmtKind, returning the block-value type where one applies
// (StmtBlock's trailing expression) and Void otherwise.
func (c *checker) checkStmt(sid ast.StmtID, fid ast.FileID, _ int) types.TypeId {
	if !sid.IsValid() {
		return c.builtins.Void
	}
	c.stmtDepth++
	defer func() { c.stmtDepth-- }()
	if c.stmtDepth > c.stmtNestingLimit() {
		c.reportAt(diag.SevError, diag.LimitStmtNesting, c.mod.Stmts.Get(sid).Span,
			"statement nesting exceeds the configured limit")
		if rep, ok := c.reporter.(interface{ Abort() }); ok {
			rep.Abort()
		}
		return types.NoType
	}

	st := c.mod.Stmts.Get(sid)
	switch st.Kind {
	case ast.StmtAssign:
		return c.checkAssign(sid, fid)
	case ast.StmtExpr:
		data := c.mod.Stmts.ExprStmt(sid)
		return c.typeOfExpr(data.Expr, fid)
	case ast.StmtReturn:
		return c.checkReturn(sid, fid)
	case ast.StmtBlock:
		return c.checkBlock(sid, fid)
	case ast.StmtFor:
		return c.checkFor(sid, fid)
	case ast.StmtForIn:
		return c.checkForIn(sid, fid)
	case ast.StmtForC:
		return c.checkForC(sid, fid)
	case ast.StmtBranch, ast.StmtGoto, ast.StmtGotoLabel:
		return c.builtins.Void
	case ast.StmtDefer:
		data := c.mod.Stmts.Defer(sid)
		c.typeOfExpr(data.Call, fid)
		return c.builtins.Void
	case ast.StmtHash, ast.StmtModule, ast.StmtImport:
		return c.builtins.Void
	case ast.StmtConstDecl:
		decl := c.mod.Stmts.ConstDecl(sid)
		if decl.Value.IsValid() {
			decl.Typ = c.typeOfExpr(decl.Value, fid)
		}
		return c.builtins.Void
	case ast.StmtGlobalDecl:
		decl := c.mod.Stmts.GlobalDecl(sid)
		if decl.Value.IsValid() {
			c.typeOfExpr(decl.Value, fid)
		}
		return c.builtins.Void
	case ast.StmtEnumDecl:
		return c.checkEnumDecl(sid, fid)
	case ast.StmtTypeDecl:
		return c.checkTypeDecl(sid, fid)
	case ast.StmtInterfaceDecl:
		return c.builtins.Void
	case ast.StmtStructDecl:
		return c.checkStructDecl(sid, fid)
	case ast.StmtAsm:
		if !c.inUnsafeBlock() {
			c.reportAt(diag.SevError, diag.MutUnsafeRequired, st.Span,
				"inline assembly requires an enclosing `unsafe` block")
		}
		return c.builtins.Void
	case ast.StmtAssert:
		return c.checkAssert(sid, fid)
	case ast.StmtComptimeFor:
		return c.checkComptimeFor(sid, fid)
	case ast.StmtSql:
		data := c.mod.Stmts.Sql(sid)
		for _, b := range data.Binds {
			c.typeOfExpr(b, fid)
		}
		return c.builtins.Void
	default:
		return c.builtins.Void
	}
}

func (c *checker) stmtNestingLimit() int {
	if c.cfg.StmtNestingLimit <= 0 {
		return 40
	}
	return c.cfg.StmtNestingLimit
}

// checkBlock re-enters block's own pre-built Scope (reparented to whatever
// scope is current, so lexical lookups chain correctly) and walks its
// statements in order.
func (c *checker) checkBlock(sid ast.StmtID, fid ast.FileID) types.TypeId {
	data := c.mod.Stmts.Block(sid)
	prev := c.scopes.current
	if data.Scope.IsValid() {
		if sc := c.mod.Scopes.Get(data.Scope); sc != nil {
			sc.Parent = prev
		}
		c.scopes.current = data.Scope
	}
	defer func() { c.scopes.current = prev }()

	last := c.builtins.Void
	for _, s := range data.Stmts {
		last = c.checkStmt(s, fid, 0)
	}
	return last
}

func (c *checker) checkReturn(sid ast.StmtID, fid ast.FileID) types.TypeId {
	data := c.mod.Stmts.Return(sid)
	span := c.mod.Stmts.Get(sid).Span

	valTypes := make([]types.TypeId, 0, len(data.Values))
	for _, v := range data.Values {
		valTypes = append(valTypes, c.typeOfExpr(v, fid))
	}

	var actual types.TypeId
	switch len(valTypes) {
	case 0:
		actual = c.builtins.Void
	case 1:
		actual = valTypes[0]
	default:
		actual = c.table.MultiReturn(valTypes)
	}

	if c.currentFnReturn != types.NoType && actual != types.NoType && actual != c.currentFnReturn {
		if !c.table.DoesTypeImplementInterface(actual, c.currentFnReturn) {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span,
				"return type does not match the function's declared return type")
		}
	}
	return c.builtins.Void
}

func (c *checker) checkFor(sid ast.StmtID, fid ast.FileID) types.TypeId {
	data := c.mod.Stmts.For(sid)
	span := c.mod.Stmts.Get(sid).Span
	if data.Cond.IsValid() {
		condTyp := c.typeOfExpr(data.Cond, fid)
		if condTyp != types.NoType && c.table.FinalSym(condTyp).Kind != types.KindBool {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`for` condition must be bool")
		}
	}
	c.checkStmt(data.Body, fid, 0)
	return c.builtins.Void
}

func (c *checker) checkForIn(sid ast.StmtID, fid ast.FileID) types.TypeId {
	data := c.mod.Stmts.ForIn(sid)
	span := c.mod.Stmts.Get(sid).Span
	iterTyp := c.typeOfExpr(data.Iterable, fid)
	sym := c.table.FinalSym(iterTyp)

	var elemTyp, keyTyp types.TypeId
	switch sym.Kind {
	case types.KindArray:
		if info, ok := c.table.ArrayInfo(iterTyp); ok {
			elemTyp = info.Elem
		}
		keyTyp = c.builtins.Uint
	case types.KindArrayFixed:
		if info, ok := c.table.ArrayFixedInfo(iterTyp); ok {
			elemTyp = info.Elem
		}
		keyTyp = c.builtins.Uint
	case types.KindMap:
		if info, ok := c.table.MapInfo(iterTyp); ok {
			keyTyp = info.Key
			elemTyp = info.Value
		}
	case types.KindString:
		elemTyp = c.builtins.Char
		keyTyp = c.builtins.Uint
	default:
		if iterTyp != types.NoType {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span,
				"`for in` requires an array, map, or string")
		}
	}

	prev := c.scopes.push()
	c.scopes.declare(ast.Binding{Name: data.Binding, Kind: ast.BindingVar, Typ: elemTyp, DeclSpan: span}, c.mod.Bindings)
	if data.KeyBind != source.NoStringID {
		c.scopes.declare(ast.Binding{Name: data.KeyBind, Kind: ast.BindingVar, Typ: keyTyp, DeclSpan: span}, c.mod.Bindings)
	}
	c.checkStmt(data.Body, fid, 0)
	c.scopes.pop(prev)
	return c.builtins.Void
}

func (c *checker) checkForC(sid ast.StmtID, fid ast.FileID) types.TypeId {
	data := c.mod.Stmts.ForC(sid)
	span := c.mod.Stmts.Get(sid).Span

	prev := c.scopes.push()
	c.checkStmt(data.Init, fid, 0)
	if data.Cond.IsValid() {
		condTyp := c.typeOfExpr(data.Cond, fid)
		if condTyp != types.NoType && c.table.FinalSym(condTyp).Kind != types.KindBool {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`for` condition must be bool")
		}
	}
	c.checkStmt(data.Post, fid, 0)
	c.checkStmt(data.Body, fid, 0)
	c.scopes.pop(prev)
	return c.builtins.Void
}

func (c *checker) checkAssert(sid ast.StmtID, fid ast.FileID) types.TypeId {
	data := c.mod.Stmts.Assert(sid)
	span := c.mod.Stmts.Get(sid).Span
	condTyp := c.typeOfExpr(data.Cond, fid)
	if condTyp != types.NoType && c.table.FinalSym(condTyp).Kind != types.KindBool {
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "assert condition must be bool")
	}
	if data.Message.IsValid() {
		c.typeOfExpr(data.Message, fid)
	}
	return c.builtins.Void
}

func (c *checker) checkComptimeFor(sid ast.StmtID, fid ast.FileID) types.TypeId {
	data := c.mod.Stmts.ComptimeFor(sid)
	span := c.mod.Stmts.Get(sid).Span
	for _, t := range data.Over {
		prev := c.scopes.push()
		c.scopes.declare(ast.Binding{Name: data.Binding, Kind: ast.BindingConst, Typ: t, DeclSpan: span}, c.mod.Bindings)
		c.checkStmt(data.Body, fid, 0)
		c.scopes.pop(prev)
	}
	return c.builtins.Void
}
