package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/types"
)

// typeOfExpr is the single polymorphic dispatcher spec §4.2.2 describes: it
// returns e's TypeId and mutates the node in place (Typ, Flags) so repeat
// visits are idempotent.
func (c *checker) typeOfExpr(e ast.ExprID, fid ast.FileID) types.TypeId {
	if !e.IsValid() {
		return types.NoType
	}
	c.exprDepth++
	defer func() { c.exprDepth-- }()
	if c.exprDepth > c.nestingLimit() {
		c.reportAt(diag.SevError, diag.LimitExprNesting, c.mod.Exprs.Get(e).Span,
			"expression nesting exceeds the configured limit")
		if rep, ok := c.reporter.(interface{ Abort() }); ok {
			rep.Abort()
		}
		return types.NoType
	}

	node := c.mod.Exprs.Get(e)
	var t types.TypeId
	switch node.Kind {
	case ast.ExprIdent:
		t = c.typeIdent(e, fid)
	case ast.ExprIntegerLiteral:
		t = c.builtins.IntLiteral
	case ast.ExprFloatLiteral:
		t = c.builtins.FloatLiteral
	case ast.ExprStringLiteral:
		t = c.builtins.String
	case ast.ExprCharLiteral:
		t = c.builtins.Char
	case ast.ExprBoolLiteral:
		t = c.builtins.Bool
	case ast.ExprNone:
		t = types.NoType
	case ast.ExprPrefix:
		t = c.typePrefix(e, fid)
	case ast.ExprInfix:
		t = c.typeInfix(e, fid)
	case ast.ExprPostfix:
		t = c.typePostfix(e, fid)
	case ast.ExprIndex:
		t = c.typeIndex(e, fid)
	case ast.ExprSelector:
		t = c.typeSelector(e, fid)
	case ast.ExprCall:
		t = c.typeCall(e, fid)
	case ast.ExprCast:
		t = c.typeCast(e, fid)
	case ast.ExprAsCast:
		t = c.typeAsCast(e, fid)
	case ast.ExprMatch:
		t = c.typeMatch(e, fid)
	case ast.ExprIf:
		t = c.typeIf(e, fid)
	case ast.ExprIfGuard:
		t = c.typeIfGuard(e, fid)
	case ast.ExprStringInterLiteral:
		t = c.typeStringInter(e, fid)
	case ast.ExprLock:
		t = c.typeLock(e, fid)
	case ast.ExprPar:
		t = c.typeOfExpr(c.mod.Exprs.Paren(e).Inner, fid)
	default:
		t = c.typeGenericPassthrough(e, fid)
	}
	node.Typ = t
	return t
}

// typeGenericPassthrough handles the remaining expression kinds whose
// typing rule is a straightforward structural pass (ArrayInit, MapInit,
// StructInit, ranges, sizeof/offsetof/typeof, and similar) without the
// dedicated dispatch a 4.2.2-named rule gets.
func (c *checker) typeGenericPassthrough(e ast.ExprID, fid ast.FileID) types.TypeId {
	node := c.mod.Exprs.Get(e)
	switch node.Kind {
	case ast.ExprArrayInit:
		data := c.mod.Exprs.ArrayInit(e)
		var elem types.TypeId
		for _, el := range data.Elems {
			elem = c.typeOfExpr(el, fid)
		}
		return c.table.FindOrRegisterArray(elem)
	case ast.ExprStructInit:
		return c.mod.Exprs.StructInit(e).Type
	case ast.ExprMapInit:
		data := c.mod.Exprs.MapInit(e)
		var k, v types.TypeId
		for _, ent := range data.Entries {
			k = c.typeOfExpr(ent.Key, fid)
			v = c.typeOfExpr(ent.Value, fid)
		}
		return c.table.Map(k, v)
	case ast.ExprChanInit:
		return c.table.Chan(c.mod.Exprs.ChanInit(e).ElemType, true)
	case ast.ExprSizeOf:
		return c.builtins.Uint
	case ast.ExprOffsetOf:
		return c.builtins.Uint
	case ast.ExprTypeOf:
		return c.builtins.String
	case ast.ExprEnumVal:
		return c.mod.Exprs.EnumVal(e).EnumType
	case ast.ExprConcat:
		data := c.mod.Exprs.Concat(e)
		left := c.typeOfExpr(data.Left, fid)
		c.typeOfExpr(data.Right, fid)
		return left
	case ast.ExprRange:
		data := c.mod.Exprs.Range(e)
		return c.typeOfExpr(data.Start, fid)
	case ast.ExprUnsafe:
		c.unsafeDepth++
		t := c.typeStmtValue(c.mod.Exprs.Unsafe(e).Body, fid)
		c.unsafeDepth--
		return t
	case ast.ExprGo:
		concur := c.mod.Exprs.Concurrency(e)
		inner := c.typeOfExpr(concur.Call, fid)
		return c.table.Thread(inner)
	case ast.ExprDump:
		return c.typeOfExpr(c.mod.Exprs.Dump(e).Expr, fid)
	case ast.ExprLikely:
		return c.typeOfExpr(c.mod.Exprs.Likely(e).Expr, fid)
	case ast.ExprAssoc:
		return c.mod.Exprs.Assoc(e).Type
	case ast.ExprAt:
		return c.typeOfExpr(c.mod.Exprs.At(e).Expr, fid)
	case ast.ExprComptimeCall, ast.ExprComptimeSelector:
		return types.NoType
	case ast.ExprSql:
		return types.NoType
	case ast.ExprSelect:
		return types.NoType
	default:
		return types.NoType
	}
}

func (c *checker) nestingLimit() int {
	if c.cfg.ExprNestingLimit <= 0 {
		return 40
	}
	return c.cfg.ExprNestingLimit
}

// typeStmtValue returns the type of a block's trailing expression, or void.
func (c *checker) typeStmtValue(s ast.StmtID, fid ast.FileID) types.TypeId {
	if !s.IsValid() {
		return c.builtins.Void
	}
	st := c.mod.Stmts.Get(s)
	if st.Kind != ast.StmtBlock {
		return c.builtins.Void
	}
	block := c.mod.Stmts.Block(s)
	var last types.TypeId = c.builtins.Void
	for _, inner := range block.Stmts {
		last = c.checkStmt(inner, fid, 0)
	}
	return last
}

func (c *checker) typeIdent(e ast.ExprID, fid ast.FileID) types.TypeId {
	ident := c.mod.Exprs.Ident(e)
	bid, ok := c.scopes.resolve(ident.Name)
	if !ok {
		name, _ := c.lookupString(ident.Name)
		c.reportAt(diag.SevError, diag.CheckUnknownIdent, c.mod.Exprs.Get(e).Span,
			"unknown identifier \""+name+"\"")
		return types.NoType
	}
	c.mod.Bindings.MarkUsed(bid)
	ident.ResolvedVar = bid
	b := c.mod.Bindings.Get(bid)
	if t, ok := c.scopes.scopes.ResolveSmartcast(c.scopes.current, ident.Name); ok && !c.mod.Exprs.Get(e).HasFlag(ast.FlagPreventSumUnwrap) {
		return t
	}
	return b.Typ
}
