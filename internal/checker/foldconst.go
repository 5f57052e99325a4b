package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/types"
)

// foldConst reports whether expr is a compile-time constant (spec §4.2.1
// pass 2: "folds compile-time constants where feasible") and, if so, its
// type. A literal is trivially constant; a parenthesized, unary, or binary
// expression is constant when its operand(s) are. Literal expr nodes do
// carry an actual value (ast.LiteralData, reachable via
// c.mod.Exprs.Literal) — infix.go's shift-overflow check already reads
// IntValue off it — but nothing downstream of this pass needs the folded
// value itself yet, so foldConst only threads the foldability bit through.
func (c *checker) foldConst(expr ast.ExprID, fid ast.FileID) (types.TypeId, bool) {
	if !expr.IsValid() {
		return types.NoType, false
	}
	node := c.mod.Exprs.Get(expr)
	switch node.Kind {
	case ast.ExprIntegerLiteral, ast.ExprFloatLiteral, ast.ExprStringLiteral,
		ast.ExprBoolLiteral, ast.ExprCharLiteral:
		return c.typeOfExpr(expr, fid), true
	case ast.ExprPar:
		return c.foldConst(c.mod.Exprs.Paren(expr).Inner, fid)
	case ast.ExprPrefix:
		data := c.mod.Exprs.Prefix(expr)
		if _, ok := c.foldConst(data.Expr, fid); ok {
			return c.typeOfExpr(expr, fid), true
		}
	case ast.ExprInfix:
		data := c.mod.Exprs.Infix(expr)
		_, lok := c.foldConst(data.Left, fid)
		_, rok := c.foldConst(data.Right, fid)
		if lok && rok {
			return c.typeOfExpr(expr, fid), true
		}
	}
	return types.NoType, false
}
