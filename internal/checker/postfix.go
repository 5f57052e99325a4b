package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/types"
)

// typePostfix implements spec §4.2.2's Postfix rule: `!` force-unwraps an
// optional (erroring with the wrapped error type if absent at runtime, a
// concern left to codegen), `++`/`--` require a mutable numeric lvalue.
func (c *checker) typePostfix(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.Postfix(e)
	span := c.mod.Exprs.Get(e).Span
	inner := c.typeOfExpr(data.Expr, fid)

	switch data.Op {
	case ast.PostfixForceUnwrap:
		if !inner.HasFlag(types.FlagOptional) {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`!` requires an optional operand")
			return inner
		}
		return inner.ClearFlag(types.FlagOptional)
	case ast.PostfixIncrement, ast.PostfixDecrement:
		sym := c.table.FinalSym(inner)
		if sym.Kind != types.KindInteger && sym.Kind != types.KindUint && sym.Kind != types.KindFloat &&
			sym.Kind != types.KindIntLiteral && sym.Kind != types.KindFloatLiteral {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`++`/`--` require a numeric operand")
			return inner
		}
		c.failIfImmutable(data.Expr)
		return inner
	default:
		return types.NoType
	}
}
