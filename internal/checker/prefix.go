package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/types"
)

// typePrefix implements spec §4.2.2's Prefix rule: negation and bitwise-not
// require a numeric operand, `!` requires bool, `*` requires a pointer and
// drops one level of indirection, `&`/`&mut` require an addressable operand
// and add one level of indirection (the latter additionally requiring
// mutability, enforced by failIfImmutable).
func (c *checker) typePrefix(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.Prefix(e)
	span := c.mod.Exprs.Get(e).Span
	inner := c.typeOfExpr(data.Expr, fid)
	sym := c.table.FinalSym(inner)

	switch data.Op {
	case ast.PrefixNeg:
		if sym.Kind != types.KindInteger && sym.Kind != types.KindFloat &&
			sym.Kind != types.KindIntLiteral && sym.Kind != types.KindFloatLiteral {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "unary `-` requires a numeric operand")
			return types.NoType
		}
		return inner
	case ast.PrefixBitNot:
		if sym.Kind != types.KindInteger && sym.Kind != types.KindUint && sym.Kind != types.KindIntLiteral {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`~` requires an integer operand")
			return types.NoType
		}
		return inner
	case ast.PrefixNot:
		if sym.Kind != types.KindBool {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`!` requires a bool operand")
			return types.NoType
		}
		return inner
	case ast.PrefixDeref:
		if inner.PtrDepth() == 0 {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`*` requires a pointer operand")
			return types.NoType
		}
		return inner.Deref()
	case ast.PrefixRef, ast.PrefixRefMut:
		if !c.isAddressable(data.Expr) {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "operand of `&` must be addressable")
			return types.NoType
		}
		if data.Op == ast.PrefixRefMut {
			c.failIfImmutable(data.Expr)
		}
		return inner.Ref()
	default:
		return types.NoType
	}
}
