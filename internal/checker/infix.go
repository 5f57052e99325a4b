package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// typeInfix implements spec §4.2.2's Infix rule: numeric promotion, the
// append operator (`<<` on arrays), `in`/`!in`, `is`/`!is` smartcasting,
// equality, and struct comparison via a user `<` method.
func (c *checker) typeInfix(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.Infix(e)
	span := c.mod.Exprs.Get(e).Span
	left := c.typeOfExpr(data.Left, fid)
	right := c.typeOfExpr(data.Right, fid)

	switch data.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod, ast.OpBitAnd, ast.OpBitOr, ast.OpBitXor:
		return c.promoteNum(left, right, span)
	case ast.OpShl, ast.OpShr:
		return c.typeShift(e, data, left, right, span)
	case ast.OpAppend:
		return c.typeAppend(left, right, span)
	case ast.OpIn, ast.OpNotIn:
		return c.typeMembership(left, right, span)
	case ast.OpIs, ast.OpNotIs:
		return c.typeIsCheck(e, data)
	case ast.OpEq, ast.OpNotEq:
		return c.typeEquality(left, right, span)
	case ast.OpLt, ast.OpLtEq, ast.OpGt, ast.OpGtEq:
		return c.typeComparison(left, right, span)
	case ast.OpLogicalAnd, ast.OpLogicalOr:
		return c.builtins.Bool
	default:
		return types.NoType
	}
}

// promoteNum is promote_num: the lower-precision operand promotes to the
// higher; literal types promote to the opposite side's concrete type;
// signed x unsigned of different widths is rejected unless widening.
func (c *checker) promoteNum(left, right types.TypeId, span source.Span) types.TypeId {
	lSym, rSym := c.table.FinalSym(left), c.table.FinalSym(right)

	if lSym.Kind == types.KindIntLiteral || lSym.Kind == types.KindFloatLiteral {
		return right
	}
	if rSym.Kind == types.KindIntLiteral || rSym.Kind == types.KindFloatLiteral {
		return left
	}
	if lSym.Kind == types.KindFloat || rSym.Kind == types.KindFloat {
		if lSym.Kind == types.KindFloat && rSym.Kind == types.KindFloat {
			if lSym.Width >= rSym.Width {
				return left
			}
			return right
		}
		if lSym.Kind == types.KindFloat {
			return left
		}
		return right
	}
	if lSym.Kind == types.KindInteger && rSym.Kind == types.KindUint ||
		lSym.Kind == types.KindUint && rSym.Kind == types.KindInteger {
		signed, unsigned := lSym, rSym
		if lSym.Kind == types.KindUint {
			signed, unsigned = rSym, lSym
		}
		if lSym.Width != rSym.Width && unsigned.Width >= signed.Width {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span,
				"mixing signed and unsigned integers of different widths requires an explicit cast")
			return types.NoType
		}
	}
	if lSym.Width >= rSym.Width {
		return left
	}
	return right
}

func (c *checker) typeShift(e ast.ExprID, data *ast.InfixData, left, right types.TypeId, span source.Span) types.TypeId {
	lSym, rSym := c.table.FinalSym(left), c.table.FinalSym(right)
	if lSym.Kind != types.KindInteger && lSym.Kind != types.KindUint && lSym.Kind != types.KindIntLiteral {
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "shift requires an integral left operand")
		return types.NoType
	}
	if rSym.Kind != types.KindInteger && rSym.Kind != types.KindUint && rSym.Kind != types.KindIntLiteral {
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "shift count must be integral")
		return types.NoType
	}
	if lit := c.mod.Exprs.Get(data.Right); lit.Kind == ast.ExprIntegerLiteral {
		val := c.mod.Exprs.Literal(data.Right).IntValue
		width := int64(lSym.Width)
		if width == 0 {
			width = 64
		}
		if val < 0 || val >= width {
			data.ShiftOverflow = true
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "shift count exceeds operand width")
		}
	}
	if data.Op == ast.OpShl && lSym.Kind == types.KindInteger {
		c.reportAt(diag.SevWarning, diag.CheckTypeMismatch, span, "left-shift of a signed value")
	}
	return left
}

// typeAppend is the `<<` append operator on an array target.
func (c *checker) typeAppend(left, right types.TypeId, span source.Span) types.TypeId {
	sym := c.table.FinalSym(left)
	if sym.Kind != types.KindArray {
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`<<` append requires an array left operand")
		return types.NoType
	}
	info, ok := c.table.ArrayInfo(left)
	if ok && info.Elem != right && !c.table.DoesTypeImplementInterface(right, info.Elem) {
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, span,
			"appended value is not compatible with the array's element type")
	}
	return left
}

// typeMembership is `in`/`!in`: right must be an array or map, left must
// match the element/key type.
func (c *checker) typeMembership(left, right types.TypeId, span source.Span) types.TypeId {
	sym := c.table.FinalSym(right)
	switch sym.Kind {
	case types.KindArray, types.KindArrayFixed:
		info, ok := c.table.ArrayInfo(right)
		if fi, fok := c.table.ArrayFixedInfo(right); fok {
			info, ok = types.ArrayInfo{Elem: fi.Elem}, true
		}
		if ok && info.Elem != left {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "element type does not match array's element type")
		}
	case types.KindMap:
		info, ok := c.table.MapInfo(right)
		if ok && info.Key != left {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "key type does not match map's key type")
		}
	default:
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`in` requires an array or map right operand")
	}
	return c.builtins.Bool
}

// typeIsCheck is `is`/`!is`: valid only on interfaces and sum types, and
// records the narrowed variant for smartcasting.
func (c *checker) typeIsCheck(e ast.ExprID, data *ast.InfixData) types.TypeId {
	span := c.mod.Exprs.Get(e).Span
	leftSym := c.table.FinalSym(c.mod.Exprs.Get(data.Left).Typ)
	if leftSym.Kind != types.KindInterface && leftSym.Kind != types.KindSumType {
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`is` is only valid on interfaces and sum types")
	}
	if ident := c.mod.Exprs.Get(data.Left); ident.Kind == ast.ExprIdent {
		name := c.mod.Exprs.Ident(data.Left).Name
		c.scopes.scopes.Smartcast(c.scopes.current, name, c.mod.Exprs.Get(data.Right).Typ)
	}
	return c.builtins.Bool
}

// typeEquality applies `==`/`!=` for equal types and special-cased
// primitive mixings.
func (c *checker) typeEquality(left, right types.TypeId, span source.Span) types.TypeId {
	if left != right {
		lSym, rSym := c.table.FinalSym(left), c.table.FinalSym(right)
		numeric := func(k types.Kind) bool {
			return k == types.KindInteger || k == types.KindUint || k == types.KindFloat ||
				k == types.KindIntLiteral || k == types.KindFloatLiteral
		}
		if !(numeric(lSym.Kind) && numeric(rSym.Kind)) {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "operands of `==`/`!=` must have compatible types")
		}
	}
	return c.builtins.Bool
}

// typeComparison enforces that struct comparisons require a user `<` method.
func (c *checker) typeComparison(left, right types.TypeId, span source.Span) types.TypeId {
	sym := c.table.FinalSym(left)
	if sym.Kind == types.KindStruct {
		if _, ok := c.table.FindMethod(left, c.intern("<")); !ok {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span,
				"struct comparison requires a defined `<` method")
		}
	}
	return c.builtins.Bool
}
