package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/types"
)

// typeCast implements spec §4.2.2's Cast rule: a ladder of compatibility
// checks between primitive numerics, strings, enums, sum types, interfaces,
// aliases, pointers, and structs.
func (c *checker) typeCast(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.Cast(e)
	span := c.mod.Exprs.Get(e).Span
	srcTyp := c.typeOfExpr(data.Expr, fid)
	srcSym, dstSym := c.table.FinalSym(srcTyp), c.table.FinalSym(data.Target)

	numeric := func(k types.Kind) bool {
		return k == types.KindInteger || k == types.KindUint || k == types.KindFloat ||
			k == types.KindIntLiteral || k == types.KindFloatLiteral
	}

	switch {
	case numeric(srcSym.Kind) && (numeric(dstSym.Kind) || dstSym.Kind == types.KindEnum):
		return data.Target
	case srcSym.Kind == types.KindEnum && numeric(dstSym.Kind):
		return data.Target
	case srcSym.Kind == types.KindString && (numeric(dstSym.Kind) || dstSym.Kind == types.KindEnum || data.Target.PtrDepth() > 0):
		c.reportAt(diag.SevError, diag.CheckBadCast, span,
			"cannot cast string to a numeric, enum, or pointer type; use an explicit parse function instead")
		return types.NoType
	case dstSym.Kind == types.KindSumType:
		if !c.sumTypeHasVariant(data.Target, srcTyp) {
			c.reportAt(diag.SevError, diag.CheckBadCast, span,
				"source type is not a listed variant of the target sum type")
			return types.NoType
		}
		return data.Target
	case dstSym.Kind == types.KindInterface:
		if !c.table.DoesTypeImplementInterface(srcTyp, data.Target) {
			c.reportAt(diag.SevError, diag.CheckBadCast, span,
				"source type does not implement the target interface")
			return types.NoType
		}
		return data.Target
	case srcTyp.PtrDepth() > 0 && data.Target.PtrDepth() > 0:
		return data.Target
	case srcSym.Kind == types.KindStruct && dstSym.Kind == types.KindStruct:
		if !c.structCastCompatible(srcTyp, data.Target) {
			c.reportAt(diag.SevError, diag.CheckBadCast, span, "incompatible struct cast")
			return types.NoType
		}
		return data.Target
	default:
		c.reportAt(diag.SevError, diag.CheckBadCast, span, "no cast rule covers this source and target type pair")
		return types.NoType
	}
}

func (c *checker) sumTypeHasVariant(sumTyp, candidate types.TypeId) bool {
	info, ok := c.table.SumTypeInfo(sumTyp)
	if !ok {
		return false
	}
	for _, v := range info.Variants {
		if v == candidate {
			return true
		}
	}
	return false
}

// structCastCompatible allows a struct cast only when the target is an
// embed (ancestor) of the source, mirroring an upcast through embedding.
func (c *checker) structCastCompatible(src, dst types.TypeId) bool {
	info, ok := c.table.StructInfo(src)
	if !ok {
		return false
	}
	for _, embed := range info.Embeds {
		if embed == dst {
			return true
		}
	}
	return false
}

// typeAsCast implements the `expr as name` smartcast-introducing form used
// in match arms and if-guards: the source must be a sum type or interface,
// and the bound name is declared in the current scope with the variant type.
func (c *checker) typeAsCast(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.AsCast(e)
	span := c.mod.Exprs.Get(e).Span
	srcTyp := c.typeOfExpr(data.Expr, fid)
	sym := c.table.FinalSym(srcTyp)
	if sym.Kind != types.KindSumType && sym.Kind != types.KindInterface {
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`as` binding requires a sum-type or interface operand")
		return types.NoType
	}
	c.scopes.declare(ast.Binding{
		Name:     data.Binding,
		Kind:     ast.BindingVar,
		Typ:      data.Variant,
		Mutable:  false,
		DeclSpan: span,
	}, c.mod.Bindings)
	return data.Variant
}
