package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// typeIndex implements spec §4.2.2's Index rule: the target must be an
// array, fixed array, map, string, or pointer (raw pointer indexing is
// `unsafe`-gated); the index must be integral (or the map's key type); the
// gated `#[..]` range form slices rather than projects a single element.
func (c *checker) typeIndex(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.Index(e)
	span := c.mod.Exprs.Get(e).Span
	target := c.typeOfExpr(data.Target, fid)

	if data.IsRange {
		c.typeOfExpr(data.Index, fid)
		if data.RangeEnd.IsValid() {
			c.typeOfExpr(data.RangeEnd, fid)
		}
		return target
	}

	idxTyp := c.typeOfExpr(data.Index, fid)
	sym := c.table.FinalSym(target)

	if target.PtrDepth() > 0 {
		if !c.inUnsafeBlock() {
			c.reportAt(diag.SevWarning, diag.MutUnsafeRequired, span,
				"indexing a raw pointer requires an `unsafe` block")
		}
		return target.Deref()
	}

	switch sym.Kind {
	case types.KindArray:
		c.requireIntegralIndex(idxTyp, span)
		info, _ := c.table.ArrayInfo(target)
		return info.Elem
	case types.KindArrayFixed:
		c.requireIntegralIndex(idxTyp, span)
		info, _ := c.table.ArrayFixedInfo(target)
		return info.Elem
	case types.KindMap:
		info, ok := c.table.MapInfo(target)
		if ok && idxTyp != info.Key {
			c.reportAt(diag.SevError, diag.CheckBadIndex, span, "map index does not match the map's key type")
		}
		return info.Value
	case types.KindString:
		c.requireIntegralIndex(idxTyp, span)
		return c.builtins.Char
	default:
		c.reportAt(diag.SevError, diag.CheckBadIndex, span, "type is not indexable")
		return types.NoType
	}
}

func (c *checker) requireIntegralIndex(idxTyp types.TypeId, span source.Span) {
	sym := c.table.FinalSym(idxTyp)
	switch sym.Kind {
	case types.KindInteger, types.KindUint, types.KindIntLiteral, types.KindEnum:
		return
	default:
		c.reportAt(diag.SevError, diag.CheckBadIndex, span, "index must be an integer or enum value")
	}
}

func (c *checker) inUnsafeBlock() bool {
	return c.unsafeDepth > 0
}
