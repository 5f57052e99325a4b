package checker

import (
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// reportInterfaceMismatch diagnoses why typ fails to implement iface,
// naming the first method that is missing or differs in return type or
// parameter count, or the first field that is missing or lacks a required
// `mut` (spec §8: "S incorrectly implements method work of I: expected
// return type int"). Called once DoesTypeImplementInterface has already
// returned false. A method whose parameter types or parameter mutability
// differ, or a field whose type differs, gets no diagnostic here.
func (c *checker) reportInterfaceMismatch(typ, iface types.TypeId, span source.Span) {
	ifaceSym, ok := c.table.TrySym(iface)
	if !ok || ifaceSym.Kind != types.KindInterface {
		return
	}
	info, ok := c.table.InterfaceInfo(iface)
	if !ok {
		return
	}
	typSym, _ := c.table.TrySym(typ)
	typName, _ := c.lookupString(typSym.Name)
	ifaceName, _ := c.lookupString(ifaceSym.Name)

	for _, m := range info.Methods {
		want, _ := c.table.Func(m)
		methodName, _ := c.lookupString(want.Name)
		got, ok := c.table.FindMethodWithEmbeds(typ, want.Name)
		if !ok {
			c.reportAt(diag.SevError, diag.IfaceMissingMethod, span,
				typName+" does not implement "+ifaceName+": missing method "+methodName)
			return
		}
		gotDecl, _ := c.table.Func(got)
		if gotDecl.Return != want.Return {
			wantSym, _ := c.table.TrySym(want.Return)
			wantName, _ := c.lookupString(wantSym.Name)
			c.reportAt(diag.SevError, diag.IfaceMethodMismatch, span,
				typName+" incorrectly implements method "+methodName+" of "+ifaceName+
					": expected return type "+wantName)
			return
		}
		if len(gotDecl.Params) != len(want.Params) {
			c.reportAt(diag.SevError, diag.IfaceMethodMismatch, span,
				typName+" incorrectly implements method "+methodName+" of "+ifaceName+
					": parameter count mismatch")
			return
		}
	}

	for _, f := range info.Fields {
		fieldName, _ := c.lookupString(f.Name)
		got, ok := c.table.FindFieldWithEmbeds(typ, f.Name)
		if !ok {
			c.reportAt(diag.SevError, diag.IfaceMissingField, span,
				typName+" does not implement "+ifaceName+": missing field "+fieldName)
			return
		}
		if f.IsMut && !got.IsMut {
			c.reportAt(diag.SevError, diag.IfaceFieldMutMismatch, span,
				typName+" incorrectly implements field "+fieldName+" of "+ifaceName+
					": expected a mutable field")
			return
		}
	}
}
