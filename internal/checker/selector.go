package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/types"
)

// typeSelector implements spec §4.2.2's Selector rule: resolves a field or
// embedded field, unwraps a sum-type smartcast unless FlagPreventSumUnwrap
// is set on this expression, and enforces visibility across modules. A
// `shared` field is read without any lock or rlock check.
func (c *checker) typeSelector(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.Selector(e)
	span := c.mod.Exprs.Get(e).Span
	targetTyp := c.typeOfExpr(data.Target, fid)

	if refined, ok := c.scopes.scopes.ResolveSmartcast(c.scopes.current, data.Field); ok &&
		!c.mod.Exprs.Get(e).HasFlag(ast.FlagPreventSumUnwrap) {
		data.SmartcastVariant = refined
	}

	field, ok := c.table.FindFieldWithEmbeds(targetTyp, data.Field)
	if !ok {
		name, _ := c.lookupString(data.Field)
		c.reportAt(diag.SevError, diag.CheckUnknownIdent, span, "unknown field \""+name+"\"")
		return types.NoType
	}

	if !field.IsPub && !c.sameModule(fid, targetTyp) {
		name, _ := c.lookupString(data.Field)
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, span,
			"field \""+name+"\" is not visible outside its declaring module")
	}

	if data.SmartcastVariant.IsValid() {
		return data.SmartcastVariant
	}
	return field.Type
}

func (c *checker) sameModule(fid ast.FileID, typ types.TypeId) bool {
	file := c.mod.Files.Get(fid)
	sym := c.table.FinalSym(typ)
	return file != nil && file.Module == sym.Module
}
