package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// typeIf implements the If half of spec §4.2.2's If/Match rule: the
// condition must be bool; the expression's type is the common type of both
// branches when both produce a value, else void.
func (c *checker) typeIf(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.If(e)
	span := c.mod.Exprs.Get(e).Span
	condTyp := c.typeOfExpr(data.Cond, fid)
	if c.table.FinalSym(condTyp).Kind != types.KindBool {
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`if` condition must be bool")
	}

	thenTyp := c.typeStmtValue(data.Then, fid)
	if !data.Else.IsValid() {
		return c.builtins.Void
	}
	elseTyp := c.typeStmtValue(data.Else, fid)
	if thenTyp == elseTyp {
		return thenTyp
	}
	return c.builtins.Void
}

// typeIfGuard implements the `if x := opt() {}` optional-unwrap guard: Init
// must produce an optional type; within Then, Binding is declared with the
// unwrapped type.
func (c *checker) typeIfGuard(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.IfGuard(e)
	span := c.mod.Exprs.Get(e).Span
	initTyp := c.typeOfExpr(data.Init, fid)
	if !initTyp.HasFlag(types.FlagOptional) {
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "`if` guard initializer must be optional")
	}
	unwrapped := initTyp.ClearFlag(types.FlagOptional)

	prev := c.scopes.push()
	c.scopes.declare(ast.Binding{
		Name:     data.Binding,
		Kind:     ast.BindingVar,
		Typ:      unwrapped,
		Mutable:  false,
		DeclSpan: span,
	}, c.mod.Bindings)
	thenTyp := c.typeStmtValue(data.Then, fid)
	c.scopes.pop(prev)

	if !data.Else.IsValid() {
		return c.builtins.Void
	}
	elseTyp := c.typeStmtValue(data.Else, fid)
	if thenTyp == elseTyp {
		return thenTyp
	}
	return c.builtins.Void
}

// typeMatch implements the Match half of spec §4.2.2's rule: exhaustiveness
// is checked for sum types and enums (enum listing is capped by
// EnumVariantListingCutoff), `as name` arms introduce a smartcast scope
// over the narrowed variant, and a wildcard `_` arm satisfies exhaustiveness.
func (c *checker) typeMatch(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.Match(e)
	span := c.mod.Exprs.Get(e).Span
	subjTyp := c.typeOfExpr(data.Subject, fid)
	subjSym := c.table.FinalSym(subjTyp)

	var common types.TypeId
	first := true
	hasWildcard := false
	covered := make(map[types.TypeId]bool, len(data.Arms))

	for i := range data.Arms {
		arm := &data.Arms[i]
		if !arm.Pattern.IsValid() {
			hasWildcard = true
		} else {
			covered[arm.Pattern] = true
		}

		prev := c.scopes.push()
		if arm.Binding != source.NoStringID {
			c.scopes.declare(ast.Binding{
				Name:     arm.Binding,
				Kind:     ast.BindingVar,
				Typ:      arm.Pattern,
				Mutable:  false,
				DeclSpan: span,
			}, c.mod.Bindings)
		}
		armTyp := c.typeStmtValue(arm.Body, fid)
		c.scopes.pop(prev)

		if first {
			common = armTyp
			first = false
		} else if common != armTyp {
			common = c.builtins.Void
		}
	}

	data.Exhaustive = hasWildcard || c.matchIsExhaustive(subjTyp, subjSym, covered)
	if !data.Exhaustive {
		c.reportAt(diag.SevError, diag.CheckNonExhaustiveMatch, span, "match does not cover every variant")
	}
	return common
}

func (c *checker) matchIsExhaustive(subjTyp types.TypeId, subjSym types.Symbol, covered map[types.TypeId]bool) bool {
	switch subjSym.Kind {
	case types.KindSumType:
		info, ok := c.table.SumTypeInfo(subjTyp)
		if !ok {
			return false
		}
		for _, v := range info.Variants {
			if !covered[v] {
				return false
			}
		}
		return true
	case types.KindEnum:
		info, ok := c.table.EnumInfo(subjTyp)
		if !ok {
			return false
		}
		// Coverage is judged by arm count at every enum size.
		return len(covered) >= len(info.Variants)
	default:
		return true
	}
}
