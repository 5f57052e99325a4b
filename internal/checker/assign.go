package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// checkAssign implements spec §4.2.2's Assignment rule: `:=` declares fresh
// bindings, `=`/compound assignment requires an addressable, mutable LHS, a
// single multi-return RHS unpacks across every LHS target, and an optional
// RHS routes through OrBlock when present.
func (c *checker) checkAssign(sid ast.StmtID, fid ast.FileID) types.TypeId {
	data := c.mod.Stmts.Assign(sid)
	span := c.mod.Stmts.Get(sid).Span

	rhsTypes := make([]types.TypeId, 0, len(data.Rhs))
	for _, r := range data.Rhs {
		rhsTypes = append(rhsTypes, c.typeOfExpr(r, fid))
	}

	if len(data.Rhs) == 1 && len(data.Lhs) > 1 {
		if info, ok := c.table.MultiReturnInfo(rhsTypes[0]); ok {
			rhsTypes = info.Types
		}
	}
	if len(rhsTypes) != len(data.Lhs) {
		c.reportAt(diag.SevError, diag.CheckArgCountMismatch, span,
			"assignment has a different number of targets than values")
	}

	for i, l := range data.Lhs {
		var rhsTyp types.TypeId
		if i < len(rhsTypes) {
			rhsTyp = rhsTypes[i]
		}
		if rhsTyp.HasFlag(types.FlagOptional) && data.OrBlock.IsValid() {
			rhsTyp = c.checkOrBlock(data.OrBlock, rhsTyp, fid, span)
		} else if rhsTyp.HasFlag(types.FlagOptional) {
			c.reportAt(diag.SevError, diag.CheckOptionalUnhandled, span,
				"optional value assigned without unwrapping (force-unwrap or `or` block)")
		}

		if data.Op == ast.AssignDeclare {
			c.declareAssignTarget(l, rhsTyp, span)
			continue
		}

		lhsTyp := c.typeOfExpr(l, fid)
		c.failIfImmutable(l)
		c.markWrittenIfIdent(l)
		switch data.Op {
		case ast.AssignCompound:
			c.promoteNum(lhsTyp, rhsTyp, span)
		default:
			if lhsTyp != types.NoType && rhsTyp != types.NoType && lhsTyp != rhsTyp &&
				!c.table.DoesTypeImplementInterface(rhsTyp, lhsTyp) {
				c.reportAt(diag.SevError, diag.CheckTypeMismatch, span, "assignment type mismatch")
			}
		}
	}
	return c.builtins.Void
}

// markWrittenIfIdent flags l's resolved binding as reassigned, so the
// unused-mutable scope walk doesn't warn on a `mut` binding genuinely
// mutated later in the file (spec §8: "x is declared as mutable but never
// changed").
func (c *checker) markWrittenIfIdent(l ast.ExprID) {
	node := c.mod.Exprs.Get(l)
	if node.Kind != ast.ExprIdent {
		return
	}
	ident := c.mod.Exprs.Ident(l)
	if bid, ok := c.scopes.resolve(ident.Name); ok {
		c.mod.Bindings.MarkWritten(bid)
	}
}

// declareAssignTarget handles one `:=` target: only plain identifiers may
// be declared this way.
func (c *checker) declareAssignTarget(l ast.ExprID, rhsTyp types.TypeId, span source.Span) {
	node := c.mod.Exprs.Get(l)
	if node.Kind != ast.ExprIdent {
		c.reportAt(diag.SevError, diag.CheckNotAddressable, span, "`:=` target must be a plain identifier")
		return
	}
	ident := c.mod.Exprs.Ident(l)
	bid := c.scopes.declare(ast.Binding{
		Name:     ident.Name,
		Kind:     ast.BindingVar,
		Typ:      rhsTyp,
		Mutable:  true,
		DeclSpan: span,
	}, c.mod.Bindings)
	ident.ResolvedVar = bid
	node.Typ = rhsTyp
}
