package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/types"
)

// typeLock implements spec §4.2.3's lock/rlock rule: nesting is forbidden,
// each named lvalue must be `shared`-typed, duplicate names (or holding
// both lock and rlock on the same name) are errors, and the block's value
// is its trailing expression's type (or void).
func (c *checker) typeLock(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.Lock(e)
	span := c.mod.Exprs.Get(e).Span

	if c.scopes.lockDepth > 0 {
		c.reportAt(diag.SevError, diag.MutLockNested, span, "`lock`/`rlock` blocks cannot nest")
	}

	seen := make(map[string]bool, len(data.Names))
	for _, nameID := range data.Names {
		name, _ := c.lookupString(nameID)
		if seen[name] {
			c.reportAt(diag.SevError, diag.MutLockDuplicateName, span,
				"duplicate lock target \""+name+"\"")
			continue
		}
		seen[name] = true

		bid, ok := c.scopes.resolve(nameID)
		if !ok {
			c.reportAt(diag.SevError, diag.CheckUnknownIdent, span, "unknown lock target \""+name+"\"")
			continue
		}
		b := c.mod.Bindings.Get(bid)
		if !b.Shared {
			c.reportAt(diag.SevError, diag.MutSharedNeedsLock, span,
				"\""+name+"\" is not a `shared`-typed lvalue and cannot be locked")
		}
	}

	c.scopes.lockDepth++
	prevReadOnly := c.rlockActive
	if data.ReadOnly {
		c.rlockActive = true
	}
	result := c.typeStmtValue(data.Body, fid)
	c.rlockActive = prevReadOnly
	c.scopes.lockDepth--

	return result
}
