package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/types"
)

// isAddressable reports whether expr can have `&`/`&mut` taken of it (spec
// §4.2.3): identifiers, selectors, and index results are addressable; array
// literals, map values taken by value, and string slices are not.
func (c *checker) isAddressable(expr ast.ExprID) bool {
	node := c.mod.Exprs.Get(expr)
	switch node.Kind {
	case ast.ExprIdent, ast.ExprSelector:
		return true
	case ast.ExprIndex:
		target := c.mod.Exprs.Get(c.mod.Exprs.Index(expr).Target).Typ
		switch c.table.FinalSym(target).Kind {
		case types.KindMap, types.KindString:
			return false
		}
		return true
	case ast.ExprPar:
		return c.isAddressable(c.mod.Exprs.Paren(expr).Inner)
	case ast.ExprPrefix:
		data := c.mod.Exprs.Prefix(expr)
		return data.Op == ast.PrefixDeref
	default:
		return false
	}
}

// failIfImmutable walks expr's lvalue chain and reports an error if any
// link is not mutable: a `const` or non-`mut` binding, a struct field not
// declared `mut`, or a `shared` binding mutated outside an enclosing `lock`
// block or inside an `rlock` block (spec §4.2.3's mutation rules).
func (c *checker) failIfImmutable(expr ast.ExprID) {
	if c.inUnsafeBlock() || c.currentFileIsTranslated() {
		return
	}
	node := c.mod.Exprs.Get(expr)
	switch node.Kind {
	case ast.ExprIdent:
		ident := c.mod.Exprs.Ident(expr)
		bid, ok := c.scopes.resolve(ident.Name)
		if !ok {
			return
		}
		b := c.mod.Bindings.Get(bid)
		if !b.Mutable {
			name, _ := c.lookupString(ident.Name)
			code := diag.MutImmutableAssign
			if b.Kind == ast.BindingConst {
				code = diag.MutConstAssign
			}
			c.reportAt(diag.SevError, code, node.Span,
				"cannot mutate immutable binding \""+name+"\"")
			return
		}
		if b.Shared {
			switch {
			case c.scopes.lockDepth == 0:
				c.reportAt(diag.SevError, diag.MutSharedNeedsLock, node.Span,
					"mutation of a `shared` binding requires an enclosing lock")
			case c.rlockActive:
				c.reportAt(diag.SevError, diag.MutSharedNeedsLock, node.Span,
					"an `rlock` block cannot mutate its locked binding")
			}
		}
	case ast.ExprSelector:
		sel := c.mod.Exprs.Selector(expr)
		targetTyp := c.mod.Exprs.Get(sel.Target).Typ
		if field, ok := c.table.FindFieldWithEmbeds(targetTyp, sel.Field); ok && !field.IsMut {
			name, _ := c.lookupString(sel.Field)
			c.reportAt(diag.SevError, diag.MutFieldNotMut, node.Span,
				"field \""+name+"\" is not declared `mut`")
		}
		c.failIfImmutable(sel.Target)
	case ast.ExprIndex:
		idx := c.mod.Exprs.Index(expr)
		c.failIfImmutable(idx.Target)
	case ast.ExprPar:
		c.failIfImmutable(c.mod.Exprs.Paren(expr).Inner)
	case ast.ExprPrefix:
		data := c.mod.Exprs.Prefix(expr)
		if data.Op == ast.PrefixDeref {
			c.failIfImmutable(data.Expr)
		}
	}
}

func (c *checker) currentFileIsTranslated() bool {
	file := c.mod.Files.Get(c.currentFile)
	return file != nil && file.IsTranslated
}
