package ast

import (
	"testing"

	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

func TestScopeResolveWalksParents(t *testing.T) {
	strs := source.NewInterner()
	scopes := NewScopes(0)
	bindings := NewBindings(0)

	name := strs.Intern("x")
	parent := scopes.New(NoScopeID)
	bid := bindings.New(Binding{Name: name, Kind: BindingVar})
	scopes.Declare(parent, name, bid)

	child := scopes.New(parent)
	got, ok := scopes.Resolve(child, name)
	if !ok || got != bid {
		t.Fatalf("expected child scope to resolve %q through its parent, got %v ok=%v", "x", got, ok)
	}
}

func TestScopeDeclareShadowsParent(t *testing.T) {
	strs := source.NewInterner()
	scopes := NewScopes(0)
	bindings := NewBindings(0)

	name := strs.Intern("x")
	parent := scopes.New(NoScopeID)
	outer := bindings.New(Binding{Name: name, Kind: BindingVar})
	scopes.Declare(parent, name, outer)

	child := scopes.New(parent)
	inner := bindings.New(Binding{Name: name, Kind: BindingVar})
	scopes.Declare(child, name, inner)

	got, ok := scopes.Resolve(child, name)
	if !ok || got != inner {
		t.Fatalf("expected the shadowing binding to win, got %v want %v", got, inner)
	}
}

func TestScopeResolveMissingName(t *testing.T) {
	strs := source.NewInterner()
	scopes := NewScopes(0)
	root := scopes.New(NoScopeID)
	if _, ok := scopes.Resolve(root, strs.Intern("nope")); ok {
		t.Fatalf("expected resolve of an undeclared name to fail")
	}
}

func TestScopeSmartcastNarrowsThenRestores(t *testing.T) {
	strs := source.NewInterner()
	scopes := NewScopes(0)
	tbl := types.NewTable(strs)

	name := strs.Intern("v")
	outer := scopes.New(NoScopeID)
	inner := scopes.New(outer)
	scopes.Smartcast(inner, name, tbl.Builtins().Int)

	if _, ok := scopes.ResolveSmartcast(outer, name); ok {
		t.Fatalf("smartcast in inner scope must not leak to its parent")
	}
	got, ok := scopes.ResolveSmartcast(inner, name)
	if !ok || got != tbl.Builtins().Int {
		t.Fatalf("expected inner scope to resolve its own smartcast, got %v ok=%v", got, ok)
	}
}
