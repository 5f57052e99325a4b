package ast

import (
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// BindingKind distinguishes the four non-owning reference kinds a Scope can
// hold (spec §5: "Scopes hold only non-owning references to
// Variable/Constant/GlobalField objects that live in the AST arena").
type BindingKind uint8

const (
	BindingVar BindingKind = iota
	BindingParam
	BindingConst
	BindingGlobal
)

// Binding is a Variable, Constant, GlobalField, or Param entry; it lives in
// the Bindings arena and is owned by the AST, never by a Scope.
type Binding struct {
	Name     source.StringID
	Kind     BindingKind
	Typ      types.TypeId
	Mutable  bool
	Shared   bool
	Used     bool // set by MarkUsed when a reference resolves here; read by the unused-variable scope walk (spec §4.2.1 step 5)
	Written  bool // set once a `mut` binding is reassigned after its declaration
	DeclSpan source.Span
}

// Bindings owns the Variable/Constant/GlobalField/Param arena.
type Bindings struct {
	arena *Arena[Binding]
}

// NewBindings allocates a Bindings arena.
func NewBindings(capHint uint) *Bindings {
	return &Bindings{arena: NewArena[Binding](capHint)}
}

// New allocates a Binding and returns its BindingID.
func (bs *Bindings) New(b Binding) BindingID {
	return BindingID(bs.arena.Allocate(b))
}

// Get returns the Binding for id.
func (bs *Bindings) Get(id BindingID) *Binding { return bs.arena.Get(uint32(id)) }

// Len returns the number of allocated bindings.
func (bs *Bindings) Len() uint32 { return bs.arena.Len() }

// MarkUsed flags id's binding as referenced.
func (bs *Bindings) MarkUsed(id BindingID) {
	if b := bs.Get(id); b != nil {
		b.Used = true
	}
}

// MarkWritten flags id's binding as reassigned after its declaration.
func (bs *Bindings) MarkWritten(id BindingID) {
	if b := bs.Get(id); b != nil {
		b.Written = true
	}
}

// Scope is one lexical scope. It holds only BindingID references (non-owning)
// plus an optional smartcast narrowing map used by `is`/`as name`/if-guard
// scopes (spec §4.2.2).
type Scope struct {
	Parent     ScopeID
	Names      map[source.StringID]BindingID
	Smartcasts map[source.StringID]types.TypeId
	// Locked/RLocked record names held by an enclosing lock/rlock block
	// (spec §4.2.3), keyed by binding name.
	Locked  map[source.StringID]bool
	RLocked map[source.StringID]bool
}

// Scopes owns the scope arena.
type Scopes struct {
	arena *Arena[Scope]
}

// NewScopes allocates a Scopes arena.
func NewScopes(capHint uint) *Scopes {
	return &Scopes{arena: NewArena[Scope](capHint)}
}

// New allocates a child scope of parent and returns its ScopeID.
func (ss *Scopes) New(parent ScopeID) ScopeID {
	return ScopeID(ss.arena.Allocate(Scope{
		Parent: parent,
		Names:  make(map[source.StringID]BindingID),
	}))
}

// Get returns the Scope for id.
func (ss *Scopes) Get(id ScopeID) *Scope { return ss.arena.Get(uint32(id)) }

// Declare binds name to binding in scope id, shadowing any outer binding of
// the same name.
func (ss *Scopes) Declare(id ScopeID, name source.StringID, binding BindingID) {
	sc := ss.Get(id)
	if sc.Names == nil {
		sc.Names = make(map[source.StringID]BindingID)
	}
	sc.Names[name] = binding
}

// Resolve walks id and its ancestors looking for name, returning
// (NoBindingID, false) if no enclosing scope declares it.
func (ss *Scopes) Resolve(id ScopeID, name source.StringID) (BindingID, bool) {
	for cur := id; cur.IsValid(); {
		sc := ss.Get(cur)
		if sc == nil {
			break
		}
		if b, ok := sc.Names[name]; ok {
			return b, true
		}
		cur = sc.Parent
	}
	return NoBindingID, false
}

// Smartcast narrows name's type within scope id.
func (ss *Scopes) Smartcast(id ScopeID, name source.StringID, typ types.TypeId) {
	sc := ss.Get(id)
	if sc.Smartcasts == nil {
		sc.Smartcasts = make(map[source.StringID]types.TypeId)
	}
	sc.Smartcasts[name] = typ
}

// ResolveSmartcast walks id and its ancestors for a smartcast narrowing of
// name, stopping at the first scope that declares one.
func (ss *Scopes) ResolveSmartcast(id ScopeID, name source.StringID) (types.TypeId, bool) {
	for cur := id; cur.IsValid(); {
		sc := ss.Get(cur)
		if sc == nil {
			break
		}
		if t, ok := sc.Smartcasts[name]; ok {
			return t, true
		}
		cur = sc.Parent
	}
	return types.NoType, false
}
