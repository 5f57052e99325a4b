package ast

import (
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// Param is one function parameter.
type Param struct {
	Name     source.StringID
	Typ      types.TypeId
	Variadic bool
	Mut      bool
}

// FnDecl is a function or method declaration (spec §6 FnDecl contract).
type FnDecl struct {
	Name         source.StringID
	Mod          source.StringID // owning module name
	Receiver     types.TypeId    // NoType for a free function
	Params       []Param
	ReturnType   types.TypeId
	Body         StmtID // NoStmtID when NoBody is true
	Attrs        []Attr
	GenericNames []source.StringID
	IsMethod     bool
	NoBody       bool // extern/interface declaration without a body
	Pos          source.Span
}

// Fns owns the function declaration arena.
type Fns struct {
	arena *Arena[FnDecl]
}

// NewFns allocates an Fns arena.
func NewFns(capHint uint) *Fns {
	return &Fns{arena: NewArena[FnDecl](capHint)}
}

// New allocates a FnDecl and returns its FnID.
func (fs *Fns) New(decl FnDecl) FnID {
	return FnID(fs.arena.Allocate(decl))
}

// Get returns the FnDecl for id.
func (fs *Fns) Get(id FnID) *FnDecl { return fs.arena.Get(uint32(id)) }

// Len returns the number of registered functions.
func (fs *Fns) Len() uint32 { return fs.arena.Len() }
