package types

import (
	"slices"

	"github.com/ripplang/ripplec/internal/source"
)

// FuncDecl is the registered, named function descriptor (spec §3 "Function
// descriptor"). It backs both free functions and methods; Receiver is
// NoType for free functions.
type FuncDecl struct {
	Name     source.StringID
	Module   source.StringID
	Receiver TypeId
	Params   []Param
	Return   TypeId
	Attrs    Attr
	Lang     LangTag

	GenericNames []source.StringID
	// Concrete records every distinct type-argument tuple this function has
	// been instantiated with, driving the checker's generic-recheck
	// fixed-point loop (spec §4.1.7, §4.2.1).
	Concrete [][]TypeId

	Pos source.Span
}

func fqName(module, name string) string {
	if module == "" {
		return name
	}
	return module + "." + name
}

// RegisterFn stores fn by its fully-qualified name ("module.name", or just
// "name" with no module). A second registration under the same name is
// rejected silently (spec §4.1.8) unless the earlier symbol was a bare
// placeholder with no body recorded yet, mirrored here by an empty Params
// AND Return sentinel.
func (t *Table) RegisterFn(fn FuncDecl) FuncId {
	modName, _ := t.Strings.Lookup(fn.Module)
	simple, _ := t.Strings.Lookup(fn.Name)
	qualified := t.Strings.Intern(fqName(modName, simple))
	if id, ok := t.funcByName[qualified]; ok {
		existing := &t.funcs[id]
		if existing.isPlaceholder() {
			*existing = fn
			return id
		}
		return id
	}
	id := FuncId(len(t.funcs))
	t.funcs = append(t.funcs, fn)
	t.funcByName[qualified] = id
	return id
}

func (fn *FuncDecl) isPlaceholder() bool {
	return fn.Return == NoType && len(fn.Params) == 0 && len(fn.GenericNames) == 0 && fn.Attrs == 0
}

// Func returns the descriptor for id.
func (t *Table) Func(id FuncId) (FuncDecl, bool) {
	if id == NoFunc || int(id) >= len(t.funcs) {
		return FuncDecl{}, false
	}
	return t.funcs[id], true
}

// FindFn looks up a registered function by fully-qualified name.
func (t *Table) FindFn(qualifiedName string) (FuncId, bool) {
	id, ok := t.funcByName[t.Strings.Intern(qualifiedName)]
	return id, ok
}

// RegisterFnGenericTypes initializes the per-function concrete-type ledger,
// used before any call site has been seen so the checker can distinguish
// "never instantiated" from "instantiated with zero type args".
func (t *Table) RegisterFnGenericTypes(id FuncId, names []source.StringID) {
	if id == NoFunc || int(id) >= len(t.funcs) {
		return
	}
	t.funcs[id].GenericNames = slices.Clone(names)
	if t.funcs[id].Concrete == nil {
		t.funcs[id].Concrete = make([][]TypeId, 0, 1)
	}
}

// RegisterFnConcreteTypes records one observed instantiation tuple for a
// generic function. It returns true when the tuple was newly observed,
// which the checker uses to drive another fixed-point iteration (spec
// §4.1.7, §4.2.1, §5).
func (t *Table) RegisterFnConcreteTypes(id FuncId, concrete []TypeId) bool {
	if id == NoFunc || int(id) >= len(t.funcs) {
		return false
	}
	fn := &t.funcs[id]
	for _, existing := range fn.Concrete {
		if slices.Equal(existing, concrete) {
			return false
		}
	}
	fn.Concrete = append(fn.Concrete, slices.Clone(concrete))
	return true
}

// ConcreteInstantiations returns every type-argument tuple observed for id.
func (t *Table) ConcreteInstantiations(id FuncId) [][]TypeId {
	if id == NoFunc || int(id) >= len(t.funcs) {
		return nil
	}
	return t.funcs[id].Concrete
}
