package types

import (
	"slices"

	"github.com/ripplang/ripplec/internal/source"
)

// FindStructInstance returns a struct TypeId whose head name and
// instantiated type arguments match args, scanning the arena linearly
// (instantiations are rare enough relative to plain lookups that this
// mirrors the teacher's own approach rather than maintaining a second
// index).
func (t *Table) FindStructInstance(name source.StringID, args []TypeId) (TypeId, bool) {
	for idx := uint32(1); int(idx) < len(t.symbols); idx++ {
		sym := t.symbols[idx]
		if sym.Kind != KindStruct || sym.Name != name {
			continue
		}
		info := t.structInfo(NewTypeId(idx))
		if info == nil || !slices.Equal(info.ConcreteParams, args) {
			continue
		}
		return NewTypeId(idx), true
	}
	return NoType, false
}

// FindInterfaceInstance is FindStructInstance for interfaces. Instantiated
// interfaces don't carry a ConcreteParams slot on InterfaceInfo (see
// canonical.go), so this matches purely by the materialized canonical
// name, which already encodes the type arguments.
func (t *Table) FindInterfaceInstance(name source.StringID, args []TypeId) (TypeId, bool) {
	head, _ := t.Strings.Lookup(name)
	want := genericSpelling(head, t.namesOf(args))
	return t.lookupCanonical(want)
}

// FindSumTypeInstance is FindStructInstance for sum types, matched by
// materialized canonical name for the same reason as interfaces.
func (t *Table) FindSumTypeInstance(name source.StringID, args []TypeId) (TypeId, bool) {
	head, _ := t.Strings.Lookup(name)
	want := genericSpelling(head, t.namesOf(args))
	return t.lookupCanonical(want)
}
