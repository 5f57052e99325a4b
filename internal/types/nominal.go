package types

import (
	"slices"

	"github.com/ripplang/ripplec/internal/source"
)

// RegisterStruct allocates a nominal struct type and returns its TypeId.
// The struct starts with no fields; call SetStructFields once its body is
// resolved (structs are frequently registered as forward declarations).
func (t *Table) RegisterStruct(name source.StringID, module source.StringID) TypeId {
	slot := t.appendStruct(StructInfo{})
	return t.RegisterSym(Symbol{Name: name, Mangled: name, Module: module, Kind: KindStruct, Payload: slot})
}

// RegisterGenericStruct is RegisterStruct for a struct declared with type
// parameters.
func (t *Table) RegisterGenericStruct(name, module source.StringID, params []source.StringID) TypeId {
	slot := t.appendStruct(StructInfo{GenericParams: params, IsGeneric: true})
	id := t.RegisterSym(Symbol{Name: name, Mangled: name, Module: module, Kind: KindStruct, Payload: slot})
	return id.SetFlag(FlagGeneric)
}

// RegisterInterface allocates a nominal interface type.
func (t *Table) RegisterInterface(name, module source.StringID) TypeId {
	slot := t.appendInterface(InterfaceInfo{})
	return t.RegisterSym(Symbol{Name: name, Mangled: name, Module: module, Kind: KindInterface, Payload: slot})
}

// RegisterSumType allocates a nominal sum type over the given variants.
func (t *Table) RegisterSumType(name, module source.StringID, variants []TypeId) TypeId {
	slot := t.appendSumType(SumTypeInfo{Variants: variants})
	return t.RegisterSym(Symbol{Name: name, Mangled: name, Module: module, Kind: KindSumType, Payload: slot})
}

// RegisterEnum allocates a nominal enum type.
func (t *Table) RegisterEnum(name, module source.StringID, variants []EnumVariant, isFlag bool) TypeId {
	slot := t.appendEnum(EnumInfo{Variants: variants, IsFlag: isFlag})
	return t.RegisterSym(Symbol{Name: name, Mangled: name, Module: module, Kind: KindEnum, Payload: slot})
}

// RegisterAlias allocates a nominal alias `type Name = Target`.
func (t *Table) RegisterAlias(name, module source.StringID, target TypeId) TypeId {
	return t.RegisterSym(Symbol{Name: name, Mangled: name, Module: module, Kind: KindAlias, Parent: target})
}

// RegisterGenericInst registers a parsed-but-not-yet-materialized reference
// like `Foo<int>` (spec Glossary "Generic_inst"). GenericInstsToConcrete
// later rewrites every such placeholder into a real instantiation.
func (t *Table) RegisterGenericInst(parent TypeId, concrete []TypeId) TypeId {
	parentName, _ := t.Strings.Lookup(t.Sym(parent).Name)
	name := genericSpelling(parentName, t.namesOf(concrete))
	if id, ok := t.lookupCanonical(name); ok {
		return id
	}
	slot := t.appendGenericInst(GenericInstInfo{Parent: parent, Concrete: slices.Clone(concrete)})
	return t.internComposite(KindGenericInst, slot, func(TypeId) string { return name })
}

// FindOrRegisterAggregate returns the synthetic union type (spec Glossary
// "Aggregate") for a set of sum-type variants matched simultaneously,
// caching by the sorted member tuple so repeated `is A, B` smartcasts
// reuse the same TypeId.
func (t *Table) FindOrRegisterAggregate(members []TypeId) TypeId {
	key := aggregateKey(members)
	if id, ok := t.aggregateCache[key]; ok {
		return id
	}
	slot := t.appendAggregate(AggregateInfo{Members: slices.Clone(members)})
	name := "aggregate(" + key + ")"
	id := t.internComposite(KindAggregate, slot, func(TypeId) string { return name })
	t.aggregateCache[key] = id
	return id
}

func aggregateKey(members []TypeId) string {
	sorted := slices.Clone(members)
	slices.Sort(sorted)
	var s string
	for i, m := range sorted {
		if i > 0 {
			s += ","
		}
		s += itoa(uint64(m))
	}
	return s
}
