package types

import (
	"fmt"
	"slices"
	"sync"

	"fortio.org/safecast"
)

func appendSlot[T any](slice *[]T, v T) uint32 {
	*slice = append(*slice, v)
	slot, err := safecast.Conv[uint32](len(*slice) - 1)
	if err != nil {
		panic(fmt.Errorf("types: payload arena overflow: %w", err))
	}
	return slot
}

func (t *Table) appendArray(v ArrayInfo) uint32           { return appendSlot(&t.arrays, v) }
func (t *Table) appendArrayFixed(v ArrayFixedInfo) uint32 { return appendSlot(&t.arraysFixed, v) }
func (t *Table) appendMap(v MapInfo) uint32               { return appendSlot(&t.maps, v) }
func (t *Table) appendChan(v ChanInfo) uint32              { return appendSlot(&t.chans, v) }
func (t *Table) appendElem(v ElemInfo) uint32              { return appendSlot(&t.elems, v) }
func (t *Table) appendMultiReturn(v MultiReturnInfo) uint32 {
	v.Types = slices.Clone(v.Types)
	return appendSlot(&t.multiReturns, v)
}
func (t *Table) appendFuncSig(v FuncSig) uint32 {
	v.Params = slices.Clone(v.Params)
	return appendSlot(&t.funcSigs, v)
}
func (t *Table) appendStruct(v StructInfo) uint32 {
	v.Fields = slices.Clone(v.Fields)
	v.Embeds = slices.Clone(v.Embeds)
	v.GenericParams = slices.Clone(v.GenericParams)
	v.ConcreteParams = slices.Clone(v.ConcreteParams)
	return appendSlot(&t.structs, v)
}
func (t *Table) appendInterface(v InterfaceInfo) uint32 {
	v.Fields = slices.Clone(v.Fields)
	v.Methods = slices.Clone(v.Methods)
	v.Embeds = slices.Clone(v.Embeds)
	v.Implementing = slices.Clone(v.Implementing)
	v.GenericParams = slices.Clone(v.GenericParams)
	v.embedsExpanded = &sync.Once{}
	return appendSlot(&t.interfaces, v)
}
func (t *Table) appendSumType(v SumTypeInfo) uint32 {
	v.Variants = slices.Clone(v.Variants)
	v.GenericParams = slices.Clone(v.GenericParams)
	return appendSlot(&t.sumTypes, v)
}
func (t *Table) appendAggregate(v AggregateInfo) uint32 {
	v.Members = slices.Clone(v.Members)
	return appendSlot(&t.aggregates, v)
}
func (t *Table) appendEnum(v EnumInfo) uint32 {
	v.Variants = slices.Clone(v.Variants)
	return appendSlot(&t.enums, v)
}
func (t *Table) appendGenericInst(v GenericInstInfo) uint32 {
	v.Concrete = slices.Clone(v.Concrete)
	return appendSlot(&t.genericInsts, v)
}

// Accessors return a pointer into the owning side table so callers can
// mutate metadata in place (fields filled in after a forward declaration,
// interface implementors appended on conformance, etc).

func (t *Table) arrayInfo(id TypeId) *ArrayInfo {
	return payloadPtr(t, id, KindArray, t.arrays)
}
func (t *Table) arrayFixedInfo(id TypeId) *ArrayFixedInfo {
	return payloadPtr(t, id, KindArrayFixed, t.arraysFixed)
}
func (t *Table) mapInfo(id TypeId) *MapInfo { return payloadPtr(t, id, KindMap, t.maps) }
func (t *Table) chanInfo(id TypeId) *ChanInfo { return payloadPtr(t, id, KindChan, t.chans) }
func (t *Table) elemInfo(id TypeId, k Kind) *ElemInfo { return payloadPtr(t, id, k, t.elems) }
func (t *Table) multiReturnInfo(id TypeId) *MultiReturnInfo {
	return payloadPtr(t, id, KindMultiReturn, t.multiReturns)
}
func (t *Table) funcSigInfo(id TypeId) *FuncSig { return payloadPtr(t, id, KindFunction, t.funcSigs) }
func (t *Table) structInfo(id TypeId) *StructInfo { return payloadPtr(t, id, KindStruct, t.structs) }
func (t *Table) interfaceInfo(id TypeId) *InterfaceInfo {
	return payloadPtr(t, id, KindInterface, t.interfaces)
}
func (t *Table) sumTypeInfo(id TypeId) *SumTypeInfo { return payloadPtr(t, id, KindSumType, t.sumTypes) }
func (t *Table) aggregateInfo(id TypeId) *AggregateInfo {
	return payloadPtr(t, id, KindAggregate, t.aggregates)
}
func (t *Table) enumInfo(id TypeId) *EnumInfo { return payloadPtr(t, id, KindEnum, t.enums) }
func (t *Table) genericInstInfo(id TypeId) *GenericInstInfo {
	return payloadPtr(t, id, KindGenericInst, t.genericInsts)
}

// payloadPtr is a tiny generic helper centralizing the
// "look up the symbol, check its Kind, index into the side table" dance
// every kind-specific accessor above repeats.
func payloadPtr[T any](t *Table, id TypeId, want Kind, table []T) *T {
	idx := id.Index()
	if idx == 0 || int(idx) >= len(t.symbols) {
		return nil
	}
	sym := &t.symbols[idx]
	if sym.Kind != want {
		return nil
	}
	if sym.Payload == 0 || int(sym.Payload) >= len(table) {
		return nil
	}
	return &table[sym.Payload]
}

// StructInfo returns a copy of the struct payload for id, if any.
func (t *Table) StructInfo(id TypeId) (StructInfo, bool) {
	p := t.structInfo(id)
	if p == nil {
		return StructInfo{}, false
	}
	return *p, true
}

// InterfaceInfo returns a copy of the interface payload for id, if any.
func (t *Table) InterfaceInfo(id TypeId) (InterfaceInfo, bool) {
	p := t.interfaceInfo(id)
	if p == nil {
		return InterfaceInfo{}, false
	}
	return *p, true
}

// SumTypeInfo returns a copy of the sum-type payload for id, if any.
func (t *Table) SumTypeInfo(id TypeId) (SumTypeInfo, bool) {
	p := t.sumTypeInfo(id)
	if p == nil {
		return SumTypeInfo{}, false
	}
	return *p, true
}

// EnumInfo returns a copy of the enum payload for id, if any.
func (t *Table) EnumInfo(id TypeId) (EnumInfo, bool) {
	p := t.enumInfo(id)
	if p == nil {
		return EnumInfo{}, false
	}
	return *p, true
}

// ArrayInfo returns a copy of the array payload for id, if any.
func (t *Table) ArrayInfo(id TypeId) (ArrayInfo, bool) {
	p := t.arrayInfo(id)
	if p == nil {
		return ArrayInfo{}, false
	}
	return *p, true
}

// MapInfo returns a copy of the map payload for id, if any.
func (t *Table) MapInfo(id TypeId) (MapInfo, bool) {
	p := t.mapInfo(id)
	if p == nil {
		return MapInfo{}, false
	}
	return *p, true
}

// ArrayFixedInfo returns a copy of the fixed-array payload for id, if any.
func (t *Table) ArrayFixedInfo(id TypeId) (ArrayFixedInfo, bool) {
	p := t.arrayFixedInfo(id)
	if p == nil {
		return ArrayFixedInfo{}, false
	}
	return *p, true
}

// ChanInfo returns a copy of the channel payload for id, if any.
func (t *Table) ChanInfo(id TypeId) (ChanInfo, bool) {
	p := t.chanInfo(id)
	if p == nil {
		return ChanInfo{}, false
	}
	return *p, true
}

// MultiReturnInfo returns a copy of the tuple-return payload for id, if any.
func (t *Table) MultiReturnInfo(id TypeId) (MultiReturnInfo, bool) {
	p := t.multiReturnInfo(id)
	if p == nil {
		return MultiReturnInfo{}, false
	}
	return *p, true
}

// FuncSig returns a copy of the function-type payload for id, if any.
func (t *Table) FuncSig(id TypeId) (FuncSig, bool) {
	p := t.funcSigInfo(id)
	if p == nil {
		return FuncSig{}, false
	}
	return *p, true
}

// SetStructFields overwrites a struct's field list after the body is
// resolved (structs are often registered as placeholders first).
func (t *Table) SetStructFields(id TypeId, fields []Field) {
	if p := t.structInfo(id); p != nil {
		p.Fields = slices.Clone(fields)
	}
}

// SetStructEmbeds overwrites a struct's embedded-type list.
func (t *Table) SetStructEmbeds(id TypeId, embeds []TypeId) {
	if p := t.structInfo(id); p != nil {
		p.Embeds = slices.Clone(embeds)
	}
}

// SetInterfaceFields overwrites an interface's field list.
func (t *Table) SetInterfaceFields(id TypeId, fields []Field) {
	if p := t.interfaceInfo(id); p != nil {
		p.Fields = slices.Clone(fields)
	}
}

// SetInterfaceMethods overwrites an interface's declared method list.
func (t *Table) SetInterfaceMethods(id TypeId, methods []FuncId) {
	if p := t.interfaceInfo(id); p != nil {
		p.Methods = slices.Clone(methods)
	}
}

// SetInterfaceEmbeds overwrites an interface's embedded-type list.
func (t *Table) SetInterfaceEmbeds(id TypeId, embeds []TypeId) {
	if p := t.interfaceInfo(id); p != nil {
		p.Embeds = slices.Clone(embeds)
	}
}

// AddMethod appends fn to id's direct method list (struct, interface, or
// sum-type symbol). Unknown kinds are ignored.
func (t *Table) AddMethod(id TypeId, fn FuncId) {
	idx := id.Index()
	if idx == 0 || int(idx) >= len(t.symbols) {
		return
	}
	t.symbols[idx].Methods = append(t.symbols[idx].Methods, fn)
}
