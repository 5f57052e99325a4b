package types

import "github.com/ripplang/ripplec/internal/source"

// maxEmbedDepth bounds breadth-first embed traversal so an accidental
// embedding cycle is diagnosed instead of overflowing the stack (spec
// §4.1.4, §9 "Interface embedding expansion... global depth cutoff").
const maxEmbedDepth = 32

// AmbiguousMethodErr is returned by FindMethodFromEmbeds when more than one
// embedded type contributes a method of the same name.
type AmbiguousMethodErr struct {
	Name       string
	Candidates []TypeId
}

func (e *AmbiguousMethodErr) Error() string {
	return "ambiguous method " + e.Name
}

// NoSuchMemberErr is returned when an aggregate lookup can't find a field
// or method shared by every member.
type NoSuchMemberErr struct {
	Member string
	Kind   string // "field" or "method"
}

func (e *NoSuchMemberErr) Error() string {
	return "no such " + e.Kind + " " + e.Member
}

// methodNameOf finds fn's simple (unqualified) name as a StringID, by
// looking it up in the function table.
func (t *Table) methodNameOf(fn FuncId) source.StringID {
	decl, ok := t.Func(fn)
	if !ok {
		return source.NoStringID
	}
	return decl.Name
}

func (t *Table) findDirectMethod(sym Symbol, name source.StringID) (FuncId, bool) {
	for _, fn := range sym.Methods {
		if t.methodNameOf(fn) == name {
			return fn, true
		}
	}
	return NoFunc, false
}

// FindMethod walks id's direct method list, then its alias parent chain,
// returning the first match (spec §4.1.4). Aggregates compute the
// intersection method across their members on every lookup.
func (t *Table) FindMethod(id TypeId, name source.StringID) (FuncId, bool) {
	sym, ok := t.TrySym(id)
	if !ok {
		return NoFunc, false
	}
	if sym.Kind == KindAggregate {
		return t.findAggregateMethod(id, name)
	}
	return t.findMethodChain(id, sym, name, 0)
}

func (t *Table) findMethodChain(id TypeId, sym Symbol, name source.StringID, depth int) (FuncId, bool) {
	if depth > maxAliasChain {
		return NoFunc, false
	}
	if fn, ok := t.findDirectMethod(sym, name); ok {
		return fn, true
	}
	if sym.Kind == KindAlias && sym.Parent.IsValid() {
		parentSym, ok := t.TrySym(sym.Parent)
		if !ok {
			return NoFunc, false
		}
		return t.findMethodChain(sym.Parent, parentSym, name, depth+1)
	}
	return NoFunc, false
}

func (t *Table) findAggregateMethod(id TypeId, name source.StringID) (FuncId, bool) {
	info := t.aggregateInfo(id)
	if info == nil || len(info.Members) == 0 {
		return NoFunc, false
	}
	first, ok := t.FindMethodWithEmbeds(info.Members[0], name)
	if !ok {
		return NoFunc, false
	}
	firstDecl, _ := t.Func(first)
	for _, member := range info.Members[1:] {
		fn, ok := t.FindMethodWithEmbeds(member, name)
		if !ok {
			return NoFunc, false
		}
		decl, _ := t.Func(fn)
		if decl.Return != firstDecl.Return || len(decl.Params) != len(firstDecl.Params) {
			return NoFunc, false
		}
	}
	return first, true
}

func embedsOf(t *Table, id TypeId, sym Symbol) []TypeId {
	switch sym.Kind {
	case KindStruct:
		if info := t.structInfo(id); info != nil {
			return info.Embeds
		}
	case KindInterface:
		if info := t.interfaceInfo(id); info != nil {
			return info.Embeds
		}
	case KindAggregate:
		if info := t.aggregateInfo(id); info != nil {
			return info.Members
		}
	case KindAlias:
		if sym.Parent.IsValid() {
			return []TypeId{sym.Parent}
		}
	}
	return nil
}

// FindMethodFromEmbeds searches every embedded type in breadth order
// (structs, interfaces, aggregates, aliases), returning an ambiguity error
// when more than one embed contributes a method of the same name.
func (t *Table) FindMethodFromEmbeds(id TypeId, name source.StringID) (FuncId, error) {
	sym, ok := t.TrySym(id)
	if !ok {
		return NoFunc, nil
	}
	embeds := embedsOf(t, id, sym)
	type hit struct {
		fn  FuncId
		src TypeId
	}
	var hits []hit
	nameStr, _ := t.Strings.Lookup(name)
	queue := append([]TypeId{}, embeds...)
	seen := map[TypeId]bool{}
	for depth := 0; len(queue) > 0 && depth < maxEmbedDepth; depth++ {
		var next []TypeId
		for _, e := range queue {
			if seen[e] {
				continue
			}
			seen[e] = true
			if fn, ok := t.FindMethod(e, name); ok {
				hits = append(hits, hit{fn: fn, src: e})
				continue
			}
			esym, ok := t.TrySym(e)
			if !ok {
				continue
			}
			next = append(next, embedsOf(t, e, esym)...)
		}
		queue = next
	}
	switch len(hits) {
	case 0:
		return NoFunc, nil
	case 1:
		return hits[0].fn, nil
	default:
		candidates := make([]TypeId, len(hits))
		for i, h := range hits {
			candidates[i] = h.src
		}
		return NoFunc, &AmbiguousMethodErr{Name: nameStr, Candidates: candidates}
	}
}

// FindMethodWithEmbeds combines a direct lookup with an embed search,
// preferring the direct (non-embedded) method when both exist.
func (t *Table) FindMethodWithEmbeds(id TypeId, name source.StringID) (FuncId, bool) {
	if fn, ok := t.FindMethod(id, name); ok {
		return fn, true
	}
	fn, err := t.FindMethodFromEmbeds(id, name)
	if err != nil || fn == NoFunc {
		return NoFunc, false
	}
	return fn, true
}

func fieldsOf(t *Table, id TypeId, sym Symbol) []Field {
	switch sym.Kind {
	case KindStruct:
		if info := t.structInfo(id); info != nil {
			return info.Fields
		}
	case KindInterface:
		if info := t.interfaceInfo(id); info != nil {
			return info.Fields
		}
	}
	return nil
}

func findFieldIn(fields []Field, name source.StringID) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FindField resolves struct/interface fields directly, intersects member
// fields for aggregates, and lazily computes+caches a sum type's common
// fields (spec §4.1.4, §9): a field is common when every variant declares
// it with the same type.
func (t *Table) FindField(id TypeId, name source.StringID) (Field, bool) {
	sym, ok := t.TrySym(id)
	if !ok {
		return Field{}, false
	}
	switch sym.Kind {
	case KindSumType:
		return t.findSumTypeField(id, name)
	case KindAggregate:
		return t.findAggregateField(id, name)
	default:
		return findFieldIn(fieldsOf(t, id, sym), name)
	}
}

func (t *Table) findSumTypeField(id TypeId, name source.StringID) (Field, bool) {
	info := t.sumTypeInfo(id)
	if info == nil {
		return Field{}, false
	}
	if !info.commonComputed {
		t.computeSumTypeCommonFields(id, info)
	}
	return findFieldIn(info.commonFields, name)
}

func (t *Table) computeSumTypeCommonFields(id TypeId, info *SumTypeInfo) {
	info.commonComputed = true
	if len(info.Variants) == 0 {
		return
	}
	firstFields := t.FindAllFields(info.Variants[0])
	var common []Field
	for _, f := range firstFields {
		sameInAll := true
		for _, variant := range info.Variants[1:] {
			vf, ok := t.FindField(variant, f.Name)
			if !ok || vf.Type != f.Type {
				sameInAll = false
				break
			}
		}
		if sameInAll {
			common = append(common, f)
		}
	}
	info.commonFields = common
}

// FindAllFields returns every direct field of a struct/interface symbol
// (not aggregates or sum types), used internally to seed common-field
// intersection.
func (t *Table) FindAllFields(id TypeId) []Field {
	sym, ok := t.TrySym(id)
	if !ok {
		return nil
	}
	return fieldsOf(t, id, sym)
}

func (t *Table) findAggregateField(id TypeId, name source.StringID) (Field, bool) {
	info := t.aggregateInfo(id)
	if info == nil || len(info.Members) == 0 {
		return Field{}, false
	}
	first, ok := t.FindFieldWithEmbeds(info.Members[0], name)
	if !ok {
		return Field{}, false
	}
	for _, member := range info.Members[1:] {
		other, ok := t.FindFieldWithEmbeds(member, name)
		if !ok || other.Type != first.Type {
			return Field{}, false
		}
	}
	return first, true
}

// FindFieldFromEmbeds mirrors FindMethodFromEmbeds for fields.
func (t *Table) FindFieldFromEmbeds(id TypeId, name source.StringID) (Field, bool) {
	sym, ok := t.TrySym(id)
	if !ok {
		return Field{}, false
	}
	queue := embedsOf(t, id, sym)
	seen := map[TypeId]bool{}
	for depth := 0; len(queue) > 0 && depth < maxEmbedDepth; depth++ {
		var next []TypeId
		for _, e := range queue {
			if seen[e] {
				continue
			}
			seen[e] = true
			if f, ok := t.FindField(e, name); ok {
				return f, true
			}
			esym, ok := t.TrySym(e)
			if !ok {
				continue
			}
			next = append(next, embedsOf(t, e, esym)...)
		}
		queue = next
	}
	return Field{}, false
}

// FindFieldWithEmbeds combines a direct lookup with an embed search.
func (t *Table) FindFieldWithEmbeds(id TypeId, name source.StringID) (Field, bool) {
	if f, ok := t.FindField(id, name); ok {
		return f, true
	}
	return t.FindFieldFromEmbeds(id, name)
}
