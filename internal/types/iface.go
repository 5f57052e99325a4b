package types

import (
	"slices"
	"sync"
)

// DoesTypeImplementInterface reports whether typ satisfies iface (spec
// §4.1.5). On success iface's Implementing set gains typ (plus voidptr, an
// escape hatch mirroring the source language's "any pointer satisfies any
// interface through voidptr" rule) unless the interface was marked with
// SetSingleImpl (no further implementors may be recorded once one is).
func (t *Table) DoesTypeImplementInterface(typ, iface TypeId) bool {
	if typ == iface {
		return true
	}
	if typ == NoType && iface == t.builtins.Error {
		return true
	}
	ifaceSym, ok := t.TrySym(iface)
	if !ok || ifaceSym.Kind != KindInterface {
		return false
	}
	typSym, ok := t.TrySym(typ)
	if !ok || typSym.Kind == KindInterface {
		// Interface-to-interface "implementation" is forbidden (spec §4.1.5).
		return false
	}
	info := t.interfaceInfo(iface)
	if info == nil {
		return false
	}
	for _, m := range info.Methods {
		want, _ := t.Func(m)
		name := want.Name
		got, ok := t.FindMethodWithEmbeds(typ, name)
		if !ok {
			return false
		}
		gotDecl, _ := t.Func(got)
		if !methodsCompatible(want, gotDecl) {
			return false
		}
	}
	for _, f := range info.Fields {
		got, ok := t.FindFieldWithEmbeds(typ, f.Name)
		if !ok {
			return false
		}
		if !fieldsCompatible(f, got) {
			return false
		}
	}
	t.recordImplementation(iface, info, typ)
	return true
}

func methodsCompatible(want, got FuncDecl) bool {
	if want.Return != got.Return {
		return false
	}
	if len(want.Params) != len(got.Params) {
		return false
	}
	for i := range want.Params {
		wp, gp := want.Params[i], got.Params[i]
		if wp.Type != gp.Type {
			// the C-language bridge widens across numeric/bool/pointer
			// families; anything stricter is a mismatch.
			if !(want.Lang == LangC || got.Lang == LangC) {
				return false
			}
		}
		if wp.IsMut != gp.IsMut {
			return false
		}
	}
	return true
}

func fieldsCompatible(want, got Field) bool {
	if want.Type != got.Type {
		return false
	}
	// a mutable interface field requires the implementor's field be
	// mutable too; a read-only interface field accepts either.
	if want.IsMut && !got.IsMut {
		return false
	}
	return true
}

func (t *Table) recordImplementation(iface TypeId, info *InterfaceInfo, typ TypeId) {
	if slices.Contains(info.Implementing, typ) {
		return
	}
	if info.SingleImpl && len(info.Implementing) > 0 {
		return
	}
	info.Implementing = append(info.Implementing, typ)
	if !slices.Contains(info.Implementing, t.builtins.VoidPtr) {
		info.Implementing = append(info.Implementing, t.builtins.VoidPtr)
	}
}

// Implementors returns the types on record as satisfying iface.
func (t *Table) Implementors(iface TypeId) []TypeId {
	info := t.interfaceInfo(iface)
	if info == nil {
		return nil
	}
	return slices.Clone(info.Implementing)
}

// SetSingleImpl marks iface so only one implementor is ever recorded.
func (t *Table) SetSingleImpl(iface TypeId) {
	if info := t.interfaceInfo(iface); info != nil {
		info.SingleImpl = true
	}
}

// CompleteInterfaceCheck performs the exhaustive interface x struct sweep
// once all declarations are known (spec §4.1.5). Trivially-empty
// interfaces (no methods, no fields) are short-circuited to same-module
// struct pairs only, since a non-empty cross-module sweep there would only
// ever report "yes" with no diagnostic value.
func (t *Table) CompleteInterfaceCheck() {
	for idx := uint32(1); int(idx) < len(t.symbols); idx++ {
		sym := t.symbols[idx]
		if sym.Kind != KindInterface {
			continue
		}
		iface := NewTypeId(idx)
		info := t.interfaceInfo(iface)
		if info == nil {
			continue
		}
		trivial := len(info.Methods) == 0 && len(info.Fields) == 0
		for sidx := uint32(1); int(sidx) < len(t.symbols); sidx++ {
			ssym := t.symbols[sidx]
			if ssym.Kind != KindStruct {
				continue
			}
			if trivial && ssym.Module != sym.Module {
				continue
			}
			t.DoesTypeImplementInterface(NewTypeId(sidx), iface)
		}
	}
}

// ExpandEmbeds memoizes the breadth-first embed expansion for an interface,
// matching spec §4.1.4/§9's "expand lazily with a per-interface expanded
// flag". The expansion itself lives in FindMethodFromEmbeds/
// FindFieldFromEmbeds, which already re-walk embeds; this flag exists so
// callers that only need "has this interface's embed set ever been walked"
// (e.g. cycle diagnostics) don't force a walk themselves. sync.Once makes
// the memo safe if CompleteInterfaceCheck's sweep and a concurrent checker
// pass ever probe the same interface at once; it returns whether the
// expansion had already run before this call.
func (t *Table) ExpandEmbeds(iface TypeId) bool {
	info := t.interfaceInfo(iface)
	if info == nil {
		return false
	}
	if info.embedsExpanded == nil {
		info.embedsExpanded = &sync.Once{}
	}
	alreadyDone := true
	info.embedsExpanded.Do(func() {
		alreadyDone = false
	})
	return alreadyDone
}
