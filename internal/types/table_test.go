package types

import "testing"

func TestNewTableSeedsBuiltins(t *testing.T) {
	tbl := NewTable(nil)
	b := tbl.Builtins()
	if b.Void == NoType || b.Bool == NoType || b.Int == NoType || b.String == NoType {
		t.Fatalf("builtins not seeded: %+v", b)
	}
	if tbl.Sym(b.Bool).Kind != KindBool {
		t.Fatalf("expected bool builtin to carry KindBool, got %v", tbl.Sym(b.Bool).Kind)
	}
	if tbl.Sym(b.Error).Kind != KindInterface {
		t.Fatalf("expected error builtin to be an interface, got %v", tbl.Sym(b.Error).Kind)
	}
}

func TestRegisterSymDedupsByName(t *testing.T) {
	tbl := NewTable(nil)
	name := tbl.Strings.Intern("widget.Foo")
	first := tbl.RegisterSym(Symbol{Name: name, Kind: KindStruct})
	second := tbl.RegisterSym(Symbol{Name: name, Kind: KindStruct})
	if first != second {
		t.Fatalf("expected RegisterSym to dedup identical names, got %v and %v", first, second)
	}
}

func TestRegisterSymOverwritesPlaceholder(t *testing.T) {
	tbl := NewTable(nil)
	ph := tbl.AddPlaceholderType("widget.Foo", LangNative)
	if tbl.Sym(ph).Kind != KindPlaceholder {
		t.Fatalf("expected placeholder kind, got %v", tbl.Sym(ph).Kind)
	}
	name := tbl.Strings.Intern("widget.Foo")
	real := tbl.RegisterSym(Symbol{Name: name, Kind: KindStruct})
	if real != ph {
		t.Fatalf("expected the placeholder's id to be reused, got %v want %v", real, ph)
	}
	if tbl.Sym(real).Kind != KindStruct {
		t.Fatalf("expected placeholder to be overwritten with KindStruct, got %v", tbl.Sym(real).Kind)
	}
}

func TestTrySymInvalidID(t *testing.T) {
	tbl := NewTable(nil)
	if _, ok := tbl.TrySym(NewTypeId(9999)); ok {
		t.Fatalf("expected TrySym to fail for an unregistered index")
	}
}

func TestFindSymAndIdxUnregisteredName(t *testing.T) {
	tbl := NewTable(nil)
	missing := tbl.Strings.Intern("nowhere.Nope")
	sym, idx := tbl.FindSymAndIdx(missing)
	if idx != -1 || sym.Kind != KindInvalid {
		t.Fatalf("expected unregistered name to report idx=-1 and KindInvalid, got idx=%d kind=%v", idx, sym.Kind)
	}
}
