package types

import "testing"

func TestFindOrRegisterArrayDedups(t *testing.T) {
	tbl := NewTable(nil)
	elem := tbl.Builtins().String
	a1 := tbl.FindOrRegisterArray(elem)
	a2 := tbl.FindOrRegisterArray(elem)
	if a1 != a2 {
		t.Fatalf("expected identical array types to dedup, got %v and %v", a1, a2)
	}
	info, ok := tbl.ArrayInfo(a1)
	if !ok || info.Elem != elem || info.NrDims != 1 {
		t.Fatalf("unexpected array info: %+v ok=%v", info, ok)
	}
}

func TestArrayWithDimsNests(t *testing.T) {
	tbl := NewTable(nil)
	elem := tbl.Builtins().Int
	nested := tbl.ArrayWithDims(elem, 2)
	info, ok := tbl.ArrayInfo(nested)
	if !ok || info.NrDims != 2 {
		t.Fatalf("expected a 2-dim array, got %+v ok=%v", info, ok)
	}
	inner, ok := tbl.ArrayInfo(info.Elem)
	if !ok || inner.Elem != elem {
		t.Fatalf("expected the inner array to wrap the element type, got %+v ok=%v", inner, ok)
	}
}

func TestArrayFixedDistinctFromDynamic(t *testing.T) {
	tbl := NewTable(nil)
	elem := tbl.Builtins().Int
	dyn := tbl.FindOrRegisterArray(elem)
	fixed := tbl.ArrayFixed(elem, 4, "")
	if dyn == fixed {
		t.Fatalf("fixed-size and dynamic arrays must be distinct types")
	}
	info, ok := tbl.ArrayFixedInfo(fixed)
	if !ok || info.Size != 4 || info.Elem != elem {
		t.Fatalf("unexpected fixed array info: %+v ok=%v", info, ok)
	}
}

func TestMapDeduplicatesByKeyAndValue(t *testing.T) {
	tbl := NewTable(nil)
	key := tbl.Builtins().String
	val := tbl.Builtins().Int
	m1 := tbl.Map(key, val)
	m2 := tbl.Map(key, val)
	if m1 != m2 {
		t.Fatalf("expected identical maps to dedup, got %v and %v", m1, m2)
	}
	other := tbl.Map(val, key)
	if m1 == other {
		t.Fatalf("maps with swapped key/value must be distinct types")
	}
}

func TestMultiReturnInfoRoundTrips(t *testing.T) {
	tbl := NewTable(nil)
	a, b := tbl.Builtins().Int, tbl.Builtins().Bool
	mr := tbl.MultiReturn([]TypeId{a, b})
	info, ok := tbl.MultiReturnInfo(mr)
	if !ok || len(info.Types) != 2 || info.Types[0] != a || info.Types[1] != b {
		t.Fatalf("unexpected multi-return info: %+v ok=%v", info, ok)
	}
	if _, ok := tbl.MultiReturnInfo(tbl.Builtins().Int); ok {
		t.Fatalf("expected MultiReturnInfo to fail on a non-multi-return type")
	}
}
