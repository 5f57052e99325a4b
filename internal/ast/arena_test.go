package ast

import "testing"

func TestArenaAllocateIsOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil {
		t.Fatalf("index 0 must read as nil")
	}
	idx := a.Allocate(42)
	if idx != 1 {
		t.Fatalf("expected first allocation to land at index 1, got %d", idx)
	}
	if got := a.Get(idx); got == nil || *got != 42 {
		t.Fatalf("expected to read back 42, got %v", got)
	}
}

func TestArenaSetOverwritesInPlace(t *testing.T) {
	a := NewArena[string](0)
	idx := a.Allocate("before")
	a.Set(idx, "after")
	if got := a.Get(idx); got == nil || *got != "after" {
		t.Fatalf("expected Set to overwrite in place, got %v", got)
	}
}

func TestArenaLenTracksAllocations(t *testing.T) {
	a := NewArena[int](0)
	if a.Len() != 0 {
		t.Fatalf("expected empty arena to report len 0, got %d", a.Len())
	}
	a.Allocate(1)
	a.Allocate(2)
	if a.Len() != 2 {
		t.Fatalf("expected len 2 after two allocations, got %d", a.Len())
	}
}
