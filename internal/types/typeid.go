// Package types implements the process-wide Type Table: type identity
// (interning), composite type construction, method/field lookup through
// inheritance and embedding, interface conformance bookkeeping, generic
// instantiation, and function registration. The table is pure data and
// queries — it never produces diagnostics; that is the Checker's job.
package types

import "fmt"

// TypeId is a compact handle into the Table: the low 32 bits are a dense
// index into the symbol arena, the next 8 bits count pointer indirections
// (`*T`, `**T`, ...), and the 16 bits above those are a packed flag set. Deref/Ref/
// SetNrMuls/ClearFlag/HasFlag arithmetic all preserve the bits they don't
// touch, so a TypeId can be passed around and transformed without consulting
// the Table.
type TypeId uint64

// NoType is the sentinel "unresolved" handle: index 0, no flags, no
// indirection. Any TypeId with a zero index is treated as unresolved
// regardless of its flag bits, since a flagged-but-unindexed handle can
// never have been produced by the Table.
const NoType TypeId = 0

const (
	indexBits    = 32
	ptrDepthBits = 8
	indexMask    = (uint64(1) << indexBits) - 1
	ptrDepthMask = (uint64(1) << ptrDepthBits) - 1
	ptrDepthShift = indexBits
	flagShift     = indexBits + ptrDepthBits
)

// Flag is one packed bit of a TypeId's modifier set.
type Flag uint16

const (
	// FlagOptional marks a `?T` optional type (present xor carries an error).
	FlagOptional Flag = 1 << iota
	// FlagVariadic marks a `...T` variadic parameter type.
	FlagVariadic
	// FlagGeneric marks a type that still mentions an unbound type parameter.
	FlagGeneric
	// FlagShared marks a `shared T` concurrency-qualified type.
	FlagShared
	// FlagSharedMut distinguishes a shared type that additionally allows
	// mutation through rlock (vs. a read-only shared view). Only meaningful
	// together with FlagShared; it is the "mutability share mode" bit the
	// spec calls out alongside the other flags.
	FlagSharedMut
)

// NewTypeId builds a bare handle with no flags and no indirection.
func NewTypeId(idx uint32) TypeId {
	return TypeId(uint64(idx))
}

// Index returns the dense arena index this handle resolves to.
func (t TypeId) Index() uint32 {
	return uint32(uint64(t) & indexMask)
}

// PtrDepth returns the number of `*` indirections wrapping the base type.
func (t TypeId) PtrDepth() uint8 {
	return uint8((uint64(t) >> ptrDepthShift) & ptrDepthMask)
}

// Flags returns the packed flag bits.
func (t TypeId) Flags() Flag {
	return Flag(uint64(t) >> flagShift)
}

// IsValid reports whether the handle resolves to a real arena slot.
func (t TypeId) IsValid() bool {
	return t.Index() != 0
}

// HasFlag reports whether f is set.
func (t TypeId) HasFlag(f Flag) bool {
	return t.Flags()&f != 0
}

func (t TypeId) withFlags(f Flag) TypeId {
	base := uint64(t) &^ (uint64(^uint16(0)) << flagShift)
	return TypeId(base | (uint64(f) << flagShift))
}

// SetFlag returns a copy of t with f set.
func (t TypeId) SetFlag(f Flag) TypeId {
	return t.withFlags(t.Flags() | f)
}

// ClearFlag returns a copy of t with f cleared.
func (t TypeId) ClearFlag(f Flag) TypeId {
	return t.withFlags(t.Flags() &^ f)
}

// SetNrMuls returns a copy of t with its pointer depth replaced by n.
func (t TypeId) SetNrMuls(n uint8) TypeId {
	base := uint64(t) &^ (ptrDepthMask << ptrDepthShift)
	return TypeId(base | (uint64(n) << ptrDepthShift))
}

// Deref drops one level of pointer indirection; a no-op at depth 0.
func (t TypeId) Deref() TypeId {
	d := t.PtrDepth()
	if d == 0 {
		return t
	}
	return t.SetNrMuls(d - 1)
}

// Ref adds one level of pointer indirection.
func (t TypeId) Ref() TypeId {
	return t.SetNrMuls(t.PtrDepth() + 1)
}

// WithIndex returns a copy of t pointing at a different arena slot, keeping
// this handle's flags and pointer depth.
func (t TypeId) WithIndex(idx uint32) TypeId {
	base := uint64(t) &^ indexMask
	return TypeId(base | uint64(idx))
}

// Base strips flags and pointer depth, returning the bare indexed handle.
func (t TypeId) Base() TypeId {
	return NewTypeId(t.Index())
}

func (t TypeId) String() string {
	s := fmt.Sprintf("T#%d", t.Index())
	if d := t.PtrDepth(); d > 0 {
		s = fmt.Sprintf("%s(ptr*%d)", s, d)
	}
	if f := t.Flags(); f != 0 {
		s += "[" + f.String() + "]"
	}
	return s
}

func (f Flag) String() string {
	var s string
	add := func(name string, bit Flag) {
		if f&bit == 0 {
			return
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	add("optional", FlagOptional)
	add("variadic", FlagVariadic)
	add("generic", FlagGeneric)
	add("shared", FlagShared)
	add("shared_mut", FlagSharedMut)
	return s
}
