package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a generic typed arena. Indices are 1-based; 0 means "none".
type Arena[T any] struct {
	data []*T
}

// NewArena allocates an Arena with capHint initial capacity.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]*T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	elem := new(T)
	*elem = value
	a.data = append(a.data, elem)
	return a.Len()
}

// Get returns a pointer to the element at index, or nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return a.data[index-1]
}

// Set overwrites the element at index in place.
func (a *Arena[T]) Set(index uint32, value T) {
	if index == 0 {
		return
	}
	*a.data[index-1] = value
}

// Len returns the number of allocated elements.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("ast: arena len overflow: %w", err))
	}
	return n
}
