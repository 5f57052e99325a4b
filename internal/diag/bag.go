package diag

import (
	"fmt"

	"fortio.org/safecast"
)

// Bag holds diagnostics up to a capacity limit, matching spec §4.2.5's
// `message_limit`/`should_abort` contract: once full, Add reports the
// overflow itself failed and the caller is expected to set its own
// should-abort flag.
type Bag struct {
	items   []*Diagnostic
	maximum uint16
}

// NewBag creates a Bag bounded at maximum diagnostics.
func NewBag(maximum int) *Bag {
	m, err := safecast.Conv[uint16](maximum)
	if err != nil {
		panic(fmt.Errorf("diag: bag maximum overflow: %w", err))
	}
	return &Bag{items: make([]*Diagnostic, 0, m), maximum: m}
}

// Add appends d, respecting the capacity limit. It returns false when the
// bag is already full.
func (b *Bag) Add(d *Diagnostic) bool {
	if d == nil || len(b.items) >= int(b.maximum) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Len returns the number of diagnostics currently held.
func (b *Bag) Len() int { return len(b.items) }

// Full reports whether the bag has reached its capacity.
func (b *Bag) Full() bool { return len(b.items) >= int(b.maximum) }

// HasErrors reports whether any diagnostic is at SevError or above.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns a read-only view of the collected diagnostics. Callers
// must not mutate the returned slice.
func (b *Bag) Items() []*Diagnostic { return b.items }
