package diag

import "github.com/ripplang/ripplec/internal/source"

// Reporter is the narrow interface the Checker depends on, so tests can
// swap in a simple collecting stub without constructing a full Bag.
type Reporter interface {
	Report(d Diagnostic)
	ShouldAbort() bool
}

// DedupReporter wraps a Bag, deduplicating diagnostics that share a file,
// a start byte offset and a code (spans carry byte offsets only, so the
// key's `line` field holds the start offset, not a line number), and
// tracking the `should_abort` flag once the bag's
// message_limit is exceeded or a resource cutoff fires.
type DedupReporter struct {
	bag         *Bag
	seen        map[lineKey]bool
	shouldAbort bool
}

type lineKey struct {
	file source.FileID
	line uint32
	code Code
}

// NewDedupReporter wraps bag.
func NewDedupReporter(bag *Bag) *DedupReporter {
	return &DedupReporter{bag: bag, seen: make(map[lineKey]bool, 32)}
}

// Report records d unless an equal-code diagnostic at the same file and
// start offset was already reported, or the bag is full (in which case should_abort is set
// per spec §4.2.5/§7).
func (r *DedupReporter) Report(d Diagnostic) {
	key := lineKey{file: d.Primary.File, line: uint32(d.Primary.Start), code: d.Code}
	if r.seen[key] {
		return
	}
	r.seen[key] = true
	cp := d
	if !r.bag.Add(&cp) {
		r.shouldAbort = true
	}
}

// ShouldAbort reports whether a resource cutoff or the message limit has
// fired (spec §4.2.5/§7).
func (r *DedupReporter) ShouldAbort() bool { return r.shouldAbort }

// Abort force-sets should_abort, used by the Checker's own nesting-depth
// and embed-depth cutoffs (spec §4.2.5).
func (r *DedupReporter) Abort() { r.shouldAbort = true }

// Bag returns the underlying diagnostic collection.
func (r *DedupReporter) Bag() *Bag { return r.bag }
