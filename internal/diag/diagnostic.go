package diag

import "github.com/ripplang/ripplec/internal/source"

// Note attaches auxiliary context (a secondary span and message) to a
// Diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// FixApplicability communicates how safe a Fix is to apply automatically.
type FixApplicability uint8

const (
	FixAlwaysSafe FixApplicability = iota
	FixSafeWithHeuristics
	FixManualReview
)

// TextEdit is a single textual change a Fix would apply.
type TextEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a structured, non-executed suggestion attached to a Diagnostic
// (spec §4.2.2 Cast: "rejected with targeted suggestions"; §7's "optional
// detail list" given a concrete shape).
type Fix struct {
	Title         string
	Applicability FixApplicability
	Edits         []TextEdit
}

// Diagnostic is one reported issue.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
