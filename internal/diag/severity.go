// Package diag implements the Checker's diagnostic accumulator (spec §7):
// errors, warnings, and notices are collected, never thrown — every
// failing code path in the checker substitutes a fallback type and keeps
// going so later diagnostics still surface.
package diag

// Severity classifies a Diagnostic's importance.
type Severity uint8

const (
	// SevNotice is informational: deprecations, style (spec §7).
	SevNotice Severity = iota
	// SevWarning is a fixable concern, promotable to error under strict mode.
	SevWarning
	// SevError is fatal for the build.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevNotice:
		return "notice"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "unknown"
	}
}
