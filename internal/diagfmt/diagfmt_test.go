package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
)

func TestPrettyRendersSeverityAndCode(t *testing.T) {
	diags := []*diag.Diagnostic{
		{
			Severity: diag.SevError,
			Code:     diag.CheckUnknownIdent,
			Message:  "unknown identifier \"x\"",
			Primary:  source.Span{File: 1, Start: 10, End: 12},
		},
	}
	var buf bytes.Buffer
	if err := Pretty(&buf, diags, Options{Color: false}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "error") {
		t.Fatalf("expected severity in output, got %q", out)
	}
	if !strings.Contains(out, diag.CheckUnknownIdent.ID()) {
		t.Fatalf("expected code id in output, got %q", out)
	}
	if !strings.Contains(out, "file#1") {
		t.Fatalf("expected default path fallback, got %q", out)
	}
}

func TestPrettyUsesPathResolver(t *testing.T) {
	diags := []*diag.Diagnostic{
		{Severity: diag.SevWarning, Code: diag.CheckUnusedVariable, Message: "unused", Primary: source.Span{File: 3}},
	}
	var buf bytes.Buffer
	opts := Options{Color: false, PathOf: func(id uint32) string {
		if id == 3 {
			return "widget.rp"
		}
		return "?"
	}}
	if err := Pretty(&buf, diags, opts); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if !strings.Contains(buf.String(), "widget.rp") {
		t.Fatalf("expected resolved path in output, got %q", buf.String())
	}
}

func TestPrettyRendersNotesAndFixes(t *testing.T) {
	diags := []*diag.Diagnostic{
		{
			Severity: diag.SevError,
			Code:     diag.CheckBadCast,
			Message:  "no cast rule covers this pair",
			Notes:    []diag.Note{{Msg: "declared here"}},
			Fixes:    []diag.Fix{{Title: "use an explicit conversion", Edits: []diag.TextEdit{{}}}},
		},
	}
	var buf bytes.Buffer
	if err := Pretty(&buf, diags, Options{Color: false}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "declared here") || !strings.Contains(out, "use an explicit conversion") {
		t.Fatalf("expected notes and fixes rendered, got %q", out)
	}
}

func TestWrapMessageTruncatesToWidth(t *testing.T) {
	msg := "this message is long enough to be truncated"
	got := wrapMessage(msg, 10)
	if len([]rune(got)) > 11 {
		t.Fatalf("expected message to be truncated near width 10, got %q", got)
	}
}
