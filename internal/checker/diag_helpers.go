package checker

import (
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
)

func (c *checker) reportAt(sev diag.Severity, code diag.Code, span source.Span, msg string) {
	if sev == diag.SevWarning && c.cfg.StrictMode {
		sev = diag.SevError
	}
	c.reporter.Report(diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}

func (c *checker) lookupString(id source.StringID) (string, bool) {
	if c.interner == nil {
		return "", false
	}
	return c.interner.Lookup(id)
}

func (c *checker) intern(name string) source.StringID {
	if c.interner == nil {
		return source.NoStringID
	}
	return c.interner.Intern(name)
}
