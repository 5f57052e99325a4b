package ast

import (
	"strings"

	"github.com/ripplang/ripplec/internal/source"
)

// AttrTargetMask describes which declaration kinds an attribute may apply to.
type AttrTargetMask uint16

const (
	AttrTargetNone  AttrTargetMask = 0
	AttrTargetFn    AttrTargetMask = 1 << iota
	AttrTargetType
	AttrTargetField
	AttrTargetStmt
)

// AttrSpec describes one recognized compile-time attribute (spec §6: "closed
// set" of pub/mut/deprecated/noreturn/unsafe/inline/if/keep_alive/console/
// single_impl/heap/flag plus field-level json/required/skip). Attributes
// outside this set still parse but only ever warn (UnknownAttr), never fail.
type AttrSpec struct {
	Name       string
	Targets    AttrTargetMask
	TakesValue bool // true when the attribute carries an argument, e.g. deprecated[: msg], if <tag>
}

var attrRegistry = map[string]AttrSpec{
	"pub":          {Name: "pub", Targets: AttrTargetFn | AttrTargetType | AttrTargetField},
	"mut":          {Name: "mut", Targets: AttrTargetField},
	"deprecated":   {Name: "deprecated", Targets: AttrTargetFn | AttrTargetType | AttrTargetField, TakesValue: true},
	"noreturn":     {Name: "noreturn", Targets: AttrTargetFn},
	"unsafe":       {Name: "unsafe", Targets: AttrTargetFn},
	"inline":       {Name: "inline", Targets: AttrTargetFn},
	"if":           {Name: "if", Targets: AttrTargetFn | AttrTargetStmt, TakesValue: true},
	"keep_alive":   {Name: "keep_alive", Targets: AttrTargetFn | AttrTargetField},
	"console":      {Name: "console", Targets: AttrTargetFn},
	"single_impl":  {Name: "single_impl", Targets: AttrTargetType},
	"heap":         {Name: "heap", Targets: AttrTargetType | AttrTargetField},
	"flag":         {Name: "flag", Targets: AttrTargetType},
	"json":         {Name: "json", Targets: AttrTargetField, TakesValue: true},
	"required":     {Name: "required", Targets: AttrTargetField},
	"skip":         {Name: "skip", Targets: AttrTargetField},
}

// LookupAttr returns the registered spec for name, case-insensitively.
func LookupAttr(name string) (AttrSpec, bool) {
	spec, ok := attrRegistry[strings.ToLower(name)]
	return spec, ok
}

// Attr is one attribute occurrence attached to a declaration, e.g.
// `[deprecated: "use Foo instead"]`.
type Attr struct {
	Name  string
	Value string // empty when TakesValue is false or no value was given
	Span  source.Span
}

// Recognized reports whether a is part of the closed attribute set; an
// unrecognized attribute still parses, it just warns instead of failing.
func (a Attr) Recognized() bool {
	_, ok := LookupAttr(a.Name)
	return ok
}
