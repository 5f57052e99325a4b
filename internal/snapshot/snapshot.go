// Package snapshot serializes a read-only view of the Type Table and a
// checker run's diagnostics to a binary blob. It is the explicit,
// immutable export spec §9 substitutes for the forbidden ambient global
// table pointer: downstream tooling (an editor, an LSP-style consumer, the
// spec's "Back-end" collaborator) gets a serialized snapshot instead of a
// live handle into the table's mutation API. Grounded on the teacher's
// internal/driver disk cache, which msgpack-encodes a similar read-only
// projection of module metadata.
package snapshot

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// Symbol is the serializable projection of a types.Symbol. Names are
// resolved to plain strings: a source.StringID is only meaningful next to
// the Interner that produced it, which a snapshot consumer does not have.
type Symbol struct {
	ID     uint32
	Name   string
	Module string
	Kind   string
	Width  uint8
	Public bool
}

// Func is the serializable projection of a types.FuncDecl.
type Func struct {
	ID         uint32
	Name       string
	Module     string
	ParamCount int
	Return     string
}

// Diagnostic is the serializable projection of a diag.Diagnostic.
type Diagnostic struct {
	Severity string
	Code     uint16
	Message  string
	File     uint32
	Start    uint32
	End      uint32
}

// Snapshot is the full read-only export: every registered symbol and
// function the Table holds, plus the diagnostics one CheckAll run
// produced.
type Snapshot struct {
	Symbols     []Symbol
	Funcs       []Func
	Diagnostics []Diagnostic
}

// Build projects table and diags into a Snapshot, resolving every
// StringID through strs so the result carries no live reference back into
// the table or interner.
func Build(table *types.Table, strs *source.Interner, diags []*diag.Diagnostic) Snapshot {
	entries := table.AllSymbols()
	snap := Snapshot{Symbols: make([]Symbol, 0, len(entries))}
	for _, e := range entries {
		name, _ := strs.Lookup(e.Sym.Name)
		mod, _ := strs.Lookup(e.Sym.Module)
		snap.Symbols = append(snap.Symbols, Symbol{
			ID:     uint32(e.ID),
			Name:   name,
			Module: mod,
			Kind:   e.Sym.Kind.String(),
			Width:  uint8(e.Sym.Width),
			Public: e.Sym.IsPublic,
		})
	}

	funcs := table.AllFuncs()
	snap.Funcs = make([]Func, 0, len(funcs))
	for _, e := range funcs {
		name, _ := strs.Lookup(e.Fn.Name)
		mod, _ := strs.Lookup(e.Fn.Module)
		retSym, ok := table.TrySym(e.Fn.Return)
		retName := ""
		if ok {
			retName, _ = strs.Lookup(retSym.Name)
		}
		snap.Funcs = append(snap.Funcs, Func{
			ID:         uint32(e.ID),
			Name:       name,
			Module:     mod,
			ParamCount: len(e.Fn.Params),
			Return:     retName,
		})
	}

	snap.Diagnostics = make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d == nil {
			continue
		}
		snap.Diagnostics = append(snap.Diagnostics, Diagnostic{
			Severity: d.Severity.String(),
			Code:     uint16(d.Code),
			Message:  d.Message,
			File:     uint32(d.Primary.File),
			Start:    uint32(d.Primary.Start),
			End:      uint32(d.Primary.End),
		})
	}
	return snap
}

// Encode writes snap to w in msgpack form.
func Encode(w io.Writer, snap Snapshot) error {
	return msgpack.NewEncoder(w).Encode(snap)
}

// Decode reads a msgpack-encoded Snapshot from r.
func Decode(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	err := msgpack.NewDecoder(r).Decode(&snap)
	return snap, err
}
