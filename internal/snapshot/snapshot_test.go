package snapshot

import (
	"bytes"
	"testing"

	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

func TestBuildProjectsSymbolsAndFuncs(t *testing.T) {
	strs := source.NewInterner()
	tbl := types.NewTable(strs)

	name := strs.Intern("widget.Foo")
	tbl.RegisterSym(types.Symbol{Name: name, Module: strs.Intern("widget"), Kind: types.KindStruct})

	fnName := strs.Intern("widget.make")
	tbl.RegisterFn(types.FuncDecl{Name: fnName, Module: strs.Intern("widget"), Return: tbl.Builtins().Int})

	snap := Build(tbl, strs, nil)

	var found bool
	for _, s := range snap.Symbols {
		if s.Name == "widget.Foo" && s.Kind == "struct" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the registered struct to appear in the snapshot, got %+v", snap.Symbols)
	}

	if len(snap.Funcs) != 1 || snap.Funcs[0].Name != "widget.make" || snap.Funcs[0].Return != "int" {
		t.Fatalf("unexpected func projection: %+v", snap.Funcs)
	}
}

func TestBuildProjectsDiagnostics(t *testing.T) {
	strs := source.NewInterner()
	tbl := types.NewTable(strs)
	diags := []*diag.Diagnostic{
		{Severity: diag.SevError, Code: diag.CheckUnknownIdent, Message: "unknown identifier \"x\""},
	}
	snap := Build(tbl, strs, diags)
	if len(snap.Diagnostics) != 1 || snap.Diagnostics[0].Severity != "error" {
		t.Fatalf("unexpected diagnostic projection: %+v", snap.Diagnostics)
	}
}

func TestEncodeDecodeRoundTrips(t *testing.T) {
	strs := source.NewInterner()
	tbl := types.NewTable(strs)
	tbl.RegisterSym(types.Symbol{Name: strs.Intern("widget.Foo"), Kind: types.KindStruct})
	snap := Build(tbl, strs, nil)

	var buf bytes.Buffer
	if err := Encode(&buf, snap); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Symbols) != len(snap.Symbols) {
		t.Fatalf("round trip lost symbols: got %d want %d", len(got.Symbols), len(snap.Symbols))
	}
}
