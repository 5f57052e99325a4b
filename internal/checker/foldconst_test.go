package checker

import (
	"testing"

	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

type stubReporter struct {
	diags []diag.Diagnostic
}

func (s *stubReporter) Report(d diag.Diagnostic) { s.diags = append(s.diags, d) }
func (s *stubReporter) ShouldAbort() bool         { return false }

func newTestChecker(t *testing.T) (*checker, *ast.Module) {
	t.Helper()
	strs := source.NewInterner()
	tbl := types.NewTable(strs)
	mod := ast.NewModule(0)
	c := &checker{
		table:        tbl,
		mod:          mod,
		interner:     strs,
		reporter:     &stubReporter{},
		builtins:     tbl.Builtins(),
		fileStates:   make(map[ast.FileID]FileState),
		scopes:       newScopeStack(mod.Scopes),
		needsRecheck: make(map[types.FuncId]bool),
		funcIdToFn:   make(map[types.FuncId]ast.FnID),
		checkedFns:   make(map[ast.FnID]bool),
	}
	return c, mod
}

func TestFoldConstLiteralIsFoldable(t *testing.T) {
	c, mod := newTestChecker(t)
	lit := mod.Exprs.NewLiteral(ast.ExprIntegerLiteral, source.NoSpan, ast.LiteralData{IntValue: 7})
	typ, ok := c.foldConst(lit, 0)
	if !ok {
		t.Fatalf("expected an integer literal to be foldable")
	}
	if typ != c.builtins.IntLiteral {
		t.Fatalf("expected literal type to be IntLiteral, got %v", typ)
	}
}

func TestFoldConstInfixOfLiteralsIsFoldable(t *testing.T) {
	c, mod := newTestChecker(t)
	left := mod.Exprs.NewLiteral(ast.ExprIntegerLiteral, source.NoSpan, ast.LiteralData{IntValue: 2})
	right := mod.Exprs.NewLiteral(ast.ExprIntegerLiteral, source.NoSpan, ast.LiteralData{IntValue: 3})
	sum := mod.Exprs.NewInfix(source.NoSpan, ast.InfixData{Op: ast.OpAdd, Left: left, Right: right})
	if _, ok := c.foldConst(sum, 0); !ok {
		t.Fatalf("expected a sum of two integer literals to be foldable")
	}
}

func TestFoldConstNonLiteralOperandIsNotFoldable(t *testing.T) {
	c, mod := newTestChecker(t)
	name := c.interner.Intern("x")
	ident := mod.Exprs.NewIdent(source.NoSpan, ast.IdentData{Name: name})
	lit := mod.Exprs.NewLiteral(ast.ExprIntegerLiteral, source.NoSpan, ast.LiteralData{IntValue: 1})
	sum := mod.Exprs.NewInfix(source.NoSpan, ast.InfixData{Op: ast.OpAdd, Left: ident, Right: lit})
	if _, ok := c.foldConst(sum, 0); ok {
		t.Fatalf("expected an expression referencing an identifier to be non-foldable")
	}
}

func TestFoldConstInvalidExprID(t *testing.T) {
	c, _ := newTestChecker(t)
	if _, ok := c.foldConst(ast.ExprID(0), 0); ok {
		t.Fatalf("expected an invalid expr id to be non-foldable")
	}
}
