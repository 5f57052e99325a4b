// Package checker implements the semantic analyzer: the per-file pass
// pipeline, expression-type dispatcher, mutability/locking rules, and
// generic-instantiation fixed-point loop described in spec.md §4.2,
// grounded on the teacher's internal/sema package (check.go's Options/
// Result shape, type_checker_core.go's per-file driver loop).
package checker

import (
	"context"

	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/config"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/obslog"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// Options configures a CheckAll run.
type Options struct {
	Table    *types.Table
	Module   *ast.Module
	Interner *source.Interner
	Config   config.Checker
	Reporter diag.Reporter
}

// Result holds everything CheckAll produced beyond the mutated AST/Table:
// the state each file reached and whether the run aborted early.
type Result struct {
	FileStates map[ast.FileID]FileState
	Aborted    bool
}

// checker carries the mutable state threaded through one CheckAll call. It
// borrows the Table and Module mutably for the run's duration (spec §5).
type checker struct {
	table    *types.Table
	mod      *ast.Module
	interner *source.Interner
	cfg      config.Checker
	reporter diag.Reporter
	tracer   obslog.Tracer

	builtins types.Builtins

	fileStates map[ast.FileID]FileState
	scopes     *scopeStack

	exprDepth   int
	stmtDepth   int
	unsafeDepth int
	currentFile ast.FileID

	// rlockActive is true while inside an rlock block, rejecting mutation
	// of the locked shared binding (spec §4.2.3).
	rlockActive bool

	// needsRecheck collects functions whose generic instantiation set grew
	// during this pass, per spec §4.2.1/§4.2.6.
	needsRecheck map[types.FuncId]bool

	// funcIdToFn maps a registered function's table id back to its AST
	// declaration, so the generic-recheck loop can re-walk a body.
	funcIdToFn map[types.FuncId]ast.FnID
	checkedFns map[ast.FnID]bool

	// currentFnReturn is the declared return type of the function body
	// currently being checked, used by StmtReturn (spec §4.2.2).
	currentFnReturn types.TypeId
}

// CheckAll is the checker's public entry point (spec §4.2.1). It never
// fails: every problem surfaces as a diagnostic through opts.Reporter.
func CheckAll(ctx context.Context, opts Options) Result {
	tr := obslog.FromContext(ctx)
	c := &checker{
		table:        opts.Table,
		mod:          opts.Module,
		interner:     opts.Interner,
		cfg:          opts.Config,
		reporter:     opts.Reporter,
		tracer:       tr,
		builtins:     opts.Table.Builtins(),
		fileStates:   make(map[ast.FileID]FileState),
		scopes:       newScopeStack(opts.Module.Scopes),
		needsRecheck: make(map[types.FuncId]bool),
		funcIdToFn:   make(map[types.FuncId]ast.FnID),
		checkedFns:   make(map[ast.FnID]bool),
	}
	span := tr.Begin("check_all")
	defer span.End("")

	files := c.orderedFiles()
	c.runImportsConcurrently(ctx, files)
	for _, fid := range files {
		if c.reporter.ShouldAbort() {
			break
		}
		c.checkFileBody(fid)
	}

	c.genericRecheckLoop(files)
	c.finalize(files)

	result := Result{FileStates: c.fileStates, Aborted: c.reporter.ShouldAbort()}
	return result
}

func (c *checker) orderedFiles() []ast.FileID {
	n := c.mod.Files.Len()
	ids := make([]ast.FileID, 0, n)
	for i := uint32(1); i <= n; i++ {
		ids = append(ids, ast.FileID(i))
	}
	return ids
}
