package checker

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/types"
)

// collectingReporter buffers one goroutine's diagnostics without touching
// the run's shared Reporter, so a per-file pass can run concurrently and
// be merged back deterministically afterward.
type collectingReporter struct {
	mu    sync.Mutex
	diags []diag.Diagnostic
}

func (r *collectingReporter) Report(d diag.Diagnostic) {
	r.mu.Lock()
	r.diags = append(r.diags, d)
	r.mu.Unlock()
}

func (r *collectingReporter) ShouldAbort() bool { return false }

// runImportsConcurrently validates every file's imports in parallel: pass 1
// (spec §4.2.1) only reads the Type Table and only mutates state private to
// the file being validated, so it's the one pass safe to fan out with
// errgroup before the sequential, table-mutating passes 2-5 begin. Each
// file's diagnostics are collected in isolation and replayed into the real
// reporter in file order, keeping output deterministic despite concurrent
// execution.
func (c *checker) runImportsConcurrently(ctx context.Context, files []ast.FileID) {
	collected := make([]*collectingReporter, len(files))
	stacks := make([]*scopeStack, len(files))
	for i := range files {
		stacks[i] = newScopeStack(c.mod.Scopes)
	}
	g, gctx := errgroup.WithContext(ctx)
	for i, fid := range files {
		i, fid := i, fid
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			file := c.mod.Files.Get(fid)
			if file == nil {
				return nil
			}
			cr := &collectingReporter{}
			sub := &checker{
				table:        c.table,
				mod:          c.mod,
				interner:     c.interner,
				cfg:          c.cfg,
				reporter:     cr,
				tracer:       c.tracer,
				builtins:     c.builtins,
				fileStates:   make(map[ast.FileID]FileState),
				scopes:       stacks[i],
				needsRecheck: make(map[types.FuncId]bool),
				funcIdToFn:   make(map[types.FuncId]ast.FnID),
				checkedFns:   make(map[ast.FnID]bool),
				currentFile:  fid,
			}
			sub.passImports(fid, file)
			collected[i] = cr
			return nil
		})
	}
	// Every goroutine above only reports into its own collectingReporter
	// and never returns an error except context cancellation, so Wait's
	// error carries nothing the caller needs beyond having already
	// stopped work; diagnostics gathered before cancellation still merge.
	_ = g.Wait()

	for _, fid := range files {
		c.fileStates[fid] = Fresh
	}
	for i, cr := range collected {
		if cr == nil {
			continue
		}
		for _, d := range cr.diags {
			c.reporter.Report(d)
		}
		c.fileStates[files[i]] = ImportsResolved
	}
}
