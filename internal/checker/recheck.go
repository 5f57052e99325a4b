package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// genericRecheckLoop re-walks the bodies of functions whose observed
// concrete-type instantiation set grew during the previous pass, repeating
// until a fixed point or the configured safety cap (spec §4.1.7, §4.2.1,
// §9 Open Questions).
func (c *checker) genericRecheckLoop(files []ast.FileID) {
	safetyCap := c.cfg.GenericRecheckSafetyCap
	if safetyCap <= 0 {
		safetyCap = 10
	}
	for round := 0; round < safetyCap; round++ {
		if len(c.needsRecheck) == 0 {
			return
		}
		pending := c.needsRecheck
		c.needsRecheck = make(map[types.FuncId]bool)
		for fnID := range pending {
			fnid, ok := c.funcIdToFn[fnID]
			if !ok {
				continue
			}
			decl := c.mod.Fns.Get(fnid)
			if decl == nil || decl.NoBody {
				continue
			}
			c.checkFnBody(decl, c.fileForModule(decl.Mod, files))
		}
	}
	if len(c.needsRecheck) > 0 {
		c.reportAt(diag.SevError, diag.GenericRecheckNoConverge, source.NoSpan,
			"generic instantiation set did not converge within the configured safety cap")
	}
}

func (c *checker) fileForModule(mod source.StringID, files []ast.FileID) ast.FileID {
	for _, fid := range files {
		if f := c.mod.Files.Get(fid); f != nil && f.Module == mod {
			return fid
		}
	}
	return c.currentFile
}
