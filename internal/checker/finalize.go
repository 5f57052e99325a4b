package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
)

// finalize runs spec §4.2.1's "after all files" step: every executable
// module named "main" must register a callable `main` function.
func (c *checker) finalize(files []ast.FileID) {
	seen := make(map[string]bool, len(files))
	for _, fid := range files {
		file := c.mod.Files.Get(fid)
		if file == nil {
			continue
		}
		modName, _ := c.lookupString(file.Module)
		if modName != "main" || seen[modName] {
			continue
		}
		seen[modName] = true
		if _, ok := c.table.FindFn("main.main"); ok {
			continue
		}
		if _, ok := c.table.FindFn("main"); ok {
			continue
		}
		c.reportAt(diag.SevError, diag.CheckMissingMain, source.NoSpan,
			"module \"main\" has no `main` function")
	}
}
