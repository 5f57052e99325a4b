package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
)

// checkFileFns type-checks every function declared in file's module. Bodies
// live in the module-wide Fns arena rather than File.Stmts, so they aren't
// reached by passBody's statement walk (spec §6 FnDecl contract).
func (c *checker) checkFileFns(fid ast.FileID, file *ast.File) {
	n := c.mod.Fns.Len()
	for i := uint32(1); i <= n; i++ {
		id := ast.FnID(i)
		if c.checkedFns[id] {
			continue
		}
		decl := c.mod.Fns.Get(id)
		if decl == nil || decl.Mod != file.Module {
			continue
		}
		c.checkedFns[id] = true
		c.registerFnMapping(id, *decl)
		if decl.NoBody {
			continue
		}
		c.checkFnBody(decl, fid)
	}
}

// registerFnMapping records id's table-side FuncId so the generic-recheck
// loop can find this declaration again later.
func (c *checker) registerFnMapping(id ast.FnID, decl ast.FnDecl) {
	modName, _ := c.lookupString(decl.Mod)
	simple, _ := c.lookupString(decl.Name)
	qualified := simple
	if modName != "" {
		qualified = modName + "." + simple
	}
	if fnID, ok := c.table.FindFn(qualified); ok {
		c.funcIdToFn[fnID] = id
	}
}

// checkFnBody pushes a parameter scope and walks decl's body (spec §4.2.1
// pass 4 continuation for per-function declarations).
func (c *checker) checkFnBody(decl *ast.FnDecl, fid ast.FileID) {
	prev := c.scopes.push()
	defer c.scopes.pop(prev)

	for _, p := range decl.Params {
		c.scopes.declare(ast.Binding{
			Name:     p.Name,
			Kind:     ast.BindingParam,
			Typ:      p.Typ,
			Mutable:  p.Mut,
			DeclSpan: decl.Pos,
		}, c.mod.Bindings)
	}

	prevReturn := c.currentFnReturn
	prevFile := c.currentFile
	c.currentFnReturn = decl.ReturnType
	c.currentFile = fid
	c.checkStmt(decl.Body, fid, 0)
	c.currentFnReturn = prevReturn
	c.currentFile = prevFile
}
