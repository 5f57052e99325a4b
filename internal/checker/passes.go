package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/types"
)

// checkFileBody drives one file through ImportsResolved -> ScopesSwept
// (spec §4.2.1's passes 2-5, §4.2.6's state machine). Pass 1 (import
// validation) already ran for every file, concurrently, in
// runImportsConcurrently.
func (c *checker) checkFileBody(fid ast.FileID) {
	file := c.mod.Files.Get(fid)
	if file == nil {
		return
	}
	c.fileStates[fid] = ImportsResolved
	c.currentFile = fid

	c.passConsts(fid, file)
	c.advance(fid, ConstsTyped)

	c.passGlobals(fid, file)
	c.advance(fid, GlobalsTyped)

	c.passBody(fid, file)
	c.advance(fid, BodyChecked)

	c.passUnusedScopeWalk(fid, file)
	c.advance(fid, ScopesSwept)
}

func (c *checker) advance(fid ast.FileID, to FileState) {
	c.fileStates[fid] = to
}

// passImports validates alias names, symbol existence, shadowing, dupes,
// and deprecation timers (spec §4.2.1 pass 1).
func (c *checker) passImports(fid ast.FileID, file *ast.File) {
	seen := make(map[string]bool, len(file.Imports))
	for _, sid := range file.Imports {
		if c.reporter.ShouldAbort() {
			return
		}
		imp := c.mod.Stmts.Import(sid)
		if imp == nil {
			continue
		}
		key := c.importKey(*imp)
		if seen[key] {
			c.reportAt(diag.SevError, diag.CheckDuplicateImport, c.mod.Stmts.Get(sid).Span,
				"duplicate import")
			continue
		}
		seen[key] = true
		c.checkImportSymbols(sid, *imp)
	}
}

func (c *checker) importKey(imp ast.ImportStmtData) string {
	mod, _ := c.lookupString(imp.Module)
	return mod
}

func (c *checker) checkImportSymbols(sid ast.StmtID, imp ast.ImportStmtData) {
	modName, _ := c.lookupString(imp.Module)
	for _, sym := range imp.Symbols {
		name, _ := c.lookupString(sym.Name)
		qualified := c.intern(modName + "." + name)
		if _, idx := c.table.FindSymAndIdx(qualified); idx == -1 {
			c.reportAt(diag.SevError, diag.CheckImportNotFound, c.mod.Stmts.Get(sid).Span,
				"imported symbol \""+name+"\" does not exist in module \""+modName+"\"")
			continue
		}
		aliasName := name
		if sym.Alias != 0 {
			aliasName, _ = c.lookupString(sym.Alias)
		}
		if c.shadowsConst(aliasName) {
			c.reportAt(diag.SevError, diag.CheckImportShadowsConst, c.mod.Stmts.Get(sid).Span,
				"import of \""+aliasName+"\" shadows a constant of the same name")
		}
	}
}

// shadowsConst reports whether name already names a const declared at the
// top level of the file being checked (spec §4.2.1 pass 1: "reject import
// shadowing a constant name").
func (c *checker) shadowsConst(name string) bool {
	file := c.mod.Files.Get(c.currentFile)
	if file == nil {
		return false
	}
	for _, sid := range file.Stmts {
		if c.mod.Stmts.Get(sid).Kind != ast.StmtConstDecl {
			continue
		}
		if n, _ := c.lookupString(c.mod.Stmts.ConstDecl(sid).Name); n == name {
			return true
		}
	}
	return false
}

// passConsts evaluates const/expression-level declaration types, folds
// compile-time constants where feasible, and declares each name as an
// immutable scope binding so later statements can reference it (spec
// §4.2.1 pass 2). A name declared const twice in the same file is rejected
// at the second occurrence (spec §8 concrete scenario: "duplicate const").
func (c *checker) passConsts(fid ast.FileID, file *ast.File) {
	seen := make(map[string]bool)
	for _, sid := range file.Stmts {
		if c.reporter.ShouldAbort() {
			return
		}
		st := c.mod.Stmts.Get(sid)
		if st.Kind != ast.StmtConstDecl {
			continue
		}
		decl := c.mod.Stmts.ConstDecl(sid)
		name, _ := c.lookupString(decl.Name)
		if seen[name] {
			c.reportAt(diag.SevError, diag.CheckDuplicateConst, st.Span,
				"duplicate const \""+name+"\"")
			continue
		}
		seen[name] = true
		if decl.Value.IsValid() {
			decl.Typ = c.typeOfExpr(decl.Value, fid)
		}
		folded, ok := c.foldConst(decl.Value, fid)
		if ok {
			_ = folded
		}
		c.scopes.declare(ast.Binding{
			Name:     decl.Name,
			Kind:     ast.BindingConst,
			Typ:      decl.Typ,
			Used:     true, // top-level consts are visible file-wide; unused walk only concerns locals
			DeclSpan: st.Span,
		}, c.mod.Bindings)
	}
}

// passGlobals resolves global-declaration types and declares each global as
// a top-scope binding, so later statements can resolve it by name (spec
// §4.2.1 pass 3). A `shared T` declared type carries through to the
// binding, driving the mutability checker's lock requirement (spec
// §4.2.3, §8: "s is shared and must be lock-ed to be mutated").
func (c *checker) passGlobals(fid ast.FileID, file *ast.File) {
	for _, sid := range file.Stmts {
		if c.reporter.ShouldAbort() {
			return
		}
		st := c.mod.Stmts.Get(sid)
		if st.Kind != ast.StmtGlobalDecl {
			continue
		}
		decl := c.mod.Stmts.GlobalDecl(sid)
		if decl.Value.IsValid() {
			valType := c.typeOfExpr(decl.Value, fid)
			if decl.Typ == 0 {
				decl.Typ = valType
			}
		}
		c.scopes.declare(ast.Binding{
			Name:     decl.Name,
			Kind:     ast.BindingGlobal,
			Typ:      decl.Typ,
			Mutable:  true,
			Shared:   decl.Typ.HasFlag(types.FlagShared),
			Used:     true, // globals are visible module-wide; the unused-variable walk only concerns locals
			DeclSpan: st.Span,
		}, c.mod.Bindings)
	}
}

// passBody type-checks every remaining statement (spec §4.2.1 pass 4).
func (c *checker) passBody(fid ast.FileID, file *ast.File) {
	for _, sid := range file.Stmts {
		if c.reporter.ShouldAbort() {
			return
		}
		st := c.mod.Stmts.Get(sid)
		switch st.Kind {
		case ast.StmtConstDecl, ast.StmtGlobalDecl, ast.StmtImport, ast.StmtModule:
			continue
		default:
			c.checkStmt(sid, fid, 0)
		}
	}
	c.checkFileFns(fid, file)
}

// passUnusedScopeWalk reports variables that were declared but never read,
// and `mut` variables that were read but never reassigned (spec §4.2.1
// pass 5, §8: "x is declared as mutable but never changed"). Both are
// warnings by default, promoted to errors under cfg.UnusedVariableIsError.
func (c *checker) passUnusedScopeWalk(fid ast.FileID, file *ast.File) {
	sev := diag.SevWarning
	if c.cfg.UnusedVariableIsError {
		sev = diag.SevError
	}
	n := c.mod.Bindings.Len()
	for i := uint32(1); i <= n; i++ {
		b := c.mod.Bindings.Get(ast.BindingID(i))
		if b == nil || b.Kind != ast.BindingVar {
			continue
		}
		name, _ := c.lookupString(b.Name)
		if name == "_" {
			continue
		}
		switch {
		case !b.Used:
			c.reportAt(sev, diag.CheckUnusedVariable, b.DeclSpan, "unused variable \""+name+"\"")
		case b.Mutable && !b.Written:
			c.reportAt(sev, diag.CheckUnusedMutable, b.DeclSpan,
				name+" is declared as mutable but never changed")
		}
	}
}
