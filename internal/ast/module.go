package ast

// Module is the full AST for one compilation: every file, function, scope,
// and expression/statement side arena the checker borrows mutably for the
// duration of a check_all call (spec §5). After check_all returns, a Module
// is an immutable input to downstream phases.
type Module struct {
	Files    *Files
	Fns      *Fns
	Exprs    *Exprs
	Stmts    *Stmts
	Scopes   *Scopes
	Bindings *Bindings
}

// NewModule allocates an empty Module with arenas sized to capHint.
func NewModule(capHint uint) *Module {
	if capHint == 0 {
		capHint = 1 << 10
	}
	return &Module{
		Files:    NewFiles(capHint / 8),
		Fns:      NewFns(capHint / 4),
		Exprs:    NewExprs(capHint),
		Stmts:    NewStmts(capHint),
		Scopes:   NewScopes(capHint / 4),
		Bindings: NewBindings(capHint / 2),
	}
}
