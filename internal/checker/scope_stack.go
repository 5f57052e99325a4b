package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/source"
)

// scopeStack tracks the current lexical scope plus the active lock/rlock
// name sets (spec §4.2.3: "lock and rlock blocks... Nesting is forbidden").
type scopeStack struct {
	scopes  *ast.Scopes
	current ast.ScopeID
	// lockDepth is non-zero while inside a lock/rlock block, used to detect
	// forbidden nesting.
	lockDepth int
}

func newScopeStack(scopes *ast.Scopes) *scopeStack {
	root := scopes.New(ast.NoScopeID)
	return &scopeStack{scopes: scopes, current: root}
}

func (ss *scopeStack) push() ast.ScopeID {
	prev := ss.current
	ss.current = ss.scopes.New(prev)
	return prev
}

func (ss *scopeStack) pop(prev ast.ScopeID) {
	ss.current = prev
}

// declare allocates a new binding and binds it to b.Name in the current scope.
func (ss *scopeStack) declare(b ast.Binding, bindings *ast.Bindings) ast.BindingID {
	id := bindings.New(b)
	ss.scopes.Declare(ss.current, b.Name, id)
	return id
}

// resolve looks up name starting from the current scope.
func (ss *scopeStack) resolve(name source.StringID) (ast.BindingID, bool) {
	return ss.scopes.Resolve(ss.current, name)
}
