// Package checkkit builds small, in-memory programs directly on the AST
// arenas so checker tests can exercise spec §8's testable properties
// without a real lexer/parser (spec §1 names parsing an out-of-scope
// collaborator; this package plays that collaborator's role for tests, the
// way the teacher's internal/testkit feeds prebuilt fixtures to its own
// semantic-analysis suite).
package checkkit

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/config"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// Fixture owns one self-contained program: a fresh Interner, Table, and
// Module, plus the single file most tests need. Every span handed out is
// source.NoSpan — this repo's diagnostics carry byte offsets, not line
// numbers, and a hand-built fixture has no real source text to offset into.
type Fixture struct {
	Strs   *source.Interner
	Table  *types.Table
	Module *ast.Module
	Config config.Checker

	file ast.FileID
}

// New allocates an empty fixture with one file in module "m".
func New() *Fixture {
	strs := source.NewInterner()
	tbl := types.NewTable(strs)
	mod := ast.NewModule(0)
	f := &Fixture{Strs: strs, Table: tbl, Module: mod, Config: config.Default()}
	f.file = mod.Files.New(ast.File{Path: "m.rp", Module: strs.Intern("m")})
	return f
}

// File returns the fixture's single FileID.
func (f *Fixture) File() ast.FileID { return f.file }

// Intern is a short alias for f.Strs.Intern.
func (f *Fixture) Intern(s string) source.StringID { return f.Strs.Intern(s) }

// SetTopStmts replaces the file's top-level statement list.
func (f *Fixture) SetTopStmts(stmts ...ast.StmtID) {
	file := f.Module.Files.Get(f.file)
	file.Stmts = stmts
}

// --- expressions ---

// Int builds an integer literal expression.
func (f *Fixture) Int(v int64) ast.ExprID {
	return f.Module.Exprs.NewLiteral(ast.ExprIntegerLiteral, source.NoSpan, ast.LiteralData{IntValue: v})
}

// Str builds a string literal expression.
func (f *Fixture) Str(v string) ast.ExprID {
	return f.Module.Exprs.NewLiteral(ast.ExprStringLiteral, source.NoSpan, ast.LiteralData{StringValue: f.Intern(v)})
}

// Ident builds an identifier reference expression.
func (f *Fixture) Ident(name string) ast.ExprID {
	return f.Module.Exprs.NewIdent(source.NoSpan, ast.IdentData{Name: f.Intern(name)})
}

// Infix builds a binary expression.
func (f *Fixture) Infix(op ast.InfixOp, left, right ast.ExprID) ast.ExprID {
	return f.Module.Exprs.NewInfix(source.NoSpan, ast.InfixData{Op: op, Left: left, Right: right})
}

// Call builds a call expression with positional arguments.
func (f *Fixture) Call(callee ast.ExprID, args ...ast.ExprID) ast.ExprID {
	callArgs := make([]ast.CallArg, len(args))
	for i, a := range args {
		callArgs[i] = ast.CallArg{Expr: a}
	}
	return f.Module.Exprs.NewCall(source.NoSpan, ast.CallData{Callee: callee, Args: callArgs})
}

// Selector builds a `target.field` expression.
func (f *Fixture) Selector(target ast.ExprID, field string) ast.ExprID {
	return f.Module.Exprs.NewSelector(source.NoSpan, ast.SelectorData{Target: target, Field: f.Intern(field)})
}

// StructInit builds a `T{}` struct-literal expression with no fields set,
// enough to type as typ without needing every field initialized.
func (f *Fixture) StructInit(typ types.TypeId) ast.ExprID {
	return f.Module.Exprs.NewStructInit(source.NoSpan, ast.StructInitData{Type: typ})
}

// --- statements ---

// ConstDecl builds a top-level `const name = value` declaration.
func (f *Fixture) ConstDecl(name string, value ast.ExprID) ast.StmtID {
	return f.Module.Stmts.NewConstDecl(source.NoSpan, ast.ConstDeclData{Name: f.Intern(name), Value: value})
}

// Assign builds `lhs := rhs` (Op = AssignDeclare) or `lhs = rhs` (Op =
// AssignPlain/AssignCompound) for a single target/value pair.
func (f *Fixture) Assign(op ast.AssignOp, lhs, rhs ast.ExprID) ast.StmtID {
	return f.Module.Stmts.NewAssign(source.NoSpan, ast.AssignStmtData{
		Op:  op,
		Lhs: []ast.ExprID{lhs},
		Rhs: []ast.ExprID{rhs},
	})
}

// ExprStmt wraps expr as a bare expression statement.
func (f *Fixture) ExprStmt(expr ast.ExprID) ast.StmtID {
	return f.Module.Stmts.NewExprStmt(source.NoSpan, ast.ExprStmtData{Expr: expr})
}

// Return builds a `return values...` statement.
func (f *Fixture) Return(values ...ast.ExprID) ast.StmtID {
	return f.Module.Stmts.NewReturn(source.NoSpan, ast.ReturnStmtData{Values: values})
}

// Block builds a `{ stmts... }` block in a fresh child scope.
func (f *Fixture) Block(stmts ...ast.StmtID) ast.StmtID {
	scope := f.Module.Scopes.New(ast.NoScopeID)
	return f.Module.Stmts.NewBlock(source.NoSpan, ast.BlockStmtData{Stmts: stmts, Scope: scope})
}

// TypeDecl builds a `type name = aliased` alias declaration.
func (f *Fixture) TypeDecl(name string, aliased types.TypeId) ast.StmtID {
	return f.Module.Stmts.NewTypeDecl(source.NoSpan, ast.TypeDeclData{
		Kind: ast.TypeDeclAlias, Name: f.Intern(name), Aliased: aliased,
	})
}

// GlobalDecl builds a top-level `global name: typ = value` declaration.
func (f *Fixture) GlobalDecl(name string, typ types.TypeId, value ast.ExprID) ast.StmtID {
	return f.Module.Stmts.NewGlobalDecl(source.NoSpan, ast.GlobalDeclData{
		Name: f.Intern(name), Typ: typ, Value: value,
	})
}

// Lock builds a `lock (names...) { body }` (or `rlock` when readOnly)
// expression.
func (f *Fixture) Lock(readOnly bool, body ast.StmtID, names ...string) ast.ExprID {
	ids := make([]source.StringID, len(names))
	for i, n := range names {
		ids[i] = f.Intern(n)
	}
	return f.Module.Exprs.NewLock(source.NoSpan, ast.LockData{Names: ids, ReadOnly: readOnly, Body: body})
}

// --- function declarations ---

// FnSpec describes a function or method to register both in the AST's Fns
// arena (so the checker walks its body) and the Table (so calls/methods
// resolve to it), mirroring how a real binder would wire the two together.
type FnSpec struct {
	Name       string
	Module     string
	Receiver   types.TypeId
	Params     []types.Param
	ReturnType types.TypeId
	GenericNames []source.StringID
	Body       ast.StmtID
	NoBody     bool
}

// DeclareFn registers spec in both the Table and the Module's Fns arena,
// returning the AST FnID. Tests needing a generic function pass
// GenericNames alongside parameter/return positions typed with the
// TypeId that Fixture.GenericParam returns for each name.
func (f *Fixture) DeclareFn(spec FnSpec) ast.FnID {
	mod := f.Intern(spec.Module)
	name := f.Intern(spec.Name)

	astParams := make([]ast.Param, len(spec.Params))
	for i, p := range spec.Params {
		astParams[i] = ast.Param{Name: p.Name, Typ: p.Type, Mut: p.IsMut, Variadic: p.Type.HasFlag(types.FlagVariadic)}
	}

	fnID := f.Module.Fns.New(ast.FnDecl{
		Name: name, Mod: mod, Receiver: spec.Receiver,
		Params: astParams, ReturnType: spec.ReturnType,
		Body: spec.Body, NoBody: spec.NoBody || !spec.Body.IsValid(),
		GenericNames: spec.GenericNames,
	})

	f.Table.RegisterFn(types.FuncDecl{
		Name: name, Module: mod, Receiver: spec.Receiver,
		Params: spec.Params, Return: spec.ReturnType,
		GenericNames: spec.GenericNames,
	})
	return fnID
}

// DeclareMethod registers a method on owner directly in the Table (no AST
// body), enough for interface-conformance and call-resolution checks that
// never need to type-check the method's own body.
func (f *Fixture) DeclareMethod(owner types.TypeId, ownerModule, name string, params []types.Param, ret types.TypeId) types.FuncId {
	fnID := f.Table.RegisterFn(types.FuncDecl{
		Name: f.Intern(name), Module: f.Intern(ownerModule), Receiver: owner,
		Params: params, Return: ret,
	})
	f.Table.AddMethod(owner, fnID)
	return fnID
}

// DeclareFreeFn registers a free function directly in the Table (no AST
// body), resolvable from a call fixture by its bare name.
func (f *Fixture) DeclareFreeFn(name string, generics []source.StringID, params []types.Param, ret types.TypeId) types.FuncId {
	return f.Table.RegisterFn(types.FuncDecl{
		Name: f.Intern(name), Module: f.Intern(""),
		Params: params, Return: ret, GenericNames: generics,
	})
}

// GenericParam allocates a bare type-parameter name ("T") as a struct
// symbol standing in for the as-yet-unbound generic; the checker's
// inference recognizes it by name against the function's GenericNames
// (spec §4.1.6). Table.ResolveGenericToConcrete does not substitute
// struct-kind names, so a return position typed this way stays T.
func (f *Fixture) GenericParam(name string) types.TypeId {
	return f.Table.RegisterSym(types.Symbol{Name: f.Intern(name), Kind: types.KindStruct})
}

// Struct registers an empty struct type under name.
func (f *Fixture) Struct(name string) types.TypeId {
	return f.Table.RegisterStruct(f.Intern(name), f.Intern(""))
}

// Interface registers an empty interface type under name.
func (f *Fixture) Interface(name string) types.TypeId {
	return f.Table.RegisterInterface(f.Intern(name), f.Intern(""))
}

// SelfAlias registers `type name = name`: a placeholder reserves name's
// TypeId, then RegisterAlias overwrites that same slot with Parent set to
// the slot's own id, producing a genuine self-reference for IsAliasCycle to
// catch (spec §8: "type cannot reference itself").
func (f *Fixture) SelfAlias(name string) types.TypeId {
	placeholder := f.Table.AddPlaceholderType(name, types.LangNative)
	return f.Table.RegisterAlias(f.Intern(name), f.Intern(""), placeholder)
}
