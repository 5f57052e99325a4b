package ast

import (
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// StmtKind enumerates every statement node the checker walks (spec §6
// "Stmt — sum of"). ConstDecl/GlobalDecl/EnumDecl/TypeDecl/InterfaceDecl/
// StructDecl/Module/Import double as both top-level and nested declarations;
// File.Stmts holds the top-level ones.
type StmtKind uint8

const (
	StmtAssign StmtKind = iota
	StmtExpr
	StmtReturn
	StmtBlock
	StmtFor
	StmtForIn
	StmtForC
	StmtBranch // break/continue
	StmtGoto
	StmtGotoLabel
	StmtDefer
	StmtHash
	StmtModule
	StmtImport
	StmtConstDecl
	StmtGlobalDecl
	StmtEnumDecl
	StmtTypeDecl
	StmtInterfaceDecl
	StmtStructDecl
	StmtAsm
	StmtAssert
	StmtComptimeFor
	StmtSql

	stmtKindSentinel
)

func (k StmtKind) String() string {
	names := [...]string{
		"AssignStmt", "ExprStmt", "Return", "Block", "ForStmt", "ForInStmt",
		"ForCStmt", "BranchStmt", "GotoStmt", "GotoLabel", "DeferStmt", "HashStmt",
		"Module", "Import", "ConstDecl", "GlobalDecl", "EnumDecl", "TypeDecl",
		"InterfaceDecl", "StructDecl", "AsmStmt", "AssertStmt", "ComptimeFor", "SqlStmt",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "StmtKind(?)"
}

// Stmt is a node in the statement arena.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// AssignOp distinguishes `:=` declaring assignment from plain `=` (spec
// §4.2.2 assignment rule: ":= vs = contexts distinct").
type AssignOp uint8

const (
	AssignDeclare AssignOp = iota
	AssignPlain
	AssignCompound // e.g. `+=`; underlying InfixOp recorded separately
)

// AssignStmtData backs StmtAssign.
type AssignStmtData struct {
	Op         AssignOp
	CompoundOp InfixOp
	Lhs        []ExprID
	Rhs        []ExprID
	// OrBlock handles optional-propagation on the RHS (spec §4.2.2).
	OrBlock StmtID
}

// ExprStmtData backs StmtExpr.
type ExprStmtData struct {
	Expr ExprID
}

// ReturnStmtData backs StmtReturn.
type ReturnStmtData struct {
	Values []ExprID
}

// BlockStmtData backs StmtBlock.
type BlockStmtData struct {
	Stmts []StmtID
	Scope ScopeID
}

// ForStmtData backs StmtFor (condition-only `for cond {}` and bare `for {}`).
type ForStmtData struct {
	Cond ExprID // NoExprID for an infinite loop
	Body StmtID
}

// ForInStmtData backs StmtForIn.
type ForInStmtData struct {
	Binding  source.StringID
	KeyBind  source.StringID // for map iteration; NoStringID otherwise
	Iterable ExprID
	Body     StmtID
}

// ForCStmtData backs StmtForC (classic three-clause for).
type ForCStmtData struct {
	Init StmtID
	Cond ExprID
	Post StmtID
	Body StmtID
}

// BranchStmtData backs StmtBranch.
type BranchStmtData struct {
	IsBreak bool // false for continue
	Label   source.StringID
}

// GotoStmtData backs StmtGoto.
type GotoStmtData struct {
	Label source.StringID
}

// GotoLabelData backs StmtGotoLabel.
type GotoLabelData struct {
	Name source.StringID
}

// DeferStmtData backs StmtDefer.
type DeferStmtData struct {
	Call ExprID
}

// HashStmtData backs StmtHash, a preprocessor-style directive line.
type HashStmtData struct {
	Directive source.StringID
	Args      []source.StringID
}

// ModuleStmtData backs StmtModule.
type ModuleStmtData struct {
	Name source.StringID
}

// ImportedSymbol is one `from X import {a,b}` member.
type ImportedSymbol struct {
	Name  source.StringID
	Alias source.StringID // NoStringID when not aliased
}

// ImportStmtData backs StmtImport.
type ImportStmtData struct {
	Module  source.StringID
	Alias   source.StringID
	Symbols []ImportedSymbol // empty for a bare `import X` / `import X as Y`
}

// ConstDeclData backs StmtConstDecl.
type ConstDeclData struct {
	Name  source.StringID
	Typ   types.TypeId
	Value ExprID
}

// GlobalDeclData backs StmtGlobalDecl.
type GlobalDeclData struct {
	Name  source.StringID
	Typ   types.TypeId
	Value ExprID // NoExprID when uninitialized
	Attrs []Attr
}

// EnumDeclData backs StmtEnumDecl.
type EnumDeclData struct {
	Name     source.StringID
	Variants []EnumVariantDecl
	Attrs    []Attr
}

// EnumVariantDecl is one variant in an enum declaration.
type EnumVariantDecl struct {
	Name  source.StringID
	Value ExprID // explicit discriminant, or NoExprID
}

// TypeDeclKind distinguishes the three TypeDecl shapes spec §6 groups
// together: `type Name = Other` aliases, `type Name = fn(...) R` function
// types, and `type Name = A | B | C` sum types.
type TypeDeclKind uint8

const (
	TypeDeclAlias TypeDeclKind = iota
	TypeDeclFn
	TypeDeclSum
)

// TypeDeclData backs StmtTypeDecl.
type TypeDeclData struct {
	Kind         TypeDeclKind
	Name         source.StringID
	GenericNames []source.StringID
	Aliased      types.TypeId   // TypeDeclAlias / TypeDeclFn
	Variants     []types.TypeId // TypeDeclSum
	Attrs        []Attr
}

// InterfaceDeclData backs StmtInterfaceDecl.
type InterfaceDeclData struct {
	Name    source.StringID
	Methods []FnID
	Embeds  []types.TypeId
	Attrs   []Attr
}

// StructFieldDecl is one field in a struct declaration.
type StructFieldDecl struct {
	Name  source.StringID
	Typ   types.TypeId
	Mut   bool
	Attrs []Attr
}

// StructDeclData backs StmtStructDecl.
type StructDeclData struct {
	Name         source.StringID
	GenericNames []source.StringID
	Fields       []StructFieldDecl
	Embeds       []types.TypeId
	Attrs        []Attr
}

// AsmStmtData backs StmtAsm, a raw inline-assembly block (unsafe only).
type AsmStmtData struct {
	Body source.StringID
}

// AssertStmtData backs StmtAssert.
type AssertStmtData struct {
	Cond    ExprID
	Message ExprID // NoExprID when absent
}

// ComptimeForData backs StmtComptimeFor, a compile-time unrolled loop.
type ComptimeForData struct {
	Binding source.StringID
	Over    []types.TypeId
	Body    StmtID
}

// SqlStmtData backs StmtSql, an embedded query statement (no return value).
type SqlStmtData struct {
	Query source.StringID
	Binds []ExprID
}
