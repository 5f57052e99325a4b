package ast

import "github.com/ripplang/ripplec/internal/source"

// Stmts owns the statement node arena plus one side arena per
// payload-bearing kind.
type Stmts struct {
	Nodes *Arena[Stmt]

	Assigns      *Arena[AssignStmtData]
	ExprStmts    *Arena[ExprStmtData]
	Returns      *Arena[ReturnStmtData]
	Blocks       *Arena[BlockStmtData]
	Fors         *Arena[ForStmtData]
	ForIns       *Arena[ForInStmtData]
	ForCs        *Arena[ForCStmtData]
	Branches     *Arena[BranchStmtData]
	Gotos        *Arena[GotoStmtData]
	GotoLabels   *Arena[GotoLabelData]
	Defers       *Arena[DeferStmtData]
	Hashes       *Arena[HashStmtData]
	Modules      *Arena[ModuleStmtData]
	Imports      *Arena[ImportStmtData]
	ConstDecls   *Arena[ConstDeclData]
	GlobalDecls  *Arena[GlobalDeclData]
	EnumDecls    *Arena[EnumDeclData]
	TypeDecls    *Arena[TypeDeclData]
	IfaceDecls   *Arena[InterfaceDeclData]
	StructDecls  *Arena[StructDeclData]
	Asms         *Arena[AsmStmtData]
	Asserts      *Arena[AssertStmtData]
	ComptimeFors *Arena[ComptimeForData]
	Sqls         *Arena[SqlStmtData]
}

// NewStmts allocates a Stmts with every side arena sized to capHint.
func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Nodes:        NewArena[Stmt](capHint),
		Assigns:      NewArena[AssignStmtData](capHint / 2),
		ExprStmts:    NewArena[ExprStmtData](capHint),
		Returns:      NewArena[ReturnStmtData](capHint / 8),
		Blocks:       NewArena[BlockStmtData](capHint / 4),
		Fors:         NewArena[ForStmtData](capHint / 16),
		ForIns:       NewArena[ForInStmtData](capHint / 16),
		ForCs:        NewArena[ForCStmtData](capHint / 16),
		Branches:     NewArena[BranchStmtData](capHint / 16),
		Gotos:        NewArena[GotoStmtData](capHint / 32),
		GotoLabels:   NewArena[GotoLabelData](capHint / 32),
		Defers:       NewArena[DeferStmtData](capHint / 16),
		Hashes:       NewArena[HashStmtData](capHint / 32),
		Modules:      NewArena[ModuleStmtData](capHint / 32),
		Imports:      NewArena[ImportStmtData](capHint / 8),
		ConstDecls:   NewArena[ConstDeclData](capHint / 8),
		GlobalDecls:  NewArena[GlobalDeclData](capHint / 8),
		EnumDecls:    NewArena[EnumDeclData](capHint / 16),
		TypeDecls:    NewArena[TypeDeclData](capHint / 16),
		IfaceDecls:   NewArena[InterfaceDeclData](capHint / 16),
		StructDecls:  NewArena[StructDeclData](capHint / 8),
		Asms:         NewArena[AsmStmtData](capHint / 32),
		Asserts:      NewArena[AssertStmtData](capHint / 16),
		ComptimeFors: NewArena[ComptimeForData](capHint / 32),
		Sqls:         NewArena[SqlStmtData](capHint / 32),
	}
}

func (ss *Stmts) new(s Stmt) StmtID {
	return StmtID(ss.Nodes.Allocate(s))
}

// Get returns the node for id.
func (ss *Stmts) Get(id StmtID) *Stmt { return ss.Nodes.Get(uint32(id)) }

// NewAssign allocates an AssignStmt.
func (ss *Stmts) NewAssign(span source.Span, data AssignStmtData) StmtID {
	p := PayloadID(ss.Assigns.Allocate(data))
	return ss.new(Stmt{Kind: StmtAssign, Span: span, Payload: p})
}

// NewExprStmt allocates an ExprStmt.
func (ss *Stmts) NewExprStmt(span source.Span, data ExprStmtData) StmtID {
	p := PayloadID(ss.ExprStmts.Allocate(data))
	return ss.new(Stmt{Kind: StmtExpr, Span: span, Payload: p})
}

// NewReturn allocates a Return statement.
func (ss *Stmts) NewReturn(span source.Span, data ReturnStmtData) StmtID {
	p := PayloadID(ss.Returns.Allocate(data))
	return ss.new(Stmt{Kind: StmtReturn, Span: span, Payload: p})
}

// NewBlock allocates a Block statement.
func (ss *Stmts) NewBlock(span source.Span, data BlockStmtData) StmtID {
	p := PayloadID(ss.Blocks.Allocate(data))
	return ss.new(Stmt{Kind: StmtBlock, Span: span, Payload: p})
}

// NewFor allocates a ForStmt.
func (ss *Stmts) NewFor(span source.Span, data ForStmtData) StmtID {
	p := PayloadID(ss.Fors.Allocate(data))
	return ss.new(Stmt{Kind: StmtFor, Span: span, Payload: p})
}

// NewForIn allocates a ForInStmt.
func (ss *Stmts) NewForIn(span source.Span, data ForInStmtData) StmtID {
	p := PayloadID(ss.ForIns.Allocate(data))
	return ss.new(Stmt{Kind: StmtForIn, Span: span, Payload: p})
}

// NewForC allocates a ForCStmt.
func (ss *Stmts) NewForC(span source.Span, data ForCStmtData) StmtID {
	p := PayloadID(ss.ForCs.Allocate(data))
	return ss.new(Stmt{Kind: StmtForC, Span: span, Payload: p})
}

// NewBranch allocates a BranchStmt.
func (ss *Stmts) NewBranch(span source.Span, data BranchStmtData) StmtID {
	p := PayloadID(ss.Branches.Allocate(data))
	return ss.new(Stmt{Kind: StmtBranch, Span: span, Payload: p})
}

// NewGoto allocates a GotoStmt.
func (ss *Stmts) NewGoto(span source.Span, data GotoStmtData) StmtID {
	p := PayloadID(ss.Gotos.Allocate(data))
	return ss.new(Stmt{Kind: StmtGoto, Span: span, Payload: p})
}

// NewGotoLabel allocates a GotoLabel.
func (ss *Stmts) NewGotoLabel(span source.Span, data GotoLabelData) StmtID {
	p := PayloadID(ss.GotoLabels.Allocate(data))
	return ss.new(Stmt{Kind: StmtGotoLabel, Span: span, Payload: p})
}

// NewDefer allocates a DeferStmt.
func (ss *Stmts) NewDefer(span source.Span, data DeferStmtData) StmtID {
	p := PayloadID(ss.Defers.Allocate(data))
	return ss.new(Stmt{Kind: StmtDefer, Span: span, Payload: p})
}

// NewHash allocates a HashStmt.
func (ss *Stmts) NewHash(span source.Span, data HashStmtData) StmtID {
	p := PayloadID(ss.Hashes.Allocate(data))
	return ss.new(Stmt{Kind: StmtHash, Span: span, Payload: p})
}

// NewModule allocates a Module statement.
func (ss *Stmts) NewModule(span source.Span, data ModuleStmtData) StmtID {
	p := PayloadID(ss.Modules.Allocate(data))
	return ss.new(Stmt{Kind: StmtModule, Span: span, Payload: p})
}

// NewImport allocates an Import statement.
func (ss *Stmts) NewImport(span source.Span, data ImportStmtData) StmtID {
	p := PayloadID(ss.Imports.Allocate(data))
	return ss.new(Stmt{Kind: StmtImport, Span: span, Payload: p})
}

// NewConstDecl allocates a ConstDecl.
func (ss *Stmts) NewConstDecl(span source.Span, data ConstDeclData) StmtID {
	p := PayloadID(ss.ConstDecls.Allocate(data))
	return ss.new(Stmt{Kind: StmtConstDecl, Span: span, Payload: p})
}

// NewGlobalDecl allocates a GlobalDecl.
func (ss *Stmts) NewGlobalDecl(span source.Span, data GlobalDeclData) StmtID {
	p := PayloadID(ss.GlobalDecls.Allocate(data))
	return ss.new(Stmt{Kind: StmtGlobalDecl, Span: span, Payload: p})
}

// NewEnumDecl allocates an EnumDecl.
func (ss *Stmts) NewEnumDecl(span source.Span, data EnumDeclData) StmtID {
	p := PayloadID(ss.EnumDecls.Allocate(data))
	return ss.new(Stmt{Kind: StmtEnumDecl, Span: span, Payload: p})
}

// NewTypeDecl allocates a TypeDecl.
func (ss *Stmts) NewTypeDecl(span source.Span, data TypeDeclData) StmtID {
	p := PayloadID(ss.TypeDecls.Allocate(data))
	return ss.new(Stmt{Kind: StmtTypeDecl, Span: span, Payload: p})
}

// NewInterfaceDecl allocates an InterfaceDecl.
func (ss *Stmts) NewInterfaceDecl(span source.Span, data InterfaceDeclData) StmtID {
	p := PayloadID(ss.IfaceDecls.Allocate(data))
	return ss.new(Stmt{Kind: StmtInterfaceDecl, Span: span, Payload: p})
}

// NewStructDecl allocates a StructDecl.
func (ss *Stmts) NewStructDecl(span source.Span, data StructDeclData) StmtID {
	p := PayloadID(ss.StructDecls.Allocate(data))
	return ss.new(Stmt{Kind: StmtStructDecl, Span: span, Payload: p})
}

// NewAsm allocates an AsmStmt.
func (ss *Stmts) NewAsm(span source.Span, data AsmStmtData) StmtID {
	p := PayloadID(ss.Asms.Allocate(data))
	return ss.new(Stmt{Kind: StmtAsm, Span: span, Payload: p})
}

// NewAssert allocates an AssertStmt.
func (ss *Stmts) NewAssert(span source.Span, data AssertStmtData) StmtID {
	p := PayloadID(ss.Asserts.Allocate(data))
	return ss.new(Stmt{Kind: StmtAssert, Span: span, Payload: p})
}

// NewComptimeFor allocates a ComptimeFor.
func (ss *Stmts) NewComptimeFor(span source.Span, data ComptimeForData) StmtID {
	p := PayloadID(ss.ComptimeFors.Allocate(data))
	return ss.new(Stmt{Kind: StmtComptimeFor, Span: span, Payload: p})
}

// NewSql allocates a SqlStmt.
func (ss *Stmts) NewSql(span source.Span, data SqlStmtData) StmtID {
	p := PayloadID(ss.Sqls.Allocate(data))
	return ss.new(Stmt{Kind: StmtSql, Span: span, Payload: p})
}

// Assign returns the AssignStmtData for s.
func (ss *Stmts) Assign(s StmtID) *AssignStmtData { return ss.Assigns.Get(uint32(ss.Get(s).Payload)) }

// ExprStmt returns the ExprStmtData for s.
func (ss *Stmts) ExprStmt(s StmtID) *ExprStmtData { return ss.ExprStmts.Get(uint32(ss.Get(s).Payload)) }

// Return returns the ReturnStmtData for s.
func (ss *Stmts) Return(s StmtID) *ReturnStmtData { return ss.Returns.Get(uint32(ss.Get(s).Payload)) }

// Block returns the BlockStmtData for s.
func (ss *Stmts) Block(s StmtID) *BlockStmtData { return ss.Blocks.Get(uint32(ss.Get(s).Payload)) }

// For returns the ForStmtData for s.
func (ss *Stmts) For(s StmtID) *ForStmtData { return ss.Fors.Get(uint32(ss.Get(s).Payload)) }

// ForIn returns the ForInStmtData for s.
func (ss *Stmts) ForIn(s StmtID) *ForInStmtData { return ss.ForIns.Get(uint32(ss.Get(s).Payload)) }

// ForC returns the ForCStmtData for s.
func (ss *Stmts) ForC(s StmtID) *ForCStmtData { return ss.ForCs.Get(uint32(ss.Get(s).Payload)) }

// Branch returns the BranchStmtData for s.
func (ss *Stmts) Branch(s StmtID) *BranchStmtData { return ss.Branches.Get(uint32(ss.Get(s).Payload)) }

// Goto returns the GotoStmtData for s.
func (ss *Stmts) Goto(s StmtID) *GotoStmtData { return ss.Gotos.Get(uint32(ss.Get(s).Payload)) }

// GotoLabel returns the GotoLabelData for s.
func (ss *Stmts) GotoLabel(s StmtID) *GotoLabelData {
	return ss.GotoLabels.Get(uint32(ss.Get(s).Payload))
}

// Defer returns the DeferStmtData for s.
func (ss *Stmts) Defer(s StmtID) *DeferStmtData { return ss.Defers.Get(uint32(ss.Get(s).Payload)) }

// Hash returns the HashStmtData for s.
func (ss *Stmts) Hash(s StmtID) *HashStmtData { return ss.Hashes.Get(uint32(ss.Get(s).Payload)) }

// Module returns the ModuleStmtData for s.
func (ss *Stmts) Module(s StmtID) *ModuleStmtData { return ss.Modules.Get(uint32(ss.Get(s).Payload)) }

// Import returns the ImportStmtData for s.
func (ss *Stmts) Import(s StmtID) *ImportStmtData { return ss.Imports.Get(uint32(ss.Get(s).Payload)) }

// ConstDecl returns the ConstDeclData for s.
func (ss *Stmts) ConstDecl(s StmtID) *ConstDeclData {
	return ss.ConstDecls.Get(uint32(ss.Get(s).Payload))
}

// GlobalDecl returns the GlobalDeclData for s.
func (ss *Stmts) GlobalDecl(s StmtID) *GlobalDeclData {
	return ss.GlobalDecls.Get(uint32(ss.Get(s).Payload))
}

// EnumDecl returns the EnumDeclData for s.
func (ss *Stmts) EnumDecl(s StmtID) *EnumDeclData { return ss.EnumDecls.Get(uint32(ss.Get(s).Payload)) }

// TypeDecl returns the TypeDeclData for s.
func (ss *Stmts) TypeDecl(s StmtID) *TypeDeclData { return ss.TypeDecls.Get(uint32(ss.Get(s).Payload)) }

// InterfaceDecl returns the InterfaceDeclData for s.
func (ss *Stmts) InterfaceDecl(s StmtID) *InterfaceDeclData {
	return ss.IfaceDecls.Get(uint32(ss.Get(s).Payload))
}

// StructDecl returns the StructDeclData for s.
func (ss *Stmts) StructDecl(s StmtID) *StructDeclData {
	return ss.StructDecls.Get(uint32(ss.Get(s).Payload))
}

// Asm returns the AsmStmtData for s.
func (ss *Stmts) Asm(s StmtID) *AsmStmtData { return ss.Asms.Get(uint32(ss.Get(s).Payload)) }

// Assert returns the AssertStmtData for s.
func (ss *Stmts) Assert(s StmtID) *AssertStmtData { return ss.Asserts.Get(uint32(ss.Get(s).Payload)) }

// ComptimeFor returns the ComptimeForData for s.
func (ss *Stmts) ComptimeFor(s StmtID) *ComptimeForData {
	return ss.ComptimeFors.Get(uint32(ss.Get(s).Payload))
}

// Sql returns the SqlStmtData for s.
func (ss *Stmts) Sql(s StmtID) *SqlStmtData { return ss.Sqls.Get(uint32(ss.Get(s).Payload)) }
