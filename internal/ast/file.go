package ast

import "github.com/ripplang/ripplec/internal/source"

// File is one parsed source file (spec §6 File contract).
type File struct {
	Path         string
	Module       source.StringID
	Imports      []StmtID // StmtImport nodes
	Stmts        []StmtID // top-level declarations and statements, in source order
	Scope        ScopeID
	IsGenerated  bool
	IsTranslated bool // true for code translated from C, relaxing certain mutability rules (spec §4.2.3)
}

// Files owns the per-file arena.
type Files struct {
	arena *Arena[File]
}

// NewFiles allocates a Files arena.
func NewFiles(capHint uint) *Files {
	return &Files{arena: NewArena[File](capHint)}
}

// New allocates a File and returns its FileID.
func (fs *Files) New(f File) FileID {
	return FileID(fs.arena.Allocate(f))
}

// Get returns the File for id.
func (fs *Files) Get(id FileID) *File { return fs.arena.Get(uint32(id)) }

// Len returns the number of registered files.
func (fs *Files) Len() uint32 { return fs.arena.Len() }
