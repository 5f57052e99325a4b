package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/checkkit"
	"github.com/ripplang/ripplec/internal/config"
	"github.com/ripplang/ripplec/internal/types"
)

// program is the tiny JSON AST dump this driver accepts in place of a real
// lexer/parser (an out-of-scope collaborator for this library). It covers
// just enough surface to exercise const/global declarations, structs, and
// a handful of statement and expression kinds end to end.
type program struct {
	Consts  []constSpec  `json:"consts"`
	Globals []globalSpec `json:"globals"`
	Structs []string     `json:"structs"`
	Stmts   []stmtSpec   `json:"stmts"`
}

type constSpec struct {
	Name  string   `json:"name"`
	Value exprSpec `json:"value"`
}

type globalSpec struct {
	Name  string   `json:"name"`
	Type  string   `json:"type"`
	Value exprSpec `json:"value"`
}

type exprSpec struct {
	Kind   string     `json:"kind"` // int | str | ident | infix | call
	Int    int64      `json:"int,omitempty"`
	Str    string     `json:"str,omitempty"`
	Name   string     `json:"name,omitempty"`
	Op     string     `json:"op,omitempty"`
	Left   *exprSpec  `json:"left,omitempty"`
	Right  *exprSpec  `json:"right,omitempty"`
	Callee string     `json:"callee,omitempty"`
	Args   []exprSpec `json:"args,omitempty"`
}

type stmtSpec struct {
	Kind string     `json:"kind"` // declare | assign | exprstmt | return
	Lhs  string     `json:"lhs,omitempty"`
	Rhs  *exprSpec  `json:"rhs,omitempty"`
	Expr *exprSpec  `json:"expr,omitempty"`
	Vals []exprSpec `json:"values,omitempty"`
}

var infixOps = map[string]ast.InfixOp{
	"+": ast.OpAdd, "-": ast.OpSub, "*": ast.OpMul, "/": ast.OpDiv, "%": ast.OpMod,
	"==": ast.OpEq, "!=": ast.OpNotEq, "<": ast.OpLt, "<=": ast.OpLtEq,
	">": ast.OpGt, ">=": ast.OpGtEq, "&&": ast.OpLogicalAnd, "||": ast.OpLogicalOr,
}

func loadProgram(path string) (program, error) {
	var p program
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read fixture: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("decode fixture: %w", err)
	}
	return p, nil
}

// build assembles p into a fresh checkkit.Fixture, ready for checker.CheckAll.
func build(p program, cfg config.Checker) (*checkkit.Fixture, error) {
	f := checkkit.New()
	f.Config = cfg

	for _, name := range p.Structs {
		f.Struct(name)
	}

	var top []ast.StmtID
	for _, c := range p.Consts {
		val, err := buildExpr(f, c.Value)
		if err != nil {
			return nil, fmt.Errorf("const %q: %w", c.Name, err)
		}
		top = append(top, f.ConstDecl(c.Name, val))
	}
	for _, g := range p.Globals {
		typ, ok := builtinByName(f, g.Type)
		if !ok {
			return nil, fmt.Errorf("global %q: unknown type %q", g.Name, g.Type)
		}
		val, err := buildExpr(f, g.Value)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", g.Name, err)
		}
		top = append(top, f.GlobalDecl(g.Name, typ, val))
	}
	for i, s := range p.Stmts {
		sid, err := buildStmt(f, s)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		top = append(top, sid)
	}
	f.SetTopStmts(top...)
	return f, nil
}

func builtinByName(f *checkkit.Fixture, name string) (types.TypeId, bool) {
	b := f.Table.Builtins()
	switch name {
	case "int":
		return b.Int, true
	case "string":
		return b.String, true
	case "bool":
		return b.Bool, true
	case "float":
		return b.Float, true
	default:
		return 0, false
	}
}

func buildExpr(f *checkkit.Fixture, e exprSpec) (ast.ExprID, error) {
	switch e.Kind {
	case "int":
		return f.Int(e.Int), nil
	case "str":
		return f.Str(e.Str), nil
	case "ident":
		return f.Ident(e.Name), nil
	case "infix":
		op, ok := infixOps[e.Op]
		if !ok {
			return 0, fmt.Errorf("unknown infix operator %q", e.Op)
		}
		left, err := buildExpr(f, *e.Left)
		if err != nil {
			return 0, err
		}
		right, err := buildExpr(f, *e.Right)
		if err != nil {
			return 0, err
		}
		return f.Infix(op, left, right), nil
	case "call":
		args := make([]ast.ExprID, len(e.Args))
		for i, a := range e.Args {
			arg, err := buildExpr(f, a)
			if err != nil {
				return 0, err
			}
			args[i] = arg
		}
		return f.Call(f.Ident(e.Callee), args...), nil
	default:
		return 0, fmt.Errorf("unknown expression kind %q", e.Kind)
	}
}

func buildStmt(f *checkkit.Fixture, s stmtSpec) (ast.StmtID, error) {
	switch s.Kind {
	case "declare":
		rhs, err := buildExpr(f, *s.Rhs)
		if err != nil {
			return 0, err
		}
		return f.Assign(ast.AssignDeclare, f.Ident(s.Lhs), rhs), nil
	case "assign":
		rhs, err := buildExpr(f, *s.Rhs)
		if err != nil {
			return 0, err
		}
		return f.Assign(ast.AssignPlain, f.Ident(s.Lhs), rhs), nil
	case "exprstmt":
		e, err := buildExpr(f, *s.Expr)
		if err != nil {
			return 0, err
		}
		return f.ExprStmt(e), nil
	case "return":
		vals := make([]ast.ExprID, len(s.Vals))
		for i, v := range s.Vals {
			ve, err := buildExpr(f, v)
			if err != nil {
				return 0, err
			}
			vals[i] = ve
		}
		return f.Return(vals...), nil
	default:
		return 0, fmt.Errorf("unknown statement kind %q", s.Kind)
	}
}
