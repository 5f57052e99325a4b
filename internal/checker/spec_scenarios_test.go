package checker_test

import (
	"context"
	"testing"

	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/checker"
	"github.com/ripplang/ripplec/internal/checkkit"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

func runCheck(f *checkkit.Fixture) *diag.Bag {
	bag := diag.NewBag(f.Config.MessageLimit)
	rep := diag.NewDedupReporter(bag)
	checker.CheckAll(context.Background(), checker.Options{
		Table:    f.Table,
		Module:   f.Module,
		Interner: f.Strs,
		Config:   f.Config,
		Reporter: rep,
	})
	return rep.Bag()
}

func hasCode(bag *diag.Bag, want diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == want {
			return true
		}
	}
	return false
}

// Concrete scenario: "duplicate const".
func TestDuplicateConstIsRejected(t *testing.T) {
	f := checkkit.New()
	a := f.ConstDecl("x", f.Int(1))
	b := f.ConstDecl("x", f.Int(2))
	f.SetTopStmts(a, b)

	bag := runCheck(f)
	if !hasCode(bag, diag.CheckDuplicateConst) {
		t.Fatalf("expected CheckDuplicateConst, got %v", bag.Items())
	}
}

// Concrete scenario: "x is declared as mutable but never changed". A `:=`
// binding that is read but never reassigned earns the mutable-unused
// diagnostic distinct from plain unused-variable.
func TestUnusedMutableIsDistinctFromUnusedVariable(t *testing.T) {
	f := checkkit.New()
	x := f.Assign(ast.AssignDeclare, f.Ident("x"), f.Int(1))
	useX := f.Assign(ast.AssignDeclare, f.Ident("y"), f.Ident("x"))
	f.SetTopStmts(x, useX)

	bag := runCheck(f)
	if !hasCode(bag, diag.CheckUnusedMutable) {
		t.Fatalf("expected CheckUnusedMutable for x, got %v", bag.Items())
	}
}

// A `:=` binding that is both read and later reassigned earns neither
// unused diagnostic.
func TestWrittenMutableIsNotFlagged(t *testing.T) {
	f := checkkit.New()
	decl := f.Assign(ast.AssignDeclare, f.Ident("x"), f.Int(1))
	use := f.Assign(ast.AssignDeclare, f.Ident("y"), f.Ident("x"))
	reassign := f.Assign(ast.AssignPlain, f.Ident("x"), f.Int(2))
	useAgain := f.Assign(ast.AssignDeclare, f.Ident("z"), f.Ident("x"))
	f.SetTopStmts(decl, use, reassign, useAgain)

	bag := runCheck(f)
	if hasCode(bag, diag.CheckUnusedMutable) {
		t.Fatalf("did not expect CheckUnusedMutable once x is reassigned, got %v", bag.Items())
	}
}

// Concrete scenario: a type cannot reference itself through an alias
// chain ("type Alias = Alias").
func TestSelfReferencingAliasIsRejected(t *testing.T) {
	f := checkkit.New()
	aliasID := f.SelfAlias("Alias")
	decl := f.TypeDecl("Alias", aliasID)
	f.SetTopStmts(decl)

	bag := runCheck(f)
	if !hasCode(bag, diag.TableAliasCycle) {
		t.Fatalf("expected TableAliasCycle, got %v", bag.Items())
	}
}

// A plain, non-cyclic alias is accepted.
func TestNonCyclicAliasIsAccepted(t *testing.T) {
	f := checkkit.New()
	target := f.Struct("Real")
	f.Table.RegisterAlias(f.Intern("Alias"), f.Intern(""), target)
	decl := f.TypeDecl("Alias", target)
	f.SetTopStmts(decl)

	bag := runCheck(f)
	if hasCode(bag, diag.TableAliasCycle) {
		t.Fatalf("did not expect TableAliasCycle for a non-cyclic alias, got %v", bag.Items())
	}
}

// Concrete scenario: "S incorrectly implements method work of I: expected
// return type int" — a struct passed where an interface is expected, with
// a method whose return type doesn't match the interface's requirement.
func TestInterfaceMethodReturnTypeMismatchIsDiagnosed(t *testing.T) {
	f := checkkit.New()
	intTyp := f.Table.Builtins().Int
	strTyp := f.Table.Builtins().String

	iface := f.Interface("I")
	want := f.Table.RegisterFn(types.FuncDecl{
		Name: f.Intern("work"), Module: f.Intern("I"), Receiver: iface, Return: intTyp,
	})
	f.Table.SetInterfaceMethods(iface, []types.FuncId{want})

	s := f.Struct("S")
	f.DeclareMethod(s, "S", "work", nil, strTyp)

	f.DeclareFreeFn("accept", nil, []types.Param{{Name: f.Intern("v"), Type: iface}}, f.Table.Builtins().Void)
	call := f.Call(f.Ident("accept"), f.StructInit(s))
	f.SetTopStmts(f.ExprStmt(call))

	bag := runCheck(f)
	if !hasCode(bag, diag.IfaceMethodMismatch) {
		t.Fatalf("expected IfaceMethodMismatch, got %v", bag.Items())
	}
}

// A struct that matches every required method satisfies the interface
// with no diagnostic.
func TestInterfaceConformanceSucceeds(t *testing.T) {
	f := checkkit.New()
	intTyp := f.Table.Builtins().Int

	iface := f.Interface("I")
	want := f.Table.RegisterFn(types.FuncDecl{
		Name: f.Intern("work"), Module: f.Intern("I"), Receiver: iface, Return: intTyp,
	})
	f.Table.SetInterfaceMethods(iface, []types.FuncId{want})

	s := f.Struct("S")
	f.DeclareMethod(s, "S", "work", nil, intTyp)

	f.DeclareFreeFn("accept", nil, []types.Param{{Name: f.Intern("v"), Type: iface}}, f.Table.Builtins().Void)
	call := f.Call(f.Ident("accept"), f.StructInit(s))
	f.SetTopStmts(f.ExprStmt(call))

	bag := runCheck(f)
	if hasCode(bag, diag.IfaceMethodMismatch) || hasCode(bag, diag.IfaceMissingMethod) {
		t.Fatalf("did not expect an interface diagnostic, got %v", bag.Items())
	}
	if !f.Table.DoesTypeImplementInterface(s, iface) {
		t.Fatalf("expected S to implement I")
	}
}

// DoesTypeImplementInterface records the implementor exactly once even
// when checked repeatedly.
func TestInterfaceImplementorRecordedOnce(t *testing.T) {
	f := checkkit.New()
	iface := f.Interface("I")
	s := f.Struct("S")

	f.Table.DoesTypeImplementInterface(s, iface)
	f.Table.DoesTypeImplementInterface(s, iface)

	impls := f.Table.Implementors(iface)
	count := 0
	for _, id := range impls {
		if id == s {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected S recorded as an implementor exactly once, got %d", count)
	}
}

// Concrete scenario: ambiguous generic inference. `pick(a T, b T) T` called
// with two non-numeric arguments of different concrete types can't settle
// on a single binding for T.
func TestAmbiguousGenericInferenceIsDiagnosed(t *testing.T) {
	f := checkkit.New()
	tName := f.Intern("T")
	tParam := f.GenericParam("T")
	sTyp := f.Struct("S")

	f.DeclareFreeFn("pick", []source.StringID{tName},
		[]types.Param{{Name: f.Intern("a"), Type: tParam}, {Name: f.Intern("b"), Type: tParam}}, tParam)

	call := f.Call(f.Ident("pick"), f.StructInit(sTyp), f.Str("x"))
	f.SetTopStmts(f.ExprStmt(call))

	bag := runCheck(f)
	if !hasCode(bag, diag.GenericAmbiguousInference) {
		t.Fatalf("expected GenericAmbiguousInference, got %v", bag.Items())
	}
}

// Concrete scenario: a generic parameter never mentioned by any parameter
// position can't be inferred at all.
func TestUnboundGenericParamIsDiagnosed(t *testing.T) {
	f := checkkit.New()
	tName := f.Intern("T")
	tParam := f.GenericParam("T")

	f.DeclareFreeFn("make", []source.StringID{tName}, nil, tParam)
	call := f.Call(f.Ident("make"))
	f.SetTopStmts(f.ExprStmt(call))

	bag := runCheck(f)
	if !hasCode(bag, diag.GenericUnboundParam) {
		t.Fatalf("expected GenericUnboundParam, got %v", bag.Items())
	}
}

// Generic substitution resolves consistently: two arguments of the same
// numeric kind but different widths (i8, i64) widen to the larger, with no
// ambiguity diagnostic.
func TestGenericNumericWideningIsNotAmbiguous(t *testing.T) {
	f := checkkit.New()
	tName := f.Intern("T")
	tParam := f.GenericParam("T")

	f.DeclareFreeFn("pick", []source.StringID{tName},
		[]types.Param{{Name: f.Intern("a"), Type: tParam}, {Name: f.Intern("b"), Type: tParam}}, tParam)

	narrow := f.GlobalDecl("n", f.Table.Builtins().I8, f.Int(1))
	wide := f.GlobalDecl("w", f.Table.Builtins().I64, f.Int(2))
	call := f.Call(f.Ident("pick"), f.Ident("n"), f.Ident("w"))
	f.SetTopStmts(narrow, wide, f.ExprStmt(call))

	bag := runCheck(f)
	if hasCode(bag, diag.GenericAmbiguousInference) {
		t.Fatalf("did not expect GenericAmbiguousInference for i8 and i64 arguments, got %v", bag.Items())
	}
}

// Concrete scenario: "s is shared and must be lock-ed to be mutated" — a
// `shared`-typed global written outside any lock block.
func TestSharedMutationRequiresLock(t *testing.T) {
	f := checkkit.New()
	sharedInt := f.Table.Builtins().Int.SetFlag(types.FlagShared)
	g := f.GlobalDecl("s", sharedInt, f.Int(0))
	assign := f.Assign(ast.AssignPlain, f.Ident("s"), f.Int(1))
	f.SetTopStmts(g, assign)

	bag := runCheck(f)
	if !hasCode(bag, diag.MutSharedNeedsLock) {
		t.Fatalf("expected MutSharedNeedsLock, got %v", bag.Items())
	}
}

// A `shared` global mutated inside a `lock` block is accepted.
func TestSharedMutationInsideLockIsAccepted(t *testing.T) {
	f := checkkit.New()
	sharedInt := f.Table.Builtins().Int.SetFlag(types.FlagShared)
	g := f.GlobalDecl("s", sharedInt, f.Int(0))
	assign := f.Assign(ast.AssignPlain, f.Ident("s"), f.Int(1))
	body := f.Block(assign)
	lock := f.Lock(false, body, "s")
	f.SetTopStmts(g, f.ExprStmt(lock))

	bag := runCheck(f)
	if hasCode(bag, diag.MutSharedNeedsLock) {
		t.Fatalf("did not expect MutSharedNeedsLock inside a lock block, got %v", bag.Items())
	}
}

// Nested `lock`/`rlock` blocks are rejected.
func TestNestedLockIsRejected(t *testing.T) {
	f := checkkit.New()
	sharedInt := f.Table.Builtins().Int.SetFlag(types.FlagShared)
	g := f.GlobalDecl("s", sharedInt, f.Int(0))

	inner := f.Lock(true, f.Block(), "s")
	outer := f.Lock(false, f.Block(f.ExprStmt(inner)), "s")
	f.SetTopStmts(g, f.ExprStmt(outer))

	bag := runCheck(f)
	if !hasCode(bag, diag.MutLockNested) {
		t.Fatalf("expected MutLockNested, got %v", bag.Items())
	}
}

// Mutability: assigning through a non-`mut` struct field is rejected.
func TestAssignToNonMutFieldIsRejected(t *testing.T) {
	f := checkkit.New()
	s := f.Struct("S")
	f.Table.SetStructFields(s, []types.Field{{Name: f.Intern("y"), Type: f.Table.Builtins().Int, IsMut: false}})

	decl := f.Assign(ast.AssignDeclare, f.Ident("v"), f.StructInit(s))
	sel := f.Selector(f.Ident("v"), "y")
	assign := f.Assign(ast.AssignPlain, sel, f.Int(9))
	f.SetTopStmts(decl, assign)

	bag := runCheck(f)
	if !hasCode(bag, diag.MutFieldNotMut) {
		t.Fatalf("expected MutFieldNotMut, got %v", bag.Items())
	}
}

// Mutability: assigning to a `const` binding is rejected.
func TestAssignToConstIsRejected(t *testing.T) {
	f := checkkit.New()
	decl := f.ConstDecl("c", f.Int(1))
	assign := f.Assign(ast.AssignPlain, f.Ident("c"), f.Int(2))
	f.SetTopStmts(decl, assign)

	bag := runCheck(f)
	if !hasCode(bag, diag.MutConstAssign) {
		t.Fatalf("expected MutConstAssign, got %v", bag.Items())
	}
}
