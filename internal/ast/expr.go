package ast

import (
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// ExprKind enumerates every expression node the checker's dispatcher
// (spec §4.2.2) must handle. The set is closed and mirrors spec §6's
// "Expr — sum of" contract exactly.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprIntegerLiteral
	ExprFloatLiteral
	ExprStringLiteral
	ExprCharLiteral
	ExprBoolLiteral
	ExprNone
	ExprPrefix
	ExprInfix
	ExprPostfix
	ExprIndex
	ExprSelector
	ExprCall
	ExprCast
	ExprAsCast
	ExprMatch
	ExprIf
	ExprIfGuard
	ExprStructInit
	ExprArrayInit
	ExprMapInit
	ExprChanInit
	ExprConcat
	ExprRange
	ExprLock
	ExprUnsafe
	ExprPar
	ExprGo
	ExprSelect
	ExprSizeOf
	ExprOffsetOf
	ExprTypeOf
	ExprAt
	ExprComptimeCall
	ExprComptimeSelector
	ExprStringInterLiteral
	ExprEnumVal
	ExprAssoc
	ExprDump
	ExprLikely
	ExprSql

	exprKindSentinel
)

func (k ExprKind) String() string {
	names := [...]string{
		"Ident", "IntegerLiteral", "FloatLiteral", "StringLiteral", "CharLiteral",
		"BoolLiteral", "None", "PrefixExpr", "InfixExpr", "PostfixExpr", "IndexExpr",
		"SelectorExpr", "CallExpr", "CastExpr", "AsCast", "MatchExpr", "IfExpr",
		"IfGuardExpr", "StructInit", "ArrayInit", "MapInit", "ChanInit", "ConcatExpr",
		"RangeExpr", "LockExpr", "UnsafeExpr", "ParExpr", "GoExpr", "SelectExpr",
		"SizeOf", "OffsetOf", "TypeOf", "AtExpr", "ComptimeCall", "ComptimeSelector",
		"StringInterLiteral", "EnumVal", "Assoc", "DumpExpr", "Likely", "SqlExpr",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "ExprKind(?)"
}

// ExprFlag holds the once-shot and smartcast bits the checker toggles while
// re-dispatching a node (spec §4.2.2 selector rule: prevent_sum_type_unwrapping).
type ExprFlag uint16

const (
	FlagNone ExprFlag = 0
	// FlagPreventSumUnwrap suppresses the one-shot smartcast unwrap on the
	// next Selector dispatch.
	FlagPreventSumUnwrap ExprFlag = 1 << iota
	// FlagConstFolded marks a node whose value was resolved at compile time.
	FlagConstFolded
	// FlagAddressable marks an lvalue eligible for mutation/locking.
	FlagAddressable
	// FlagSmartcast marks a node inside an `is`/`as name` narrowed scope.
	FlagSmartcast
)

// Expr is a node in the expression arena. Kind selects which side table
// Payload indexes into; Typ and Flags are populated/mutated in place by the
// checker's dispatcher, never by the parser.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
	Typ     types.TypeId
	Flags   ExprFlag
}

// HasFlag reports whether flag is set on e.
func (e *Expr) HasFlag(flag ExprFlag) bool { return e.Flags&flag != 0 }

// SetFlag sets flag on e.
func (e *Expr) SetFlag(flag ExprFlag) { e.Flags |= flag }

// ClearFlag clears flag on e.
func (e *Expr) ClearFlag(flag ExprFlag) { e.Flags &^= flag }
