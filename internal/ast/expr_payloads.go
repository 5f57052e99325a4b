package ast

import (
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// InfixOp enumerates binary operators the Infix rule (spec §4.2.2) dispatches on.
type InfixOp uint8

const (
	OpAdd InfixOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr
	OpAppend // `<<` on an array target
	OpIn
	OpNotIn
	OpIs
	OpNotIs
	OpEq
	OpNotEq
	OpLt
	OpLtEq
	OpGt
	OpGtEq
	OpLogicalAnd
	OpLogicalOr
	OpBitAnd
	OpBitOr
	OpBitXor
)

// PrefixOp enumerates unary prefix operators.
type PrefixOp uint8

const (
	PrefixNeg PrefixOp = iota
	PrefixNot
	PrefixDeref
	PrefixRef
	PrefixRefMut
	PrefixBitNot
)

// PostfixOp enumerates unary postfix operators (e.g. the optional-unwrap `!`).
type PostfixOp uint8

const (
	PostfixForceUnwrap PostfixOp = iota
	PostfixIncrement
	PostfixDecrement
)

// IdentData backs ExprIdent.
type IdentData struct {
	Name source.StringID
	// ResolvedVar is the binding the checker resolves this identifier to.
	ResolvedVar BindingID
}

// LiteralData backs the Integer/Float/String/Char/Bool literal kinds.
type LiteralData struct {
	IntValue    int64
	FloatValue  float64
	StringValue source.StringID
	CharValue   rune
	BoolValue   bool
}

// PrefixData backs ExprPrefix.
type PrefixData struct {
	Op   PrefixOp
	Expr ExprID
}

// InfixData backs ExprInfix.
type InfixData struct {
	Op          InfixOp
	Left, Right ExprID
	// ShiftOverflow records whether a compile-time-known shift count was
	// found to exceed the operand width (spec §4.2.2 infix rule).
	ShiftOverflow bool
}

// PostfixData backs ExprPostfix.
type PostfixData struct {
	Op   PostfixOp
	Expr ExprID
}

// IndexData backs ExprIndex.
type IndexData struct {
	Target ExprID
	Index  ExprID
	// IsRange marks the gated `#[..]` range-index form.
	IsRange  bool
	RangeEnd ExprID
}

// SelectorData backs ExprSelector.
type SelectorData struct {
	Target ExprID
	Field  source.StringID
	// SmartcastVariant, when non-zero-valued, records the sum-type variant
	// this selector was narrowed to by an enclosing `is`/`as name` scope.
	SmartcastVariant types.TypeId
}

// CallArg is one argument in a call's argument list.
type CallArg struct {
	Expr  ExprID
	Label source.StringID // named-argument label, or NoStringID
}

// CallData backs ExprCall.
type CallData struct {
	Callee ExprID
	Args   []CallArg
	// ExplicitTypeArgs holds caller-supplied generic instantiation types;
	// empty when generics must be inferred (spec §4.2.4 step 4).
	ExplicitTypeArgs []types.TypeId
	// OrBlock is the optional-propagation fallback block (spec §4.2.4 step 8).
	OrBlock StmtID
}

// CastData backs ExprCast (`as` conversions through the compatibility ladder).
type CastData struct {
	Expr   ExprID
	Target types.TypeId
}

// AsCastData backs ExprAsCast, the smartcast-introducing `expr as name` form
// used in match arms and if-guards.
type AsCastData struct {
	Expr    ExprID
	Binding source.StringID
	Variant types.TypeId
}

// MatchArm is one arm of a match expression.
type MatchArm struct {
	// Pattern is the variant type tested for (sum type) or the literal/enum
	// value tested for (enum/primitive match); NoType for a wildcard `_` arm.
	Pattern types.TypeId
	Binding source.StringID // `as name` binding, or NoStringID
	Body    StmtID
}

// MatchData backs ExprMatch.
type MatchData struct {
	Subject ExprID
	Arms    []MatchArm
	// Exhaustive records whether the checker proved full coverage.
	Exhaustive bool
}

// IfData backs ExprIf.
type IfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID when there is no else branch
}

// IfGuardData backs ExprIfGuard, the `if x := opt() {}` optional-unwrap guard.
type IfGuardData struct {
	Binding source.StringID
	Init    ExprID
	Then    StmtID
	Else    StmtID
}

// FieldInit is one `name: value` pair in a struct literal.
type FieldInit struct {
	Field source.StringID
	Value ExprID
}

// StructInitData backs ExprStructInit.
type StructInitData struct {
	Type   types.TypeId
	Fields []FieldInit
}

// ArrayInitData backs ExprArrayInit.
type ArrayInitData struct {
	Elems []ExprID
}

// MapEntry is one key/value pair in a map literal.
type MapEntry struct {
	Key, Value ExprID
}

// MapInitData backs ExprMapInit.
type MapInitData struct {
	Entries []MapEntry
}

// ChanInitData backs ExprChanInit.
type ChanInitData struct {
	ElemType types.TypeId
	Capacity ExprID // NoExprID for an unbuffered channel
}

// ConcatData backs ExprConcat, string/array concatenation.
type ConcatData struct {
	Left, Right ExprID
}

// RangeData backs ExprRange.
type RangeData struct {
	Start, End ExprID
	Inclusive  bool
}

// LockData backs ExprLock (`lock`/`rlock` blocks, spec §4.2.3).
type LockData struct {
	Names    []source.StringID
	ReadOnly bool // true for rlock
	Body     StmtID
}

// UnsafeData backs ExprUnsafe.
type UnsafeData struct {
	Body StmtID
}

// ConcurrencyData backs ExprGo, the spawn expression.
type ConcurrencyData struct {
	Call ExprID
}

// ParenData backs ExprPar, a parenthesized expression.
type ParenData struct {
	Inner ExprID
}

// SelectCase is one arm of a select expression.
type SelectCase struct {
	Chan ExprID
	Body StmtID
}

// SelectData backs ExprSelect.
type SelectData struct {
	Cases   []SelectCase
	Default StmtID // NoStmtID when absent
}

// SizeOfData backs ExprSizeOf/ExprOffsetOf/ExprTypeOf.
type SizeOfData struct {
	Target types.TypeId
	Field  source.StringID // used by OffsetOf only
}

// AtData backs ExprAt, the `@tag expr` annotation form.
type AtData struct {
	Tag  source.StringID
	Expr ExprID
}

// ComptimeCallData backs ExprComptimeCall/ExprComptimeSelector.
type ComptimeCallData struct {
	Name source.StringID
	Args []ExprID
}

// InterSegment is one piece of a string interpolation literal: either a
// literal run of text or an interpolated expression with a format spec.
type InterSegment struct {
	Literal source.StringID // valid when Expr == NoExprID
	Expr    ExprID
	Spec    source.StringID // format specifier letters, e.g. "x", "f2"
}

// StringInterData backs ExprStringInterLiteral.
type StringInterData struct {
	Segments []InterSegment
}

// EnumValData backs ExprEnumVal.
type EnumValData struct {
	EnumType types.TypeId
	Variant  source.StringID
}

// AssocData backs ExprAssoc, a `Type::member` associated-item reference.
type AssocData struct {
	Type   types.TypeId
	Member source.StringID
}

// DumpData backs ExprDump, a debug-print passthrough expression.
type DumpData struct {
	Expr ExprID
}

// LikelyData backs ExprLikely, a branch-prediction hint wrapper.
type LikelyData struct {
	Expr   ExprID
	Likely bool
}

// SqlData backs ExprSql, an embedded query literal.
type SqlData struct {
	Query source.StringID
	Binds []ExprID
}
