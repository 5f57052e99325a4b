package ast

import "github.com/ripplang/ripplec/internal/source"

// Exprs owns the expression node arena plus one side arena per payload-bearing
// kind, mirroring the Type Table's side-table-per-kind layout in
// internal/types: Expr.Payload indexes into whichever arena its Kind selects.
type Exprs struct {
	Nodes *Arena[Expr]

	Idents     *Arena[IdentData]
	Literals   *Arena[LiteralData]
	Prefixes   *Arena[PrefixData]
	Infixes    *Arena[InfixData]
	Postfixes  *Arena[PostfixData]
	Indexes    *Arena[IndexData]
	Selectors  *Arena[SelectorData]
	Calls      *Arena[CallData]
	Casts      *Arena[CastData]
	AsCasts    *Arena[AsCastData]
	Matches    *Arena[MatchData]
	Ifs        *Arena[IfData]
	IfGuards   *Arena[IfGuardData]
	Structs    *Arena[StructInitData]
	Arrays     *Arena[ArrayInitData]
	Maps       *Arena[MapInitData]
	Chans      *Arena[ChanInitData]
	Concats    *Arena[ConcatData]
	Ranges     *Arena[RangeData]
	Locks      *Arena[LockData]
	Unsafes    *Arena[UnsafeData]
	Parens     *Arena[ParenData]
	Concurrent *Arena[ConcurrencyData]
	Selects    *Arena[SelectData]
	SizeOfs    *Arena[SizeOfData]
	Ats        *Arena[AtData]
	Comptimes  *Arena[ComptimeCallData]
	Inters     *Arena[StringInterData]
	EnumVals   *Arena[EnumValData]
	Assocs     *Arena[AssocData]
	Dumps      *Arena[DumpData]
	Likelys    *Arena[LikelyData]
	Sqls       *Arena[SqlData]
}

// NewExprs allocates an Exprs with every side arena sized to capHint.
func NewExprs(capHint uint) *Exprs {
	return &Exprs{
		Nodes:      NewArena[Expr](capHint),
		Idents:     NewArena[IdentData](capHint),
		Literals:   NewArena[LiteralData](capHint),
		Prefixes:   NewArena[PrefixData](capHint / 4),
		Infixes:    NewArena[InfixData](capHint / 2),
		Postfixes:  NewArena[PostfixData](capHint / 4),
		Indexes:    NewArena[IndexData](capHint / 4),
		Selectors:  NewArena[SelectorData](capHint / 2),
		Calls:      NewArena[CallData](capHint / 2),
		Casts:      NewArena[CastData](capHint / 8),
		AsCasts:    NewArena[AsCastData](capHint / 8),
		Matches:    NewArena[MatchData](capHint / 8),
		Ifs:        NewArena[IfData](capHint / 4),
		IfGuards:   NewArena[IfGuardData](capHint / 8),
		Structs:    NewArena[StructInitData](capHint / 8),
		Arrays:     NewArena[ArrayInitData](capHint / 8),
		Maps:       NewArena[MapInitData](capHint / 8),
		Chans:      NewArena[ChanInitData](capHint / 16),
		Concats:    NewArena[ConcatData](capHint / 16),
		Ranges:     NewArena[RangeData](capHint / 16),
		Locks:      NewArena[LockData](capHint / 16),
		Unsafes:    NewArena[UnsafeData](capHint / 16),
		Parens:     NewArena[ParenData](capHint / 16),
		Concurrent: NewArena[ConcurrencyData](capHint / 16),
		Selects:    NewArena[SelectData](capHint / 16),
		SizeOfs:    NewArena[SizeOfData](capHint / 16),
		Ats:        NewArena[AtData](capHint / 16),
		Comptimes:  NewArena[ComptimeCallData](capHint / 16),
		Inters:     NewArena[StringInterData](capHint / 8),
		EnumVals:   NewArena[EnumValData](capHint / 16),
		Assocs:     NewArena[AssocData](capHint / 16),
		Dumps:      NewArena[DumpData](capHint / 16),
		Likelys:    NewArena[LikelyData](capHint / 16),
		Sqls:       NewArena[SqlData](capHint / 16),
	}
}

func (es *Exprs) new(e Expr) ExprID {
	return ExprID(es.Nodes.Allocate(e))
}

// Get returns the node for id.
func (es *Exprs) Get(id ExprID) *Expr { return es.Nodes.Get(uint32(id)) }

// NewIdent allocates an Ident expression.
func (es *Exprs) NewIdent(span source.Span, data IdentData) ExprID {
	p := PayloadID(es.Idents.Allocate(data))
	return es.new(Expr{Kind: ExprIdent, Span: span, Payload: p})
}

// NewLiteral allocates a literal expression of the given kind.
func (es *Exprs) NewLiteral(kind ExprKind, span source.Span, data LiteralData) ExprID {
	p := PayloadID(es.Literals.Allocate(data))
	return es.new(Expr{Kind: kind, Span: span, Payload: p})
}

// NewPrefix allocates a PrefixExpr.
func (es *Exprs) NewPrefix(span source.Span, data PrefixData) ExprID {
	p := PayloadID(es.Prefixes.Allocate(data))
	return es.new(Expr{Kind: ExprPrefix, Span: span, Payload: p})
}

// NewInfix allocates an InfixExpr.
func (es *Exprs) NewInfix(span source.Span, data InfixData) ExprID {
	p := PayloadID(es.Infixes.Allocate(data))
	return es.new(Expr{Kind: ExprInfix, Span: span, Payload: p})
}

// NewPostfix allocates a PostfixExpr.
func (es *Exprs) NewPostfix(span source.Span, data PostfixData) ExprID {
	p := PayloadID(es.Postfixes.Allocate(data))
	return es.new(Expr{Kind: ExprPostfix, Span: span, Payload: p})
}

// NewIndex allocates an IndexExpr.
func (es *Exprs) NewIndex(span source.Span, data IndexData) ExprID {
	p := PayloadID(es.Indexes.Allocate(data))
	return es.new(Expr{Kind: ExprIndex, Span: span, Payload: p})
}

// NewSelector allocates a SelectorExpr.
func (es *Exprs) NewSelector(span source.Span, data SelectorData) ExprID {
	p := PayloadID(es.Selectors.Allocate(data))
	return es.new(Expr{Kind: ExprSelector, Span: span, Payload: p})
}

// NewCall allocates a CallExpr.
func (es *Exprs) NewCall(span source.Span, data CallData) ExprID {
	p := PayloadID(es.Calls.Allocate(data))
	return es.new(Expr{Kind: ExprCall, Span: span, Payload: p})
}

// NewCast allocates a CastExpr.
func (es *Exprs) NewCast(span source.Span, data CastData) ExprID {
	p := PayloadID(es.Casts.Allocate(data))
	return es.new(Expr{Kind: ExprCast, Span: span, Payload: p})
}

// NewAsCast allocates an AsCast.
func (es *Exprs) NewAsCast(span source.Span, data AsCastData) ExprID {
	p := PayloadID(es.AsCasts.Allocate(data))
	return es.new(Expr{Kind: ExprAsCast, Span: span, Payload: p})
}

// NewMatch allocates a MatchExpr.
func (es *Exprs) NewMatch(span source.Span, data MatchData) ExprID {
	p := PayloadID(es.Matches.Allocate(data))
	return es.new(Expr{Kind: ExprMatch, Span: span, Payload: p})
}

// NewIf allocates an IfExpr.
func (es *Exprs) NewIf(span source.Span, data IfData) ExprID {
	p := PayloadID(es.Ifs.Allocate(data))
	return es.new(Expr{Kind: ExprIf, Span: span, Payload: p})
}

// NewIfGuard allocates an IfGuardExpr.
func (es *Exprs) NewIfGuard(span source.Span, data IfGuardData) ExprID {
	p := PayloadID(es.IfGuards.Allocate(data))
	return es.new(Expr{Kind: ExprIfGuard, Span: span, Payload: p})
}

// NewStructInit allocates a StructInit.
func (es *Exprs) NewStructInit(span source.Span, data StructInitData) ExprID {
	p := PayloadID(es.Structs.Allocate(data))
	return es.new(Expr{Kind: ExprStructInit, Span: span, Payload: p})
}

// NewArrayInit allocates an ArrayInit.
func (es *Exprs) NewArrayInit(span source.Span, data ArrayInitData) ExprID {
	p := PayloadID(es.Arrays.Allocate(data))
	return es.new(Expr{Kind: ExprArrayInit, Span: span, Payload: p})
}

// NewMapInit allocates a MapInit.
func (es *Exprs) NewMapInit(span source.Span, data MapInitData) ExprID {
	p := PayloadID(es.Maps.Allocate(data))
	return es.new(Expr{Kind: ExprMapInit, Span: span, Payload: p})
}

// NewChanInit allocates a ChanInit.
func (es *Exprs) NewChanInit(span source.Span, data ChanInitData) ExprID {
	p := PayloadID(es.Chans.Allocate(data))
	return es.new(Expr{Kind: ExprChanInit, Span: span, Payload: p})
}

// NewConcat allocates a ConcatExpr.
func (es *Exprs) NewConcat(span source.Span, data ConcatData) ExprID {
	p := PayloadID(es.Concats.Allocate(data))
	return es.new(Expr{Kind: ExprConcat, Span: span, Payload: p})
}

// NewRange allocates a RangeExpr.
func (es *Exprs) NewRange(span source.Span, data RangeData) ExprID {
	p := PayloadID(es.Ranges.Allocate(data))
	return es.new(Expr{Kind: ExprRange, Span: span, Payload: p})
}

// NewLock allocates a LockExpr.
func (es *Exprs) NewLock(span source.Span, data LockData) ExprID {
	p := PayloadID(es.Locks.Allocate(data))
	return es.new(Expr{Kind: ExprLock, Span: span, Payload: p})
}

// NewUnsafe allocates an UnsafeExpr.
func (es *Exprs) NewUnsafe(span source.Span, data UnsafeData) ExprID {
	p := PayloadID(es.Unsafes.Allocate(data))
	return es.new(Expr{Kind: ExprUnsafe, Span: span, Payload: p})
}

// NewConcurrency allocates a GoExpr (spawn).
func (es *Exprs) NewConcurrency(span source.Span, data ConcurrencyData) ExprID {
	p := PayloadID(es.Concurrent.Allocate(data))
	return es.new(Expr{Kind: ExprGo, Span: span, Payload: p})
}

// NewParen allocates a ParExpr.
func (es *Exprs) NewParen(span source.Span, data ParenData) ExprID {
	p := PayloadID(es.Parens.Allocate(data))
	return es.new(Expr{Kind: ExprPar, Span: span, Payload: p})
}

// NewSelect allocates a SelectExpr.
func (es *Exprs) NewSelect(span source.Span, data SelectData) ExprID {
	p := PayloadID(es.Selects.Allocate(data))
	return es.new(Expr{Kind: ExprSelect, Span: span, Payload: p})
}

// NewSizeOf allocates a SizeOf, OffsetOf, or TypeOf expression.
func (es *Exprs) NewSizeOf(kind ExprKind, span source.Span, data SizeOfData) ExprID {
	p := PayloadID(es.SizeOfs.Allocate(data))
	return es.new(Expr{Kind: kind, Span: span, Payload: p})
}

// NewAt allocates an AtExpr.
func (es *Exprs) NewAt(span source.Span, data AtData) ExprID {
	p := PayloadID(es.Ats.Allocate(data))
	return es.new(Expr{Kind: ExprAt, Span: span, Payload: p})
}

// NewComptime allocates a ComptimeCall or ComptimeSelector expression.
func (es *Exprs) NewComptime(kind ExprKind, span source.Span, data ComptimeCallData) ExprID {
	p := PayloadID(es.Comptimes.Allocate(data))
	return es.new(Expr{Kind: kind, Span: span, Payload: p})
}

// NewStringInter allocates a StringInterLiteral.
func (es *Exprs) NewStringInter(span source.Span, data StringInterData) ExprID {
	p := PayloadID(es.Inters.Allocate(data))
	return es.new(Expr{Kind: ExprStringInterLiteral, Span: span, Payload: p})
}

// NewEnumVal allocates an EnumVal.
func (es *Exprs) NewEnumVal(span source.Span, data EnumValData) ExprID {
	p := PayloadID(es.EnumVals.Allocate(data))
	return es.new(Expr{Kind: ExprEnumVal, Span: span, Payload: p})
}

// NewAssoc allocates an Assoc expression.
func (es *Exprs) NewAssoc(span source.Span, data AssocData) ExprID {
	p := PayloadID(es.Assocs.Allocate(data))
	return es.new(Expr{Kind: ExprAssoc, Span: span, Payload: p})
}

// NewDump allocates a DumpExpr.
func (es *Exprs) NewDump(span source.Span, data DumpData) ExprID {
	p := PayloadID(es.Dumps.Allocate(data))
	return es.new(Expr{Kind: ExprDump, Span: span, Payload: p})
}

// NewLikely allocates a Likely expression.
func (es *Exprs) NewLikely(span source.Span, data LikelyData) ExprID {
	p := PayloadID(es.Likelys.Allocate(data))
	return es.new(Expr{Kind: ExprLikely, Span: span, Payload: p})
}

// NewSql allocates a SqlExpr.
func (es *Exprs) NewSql(span source.Span, data SqlData) ExprID {
	p := PayloadID(es.Sqls.Allocate(data))
	return es.new(Expr{Kind: ExprSql, Span: span, Payload: p})
}

// NewNone allocates the `None` literal expression; it carries no payload.
func (es *Exprs) NewNone(span source.Span) ExprID {
	return es.new(Expr{Kind: ExprNone, Span: span, Payload: NoPayloadID})
}

// Ident returns the IdentData for e, which must be an ExprIdent node.
func (es *Exprs) Ident(e ExprID) *IdentData { return es.Idents.Get(uint32(es.Get(e).Payload)) }

// Literal returns the LiteralData for e.
func (es *Exprs) Literal(e ExprID) *LiteralData { return es.Literals.Get(uint32(es.Get(e).Payload)) }

// Prefix returns the PrefixData for e.
func (es *Exprs) Prefix(e ExprID) *PrefixData { return es.Prefixes.Get(uint32(es.Get(e).Payload)) }

// Infix returns the InfixData for e.
func (es *Exprs) Infix(e ExprID) *InfixData { return es.Infixes.Get(uint32(es.Get(e).Payload)) }

// Postfix returns the PostfixData for e.
func (es *Exprs) Postfix(e ExprID) *PostfixData { return es.Postfixes.Get(uint32(es.Get(e).Payload)) }

// Index returns the IndexData for e.
func (es *Exprs) Index(e ExprID) *IndexData { return es.Indexes.Get(uint32(es.Get(e).Payload)) }

// Selector returns the SelectorData for e.
func (es *Exprs) Selector(e ExprID) *SelectorData { return es.Selectors.Get(uint32(es.Get(e).Payload)) }

// Call returns the CallData for e.
func (es *Exprs) Call(e ExprID) *CallData { return es.Calls.Get(uint32(es.Get(e).Payload)) }

// Cast returns the CastData for e.
func (es *Exprs) Cast(e ExprID) *CastData { return es.Casts.Get(uint32(es.Get(e).Payload)) }

// AsCast returns the AsCastData for e.
func (es *Exprs) AsCast(e ExprID) *AsCastData { return es.AsCasts.Get(uint32(es.Get(e).Payload)) }

// Match returns the MatchData for e.
func (es *Exprs) Match(e ExprID) *MatchData { return es.Matches.Get(uint32(es.Get(e).Payload)) }

// If returns the IfData for e.
func (es *Exprs) If(e ExprID) *IfData { return es.Ifs.Get(uint32(es.Get(e).Payload)) }

// IfGuard returns the IfGuardData for e.
func (es *Exprs) IfGuard(e ExprID) *IfGuardData { return es.IfGuards.Get(uint32(es.Get(e).Payload)) }

// StructInit returns the StructInitData for e.
func (es *Exprs) StructInit(e ExprID) *StructInitData {
	return es.Structs.Get(uint32(es.Get(e).Payload))
}

// ArrayInit returns the ArrayInitData for e.
func (es *Exprs) ArrayInit(e ExprID) *ArrayInitData { return es.Arrays.Get(uint32(es.Get(e).Payload)) }

// MapInit returns the MapInitData for e.
func (es *Exprs) MapInit(e ExprID) *MapInitData { return es.Maps.Get(uint32(es.Get(e).Payload)) }

// ChanInit returns the ChanInitData for e.
func (es *Exprs) ChanInit(e ExprID) *ChanInitData { return es.Chans.Get(uint32(es.Get(e).Payload)) }

// Concat returns the ConcatData for e.
func (es *Exprs) Concat(e ExprID) *ConcatData { return es.Concats.Get(uint32(es.Get(e).Payload)) }

// Range returns the RangeData for e.
func (es *Exprs) Range(e ExprID) *RangeData { return es.Ranges.Get(uint32(es.Get(e).Payload)) }

// Lock returns the LockData for e.
func (es *Exprs) Lock(e ExprID) *LockData { return es.Locks.Get(uint32(es.Get(e).Payload)) }

// Unsafe returns the UnsafeData for e.
func (es *Exprs) Unsafe(e ExprID) *UnsafeData { return es.Unsafes.Get(uint32(es.Get(e).Payload)) }

// Concurrency returns the ConcurrencyData for e.
func (es *Exprs) Concurrency(e ExprID) *ConcurrencyData {
	return es.Concurrent.Get(uint32(es.Get(e).Payload))
}

// Paren returns the ParenData for e.
func (es *Exprs) Paren(e ExprID) *ParenData { return es.Parens.Get(uint32(es.Get(e).Payload)) }

// Select returns the SelectData for e.
func (es *Exprs) Select(e ExprID) *SelectData { return es.Selects.Get(uint32(es.Get(e).Payload)) }

// SizeOf returns the SizeOfData for e.
func (es *Exprs) SizeOf(e ExprID) *SizeOfData { return es.SizeOfs.Get(uint32(es.Get(e).Payload)) }

// At returns the AtData for e.
func (es *Exprs) At(e ExprID) *AtData { return es.Ats.Get(uint32(es.Get(e).Payload)) }

// Comptime returns the ComptimeCallData for e.
func (es *Exprs) Comptime(e ExprID) *ComptimeCallData {
	return es.Comptimes.Get(uint32(es.Get(e).Payload))
}

// StringInter returns the StringInterData for e.
func (es *Exprs) StringInter(e ExprID) *StringInterData {
	return es.Inters.Get(uint32(es.Get(e).Payload))
}

// EnumVal returns the EnumValData for e.
func (es *Exprs) EnumVal(e ExprID) *EnumValData { return es.EnumVals.Get(uint32(es.Get(e).Payload)) }

// Assoc returns the AssocData for e.
func (es *Exprs) Assoc(e ExprID) *AssocData { return es.Assocs.Get(uint32(es.Get(e).Payload)) }

// Dump returns the DumpData for e.
func (es *Exprs) Dump(e ExprID) *DumpData { return es.Dumps.Get(uint32(es.Get(e).Payload)) }

// Likely returns the LikelyData for e.
func (es *Exprs) Likely(e ExprID) *LikelyData { return es.Likelys.Get(uint32(es.Get(e).Payload)) }

// Sql returns the SqlData for e.
func (es *Exprs) Sql(e ExprID) *SqlData { return es.Sqls.Get(uint32(es.Get(e).Payload)) }
