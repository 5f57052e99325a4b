package types

import (
	"sync"

	"github.com/ripplang/ripplec/internal/source"
)

// FuncId indexes a registered function descriptor (see fn.go). Zero is the
// "no function" sentinel, matching the TypeId and StringID convention.
type FuncId uint32

// NoFunc marks the absence of a function.
const NoFunc FuncId = 0

// Attr is the closed set of compile-time attributes recognized on
// declarations (spec §6). Unknown attributes are warned about, not
// rejected, by the Checker — the Table only needs to store the ones that
// change its own semantics (pub, deprecated, unsafe, variadic, ...).
type Attr uint32

const (
	AttrPub Attr = 1 << iota
	AttrMut
	AttrDeprecated
	AttrNoReturn
	AttrUnsafe
	AttrInline
	AttrKeepAlive
	AttrConsole
	AttrSingleImpl
	AttrHeap
	AttrFlag
	AttrMain
	AttrTest
	AttrVariadic
	AttrMethod
	AttrNoBody
)

func (a Attr) Has(f Attr) bool { return a&f != 0 }

// Field is the resolved metadata for one struct/interface field.
type Field struct {
	Name     source.StringID
	Type     TypeId
	IsMut    bool
	IsPub    bool
	IsGlobal bool
	Attrs    Attr
	Default  string // textual default expression; the parser/AST owns the real node
}

// Param is one parameter of a function descriptor.
type Param struct {
	Name     source.StringID
	Type     TypeId
	IsMut    bool
	IsHidden bool
}

// LangTag records which source dialect a symbol originated from, used by
// the Checker's call-argument compatibility ladder (spec §4.2.4 step 3:
// "C-called functions widen numeric/int/bool/placeholder-pointer
// interchangeably; callees of this language require exact").
type LangTag uint8

const (
	LangNative LangTag = iota
	LangC
	LangJS
)

// ArrayInfo is the payload for KindArray.
type ArrayInfo struct {
	Elem   TypeId
	NrDims uint32
}

// ArrayFixedInfo is the payload for KindArrayFixed.
type ArrayFixedInfo struct {
	Elem     TypeId
	Size     uint64
	SizeExpr string // textual size expression, kept for diagnostics when Size is not yet const-folded
}

// MapInfo is the payload for KindMap.
type MapInfo struct {
	Key   TypeId
	Value TypeId
}

// ChanInfo is the payload for KindChan.
type ChanInfo struct {
	Elem  TypeId
	IsMut bool
}

// ElemInfo is the payload for KindThread and KindPromise.
type ElemInfo struct {
	Return TypeId
}

// MultiReturnInfo is the payload for KindMultiReturn.
type MultiReturnInfo struct {
	Types []TypeId
}

// FuncSig is the payload for KindFunction (an anonymous function *type*, as
// opposed to a registered, named function — see FuncDecl in fn.go).
type FuncSig struct {
	Params   []Param
	Return   TypeId
	IsAnon   bool
	HasDecl  bool
	Variadic bool
}

// StructInfo is the payload for KindStruct.
type StructInfo struct {
	Fields         []Field
	Embeds         []TypeId
	GenericParams  []source.StringID
	ConcreteParams []TypeId
	IsGeneric      bool
	IsUnion        bool // `union` layout: fields share storage
	IsHeap         bool
}

// InterfaceInfo is the payload for KindInterface.
type InterfaceInfo struct {
	Fields        []Field
	Methods       []FuncId
	Embeds        []TypeId
	Implementing  []TypeId // types known to satisfy this interface
	GenericParams []source.StringID
	SingleImpl    bool
	// embedsExpanded guards the embedding-expansion memo (spec §4.1.4/§9). A
	// pointer so InterfaceInfo stays copyable (the public InterfaceInfo
	// accessor below returns copies) without duplicating the Once's state.
	embedsExpanded *sync.Once
}

// SumTypeInfo is the payload for KindSumType.
type SumTypeInfo struct {
	Variants       []TypeId
	GenericParams  []source.StringID
	commonFields   []Field // lazily computed, memoized on first FindField
	commonComputed bool
}

// AggregateInfo is the payload for KindAggregate: the synthetic union
// produced when a match/is arm smartcasts to more than one sum-type variant
// at once. It exposes only the intersection of its members' methods/fields.
type AggregateInfo struct {
	Members []TypeId
}

// EnumVariant is one named value of an enum.
type EnumVariant struct {
	Name  source.StringID
	Value int64
}

// EnumInfo is the payload for KindEnum.
type EnumInfo struct {
	Variants []EnumVariant
	IsFlag   bool // `[flag]` enum: variants are bit positions, combined with `|`
}

// GenericInstInfo is the payload for KindGenericInst: a parsed-but-not-yet-
// materialized reference like `Foo<int>`, rewritten into a real struct/
// interface/sum-type instantiation by GenericInstsToConcrete.
type GenericInstInfo struct {
	Parent   TypeId
	Concrete []TypeId
}

// Symbol is the resolved metadata for one arena slot.
type Symbol struct {
	Name     source.StringID
	Mangled  source.StringID
	Module   source.StringID
	Lang     LangTag
	Kind     Kind
	Parent   TypeId // alias target, or 0
	Methods  []FuncId
	Payload  uint32 // index into the kind-specific side table
	Width    Width
	IsPublic bool
}

// InvalidSymbol is returned by FindSymAndIdx when a name is not registered.
var InvalidSymbol = Symbol{Kind: KindInvalid}

// Width captures the bit-precision of an integer/float primitive. WidthAny
// spells the default "int"/"float" width used when none is specified.
type Width uint8

const (
	WidthAny Width = 0
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
)
