package types

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/ripplang/ripplec/internal/source"
)

// PanicHandler is invoked when the table observes an invariant violation
// (spec §4.1.8 / §7: "Type-table invariant violations invoke the panic
// handler, default: abort with diagnostic"). Tooling (e.g. an LSP server)
// can install a non-aborting handler; the default panics.
type PanicHandler func(msg string)

func defaultPanicHandler(msg string) {
	panic("types: " + msg)
}

// Builtins caches the TypeIds of the primitive types every program needs,
// so the Checker never has to re-intern "int" or "string" by name.
type Builtins struct {
	Void    TypeId
	Bool    TypeId
	Rune    TypeId
	Char    TypeId
	String  TypeId
	VoidPtr TypeId
	Int     TypeId
	I8      TypeId
	I16     TypeId
	I32     TypeId
	I64     TypeId
	Uint    TypeId
	U8      TypeId
	U16     TypeId
	U32     TypeId
	U64     TypeId
	Float   TypeId
	F32     TypeId
	F64     TypeId
	Error   TypeId // the built-in `error` interface

	// IntLiteral/FloatLiteral are the untyped-literal placeholders every
	// integer/float literal expression starts life as, before promote_num
	// settles them onto a concrete width (spec §4.2.2 infix rule).
	IntLiteral   TypeId
	FloatLiteral TypeId
}

// Table is the process-wide registry of all types, functions, interfaces,
// and module metadata (spec §2, component 1). It owns type identity and
// construction; it performs no diagnostics of its own.
type Table struct {
	Strings *source.Interner

	symbols []Symbol
	byName  map[source.StringID]uint32 // canonical name -> arena index
	// mainUnqualified additionally keys names declared in module "main" by
	// their unqualified spelling, matching spec §4.1.1.
	mainUnqualified map[source.StringID]uint32

	arrays       []ArrayInfo
	arraysFixed  []ArrayFixedInfo
	maps         []MapInfo
	chans        []ChanInfo
	elems        []ElemInfo // threads & promises share this payload shape
	multiReturns []MultiReturnInfo
	funcSigs     []FuncSig
	structs      []StructInfo
	interfaces   []InterfaceInfo
	sumTypes     []SumTypeInfo
	aggregates   []AggregateInfo
	enums        []EnumInfo
	genericInsts []GenericInstInfo

	funcs      []FuncDecl
	funcByName map[source.StringID]FuncId

	aggregateCache map[string]TypeId // sorted variant tuple -> aggregate id

	builtins Builtins
	panicFn  PanicHandler
}

// NewTable constructs a Table seeded with built-in primitives.
func NewTable(strings *source.Interner) *Table {
	if strings == nil {
		strings = source.NewInterner()
	}
	t := &Table{
		Strings:         strings,
		byName:          make(map[source.StringID]uint32, 64),
		mainUnqualified: make(map[source.StringID]uint32, 16),
		aggregateCache:  make(map[string]TypeId, 8),
		panicFn:         defaultPanicHandler,
	}
	// Index 0 of every side table is reserved so Payload==0 reads as "none".
	t.symbols = append(t.symbols, Symbol{Kind: KindInvalid})
	t.arrays = append(t.arrays, ArrayInfo{})
	t.arraysFixed = append(t.arraysFixed, ArrayFixedInfo{})
	t.maps = append(t.maps, MapInfo{})
	t.chans = append(t.chans, ChanInfo{})
	t.elems = append(t.elems, ElemInfo{})
	t.multiReturns = append(t.multiReturns, MultiReturnInfo{})
	t.funcSigs = append(t.funcSigs, FuncSig{})
	t.structs = append(t.structs, StructInfo{})
	t.interfaces = append(t.interfaces, InterfaceInfo{})
	t.sumTypes = append(t.sumTypes, SumTypeInfo{})
	t.aggregates = append(t.aggregates, AggregateInfo{})
	t.enums = append(t.enums, EnumInfo{})
	t.genericInsts = append(t.genericInsts, GenericInstInfo{})
	t.funcs = append(t.funcs, FuncDecl{})
	t.funcByName = make(map[source.StringID]FuncId, 64)

	t.seedBuiltins()
	return t
}

// SetPanicHandler overrides the invariant-violation handler.
func (t *Table) SetPanicHandler(fn PanicHandler) {
	if fn == nil {
		fn = defaultPanicHandler
	}
	t.panicFn = fn
}

func (t *Table) fail(format string, args ...any) {
	t.panicFn(fmt.Sprintf(format, args...))
}

func (t *Table) seedBuiltins() {
	intern := func(name string, sym Symbol) TypeId {
		sym.Name = t.Strings.Intern(name)
		sym.Mangled = sym.Name
		return t.registerRaw(sym)
	}
	b := &t.builtins
	b.Void = intern("void", Symbol{Kind: KindVoid})
	b.Bool = intern("bool", Symbol{Kind: KindBool})
	b.Rune = intern("rune", Symbol{Kind: KindRune})
	b.Char = intern("char", Symbol{Kind: KindChar})
	b.String = intern("string", Symbol{Kind: KindString})
	b.VoidPtr = intern("voidptr", Symbol{Kind: KindVoidPtr})
	b.Int = intern("int", Symbol{Kind: KindInteger, Width: WidthAny})
	b.I8 = intern("i8", Symbol{Kind: KindInteger, Width: Width8})
	b.I16 = intern("i16", Symbol{Kind: KindInteger, Width: Width16})
	b.I32 = intern("i32", Symbol{Kind: KindInteger, Width: Width32})
	b.I64 = intern("i64", Symbol{Kind: KindInteger, Width: Width64})
	b.Uint = intern("uint", Symbol{Kind: KindUint, Width: WidthAny})
	b.U8 = intern("u8", Symbol{Kind: KindUint, Width: Width8})
	b.U16 = intern("u16", Symbol{Kind: KindUint, Width: Width16})
	b.U32 = intern("u32", Symbol{Kind: KindUint, Width: Width32})
	b.U64 = intern("u64", Symbol{Kind: KindUint, Width: Width64})
	b.Float = intern("float", Symbol{Kind: KindFloat, Width: WidthAny})
	b.F32 = intern("f32", Symbol{Kind: KindFloat, Width: Width32})
	b.F64 = intern("f64", Symbol{Kind: KindFloat, Width: Width64})

	b.IntLiteral = intern("{int literal}", Symbol{Kind: KindIntLiteral})
	b.FloatLiteral = intern("{float literal}", Symbol{Kind: KindFloatLiteral})

	errName := t.Strings.Intern("error")
	slot := t.appendInterface(InterfaceInfo{})
	b.Error = t.registerRaw(Symbol{Name: errName, Mangled: errName, Kind: KindInterface, Payload: slot})
}

// Builtins returns the cached primitive TypeIds.
func (t *Table) Builtins() Builtins { return t.builtins }

func (t *Table) registerRaw(sym Symbol) TypeId {
	idx, err := safecast.Conv[uint32](len(t.symbols))
	if err != nil {
		t.fail("symbol arena overflow: %v", err)
	}
	t.symbols = append(t.symbols, sym)
	t.byName[sym.Name] = idx
	return NewTypeId(idx)
}

// RegisterSym interns a symbol by its canonical name (spec §4.1.1).
//
//   - If the name already maps to a placeholder, the placeholder is
//     overwritten in place (preserving any methods accumulated on it) and
//     its index is returned.
//   - If the name maps to a reserved builtin slot being redefined by a
//     user declaration of the same name, the payload is overwritten while
//     the existing Kind is preserved.
//   - Otherwise the earlier registration wins: RegisterSym is a silent
//     dedup and returns the existing index.
func (t *Table) RegisterSym(sym Symbol) TypeId {
	if idx, ok := t.byName[sym.Name]; ok {
		existing := &t.symbols[idx]
		switch {
		case existing.Kind == KindPlaceholder:
			methods := existing.Methods
			*existing = sym
			existing.Methods = append(methods, sym.Methods...)
			t.indexModuleMain(sym)
			return NewTypeId(idx)
		case t.isReservedBuiltinRedefinition(idx, sym):
			kind := existing.Kind
			payload := sym.Payload
			*existing = sym
			existing.Kind = kind
			existing.Payload = payload
			t.indexModuleMain(sym)
			return NewTypeId(idx)
		default:
			return NewTypeId(idx)
		}
	}
	id := t.registerRaw(sym)
	t.indexModuleMain(sym)
	return id
}

// reservedBuiltinWindow bounds how many of the earliest arena slots are
// considered "builtin" for the purposes of user-mode redefinition (spec
// §4.1.1: "a small reserved-index window").
const reservedBuiltinWindow = 32

func (t *Table) isReservedBuiltinRedefinition(idx uint32, incoming Symbol) bool {
	if idx == 0 || idx >= reservedBuiltinWindow {
		return false
	}
	switch t.symbols[idx].Kind {
	case KindString, KindArray, KindMap:
		return true
	default:
		return incoming.Name == t.builtinErrorName() && t.symbols[idx].Kind == KindInterface
	}
}

func (t *Table) builtinErrorName() source.StringID {
	if t.Strings == nil {
		return source.NoStringID
	}
	return t.Strings.Intern("error")
}

func (t *Table) indexModuleMain(sym Symbol) {
	mainMod := t.Strings.Intern("main")
	if sym.Module != mainMod || t.Strings == nil {
		return
	}
	name, ok := t.Strings.Lookup(sym.Name)
	if !ok {
		return
	}
	unqualified := unqualifiedName(name)
	if unqualified == name {
		return
	}
	id := t.Strings.Intern(unqualified)
	if idx, ok := t.byName[sym.Name]; ok {
		t.mainUnqualified[id] = idx
	}
}

func unqualifiedName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}

// FindSymAndIdx looks up a registered symbol by canonical name. It returns
// InvalidSymbol and idx=-1 when the name has never been registered.
func (t *Table) FindSymAndIdx(name source.StringID) (Symbol, int) {
	if idx, ok := t.byName[name]; ok {
		return t.symbols[idx], int(idx)
	}
	if idx, ok := t.mainUnqualified[name]; ok {
		return t.symbols[idx], int(idx)
	}
	return InvalidSymbol, -1
}

// Sym returns the symbol a TypeId resolves to (spec §4.1.3 `sym`).
func (t *Table) Sym(id TypeId) Symbol {
	idx := id.Index()
	if idx == 0 || int(idx) >= len(t.symbols) {
		t.fail("sym(%d): invalid TypeId", idx)
		return InvalidSymbol
	}
	return t.symbols[idx]
}

// TrySym is the non-panicking variant of Sym.
func (t *Table) TrySym(id TypeId) (Symbol, bool) {
	idx := id.Index()
	if idx == 0 || int(idx) >= len(t.symbols) {
		return InvalidSymbol, false
	}
	return t.symbols[idx], true
}

// SymbolEntry pairs a registered TypeId with its Symbol, returned by
// AllSymbols for read-only enumeration.
type SymbolEntry struct {
	ID  TypeId
	Sym Symbol
}

// AllSymbols returns every registered (TypeId, Symbol) pair, skipping the
// reserved invalid slot at index 0. Used by internal/snapshot to walk the
// table for a read-only export without exposing the arena itself.
func (t *Table) AllSymbols() []SymbolEntry {
	out := make([]SymbolEntry, 0, len(t.symbols)-1)
	for i := 1; i < len(t.symbols); i++ {
		out = append(out, SymbolEntry{ID: NewTypeId(uint32(i)), Sym: t.symbols[i]})
	}
	return out
}

// FuncEntry pairs a registered FuncId with its FuncDecl, returned by
// AllFuncs for read-only enumeration.
type FuncEntry struct {
	ID FuncId
	Fn FuncDecl
}

// AllFuncs returns every registered (FuncId, FuncDecl) pair, skipping the
// reserved invalid slot at index 0.
func (t *Table) AllFuncs() []FuncEntry {
	out := make([]FuncEntry, 0, len(t.funcs)-1)
	for i := 1; i < len(t.funcs); i++ {
		out = append(out, FuncEntry{ID: FuncId(i), Fn: t.funcs[i]})
	}
	return out
}

// AddPlaceholderType registers a forward declaration for a name referenced
// before its real declaration is seen (spec §4.1.2). The module is inferred
// from the dotted prefix of name, matching RegisterSym's module keying.
func (t *Table) AddPlaceholderType(name string, lang LangTag) TypeId {
	id := t.Strings.Intern(name)
	mod := moduleOf(name)
	return t.RegisterSym(Symbol{
		Name:   id,
		Mangled: id,
		Module: t.Strings.Intern(mod),
		Kind:   KindPlaceholder,
		Lang:   lang,
	})
}

func moduleOf(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			return name[:i]
		}
	}
	return ""
}

// mutateMethods appends a method to whatever symbol idx currently holds,
// used while a placeholder accumulates methods ahead of its real
// declaration (spec §4.1.1 "preserving accumulated methods").
func (t *Table) mutateMethods(idx uint32, fn FuncId) {
	t.symbols[idx].Methods = append(t.symbols[idx].Methods, fn)
}
