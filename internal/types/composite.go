package types

// internComposite creates a brand-new symbol without consulting byName first —
// composite constructors key on the canonical *name string*, computed after
// the payload exists, rather than on the pre-registration Symbol value
// RegisterSym expects. They therefore intern directly.
func (t *Table) internComposite(kind Kind, payload uint32, compute func(id TypeId) string) TypeId {
	id := t.registerRaw(Symbol{Kind: kind, Payload: payload})
	name := compute(id)
	nameID := t.Strings.Intern(name)
	t.symbols[id.Index()].Name = nameID
	t.symbols[id.Index()].Mangled = t.Strings.Intern(mangle(name))
	if existingIdx, ok := t.byName[nameID]; ok && existingIdx != id.Index() {
		// Another composite with the identical canonical name already
		// exists (e.g. both reached via different construction paths);
		// drop the one we just built and return the earlier id, matching
		// RegisterSym's silent-dedup policy.
		t.symbols = t.symbols[:id.Index()]
		return NewTypeId(existingIdx)
	}
	t.byName[nameID] = id.Index()
	return id
}

// FindOrRegisterArray returns (creating if necessary) the dynamic-array
// type `[]elem`.
func (t *Table) FindOrRegisterArray(elem TypeId) TypeId {
	return t.findOrRegisterArrayDims(elem, 1)
}

// ArrayWithDims returns (creating if necessary) a nested dynamic array of
// the given dimension count, e.g. dims=2 => `[][]elem`.
func (t *Table) ArrayWithDims(elem TypeId, dims uint32) TypeId {
	return t.findOrRegisterArrayDims(elem, dims)
}

func (t *Table) findOrRegisterArrayDims(elem TypeId, dims uint32) TypeId {
	if dims <= 1 {
		name := "[]" + t.Name(elem)
		if id, ok := t.lookupCanonical(name); ok {
			return id
		}
		slot := t.appendArray(ArrayInfo{Elem: elem, NrDims: 1})
		return t.internComposite(KindArray, slot, func(TypeId) string { return name })
	}
	inner := t.findOrRegisterArrayDims(elem, dims-1)
	name := "[]" + t.Name(inner)
	if id, ok := t.lookupCanonical(name); ok {
		return id
	}
	slot := t.appendArray(ArrayInfo{Elem: inner, NrDims: dims})
	return t.internComposite(KindArray, slot, func(TypeId) string { return name })
}

// ArrayFixed returns (creating if necessary) the fixed-size array type
// `[size]elem`.
func (t *Table) ArrayFixed(elem TypeId, size uint64, sizeExpr string) TypeId {
	name := "[" + itoa(size) + "]" + t.Name(elem)
	if id, ok := t.lookupCanonical(name); ok {
		return id
	}
	slot := t.appendArrayFixed(ArrayFixedInfo{Elem: elem, Size: size, SizeExpr: sizeExpr})
	return t.internComposite(KindArrayFixed, slot, func(TypeId) string { return name })
}

func itoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// Chan returns (creating if necessary) the channel type `chan [mut] elem`.
func (t *Table) Chan(elem TypeId, isMut bool) TypeId {
	name := "chan "
	if isMut {
		name += "mut "
	}
	name += t.Name(elem)
	if id, ok := t.lookupCanonical(name); ok {
		return id
	}
	slot := t.appendChan(ChanInfo{Elem: elem, IsMut: isMut})
	return t.internComposite(KindChan, slot, func(TypeId) string { return name })
}

// Map returns (creating if necessary) the map type `map[key]value`.
func (t *Table) Map(key, value TypeId) TypeId {
	name := "map[" + t.Name(key) + "]" + t.Name(value)
	if id, ok := t.lookupCanonical(name); ok {
		return id
	}
	slot := t.appendMap(MapInfo{Key: key, Value: value})
	return t.internComposite(KindMap, slot, func(TypeId) string { return name })
}

// Thread returns (creating if necessary) the `thread ret` type produced by
// a `go`-style spawn expression.
func (t *Table) Thread(ret TypeId) TypeId {
	name := "thread " + t.Name(ret)
	if id, ok := t.lookupCanonical(name); ok {
		return id
	}
	slot := t.appendElem(ElemInfo{Return: ret})
	return t.internComposite(KindThread, slot, func(TypeId) string { return name })
}

// Promise returns (creating if necessary) the `promise ret` type produced
// by an async call.
func (t *Table) Promise(ret TypeId) TypeId {
	name := "promise " + t.Name(ret)
	if id, ok := t.lookupCanonical(name); ok {
		return id
	}
	slot := t.appendElem(ElemInfo{Return: ret})
	return t.internComposite(KindPromise, slot, func(TypeId) string { return name })
}

// MultiReturn returns (creating if necessary) the tuple type `(A, B, ...)`
// used for multi-value returns.
func (t *Table) MultiReturn(elems []TypeId) TypeId {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = t.Name(e)
	}
	name := "(" + joinComma(parts) + ")"
	if id, ok := t.lookupCanonical(name); ok {
		return id
	}
	slot := t.appendMultiReturn(MultiReturnInfo{Types: elems})
	return t.internComposite(KindMultiReturn, slot, func(TypeId) string { return name })
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

// FnType returns (creating if necessary) an anonymous function type
// `fn (params...) ret`.
func (t *Table) FnType(sig FuncSig) TypeId {
	parts := make([]string, len(sig.Params))
	for i, p := range sig.Params {
		parts[i] = t.Name(p.Type)
	}
	name := "fn (" + joinComma(parts) + ")"
	if sig.Return.IsValid() {
		name += " " + t.Name(sig.Return)
	}
	if id, ok := t.lookupCanonical(name); ok {
		return id
	}
	slot := t.appendFuncSig(sig)
	return t.internComposite(KindFunction, slot, func(TypeId) string { return name })
}

func (t *Table) lookupCanonical(name string) (TypeId, bool) {
	id := t.Strings.Intern(name)
	if idx, ok := t.byName[id]; ok {
		return NewTypeId(idx), true
	}
	return NoType, false
}
