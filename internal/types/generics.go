package types

import "github.com/ripplang/ripplec/internal/source"

// ResolveGenericToConcrete substitutes each name in genericNames with the
// positionally-matched TypeId in concrete, returning a new TypeId (spec
// §4.1.6). It recurses into arrays, fixed arrays, maps, channels, function
// types, multi-returns, and generic struct/interface/sum-type heads. The
// `.generic` flag is preserved when substitution leaves an unbound
// parameter, cleared once every parameter mentioned is eliminated. A
// parameter with no binding resolves to NoType.
func (t *Table) ResolveGenericToConcrete(generic TypeId, genericNames []source.StringID, concrete []TypeId) TypeId {
	bind := func(name source.StringID) (TypeId, bool) {
		for i, n := range genericNames {
			if n == name && i < len(concrete) {
				return concrete[i], true
			}
		}
		return NoType, false
	}
	return t.substitute(generic, bind)
}

func (t *Table) substitute(id TypeId, bind func(source.StringID) (TypeId, bool)) TypeId {
	sym, ok := t.TrySym(id)
	if !ok {
		return NoType
	}
	if bound, ok := bind(sym.Name); ok && sym.Kind != KindStruct && sym.Kind != KindInterface && sym.Kind != KindSumType {
		return t.rewrapModifiers(id, bound)
	}
	switch sym.Kind {
	case KindArray:
		info := t.arrayInfo(id)
		if info == nil {
			return id
		}
		elem := t.substitute(info.Elem, bind)
		if elem == NoType {
			return NoType
		}
		return t.rewrapModifiers(id, t.ArrayWithDims(elem, info.NrDims))
	case KindArrayFixed:
		info := t.arrayFixedInfo(id)
		if info == nil {
			return id
		}
		elem := t.substitute(info.Elem, bind)
		if elem == NoType {
			return NoType
		}
		return t.rewrapModifiers(id, t.ArrayFixed(elem, info.Size, info.SizeExpr))
	case KindMap:
		info := t.mapInfo(id)
		if info == nil {
			return id
		}
		key := t.substitute(info.Key, bind)
		val := t.substitute(info.Value, bind)
		if key == NoType || val == NoType {
			return NoType
		}
		return t.rewrapModifiers(id, t.Map(key, val))
	case KindChan:
		info := t.chanInfo(id)
		if info == nil {
			return id
		}
		elem := t.substitute(info.Elem, bind)
		if elem == NoType {
			return NoType
		}
		return t.rewrapModifiers(id, t.Chan(elem, info.IsMut))
	case KindMultiReturn:
		info := t.multiReturnInfo(id)
		if info == nil {
			return id
		}
		elems := make([]TypeId, len(info.Types))
		for i, e := range info.Types {
			elems[i] = t.substitute(e, bind)
			if elems[i] == NoType {
				return NoType
			}
		}
		return t.rewrapModifiers(id, t.MultiReturn(elems))
	case KindFunction:
		info := t.funcSigInfo(id)
		if info == nil {
			return id
		}
		params := make([]Param, len(info.Params))
		for i, p := range info.Params {
			p.Type = t.substitute(p.Type, bind)
			params[i] = p
		}
		ret := t.substitute(info.Return, bind)
		return t.rewrapModifiers(id, t.FnType(FuncSig{Params: params, Return: ret, IsAnon: info.IsAnon, Variadic: info.Variadic}))
	case KindStruct, KindInterface, KindSumType:
		return t.substituteGenericHead(id, sym, bind)
	default:
		return id
	}
}

func (t *Table) substituteGenericHead(id TypeId, sym Symbol, bind func(source.StringID) (TypeId, bool)) TypeId {
	params := t.headGenericParams(id, sym.Kind)
	if len(params) == 0 {
		return id
	}
	args := make([]TypeId, len(params))
	stillGeneric := false
	for i, p := range params {
		if bound, ok := bind(p); ok {
			args[i] = bound
		} else {
			args[i] = NoType
			stillGeneric = true
		}
	}
	inst := t.UnwrapGenericType(id, params, args)
	if stillGeneric {
		inst = inst.SetFlag(FlagGeneric)
	} else {
		inst = inst.ClearFlag(FlagGeneric)
	}
	return t.rewrapModifiers(id, inst)
}

func (t *Table) headGenericParams(id TypeId, kind Kind) []source.StringID {
	switch kind {
	case KindStruct:
		if info := t.structInfo(id); info != nil {
			return info.GenericParams
		}
	case KindInterface:
		if info := t.interfaceInfo(id); info != nil {
			return info.GenericParams
		}
	case KindSumType:
		if info := t.sumTypeInfo(id); info != nil {
			return info.GenericParams
		}
	}
	return nil
}

// rewrapModifiers reapplies the pointer-depth and flag bits of the original
// handle onto a freshly substituted one, so `?[]T` substitutes to `?[]int`
// rather than losing the optional marker.
func (t *Table) rewrapModifiers(original, fresh TypeId) TypeId {
	fresh = fresh.SetNrMuls(original.PtrDepth())
	if original.HasFlag(FlagOptional) {
		fresh = fresh.SetFlag(FlagOptional)
	}
	if original.HasFlag(FlagVariadic) {
		fresh = fresh.SetFlag(FlagVariadic)
	}
	if original.HasFlag(FlagShared) {
		fresh = fresh.SetFlag(FlagShared)
	}
	return fresh
}

// UnwrapGenericType fully materializes a generic struct/interface/sum-type
// head with the given concrete type arguments: new Symbols are created
// with substituted field types (and, for interfaces, substituted method
// signatures), registered under the canonical `Name<T1, T2, ...>` key so a
// second call with the same arguments returns the same TypeId (spec
// §4.1.6, §8 "Generic substitution... idempotent").
func (t *Table) UnwrapGenericType(head TypeId, names []source.StringID, concrete []TypeId) TypeId {
	sym, ok := t.TrySym(head)
	if !ok {
		return NoType
	}
	bind := func(n source.StringID) (TypeId, bool) {
		for i, want := range names {
			if want == n && i < len(concrete) {
				return concrete[i], true
			}
		}
		return NoType, false
	}
	switch sym.Kind {
	case KindStruct:
		if existing, ok := t.FindStructInstance(sym.Name, concrete); ok {
			return existing
		}
		info := t.structInfo(head)
		if info == nil {
			return NoType
		}
		fields := make([]Field, len(info.Fields))
		for i, f := range info.Fields {
			f.Type = t.substitute(f.Type, bind)
			fields[i] = f
		}
		slot := t.appendStruct(StructInfo{Fields: fields, Embeds: info.Embeds, ConcreteParams: concrete})
		id := t.internComposite(KindStruct, slot, func(TypeId) string {
			headName, _ := t.Strings.Lookup(sym.Name)
			return genericSpelling(headName, t.namesOf(concrete))
		})
		return id
	case KindInterface:
		if existing, ok := t.FindInterfaceInstance(sym.Name, concrete); ok {
			return existing
		}
		info := t.interfaceInfo(head)
		if info == nil {
			return NoType
		}
		fields := make([]Field, len(info.Fields))
		for i, f := range info.Fields {
			f.Type = t.substitute(f.Type, bind)
			fields[i] = f
		}
		methods := make([]FuncId, 0, len(info.Methods))
		for _, m := range info.Methods {
			decl, ok := t.Func(m)
			if !ok {
				continue
			}
			params := make([]Param, len(decl.Params))
			for i, p := range decl.Params {
				p.Type = t.substitute(p.Type, bind)
				params[i] = p
			}
			decl.Params = params
			decl.Return = t.substitute(decl.Return, bind)
			methods = append(methods, t.RegisterFn(decl))
		}
		slot := t.appendInterface(InterfaceInfo{Fields: fields, Methods: methods, Embeds: info.Embeds})
		return t.internComposite(KindInterface, slot, func(TypeId) string {
			headName, _ := t.Strings.Lookup(sym.Name)
			return genericSpelling(headName, t.namesOf(concrete))
		})
	case KindSumType:
		if existing, ok := t.FindSumTypeInstance(sym.Name, concrete); ok {
			return existing
		}
		info := t.sumTypeInfo(head)
		if info == nil {
			return NoType
		}
		variants := make([]TypeId, len(info.Variants))
		for i, v := range info.Variants {
			variants[i] = t.substitute(v, bind)
		}
		slot := t.appendSumType(SumTypeInfo{Variants: variants})
		return t.internComposite(KindSumType, slot, func(TypeId) string {
			headName, _ := t.Strings.Lookup(sym.Name)
			return genericSpelling(headName, t.namesOf(concrete))
		})
	default:
		return head
	}
}

// GenericInstsToConcrete sweeps every KindGenericInst placeholder produced
// by parsing a textual `Foo<int>` reference and rewrites it into a real
// instantiation in place (the symbol's Kind/Payload are overwritten so
// existing TypeIds pointing at the placeholder keep working).
func (t *Table) GenericInstsToConcrete() {
	for idx := uint32(1); int(idx) < len(t.symbols); idx++ {
		sym := t.symbols[idx]
		if sym.Kind != KindGenericInst {
			continue
		}
		info := t.genericInstInfo(NewTypeId(idx))
		if info == nil {
			continue
		}
		parentSym, ok := t.TrySym(info.Parent)
		if !ok {
			continue
		}
		params := t.headGenericParams(info.Parent, parentSym.Kind)
		materialized := t.UnwrapGenericType(info.Parent, params, info.Concrete)
		matSym, ok := t.TrySym(materialized)
		if !ok {
			continue
		}
		t.symbols[idx].Kind = matSym.Kind
		t.symbols[idx].Payload = matSym.Payload
		t.symbols[idx].Methods = append(t.symbols[idx].Methods, matSym.Methods...)
	}
}
