package checker

import (
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/source"
	"github.com/ripplang/ripplec/internal/types"
)

// inferFnGenericTypes implements infer_fn_generic_types (spec §4.1.6): for
// each generic parameter name, scan the declared parameters for positions
// mentioning it, inspect the call argument's type at that position, and
// infer a binding. Conflicting numeric bindings auto-promote; conflicting
// non-numeric bindings are an ambiguous-inference error; an unmentioned
// parameter is a hard "unbound" error.
func (c *checker) inferFnGenericTypes(decl types.FuncDecl, argTypes []types.TypeId, span source.Span) []types.TypeId {
	bound := make(map[source.StringID]types.TypeId, len(decl.GenericNames))

	for i, p := range decl.Params {
		if i >= len(argTypes) {
			break
		}
		c.unifyGeneric(p.Type, argTypes[i], decl.GenericNames, bound, span)
	}

	out := make([]types.TypeId, len(decl.GenericNames))
	for i, name := range decl.GenericNames {
		t, ok := bound[name]
		if !ok {
			n, _ := c.lookupString(name)
			c.reportAt(diag.SevError, diag.GenericUnboundParam, span,
				"generic parameter \""+n+"\" could not be inferred")
			continue
		}
		out[i] = t
	}
	return out
}

func isGenericName(name source.StringID, names []source.StringID) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// unifyGeneric walks a declared parameter type and the argument's actual
// type in lockstep, binding any bare generic-name positions it finds.
func (c *checker) unifyGeneric(paramTyp, argTyp types.TypeId, names []source.StringID, bound map[source.StringID]types.TypeId, span source.Span) {
	paramSym := c.table.FinalSym(paramTyp)

	if isGenericName(paramSym.Name, names) {
		c.bindGeneric(paramSym.Name, argTyp, bound, span)
		return
	}

	switch paramSym.Kind {
	case types.KindArray, types.KindArrayFixed:
		pInfo, pOk := c.table.ArrayInfo(paramTyp)
		if !pOk {
			if fi, ok := c.table.ArrayFixedInfo(paramTyp); ok {
				pInfo = types.ArrayInfo{Elem: fi.Elem}
				pOk = true
			}
		}
		argSym := c.table.FinalSym(argTyp)
		var aElem types.TypeId
		switch argSym.Kind {
		case types.KindArray:
			if ai, ok := c.table.ArrayInfo(argTyp); ok {
				aElem = ai.Elem
			}
		case types.KindArrayFixed:
			if ai, ok := c.table.ArrayFixedInfo(argTyp); ok {
				aElem = ai.Elem
			}
		}
		if pOk && aElem.IsValid() {
			c.unifyGeneric(pInfo.Elem, aElem, names, bound, span)
		}
	case types.KindMap:
		pInfo, pOk := c.table.MapInfo(paramTyp)
		aInfo, aOk := c.table.MapInfo(argTyp)
		if pOk && aOk {
			c.unifyGeneric(pInfo.Key, aInfo.Key, names, bound, span)
			c.unifyGeneric(pInfo.Value, aInfo.Value, names, bound, span)
		}
	case types.KindStruct, types.KindInterface, types.KindSumType:
		pConcrete := c.headConcreteParams(paramTyp, paramSym)
		aSym := c.table.FinalSym(argTyp)
		aConcrete := c.headConcreteParams(argTyp, aSym)
		for i := 0; i < len(pConcrete) && i < len(aConcrete); i++ {
			c.unifyGeneric(pConcrete[i], aConcrete[i], names, bound, span)
		}
	}
}

// headConcreteParams returns id's generic instantiation arguments, when it
// is a struct. Interfaces and sum types carry GenericParams names but no
// per-instantiation ConcreteParams slot, so they contribute no positional
// bindings here.
func (c *checker) headConcreteParams(id types.TypeId, sym types.Symbol) []types.TypeId {
	if sym.Kind == types.KindStruct {
		if info, ok := c.table.StructInfo(id); ok {
			return info.ConcreteParams
		}
	}
	return nil
}

func (c *checker) bindGeneric(name source.StringID, argTyp types.TypeId, bound map[source.StringID]types.TypeId, span source.Span) {
	existing, ok := bound[name]
	if !ok {
		bound[name] = argTyp
		return
	}
	if existing == argTyp {
		return
	}
	exSym, argSym := c.table.FinalSym(existing), c.table.FinalSym(argTyp)
	numeric := func(k types.Kind) bool {
		return k == types.KindInteger || k == types.KindUint || k == types.KindFloat ||
			k == types.KindIntLiteral || k == types.KindFloatLiteral
	}
	if numeric(exSym.Kind) && numeric(argSym.Kind) {
		if exSym.Width >= argSym.Width {
			return
		}
		bound[name] = argTyp
		return
	}
	n, _ := c.lookupString(name)
	c.reportAt(diag.SevError, diag.GenericAmbiguousInference, span,
		"generic parameter \""+n+"\" inferred inconsistently across arguments")
}
