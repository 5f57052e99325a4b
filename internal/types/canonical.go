package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Name returns the canonical, deterministic spelling of id, used as the
// intern key for composite types and shown to users in diagnostics.
func (t *Table) Name(id TypeId) string {
	sym, ok := t.TrySym(id)
	if !ok {
		return "<invalid>"
	}
	base := t.baseName(id, sym)
	if d := id.PtrDepth(); d > 0 {
		base = strings.Repeat("*", int(d)) + base
	}
	if id.HasFlag(FlagOptional) {
		base = "?" + base
	}
	if id.HasFlag(FlagVariadic) {
		base = "..." + base
	}
	if id.HasFlag(FlagShared) {
		base = "shared " + base
	}
	return base
}

func (t *Table) baseName(id TypeId, sym Symbol) string {
	switch sym.Kind {
	case KindArray:
		info := t.arrayInfo(id)
		if info == nil {
			return "[]?"
		}
		return "[]" + t.Name(info.Elem)
	case KindArrayFixed:
		info := t.arrayFixedInfo(id)
		if info == nil {
			return "[?]?"
		}
		return fmt.Sprintf("[%d]%s", info.Size, t.Name(info.Elem))
	case KindMap:
		info := t.mapInfo(id)
		if info == nil {
			return "map[?]?"
		}
		return fmt.Sprintf("map[%s]%s", t.Name(info.Key), t.Name(info.Value))
	case KindChan:
		info := t.chanInfo(id)
		if info == nil {
			return "chan ?"
		}
		if info.IsMut {
			return "chan mut " + t.Name(info.Elem)
		}
		return "chan " + t.Name(info.Elem)
	case KindThread:
		info := t.elemInfo(id, KindThread)
		if info == nil {
			return "thread ?"
		}
		return "thread " + t.Name(info.Return)
	case KindPromise:
		info := t.elemInfo(id, KindPromise)
		if info == nil {
			return "promise ?"
		}
		return "promise " + t.Name(info.Return)
	case KindMultiReturn:
		info := t.multiReturnInfo(id)
		if info == nil {
			return "()"
		}
		parts := make([]string, len(info.Types))
		for i, e := range info.Types {
			parts[i] = t.Name(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindFunction:
		info := t.funcSigInfo(id)
		if info == nil {
			return "fn ()"
		}
		parts := make([]string, len(info.Params))
		for i, p := range info.Params {
			parts[i] = t.Name(p.Type)
		}
		ret := ""
		if info.Return.IsValid() {
			ret = " " + t.Name(info.Return)
		}
		return "fn (" + strings.Join(parts, ", ") + ")" + ret
	case KindGenericInst:
		info := t.genericInstInfo(id)
		if info == nil {
			return "<generic_inst>"
		}
		parentName, _ := t.Strings.Lookup(t.Sym(info.Parent).Name)
		return genericSpelling(parentName, t.namesOf(info.Concrete))
	case KindStruct, KindInterface, KindSumType:
		name, _ := t.Strings.Lookup(sym.Name)
		args := t.genericParamArgs(id, sym.Kind)
		if len(args) == 0 {
			return name
		}
		return genericSpelling(name, t.namesOf(args))
	default:
		name, _ := t.Strings.Lookup(sym.Name)
		return name
	}
}

func (t *Table) genericParamArgs(id TypeId, kind Kind) []TypeId {
	switch kind {
	case KindStruct:
		if info := t.structInfo(id); info != nil {
			return info.ConcreteParams
		}
	case KindInterface:
		// interfaces don't carry concrete params directly in this table;
		// instantiated interfaces are materialized under their own name by
		// UnwrapGenericType, so nothing to append here for the head symbol.
	case KindSumType:
		// handled the same way as interfaces: materialized copies carry
		// their own distinct Name, not a parametrized head.
	}
	return nil
}

func (t *Table) namesOf(ids []TypeId) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = t.Name(id)
	}
	return out
}

func genericSpelling(name string, args []string) string {
	return name + "<" + strings.Join(args, ", ") + ">"
}

// Mangled returns a C-identifier-safe spelling of id, suitable for a
// back-end's symbol table.
func (t *Table) Mangled(id TypeId) string {
	return mangle(t.Name(id))
}

func mangle(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == '*':
			b.WriteString("_ptr_")
		case r == '.':
			b.WriteString("__")
		case r == '[':
			b.WriteString("_arr_")
		case r == ']':
		case r == '<':
			b.WriteString("_lt_")
		case r == '>':
			b.WriteString("_gt_")
		case r == ',':
			b.WriteString("_c_")
		case r == ' ':
			b.WriteByte('_')
		default:
			b.WriteString("_u" + strconv.Itoa(int(r)) + "_")
		}
	}
	return b.String()
}
