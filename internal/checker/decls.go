package checker

import (
	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/types"
)

// checkEnumDecl validates that every explicit variant discriminant is an
// integer constant expression.
func (c *checker) checkEnumDecl(sid ast.StmtID, fid ast.FileID) types.TypeId {
	data := c.mod.Stmts.EnumDecl(sid)
	span := c.mod.Stmts.Get(sid).Span
	for i := range data.Variants {
		v := &data.Variants[i]
		if !v.Value.IsValid() {
			continue
		}
		vt := c.typeOfExpr(v.Value, fid)
		if vt == types.NoType {
			continue
		}
		switch c.table.FinalSym(vt).Kind {
		case types.KindInteger, types.KindUint, types.KindIntLiteral:
		default:
			name, _ := c.lookupString(v.Name)
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span,
				"enum variant discriminant \""+name+"\" must be an integer constant")
		}
	}
	return c.builtins.Void
}

// checkTypeDecl validates a `type Name = ...` declaration. An alias whose
// chain never reaches a concrete symbol (spec §8: "type cannot reference
// itself") is diagnosed once here rather than left to loop at every
// resolution site.
func (c *checker) checkTypeDecl(sid ast.StmtID, fid ast.FileID) types.TypeId {
	data := c.mod.Stmts.TypeDecl(sid)
	span := c.mod.Stmts.Get(sid).Span
	if data.Kind != ast.TypeDeclAlias {
		return c.builtins.Void
	}
	_, idx := c.table.FindSymAndIdx(data.Name)
	if idx == -1 {
		name, _ := c.lookupString(data.Name)
		c.reportAt(diag.SevError, diag.TableUnknownType, span, "unknown type "+name)
		return c.builtins.Void
	}
	id := types.NewTypeId(uint32(idx))
	if c.table.IsAliasCycle(id) {
		name, _ := c.lookupString(data.Name)
		c.reportAt(diag.SevError, diag.TableAliasCycle, span, "type "+name+" cannot reference itself")
	}
	return c.builtins.Void
}

// checkStructDecl enforces the configured embed-chain depth limit (spec §9).
func (c *checker) checkStructDecl(sid ast.StmtID, fid ast.FileID) types.TypeId {
	data := c.mod.Stmts.StructDecl(sid)
	span := c.mod.Stmts.Get(sid).Span
	for _, embed := range data.Embeds {
		if c.embedDepth(embed, 0) > c.embedDepthLimit() {
			c.reportAt(diag.SevError, diag.LimitEmbedDepth, span,
				"struct embed chain exceeds the configured depth limit")
			break
		}
	}
	return c.builtins.Void
}

func (c *checker) embedDepthLimit() int {
	if c.cfg.InterfaceEmbedDepthLimit <= 0 {
		return 32
	}
	return c.cfg.InterfaceEmbedDepthLimit
}

// embedDepth walks typ's embed chain (struct or interface), returning the
// deepest level reached, capped just past the limit to bound recursion.
func (c *checker) embedDepth(typ types.TypeId, depth int) int {
	if depth > c.embedDepthLimit()+1 {
		return depth
	}
	var embeds []types.TypeId
	switch c.table.FinalSym(typ).Kind {
	case types.KindStruct:
		if info, ok := c.table.StructInfo(typ); ok {
			embeds = info.Embeds
		}
	case types.KindInterface:
		if info, ok := c.table.InterfaceInfo(typ); ok {
			embeds = info.Embeds
		}
	default:
		return depth
	}
	max := depth
	for _, e := range embeds {
		if d := c.embedDepth(e, depth+1); d > max {
			max = d
		}
	}
	return max
}
