package checker

import (
	"strings"

	"github.com/ripplang/ripplec/internal/ast"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/types"
)

// validFormatSpecs maps a format-specifier letter to the operand Kinds it
// accepts. An empty spec ("") always means "use the type's default format".
var validFormatSpecs = map[byte][]types.Kind{
	'x': {types.KindInteger, types.KindUint},
	'X': {types.KindInteger, types.KindUint},
	'o': {types.KindInteger, types.KindUint},
	'b': {types.KindInteger, types.KindUint},
	'f': {types.KindFloat, types.KindFloatLiteral},
	'e': {types.KindFloat, types.KindFloatLiteral},
	'g': {types.KindFloat, types.KindFloatLiteral},
	's': {types.KindString},
	'q': {types.KindString},
	'c': {types.KindChar, types.KindRune},
}

// typeStringInter implements spec §4.2.2's StringInterLiteral rule: each
// interpolated segment's format specifier is validated against its
// operand's type, and recursive `str()` calls inside the literal are
// rejected. A segment with no spec is accepted as is: its spec stays empty
// and no default letter is filled in.
func (c *checker) typeStringInter(e ast.ExprID, fid ast.FileID) types.TypeId {
	data := c.mod.Exprs.StringInter(e)
	span := c.mod.Exprs.Get(e).Span

	for i := range data.Segments {
		seg := &data.Segments[i]
		if seg.Expr == ast.NoExprID {
			continue
		}
		operandTyp := c.typeOfExpr(seg.Expr, fid)
		c.checkNoRecursiveStr(seg.Expr)

		specStr, _ := c.lookupString(seg.Spec)
		if specStr == "" {
			continue
		}
		letter := specStr[len(specStr)-1]
		accepted, known := validFormatSpecs[letter]
		if !known {
			c.reportAt(diag.SevWarning, diag.CheckTypeMismatch, span,
				"unrecognized format specifier letter '"+string(letter)+"'")
			continue
		}
		sym := c.table.FinalSym(operandTyp)
		ok := false
		for _, k := range accepted {
			if sym.Kind == k {
				ok = true
				break
			}
		}
		if !ok {
			c.reportAt(diag.SevError, diag.CheckTypeMismatch, span,
				"format specifier '"+string(letter)+"' does not apply to this operand's type")
		}
	}
	return c.builtins.String
}

// checkNoRecursiveStr rejects a nested call to `str()` inside a string
// interpolation segment (spec §4.2.2: "forbids recursive str() calls").
func (c *checker) checkNoRecursiveStr(expr ast.ExprID) {
	node := c.mod.Exprs.Get(expr)
	if node.Kind != ast.ExprCall {
		return
	}
	data := c.mod.Exprs.Call(expr)
	callee := c.mod.Exprs.Get(data.Callee)
	if callee.Kind != ast.ExprIdent {
		return
	}
	name, _ := c.lookupString(c.mod.Exprs.Ident(data.Callee).Name)
	if strings.EqualFold(name, "str") {
		c.reportAt(diag.SevError, diag.CheckTypeMismatch, node.Span,
			"recursive `str()` call inside a string interpolation literal")
	}
}
