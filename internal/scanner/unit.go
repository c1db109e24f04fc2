package scanner

import (
	"strings"

	"cxxdoc/internal/token"
)

// unit is one element of a statement: a single token or a collapsed
// bracketed group. first and last are token indices.
type unit struct {
	kind  token.Kind // для групп: открывающая скобка
	first int
	last  int
	group bool
	// opaque marks operator-like type words merged with their argument
	// list (decltype(...), sizeof(...)); they are never names.
	opaque bool
}

func (u unit) is(k token.Kind) bool { return !u.group && u.kind == k }

func (u unit) isParen() bool { return u.group && u.kind == token.LParen }

func (u unit) isBracket() bool { return u.group && u.kind == token.LBracket }

func (u unit) isAngle() bool { return u.group && u.kind == token.Lt }

func (u unit) isBrace() bool { return u.group && u.kind == token.LBrace }

// isNameIdent reports whether the unit can be a declared name.
func (u unit) isNameIdent() bool { return u.is(token.Ident) && !u.opaque }

func (s *Scanner) textOf(u unit) string {
	if !u.group && !u.opaque {
		return s.toks[u.first].Text
	}
	var b strings.Builder
	for i := u.first; i <= u.last; i++ {
		if !s.toks[i].IsTrivia() {
			b.WriteString(s.toks[i].Text)
		}
	}
	return b.String()
}

// inner returns the significant token indices strictly inside a group.
func (s *Scanner) inner(u unit) []int {
	var out []int
	for i := u.first + 1; i < u.last; i++ {
		if !s.toks[i].IsTrivia() {
			out = append(out, i)
		}
	}
	return out
}

// attributeWords introduce vendor attributes that are dropped with their argument list.
var attributeWords = map[string]bool{
	"__attribute__": true,
	"__attribute":   true,
	"__declspec":    true,
	"alignas":       true,
	"_Alignas":      true,
}

// opaqueWords are merged with their parenthesized argument into a single type-ish unit.
var opaqueWords = map[string]bool{
	"decltype":   true,
	"typeof":     true,
	"__typeof__": true,
	"__typeof":   true,
	"sizeof":     true,
	"alignof":    true,
	"noexcept":   true,
	"throw":      true,
	"_Atomic":    true,
}

// specifierWords may precede a declaration without being its type.
var specifierWords = map[string]bool{
	"static":       true,
	"inline":       true,
	"constexpr":    true,
	"consteval":    true,
	"constinit":    true,
	"thread_local": true,
	"mutable":      true,
	"register":     true,
	"const":        true,
	"volatile":     true,
}

// trailingWords may follow a function's parameter list on its own line.
var trailingWords = map[string]bool{
	"const":    true,
	"volatile": true,
	"override": true,
	"final":    true,
	"noexcept": true,
	"throw":    true,
	"try":      true,
	"requires": true,
}
