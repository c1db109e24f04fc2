// Package decl holds the declaration records produced by the scanner and
// finalized by the attachment resolver.
package decl

import (
	"cxxdoc/internal/source"
)

// Kind is the declaration category of a record.
type Kind uint8

const (
	KindClass Kind = iota
	KindStruct
	KindUnion
	KindEnum
	KindEnumerator
	KindFunction
	KindVariable
	KindTypedef
	KindField
	KindBitfield
)

var kindNames = [...]string{
	KindClass:      "class",
	KindStruct:     "struct",
	KindUnion:      "union",
	KindEnum:       "enum",
	KindEnumerator: "enumerator",
	KindFunction:   "function",
	KindVariable:   "variable",
	KindTypedef:    "typedef",
	KindField:      "field",
	KindBitfield:   "bitfield",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(?)"
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindClass, KindStruct, KindUnion, KindEnum, KindEnumerator,
		KindFunction, KindVariable, KindTypedef, KindField, KindBitfield,
	}
}

// ParseKind maps the String form back to a Kind.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// IsAggregate reports whether records of this kind own a body context.
func (k Kind) IsAggregate() bool {
	return k <= KindEnum
}

// Visibility is the access level of a record in its enclosing context.
type Visibility uint8

const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "visibility(?)"
	}
}

// NoRecord marks the absence of a record index.
const NoRecord = -1

// Record describes one declared name. Token indices point into the token
// slice the scanner consumed.
type Record struct {
	Kind       Kind
	Name       string
	Visibility Visibility
	// Enclosing is the index of the containing aggregate record or NoRecord.
	Enclosing int
	// Span covers the name token; for anonymous aggregates it covers the keyword.
	Span source.Span

	// NameTok is the name token (the keyword for anonymous aggregates).
	NameTok int
	// OwnTok is the declarator's own position: the name for the first
	// declarator, the first token after the separating comma otherwise.
	OwnTok int
	// LeadTok is the start of the statement, only for DeclaratorIndex == 0.
	LeadTok int

	DeclaratorIndex int
	Qualified       bool
	Documented      bool
	// DocTok is the comment token that documents the record, or NoRecord.
	DocTok int
}

// Anonymous reports whether the record has no name.
func (r Record) Anonymous() bool { return r.Name == "" }
