package scanner

import (
	"cxxdoc/internal/decl"
	"cxxdoc/internal/token"
)

type ctxKind uint8

const (
	ctxGlobal ctxKind = iota
	ctxNamespace
	ctxLinkage
	ctxClass
	ctxStruct
	ctxUnion
	ctxEnum
)

func (k ctxKind) String() string {
	switch k {
	case ctxGlobal:
		return "global"
	case ctxNamespace:
		return "namespace"
	case ctxLinkage:
		return "linkage"
	case ctxClass:
		return "class"
	case ctxStruct:
		return "struct"
	case ctxUnion:
		return "union"
	case ctxEnum:
		return "enum"
	}
	return "ctx(?)"
}

// classLike reports whether members of the context are fields and access
// labels are meaningful.
func (k ctxKind) classLike() bool {
	return k == ctxClass || k == ctxStruct || k == ctxUnion
}

// scope is one entry of the context arena.
type scope struct {
	kind   ctxKind
	vis    decl.Visibility // текущая видимость, меняется метками доступа
	record int             // запись-агрегат, которой принадлежит тело, или NoRecord
	anon   bool
	open   int // индекс токена '{', -1 для глобального контекста
	parent int
}

func (s *Scanner) pushScope(kind ctxKind, vis decl.Visibility, record int, anon bool, open, parent int) int {
	s.scopes = append(s.scopes, scope{
		kind:   kind,
		vis:    vis,
		record: record,
		anon:   anon,
		open:   open,
		parent: parent,
	})
	return len(s.scopes) - 1
}

func scopeKindOf(k token.Kind) ctxKind {
	switch k {
	case token.KwClass:
		return ctxClass
	case token.KwStruct:
		return ctxStruct
	case token.KwUnion:
		return ctxUnion
	default:
		return ctxEnum
	}
}

func recordKindOf(k token.Kind) decl.Kind {
	switch k {
	case token.KwClass:
		return decl.KindClass
	case token.KwStruct:
		return decl.KindStruct
	case token.KwUnion:
		return decl.KindUnion
	default:
		return decl.KindEnum
	}
}

// defaultVisibility is the access level a body starts with.
func defaultVisibility(k ctxKind) decl.Visibility {
	if k == ctxClass {
		return decl.Private
	}
	return decl.Public
}

func accessOf(k token.Kind) decl.Visibility {
	switch k {
	case token.KwProtected:
		return decl.Protected
	case token.KwPrivate:
		return decl.Private
	default:
		return decl.Public
	}
}
