package token

import (
	"cxxdoc/internal/source"
)

// Token represents a single source token with its location.
// Comment is meaningful only when Kind == Comment.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Comment CommentInfo
}

// IsLiteral reports whether the token is a numeric, string or character literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is one of the declaration keywords.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwClass && t.Kind <= KwExtern
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsComment reports whether the token is a comment of any form.
func (t Token) IsComment() bool { return t.Kind == Comment }

// IsDoc reports whether the token is a documentation comment.
func (t Token) IsDoc() bool { return t.Kind == Comment && t.Comment.Form.IsDoc() }

// IsTrivia reports whether the token carries no declaration structure:
// comments and preprocessor directives.
func (t Token) IsTrivia() bool { return t.Kind == Comment || t.Kind == Directive }
