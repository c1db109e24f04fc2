// Package comment classifies comment tokens by their opening marker.
//
// The classification is purely lexical. Doxygen markers are `///`, `//!`,
// `/**` and `/*!`; a `<` right after the marker turns the comment into a
// back-reference to the declarator before it. Banner rules such as `////`
// or `/***` and the empty block `/**/` are plain comments.
package comment

import (
	"strings"

	"cxxdoc/internal/token"
)

// Classify decides the marker form from the comment's opening sequence.
// text is the whole comment including its delimiters.
func Classify(text string) token.CommentForm {
	switch {
	case strings.HasPrefix(text, "//"):
		return classifyLine(text[2:])
	case strings.HasPrefix(text, "/*"):
		return classifyBlock(text[2:])
	default:
		return token.FormLine
	}
}

func classifyLine(rest string) token.CommentForm {
	if rest == "" {
		return token.FormLine
	}
	switch rest[0] {
	case '/':
		// "////" is a separator line, not documentation
		if len(rest) > 1 && rest[1] == '/' {
			return token.FormLine
		}
		if len(rest) > 1 && rest[1] == '<' {
			return token.FormTrailingLine
		}
		return token.FormDocLine
	case '!':
		if len(rest) > 1 && rest[1] == '<' {
			return token.FormTrailingLine
		}
		return token.FormDocLine
	default:
		return token.FormLine
	}
}

func classifyBlock(rest string) token.CommentForm {
	if rest == "" {
		return token.FormBlock
	}
	switch rest[0] {
	case '*':
		// "/**/" is empty and "/***" opens a banner
		if strings.HasPrefix(rest, "*/") || strings.HasPrefix(rest, "**") {
			return token.FormBlock
		}
		if len(rest) > 1 && rest[1] == '<' {
			return token.FormTrailingBlock
		}
		return token.FormDocBlock
	case '!':
		if len(rest) > 1 && rest[1] == '<' {
			return token.FormTrailingBlock
		}
		return token.FormDocBlock
	default:
		return token.FormBlock
	}
}

// IsDoc reports whether comments of this form document declarations.
func IsDoc(form token.CommentForm) bool { return form.IsDoc() }

// PlacementOf returns TrailingInline only for trailing forms that start on the
// same line where the previous non-comment token ended.
func PlacementOf(form token.CommentForm, sameLineAsPrev bool) token.Placement {
	if form.IsTrailing() && sameLineAsPrev {
		return token.TrailingInline
	}
	return token.Leading
}

// ScopeOf maps line forms to SingleLine and block forms to Block.
func ScopeOf(form token.CommentForm) token.CommentScope {
	if form.IsBlock() {
		return token.Block
	}
	return token.SingleLine
}

// Info builds the complete classification of a comment.
func Info(text string, sameLineAsPrev bool) token.CommentInfo {
	form := Classify(text)
	return token.CommentInfo{
		Form:      form,
		Placement: PlacementOf(form, sameLineAsPrev),
		Scope:     ScopeOf(form),
		Doc:       form.IsDoc(),
	}
}
