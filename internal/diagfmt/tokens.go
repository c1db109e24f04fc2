package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cxxdoc/internal/source"
	"cxxdoc/internal/token"
)

// CommentJSON is the comment metadata of a token.
type CommentJSON struct {
	Form      string `json:"form"`
	Placement string `json:"placement"`
	Scope     string `json:"scope"`
	Doc       bool   `json:"doc"`
}

// TokenJSON is one token of a dump.
type TokenJSON struct {
	Kind    string       `json:"kind"`
	Text    string       `json:"text"`
	Line    uint32       `json:"line"`
	Col     uint32       `json:"col"`
	Start   uint32       `json:"start"`
	End     uint32       `json:"end"`
	Comment *CommentJSON `json:"comment,omitempty"`
}

// FormatTokensPretty prints one token per line:
//
//	line:col  KIND  text  [form placement]
//
// Texts are quoted; multi-line comments stay on one line.
func FormatTokensPretty(w io.Writer, f *source.File, toks []token.Token) error {
	width := 0
	for _, t := range toks {
		width = max(width, len(t.Kind.String()))
	}
	for _, t := range toks {
		lc := f.Position(t.Span.Start)
		pos := fmt.Sprintf("%d:%d", lc.Line, lc.Col)
		line := fmt.Sprintf("%-8s %s %s", pos, padRight(t.Kind.String(), width), strconv.Quote(t.Text))
		if t.Kind == token.Comment {
			c := t.Comment
			line += fmt.Sprintf("  [%s %s]", c.Form, c.Placement)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// BuildTokensJSON converts toks into their dump form.
func BuildTokensJSON(f *source.File, toks []token.Token) []TokenJSON {
	out := make([]TokenJSON, 0, len(toks))
	for _, t := range toks {
		lc := f.Position(t.Span.Start)
		tj := TokenJSON{
			Kind:  t.Kind.String(),
			Text:  t.Text,
			Line:  lc.Line,
			Col:   lc.Col,
			Start: t.Span.Start,
			End:   t.Span.End,
		}
		if t.Kind == token.Comment {
			tj.Comment = &CommentJSON{
				Form:      t.Comment.Form.String(),
				Placement: t.Comment.Placement.String(),
				Scope:     t.Comment.Scope.String(),
				Doc:       t.Comment.Doc,
			}
		}
		out = append(out, tj)
	}
	return out
}

// FormatTokensJSON writes the token dump as an indented JSON array.
func FormatTokensJSON(w io.Writer, f *source.File, toks []token.Token) error {
	return writeJSON(w, BuildTokensJSON(f, toks))
}
