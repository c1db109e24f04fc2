package diag

import (
	"cxxdoc/internal/source"
)

// Note points at a related location, e.g. where an unclosed scope began.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// MarksPartial reports whether d spoils the coverage of its file: only
// lexical and structural errors do, warnings never.
func (d Diagnostic) MarksPartial() bool {
	return d.Severity == SevError && (d.Code.IsLexical() || d.Code.IsStructural())
}
