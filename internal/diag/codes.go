package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Структурные (сканер деклараций)
	StrInfo             Code = 2000
	StrUnmatchedRBrace  Code = 2001
	StrStrayCloser      Code = 2002
	StrUnclosedContext  Code = 2003
	StrUnterminatedStmt Code = 2004
	StrUnexpectedToken  Code = 2005
	StrScanAborted      Code = 2006

	// Ошибки I/O
	IOLoadFileError Code = 4001
	IODecodeError   Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string or character literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	StrInfo:                     "Structural information",
	StrUnmatchedRBrace:          "Unmatched closing brace",
	StrStrayCloser:              "Stray closing parenthesis or bracket",
	StrUnclosedContext:          "Scope is not closed before end of file",
	StrUnterminatedStmt:         "Declaration is cut off by end of file",
	StrUnexpectedToken:          "Unexpected token where a declaration is expected",
	StrScanAborted:              "Declaration scan aborted",
	IOLoadFileError:             "Failed to load file",
	IODecodeError:               "Failed to decode file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("STR%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLexical reports whether the code belongs to the tokenizer range.
func (c Code) IsLexical() bool { return c >= 1000 && c < 2000 }

// IsStructural reports whether the code belongs to the declaration scanner range.
func (c Code) IsStructural() bool { return c >= 2000 && c < 3000 }
