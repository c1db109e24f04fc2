package lexer

import (
	"cxxdoc/internal/source"
	"cxxdoc/internal/token"
)

// Lexer turns one source file into a finite token stream ending with EOF.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена

	// строка, на которой закончился последний не-комментарий
	prevLine uint32
	hasPrev  bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the file being tokenized.
func (lx *Lexer) File() *source.File { return lx.file }

// Next возвращает следующий токен. Пробелы пропускаются, комментарии
// возвращаются как токены Comment. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '/' && lx.atCommentStart():
		// комментарии не сдвигают prevLine
		return lx.scanComment()

	case ch == '#' && lx.atLineStart():
		tok = lx.scanDirective()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch), ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString(lx.cursor.Mark())

	case ch == '\'':
		tok = lx.scanChar(lx.cursor.Mark())

	default:
		tok = lx.scanOperatorOrPunct()
	}

	lx.notePrev(tok)
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// Reset rewinds the lexer to the beginning of the file.
func (lx *Lexer) Reset() {
	lx.cursor = NewCursor(lx.file)
	lx.look = nil
	lx.prevLine = 0
	lx.hasPrev = false
}

// All drains the lexer and returns every token including the final EOF.
func (lx *Lexer) All() []token.Token {
	toks := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) notePrev(tok token.Token) {
	if tok.Span.End > tok.Span.Start {
		lx.prevLine = lx.file.LineOf(tok.Span.End - 1)
		lx.hasPrev = true
	}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			lx.cursor.Bump()
		case '\\':
			// склейка строк вне директивы
			if lx.cursor.EatSplice() {
				continue
			}
			return
		default:
			return
		}
	}
}

// atLineStart reports whether only blanks precede the cursor on its line.
func (lx *Lexer) atLineStart() bool {
	for i := int(lx.cursor.Off) - 1; i >= 0; i-- {
		switch lx.file.Content[i] {
		case '\n':
			return true
		case ' ', '\t', '\v', '\f', '\r':
			continue
		default:
			return false
		}
	}
	return true
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
