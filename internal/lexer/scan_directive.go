package lexer

import (
	"cxxdoc/internal/token"
)

// scanDirective поглощает логическую строку препроцессора целиком,
// включая продолжения через '\'. Однострочный комментарий в конце строки
// остаётся отдельным токеном, блочные комментарии входят в директиву.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	end := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\n':
			return lx.emitDirective(start, end)
		case b == '\\':
			lx.cursor.Bump()
			lx.cursor.Eat('\n')
		case b == '/' && lx.atCommentStart():
			if lx.cursor.HasPrefix("//") {
				return lx.emitDirective(start, end)
			}
			lx.skipBlockInDirective()
		case b == '"':
			lx.skipQuotedInLine('"')
		case b == '\'':
			lx.skipQuotedInLine('\'')
		default:
			lx.cursor.Bump()
		}
		if b != ' ' && b != '\t' && b != '\r' {
			end = lx.cursor.Mark()
		}
	}
	return lx.emitDirective(start, end)
}

func (lx *Lexer) emitDirective(start, end Mark) token.Token {
	here := lx.cursor.Mark()
	lx.cursor.Reset(end)
	sp := lx.cursor.SpanFrom(start)
	lx.cursor.Reset(here)
	return token.Token{Kind: token.Directive, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) skipBlockInDirective() {
	lx.cursor.Advance(2)
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("*/") {
			lx.cursor.Advance(2)
			return
		}
		lx.cursor.Bump()
	}
}

// skipQuotedInLine пропускает "..." или '...' внутри директивы, но только
// если закрывающая кавычка есть на той же строке (#error don't panic).
func (lx *Lexer) skipQuotedInLine(q byte) {
	content := lx.file.Content
	limit := lx.cursor.Limit
	for i := lx.cursor.Off + 1; i < limit; i++ {
		switch content[i] {
		case '\\':
			i++
		case '\n':
			lx.cursor.Bump()
			return
		case q:
			lx.cursor.Off = i + 1
			return
		}
	}
	lx.cursor.Bump()
}
