package lexer

import (
	"cxxdoc/internal/diag"
	"cxxdoc/internal/token"
)

// maxRawDelim is the longest d-char-sequence allowed in R"delim(...)delim".
const maxRawDelim = 16

// scanString читает "..." начиная с кавычки под курсором; start может
// указывать на префикс кодировки. Перевод строки внутри литерала считается ошибкой.
func (lx *Lexer) scanString(start Mark) token.Token {
	return lx.scanQuoted(start, '"', token.StringLit, "string")
}

// scanChar читает '...' по тем же правилам, что и строку.
func (lx *Lexer) scanChar(start Mark) token.Token {
	return lx.scanQuoted(start, '\'', token.CharLit, "character")
}

func (lx *Lexer) scanQuoted(start Mark, quote byte, kind token.Kind, what string) token.Token {
	lx.cursor.Bump() // открывающая кавычка
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			lx.eatUDSuffix()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			// escape не валидируем, только пропускаем следующий байт
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in "+what+" literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated "+what+" literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanRawString читает R"delim( ... )delim". Литерал может занимать
// несколько строк. Некорректный разделитель сканируется как обычная строка.
func (lx *Lexer) scanRawString(start Mark) token.Token {
	open := lx.cursor.Mark()
	lx.cursor.Bump() // '"'
	delimStart := lx.cursor.Off
	for lx.cursor.Off-delimStart <= maxRawDelim && !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '(' {
			break
		}
		if b == ' ' || b == ')' || b == '\\' || b == '\t' || b == '\n' || b == '"' {
			lx.cursor.Reset(open)
			return lx.scanString(start)
		}
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() != '(' {
		lx.cursor.Reset(open)
		return lx.scanString(start)
	}
	delim := lx.file.Content[delimStart:lx.cursor.Off]
	lx.cursor.Bump() // '('

	content := lx.file.Content
	limit := lx.cursor.Limit
	for off := lx.cursor.Off; off < limit; off++ {
		if content[off] != ')' {
			continue
		}
		end := off + 1 + uint32(len(delim))
		if end < limit && string(content[off+1:end]) == string(delim) && content[end] == '"' {
			lx.cursor.Off = end + 1
			lx.eatUDSuffix()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
	}
	lx.cursor.Off = limit
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated raw string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// eatUDSuffix съедает суффикс пользовательского литерала ("abc"_s).
func (lx *Lexer) eatUDSuffix() {
	if !isIdentStartByte(lx.cursor.Peek()) {
		return
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
