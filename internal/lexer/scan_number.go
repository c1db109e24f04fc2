package lexer

import (
	"cxxdoc/internal/token"
)

// scanNumber читает pp-number: цифра (или .цифра), затем любые
// [0-9A-Za-z_.], знак после e/E/p/P и разделители разрядов '.
// Значение не проверяется, для анализа документации оно не нужно.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isIdentContinueByte(b) || b == '.':
			lx.cursor.Bump()
			if (b == 'e' || b == 'E' || b == 'p' || b == 'P') && (lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-') {
				lx.cursor.Bump()
			}
		case b == '\'':
			// 1'000'000: разделитель, только если за ним цифра или буква
			if _, b1, ok := lx.cursor.Peek2(); ok && isIdentContinueByte(b1) {
				lx.cursor.Bump()
				continue
			}
			return lx.emitNumber(start)
		default:
			return lx.emitNumber(start)
		}
	}
	return lx.emitNumber(start)
}

func (lx *Lexer) emitNumber(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
}
