package lexer

import (
	"cxxdoc/internal/diag"
	"cxxdoc/internal/token"
)

var ops3 = [...]struct {
	text string
	kind token.Kind
}{
	{"...", token.Ellipsis},
	{"<=>", token.Op},
	{"<<=", token.Op},
	{">>=", token.Op},
	{"->*", token.Op},
}

var ops2 = map[string]token.Kind{
	"::": token.ColonColon,
	"->": token.Arrow,
	"&&": token.AndAnd,
	"<<": token.Shl,
	">>": token.Shr,
	"||": token.Op, "==": token.Op, "!=": token.Op, "<=": token.Op, ">=": token.Op,
	"++": token.Op, "--": token.Op, "+=": token.Op, "-=": token.Op, "*=": token.Op,
	"/=": token.Op, "%=": token.Op, "&=": token.Op, "|=": token.Op, "^=": token.Op,
	".*": token.Op, "##": token.Op,
}

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// Отдельные Kind только у того, что нужно сканеру деклараций, остальное Op.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	for _, op := range ops3 {
		if lx.cursor.HasPrefix(op.text) {
			lx.cursor.Advance(3)
			return emit(op.kind)
		}
	}
	if w := lx.cursor.Window(2); w != nil {
		if k, ok := ops2[string(w)]; ok {
			lx.cursor.Advance(2)
			return emit(k)
		}
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '=':
		return emit(token.Assign)
	case '*':
		return emit(token.Star)
	case '&':
		return emit(token.Amp)
	case '~':
		return emit(token.Tilde)
	case '.':
		return emit(token.Dot)
	case '?':
		return emit(token.Question)
	case '+', '-', '/', '%', '^', '|', '!', '#':
		return emit(token.Op)
	default:
		// неизвестный символ: захватываем руну целиком
		lx.cursor.Reset(start)
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		if sp.Empty() {
			lx.cursor.Bump()
			sp = lx.cursor.SpanFrom(start)
		}
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
}
