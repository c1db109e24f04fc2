package lexer

import (
	"cxxdoc/internal/comment"
	"cxxdoc/internal/diag"
	"cxxdoc/internal/token"
)

func (lx *Lexer) atCommentStart() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && (b1 == '/' || b1 == '*')
}

// scanComment читает // до конца строки или /* до */.
// Незакрытый блочный комментарий поглощает остаток файла.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	sameLine := lx.hasPrev && lx.file.LineOf(lx.cursor.Off) == lx.prevLine

	lx.cursor.Bump() // '/'
	if lx.cursor.Bump() == '/' {
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if b == '\n' {
				break
			}
			// продолжение однострочного комментария через '\'
			if b == '\\' && lx.cursor.EatSplice() {
				continue
			}
			lx.cursor.Bump()
		}
	} else {
		closed := false
		for !lx.cursor.EOF() {
			if lx.cursor.HasPrefix("*/") {
				lx.cursor.Advance(2)
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	return token.Token{
		Kind:    token.Comment,
		Span:    sp,
		Text:    text,
		Comment: comment.Info(text, sameLine),
	}
}
