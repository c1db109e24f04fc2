package scanner

import (
	"cxxdoc/internal/decl"
	"cxxdoc/internal/diag"
	"cxxdoc/internal/source"
	"cxxdoc/internal/token"
)

// TokenSource yields tokens until EOF and keeps returning EOF afterwards.
// *lexer.Lexer satisfies it.
type TokenSource interface {
	Next() token.Token
}

// Options configures a scan.
type Options struct {
	Reporter diag.Reporter // может быть nil
}

// Result is everything a scan produces.
type Result struct {
	// Tokens is the full token stream including comments, directives and EOF.
	Tokens  []token.Token
	Records []decl.Record
	// Owner maps every token index to its record or decl.NoRecord.
	Owner []int
}

// Scanner pulls tokens lazily and keeps significant positions separately
// so that lookahead skips comments and directives.
type Scanner struct {
	src  TokenSource
	opts Options

	toks  []token.Token
	owner []int
	sig   []int // индексы значимых токенов в toks
	pos   int   // текущая позиция в sig
	eof   bool

	scopes  []scope
	records []decl.Record

	lineOf func(off uint32) uint32 // nil, если источник не знает строк

	// angleHorizon: '<' before this position is a plain token, a lookahead
	// from an earlier '<' already failed over it.
	angleHorizon int
}

// fileSource is implemented by token sources that know their file.
type fileSource interface {
	File() *source.File
}

// Scan runs the scanner over src to EOF.
func Scan(src TokenSource, opts Options) Result {
	s := &Scanner{src: src, opts: opts}
	if fsrc, ok := src.(fileSource); ok && fsrc.File() != nil {
		s.lineOf = fsrc.File().LineOf
	}
	s.run()
	return Result{Tokens: s.toks, Records: s.records, Owner: s.owner}
}

func (s *Scanner) run() {
	global := s.pushScope(ctxGlobal, decl.Public, decl.NoRecord, false, -1, -1)
	s.scanBody(global)
}

// fill pulls tokens until sig has more than n entries or EOF was seen.
func (s *Scanner) fill(n int) {
	for len(s.sig) <= n && !s.eof {
		tok := s.src.Next()
		s.toks = append(s.toks, tok)
		s.owner = append(s.owner, decl.NoRecord)
		if tok.IsTrivia() {
			continue
		}
		s.sig = append(s.sig, len(s.toks)-1)
		if tok.Kind == token.EOF {
			s.eof = true
		}
	}
}

// idxAt returns the token index of the significant position p, clamped to EOF.
func (s *Scanner) idxAt(p int) int {
	s.fill(p)
	if p >= len(s.sig) {
		return s.sig[len(s.sig)-1]
	}
	return s.sig[p]
}

func (s *Scanner) tokAt(p int) token.Token { return s.toks[s.idxAt(p)] }

// tok returns the k-th significant token ahead of the cursor.
func (s *Scanner) tok(k int) token.Token { return s.tokAt(s.pos + k) }

// cur returns the token index under the cursor.
func (s *Scanner) cur() int { return s.idxAt(s.pos) }

func (s *Scanner) advance() {
	if s.tok(0).Kind != token.EOF {
		s.pos++
	}
}

// jump moves the cursor right past significant position p.
func (s *Scanner) jump(p int) {
	if s.tokAt(p).Kind == token.EOF {
		s.pos = p
		return
	}
	s.pos = p + 1
}

// lineBreak reports whether token b starts on a later line than token a ends.
func (s *Scanner) lineBreak(a, b int) bool {
	if s.lineOf == nil {
		return false
	}
	return s.lineOf(s.toks[b].Span.Start) > s.lineOf(s.toks[a].Span.End)
}

func (s *Scanner) errStr(code diag.Code, sp source.Span, msg string) {
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (s *Scanner) addRecord(r decl.Record) int {
	r.DocTok = decl.NoRecord
	s.records = append(s.records, r)
	return len(s.records) - 1
}

// own assigns every significant token in [first, last] to rec.
func (s *Scanner) own(first, last, rec int) {
	for i := first; i <= last && i < len(s.toks); i++ {
		if !s.toks[i].IsTrivia() && s.toks[i].Kind != token.EOF {
			s.owner[i] = rec
		}
	}
}

// scanBody reads statements of scope si until its closing brace.
// It reports whether the brace was found.
func (s *Scanner) scanBody(si int) bool {
	for {
		t := s.tok(0)
		switch t.Kind {
		case token.EOF:
			return false
		case token.RBrace:
			if s.scopes[si].kind == ctxGlobal {
				s.errStr(diag.StrUnmatchedRBrace, t.Span, "unmatched '}'")
				s.advance()
				continue
			}
			s.owner[s.cur()] = s.scopes[si].record
			s.advance()
			return true
		}
		if s.scopes[si].kind == ctxEnum {
			s.scanEnumerator(si)
		} else {
			s.scanStatement(si)
		}
	}
}

// openScope consumes '{', the body and '}' of a new scope.
func (s *Scanner) openScope(kind ctxKind, vis decl.Visibility, record int, anon bool, parent int) bool {
	open := s.cur()
	s.owner[open] = record
	s.advance()
	si := s.pushScope(kind, vis, record, anon, open, parent)
	if !s.scanBody(si) {
		b := diag.ReportError(s.opts.Reporter, diag.StrUnclosedContext, s.toks[open].Span, "'{' of "+kind.String()+" scope is never closed")
		if kind != ctxNamespace && kind != ctxLinkage && record != decl.NoRecord && !s.records[record].Anonymous() {
			b.WithNote(s.records[record].Span, "'"+s.records[record].Name+"' is declared here")
		}
		b.Emit()
		return false
	}
	return true
}

func closerOf(k token.Kind) token.Kind {
	switch k {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	default:
		return token.RBrace
	}
}

// groupEnd finds the position closing the bracket at position from.
// A '}' that does not match ends the group unclosed and is left for the
// enclosing scope; stray ')' and ']' are reported and skipped.
func (s *Scanner) groupEnd(from int) (int, bool) {
	stack := []token.Kind{closerOf(s.tokAt(from).Kind)}
	for p := from + 1; ; p++ {
		t := s.tokAt(p)
		switch t.Kind {
		case token.EOF:
			return p - 1, false
		case token.LParen, token.LBracket, token.LBrace:
			stack = append(stack, closerOf(t.Kind))
		case token.RParen, token.RBracket, token.RBrace:
			top := stack[len(stack)-1]
			if t.Kind == top {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					return p, true
				}
				continue
			}
			if t.Kind == token.RBrace {
				return p - 1, false
			}
			s.errStr(diag.StrStrayCloser, t.Span, "stray '"+t.Text+"'")
		}
	}
}

// angleEnd finds the '>' closing a template argument list opened at from.
// It gives up on anything that cannot be inside template arguments; then
// the returned position is where it stopped.
func (s *Scanner) angleEnd(from int) (int, bool) {
	depth := 0
	var nested []token.Kind
	for p := from; ; p++ {
		t := s.tokAt(p)
		switch t.Kind {
		case token.EOF, token.Semicolon, token.LBrace, token.RBrace:
			return p, false
		case token.LParen, token.LBracket:
			nested = append(nested, closerOf(t.Kind))
		case token.RParen, token.RBracket:
			if len(nested) == 0 || nested[len(nested)-1] != t.Kind {
				return p, false
			}
			nested = nested[:len(nested)-1]
		case token.Lt:
			if len(nested) == 0 {
				depth++
			}
		case token.Gt:
			if len(nested) == 0 {
				depth--
				if depth == 0 {
					return p, true
				}
			}
		case token.Shr:
			if len(nested) == 0 {
				depth -= 2
				if depth <= 0 {
					return p, true
				}
			}
		}
	}
}
