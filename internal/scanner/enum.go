package scanner

import (
	"cxxdoc/internal/decl"
	"cxxdoc/internal/diag"
	"cxxdoc/internal/token"
)

// scanEnumerator reads one comma separated entry of an enum body:
// `[[attr]] name [= value]`. Enumerators take the visibility of their enum.
func (s *Scanner) scanEnumerator(si int) {
	sc := s.scopes[si]
	lead := s.cur()
	for s.tok(0).Kind == token.LBracket && s.tok(1).Kind == token.LBracket {
		end, _ := s.groupEnd(s.pos)
		s.jump(end)
	}

	rec := decl.NoRecord
	switch t := s.tok(0); t.Kind {
	case token.Ident:
		idx := s.cur()
		rec = s.addRecord(decl.Record{
			Kind:       decl.KindEnumerator,
			Name:       t.Text,
			Visibility: sc.vis,
			Enclosing:  sc.record,
			Span:       t.Span,
			NameTok:    idx,
			OwnTok:     idx,
			LeadTok:    lead,
		})
		s.owner[idx] = rec
		s.advance()
	case token.Comma, token.RBrace, token.EOF, token.Invalid:
	default:
		s.errStr(diag.StrUnexpectedToken, t.Span, "unexpected '"+t.Text+"', expected an enumerator name")
	}

	for {
		t := s.tok(0)
		switch t.Kind {
		case token.EOF, token.RBrace:
			return
		case token.Comma:
			s.advance()
			return
		case token.LParen, token.LBracket, token.LBrace:
			first := s.cur()
			end, _ := s.groupEnd(s.pos)
			s.own(first, s.idxAt(end), rec)
			s.jump(end)
		case token.RParen, token.RBracket:
			s.errStr(diag.StrStrayCloser, t.Span, "stray '"+t.Text+"'")
			s.advance()
		default:
			s.owner[s.cur()] = rec
			s.advance()
		}
	}
}
