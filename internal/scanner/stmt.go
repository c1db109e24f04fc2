package scanner

import (
	"cxxdoc/internal/decl"
	"cxxdoc/internal/diag"
	"cxxdoc/internal/token"
)

// stmt accumulates the units of one statement.
type stmt struct {
	scope int
	lead  int // первый значимый токен оператора
	units []unit

	// assigned is set once the current declarator has seen a top-level '='.
	assigned bool

	// afterBody: an aggregate body was consumed; units are the declarators after '}'.
	afterBody bool
	base      int // запись-агрегат перед декларатором
	postLead  int // первый значимый токен после '}'
	typedef   bool
}

func (st *stmt) add(u unit) {
	switch {
	case u.is(token.Assign):
		if last, ok := st.last(); !ok || !last.is(token.KwOperator) {
			st.assigned = true
		}
	case u.is(token.Comma):
		st.assigned = false
	}
	st.units = append(st.units, u)
}

func (st *stmt) last() (unit, bool) {
	if len(st.units) == 0 {
		return unit{}, false
	}
	return st.units[len(st.units)-1], true
}

func (s *Scanner) newStmt(si int) *stmt {
	return &stmt{scope: si, lead: s.cur(), base: decl.NoRecord, postLead: -1}
}

// scanStatement reads one declaration statement, including nested aggregate
// bodies and the declarators that follow them.
func (s *Scanner) scanStatement(si int) {
	st := s.newStmt(si)
	if t := s.tok(0); cannotStartDecl(t.Kind) {
		s.errStr(diag.StrUnexpectedToken, t.Span, "unexpected '"+t.Text+"', expected a declaration")
		s.skipStatement()
		return
	}
	for {
		t := s.tok(0)
		switch t.Kind {
		case token.EOF:
			if len(st.units) > 0 {
				s.errStr(diag.StrUnterminatedStmt, s.toks[st.lead].Span, "declaration is cut off by end of file")
				s.finish(st)
			}
			return

		case token.Semicolon:
			s.advance()
			s.finish(st)
			return

		case token.RBrace:
			// нет ';' перед закрывающей скобкой
			s.finish(st)
			return

		case token.LBrace:
			done, closed := s.onBrace(st)
			if done || !closed {
				return
			}
			continue

		case token.RParen, token.RBracket:
			s.errStr(diag.StrStrayCloser, t.Span, "stray '"+t.Text+"'")
			s.advance()
			continue

		case token.KwPublic, token.KwProtected, token.KwPrivate:
			if s.scopes[si].kind.classLike() && s.tok(1).Kind == token.Colon {
				s.scopes[si].vis = accessOf(t.Kind)
				s.advance()
				s.advance()
				if len(st.units) == 0 && !st.afterBody {
					return
				}
				// всё, что было до метки (макросы вроде Q_OBJECT), отбрасываем
				st = s.newStmt(si)
				continue
			}
		}
		s.collectUnit(st)
	}
}

// cannotStartDecl: литералы и операторы, с которых не начинается ни одна
// декларация. Invalid уже отрапортован лексером.
func cannotStartDecl(k token.Kind) bool {
	switch k {
	case token.NumberLit, token.StringLit, token.CharLit,
		token.Comma, token.Colon, token.Assign, token.Lt, token.Gt, token.Shl, token.Shr,
		token.Star, token.Amp, token.AndAnd, token.Dot, token.Arrow, token.Ellipsis,
		token.Question, token.Op:
		return true
	}
	return false
}

// skipStatement drops everything up to and including the next top-level ';'.
// A '}' or EOF is left for the enclosing scope.
func (s *Scanner) skipStatement() {
	for {
		switch s.tok(0).Kind {
		case token.EOF, token.RBrace:
			return
		case token.Semicolon:
			s.advance()
			return
		case token.LParen, token.LBracket, token.LBrace:
			end, _ := s.groupEnd(s.pos)
			s.jump(end)
		case token.RParen, token.RBracket:
			t := s.tok(0)
			s.errStr(diag.StrStrayCloser, t.Span, "stray '"+t.Text+"'")
			s.advance()
		default:
			s.advance()
		}
	}
}

// collectUnit appends the unit under the cursor to st and advances past it.
func (s *Scanner) collectUnit(st *stmt) {
	t := s.tok(0)
	switch t.Kind {
	case token.LBracket:
		if s.tok(1).Kind == token.LBracket {
			// [[attribute]]
			end, _ := s.groupEnd(s.pos)
			s.jump(end)
			return
		}
		s.takeGroup(st)
		return

	case token.LParen:
		s.takeGroup(st)
		return

	case token.Lt:
		if s.pos >= s.angleHorizon && s.angleAllowed(st) {
			end, ok := s.angleEnd(s.pos)
			if ok {
				st.add(unit{kind: token.Lt, first: s.cur(), last: s.idxAt(end), group: true})
				s.jump(end)
				return
			}
			s.angleHorizon = end
		}

	case token.Ident:
		if s.tok(1).Kind == token.LParen {
			if attributeWords[t.Text] {
				end, _ := s.groupEnd(s.pos + 1)
				s.jump(end)
				return
			}
			if opaqueWords[t.Text] {
				first := s.cur()
				end, _ := s.groupEnd(s.pos + 1)
				st.add(unit{kind: token.Ident, first: first, last: s.idxAt(end), opaque: true})
				s.jump(end)
				return
			}
		}
	}
	idx := s.cur()
	st.add(unit{kind: t.Kind, first: idx, last: idx})
	s.advance()
}

func (s *Scanner) takeGroup(st *stmt) {
	first := s.cur()
	end, _ := s.groupEnd(s.pos)
	st.add(unit{kind: s.toks[first].Kind, first: first, last: s.idxAt(end), group: true})
	s.jump(end)
}

// angleAllowed decides whether '<' opens template arguments: right after a
// name or 'template', and never inside an initializer.
func (s *Scanner) angleAllowed(st *stmt) bool {
	if st.assigned {
		return false
	}
	last, ok := st.last()
	if !ok {
		return false
	}
	return last.isNameIdent() || last.is(token.KwTemplate)
}

// onBrace handles a top-level '{'. done reports that the statement is
// complete; closed is false when a scope opened here was never closed.
func (s *Scanner) onBrace(st *stmt) (done, closed bool) {
	if !st.afterBody {
		if h, ok := s.aggregateHead(st.units); ok {
			return false, s.defineAggregate(st, h)
		}
		if anon, ok := s.namespaceHead(st.units); ok {
			vis := decl.Public
			parent := s.scopes[st.scope]
			if anon || (!parent.kind.classLike() && parent.vis == decl.Private) {
				vis = decl.Private
			}
			return true, s.openScope(ctxNamespace, vis, parent.record, anon, st.scope)
		}
		if isLinkageHead(st.units) {
			parent := s.scopes[st.scope]
			return true, s.openScope(ctxLinkage, parent.vis, parent.record, false, st.scope)
		}
	}

	if p := paramList(st.units); p >= 0 {
		last, _ := st.last()
		if hasInitColon(st.units[p:]) && (last.isNameIdent() || last.isAngle()) {
			// member{init} в списке инициализации конструктора
			s.takeGroup(st)
			return false, true
		}
		if c := initColon(st.units, p); c >= 0 {
			st.units = st.units[:c]
		}
		s.finish(st)
		open := s.cur()
		end, ok := s.groupEnd(s.pos)
		s.jump(end)
		if !ok {
			s.errStr(diag.StrUnclosedContext, s.toks[open].Span, "function body is never closed")
			return true, false
		}
		return true, true
	}

	// инициализатор в фигурных скобках или непонятный блок становится непрозрачной группой
	s.takeGroup(st)
	return false, true
}

// paramList returns the index of the first parenthesized group that comes
// before any top-level '=', or -1.
func paramList(units []unit) int {
	for i, u := range units {
		if u.is(token.Assign) && (i == 0 || !units[i-1].is(token.KwOperator)) {
			return -1
		}
		if u.isParen() {
			return i
		}
	}
	return -1
}

func hasInitColon(units []unit) bool {
	return initColon(units, 0) >= 0
}

// initColon returns the index of the first ':' at or after from, or -1.
func initColon(units []unit, from int) int {
	for i := from; i < len(units); i++ {
		if units[i].is(token.Colon) {
			return i
		}
	}
	return -1
}
