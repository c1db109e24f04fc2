package scanner

import (
	"cxxdoc/internal/decl"
	"cxxdoc/internal/token"
)

// prefix describes the leading specifiers of a statement.
type prefix struct {
	next    int // индекс первого юнита после спецификаторов
	typedef bool
	friend  bool
}

// skipPrefix steps over template heads, storage and cv specifiers, typedef,
// friend and non-linkage extern.
func (s *Scanner) skipPrefix(units []unit) prefix {
	var p prefix
	i := 0
	for i < len(units) {
		u := units[i]
		switch {
		case u.is(token.KwTemplate):
			i++
			if i < len(units) && units[i].isAngle() {
				i++
			}
			continue
		case u.is(token.KwTypedef):
			p.typedef = true
		case u.is(token.KwFriend):
			p.friend = true
		case u.is(token.KwExtern):
			if i+1 < len(units) && units[i+1].is(token.StringLit) {
				i++
			}
		case u.isNameIdent() && specifierWords[s.toks[u.first].Text]:
		default:
			p.next = i
			return p
		}
		i++
	}
	p.next = i
	return p
}

// head is a recognized aggregate definition head.
type head struct {
	prefix
	kw        int // индекс юнита ключевого слова
	name      int // индекс юнита имени или -1
	qualified bool
}

// aggregateHead matches `[prefix] class|struct|union|enum [class] [name] [final] [: bases]`.
func (s *Scanner) aggregateHead(units []unit) (head, bool) {
	p := s.skipPrefix(units)
	i := p.next
	// макросы без ';' перед определением: DECLARE_X(y) class Z {
	for i+1 < len(units) && units[i].isNameIdent() && units[i+1].isParen() {
		i += 2
	}
	if i > p.next {
		p = s.skipPrefix(units[i:])
		p.next += i
		i = p.next
	}
	if i >= len(units) || units[i].group || !units[i].kind.IsAggregate() {
		return head{}, false
	}
	h := head{prefix: p, kw: i, name: -1}
	i++
	if units[h.kw].is(token.KwEnum) && i < len(units) && (units[i].is(token.KwClass) || units[i].is(token.KwStruct)) {
		i++
	}
	for ; i < len(units); i++ {
		u := units[i]
		switch {
		case u.isNameIdent():
			if txt := s.toks[u.first].Text; txt != "final" && txt != "sealed" {
				h.name = i
			}
		case u.is(token.ColonColon):
			h.qualified = true
		case u.isAngle():
		case u.isParen() && i > h.kw+1 && units[i-1].isNameIdent():
			// экспортный макрос с аргументами: class API(x) Name
			if h.name == i-1 {
				h.name = -1
			}
		case u.is(token.Colon):
			return h, true
		default:
			return head{}, false
		}
	}
	return h, true
}

// namespaceHead matches `[inline] namespace [a[::b]]`.
func (s *Scanner) namespaceHead(units []unit) (anon, ok bool) {
	i := 0
	if i < len(units) && units[i].isNameIdent() && s.toks[units[i].first].Text == "inline" {
		i++
	}
	if i >= len(units) || !units[i].is(token.KwNamespace) {
		return false, false
	}
	anon = true
	for i++; i < len(units); i++ {
		u := units[i]
		switch {
		case u.isNameIdent():
			if s.toks[u.first].Text != "inline" {
				anon = false
			}
		case u.is(token.ColonColon):
		default:
			return false, false
		}
	}
	return anon, true
}

func isLinkageHead(units []unit) bool {
	return len(units) == 2 && units[0].is(token.KwExtern) && units[1].is(token.StringLit)
}

// defineAggregate records the aggregate, scans its body and prepares st for
// the declarators after '}'. It reports whether the body was closed.
func (s *Scanner) defineAggregate(st *stmt, h head) bool {
	sc := s.scopes[st.scope]
	kw := st.units[h.kw]
	kwKind := s.toks[kw.first].Kind

	nameTok := kw.first
	name := ""
	if h.name >= 0 {
		nameTok = st.units[h.name].first
		name = s.toks[nameTok].Text
	}
	ri := s.addRecord(decl.Record{
		Kind:       recordKindOf(kwKind),
		Name:       name,
		Visibility: sc.vis,
		Enclosing:  sc.record,
		Span:       s.toks[nameTok].Span,
		NameTok:    nameTok,
		OwnTok:     nameTok,
		LeadTok:    st.lead,
		Qualified:  h.qualified,
	})
	for _, u := range st.units {
		s.own(u.first, u.last, ri)
	}

	kind := scopeKindOf(kwKind)
	vis := defaultVisibility(kind)
	if kind == ctxEnum {
		vis = sc.vis
	}
	closed := s.openScope(kind, vis, ri, name == "", st.scope)

	st.afterBody = true
	st.base = ri
	st.typedef = h.typedef
	st.units = nil
	st.assigned = false
	st.postLead = s.cur()
	return closed
}
