package scanner

import (
	"strings"

	"cxxdoc/internal/decl"
	"cxxdoc/internal/source"
	"cxxdoc/internal/token"
)

// shapeKind is the outcome of declarator classification.
type shapeKind uint8

const (
	shapeNone shapeKind = iota
	shapeFunction
	shapeVariable
	shapeBitfield
	shapeFuncPointer
)

func (k shapeKind) String() string {
	switch k {
	case shapeFunction:
		return "function"
	case shapeVariable:
		return "variable"
	case shapeBitfield:
		return "bitfield"
	case shapeFuncPointer:
		return "funcptr"
	default:
		return "none"
	}
}

// shape is the tagged result of classifying one declarator.
type shape struct {
	kind     shapeKind
	nameUnit int // индекс юнита имени в сегменте
	nameTok  int
	span     source.Span
	name     string
	dtor     bool
	convOp   bool
}

// segment is one comma separated declarator of a statement.
type segment struct {
	units []unit
}

// splitDeclarators cuts units at top-level commas. `operator,` is a name.
func splitDeclarators(units []unit) []segment {
	var out []segment
	start := 0
	for i, u := range units {
		if u.is(token.Comma) && (i == 0 || !units[i-1].is(token.KwOperator)) {
			out = append(out, segment{units: units[start:i]})
			start = i + 1
		}
	}
	return append(out, segment{units: units[start:]})
}

// finish turns the collected units of st into declarator records.
func (s *Scanner) finish(st *stmt) {
	if st.afterBody {
		for i, seg := range splitDeclarators(st.units) {
			s.declare(st, seg, i, true, st.typedef)
		}
		return
	}
	p := s.skipPrefix(st.units)
	if n := s.macroCalls(st, st.units[p.next:]); n > 0 {
		// вызовы макросов без ';' не съедают следующую декларацию
		st.units = st.units[p.next+n:]
		st.lead = st.units[0].first
		p = s.skipPrefix(st.units)
	}
	if p.friend || p.next >= len(st.units) {
		return
	}
	rest := st.units[p.next:]
	first := rest[0]
	switch {
	case first.is(token.KwUsing):
		s.declareAlias(st, rest)
		return
	case first.is(token.KwNamespace):
		return // namespace alias
	case first.isNameIdent() && s.toks[first.first].Text == "static_assert":
		return
	}

	typeGiven := false
	if !first.group && first.kind.IsAggregate() {
		// elaborated type: enum E v; struct S *p;
		if s.elaboratedEnd(rest) >= len(rest) {
			return // forward declaration
		}
		typeGiven = true
	}
	before := len(s.records)
	for i, seg := range splitDeclarators(rest) {
		if i == 0 && typeGiven {
			j := s.elaboratedEnd(seg.units)
			s.declareTyped(st, seg, i, seg.units[:j], p.typedef)
			continue
		}
		s.declare(st, seg, i, i > 0, p.typedef)
	}
	// спецификаторы принадлежат первому декларатору
	if len(s.records) > before && s.records[before].DeclaratorIndex == 0 {
		for _, u := range st.units[:p.next] {
			s.own(u.first, u.last, before)
		}
	}
}

// macroCalls counts the leading units of `NAME(args)` pairs that are
// followed by a declaration on a later line. The enclosing class name is
// never a macro: `Widget(int)` there is a constructor.
func (s *Scanner) macroCalls(st *stmt, units []unit) int {
	sc := s.scopes[st.scope]
	i := 0
	for i+2 < len(units) && units[i].isNameIdent() && units[i+1].isParen() {
		name := s.toks[units[i].first].Text
		if sc.record != decl.NoRecord && s.records[sc.record].Name == name {
			break
		}
		next := units[i+2]
		if !s.lineBreak(units[i+1].last, next.first) || !s.startsDecl(next) {
			break
		}
		i += 2
	}
	return i
}

// startsDecl: может ли юнит открывать декларацию после макроса.
func (s *Scanner) startsDecl(u unit) bool {
	switch {
	case u.isNameIdent():
		return !trailingWords[s.toks[u.first].Text]
	case u.group:
		return false
	}
	return u.kind.IsAggregate() || u.is(token.ColonColon) || u.is(token.Tilde) ||
		u.is(token.KwTemplate) || u.is(token.KwTypedef) || u.is(token.KwUsing) ||
		u.is(token.KwExtern) || u.is(token.KwFriend) || u.is(token.KwOperator)
}

// elaboratedEnd returns the index after `class|struct|union|enum [class] name<...>::name`.
func (s *Scanner) elaboratedEnd(units []unit) int {
	i := 1
	if units[0].is(token.KwEnum) && i < len(units) && (units[i].is(token.KwClass) || units[i].is(token.KwStruct)) {
		i++
	}
	for i < len(units) {
		u := units[i]
		if u.isNameIdent() || u.isAngle() {
			i++
			if i < len(units) && units[i].is(token.ColonColon) {
				i++
				continue
			}
			return i
		}
		if u.is(token.ColonColon) {
			i++
			continue
		}
		return i
	}
	return i
}

// declareAlias handles `using X = type;`; other using forms declare nothing.
func (s *Scanner) declareAlias(st *stmt, rest []unit) {
	if len(rest) < 3 || !rest[1].isNameIdent() || !rest[2].is(token.Assign) {
		return
	}
	nameTok := rest[1].first
	sc := s.scopes[st.scope]
	ri := s.addRecord(decl.Record{
		Kind:       decl.KindTypedef,
		Name:       s.toks[nameTok].Text,
		Visibility: sc.vis,
		Enclosing:  sc.record,
		Span:       s.toks[nameTok].Span,
		NameTok:    nameTok,
		OwnTok:     nameTok,
		LeadTok:    st.lead,
	})
	for _, u := range st.units {
		s.own(u.first, u.last, ri)
	}
}

// declareTyped declares the first segment after an elaborated type.
func (s *Scanner) declareTyped(st *stmt, seg segment, idx int, typeUnits []unit, typedef bool) {
	rest := segment{units: seg.units[len(typeUnits):]}
	ri := s.declare(st, rest, idx, true, typedef)
	if ri != decl.NoRecord {
		for _, u := range typeUnits {
			s.own(u.first, u.last, ri)
		}
	}
}

// declare classifies one segment and records it. typeGiven is true when the
// declared type is known from elsewhere (later declarators, `} name;`).
func (s *Scanner) declare(st *stmt, seg segment, idx int, typeGiven, typedef bool) int {
	if len(seg.units) == 0 {
		return decl.NoRecord
	}
	sh := s.classify(seg.units)
	if sh.kind == shapeNone {
		return decl.NoRecord
	}
	sc := s.scopes[st.scope]
	qualifiedFrom := qualificationStart(seg.units, sh.nameUnit)
	qualified := qualifiedFrom < sh.nameUnit

	if !typeGiven && !s.hasType(seg.units[:qualifiedFrom]) {
		ok := sh.dtor || sh.convOp || qualified
		if sh.kind == shapeFunction && sc.kind.classLike() && sc.record != decl.NoRecord &&
			s.records[sc.record].Name == sh.name {
			ok = true // конструктор
		}
		if !ok {
			return decl.NoRecord
		}
	}

	kind := decl.KindVariable
	switch {
	case typedef:
		kind = decl.KindTypedef
	case sh.kind == shapeFunction:
		kind = decl.KindFunction
	case sh.kind == shapeBitfield && sc.kind.classLike():
		kind = decl.KindBitfield
	case sc.kind.classLike():
		kind = decl.KindField
	}

	rec := decl.Record{
		Kind:            kind,
		Name:            sh.name,
		Visibility:      sc.vis,
		Enclosing:       sc.record,
		Span:            sh.span,
		NameTok:         sh.nameTok,
		OwnTok:          seg.units[0].first,
		LeadTok:         decl.NoRecord,
		DeclaratorIndex: idx,
		Qualified:       qualified,
	}
	if idx == 0 {
		rec.OwnTok = sh.nameTok
		rec.LeadTok = st.lead
		if st.afterBody && st.base != decl.NoRecord && !s.records[st.base].Anonymous() {
			rec.LeadTok = st.postLead
		}
	}
	ri := s.addRecord(rec)
	for _, u := range seg.units {
		s.own(u.first, u.last, ri)
	}
	return ri
}

// qualificationStart walks back over `A::B<T>::` before the name unit.
func qualificationStart(units []unit, name int) int {
	q := name
	for q >= 2 && units[q-1].is(token.ColonColon) && (units[q-2].isNameIdent() || units[q-2].isAngle()) {
		q -= 2
		if units[q].isAngle() && q >= 1 && units[q-1].isNameIdent() {
			q--
		}
	}
	if q >= 1 && units[q-1].is(token.ColonColon) {
		q-- // ::name
	}
	return q
}

// hasType reports whether units contain something that can name a type.
func (s *Scanner) hasType(units []unit) bool {
	for _, u := range units {
		switch {
		case u.is(token.Ident), u.isAngle():
			if u.opaque || !specifierWords[s.toks[u.first].Text] {
				return true
			}
		case !u.group && u.kind.IsAggregate():
			return true
		}
	}
	return false
}

// classify is the declarator shape classifier: it walks the units once,
// remembering the last name candidate, and stops at the first terminator.
func (s *Scanner) classify(units []unit) shape {
	best := shape{kind: shapeNone, nameUnit: -1}
	found := false
	result := func(k shapeKind) shape {
		if !found {
			return shape{kind: shapeNone}
		}
		best.kind = k
		return best
	}

	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u.isParen():
			if fp, ok := s.funcPointer(units, i); ok {
				return fp
			}
			if found {
				return result(shapeFunction)
			}
		case u.isBracket(), u.isBrace(), u.is(token.Assign):
			return result(shapeVariable)
		case u.is(token.Colon):
			return result(shapeBitfield)
		case u.is(token.KwOperator):
			sh, next := s.operatorName(units, i)
			best, found = sh, true
			i = next - 1
		case u.is(token.Tilde) && i+1 < len(units) && units[i+1].isNameIdent():
			nameTok := units[i+1].first
			best = shape{
				nameUnit: i,
				nameTok:  u.first,
				span:     s.toks[u.first].Span.Cover(s.toks[nameTok].Span),
				name:     "~" + s.toks[nameTok].Text,
				dtor:     true,
			}
			found = true
			i++
		case u.isNameIdent():
			best = shape{
				nameUnit: i,
				nameTok:  u.first,
				span:     s.toks[u.first].Span,
				name:     s.toks[u.first].Text,
			}
			found = true
		}
	}
	return result(shapeVariable)
}

// operatorName builds the name starting at the `operator` unit and returns
// the index of the parameter list that follows it.
func (s *Scanner) operatorName(units []unit, at int) (shape, int) {
	p := at + 1
	if p+1 < len(units) && units[p].isParen() && units[p+1].isParen() {
		p++ // operator()
	} else {
		for p < len(units) && !units[p].isParen() {
			p++
		}
	}
	var b strings.Builder
	b.WriteString("operator")
	conv := false
	for j := at + 1; j < p; j++ {
		txt := s.textOf(units[j])
		if txt == "" {
			continue
		}
		if c := txt[0]; c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			b.WriteByte(' ')
			if w := s.toks[units[j].first].Text; w != "new" && w != "delete" {
				conv = true
			}
		}
		b.WriteString(txt)
	}
	lastTok := units[at].last
	if p-1 > at {
		lastTok = units[p-1].last
	}
	return shape{
		nameUnit: at,
		nameTok:  units[at].first,
		span:     s.toks[units[at].first].Span.Cover(s.toks[lastTok].Span),
		name:     b.String(),
		convOp:   conv,
	}, p
}

// funcPointer recognizes `(*name)(...)`, `(&name)[...]` and `(C::*name)(...)`.
func (s *Scanner) funcPointer(units []unit, at int) (shape, bool) {
	if at+1 >= len(units) || !(units[at+1].isParen() || units[at+1].isBracket()) {
		return shape{}, false
	}
	in := s.inner(units[at])
	if len(in) < 2 {
		return shape{}, false
	}
	k := 0
	for k+1 < len(in) && s.toks[in[k]].Kind == token.Ident && s.toks[in[k+1]].Kind == token.ColonColon {
		k += 2
	}
	if k >= len(in) {
		return shape{}, false
	}
	switch s.toks[in[k]].Kind {
	case token.Star, token.Amp, token.AndAnd:
	default:
		return shape{}, false
	}
	nameTok := -1
	for _, ti := range in[k:] {
		if s.toks[ti].Kind == token.Ident {
			nameTok = ti
		}
		if s.toks[ti].Kind == token.LParen || s.toks[ti].Kind == token.LBracket {
			break
		}
	}
	if nameTok < 0 {
		return shape{}, false
	}
	return shape{
		kind:     shapeFuncPointer,
		nameUnit: at,
		nameTok:  nameTok,
		span:     s.toks[nameTok].Span,
		name:     s.toks[nameTok].Text,
	}, true
}
