package attach_test

import (
	"testing"

	"cxxdoc/internal/attach"
	"cxxdoc/internal/decl"
	"cxxdoc/internal/source"
	"cxxdoc/internal/token"
)

// seq builds synthetic token sequences in which every token sits on an
// explicit line. Offsets encode the line as line*1000 + column.
type seq struct {
	toks []token.Token
	col  map[uint32]uint32
}

func (s *seq) add(kind token.Kind, text string, line uint32) int {
	if s.col == nil {
		s.col = make(map[uint32]uint32)
	}
	start := line*1000 + s.col[line]
	s.col[line] += uint32(len(text)) + 1
	s.toks = append(s.toks, token.Token{
		Kind: kind,
		Span: source.Span{Start: start, End: start + uint32(len(text))},
		Text: text,
	})
	return len(s.toks) - 1
}

func (s *seq) comment(form token.CommentForm, placement token.Placement, text string, line uint32) int {
	i := s.add(token.Comment, text, line)
	s.toks[i].Comment = token.CommentInfo{Form: form, Placement: placement, Doc: form.IsDoc()}
	return i
}

func lines(off uint32) uint32 { return off / 1000 }

func rec(name string, nameTok, ownTok, leadTok, idx int) decl.Record {
	return decl.Record{
		Kind:            decl.KindField,
		Name:            name,
		NameTok:         nameTok,
		OwnTok:          ownTok,
		LeadTok:         leadTok,
		DeclaratorIndex: idx,
		Enclosing:       decl.NoRecord,
	}
}

// int attr1, /**< doc */ attr2; ///< doc
func TestTrailingPerDeclarator(t *testing.T) {
	var s seq
	typ := s.add(token.Ident, "int", 1)
	a1 := s.add(token.Ident, "attr1", 1)
	s.add(token.Comma, ",", 1)
	c1 := s.comment(token.FormTrailingBlock, token.TrailingInline, "/**< doc */", 1)
	a2 := s.add(token.Ident, "attr2", 1)
	s.add(token.Semicolon, ";", 1)
	c2 := s.comment(token.FormTrailingLine, token.TrailingInline, "///< doc", 1)

	out := attach.Resolve(s.toks, lines, []decl.Record{
		rec("attr1", a1, a1, typ, 0),
		rec("attr2", a2, a2, decl.NoRecord, 1),
	})
	if !out[0].Documented || out[0].DocTok != c1 {
		t.Fatalf("attr1: %+v", out[0])
	}
	if !out[1].Documented || out[1].DocTok != c2 {
		t.Fatalf("attr2: %+v", out[1])
	}
}

func TestLeadingSharedBlockOnlyForFirst(t *testing.T) {
	var s seq
	doc := s.comment(token.FormDocBlock, token.Leading, "/** shared */", 1)
	typ := s.add(token.Ident, "int", 2)
	a := s.add(token.Ident, "a", 2)
	s.add(token.Comma, ",", 2)
	b := s.add(token.Ident, "b", 2)
	s.add(token.Semicolon, ";", 2)

	out := attach.Resolve(s.toks, lines, []decl.Record{
		rec("a", a, a, typ, 0),
		rec("b", b, b, decl.NoRecord, 1),
	})
	if !out[0].Documented || out[0].DocTok != doc {
		t.Fatalf("a must take the statement comment: %+v", out[0])
	}
	if out[1].Documented {
		t.Fatal("b must not inherit the statement comment")
	}
}

func TestLeadingBeforeOwnToken(t *testing.T) {
	// int
	// /** v1 */ v1,
	// /** v2 */ v2;
	var s seq
	typ := s.add(token.Ident, "int", 1)
	d1 := s.comment(token.FormDocBlock, token.Leading, "/** v1 */", 2)
	v1 := s.add(token.Ident, "v1", 2)
	s.add(token.Comma, ",", 2)
	d2 := s.comment(token.FormDocBlock, token.Leading, "/** v2 */", 3)
	v2 := s.add(token.Ident, "v2", 3)
	s.add(token.Semicolon, ";", 3)

	out := attach.Resolve(s.toks, lines, []decl.Record{
		rec("v1", v1, v1, typ, 0),
		rec("v2", v2, v2, decl.NoRecord, 1),
	})
	if out[0].DocTok != d1 || out[1].DocTok != d2 {
		t.Fatalf("got doc tokens %d/%d, want %d/%d", out[0].DocTok, out[1].DocTok, d1, d2)
	}
}

func TestTrailingWinsOverLeading(t *testing.T) {
	var s seq
	lead := s.comment(token.FormDocLine, token.Leading, "/// lead", 1)
	typ := s.add(token.Ident, "int", 2)
	x := s.add(token.Ident, "x", 2)
	s.add(token.Semicolon, ";", 2)
	trail := s.comment(token.FormTrailingLine, token.TrailingInline, "///< trail", 2)

	out := attach.Resolve(s.toks, lines, []decl.Record{rec("x", x, x, typ, 0)})
	if out[0].DocTok != trail {
		t.Fatalf("DocTok = %d, want trailing %d (lead %d)", out[0].DocTok, trail, lead)
	}
}

func TestPlainCommentsNeverDocument(t *testing.T) {
	var s seq
	doc := s.comment(token.FormDocLine, token.Leading, "/// doc", 1)
	s.comment(token.FormLine, token.Leading, "// plain", 2)
	typ := s.add(token.Ident, "int", 3)
	x := s.add(token.Ident, "x", 3)
	s.add(token.Semicolon, ";", 3)
	s.comment(token.FormLine, token.Leading, "// plain trailing", 3)
	y := s.add(token.Ident, "y", 4)
	s.add(token.Semicolon, ";", 4)

	out := attach.Resolve(s.toks, lines, []decl.Record{
		rec("x", x, x, typ, 0),
		rec("y", y, y, y, 0),
	})
	if out[0].DocTok != doc {
		t.Fatalf("plain comment in between must be skipped: %+v", out[0])
	}
	if out[1].Documented {
		t.Fatal("a plain trailing comment must not document")
	}
}

func TestCodeBetweenBlocksAttachment(t *testing.T) {
	var s seq
	s.comment(token.FormDocLine, token.Leading, "/// orphan", 1)
	s.add(token.RBrace, "}", 2)
	typ := s.add(token.Ident, "int", 3)
	x := s.add(token.Ident, "x", 3)
	s.add(token.Semicolon, ";", 3)

	out := attach.Resolve(s.toks, lines, []decl.Record{rec("x", x, x, typ, 0)})
	if out[0].Documented {
		t.Fatal("a closing brace between comment and declaration breaks attachment")
	}
}

func TestNamedRecordsClaimFirst(t *testing.T) {
	// /** doc */ typedef struct { } T;
	var s seq
	doc := s.comment(token.FormDocBlock, token.Leading, "/** doc */", 1)
	td := s.add(token.KwTypedef, "typedef", 2)
	kw := s.add(token.KwStruct, "struct", 2)
	s.add(token.LBrace, "{", 2)
	s.add(token.RBrace, "}", 2)
	name := s.add(token.Ident, "T", 2)
	s.add(token.Semicolon, ";", 2)

	anon := rec("", kw, kw, td, 0)
	anon.Kind = decl.KindStruct
	typedef := rec("T", name, name, td, 0)
	typedef.Kind = decl.KindTypedef

	out := attach.Resolve(s.toks, lines, []decl.Record{anon, typedef})
	if out[0].Documented {
		t.Fatal("anonymous aggregate must not take the comment from the named typedef")
	}
	if out[1].DocTok != doc {
		t.Fatalf("typedef: %+v", out[1])
	}
}

func TestTrailingStopsAtNextName(t *testing.T) {
	// enum E { A ///< doc
	var s seq
	s.add(token.KwEnum, "enum", 1)
	e := s.add(token.Ident, "E", 1)
	s.add(token.LBrace, "{", 1)
	a := s.add(token.Ident, "A", 1)
	doc := s.comment(token.FormTrailingLine, token.TrailingInline, "///< doc", 1)

	enum := rec("E", e, e, 0, 0)
	enum.Kind = decl.KindEnum
	out := attach.Resolve(s.toks, lines, []decl.Record{enum, rec("A", a, a, a, 0)})
	if out[0].Documented {
		t.Fatal("trailing comment after the enumerator must not document the enum")
	}
	if out[1].DocTok != doc {
		t.Fatalf("enumerator: %+v", out[1])
	}
}

func TestParameterCommentDoesNotDocumentFunction(t *testing.T) {
	// void f(int a /**< a doc */); void g(); ///< g doc
	var s seq
	s.add(token.Ident, "void", 1)
	f := s.add(token.Ident, "f", 1)
	s.add(token.LParen, "(", 1)
	s.add(token.Ident, "int", 1)
	s.add(token.Ident, "a", 1)
	s.comment(token.FormTrailingBlock, token.TrailingInline, "/**< a doc */", 1)
	s.add(token.RParen, ")", 1)
	s.add(token.Semicolon, ";", 1)
	s.add(token.Ident, "void", 2)
	g := s.add(token.Ident, "g", 2)
	s.add(token.LParen, "(", 2)
	s.add(token.RParen, ")", 2)
	s.add(token.Semicolon, ";", 2)
	doc := s.comment(token.FormTrailingLine, token.TrailingInline, "///< g doc", 2)

	out := attach.Resolve(s.toks, lines, []decl.Record{rec("f", f, f, 0, 0), rec("g", g, g, 8, 0)})
	if out[0].Documented {
		t.Fatalf("parameter comment documented f: %+v", out[0])
	}
	if out[1].DocTok != doc {
		t.Fatalf("g: %+v", out[1])
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	var s seq
	typ := s.add(token.Ident, "int", 1)
	x := s.add(token.Ident, "x", 1)
	s.comment(token.FormTrailingLine, token.TrailingInline, "///< doc", 1)
	in := []decl.Record{rec("x", x, x, typ, 0)}
	out := attach.Resolve(s.toks, lines, in)
	if in[0].Documented || !out[0].Documented {
		t.Fatalf("input mutated or output missing: in=%+v out=%+v", in[0], out[0])
	}
}
