package token_test

import (
	"testing"

	"cxxdoc/internal/token"
)

func tok(k token.Kind) token.Token { return token.Token{Kind: k} }

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.Invalid:    "Invalid",
		token.EOF:        "EOF",
		token.KwClass:    "KwClass",
		token.ColonColon: "ColonColon",
		token.Comment:    "Comment",
		token.Kind(250):  "Kind(?)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestTokenCategories(t *testing.T) {
	if !tok(token.NumberLit).IsLiteral() || !tok(token.CharLit).IsLiteral() {
		t.Fatal("literal kinds must report IsLiteral")
	}
	if tok(token.Ident).IsLiteral() {
		t.Fatal("identifier is not a literal")
	}
	for _, k := range []token.Kind{token.KwClass, token.KwEnum, token.KwExtern} {
		if !tok(k).IsKeyword() {
			t.Errorf("%s must be a keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() || tok(token.NumberLit).IsKeyword() {
		t.Fatal("Ident/NumberLit are not keywords")
	}
	if !tok(token.Directive).IsTrivia() || !tok(token.Comment).IsTrivia() {
		t.Fatal("directives and comments are trivia")
	}
	if !token.KwUnion.IsAggregate() || token.KwNamespace.IsAggregate() {
		t.Fatal("IsAggregate mismatch")
	}
	if !token.KwProtected.IsAccess() || token.KwFriend.IsAccess() {
		t.Fatal("IsAccess mismatch")
	}
}

func TestCommentFormPredicates(t *testing.T) {
	cases := []struct {
		form     token.CommentForm
		doc      bool
		trailing bool
		block    bool
	}{
		{token.FormLine, false, false, false},
		{token.FormBlock, false, false, true},
		{token.FormDocLine, true, false, false},
		{token.FormDocBlock, true, false, true},
		{token.FormTrailingLine, true, true, false},
		{token.FormTrailingBlock, true, true, true},
	}
	for _, c := range cases {
		if c.form.IsDoc() != c.doc || c.form.IsTrailing() != c.trailing || c.form.IsBlock() != c.block {
			t.Errorf("%s: doc=%v trailing=%v block=%v", c.form, c.form.IsDoc(), c.form.IsTrailing(), c.form.IsBlock())
		}
	}
	doc := token.Token{Kind: token.Comment, Comment: token.CommentInfo{Form: token.FormDocLine, Doc: true}}
	if !doc.IsDoc() {
		t.Fatal("doc comment token must report IsDoc")
	}
	plain := token.Token{Kind: token.Comment, Comment: token.CommentInfo{Form: token.FormLine}}
	if plain.IsDoc() {
		t.Fatal("plain comment must not report IsDoc")
	}
}
