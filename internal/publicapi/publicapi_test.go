package publicapi

import (
	"testing"

	"cxxdoc/internal/decl"
	"cxxdoc/internal/diag"
	"cxxdoc/internal/source"
)

func lineOnly(off uint32) source.LineCol { return source.LineCol{Line: off/100 + 1, Col: off%100 + 1} }

func record(kind decl.Kind, name string, vis decl.Visibility, enclosing int, off uint32, documented bool) decl.Record {
	return decl.Record{
		Kind:       kind,
		Name:       name,
		Visibility: vis,
		Enclosing:  enclosing,
		Span:       source.Span{Start: off, End: off + uint32(len(name))},
		Documented: documented,
	}
}

func TestIsCandidate(t *testing.T) {
	recs := []decl.Record{
		record(decl.KindClass, "Outer", decl.Public, decl.NoRecord, 0, true),
		record(decl.KindStruct, "Hidden", decl.Private, 0, 100, true),
		record(decl.KindField, "deep", decl.Public, 1, 200, true),
		record(decl.KindStruct, "Prot", decl.Protected, 0, 300, false),
		record(decl.KindField, "member", decl.Public, 3, 400, false),
		record(decl.KindUnion, "", decl.Public, 0, 500, false),
		record(decl.KindField, "anonMember", decl.Public, 5, 600, false),
		record(decl.KindFunction, "Outer::method", decl.Public, decl.NoRecord, 700, false),
	}
	recs[7].Qualified = true

	tests := []struct {
		idx       int
		protected bool
		want      bool
	}{
		{0, true, true},
		{1, true, false},
		{2, true, false},
		{3, true, true},
		{3, false, false},
		{4, true, true},
		{4, false, false},
		{5, true, false},
		{6, true, true},
		{7, true, false},
	}
	for _, tt := range tests {
		p := Policy{IncludeProtected: tt.protected}
		if got := p.IsCandidate(recs, tt.idx); got != tt.want {
			t.Errorf("IsCandidate(%s, protected=%v) = %v, want %v", recs[tt.idx].Name, tt.protected, got, tt.want)
		}
	}
}

func TestBuildAggregates(t *testing.T) {
	recs := []decl.Record{
		record(decl.KindClass, "C", decl.Public, decl.NoRecord, 0, true),
		record(decl.KindFunction, "f", decl.Public, 0, 104, false),
		record(decl.KindField, "x", decl.Public, 0, 210, false),
		record(decl.KindField, "secret", decl.Private, 0, 300, false),
	}
	rep := Build("a.h", recs, lineOnly, DefaultPolicy(), nil)

	if rep.Total != 3 || rep.Documented != 1 {
		t.Fatalf("total=%d documented=%d", rep.Total, rep.Documented)
	}
	if got := rep.Coverage(); got < 33.3 || got > 33.4 {
		t.Errorf("coverage = %v", got)
	}
	if it := rep.Items[1]; it.Line != 2 || it.Column != 5 || it.Kind != "function" {
		t.Errorf("item f = %+v", it)
	}
	if kinds := rep.Kinds(); len(kinds) != 2 || kinds[0] != "function" || kinds[1] != "field" {
		t.Errorf("kinds = %v", kinds)
	}
	issues := rep.Issues()
	if len(issues) != 2 || issues[0].Message != "Undocumented API: f" || issues[1].Line != 3 {
		t.Errorf("issues = %+v", issues)
	}
	if rep.Partial {
		t.Error("no diagnostics, report must not be partial")
	}
}

func TestBuildPartialAndFindings(t *testing.T) {
	diags := []diag.Diagnostic{
		diag.NewError(diag.StrUnclosedContext, source.Span{Start: 150, End: 151}, "never closed"),
		diag.NewError(diag.LexUnknownChar, source.Span{Start: 20, End: 21}, "unknown character"),
	}
	rep := Build("a.h", nil, lineOnly, DefaultPolicy(), diags)
	if !rep.Partial {
		t.Fatal("structural error must mark the report partial")
	}
	if len(rep.Diagnostics) != 2 || rep.Diagnostics[0].Code != "LEX1001" || rep.Diagnostics[1].Line != 2 {
		t.Errorf("findings = %+v", rep.Diagnostics)
	}
	if rep.Total != 0 || rep.Coverage() != 100 {
		t.Errorf("empty report: total=%d coverage=%v", rep.Total, rep.Coverage())
	}
	if rep.Items == nil || rep.ByKind == nil {
		t.Error("empty collections must be non-nil for stable JSON")
	}
}

func TestWarningsDoNotMarkPartial(t *testing.T) {
	diags := []diag.Diagnostic{diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{}, "odd")}
	if Build("a.h", nil, lineOnly, DefaultPolicy(), diags).Partial {
		t.Error("warnings must not mark the report partial")
	}
}

func TestPolicyKey(t *testing.T) {
	if DefaultPolicy().Key() == (Policy{}).Key() {
		t.Error("policies with different settings share a cache key")
	}
}
