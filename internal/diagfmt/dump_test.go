package diagfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"cxxdoc/internal/engine"
	"cxxdoc/internal/lexer"
	"cxxdoc/internal/publicapi"
	"cxxdoc/internal/source"
)

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.h", []byte("int x; ///< doc\n")))
	toks := lexer.New(f, lexer.Options{}).All()

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, f, toks); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"///< doc"  [trailing-line TRAILING_INLINE]`) {
		t.Errorf("comment metadata missing:\n%s", out)
	}
	if !strings.HasPrefix(out, "1:1 ") {
		t.Errorf("first token position missing:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != len(toks) {
		t.Errorf("lines = %d, tokens = %d", n, len(toks))
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.h", []byte("/** doc */\nvoid f();\n")))
	toks := lexer.New(f, lexer.Options{}).All()

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, f, toks); err != nil {
		t.Fatal(err)
	}
	var got []TokenJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != len(toks) {
		t.Fatalf("tokens = %d, want %d", len(got), len(toks))
	}
	c := got[0].Comment
	if c == nil || c.Form != "doc-block" || !c.Doc || c.Placement != "LEADING" {
		t.Errorf("unexpected comment info %+v", c)
	}
	if got[1].Comment != nil {
		t.Errorf("non-comment token carries comment info: %+v", got[1])
	}
	if got[1].Line != 2 || got[1].Col != 1 {
		t.Errorf("position = %d:%d", got[1].Line, got[1].Col)
	}
}

func TestRecordsDump(t *testing.T) {
	src := "class A {\n  int hidden;\npublic:\n  /// doc\n  void f();\n};\n"
	res := engine.AnalyzeBytes(context.Background(), "r.h", []byte(src), engine.Options{Policy: publicapi.DefaultPolicy()})
	in := RecordsInput{
		File:      res.File,
		Records:   res.Records,
		DocOffset: TokenOffsets(res.Tokens),
		Policy:    publicapi.DefaultPolicy(),
	}

	rows := BuildRecordsJSON(in)
	if len(rows) != 3 {
		t.Fatalf("records = %d, want 3: %+v", len(rows), rows)
	}
	if rows[1].Name != "hidden" || rows[1].Visibility != "private" || rows[1].Candidate {
		t.Errorf("unexpected private row %+v", rows[1])
	}
	if rows[2].Name != "f" || !rows[2].Documented || rows[2].DocLine != 4 || rows[2].Enclosing != 0 {
		t.Errorf("unexpected documented row %+v", rows[2])
	}

	var buf bytes.Buffer
	if err := FormatRecordsPretty(&buf, in); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "documented@4 api") {
		t.Errorf("pretty dump lacks doc line:\n%s", out)
	}
	if !strings.Contains(out, "hidden") || !strings.Contains(out, "private") {
		t.Errorf("pretty dump must include private records:\n%s", out)
	}
}
