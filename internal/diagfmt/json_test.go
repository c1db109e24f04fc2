package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"cxxdoc/internal/diag"
	"cxxdoc/internal/source"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("class A {\n\tconst char* s = \"unterminated\n};\n")
	fileID := fs.AddVirtual("test.h", content)

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 27, End: 40},
		"Unterminated string literal",
	)
	d = d.WithNote(source.Span{File: fileID, Start: 0, End: 5}, "inside class")
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got count=%d len=%d", output.Count, len(output.Diagnostics))
	}

	got := output.Diagnostics[0]
	if got.Severity != "ERROR" {
		t.Errorf("Expected severity=ERROR, got %s", got.Severity)
	}
	if got.Code != "LEX1002" {
		t.Errorf("Expected code=LEX1002, got %s", got.Code)
	}
	if got.Location.File != "test.h" {
		t.Errorf("Expected file=test.h, got %s", got.Location.File)
	}
	if got.Location.StartByte != 27 || got.Location.EndByte != 40 {
		t.Errorf("unexpected bytes %d..%d", got.Location.StartByte, got.Location.EndByte)
	}
	if got.Location.StartLine != 2 || got.Location.StartCol != 18 {
		t.Errorf("Expected 2:18, got %d:%d", got.Location.StartLine, got.Location.StartCol)
	}
	if len(got.Notes) != 1 || got.Notes[0].Message != "inside class" {
		t.Errorf("unexpected notes %+v", got.Notes)
	}
}

func TestJSONMaxAndNoPositions(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.h", []byte("@ @ @\n"))

	bag := diag.NewBag(2)
	for i := range uint32(3) {
		bag.Add(diag.New(diag.SevError, diag.LexUnknownChar, source.Span{File: id, Start: 2 * i, End: 2*i + 1}, "unknown character"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Fatalf("Max not applied: %d", out.Count)
	}
	if out.Dropped != 2 {
		t.Errorf("dropped = %d, want 2 (one by the bag, one by Max)", out.Dropped)
	}
	if !out.Partial {
		t.Error("lexical errors must mark the output partial")
	}
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Error("positions must be omitted")
	}
	if out.Diagnostics[0].Notes != nil {
		t.Error("notes must be omitted")
	}
}
