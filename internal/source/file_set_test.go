package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("api.h", []byte("int a;"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}
	id2 := fs.Add("api.h", []byte("int b;"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("api.h")
	if !exists || latestID != id2 {
		t.Fatalf("Expected latest ID %d, got %d (exists=%v)", id2, latestID, exists)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "int a;" {
		t.Errorf("Expected first file content to be preserved, got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.h", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestResolvePositions(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("pos.h", []byte("int a;\n  int b;\n"))
	start, end := fs.Resolve(Span{File: id, Start: 11, End: 12})
	if start.Line != 2 || start.Col != 5 {
		t.Errorf("start = %+v, want 2:5", start)
	}
	if end.Line != 2 || end.Col != 6 {
		t.Errorf("end = %+v, want 2:6", end)
	}
	f := fs.Get(id)
	if got := f.LineOf(0); got != 1 {
		t.Errorf("LineOf(0) = %d, want 1", got)
	}
	if got := f.LineOf(6); got != 1 {
		t.Errorf("newline belongs to the line it ends, got line %d", got)
	}
	if got := f.LineOf(7); got != 2 {
		t.Errorf("LineOf(7) = %d, want 2", got)
	}
}

func TestGetLine(t *testing.T) {
	f := &File{Content: []byte("first\nsecond\nthird")}
	f.LineIdx = buildLineIndex(f.Content)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.h")
	raw := []byte("\xEF\xBB\xBFint a;\r\nint b;\r\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "int a;\nint b;\n" {
		t.Errorf("unexpected content %q", file.Content)
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected BOM and CRLF flags, got %b", file.Flags)
	}
}

func TestLoadWithEncodingLatin1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.h")
	// "/// caf\xe9" в latin1
	if err := os.WriteFile(path, []byte("/// caf\xe9\nint a;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.LoadWithEncoding(path, "latin1")
	if err != nil {
		t.Fatalf("LoadWithEncoding: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "/// café\nint a;\n" {
		t.Errorf("unexpected content %q", file.Content)
	}
	if file.Flags&FileTranscoded == 0 {
		t.Error("expected FileTranscoded flag")
	}
}

func TestLoadWithUnknownEncoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.h")
	if err := os.WriteFile(path, []byte("int a;"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileSet().LoadWithEncoding(path, "klingon-8"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}
