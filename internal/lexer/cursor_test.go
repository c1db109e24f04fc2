package lexer

import (
	"testing"

	"cxxdoc/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.h", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Fatal("expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("Peek/Bump at EOF must return 0")
	}
}

func TestPeekLookahead(t *testing.T) {
	cursor := NewCursor(createFile("abc"))
	if b0, b1, ok := cursor.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if b, ok := cursor.PeekAt(2); !ok || b != 'c' {
		t.Fatalf("PeekAt(2) = %q %v", b, ok)
	}
	if _, ok := cursor.PeekAt(3); ok {
		t.Fatal("PeekAt past the end must fail")
	}
	if !cursor.HasPrefix("abc") || cursor.HasPrefix("abcd") || cursor.HasPrefix("b") {
		t.Fatal("HasPrefix mismatch")
	}
	cursor.Bump()
	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Fatal("Peek2 must fail with one byte left")
	}
	if cursor.Window(2) != nil || string(cursor.Window(1)) != "c" {
		t.Fatal("Window must respect the limit")
	}
	cursor.Advance(10)
	if !cursor.EOF() || cursor.Off != 3 {
		t.Fatalf("Advance overshot: Off=%d", cursor.Off)
	}
}

func TestEatSplice(t *testing.T) {
	cursor := NewCursor(createFile("\\\nx\\"))
	if !cursor.EatSplice() || cursor.Peek() != 'x' {
		t.Fatalf("EatSplice did not skip the splice, Off=%d", cursor.Off)
	}
	cursor.Bump()
	if cursor.EatSplice() {
		t.Fatal("a trailing backslash is not a splice")
	}
}

// TestMarkReset проверяет работу Mark, SpanFrom и Reset
func TestMarkReset(t *testing.T) {
	file := createFile("int x;")
	cursor := NewCursor(file)
	m := cursor.Mark()
	for i := 0; i < 3; i++ {
		cursor.Bump()
	}
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 3 || sp.File != file.ID {
		t.Fatalf("SpanFrom = %+v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Fatalf("Reset left Off=%d", cursor.Off)
	}
	if !cursor.Eat('i') || cursor.Eat('x') {
		t.Fatal("Eat must consume only a matching byte")
	}
}
