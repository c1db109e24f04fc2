package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"cxxdoc/internal/diag"
	"cxxdoc/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("const char* s = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/include/test.h", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 16, End: 36},
		"Unterminated string literal",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{name: "Absolute path", mode: PathModeAbsolute, contains: "/home/user/project/include/test.h"},
		{name: "Relative path", mode: PathModeRelative, contains: "include/test.h"},
		{name: "Basename only", mode: PathModeBasename, contains: "test.h:1:17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR") {
				t.Error("Expected ERROR in output")
			}
			if !strings.Contains(output, "LEX1002") {
				t.Error("Expected LEX1002 code in output")
			}
			if !strings.Contains(output, "Unterminated string") {
				t.Error("Expected error message in output")
			}
		})
	}
}

// TestPathModeAuto проверяет авто-режим выбора пути
func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "Short path - as is", path: "test.h", expected: "test.h"},
		{name: "Long absolute path - basename", path: "/very/long/absolute/path/to/some/nested/directory/file.h", expected: "file.h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileID := fs.AddVirtual(tt.path, []byte("int x = 42 @\n"))

			bag := diag.NewBag(10)
			bag.Add(diag.New(
				diag.SevWarning,
				diag.LexUnknownChar,
				source.Span{File: fileID, Start: 11, End: 12},
				"Test warning",
			))

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
			output := buf.String()

			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.expected, output)
			}
			if strings.Contains(output, "/very/") {
				t.Errorf("long absolute path should be shortened, got:\n%s", output)
			}
		})
	}
}

func TestPrettySnippetGolden(t *testing.T) {
	tests := []struct {
		name    string
		content string
		start   uint32
		end     uint32
		context int8
		want    string
	}{
		{
			name:    "ascii",
			content: "int x = \"abc\n",
			start:   8,
			end:     12,
			want: "t.h:1:9: ERROR LEX1002: boom\n" +
				"1 | int x = \"abc\n" +
				"  |         ^^^^\n",
		},
		{
			name:    "wide runes",
			content: "x = \"日本\n",
			start:   4,
			end:     11,
			want: "t.h:1:5: ERROR LEX1002: boom\n" +
				"1 | x = \"日本\n" +
				"  |     ^^^^^\n",
		},
		{
			name:    "tab kept",
			content: "\tint \"a\n",
			start:   5,
			end:     7,
			want: "t.h:1:6: ERROR LEX1002: boom\n" +
				"1 | \tint \"a\n" +
				"  | \t    ^^\n",
		},
		{
			name:    "context line",
			content: "int a;\nint \"b\n",
			start:   11,
			end:     13,
			context: 1,
			want: "t.h:2:5: ERROR LEX1002: boom\n" +
				"1 | int a;\n" +
				"2 | int \"b\n" +
				"  |     ^^\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			id := fs.AddVirtual("t.h", []byte(tt.content))
			bag := diag.NewBag(0)
			bag.Add(diag.NewError(diag.LexUnterminatedString, source.Span{File: id, Start: tt.start, End: tt.end}, "boom"))

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: tt.context})
			if got := buf.String(); got != tt.want {
				t.Errorf("output mismatch\nwant:\n%q\ngot:\n%q", tt.want, got)
			}
		})
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.h", []byte("class A {\nint x;\n"))

	bag := diag.NewBag(4)
	d := diag.NewError(diag.StrUnclosedContext, source.Span{File: id, Start: 17, End: 17}, "class body is never closed")
	d = d.WithNote(source.Span{File: id, Start: 8, End: 9}, "opened here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	out := buf.String()
	if !strings.Contains(out, "STR2003") {
		t.Errorf("missing code:\n%s", out)
	}
	if !strings.Contains(out, "note: n.h:1:9: opened here") {
		t.Errorf("missing note:\n%s", out)
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes printed without ShowNotes:\n%s", buf.String())
	}
}

func TestPrettyWidthClipsSourceLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("w.h", []byte("int a = @; // a long trailing comment\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: 8, End: 9}, "unknown character"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Width: 12})
	if strings.Contains(buf.String(), "trailing comment") {
		t.Errorf("line not clipped:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "…") {
		t.Errorf("missing ellipsis:\n%s", buf.String())
	}
}

func TestParsePathMode(t *testing.T) {
	for _, m := range []PathMode{PathModeAuto, PathModeAbsolute, PathModeRelative, PathModeBasename} {
		if got := ParsePathMode(m.String()); got != m {
			t.Errorf("ParsePathMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if ParsePathMode("bogus") != PathModeAuto {
		t.Error("unknown mode must fall back to auto")
	}
}
