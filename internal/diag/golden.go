package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"cxxdoc/internal/source"
)

// shortLine is one rendered line of the short format.
type shortLine struct {
	path      string
	line, col uint32
	label     string // severity or "note"
	code      string
	msg       string
}

// FormatShort renders diagnostics one per line as
// "severity CODE path:line:col message", sorted by position. Paths are
// relative to the base dir of fs. Used by golden tests and --diagnostics=short.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	lines := make([]shortLine, 0, len(diags))
	for _, d := range diags {
		code := d.Code.ID()
		if l, ok := locate(fs, d.Primary); ok {
			l.label, l.code, l.msg = strings.ToLower(d.Severity.String()), code, oneLine(d.Message)
			lines = append(lines, l)
		}
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			if l, ok := locate(fs, n.Span); ok {
				l.label, l.code, l.msg = "note", code, oneLine(n.Msg)
				lines = append(lines, l)
			}
		}
	}
	slices.SortStableFunc(lines, func(a, b shortLine) int {
		return cmp.Or(
			cmp.Compare(a.path, b.path),
			cmp.Compare(a.line, b.line),
			cmp.Compare(a.col, b.col),
			cmp.Compare(a.label, b.label),
			cmp.Compare(a.code, b.code),
			cmp.Compare(a.msg, b.msg),
		)
	})

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", l.label, l.code, l.path, l.line, l.col, l.msg)
	}
	return b.String()
}

// locate resolves sp; spans of files missing from fs are skipped.
func locate(fs *source.FileSet, sp source.Span) (l shortLine, ok bool) {
	defer func() {
		if recover() != nil {
			l, ok = shortLine{}, false
		}
	}()
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	path := filepath.ToSlash(f.FormatPath("relative", fs.BaseDir()))
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	return shortLine{path: path, line: start.Line, col: start.Col}, true
}

func oneLine(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	return strings.TrimSpace(strings.NewReplacer("\r", " ", "\n", " ").Replace(msg))
}
