package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cxxdoc/internal/diag"
	"cxxdoc/internal/source"
)

// palette holds the colors of one rendering. Each renderer gets its own so
// that disabling color for one writer never leaks into another.
type palette struct {
	err, warn, info, path, code, gutter, caret, ok *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgBlue, color.Bold),
		path:   color.New(color.Bold),
		code:   color.New(color.FgMagenta),
		gutter: color.New(color.FgCyan),
		caret:  color.New(color.FgRed, color.Bold),
		ok:     color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.code, p.gutter, p.caret, p.ok} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s string) *color.Color {
	switch s {
	case diag.SevError.String():
		return p.err
	case diag.SevWarning.String():
		return p.warn
	default:
		return p.info
	}
}

// Pretty writes the diagnostics of bag in the order they are stored:
//
//	path:line:col: SEV CODE: message
//	  12 | source line
//	     |     ^^^^
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		path := displayPath(f, fs, opts.PathMode)

		fmt.Fprintf(w, "%s: %s %s: %s\n",
			pal.path.Sprintf("%s:%d:%d", path, start.Line, start.Col),
			pal.severity(d.Severity.String()).Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()),
			d.Message,
		)
		if f != nil {
			writeSnippet(w, f, d.Primary, opts, pal)
		}

		if opts.ShowNotes {
			for _, n := range d.Notes {
				nf := fs.Get(n.Span.File)
				np, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", displayPath(nf, fs, opts.PathMode), np.Line, np.Col, n.Msg)
			}
		}
	}
}

// writeSnippet prints opts.Context lines before the primary line, the line
// itself and a caret underline. Columns are byte based; the underline is
// laid out by display width so wide runes and tabs stay aligned.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, opts PrettyOpts, pal palette) {
	start := f.Position(sp.Start)
	end := f.Position(sp.End)
	if start.Line == 0 {
		return
	}

	first := start.Line
	if ctx := uint32(max(opts.Context, 0)); ctx < first {
		first -= ctx
	} else {
		first = 1
	}
	gutterWidth := len(fmt.Sprint(start.Line))

	for ln := first; ln <= start.Line; ln++ {
		text := f.GetLine(ln)
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), clip(text, opts.Width))
	}

	line := f.GetLine(start.Line)
	from := int(start.Col) - 1
	to := len(line)
	if end.Line == start.Line && int(end.Col)-1 <= len(line) {
		to = int(end.Col) - 1
	}
	from = min(max(from, 0), len(line))
	to = max(to, from)

	pad := underlinePad(line[:from])
	width := runewidth.StringWidth(line[from:to])
	if width == 0 {
		width = 1
	}
	fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), pad, pal.caret.Sprint(strings.Repeat("^", width)))
}

// underlinePad keeps tabs and replaces everything else by spaces of the same
// display width.
func underlinePad(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}

// padRight pads s with spaces to the display width n.
func padRight(s string, n int) string {
	return runewidth.FillRight(s, n)
}
