package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"cxxdoc/internal/driver"
	"cxxdoc/internal/publicapi"
)

// SummaryJSON is the summary block of JSON and YAML reports.
type SummaryJSON struct {
	driver.Summary `yaml:",inline"`
	Undocumented   int     `json:"undocumented" yaml:"undocumented"`
	Coverage       float64 `json:"coverage" yaml:"coverage"`
}

// ReportOutput is the root of JSON and YAML reports.
type ReportOutput struct {
	Files   []publicapi.Report `json:"files" yaml:"files"`
	Summary SummaryJSON        `json:"summary" yaml:"summary"`
}

// BuildReportOutput collects the reports of res in file order.
func BuildReportOutput(res *driver.Result) ReportOutput {
	out := ReportOutput{Files: make([]publicapi.Report, 0, len(res.Files))}
	for _, f := range res.Files {
		out.Files = append(out.Files, f.Report)
	}
	out.Summary = SummaryJSON{
		Summary:      res.Summary,
		Undocumented: res.Summary.Undocumented(),
		Coverage:     round2(res.Summary.Coverage()),
	}
	return out
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

// ReportJSON writes res as indented JSON.
func ReportJSON(w io.Writer, res *driver.Result) error {
	return writeJSON(w, BuildReportOutput(res))
}

// ReportYAML writes res as YAML.
func ReportYAML(w io.Writer, res *driver.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(BuildReportOutput(res)); err != nil {
		return err
	}
	return enc.Close()
}

// ReportIssues writes one line per undocumented item:
//
//	path:line: Undocumented API: name
func ReportIssues(w io.Writer, res *driver.Result) error {
	for _, f := range res.Files {
		for _, is := range f.Report.Issues() {
			if _, err := fmt.Fprintf(w, "%s:%d: %s\n", f.Report.File, is.Line, is.Message); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReportPretty writes a per-file table followed by the summary.
func ReportPretty(w io.Writer, res *driver.Result, opts ReportOpts) error {
	pal := newPalette(opts.Color)
	var b strings.Builder

	if !opts.SummaryOnly {
		pathWidth := 0
		for _, f := range res.Files {
			pathWidth = max(pathWidth, displayWidth(f.Report.File))
		}
		for _, f := range res.Files {
			writeFileReport(&b, f, pathWidth, opts, pal)
		}
		if len(res.Files) > 0 {
			b.WriteByte('\n')
		}
	}

	s := res.Summary
	fmt.Fprintf(&b, "%s %d files, %d/%d documented (%s), %d undocumented",
		pal.path.Sprint("summary:"),
		s.Files, s.Documented, s.Total,
		coverageColor(pal, s.Coverage()).Sprintf("%.2f%%", s.Coverage()),
		s.Undocumented(),
	)
	if s.Partial > 0 {
		fmt.Fprintf(&b, ", %s", pal.warn.Sprintf("%d partial", s.Partial))
	}
	if s.Cached > 0 {
		fmt.Fprintf(&b, ", %d cached", s.Cached)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func writeFileReport(b *strings.Builder, f driver.FileResult, pathWidth int, opts ReportOpts, pal palette) {
	rep := f.Report
	flags := ""
	if rep.Partial {
		flags += " " + pal.warn.Sprint("partial")
	}
	if f.Cached {
		flags += " cached"
	}
	fmt.Fprintf(b, "%s  %4d/%-4d %s%s\n",
		pal.path.Sprint(padRight(rep.File, pathWidth)),
		rep.Documented, rep.Total,
		coverageColor(pal, rep.Coverage()).Sprintf("%6.2f%%", rep.Coverage()),
		flags,
	)

	for _, it := range rep.Items {
		if it.Documented && !opts.Verbose {
			continue
		}
		mark := pal.err.Sprint("-")
		if it.Documented {
			mark = pal.ok.Sprint("+")
		}
		fmt.Fprintf(b, "    %s %-8s %-10s %s\n", mark, fmt.Sprintf("%d:%d", it.Line, it.Column), it.Kind, it.Name)
	}
	for _, d := range rep.Diagnostics {
		fmt.Fprintf(b, "    %s: %s %s: %s\n",
			fmt.Sprintf("%s:%d:%d", rep.File, d.Line, d.Column),
			pal.severity(d.Severity).Sprint(d.Severity),
			pal.code.Sprint(d.Code),
			d.Message,
		)
	}
}

func coverageColor(pal palette, pct float64) *color.Color {
	switch {
	case pct >= 100:
		return pal.ok
	case pct >= 50:
		return pal.warn
	default:
		return pal.err
	}
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
