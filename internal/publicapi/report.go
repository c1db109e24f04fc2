package publicapi

import (
	"fmt"
	"sort"

	"cxxdoc/internal/decl"
	"cxxdoc/internal/diag"
	"cxxdoc/internal/source"
)

// Item is one public-API candidate.
type Item struct {
	Kind       string `json:"kind" yaml:"kind" msgpack:"kind"`
	Name       string `json:"name" yaml:"name" msgpack:"name"`
	Visibility string `json:"visibility" yaml:"visibility" msgpack:"visibility"`
	Documented bool   `json:"documented" yaml:"documented" msgpack:"documented"`
	Line       uint32 `json:"line" yaml:"line" msgpack:"line"`
	Column     uint32 `json:"column" yaml:"column" msgpack:"column"`
}

// Finding is a diagnostic resolved to a position, detached from the FileSet
// so that reports can be cached and rendered without the source.
type Finding struct {
	Severity string `json:"severity" yaml:"severity" msgpack:"severity"`
	Code     string `json:"code" yaml:"code" msgpack:"code"`
	Message  string `json:"message" yaml:"message" msgpack:"message"`
	Line     uint32 `json:"line" yaml:"line" msgpack:"line"`
	Column   uint32 `json:"column" yaml:"column" msgpack:"column"`
}

// Issue is one "Undocumented API" finding.
type Issue struct {
	Line    uint32 `json:"line" yaml:"line"`
	Name    string `json:"name" yaml:"name"`
	Message string `json:"message" yaml:"message"`
}

// Report is the per-file result.
type Report struct {
	File        string              `json:"file" yaml:"file" msgpack:"file"`
	Items       []Item              `json:"items" yaml:"items" msgpack:"items"`
	Total       int                 `json:"total" yaml:"total" msgpack:"total"`
	Documented  int                 `json:"documented" yaml:"documented" msgpack:"documented"`
	ByKind      map[string][]string `json:"undocumented_by_kind" yaml:"undocumented_by_kind" msgpack:"by_kind"`
	Diagnostics []Finding           `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty" msgpack:"diagnostics"`
	// Partial is set when a lexical or structural error was recorded; the
	// counts are still meaningful but may miss declarations.
	Partial bool `json:"partial" yaml:"partial" msgpack:"partial"`
}

// PositionFunc resolves a byte offset of the analyzed file.
type PositionFunc func(off uint32) source.LineCol

// Build classifies recs under p and aggregates the candidates into a Report.
// Records must already be resolved by the attachment pass.
func Build(file string, recs []decl.Record, pos PositionFunc, p Policy, diags []diag.Diagnostic) Report {
	rep := Report{
		File:   file,
		Items:  []Item{},
		ByKind: map[string][]string{},
	}
	for _, i := range p.Candidates(recs) {
		r := recs[i]
		lc := pos(r.Span.Start)
		rep.Items = append(rep.Items, Item{
			Kind:       r.Kind.String(),
			Name:       r.Name,
			Visibility: r.Visibility.String(),
			Documented: r.Documented,
			Line:       lc.Line,
			Column:     lc.Col,
		})
		rep.Total++
		if r.Documented {
			rep.Documented++
			continue
		}
		k := r.Kind.String()
		rep.ByKind[k] = append(rep.ByKind[k], r.Name)
	}
	rep.Diagnostics = Findings(diags, pos)
	for _, d := range diags {
		if d.MarksPartial() {
			rep.Partial = true
		}
	}
	return rep
}

// Findings converts diagnostics to positioned findings in a stable order.
func Findings(diags []diag.Diagnostic, pos PositionFunc) []Finding {
	if len(diags) == 0 {
		return nil
	}
	sorted := make([]diag.Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Primary.Start != sorted[j].Primary.Start {
			return sorted[i].Primary.Start < sorted[j].Primary.Start
		}
		return sorted[i].Code < sorted[j].Code
	})
	out := make([]Finding, 0, len(sorted))
	for _, d := range sorted {
		lc := source.LineCol{}
		if pos != nil {
			lc = pos(d.Primary.Start)
		}
		out = append(out, Finding{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Line:     lc.Line,
			Column:   lc.Col,
		})
	}
	return out
}

// Undocumented returns the undocumented candidates in source order.
func (r Report) Undocumented() []Item {
	var out []Item
	for _, it := range r.Items {
		if !it.Documented {
			out = append(out, it)
		}
	}
	return out
}

// Issues returns one issue per undocumented candidate.
func (r Report) Issues() []Issue {
	var out []Issue
	for _, it := range r.Undocumented() {
		out = append(out, Issue{
			Line:    it.Line,
			Name:    it.Name,
			Message: fmt.Sprintf("Undocumented API: %s", it.Name),
		})
	}
	return out
}

// Coverage is the documented share in percent; a file without public API
// is fully covered.
func (r Report) Coverage() float64 {
	return Coverage(r.Documented, r.Total)
}

// Coverage computes documented/total in percent.
func Coverage(documented, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(documented) * 100 / float64(total)
}

// Kinds returns the keys of ByKind in a stable order.
func (r Report) Kinds() []string {
	out := make([]string, 0, len(r.ByKind))
	for _, k := range decl.Kinds() {
		if _, ok := r.ByKind[k.String()]; ok {
			out = append(out, k.String())
		}
	}
	return out
}
