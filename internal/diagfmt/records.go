package diagfmt

import (
	"fmt"
	"io"

	"cxxdoc/internal/decl"
	"cxxdoc/internal/publicapi"
	"cxxdoc/internal/source"
	"cxxdoc/internal/token"
)

// RecordJSON is one declaration record of a scan dump.
type RecordJSON struct {
	Index      int    `json:"index"`
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	Visibility string `json:"visibility"`
	Enclosing  int    `json:"enclosing"`
	Line       uint32 `json:"line"`
	Col        uint32 `json:"col"`
	Declarator int    `json:"declarator"`
	Qualified  bool   `json:"qualified,omitempty"`
	Documented bool   `json:"documented"`
	// DocLine is the line of the documenting comment, 0 when undocumented.
	DocLine   uint32 `json:"doc_line,omitempty"`
	Candidate bool   `json:"public_api"`
}

// RecordsInput bundles what the scan dump needs.
type RecordsInput struct {
	File    *source.File
	Records []decl.Record
	// DocOffset resolves DocTok to a byte offset; nil leaves DocLine empty.
	DocOffset func(tok int) (uint32, bool)
	Policy    publicapi.Policy
}

// BuildRecordsJSON converts records into their dump form.
func BuildRecordsJSON(in RecordsInput) []RecordJSON {
	out := make([]RecordJSON, 0, len(in.Records))
	for i, r := range in.Records {
		lc := in.File.Position(r.Span.Start)
		rj := RecordJSON{
			Index:      i,
			Kind:       r.Kind.String(),
			Name:       r.Name,
			Visibility: r.Visibility.String(),
			Enclosing:  r.Enclosing,
			Line:       lc.Line,
			Col:        lc.Col,
			Declarator: r.DeclaratorIndex,
			Qualified:  r.Qualified,
			Documented: r.Documented,
			Candidate:  in.Policy.IsCandidate(in.Records, i),
		}
		if r.Documented && in.DocOffset != nil {
			if off, ok := in.DocOffset(r.DocTok); ok {
				rj.DocLine = in.File.LineOf(off)
			}
		}
		out = append(out, rj)
	}
	return out
}

// FormatRecordsPretty prints every record, private ones included:
//
//	#3   15:7    public    function   publicMethod  in #0  documented@14
func FormatRecordsPretty(w io.Writer, in RecordsInput) error {
	rows := BuildRecordsJSON(in)
	nameWidth := len("<anonymous>")
	for _, r := range rows {
		nameWidth = max(nameWidth, len(r.Name))
	}
	for _, r := range rows {
		name := r.Name
		if name == "" {
			name = "<anonymous>"
		}
		encl := "-"
		if r.Enclosing != decl.NoRecord {
			encl = fmt.Sprintf("#%d", r.Enclosing)
		}
		doc := "undocumented"
		if r.Documented {
			doc = "documented"
			if r.DocLine > 0 {
				doc = fmt.Sprintf("documented@%d", r.DocLine)
			}
		}
		api := ""
		if r.Candidate {
			api = " api"
		}
		if _, err := fmt.Fprintf(w, "%-4s %-8s %-9s %-11s %s in %-4s %s%s\n",
			fmt.Sprintf("#%d", r.Index),
			fmt.Sprintf("%d:%d", r.Line, r.Col),
			r.Visibility,
			r.Kind,
			padRight(name, nameWidth),
			encl,
			doc,
			api,
		); err != nil {
			return err
		}
	}
	return nil
}

// FormatRecordsJSON writes the record dump as an indented JSON array.
func FormatRecordsJSON(w io.Writer, in RecordsInput) error {
	return writeJSON(w, BuildRecordsJSON(in))
}

// TokenOffsets adapts a token slice to RecordsInput.DocOffset.
func TokenOffsets(toks []token.Token) func(tok int) (uint32, bool) {
	return func(i int) (uint32, bool) {
		if i < 0 || i >= len(toks) {
			return 0, false
		}
		return toks[i].Span.Start, true
	}
}
