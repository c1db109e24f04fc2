// Package engine runs the analysis pipeline on one file: tokenize, scan
// declarations, resolve documentation and classify the public API.
package engine

import (
	"context"
	"fmt"
	"strconv"

	"cxxdoc/internal/attach"
	"cxxdoc/internal/decl"
	"cxxdoc/internal/diag"
	"cxxdoc/internal/lexer"
	"cxxdoc/internal/publicapi"
	"cxxdoc/internal/scanner"
	"cxxdoc/internal/source"
	"cxxdoc/internal/token"
	"cxxdoc/internal/trace"
)

// SchemaVersion changes whenever the analysis can produce a different report
// for the same input. Cached reports of another schema are discarded.
const SchemaVersion uint16 = 2

// Options configures one analysis.
type Options struct {
	Policy publicapi.Policy
	// MaxDiagnostics bounds the per-file bag; <= 0 means unbounded.
	MaxDiagnostics int
	// Path overrides the file path written into the report.
	Path string
}

// Result is the full outcome for one file. Tokens, Records and Owner are kept
// for the dump commands; Report is what the driver aggregates.
type Result struct {
	File        *source.File
	Tokens      []token.Token
	Records     []decl.Record
	Owner       []int
	Diagnostics []diag.Diagnostic
	Dropped     int
	Report      publicapi.Report
}

// Analyze runs every pass over f. It never fails: lexical and structural
// problems end up as diagnostics and mark the report partial.
func Analyze(ctx context.Context, f *source.File, opts Options) *Result {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID

	bag := diag.NewBag(opts.MaxDiagnostics)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	scanned, records := scanAndAttach(f, rep, tracer, parent)

	bag.Sort()
	diags := bag.Items()

	path := opts.Path
	if path == "" {
		path = f.Path
	}
	classifySpan := trace.Begin(tracer, trace.ScopePass, "classify", parent)
	report := publicapi.Build(path, records, f.Position, opts.Policy, diags)
	if bag.Truncated() {
		report.Partial = true
	}
	classifySpan.WithExtra("total", strconv.Itoa(report.Total)).
		WithExtra("documented", strconv.Itoa(report.Documented)).
		End("")

	if tracer.Level().ShouldEmit(trace.ScopeItem) {
		for _, it := range report.Items {
			trace.Point(tracer, trace.ScopeItem, it.Name, classifySpan.ID(), it.Kind, map[string]string{
				"line":       strconv.FormatUint(uint64(it.Line), 10),
				"documented": strconv.FormatBool(it.Documented),
			})
		}
	}

	return &Result{
		File:        f,
		Tokens:      scanned.Tokens,
		Records:     records,
		Owner:       scanned.Owner,
		Diagnostics: diags,
		Dropped:     bag.Dropped(),
		Report:      report,
	}
}

// scanAndAttach runs the lexer, the scanner and the resolver. A panic in any
// of them is reported as StrScanAborted and leaves the file without records.
func scanAndAttach(f *source.File, rep diag.Reporter, tracer trace.Tracer, parent uint64) (scanned scanner.Result, records []decl.Record) {
	defer recoverScan(f, rep, &scanned, &records)

	// лексер и сканер работают в одном проходе: сканер тянет токены лениво
	scanSpan := trace.Begin(tracer, trace.ScopePass, "scan", parent)
	lx := lexer.New(f, lexer.Options{Reporter: rep})
	scanned = scanner.Scan(lx, scanner.Options{Reporter: rep})
	scanSpan.WithExtra("tokens", strconv.Itoa(len(scanned.Tokens))).
		WithExtra("records", strconv.Itoa(len(scanned.Records))).
		End("")

	attachSpan := trace.Begin(tracer, trace.ScopePass, "attach", parent)
	records = attach.Resolve(scanned.Tokens, attach.FileLines(f), scanned.Records)
	attachSpan.End("")
	return scanned, records
}

// recoverScan must be deferred directly.
func recoverScan(f *source.File, rep diag.Reporter, scanned *scanner.Result, records *[]decl.Record) {
	r := recover()
	if r == nil {
		return
	}
	*scanned, *records = scanner.Result{}, nil
	rep.Report(diag.StrScanAborted, diag.SevError, source.Span{File: f.ID}, fmt.Sprintf("declaration scan aborted: %v", r), nil)
}

// AnalyzeBytes is Analyze for in-memory content.
func AnalyzeBytes(ctx context.Context, path string, content []byte, opts Options) *Result {
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, content)
	return Analyze(ctx, fs.Get(id), opts)
}
