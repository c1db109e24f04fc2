package fuzztests

import (
	"context"
	"testing"
	"time"

	"cxxdoc/internal/attach"
	"cxxdoc/internal/diag"
	"cxxdoc/internal/engine"
	"cxxdoc/internal/lexer"
	"cxxdoc/internal/publicapi"
	"cxxdoc/internal/scanner"
	"cxxdoc/internal/source"
	"cxxdoc/internal/testkit"
)

// scanTimeout is the maximum time allowed for scanning a single input.
// If scanning takes longer, it indicates a potential infinite loop.
const scanTimeout = 5 * time.Second

func FuzzScannerRecords(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.h", input))

		bag := diag.NewBag(128)
		rep := diag.BagReporter{Bag: bag}
		res := scanner.Scan(lexer.New(file, lexer.Options{Reporter: rep}), scanner.Options{Reporter: rep})

		if err := testkit.CheckTokenInvariants(res.Tokens, file); err != nil {
			t.Fatalf("tokens: %v\ninput: %q", err, truncateForLog(input, 200))
		}
		recs := attach.Resolve(res.Tokens, attach.FileLines(file), res.Records)
		if err := testkit.CheckRecordInvariants(recs, res.Tokens, res.Owner); err != nil {
			t.Fatalf("records: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// FuzzEngineNoHang checks that the whole pipeline terminates and keeps its
// counters consistent.
func FuzzEngineNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan *engine.Result, 1)
		go func() {
			done <- engine.AnalyzeBytes(context.Background(), "fuzz.h", input, engine.Options{
				Policy:         publicapi.DefaultPolicy(),
				MaxDiagnostics: 128,
			})
		}()

		select {
		case res := <-done:
			r := res.Report
			if r.Total != len(r.Items) || r.Documented > r.Total {
				t.Fatalf("inconsistent report: total=%d items=%d documented=%d", r.Total, len(r.Items), r.Documented)
			}
			for _, d := range res.Diagnostics {
				if d.Code == diag.StrScanAborted {
					t.Fatalf("scan aborted: %s\ninput: %q", d.Message, truncateForLog(input, 200))
				}
			}
			if len(res.Diagnostics) > 0 && r.Partial != hasErrors(res.Diagnostics, res.Dropped) {
				t.Fatalf("partial flag %v disagrees with diagnostics", r.Partial)
			}
		case <-time.After(scanTimeout):
			t.Fatalf("engine hang detected: analysis took longer than %v\ninput (%d bytes): %q",
				scanTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

func hasErrors(diags []diag.Diagnostic, dropped int) bool {
	if dropped > 0 {
		return true
	}
	for _, d := range diags {
		if d.Severity == diag.SevError && (d.Code.IsLexical() || d.Code.IsStructural()) {
			return true
		}
	}
	return false
}
