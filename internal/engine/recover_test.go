package engine

import (
	"testing"

	"cxxdoc/internal/decl"
	"cxxdoc/internal/diag"
	"cxxdoc/internal/publicapi"
	"cxxdoc/internal/scanner"
	"cxxdoc/internal/source"
)

func TestRecoverScanTurnsPanicIntoDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("boom.h", []byte("int x;")))
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}

	scanned := scanner.Result{Records: []decl.Record{{Name: "stale"}}}
	records := []decl.Record{{Name: "stale"}}
	func() {
		defer recoverScan(f, rep, &scanned, &records)
		panic("index out of range")
	}()

	if len(scanned.Records) != 0 || records != nil {
		t.Fatalf("partial state survived: %+v %+v", scanned.Records, records)
	}
	if bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.StrScanAborted || !d.MarksPartial() {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	report := publicapi.Build(f.Path, records, f.Position, publicapi.DefaultPolicy(), bag.Items())
	if !report.Partial || report.Total != 0 {
		t.Fatalf("report = %+v", report)
	}
}
