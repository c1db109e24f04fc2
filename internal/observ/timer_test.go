package observ

import (
	"bytes"
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	load := tm.Begin("load")
	tm.End(load, "")
	analyze := tm.Begin("analyze")
	tm.End(analyze, "cached")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(r.Phases))
	}
	if r.Phases[0].Name != "load" || r.Phases[1].Note != "cached" {
		t.Errorf("unexpected phases %+v", r.Phases)
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Errorf("total %v below a phase", r.TotalMS)
	}

	if empty := NewTimer().Report(); empty.Phases != nil || empty.TotalMS != 0 {
		t.Errorf("empty timer report = %+v", empty)
	}
}

func TestMerge(t *testing.T) {
	a := Report{TotalMS: 3, Phases: []PhaseReport{{Name: "load", DurationMS: 1}, {Name: "analyze", DurationMS: 2, Note: "x"}}}
	b := Report{TotalMS: 1, Phases: []PhaseReport{{Name: "load", DurationMS: 1}}}

	m := Merge(a, b)
	if m.TotalMS != 4 {
		t.Errorf("total = %v", m.TotalMS)
	}
	if len(m.Phases) != 2 || m.Phases[0].Name != "load" || m.Phases[1].Name != "analyze" {
		t.Fatalf("unexpected phases %+v", m.Phases)
	}
	if m.Phases[0].DurationMS != 2 || m.Phases[0].Count != 2 {
		t.Errorf("load = %+v", m.Phases[0])
	}
	if m.Phases[1].Note != "" || m.Phases[1].Count != 1 {
		t.Errorf("analyze = %+v", m.Phases[1])
	}
}

func TestWriteText(t *testing.T) {
	r := Report{TotalMS: 2.5, Phases: []PhaseReport{{Name: "load", DurationMS: 0.5, Count: 3}, {Name: "analyze", DurationMS: 2, Note: "cached"}}}
	var buf bytes.Buffer
	if err := r.WriteText(&buf, "timings"); err != nil {
		t.Fatal(err)
	}
	want := "timings:\n" +
		"  load              0.50 ms  x3\n" +
		"  analyze           2.00 ms  // cached\n" +
		"  total             2.50 ms\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
	if !strings.HasPrefix(buf.String(), "timings:") {
		t.Error("missing title")
	}
}
