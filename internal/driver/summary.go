package driver

import (
	"cxxdoc/internal/publicapi"
)

// Summary sums per-file reports.
type Summary struct {
	Files       int `json:"files" yaml:"files"`
	Total       int `json:"total" yaml:"total"`
	Documented  int `json:"documented" yaml:"documented"`
	Partial     int `json:"partial_files" yaml:"partial_files"`
	Cached      int `json:"cached_files" yaml:"cached_files"`
	Diagnostics int `json:"diagnostics" yaml:"diagnostics"`
}

// Summarize computes totals over files.
func Summarize(files []FileResult) Summary {
	var s Summary
	for _, f := range files {
		s.Add(f.Report)
		if f.Cached {
			s.Cached++
		}
	}
	return s
}

// Add accounts one report.
func (s *Summary) Add(rep publicapi.Report) {
	s.Files++
	s.Total += rep.Total
	s.Documented += rep.Documented
	s.Diagnostics += len(rep.Diagnostics)
	if rep.Partial {
		s.Partial++
	}
}

// Undocumented is Total - Documented.
func (s Summary) Undocumented() int { return s.Total - s.Documented }

// Coverage is the documented share in percent.
func (s Summary) Coverage() float64 {
	return publicapi.Coverage(s.Documented, s.Total)
}
