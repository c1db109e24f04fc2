// Package publicapi decides which declaration records belong to the public
// API of a header and aggregates their documentation status per file.
package publicapi

import (
	"cxxdoc/internal/decl"
)

// Policy selects public-API candidates.
type Policy struct {
	// IncludeProtected also counts protected members; they are part of the
	// API that derived classes see.
	IncludeProtected bool
}

// DefaultPolicy counts public and protected members.
func DefaultPolicy() Policy {
	return Policy{IncludeProtected: true}
}

// Key is a stable encoding of the policy used in cache keys.
func (p Policy) Key() string {
	if p.IncludeProtected {
		return "protected=1"
	}
	return "protected=0"
}

func (p Policy) allows(v decl.Visibility) bool {
	switch v {
	case decl.Public:
		return true
	case decl.Protected:
		return p.IncludeProtected
	}
	return false
}

// IsCandidate reports whether recs[i] is a public-API item: named, not an
// out-of-line qualified definition, and visible through its whole
// enclosing chain.
func (p Policy) IsCandidate(recs []decl.Record, i int) bool {
	r := recs[i]
	if r.Anonymous() || r.Qualified {
		return false
	}
	if !p.allows(r.Visibility) {
		return false
	}
	// steps ограничивает обход испорченной цепочки
	for e, steps := r.Enclosing, 0; e != decl.NoRecord && steps <= len(recs); e, steps = recs[e].Enclosing, steps+1 {
		if e < 0 || e >= len(recs) || !p.allows(recs[e].Visibility) {
			return false
		}
	}
	return true
}

// Candidates returns the indices of candidate records in source order.
func (p Policy) Candidates(recs []decl.Record) []int {
	out := make([]int, 0, len(recs))
	for i := range recs {
		if p.IsCandidate(recs, i) {
			out = append(out, i)
		}
	}
	return out
}
