// Package attach associates documentation comments with declaration records.
//
// Resolve is a pure function of the token slice, a line resolver and the
// records; it does not consult scanner state. Rules per record, first match
// wins:
//
//  1. a trailing doc comment on the line of the name, after the name and
//     before the next record's name, outside the parentheses that follow
//     the name;
//  2. a leading doc comment directly in front of the declarator's own token;
//  3. for the first declarator of a statement, a leading doc comment directly
//     in front of the statement.
//
// "Directly" allows other comments in between, nothing else. A comment
// documents at most one record; named records pick before anonymous ones.
package attach

import (
	"sort"

	"cxxdoc/internal/decl"
	"cxxdoc/internal/source"
	"cxxdoc/internal/token"
)

// LineFunc maps a byte offset to its 1-based line.
type LineFunc func(off uint32) uint32

// FileLines returns the LineFunc of f.
func FileLines(f *source.File) LineFunc { return f.LineOf }

// Resolve returns a copy of recs with Documented and DocTok set.
func Resolve(toks []token.Token, line LineFunc, recs []decl.Record) []decl.Record {
	out := make([]decl.Record, len(recs))
	copy(out, recs)

	byName := make([]int, len(out))
	for i := range byName {
		byName[i] = i
	}
	sort.SliceStable(byName, func(a, b int) bool { return out[byName[a]].NameTok < out[byName[b]].NameTok })
	nextName := make([]int, len(out))
	for k, ri := range byName {
		next := len(toks)
		for j := k + 1; j < len(byName); j++ {
			if n := out[byName[j]].NameTok; n > out[ri].NameTok {
				next = n
				break
			}
		}
		nextName[ri] = next
	}

	order := make([]int, 0, len(out))
	for _, ri := range byName {
		if !out[ri].Anonymous() {
			order = append(order, ri)
		}
	}
	for _, ri := range byName {
		if out[ri].Anonymous() {
			order = append(order, ri)
		}
	}

	claimed := make(map[int]bool)
	for _, ri := range order {
		r := &out[ri]
		r.Documented = false
		r.DocTok = decl.NoRecord
		doc := trailing(toks, line, r.NameTok, nextName[ri], claimed)
		if doc < 0 {
			doc = leadingBefore(toks, r.OwnTok, claimed)
		}
		if doc < 0 && r.DeclaratorIndex == 0 && r.LeadTok >= 0 && r.LeadTok != r.OwnTok {
			doc = leadingBefore(toks, r.LeadTok, claimed)
		}
		if doc >= 0 {
			claimed[doc] = true
			r.Documented = true
			r.DocTok = doc
		}
	}
	return out
}

// trailing looks for an unclaimed trailing doc comment on the name's line
// in (nameTok, limit).
func trailing(toks []token.Token, line LineFunc, nameTok, limit int, claimed map[int]bool) int {
	if nameTok < 0 || nameTok >= len(toks) {
		return -1
	}
	nameLine := line(toks[nameTok].Span.Start)
	depth := 0 // скобки, открытые после имени: комментарии параметров не в счёт
	for t := nameTok + 1; t < limit && t < len(toks); t++ {
		tok := toks[t]
		switch tok.Kind {
		case token.LParen:
			depth++
			continue
		case token.RParen:
			if depth > 0 {
				depth--
			}
			continue
		case token.Comment:
		default:
			continue
		}
		start := line(tok.Span.Start)
		if start > nameLine {
			return -1
		}
		if depth == 0 && tok.Comment.Doc && tok.Comment.Placement == token.TrailingInline && start == nameLine && !claimed[t] {
			return t
		}
	}
	return -1
}

// leadingBefore walks back from tok over comments and returns the nearest
// unclaimed leading doc comment.
func leadingBefore(toks []token.Token, tok int, claimed map[int]bool) int {
	if tok <= 0 || tok > len(toks) {
		return -1
	}
	for t := tok - 1; t >= 0 && toks[t].Kind == token.Comment; t-- {
		c := toks[t].Comment
		if c.Doc && c.Placement == token.Leading && !claimed[t] {
			return t
		}
	}
	return -1
}
