// Package testkit holds structural checks shared by tests and fuzz targets.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"cxxdoc/internal/decl"
	"cxxdoc/internal/source"
	"cxxdoc/internal/token"
)

// CheckTokenInvariants verifies a complete token stream of sf:
// 1) the stream ends with exactly one EOF
// 2) every span lies within the content and refers to sf
// 3) spans are ordered and do not overlap
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 {
		return fmt.Errorf("empty token stream")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range toks {
		if tok.Kind == token.EOF && i != len(toks)-1 {
			return fmt.Errorf("EOF at %d before the end of the stream (%d tokens)", i, len(toks))
		}
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > lenContent {
			return fmt.Errorf("token %d span %v outside content of %d bytes", i, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous end %d", i, sp, prevEnd)
		}
		if tok.Kind == token.Comment && tok.Comment.Doc != tok.Comment.Form.IsDoc() {
			return fmt.Errorf("token %d: doc flag disagrees with form %s", i, tok.Comment.Form)
		}
		prevEnd = sp.End
	}
	if last := toks[len(toks)-1]; last.Kind != token.EOF {
		return fmt.Errorf("stream ends with %s, not EOF", last.Kind)
	}
	return nil
}

// CheckRecordInvariants verifies records against the stream they were
// scanned from, together with the token owner table:
// 1) the owner table covers every token and points at existing records
// 2) token indexes are in range and ordered as NameTok >= OwnTok >= LeadTok
// 3) enclosing records precede their members and are aggregates
// 4) a documented record names a doc comment token
func CheckRecordInvariants(recs []decl.Record, toks []token.Token, owner []int) error {
	if owner != nil && len(owner) != len(toks) {
		return fmt.Errorf("owner table has %d entries for %d tokens", len(owner), len(toks))
	}
	for i, o := range owner {
		if o != decl.NoRecord && (o < 0 || o >= len(recs)) {
			return fmt.Errorf("token %d owned by missing record %d", i, o)
		}
	}

	inRange := func(idx int) bool { return idx >= 0 && idx < len(toks) }
	for i, r := range recs {
		if !inRange(r.NameTok) || !inRange(r.OwnTok) {
			return fmt.Errorf("record %d (%s) token index out of range: name=%d own=%d", i, r.Name, r.NameTok, r.OwnTok)
		}
		if r.OwnTok > r.NameTok {
			return fmt.Errorf("record %d (%s): own token %d after name token %d", i, r.Name, r.OwnTok, r.NameTok)
		}
		if r.DeclaratorIndex == 0 && r.LeadTok != decl.NoRecord && (!inRange(r.LeadTok) || r.LeadTok > r.OwnTok) {
			return fmt.Errorf("record %d (%s): bad lead token %d", i, r.Name, r.LeadTok)
		}
		if r.Enclosing != decl.NoRecord {
			if r.Enclosing < 0 || r.Enclosing >= i {
				return fmt.Errorf("record %d (%s): enclosing %d does not precede it", i, r.Name, r.Enclosing)
			}
			if !recs[r.Enclosing].Kind.IsAggregate() {
				return fmt.Errorf("record %d (%s): enclosing record is a %s", i, r.Name, recs[r.Enclosing].Kind)
			}
		}
		if r.Documented {
			if !inRange(r.DocTok) || !toks[r.DocTok].IsDoc() {
				return fmt.Errorf("record %d (%s): documented by non-doc token %d", i, r.Name, r.DocTok)
			}
		}
	}
	return nil
}
