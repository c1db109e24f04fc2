package diag

import (
	"cmp"
	"slices"
)

// Bag накапливает диагностики одного файла. Лимит max <= 0 значит "без лимита";
// всё, что не влезло, только считается в dropped.
type Bag struct {
	items   []Diagnostic
	max     int
	dropped int
}

// NewBag creates a bag holding at most max diagnostics.
func NewBag(max int) *Bag {
	hint := 16
	if max > 0 && max < hint {
		hint = max
	}
	return &Bag{items: make([]Diagnostic, 0, hint), max: max}
}

// Add stores d unless the bag is full. It reports whether d was kept.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Dropped returns how many diagnostics were rejected by the limit.
func (b *Bag) Dropped() int { return b.dropped }

// Truncated reports whether anything was rejected.
func (b *Bag) Truncated() bool { return b.dropped > 0 }

func (b *Bag) Len() int { return len(b.items) }

// Items returns the backing slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic { return b.items }

// HasErrors: есть ли ошибка среди сохранённых. Выброшенные по лимиту тоже
// считаются, про их severity мы уже не знаем.
func (b *Bag) HasErrors() bool {
	return b.dropped > 0 || slices.ContainsFunc(b.items, func(d Diagnostic) bool {
		return d.Severity >= SevError
	})
}

func compareDiagnostics(a, b Diagnostic) int {
	return cmp.Or(
		cmp.Compare(a.Primary.File, b.Primary.File),
		cmp.Compare(a.Primary.Start, b.Primary.Start),
		cmp.Compare(a.Primary.End, b.Primary.End),
		cmp.Compare(b.Severity, a.Severity), // ошибки раньше предупреждений
		cmp.Compare(a.Code, b.Code),
	)
}

// Sort orders diagnostics by position, then severity (desc), then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, compareDiagnostics)
}

// Dedup keeps the first diagnostic for each (code, primary span) pair.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span [3]uint32
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, [3]uint32{uint32(d.Primary.File), d.Primary.Start, d.Primary.End}}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
