package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the most recent events in memory so that a failed run
// can dump what led to it.
type RingTracer struct {
	mu     sync.Mutex
	events []Event
	stored uint64 // events ever stored; next slot is stored % len(events)
	level  Level
}

// NewRingTracer creates a ring of the given capacity.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &RingTracer{events: make([]Event, capacity), level: level}
}

// Emit stores ev. At LevelError the ring still records file spans.
func (t *RingTracer) Emit(ev *Event) {
	if ev.Kind != KindHeartbeat && !t.level.captures(ev.Scope) {
		return
	}
	stored := *ev
	stored.Seq = NextSeq()

	t.mu.Lock()
	t.events[t.stored%uint64(len(t.events))] = stored
	t.stored++
	t.mu.Unlock()
}

// Snapshot returns the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	capacity := uint64(len(t.events))
	n := min(t.stored, capacity)
	out := make([]Event, 0, n)
	for i := t.stored - n; i < t.stored; i++ {
		out = append(out, t.events[i%capacity])
	}
	return out
}

// Overwritten is the number of events pushed out of the ring.
func (t *RingTracer) Overwritten() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stored - min(t.stored, uint64(len(t.events)))
}

// Dump writes the snapshot to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
