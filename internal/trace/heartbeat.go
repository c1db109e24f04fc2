package trace

import (
	"strconv"
	"sync"
	"time"
)

// Heartbeat emits a liveness event every interval. Heartbeats without
// matching span ends point at a file stuck in the scanner.
type Heartbeat struct {
	tracer   Tracer
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// StartHeartbeat starts the ticker goroutine; it returns nil when tracing is
// off or interval is not positive. A nil *Heartbeat is safe to Stop.
func StartHeartbeat(tracer Tracer, interval time.Duration) *Heartbeat {
	if tracer == nil || !tracer.Enabled() || interval <= 0 {
		return nil
	}
	h := &Heartbeat{
		tracer:   tracer,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go h.run(time.Now())
	return h
}

func (h *Heartbeat) run(started time.Time) {
	defer close(h.done)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var beats uint64
	for {
		select {
		case now := <-ticker.C:
			beats++
			h.tracer.Emit(&Event{
				Time:    now,
				Kind:    KindHeartbeat,
				Scope:   ScopeDriver,
				Name:    "heartbeat",
				Detail:  "#" + strconv.FormatUint(beats, 10),
				Elapsed: now.Sub(started),
			})
		case <-h.stop:
			return
		}
	}
}

// Stop ends the goroutine and waits for it; repeated calls are no-ops.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() { close(h.stop) })
	<-h.done
}
