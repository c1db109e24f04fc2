// Package trace provides the tracing subsystem of cxxdoc.
//
// Tracing follows a run from the command down to single public API items
// and helps to find slow or stuck files.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	cxxdoc analyze --trace=- --trace-level=detail include/
//
// # Architecture
//
//   - Nop: zero-overhead tracer used when tracing is disabled
//   - StreamTracer: writes every event immediately (file/stderr)
//   - RingTracer: keeps the last events in memory for crash dumps
//   - MultiTracer: fans out to several tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only crash dumps
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file spans
//   - LevelDebug: everything, including one event per public API item
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "scan", parentID)
//	defer span.End("")
package trace
