package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cxxdoc/internal/prof"
	"cxxdoc/internal/trace"
)

// session holds what startSession set up for the running command.
type session struct {
	tracer    trace.Tracer
	span      *trace.Span
	heartbeat *trace.Heartbeat
	profiles  *prof.Session
	closed    bool
}

var current *session

// startSession initializes tracing and profiling for every command and opens
// the per-command driver span.
func startSession(cmd *cobra.Command, _ []string) error {
	if cmd.Context() == nil {
		cmd.SetContext(context.Background())
	}
	s := &session{tracer: trace.Nop}
	current = s

	if err := setupTracing(cmd, s); err != nil {
		return err
	}
	profiles, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	s.profiles = profiles

	ctx, span := trace.Start(cmd.Context(), trace.ScopeDriver, cmd.Name())
	s.span = span
	cmd.SetContext(ctx)
	return nil
}

func finishSession(_ *cobra.Command, _ []string) error {
	return closeSession(nil)
}

// abortSession runs after Execute; it is a no-op when finishSession already ran.
func abortSession(cmdErr error) {
	if err := closeSession(cmdErr); err != nil {
		fmt.Fprintf(os.Stderr, "cxxdoc: %v\n", err)
	}
}

func closeSession(cmdErr error) error {
	s := current
	if s == nil || s.closed {
		return nil
	}
	s.closed = true

	note := ""
	if cmdErr != nil {
		note = "failed"
	}
	if s.span != nil {
		s.span.End(note)
	}
	if s.heartbeat != nil {
		s.heartbeat.Stop()
	}
	if cmdErr != nil {
		dumpRing(s.tracer)
	}
	if err := s.tracer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", err)
	}
	if err := s.tracer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
	}
	return s.profiles.Stop()
}

// dumpRing writes the buffered trace of a failed command to stderr.
func dumpRing(t trace.Tracer) {
	var ring *trace.RingTracer
	switch tt := t.(type) {
	case *trace.RingTracer:
		ring = tt
	case *trace.MultiTracer:
		ring = tt.Ring()
	}
	if ring == nil {
		return
	}
	if n := ring.Overwritten(); n > 0 {
		fmt.Fprintf(os.Stderr, "trace: last events before failure (%d older events overwritten):\n", n)
	} else {
		fmt.Fprintln(os.Stderr, "trace: last events before failure:")
	}
	if err := ring.Dump(os.Stderr, trace.FormatText); err != nil {
		fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
	}
}

func setupProfiling(cmd *cobra.Command) (*prof.Session, error) {
	pf := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = pf.GetString("cpu-profile"); err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = pf.GetString("mem-profile"); err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = pf.GetString("runtime-trace"); err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	return prof.Start(opts)
}
