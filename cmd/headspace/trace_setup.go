package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"headspace/internal/trace"
)

// setupTracing inspects trace-related flags and attaches a tracer to the
// command context. The returned cleanup flushes and closes it.
func setupTracing(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := root.PersistentFlags().GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	ringSize, err := root.PersistentFlags().GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace alone means phase-level tracing
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return func() {}, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: traceOutput,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	cmd.SetContext(trace.WithTracer(ctx, tracer))

	cleanup := func() {
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}

// dumpTraceRing writes the ring buffer, if tracing keeps one, after a
// failed build. Failed spans are listed first with their phase and target.
func dumpTraceRing(cmd *cobra.Command) {
	ring := trace.Ring(trace.FromContext(cmd.Context()))
	if ring == nil {
		return
	}
	errOut := cmd.ErrOrStderr()
	for _, ev := range ring.Failures() {
		where := strings.TrimSpace(ev.Attrs.Phase + " " + ev.Attrs.Target)
		if where == "" {
			where = ev.Name
		}
		fmt.Fprintf(errOut, "trace: %s failed (%s): %s\n", where, valueOrUnknown(ev.Attrs.Path), ev.Err)
	}
	fmt.Fprintln(errOut, "trace: last events before failure:")
	if err := ring.Dump(errOut, trace.FormatText); err != nil {
		fmt.Fprintf(errOut, "trace: dump error: %v\n", err)
	}
}
