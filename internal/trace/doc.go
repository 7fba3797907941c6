// Package trace is the structured event log of the headspace compiler.
//
// Spans mark the boundaries of driver phases (load, tokenize, parse, check)
// and of every per-target emit. Events go either straight to a writer
// (StreamTracer) or into an in-memory ring that can be dumped when a build
// fails (RingTracer).
//
//	headspace build --trace=- --trace-level=detail hello.hs
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: reserved, emits no spans
//   - LevelPhase: driver and pass spans
//   - LevelDetail: per-target spans as well
//   - LevelDebug: everything
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, compile := trace.StartCompile(ctx, "hello.hs")
//	_, emit := trace.StartTarget(ctx, "python") // inherits path=hello.hs
//	emit.SetArtifacts(1).End("")
//
// Spans carry Attrs (input path, phase, target, artifact count, cache hit)
// and the ring keeps failed spans findable through Failures.
package trace
