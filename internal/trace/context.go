package trace

import "context"

type tracerKey struct{}

type frameKey struct{}

// frame is the innermost open span of a context.
type frame struct {
	id    uint64
	attrs Attrs
}

// FromContext returns the tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

func frameOf(ctx context.Context) frame {
	if ctx == nil {
		return frame{}
	}
	f, _ := ctx.Value(frameKey{}).(frame)
	return f
}

// ParentID returns the id of the span ctx runs under, 0 at the root.
func ParentID(ctx context.Context) uint64 { return frameOf(ctx).id }

// Start opens a child of the span carried by ctx. The child inherits the
// parent's input path and target unless attrs sets its own.
func Start(ctx context.Context, scope Scope, name string, attrs Attrs) (context.Context, *Span) {
	parent := frameOf(ctx)
	attrs = attrs.inherit(parent.attrs)
	span := Begin(FromContext(ctx), scope, name, parent.id, attrs)
	if span.ID() == 0 || ctx == nil {
		return ctx, span
	}
	return context.WithValue(ctx, frameKey{}, frame{id: span.id, attrs: attrs}), span
}

// StartCompile opens the root span of one input file.
func StartCompile(ctx context.Context, path string) (context.Context, *Span) {
	return Start(ctx, ScopeDriver, "compile", Attrs{Path: path})
}

// StartPhase opens a pipeline phase span (load, tokenize, parse, ...).
func StartPhase(ctx context.Context, phase string) (context.Context, *Span) {
	return Start(ctx, ScopePass, phase, Attrs{Phase: phase})
}

// StartTarget opens the emit span of one backend target.
func StartTarget(ctx context.Context, target string) (context.Context, *Span) {
	return Start(ctx, ScopeTarget, "emit:"+target, Attrs{Phase: "emit", Target: target})
}
