package trace

import (
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq returns the next global event sequence number.
func NextSeq() uint64 { return seqCounter.Add(1) }

// Span is one traced unit of compiler work: a whole compile, one phase or
// one target's emit. The zero *Span and spans of a disabled tracer are inert.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	attrs   Attrs
	started time.Time
}

// Begin opens a span under parent (0 for a root) and emits its begin event.
func Begin(t Tracer, scope Scope, name string, parent uint64, attrs Attrs) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{}
	}
	s := &Span{
		tracer:  t,
		id:      spanCounter.Add(1),
		parent:  parent,
		scope:   scope,
		name:    name,
		attrs:   attrs,
		started: time.Now(),
	}
	t.Emit(s.event(KindSpanBegin, s.started))
	return s
}

func (s *Span) live() bool {
	return s != nil && s.tracer != nil && s.tracer.Enabled()
}

func (s *Span) event(kind Kind, at time.Time) *Event {
	return &Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		Attrs:    s.attrs,
	}
}

// SetArtifacts records how many files the span produced.
func (s *Span) SetArtifacts(n int) *Span {
	if s.live() {
		s.attrs.Artifacts = n
	}
	return s
}

// SetCached marks the span's output as served from the artifact cache.
func (s *Span) SetCached(cached bool) *Span {
	if s.live() {
		s.attrs.Cached = cached
	}
	return s
}

// End emits the end event and returns the span's duration.
func (s *Span) End(detail string) time.Duration {
	return s.finish(detail, "")
}

// Fail ends the span with err attached; a nil err is a plain End.
func (s *Span) Fail(err error) time.Duration {
	if err == nil {
		return s.finish("", "")
	}
	return s.finish("", err.Error())
}

func (s *Span) finish(detail, errText string) time.Duration {
	if !s.live() {
		return 0
	}
	now := time.Now()
	ev := s.event(KindSpanEnd, now)
	ev.Dur = now.Sub(s.started)
	ev.Detail = detail
	ev.Err = errText
	s.tracer.Emit(ev)
	return ev.Dur
}

// ID returns the span id, 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}
