package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity level of the event.
// Lower numeric values represent coarser events.
type Scope uint8

const (
	// ScopeDriver covers whole CLI commands and Compile calls.
	ScopeDriver Scope = iota + 1
	// ScopePass covers load, tokenize, parse and check.
	ScopePass
	// ScopeTarget covers one emitter run.
	ScopeTarget
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeTarget:
		return "target"
	default:
		return "unknown"
	}
}

// Event is one trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // stamped by the tracer that stores the event
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for a root span
	Name     string // "compile", "parse", "emit:python"
	Detail   string
	Err      string // set when the span failed
	Dur      time.Duration
	Attrs    Attrs
}

// Failed reports whether the event closes a span that ended in an error.
func (ev *Event) Failed() bool { return ev.Kind == KindSpanEnd && ev.Err != "" }

// Point emits an instant event, e.g. a cache write that did not stick.
func Point(t Tracer, scope Scope, name, detail string, attrs Attrs) {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:   time.Now(),
		Kind:   KindPoint,
		Scope:  scope,
		Name:   name,
		Detail: detail,
		Attrs:  attrs,
	})
}
