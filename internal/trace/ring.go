package trace

import (
	"io"
	"slices"
	"sync"
	"time"
)

// RingTracer keeps the newest events in memory so a failed build can show
// what led up to the failure.
type RingTracer struct {
	mu    sync.Mutex
	buf   []Event
	total uint64 // events ever stored
	level Level
	start time.Time
}

// NewRingTracer keeps up to capacity events (4096 when capacity <= 0).
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{buf: make([]Event, capacity), level: level, start: time.Now()}
}

func (t *RingTracer) Emit(ev *Event) {
	if ev == nil || !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	stored := *ev
	stored.Seq = NextSeq()
	t.buf[t.total%uint64(len(t.buf))] = stored
	t.total++
}

// Snapshot returns the kept events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	size := uint64(len(t.buf))
	if t.total <= size {
		return slices.Clone(t.buf[:t.total])
	}
	head := t.total % size
	return append(slices.Clone(t.buf[head:]), t.buf[:head]...)
}

// Failures returns the end events of failed spans still in the ring,
// innermost first, so the first entry names the phase or target that broke.
func (t *RingTracer) Failures() []Event {
	var out []Event
	for _, ev := range t.Snapshot() {
		if ev.Failed() {
			out = append(out, ev)
		}
	}
	return out
}

// Dump writes the kept events to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	format = detectFormat(format, "")
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format, t.start)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
