package trace

import "errors"

// fanout copies every event to a stream tracer and a ring (ModeBoth).
type fanout struct {
	tracers []Tracer
	level   Level
}

func newFanout(level Level, tracers ...Tracer) *fanout {
	return &fanout{tracers: tracers, level: level}
}

func (f *fanout) Emit(ev *Event) {
	for _, t := range f.tracers {
		// each tracer stamps its own sequence number
		cp := *ev
		t.Emit(&cp)
	}
}

func (f *fanout) Flush() error {
	var errs []error
	for _, t := range f.tracers {
		errs = append(errs, t.Flush())
	}
	return errors.Join(errs...)
}

func (f *fanout) Close() error {
	var errs []error
	for _, t := range f.tracers {
		errs = append(errs, t.Close())
	}
	return errors.Join(errs...)
}

func (f *fanout) Level() Level  { return f.level }
func (f *fanout) Enabled() bool { return f.level > LevelOff }
