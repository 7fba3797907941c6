package driver

import (
	"time"

	"headspace/internal/backend"
)

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a compilation phase has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// Phase names reported to observers.
const (
	PhaseLoad     = "load"
	PhaseTokenize = "tokenize"
	PhaseParse    = "parse"
	PhaseCheck    = "check"
	PhaseEmit     = "emit"
)

// PhaseEvent describes a timing phase boundary. Target is empty for the
// shared phases and set for PhaseEmit.
type PhaseEvent struct {
	Name    string
	Target  backend.Target
	Status  PhaseStatus
	Elapsed time.Duration
	Cached  bool
	Err     error
}

// PhaseObserver receives phase events emitted during Compile. Emit phases
// of different targets arrive from different goroutines.
type PhaseObserver func(PhaseEvent)
