package dialect

// Hint is one piece of evidence for a language.
type Hint struct {
	Dialect Kind
	Score   int
	Reason  string
}

// Evidence aggregates the hints found in one block.
type Evidence struct {
	hints []Hint
}

func NewEvidence() *Evidence {
	return &Evidence{hints: make([]Hint, 0, 8)}
}

// Add appends a hint. Nil-safe.
func (e *Evidence) Add(h Hint) {
	if e == nil {
		return
	}
	e.hints = append(e.hints, h)
}

func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}

// ScoreFor sums the positive scores recorded for k.
func (e *Evidence) ScoreFor(k Kind) int {
	total := 0
	for _, h := range e.Hints() {
		if h.Dialect == k && h.Score > 0 {
			total += h.Score
		}
	}
	return total
}

// Reasons lists the distinct reasons recorded for k, in first-seen order.
func (e *Evidence) Reasons(k Kind) []string {
	var out []string
	seen := map[string]bool{}
	for _, h := range e.Hints() {
		if h.Dialect != k || seen[h.Reason] {
			continue
		}
		seen[h.Reason] = true
		out = append(out, h.Reason)
	}
	return out
}
