package dialect

import (
	"strings"

	"headspace/internal/lexer"
	"headspace/internal/source"
)

// Thresholds for reporting a mismatch. A block needs a clear winner with
// no evidence at all for its own tag.
const (
	minMismatchScore      = 8
	minMismatchConfidence = 0.6
)

// Collect lexes the block lines with the headspace lexer and gathers
// evidence. Foreign code rarely lexes cleanly, but every byte still lands in
// some token, which is all the scanner needs.
func Collect(lines []string) *Evidence {
	ev := NewEvidence()
	if len(lines) == 0 {
		return ev
	}
	file := &source.File{Content: []byte(strings.Join(lines, "\n"))}
	sc := NewScanner(ev)
	for tok := range lexer.New(file, lexer.Options{}).All() {
		sc.Observe(tok)
	}
	return ev
}

// Mismatch describes a block whose body reads like another language.
type Mismatch struct {
	Tagged   Kind
	Detected Kind
	Reasons  []string
	Class    Classification
}

// Inspect classifies a block tagged tag. It returns false for unknown tags,
// for blocks without a clear winner, and when the winner is the tag itself.
func Inspect(tag string, lines []string) (Mismatch, bool) {
	tagged := FromTag(tag)
	if tagged == Unknown {
		return Mismatch{}, false
	}
	ev := Collect(lines)
	cls := Classifier{}.Classify(ev)
	if cls.Kind == Unknown || cls.Kind == tagged {
		return Mismatch{}, false
	}
	if cls.Score < minMismatchScore || cls.Confidence < minMismatchConfidence || ev.ScoreFor(tagged) > 0 {
		return Mismatch{}, false
	}
	return Mismatch{
		Tagged:   tagged,
		Detected: cls.Kind,
		Reasons:  ev.Reasons(cls.Kind),
		Class:    cls,
	}, true
}

// Message renders m for a diagnostic.
func (m Mismatch) Message(tag string) string {
	var b strings.Builder
	b.WriteString("foreign block tagged ")
	b.WriteString(strings.ToUpper(tag))
	b.WriteString(" reads like ")
	b.WriteString(m.Detected.String())
	if len(m.Reasons) > 0 {
		reasons := m.Reasons
		if len(reasons) > 3 {
			reasons = reasons[:3]
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(reasons, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// Suggestion names the tag the block probably wants.
func (m Mismatch) Suggestion() string {
	for tag, k := range tagKinds {
		if k == m.Detected {
			return "did you mean BEGIN_FOREIGN_CODE_" + tag + "?"
		}
	}
	return ""
}
