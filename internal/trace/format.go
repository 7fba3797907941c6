package trace

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format represents the output format for trace events.
type Format uint8

const (
	FormatAuto   Format = iota // pick by output path
	FormatText                 // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// String returns the string representation of Format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatText:
		return "text"
	case FormatNDJSON:
		return "ndjson"
	default:
		return "unknown"
	}
}

// ParseFormat converts a string to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
	}
}

// detectFormat resolves FormatAuto from the output path.
func detectFormat(f Format, path string) Format {
	if f != FormatAuto {
		return f
	}
	if strings.HasSuffix(path, ".ndjson") || strings.HasSuffix(path, ".jsonl") {
		return FormatNDJSON
	}
	return FormatText
}

// FormatEvent formats an event according to the specified format.
// start anchors the relative timestamp of the text format; a zero start
// prints the event's own time of day.
func FormatEvent(ev *Event, format Format, start time.Time) []byte {
	if format == FormatNDJSON {
		return formatNDJSON(ev)
	}
	return formatText(ev, start)
}

type jsonEvent struct {
	Time      string `json:"time"`
	Seq       uint64 `json:"seq"`
	Kind      string `json:"kind"`
	Scope     string `json:"scope"`
	SpanID    uint64 `json:"span_id,omitempty"`
	ParentID  uint64 `json:"parent_id,omitempty"`
	Name      string `json:"name"`
	Phase     string `json:"phase,omitempty"`
	Target    string `json:"target,omitempty"`
	Path      string `json:"path,omitempty"`
	Artifacts int    `json:"artifacts,omitempty"`
	Cached    bool   `json:"cached,omitempty"`
	DurUS     int64  `json:"dur_us,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Err       string `json:"error,omitempty"`
}

func formatNDJSON(ev *Event) []byte {
	data, err := json.Marshal(jsonEvent{
		Time:      ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:       ev.Seq,
		Kind:      ev.Kind.String(),
		Scope:     ev.Scope.String(),
		SpanID:    ev.SpanID,
		ParentID:  ev.ParentID,
		Name:      ev.Name,
		Phase:     ev.Attrs.Phase,
		Target:    ev.Attrs.Target,
		Path:      ev.Attrs.Path,
		Artifacts: ev.Attrs.Artifacts,
		Cached:    ev.Attrs.Cached,
		DurUS:     ev.Dur.Microseconds(),
		Detail:    ev.Detail,
		Err:       ev.Err,
	})
	if err != nil {
		return nil
	}
	return append(data, '\n')
}

// formatText renders "[  1.234ms]   ← emit:go {artifacts=1, dur=41µs}".
// Begin events carry the attributes; end events repeat only the outcome.
func formatText(ev *Event, start time.Time) []byte {
	var sb strings.Builder
	if start.IsZero() {
		sb.WriteString("[" + ev.Time.Format("15:04:05.000") + "] ")
	} else {
		fmt.Fprintf(&sb, "[%9.3fms] ", ev.Time.Sub(start).Seconds()*1000)
	}
	if ev.ParentID > 0 {
		sb.WriteString("  ")
	}
	switch ev.Kind {
	case KindSpanBegin:
		sb.WriteString("→ ")
	case KindSpanEnd:
		sb.WriteString("← ")
	case KindPoint:
		sb.WriteString("• ")
	}
	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		sb.WriteString(" (" + ev.Detail + ")")
	}

	var attrs []attr
	if ev.Kind == KindSpanEnd {
		if ev.Attrs.Artifacts > 0 {
			attrs = append(attrs, attr{"artifacts", strconv.Itoa(ev.Attrs.Artifacts)})
		}
		if ev.Attrs.Cached {
			attrs = append(attrs, attr{"cached", "true"})
		}
		attrs = append(attrs, attr{"dur", ev.Dur.Round(time.Microsecond).String()})
	} else {
		attrs = ev.Attrs.list()
	}
	if len(attrs) > 0 {
		sb.WriteString(" {")
		for i, a := range attrs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.key + "=" + a.value)
		}
		sb.WriteString("}")
	}
	if ev.Err != "" {
		sb.WriteString(" error: " + ev.Err)
	}
	sb.WriteString("\n")
	return []byte(sb.String())
}
