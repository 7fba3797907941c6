package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"off":    LevelOff,
		"":       LevelOff,
		"error":  LevelError,
		"Phase":  LevelPhase,
		"DETAIL": LevelDetail,
		"debug":  LevelDebug,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeTarget, false},
		{LevelDetail, ScopeTarget, true},
		{LevelDebug, ScopeTarget, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	span := Begin(tr, ScopePass, "parse", 0, Attrs{Phase: "parse", Path: "a.hs"})
	Begin(tr, ScopeTarget, "emit:c", span.ID(), Attrs{Phase: "emit", Target: "c"}).End("")
	span.SetArtifacts(2).End("ok")

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines (target scope filtered), got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "→ parse {phase=parse, path=a.hs}") {
		t.Errorf("begin line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "← parse (ok) {artifacts=2, dur=") {
		t.Errorf("end line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[0], "[") || !strings.Contains(lines[0], "ms] ") {
		t.Errorf("missing relative timestamp: %q", lines[0])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Output: &buf, Format: FormatNDJSON})
	if err != nil {
		t.Fatal(err)
	}
	ctx := WithTracer(context.Background(), tr)
	ctx, root := StartCompile(ctx, "hello.hs")
	Point(tr, ScopeTarget, "cache-put", "disk full", Attrs{Target: "python"})
	_, emit := StartTarget(ctx, "go")
	emit.Fail(errors.New("boom"))
	root.End("")

	dec := json.NewDecoder(&buf)
	var events []map[string]any
	for dec.More() {
		var ev map[string]any
		if err := dec.Decode(&ev); err != nil {
			t.Fatal(err)
		}
		events = append(events, ev)
	}
	var kinds []string
	for _, ev := range events {
		kinds = append(kinds, ev["kind"].(string)+":"+ev["name"].(string))
	}
	want := []string{"begin:compile", "point:cache-put", "begin:emit:go", "end:emit:go", "end:compile"}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
	if events[0]["path"] != "hello.hs" {
		t.Errorf("compile path = %v", events[0]["path"])
	}
	if events[1]["target"] != "python" || events[1]["detail"] != "disk full" {
		t.Errorf("point = %v", events[1])
	}
	end := events[3]
	if end["target"] != "go" || end["phase"] != "emit" || end["path"] != "hello.hs" || end["error"] != "boom" {
		t.Errorf("emit end = %v", end)
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Fatal("off tracer must be disabled")
	}
	if d := Begin(tr, ScopeDriver, "x", 0, Attrs{}).End(""); d != 0 {
		t.Fatalf("nop span duration = %v", d)
	}
	var nilSpan *Span
	if d := nilSpan.SetArtifacts(1).SetCached(true).Fail(errors.New("x")); d != 0 || nilSpan.ID() != 0 {
		t.Fatal("nil span must be inert")
	}
}

func TestDetectFormat(t *testing.T) {
	if detectFormat(FormatAuto, "trace.ndjson") != FormatNDJSON {
		t.Error("ndjson suffix not detected")
	}
	if detectFormat(FormatAuto, "-") != FormatText {
		t.Error("stderr should default to text")
	}
	if detectFormat(FormatText, "trace.ndjson") != FormatText {
		t.Error("explicit format must win")
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		r.Emit(&Event{Time: time.Now(), Kind: KindPoint, Scope: ScopePass, Name: name})
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Errorf("snap[%d] = %q, want %q", i, snap[i].Name, want)
		}
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("dump:\n%s", buf.String())
	}
}

func TestModeBothFeedsStreamAndRing(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopePass, "tokenize", 0, Attrs{Phase: "tokenize"}).End("")

	ring := Ring(tr)
	if ring == nil {
		t.Fatal("Ring() found no ring in ModeBoth tracer")
	}
	if n := len(ring.Snapshot()); n != 2 {
		t.Fatalf("ring has %d events, want 2", n)
	}
	if strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("stream:\n%s", buf.String())
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestStartInheritsPathAndTarget(t *testing.T) {
	ring := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	ctx, compile := StartCompile(ctx, "main.hs")
	pctx, parse := StartPhase(ctx, "parse")
	parse.End("")
	tctx, emit := StartTarget(ctx, "java")
	_, write := Start(tctx, ScopeTarget, "encode", Attrs{Phase: "encode"})
	write.End("")
	emit.Fail(errors.New("unsupported call os.exit"))
	compile.End("")

	if ParentID(ctx) != compile.ID() || ParentID(pctx) != parse.ID() {
		t.Fatal("context does not carry the open span")
	}
	snap := ring.Snapshot()
	if len(snap) != 8 {
		t.Fatalf("events = %d", len(snap))
	}
	parseBegin := snap[1]
	if parseBegin.ParentID != compile.ID() || parseBegin.Attrs.Path != "main.hs" || parseBegin.Attrs.Phase != "parse" {
		t.Fatalf("parse begin = %+v", parseBegin)
	}
	encodeBegin := snap[4]
	if encodeBegin.ParentID != emit.ID() || encodeBegin.Attrs.Target != "java" || encodeBegin.Attrs.Path != "main.hs" {
		t.Fatalf("nested span lost attributes: %+v", encodeBegin)
	}

	failures := ring.Failures()
	if len(failures) != 1 {
		t.Fatalf("failures = %+v", failures)
	}
	if f := failures[0]; f.Name != "emit:java" || f.Attrs.Target != "java" || f.Err != "unsupported call os.exit" {
		t.Fatalf("failure = %+v", f)
	}
}

func TestFromContextDefaultsToNop(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop")
	}
	//nolint:staticcheck // nil context is part of the contract
	if FromContext(nil) != Nop {
		t.Fatal("expected Nop for nil context")
	}
}
