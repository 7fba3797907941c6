package buildpipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"headspace/internal/backend"
	"headspace/internal/driver"
)

const helloWorld = `moduleName = "hello"

main: function[][
  os.print["Hello World\n"]
]
`

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) OnEvent(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// last returns the final event recorded for target.
func (r *recorder) last(target string) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Target == target {
			return r.events[i], true
		}
	}
	return Event{}, false
}

func TestBuildWritesArtifacts(t *testing.T) {
	out := t.TempDir()
	rec := &recorder{}
	res, err := Build(context.Background(), &BuildRequest{
		Compile: driver.CompileRequest{
			Path:    "hello.hs",
			Source:  []byte(helloWorld),
			Targets: []string{"c", "python", "go"},
		},
		OutDir:   out,
		Progress: rec,
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"hello.c", "hello.h", "hello.py", filepath.Join("hello", "main.go")} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if len(res.Written) != 4 {
		t.Errorf("written = %v", res.Written)
	}

	for _, target := range []string{"c", "python", "go"} {
		ev, ok := rec.last(target)
		if !ok {
			t.Fatalf("no events for %s", target)
		}
		if ev.Stage != StageWrite || ev.Status != StatusDone {
			t.Errorf("%s final event = %+v", target, ev)
		}
	}
	if !res.Timings.Has(StageParse) || !res.Timings.Has(StageEmit) || !res.Timings.Has(StageWrite) {
		t.Errorf("timings incomplete: %+v", res.Timings)
	}

	rec.mu.Lock()
	first := rec.events[0]
	rec.mu.Unlock()
	if first.Status != StatusQueued || first.Target != "c" {
		t.Errorf("first event = %+v", first)
	}
}

func TestBuildCompileOnly(t *testing.T) {
	rec := &recorder{}
	res, err := Build(context.Background(), &BuildRequest{
		Compile: driver.CompileRequest{
			Path:    "hello.hs",
			Source:  []byte(helloWorld),
			Targets: []string{"java"},
		},
		Progress: rec,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Written) != 0 {
		t.Fatalf("compile-only build wrote %v", res.Written)
	}
	ev, _ := rec.last("java")
	if ev.Stage != StageEmit || ev.Status != StatusDone {
		t.Fatalf("final event = %+v", ev)
	}
}

func TestBuildUnknownTarget(t *testing.T) {
	out := t.TempDir()
	rec := &recorder{}
	res, err := Build(context.Background(), &BuildRequest{
		Compile:  driver.CompileRequest{Path: "x.hs", Source: []byte(helloWorld), Targets: []string{"rust"}},
		OutDir:   out,
		Progress: rec,
	})
	var ute *backend.UnknownTargetError
	if !errors.As(err, &ute) {
		t.Fatalf("err = %v", err)
	}
	if res.Compile == nil || !res.Compile.Bag.HasErrors() {
		t.Fatal("expected a diagnostic for the unknown target")
	}
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Fatalf("output dir not empty: %v", entries)
	}
}

func TestBuildParseErrorMarksTargets(t *testing.T) {
	out := t.TempDir()
	rec := &recorder{}
	_, err := Build(context.Background(), &BuildRequest{
		Compile:  driver.CompileRequest{Path: "bad.hs", Source: []byte("x: 5"), Targets: []string{"c", "go"}},
		OutDir:   out,
		Progress: rec,
	})
	if err == nil {
		t.Fatal("expected parse error")
	}
	for _, target := range []string{"c", "go"} {
		ev, _ := rec.last(target)
		if ev.Status != StatusError || ev.Stage != StageParse {
			t.Errorf("%s final event = %+v", target, ev)
		}
	}
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Fatal("failed build must not write artifacts")
	}
}

func TestFuncSinkNil(t *testing.T) {
	var f FuncSink
	f.OnEvent(Event{})
	ChannelSink{}.OnEvent(Event{})
}
