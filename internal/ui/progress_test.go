package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"headspace/internal/buildpipeline"
)

func newModel(targets ...string) *progressModel {
	return NewProgressModel("build", targets, nil).(*progressModel)
}

func TestApplyEventUpdatesRow(t *testing.T) {
	m := newModel("c", "go")
	m.applyEvent(buildpipeline.Event{Target: "c", Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusWorking, Cached: true})
	m.applyEvent(buildpipeline.Event{Target: "go", Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusError, Err: errors.New("boom")})
	m.applyEvent(buildpipeline.Event{Target: "rust", Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusDone})

	if m.items[0].status != "emitting" || !m.items[0].cached {
		t.Errorf("c row = %+v", m.items[0])
	}
	if m.items[1].status != "error" || m.items[1].err == nil {
		t.Errorf("go row = %+v", m.items[1])
	}
	if got := m.percent(); got != (0.5+1.0)/2 {
		t.Errorf("percent = %v", got)
	}
}

func TestPipelineEventSetsHeader(t *testing.T) {
	m := newModel("python")
	m.applyEvent(buildpipeline.Event{Stage: buildpipeline.StageWrite, Status: buildpipeline.StatusWorking})
	if m.stageLabel != "writing" {
		t.Fatalf("stageLabel = %q", m.stageLabel)
	}
	view := m.View()
	if !strings.Contains(view, "build (writing)") || !strings.Contains(view, "python") {
		t.Fatalf("view:\n%s", view)
	}
}

func TestDoneMsgQuits(t *testing.T) {
	m := newModel("c")
	_, cmd := m.Update(doneMsg{})
	if !m.done || cmd == nil {
		t.Fatal("doneMsg must finish the model")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.Quit")
	}
	if !strings.HasPrefix(stripANSI(m.View()), "done: build") {
		t.Fatalf("view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("javascript", 6); got != "jav..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("go", 10); got != "go" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("日本語", 4); runewidthOf(got) > 4 {
		t.Errorf("truncate wide = %q", got)
	}
}
