package buildpipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"headspace/internal/backend"
	"headspace/internal/diag"
	"headspace/internal/driver"
	"headspace/internal/source"
	"headspace/internal/trace"
)

// BuildRequest configures Build.
type BuildRequest struct {
	Compile driver.CompileRequest
	// OutDir receives the artifacts. Empty means compile only.
	OutDir   string
	Progress ProgressSink
}

// BuildResult captures the compile result, written files and stage timings.
type BuildResult struct {
	Compile *driver.CompileResult
	Written []string
	Timings Timings
}

// Build compiles every requested target and writes the artifacts to
// OutDir. Nothing is written unless every target compiled.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, errors.New("missing build request")
	}

	// Resolve up front so the progress view knows its rows before any
	// phase event arrives.
	targets, err := driver.ResolveTargets(req.Compile.Targets)
	if err != nil {
		bag := diag.NewBag(req.Compile.MaxDiagnostics)
		diag.ReportError(diag.NewBagReporter(bag), diag.ProjUnknownTarget, source.Span{}, err.Error()).Emit()
		result.Compile = &driver.CompileResult{Bag: bag}
		emitStage(req.Progress, nil, StageParse, StatusError, err, 0)
		return result, err
	}
	names := targetNames(targets)
	emitQueued(req.Progress, names)

	obs := &phaseObserver{sink: req.Progress, targets: names, timings: &result.Timings}
	compileReq := req.Compile
	compileReq.PhaseObserver = chainObservers(compileReq.PhaseObserver, obs.OnPhase)

	res, err := driver.Compile(ctx, &compileReq)
	result.Compile = res
	if err != nil {
		obs.fail(err)
		return result, err
	}

	if req.OutDir == "" {
		emitDone(req.Progress, res.Outputs)
		return result, nil
	}

	_, span := trace.Start(ctx, trace.ScopePass, "write", trace.Attrs{Phase: string(StageWrite), Path: req.Compile.Path})
	start := time.Now()
	for _, out := range res.Outputs {
		name := string(out.Target)
		emit(req.Progress, Event{Target: name, Stage: StageWrite, Status: StatusWorking})
		wStart := time.Now()
		paths, werr := driver.WriteArtifacts(req.OutDir, out.Artifacts)
		result.Written = append(result.Written, paths...)
		if werr != nil {
			span.Fail(werr)
			emit(req.Progress, Event{Target: name, Stage: StageWrite, Status: StatusError, Err: werr})
			diag.ReportError(diag.NewBagReporter(res.Bag), diag.IOWriteFileError, source.Span{}, werr.Error()).Emit()
			return result, fmt.Errorf("write %s artifacts: %w", name, werr)
		}
		emit(req.Progress, Event{Target: name, Stage: StageWrite, Status: StatusDone, Cached: out.Cached, Elapsed: time.Since(wStart)})
	}
	result.Timings.Set(StageWrite, time.Since(start))
	span.SetArtifacts(len(result.Written)).End(req.OutDir)
	emitStage(req.Progress, nil, StageWrite, StatusDone, nil, time.Since(start))
	return result, nil
}

func targetNames(targets []backend.Target) []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = string(t)
	}
	return names
}

func chainObservers(first, second driver.PhaseObserver) driver.PhaseObserver {
	if first == nil {
		return second
	}
	return func(ev driver.PhaseEvent) {
		first(ev)
		second(ev)
	}
}

// phaseObserver translates driver phase events into progress events.
type phaseObserver struct {
	mu          sync.Mutex
	sink        ProgressSink
	targets     []string
	timings     *Timings
	parseStart  time.Time
	parseDone   bool
	failedEmits map[string]bool
}

// OnPhase updates progress from one driver phase event.
func (p *phaseObserver) OnPhase(ev driver.PhaseEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ev.Target == "" {
		switch {
		case ev.Name == driver.PhaseLoad && ev.Status == driver.PhaseStart:
			p.parseStart = time.Now()
			emitStage(p.sink, p.targets, StageParse, StatusWorking, nil, 0)
		case ev.Name == driver.PhaseCheck && ev.Status == driver.PhaseEnd:
			p.parseDone = true
			p.timings.Set(StageParse, time.Since(p.parseStart))
			emitStage(p.sink, nil, StageParse, StatusDone, nil, time.Since(p.parseStart))
		}
		return
	}

	name := string(ev.Target)
	switch ev.Status {
	case driver.PhaseStart:
		emit(p.sink, Event{Target: name, Stage: StageEmit, Status: StatusWorking})
	case driver.PhaseEnd:
		p.timings.Add(StageEmit, ev.Elapsed)
		if ev.Err != nil {
			if p.failedEmits == nil {
				p.failedEmits = make(map[string]bool)
			}
			p.failedEmits[name] = true
			emit(p.sink, Event{Target: name, Stage: StageEmit, Status: StatusError, Err: ev.Err, Elapsed: ev.Elapsed})
			return
		}
		emit(p.sink, Event{Target: name, Stage: StageEmit, Status: StatusWorking, Cached: ev.Cached, Elapsed: ev.Elapsed})
	}
}

// fail marks every target that has not reported its own error.
func (p *phaseObserver) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	stage := StageEmit
	if !p.parseDone {
		stage = StageParse
	}
	for _, name := range p.targets {
		if p.failedEmits[name] {
			continue
		}
		emit(p.sink, Event{Target: name, Stage: stage, Status: StatusError, Err: err})
	}
	emitStage(p.sink, nil, stage, StatusError, err, 0)
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}

func emitQueued(sink ProgressSink, targets []string) {
	for _, name := range targets {
		emit(sink, Event{Target: name, Stage: StageParse, Status: StatusQueued})
	}
}

// emitStage sends one pipeline-level event and one event per target.
func emitStage(sink ProgressSink, targets []string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{Stage: stage, Status: status, Err: err, Elapsed: elapsed})
	for _, name := range targets {
		sink.OnEvent(Event{Target: name, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
	}
}

func emitDone(sink ProgressSink, outputs []driver.TargetOutput) {
	for _, out := range outputs {
		emit(sink, Event{Target: string(out.Target), Stage: StageEmit, Status: StatusDone, Cached: out.Cached, Elapsed: out.Elapsed})
	}
}
