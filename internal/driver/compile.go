package driver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"headspace/internal/ast"
	"headspace/internal/backend"
	"headspace/internal/diag"
	"headspace/internal/lexer"
	"headspace/internal/observ"
	"headspace/internal/project"
	"headspace/internal/source"
	"headspace/internal/token"
	"headspace/internal/trace"
)

// CompileRequest configures Compile.
type CompileRequest struct {
	// Path is the input file. When Source is non-nil it is only used as the
	// display name and fallback module name.
	Path   string
	Source []byte

	// Targets are target ids or aliases, emitted in this order.
	Targets []string
	Config  backend.Config

	SingleStatement bool
	// Jobs bounds concurrent emitters; <= 0 means GOMAXPROCS.
	Jobs           int
	MaxDiagnostics int

	Cache *DiskCache
	Timer *observ.Timer
	// TimingDiagnostic appends the Timer report to the bag as OBS6001.
	TimingDiagnostic bool
	PhaseObserver    PhaseObserver
}

// TargetOutput is the result for one requested target.
type TargetOutput struct {
	Target    backend.Target
	Artifacts []backend.Artifact
	Cached    bool
	Elapsed   time.Duration
}

// CompileResult carries everything Compile produced. On failure Outputs is
// empty and Bag explains why.
type CompileResult struct {
	FileSet *source.FileSet
	File    *source.File
	Module  *ast.Module
	Bag     *diag.Bag
	Outputs []TargetOutput
}

// Artifacts flattens Outputs in request order.
func (r *CompileResult) Artifacts() []backend.Artifact {
	if r == nil {
		return nil
	}
	var out []backend.Artifact
	for _, o := range r.Outputs {
		out = append(out, o.Artifacts...)
	}
	return out
}

// ResolveTargets maps ids to canonical targets, dropping duplicates.
// The first unknown id yields *backend.UnknownTargetError.
func ResolveTargets(ids []string) ([]backend.Target, error) {
	out := make([]backend.Target, 0, len(ids))
	seen := make(map[backend.Target]bool, len(ids))
	for _, id := range ids {
		t, err := backend.Resolve(id)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}

// Compile runs the whole pipeline for one source buffer. Targets are
// validated before anything is read.
func Compile(ctx context.Context, req *CompileRequest) (_ *CompileResult, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return nil, errors.New("missing compile request")
	}
	res := &CompileResult{Bag: diag.NewBag(req.MaxDiagnostics)}
	reporter := diag.NewBagReporter(res.Bag)

	ctx, span := trace.StartCompile(ctx, req.Path)
	defer func() { span.Fail(err) }()

	targets, err := ResolveTargets(req.Targets)
	if err != nil {
		diag.ReportError(reporter, diag.ProjUnknownTarget, source.Span{}, err.Error()).Emit()
		return res, err
	}
	if len(targets) == 0 {
		err := errors.New("no targets requested")
		diag.ReportError(reporter, diag.ProjUnknownTarget, source.Span{}, err.Error()).Emit()
		return res, err
	}

	obs := req.PhaseObserver
	if obs == nil {
		obs = func(PhaseEvent) {}
	}
	phase := func(name string, fn func() error) error {
		_, sp := trace.StartPhase(ctx, name)
		idx := req.Timer.Begin(name)
		start := time.Now()
		obs(PhaseEvent{Name: name, Status: PhaseStart})
		err := fn()
		elapsed := time.Since(start)
		req.Timer.End(idx, "")
		obs(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: elapsed, Err: err})
		sp.Fail(err)
		return err
	}

	if err := phase(PhaseLoad, func() error {
		if req.Source != nil {
			res.FileSet, res.File = LoadSource(req.Path, req.Source)
			return nil
		}
		var lerr error
		res.FileSet, res.File, lerr = LoadFile(req.Path, res.Bag)
		return lerr
	}); err != nil {
		return res, err
	}

	var toks []token.Token
	_ = phase(PhaseTokenize, func() error {
		toks = lexer.Tokenize(res.File, lexer.Options{Reporter: reporter})
		return nil
	})
	if err := phase(PhaseParse, func() error {
		mod, perr := parseTokens(toks, reporter, req.SingleStatement)
		res.Module = mod
		if perr != nil {
			return fmt.Errorf("%s: %w", res.File.Path, perr)
		}
		return nil
	}); err != nil {
		return res, err
	}
	_ = phase(PhaseCheck, func() error {
		checkModule(res.Module, reporter)
		return nil
	})

	cfg := req.Config
	if cfg.FallbackName == "" {
		cfg.FallbackName = source.Stem(res.File.Path)
	}

	outputs, err := emitAll(ctx, req, res.File.Content, res.Module, targets, cfg, reporter, obs)
	if err != nil {
		return res, err
	}
	res.Outputs = outputs

	if req.TimingDiagnostic && req.Timer != nil {
		rep := req.Timer.Report()
		appendTimingDiagnostic(res.Bag, timingPayload{
			Kind:    "compile",
			Path:    res.File.Path,
			TotalMS: rep.TotalMS,
			Phases:  rep.Phases,
		})
	}
	return res, nil
}

// CompileSource compiles an in-memory buffer with default options.
func CompileSource(ctx context.Context, name string, content []byte, targets ...string) (*CompileResult, error) {
	if content == nil {
		content = []byte{}
	}
	return Compile(ctx, &CompileRequest{Path: name, Source: content, Targets: targets})
}

func emitAll(
	ctx context.Context,
	req *CompileRequest,
	content []byte,
	mod *ast.Module,
	targets []backend.Target,
	cfg backend.Config,
	reporter diag.Reporter,
	obs PhaseObserver,
) ([]TargetOutput, error) {
	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns its index, no locking needed
	outputs := make([]TargetOutput, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(targets)))

	for i, t := range targets {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			tctx, sp := trace.StartTarget(gctx, string(t))
			idx := req.Timer.Begin(PhaseEmit + ":" + string(t))
			start := time.Now()
			obs(PhaseEvent{Name: PhaseEmit, Target: t, Status: PhaseStart})

			out, err := emitTarget(tctx, t, mod, cfg, content, req, reporter)
			out.Elapsed = time.Since(start)

			note := ""
			if out.Cached {
				note = "cached"
			}
			req.Timer.End(idx, note)
			obs(PhaseEvent{Name: PhaseEmit, Target: t, Status: PhaseEnd, Elapsed: out.Elapsed, Cached: out.Cached, Err: err})
			if err != nil {
				sp.Fail(err)
				reportEmitError(reporter, err)
				return fmt.Errorf("emit %s: %w", t, err)
			}
			sp.SetArtifacts(len(out.Artifacts)).SetCached(out.Cached).End("")
			outputs[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func emitTarget(
	ctx context.Context,
	t backend.Target,
	mod *ast.Module,
	cfg backend.Config,
	content []byte,
	req *CompileRequest,
	reporter diag.Reporter,
) (TargetOutput, error) {
	out := TargetOutput{Target: t}

	var key project.Digest
	if req.Cache != nil {
		key = CacheKey(t, cfg, req.SingleStatement, content)
		var payload DiskPayload
		// A broken entry is treated as a miss and overwritten below.
		if ok, err := req.Cache.Get(key, &payload); err == nil && ok {
			out.Artifacts = payload.Artifacts
			out.Cached = true
			return out, nil
		}
	}

	em, err := backend.Lookup(string(t))
	if err != nil {
		return out, err
	}
	arts, err := em.Emit(mod, cfg)
	if err != nil {
		return out, err
	}
	out.Artifacts = arts

	if req.Cache != nil {
		// the output is still good without a cache entry
		if err := req.Cache.Put(key, &DiskPayload{Target: t, Artifacts: arts, Created: time.Now()}); err != nil {
			diag.ReportWarning(reporter, diag.IOCacheError, source.Span{},
				fmt.Sprintf("artifact cache: %s: %v", t, err)).Emit()
			trace.Point(trace.FromContext(ctx), trace.ScopeTarget, "cache-put", err.Error(),
				trace.Attrs{Target: string(t), Path: req.Path})
		}
	}
	return out, nil
}

func reportEmitError(reporter diag.Reporter, err error) {
	var unsupported *backend.UnsupportedError
	switch {
	case errors.As(err, &unsupported):
		diag.ReportError(reporter, diag.SemaUnsupported, unsupported.Span, unsupported.Error()).Emit()
	default:
		diag.ReportError(reporter, diag.UnknownCode, source.Span{}, err.Error()).Emit()
	}
}
