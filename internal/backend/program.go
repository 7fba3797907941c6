package backend

import (
	"fmt"
	"strings"

	"headspace/internal/ast"
	"headspace/internal/sema"
)

// program is the target-independent view of a module an emitter renders.
type program struct {
	target  Target
	name    string
	hasMain bool
	actions []sema.Action
}

func plan(t Target, mod *ast.Module, cfg Config) (program, error) {
	p := program{target: t, name: moduleName(mod, cfg)}
	fn, ok := sema.MainFunction(mod)
	if !ok {
		return p, nil
	}
	p.hasMain = true
	p.actions = sema.BodyActions(fn)
	if cfg.Strict {
		for _, a := range p.actions {
			if ign, ok := a.(sema.IgnoredAction); ok {
				return p, &UnsupportedError{Target: t, Callee: ign.Call.Callee.Dotted(), Span: ign.Call.Loc}
			}
		}
	}
	return p, nil
}

// hasPrint reports whether a print with an argument is emitted.
func (p program) hasPrint() bool {
	return sema.HasPrint(p.actions)
}

// body renders the main body: prints through render at indent, foreign
// lines for this target verbatim, everything else dropped.
func (p program) body(indent string, render func(ast.Argument) string) []string {
	tag := p.target.ForeignTag()
	var lines []string
	for _, a := range p.actions {
		switch act := a.(type) {
		case sema.PrintAction:
			if act.Arg != nil {
				lines = append(lines, indent+render(act.Arg))
			}
		case sema.ForeignAction:
			if act.Block.Lang == tag {
				lines = append(lines, act.Block.Lines...)
			}
		case sema.IgnoredAction:
		default:
			panic(fmt.Sprintf("backend: unexpected action %T", a))
		}
	}
	return lines
}

// writer accumulates generated lines.
type writer struct {
	buf strings.Builder
}

func (w *writer) line(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

func (w *writer) lines(ls []string) {
	for _, l := range ls {
		w.line(l)
	}
}

func (w *writer) blank() {
	w.buf.WriteByte('\n')
}

func (w *writer) String() string {
	return w.buf.String()
}
