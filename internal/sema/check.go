package sema

import (
	"headspace/internal/ast"
	"headspace/internal/diag"
	"headspace/internal/dialect"
	"headspace/internal/source"
)

// Check reports informational diagnostics about constructs that compile to
// nothing (calls other than os.print, a missing moduleName or main) and
// warns about foreign blocks whose body looks like another target.
// It never fails; emitters apply the same rules on their own.
func Check(mod *ast.Module, reporter diag.Reporter) {
	if reporter == nil || mod == nil {
		return
	}
	if _, ok := ModuleName(mod); !ok {
		diag.ReportInfo(reporter, diag.SemaMissingModuleName, moduleStart(mod),
			`no moduleName = "..." assignment; the output is named after the input file`).Emit()
	}
	fn, ok := MainFunction(mod)
	if !ok {
		diag.ReportInfo(reporter, diag.SemaMissingMain, moduleStart(mod),
			"no main function; targets emit an empty program").Emit()
		return
	}
	for _, a := range BodyActions(fn) {
		switch a := a.(type) {
		case IgnoredAction:
			diag.ReportInfo(reporter, diag.SemaIgnoredStatement, a.Call.Loc,
				"call to "+a.Call.Callee.Dotted()+" has no effect and is not emitted").
				WithNote(fn.Name.Loc, "inside function main").
				Emit()
		case ForeignAction:
			checkForeignDialect(reporter, a.Block)
		}
	}
}

// checkForeignDialect warns when a block's body reads like a different
// target than its tag.
func checkForeignDialect(reporter diag.Reporter, fb *ast.ForeignCodeBlock) {
	m, ok := dialect.Inspect(fb.Lang, fb.Lines)
	if !ok {
		return
	}
	b := diag.ReportWarning(reporter, diag.SemaForeignDialect, fb.Loc, m.Message(fb.Lang))
	if s := m.Suggestion(); s != "" {
		b = b.WithNote(fb.Loc, s)
	}
	b.Emit()
}

func moduleStart(mod *ast.Module) source.Span {
	sp := mod.Loc
	sp.End = sp.Start
	return sp
}
