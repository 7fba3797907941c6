package sema

import (
	"headspace/internal/ast"
)

const (
	// ModuleNameVar is the top-level name that sets the output module name.
	ModuleNameVar = "moduleName"
	// MainFunctionName is the entry point emitters wrap.
	MainFunctionName = "main"
)

// ModuleName returns the value of the first `moduleName = "..."` assignment.
// Only double-quoted literals count; the quotes are stripped.
func ModuleName(mod *ast.Module) (string, bool) {
	if mod == nil {
		return "", false
	}
	for _, stmt := range mod.Stmts {
		asg, ok := stmt.(*ast.Assignment)
		if !ok || asg.Target.Name != ModuleNameVar {
			continue
		}
		lit, ok := asg.Value.(*ast.StringLiteral)
		if !ok || lit.Quote() != '"' || !lit.Terminated() {
			continue
		}
		return lit.Body(), true
	}
	return "", false
}

// MainFunction returns the first top-level function named main.
func MainFunction(mod *ast.Module) (*ast.FunctionDeclaration, bool) {
	if mod == nil {
		return nil, false
	}
	for _, stmt := range mod.Stmts {
		if fn, ok := stmt.(*ast.FunctionDeclaration); ok && fn.Name.Name == MainFunctionName {
			return fn, true
		}
	}
	return nil, false
}

// PrintArgument recognizes exactly os.print. isPrint is false for any other
// callee; hasArg is false for os.print[].
func PrintArgument(call *ast.FunctionCall) (arg ast.Argument, isPrint, hasArg bool) {
	segs := call.Callee.Segments
	if len(segs) != 2 || segs[0].Name != "os" || segs[1].Name != "print" {
		return nil, false, false
	}
	if len(call.Args.Args) == 0 {
		return nil, true, false
	}
	return call.Args.Args[0], true, true
}
