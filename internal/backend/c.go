package backend

import (
	"headspace/internal/ast"
)

type cEmitter struct{}

func (cEmitter) Target() Target { return TargetC }

// Emit produces <m>.c and an empty <m>.h. Without main both are empty.
func (cEmitter) Emit(mod *ast.Module, cfg Config) ([]Artifact, error) {
	prog, err := plan(TargetC, mod, cfg)
	if err != nil {
		return nil, err
	}
	var w writer
	if prog.hasMain {
		w.line("#include <stdio.h>")
		w.blank()
		w.line("int main(void) {")
		w.lines(prog.body("  ", cPrint))
		w.line("  return 0;")
		w.line("}")
	}
	return []Artifact{
		{Name: prog.name + ".c", Content: w.String()},
		{Name: prog.name + ".h", Content: ""},
	}, nil
}

func cPrint(arg ast.Argument) string {
	if chain, ok := arg.(*ast.IdentifierChain); ok {
		return `printf("%s", ` + chain.Dotted() + ");"
	}
	return "printf(" + cArgs.render(arg) + ");"
}

var cArgs = argumentRenderer{str: doubleQuoted, number: numberString, ident: dotted}
