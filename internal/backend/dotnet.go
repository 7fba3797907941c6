package backend

import (
	"headspace/internal/ast"
)

type dotnetEmitter struct{}

func (dotnetEmitter) Target() Target { return TargetDotNet }

func (dotnetEmitter) Emit(mod *ast.Module, cfg Config) ([]Artifact, error) {
	prog, err := plan(TargetDotNet, mod, cfg)
	if err != nil {
		return nil, err
	}
	var w writer
	w.line("public static class Program")
	w.line("{")
	if prog.hasMain {
		w.line("  public static void Main()")
		w.line("  {")
		w.lines(prog.body("    ", func(arg ast.Argument) string {
			return "System.Console.Write(" + csArgs.render(arg) + ");"
		}))
		w.line("  }")
	}
	w.line("}")
	return []Artifact{{Name: prog.name + ".cs", Content: w.String()}}, nil
}

var csArgs = argumentRenderer{str: doubleQuoted, number: numberString, ident: dotted}
