package backend

import (
	"headspace/internal/ast"
)

type jsEmitter struct{}

func (jsEmitter) Target() Target { return TargetJavaScript }

func (jsEmitter) Emit(mod *ast.Module, cfg Config) ([]Artifact, error) {
	prog, err := plan(TargetJavaScript, mod, cfg)
	if err != nil {
		return nil, err
	}
	var w writer
	if prog.hasMain {
		w.line("function main() {")
		w.lines(prog.body("  ", func(arg ast.Argument) string {
			return "process.stdout.write(" + jsArgs.render(arg) + ");"
		}))
		w.line("}")
		w.blank()
		w.line("main();")
	}
	return []Artifact{{Name: prog.name + ".js", Content: w.String()}}, nil
}

// stdout.write accepts strings only, so identifiers are converted.
var jsArgs = argumentRenderer{
	str:    rawString,
	number: numberString,
	ident: func(c *ast.IdentifierChain) string {
		return "String(" + c.Dotted() + ")"
	},
}
