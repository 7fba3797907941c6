package backend

import (
	"headspace/internal/ast"
)

type pythonEmitter struct{}

func (pythonEmitter) Target() Target { return TargetPython }

func (pythonEmitter) Emit(mod *ast.Module, cfg Config) ([]Artifact, error) {
	prog, err := plan(TargetPython, mod, cfg)
	if err != nil {
		return nil, err
	}
	var w writer
	if prog.hasMain {
		w.line("def main():")
		body := prog.body("  ", func(arg ast.Argument) string {
			return "print(" + pyArgs.render(arg) + `, end="")`
		})
		if len(body) == 0 {
			body = []string{"  pass"}
		}
		w.lines(body)
		w.blank()
		w.blank()
		w.line("if __name__ == '__main__':")
		w.line("  main()")
	}
	return []Artifact{{Name: prog.name + ".py", Content: w.String()}}, nil
}

var pyArgs = argumentRenderer{str: rawString, number: numberString, ident: dotted}
