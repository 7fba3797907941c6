package backend

import (
	"headspace/internal/ast"
)

type goEmitter struct{}

func (goEmitter) Target() Target { return TargetGo }

// Emit writes <m>/main.go so `go run <m>/main.go` works from the output dir.
func (goEmitter) Emit(mod *ast.Module, cfg Config) ([]Artifact, error) {
	prog, err := plan(TargetGo, mod, cfg)
	if err != nil {
		return nil, err
	}
	var w writer
	if prog.hasMain {
		w.line("package main")
		w.blank()
		w.line(`import "fmt"`)
		w.blank()
		if !prog.hasPrint() {
			// foreign GO lines may or may not use fmt
			w.line("var _ = fmt.Print")
			w.blank()
		}
		w.line("func main() {")
		w.lines(prog.body("\t", func(arg ast.Argument) string {
			return "fmt.Print(" + goArgs.render(arg) + ")"
		}))
		w.line("}")
	}
	return []Artifact{{Name: prog.name + "/main.go", Content: w.String()}}, nil
}

var goArgs = argumentRenderer{str: doubleQuoted, number: numberString, ident: dotted}
