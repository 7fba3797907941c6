package backend

import (
	"headspace/internal/ast"
)

type javaEmitter struct{}

func (javaEmitter) Target() Target { return TargetJava }

// Emit writes one public class named after the module; the file name
// matches the class as javac requires.
func (javaEmitter) Emit(mod *ast.Module, cfg Config) ([]Artifact, error) {
	prog, err := plan(TargetJava, mod, cfg)
	if err != nil {
		return nil, err
	}
	class := javaClassName(prog.name)
	var w writer
	w.line("public class " + class + " {")
	if prog.hasMain {
		w.line("  public static void main(String[] args) {")
		w.lines(prog.body("    ", func(arg ast.Argument) string {
			return "System.out.print(" + javaArgs.render(arg) + ");"
		}))
		w.line("  }")
	}
	w.line("}")
	return []Artifact{{Name: class + ".java", Content: w.String()}}, nil
}

var javaArgs = argumentRenderer{str: doubleQuoted, number: numberString, ident: dotted}
