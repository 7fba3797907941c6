package backend

import (
	"strings"

	"headspace/internal/ast"
)

// TargetInfo describes a target for listings.
type TargetInfo struct {
	Target     Target
	Aliases    []string
	ForeignTag string
	Files      string
}

var emitters = []Emitter{
	cEmitter{},
	pythonEmitter{},
	goEmitter{},
	jsEmitter{},
	javaEmitter{},
	dotnetEmitter{},
}

var infos = map[Target]TargetInfo{
	TargetC:          {Target: TargetC, ForeignTag: "C", Files: "<m>.c, <m>.h"},
	TargetPython:     {Target: TargetPython, Aliases: []string{"py"}, ForeignTag: "PYTHON", Files: "<m>.py"},
	TargetGo:         {Target: TargetGo, Aliases: []string{"golang"}, ForeignTag: "GO", Files: "<m>/main.go"},
	TargetJavaScript: {Target: TargetJavaScript, Aliases: []string{"js"}, ForeignTag: "JAVASCRIPT", Files: "<m>.js"},
	TargetJava:       {Target: TargetJava, ForeignTag: "JAVA", Files: "<M>.java"},
	TargetDotNet:     {Target: TargetDotNet, Aliases: []string{"csharp", "cs"}, ForeignTag: "DOTNET", Files: "<m>.cs"},
}

// Targets lists the canonical targets in a fixed order.
func Targets() []Target {
	out := make([]Target, len(emitters))
	for i, e := range emitters {
		out[i] = e.Target()
	}
	return out
}

// Info returns the listing entry for t.
func Info(t Target) TargetInfo {
	return infos[t]
}

// ForeignTag is the BEGIN_FOREIGN_CODE_<tag> suffix a target accepts.
func (t Target) ForeignTag() string {
	return infos[t].ForeignTag
}

// Resolve maps a target id or alias to its canonical Target, ignoring case
// and surrounding spaces.
func Resolve(id string) (Target, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	for _, e := range emitters {
		t := e.Target()
		if key == string(t) {
			return t, nil
		}
		for _, alias := range infos[t].Aliases {
			if key == alias {
				return t, nil
			}
		}
	}
	return "", &UnknownTargetError{ID: id}
}

// Lookup returns the emitter for a target id or alias.
func Lookup(id string) (Emitter, error) {
	t, err := Resolve(id)
	if err != nil {
		return nil, err
	}
	for _, e := range emitters {
		if e.Target() == t {
			return e, nil
		}
	}
	return nil, &UnknownTargetError{ID: id}
}

// Emit resolves id and runs its emitter.
func Emit(id string, mod *ast.Module, cfg Config) ([]Artifact, error) {
	e, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return e.Emit(mod, cfg)
}
