// Package backend turns a syntax tree into source files for one of several
// target languages.
//
// Every target is an Emitter. Emitters share the tree queries from
// internal/sema and differ only in how they render the wrapper, a print
// call and an argument. Lookup resolves a user-supplied target id (aliases
// included) and Emit runs the chosen emitter.
package backend

import (
	"fmt"

	"headspace/internal/ast"
	"headspace/internal/source"
)

// Target is a canonical target id.
type Target string

const (
	TargetC          Target = "c"
	TargetPython     Target = "python"
	TargetGo         Target = "go"
	TargetJavaScript Target = "javascript"
	TargetJava       Target = "java"
	TargetDotNet     Target = "dotnet"
)

// Artifact is one generated file. Name is relative and uses forward slashes.
type Artifact struct {
	Name    string `msgpack:"name" json:"name"`
	Content string `msgpack:"content" json:"content"`
}

// Config tunes emission.
type Config struct {
	// FallbackName is used when the module has no moduleName assignment.
	// Empty means "main".
	FallbackName string
	// Strict turns statements that would be dropped into an UnsupportedError.
	Strict bool
}

// Emitter renders a module for one target. A nil module is the empty
// program. Emit must not mutate the tree; one tree is shared by all targets.
type Emitter interface {
	Target() Target
	Emit(mod *ast.Module, cfg Config) ([]Artifact, error)
}

// UnknownTargetError is returned for a target id that names no emitter.
type UnknownTargetError struct {
	ID string
}

func (e *UnknownTargetError) Error() string {
	return "invalid language selected: " + e.ID
}

// UnsupportedError is returned in strict mode for a statement the target
// would otherwise drop.
type UnsupportedError struct {
	Target Target
	Callee string
	Span   source.Span
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: call to %s is not supported", e.Target, e.Callee)
}
