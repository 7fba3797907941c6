package format

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"headspace/internal/ast"
	"headspace/internal/source"
)

// ErrShapeChanged means reformatting produced a different tree. It indicates
// a formatter bug, never bad input.
var ErrShapeChanged = errors.New("formatting changed the syntax tree")

// Result is the outcome of formatting one buffer.
type Result struct {
	Formatted []byte
	Changed   bool
}

// CheckRoundTrip formats content, re-parses the output and verifies that the
// syntax tree is unchanged and that formatting again is a no-op.
func CheckRoundTrip(name string, content []byte, opt Options) (Result, error) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual(name, content))
	mod, toks, err := parseStrict(sf)
	if err != nil {
		return Result{}, err
	}
	out := FormatFile(sf, mod, toks, opt)

	sf2 := fs.Get(fs.AddVirtual(name, out))
	mod2, toks2, err := parseStrict(sf2)
	if err != nil {
		return Result{}, fmt.Errorf("%w: reparse: %w", ErrShapeChanged, err)
	}
	if a, b := Shape(mod), Shape(mod2); a != b {
		return Result{}, fmt.Errorf("%w:\nbefore: %s\nafter:  %s", ErrShapeChanged, a, b)
	}
	if again := FormatFile(sf2, mod2, toks2, opt); !bytes.Equal(again, out) {
		return Result{}, fmt.Errorf("%w: output is not stable", ErrShapeChanged)
	}
	return Result{Formatted: out, Changed: !bytes.Equal(out, sf.Content)}, nil
}

// Shape renders the node kinds and leaf texts of mod in pre-order. Two trees
// with equal shapes emit identical code for every target.
func Shape(mod *ast.Module) string {
	if mod == nil {
		return ""
	}
	var b strings.Builder
	for n := range ast.All(mod) {
		if _, ok := n.(*ast.Spaces); ok {
			continue
		}
		b.WriteString(n.Kind().String())
		if leaf := n.Leaf(); len(leaf) > 0 {
			fmt.Fprintf(&b, "%q", leaf)
		}
		b.WriteByte(' ')
	}
	return b.String()
}
