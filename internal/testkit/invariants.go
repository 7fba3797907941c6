// Package testkit holds checks shared by parser and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"headspace/internal/ast"
	"headspace/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed module:
// 1) every span points at sf and lies within its content
// 2) every non-module node has a non-empty span
// 3) every child span is contained in its parent span
//
// Spaces nodes are only checked against the file bounds; they sit between
// statements and are not covered by the module span.
func CheckSpanInvariants(mod *ast.Module, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if mod == nil {
		return nil
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkNode(mod, nil, sf.ID, lenContent)
}

func checkNode(n, parent ast.Node, file source.FileID, limit uint32) error {
	sp := n.Span()
	if sp.File != file {
		return fmt.Errorf("%s span points to different file id: got=%d want=%d", n.Kind(), sp.File, file)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("%s span is inverted: %v", n.Kind(), sp)
	}
	if sp.End > limit {
		return fmt.Errorf("%s span end beyond content: %d > %d", n.Kind(), sp.End, limit)
	}

	_, isModule := n.(*ast.Module)
	_, isSpaces := n.(*ast.Spaces)
	if !isModule && sp.Empty() {
		return fmt.Errorf("empty %s span: %v", n.Kind(), sp)
	}
	if parent != nil && !isSpaces {
		ps := parent.Span()
		if sp.Start < ps.Start || sp.End > ps.End {
			return fmt.Errorf("%s span %v is outside %s span %v", n.Kind(), sp, parent.Kind(), ps)
		}
	}

	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		if err := checkNode(c, n, file, limit); err != nil {
			return err
		}
	}
	return nil
}
