package parser

import (
	"fmt"

	"headspace/internal/diag"
	"headspace/internal/source"
)

// ParseError is returned for any structural mismatch. Parsing stops at the
// first one; no partial tree is produced.
type ParseError struct {
	Code     diag.Code
	Span     source.Span
	Pos      int // index of the offending token in the input slice
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at token %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
}
