package parser

import "headspace/internal/diag"

type Options struct {
	// Reporter receives syntax diagnostics. May be nil.
	Reporter diag.Reporter
	// SingleStatement parses at most one top-level statement; leftover
	// tokens are reported as info and otherwise ignored.
	SingleStatement bool
	// KeepTrivia records top-level whitespace and comments as Spaces nodes.
	KeepTrivia bool
}
