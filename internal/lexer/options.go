package lexer

import (
	"headspace/internal/diag"
	"headspace/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives warnings about unterminated strings and comments.
	// May be nil; lexing never stops either way.
	Reporter diag.Reporter
}

func (lx *Lexer) warn(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}
