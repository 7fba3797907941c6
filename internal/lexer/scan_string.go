package lexer

import (
	"headspace/internal/diag"
	"headspace/internal/token"
)

// scanString consumes a '...' or "..." literal up to the matching quote.
// A backslash escapes the next character only. Unterminated strings run to
// the end of input and are reported as a warning.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	escaped := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case escaped:
			escaped = false
		case b == '\\':
			escaped = true
		case b == quote:
			lx.cursor.Bump()
			return lx.tokenFrom(token.String, start)
		}
		lx.bumpRune()
	}
	tok := lx.tokenFrom(token.String, start)
	lx.warn(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}
