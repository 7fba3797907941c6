package lexer

import (
	"unicode"

	"headspace/internal/token"
)

// scanNumber consumes digits with at most one decimal point. A second point
// ends the number, so "56.7.8.9" lexes as 56.7 . 8.9.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	seenDot := false
	for !lx.cursor.EOF() {
		r, _ := lx.peekRune()
		if r == '.' && !seenDot {
			seenDot = true
			lx.cursor.Bump()
			continue
		}
		if !unicode.IsDigit(r) {
			break
		}
		lx.bumpRune()
	}
	return lx.tokenFrom(token.Number, start)
}
