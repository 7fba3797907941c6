package lexer

import (
	"unicode"

	"headspace/internal/diag"
	"headspace/internal/token"
)

// scanSpace consumes a maximal whitespace run, line breaks included.
func (lx *Lexer) scanSpace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		r, _ := lx.peekRune()
		if !unicode.IsSpace(r) {
			break
		}
		lx.bumpRune()
	}
	return lx.tokenFrom(token.Space, start)
}

// scanComment handles "//" (through the line terminator) and "/* ... */".
// Nested block comments are not supported: the first "*/" closes.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	if lx.cursor.Bump() == '/' {
		for !lx.cursor.EOF() {
			b := lx.cursor.Bump()
			if b == '\n' {
				break
			}
			if b == '\r' {
				lx.cursor.Eat('\n')
				break
			}
		}
		return lx.tokenFrom(token.Comment, start)
	}

	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '*' && lx.cursor.Eat('/') {
			return lx.tokenFrom(token.Comment, start)
		}
	}
	tok := lx.tokenFrom(token.Comment, start)
	lx.warn(diag.LexUnterminatedBlockComment, tok.Span, "unterminated block comment")
	return tok
}
