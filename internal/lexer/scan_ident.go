package lexer

import (
	"unicode"

	"headspace/internal/token"
)

// scanIdent consumes a letter followed by letters, digits and underscores.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	for !lx.cursor.EOF() {
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}
	return lx.tokenFrom(token.Ident, start)
}

// scanUnicode classifies a non-ASCII rune: letters start identifiers,
// digits start numbers, Unicode spaces join a space run, anything else is a symbol.
func (lx *Lexer) scanUnicode() token.Token {
	r, _ := lx.peekRune()
	switch {
	case unicode.IsLetter(r):
		return lx.scanIdent()
	case unicode.IsDigit(r):
		return lx.scanNumber()
	case unicode.IsSpace(r):
		return lx.scanSpace()
	default:
		return lx.scanSymbol()
	}
}

// scanSymbol consumes exactly one character.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	return lx.tokenFrom(token.Symbol, start)
}
