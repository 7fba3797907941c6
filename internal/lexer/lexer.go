package lexer

import (
	"iter"

	"headspace/internal/source"
	"headspace/internal/token"
)

// Lexer turns one source file into tokens. It holds its own cursor, so
// concurrent compiles each use a separate Lexer.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token. Every byte of input lands in exactly one
// token; after the input is exhausted Next keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdent()
	case isDec(ch):
		return lx.scanNumber()
	case isSpaceByte(ch):
		return lx.scanSpace()
	case ch == '\'' || ch == '"':
		return lx.scanString()
	case ch == '/' && lx.atCommentStart():
		return lx.scanComment()
	case ch >= utf8RuneSelf:
		return lx.scanUnicode()
	default:
		return lx.scanSymbol()
	}
}

// All yields the remaining tokens, EOF excluded. The sequence is lazy and
// single-use: it shares the Lexer's cursor.
func (lx *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize lexes the whole file. The EOF sentinel is not included.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/3+1)
	for tok := range lx.All() {
		toks = append(toks, tok)
	}
	return toks
}

// EmptySpan returns a zero-length span at the cursor.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) tokenFrom(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
