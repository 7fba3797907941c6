package parser

import (
	"headspace/internal/diag"
	"headspace/internal/source"
	"headspace/internal/token"
)

// peek returns the next significant token without consuming it.
func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

// peekN returns the n-th significant token ahead (0 is the next one).
func (p *Parser) peekN(n int) token.Token {
	for i := p.pos; i < len(p.toks); i++ {
		if p.toks[i].Kind.IsTrivia() {
			continue
		}
		if n == 0 {
			return p.toks[i]
		}
		n--
	}
	return p.eofToken()
}

// peekIndex is the slice index of the next significant token, or len(toks).
func (p *Parser) peekIndex() int {
	i := p.pos
	for i < len(p.toks) && p.toks[i].Kind.IsTrivia() {
		i++
	}
	return i
}

// advance discards trivia and consumes the next significant token.
func (p *Parser) advance() token.Token {
	i := p.peekIndex()
	if i >= len(p.toks) {
		p.pos = i
		return p.eofToken()
	}
	tok := p.toks[i]
	p.pos = i + 1
	return tok
}

func (p *Parser) eofToken() token.Token {
	var sp source.Span
	if n := len(p.toks); n > 0 {
		sp = p.toks[n-1].Span.At()
	}
	return token.Token{Kind: token.EOF, Span: sp}
}

// expectSymbol consumes the one-character symbol c.
func (p *Parser) expectSymbol(c byte, code diag.Code) (token.Token, error) {
	if p.peek().IsSymbol(c) {
		return p.advance(), nil
	}
	return token.Token{}, p.fail(code, "'"+string(c)+"'")
}

// expectIdent consumes an identifier; when text is non-empty it must match.
func (p *Parser) expectIdent(text string, what string) (token.Token, error) {
	tok := p.peek()
	if tok.Kind == token.Ident && (text == "" || tok.Text == text) {
		return p.advance(), nil
	}
	return token.Token{}, p.fail(diag.SynExpectIdentifier, what)
}

// fail builds a ParseError at the lookahead and reports it.
func (p *Parser) fail(code diag.Code, expected string) *ParseError {
	tok := p.peek()
	if tok.Kind == token.EOF && code == diag.SynUnexpectedToken {
		code = diag.SynUnexpectedEOF
	}
	err := &ParseError{
		Code:     code,
		Span:     tok.Span,
		Pos:      p.peekIndex(),
		Expected: expected,
		Found:    tok.Describe(),
	}
	p.report(code, diag.SevError, err.Span, "expected "+expected+", found "+err.Found)
	return err
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}
