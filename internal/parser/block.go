package parser

import (
	"strings"

	"headspace/internal/ast"
	"headspace/internal/diag"
	"headspace/internal/token"
)

const (
	foreignBeginPrefix = "BEGIN_FOREIGN_CODE_"
	foreignEndPrefix   = "END_FOREIGN_CODE_"
)

// parseCodeBlock handles `[ item* ]`.
func (p *Parser) parseCodeBlock() (*ast.CodeBlock, error) {
	open, err := p.expectSymbol('[', diag.SynExpectLeftBracket)
	if err != nil {
		return nil, err
	}
	block := &ast.CodeBlock{Loc: open.Span}
	for {
		tok := p.peek()
		switch {
		case tok.IsSymbol(']'):
			p.advance()
			block.Loc = block.Loc.Cover(tok.Span)
			return block, nil
		case tok.Kind == token.Ident && strings.HasPrefix(tok.Text, foreignBeginPrefix):
			fb, err := p.parseForeignBlock()
			if err != nil {
				return nil, err
			}
			block.Items = append(block.Items, fb)
		case tok.Kind == token.Ident:
			call, err := p.parseCall()
			if err != nil {
				return nil, err
			}
			block.Items = append(block.Items, call)
		case tok.Kind == token.EOF:
			return nil, p.fail(diag.SynExpectRightBracket, "']'")
		default:
			return nil, p.fail(diag.SynUnexpectedToken, "statement or ']'")
		}
	}
}

// parseCall handles `a.b.c [ argument? ]`.
func (p *Parser) parseCall() (*ast.FunctionCall, error) {
	callee, err := p.parseIdentifierChain()
	if err != nil {
		return nil, err
	}
	open, err := p.expectSymbol('[', diag.SynExpectLeftBracket)
	if err != nil {
		return nil, err
	}
	args := &ast.FunctionCallArguments{Loc: open.Span}
	switch tok := p.peek(); tok.Kind {
	case token.String:
		p.advance()
		args.Args = append(args.Args, &ast.StringLiteral{Loc: tok.Span, Raw: tok.Text})
	case token.Number:
		p.advance()
		args.Args = append(args.Args, &ast.NumberLiteral{Loc: tok.Span, Raw: tok.Text})
	case token.Ident:
		chain, err := p.parseIdentifierChain()
		if err != nil {
			return nil, err
		}
		args.Args = append(args.Args, chain)
	}
	closeTok, err := p.expectSymbol(']', diag.SynExpectRightBracket)
	if err != nil {
		return nil, err
	}
	args.Loc = args.Loc.Cover(closeTok.Span)
	return &ast.FunctionCall{
		Loc:    callee.Loc.Cover(args.Loc),
		Callee: callee,
		Args:   args,
	}, nil
}

func (p *Parser) parseIdentifierChain() (*ast.IdentifierChain, error) {
	first, err := p.expectIdent("", "identifier")
	if err != nil {
		return nil, err
	}
	chain := &ast.IdentifierChain{
		Loc:      first.Span,
		Segments: []*ast.Identifier{{Loc: first.Span, Name: first.Text}},
	}
	for p.peek().IsSymbol('.') {
		p.advance()
		seg, err := p.expectIdent("", "identifier after '.'")
		if err != nil {
			return nil, err
		}
		chain.Segments = append(chain.Segments, &ast.Identifier{Loc: seg.Span, Name: seg.Text})
		chain.Loc = chain.Loc.Cover(seg.Span)
	}
	return chain, nil
}

// parseForeignBlock captures the raw text between BEGIN_FOREIGN_CODE_<TAG>
// and END_FOREIGN_CODE_<TAG>, trivia included.
func (p *Parser) parseForeignBlock() (*ast.ForeignCodeBlock, error) {
	begin := p.peek()
	lang := strings.TrimPrefix(begin.Text, foreignBeginPrefix)
	if lang == "" {
		return nil, p.fail(diag.SynForeignEmptyTag, "foreign code language tag after "+foreignBeginPrefix)
	}
	p.advance()

	endMarker := foreignEndPrefix + lang
	var raw strings.Builder
	for i := p.pos; i < len(p.toks); i++ {
		tok := p.toks[i]
		if tok.Is(token.Ident, endMarker) {
			p.pos = i + 1
			return &ast.ForeignCodeBlock{
				Loc:   begin.Span.Cover(tok.Span),
				Lang:  lang,
				Lines: foreignLines(raw.String()),
			}, nil
		}
		raw.WriteString(tok.Text)
	}

	p.pos = len(p.toks)
	return nil, p.fail(diag.SynForeignMissingEnd, endMarker)
}

// foreignLines splits captured text into lines, dropping the whitespace-only
// rest of the BEGIN line and the indentation before END.
func foreignLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
