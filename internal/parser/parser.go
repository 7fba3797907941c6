package parser

import (
	"headspace/internal/ast"
	"headspace/internal/diag"
	"headspace/internal/token"
)

// Parser holds the state for one token slice.
type Parser struct {
	toks []token.Token
	pos  int // next unread token, trivia included
	opts Options
}

// Parse builds the syntax tree for toks. It returns (nil, nil) when the
// input has no significant token, and a *ParseError on the first mismatch.
func Parse(toks []token.Token, opts Options) (*ast.Module, error) {
	p := &Parser{toks: toks, opts: opts}
	if p.peek().Kind == token.EOF {
		return nil, nil
	}
	mod, err := p.parseModule()
	if err != nil {
		return nil, err
	}
	return mod, nil
}

func (p *Parser) parseModule() (*ast.Module, error) {
	start := p.peek().Span
	start.End = start.Start
	mod := &ast.Module{Loc: start}
	first := true
	for {
		if sp := p.takeTopTrivia(); sp != nil {
			mod.Stmts = append(mod.Stmts, sp)
		}
		tok := p.peek()
		if tok.Kind == token.EOF {
			break
		}
		if !first && p.opts.SingleStatement {
			p.report(diag.SynTrailingAfterProgram, diag.SevInfo, tok.Span,
				"only the first statement is compiled; the rest of the input is ignored")
			break
		}
		if tok.Kind != token.Ident || !p.atTopStart() {
			p.report(diag.SynUnexpectedTopLevel, diag.SevWarning, tok.Span,
				"unrecognized top-level construct "+tok.Describe()+"; the rest of the input is ignored")
			break
		}
		stmt, err := p.parseTopStatement()
		if err != nil {
			return nil, err
		}
		mod.Stmts = append(mod.Stmts, stmt)
		mod.Loc = mod.Loc.Cover(stmt.Span())
		first = false
	}
	return mod, nil
}

// atTopStart reports whether the lookahead is `ident :` or `ident =`.
func (p *Parser) atTopStart() bool {
	next := p.peekN(1)
	return next.IsSymbol(':') || next.IsSymbol('=')
}

func (p *Parser) parseTopStatement() (ast.TopLevel, error) {
	if p.peekN(1).IsSymbol('=') {
		return p.parseAssignment()
	}
	return p.parseDeclaration()
}

// takeTopTrivia collects trivia at the cursor into a Spaces node when
// KeepTrivia is set.
func (p *Parser) takeTopTrivia() *ast.Spaces {
	if !p.opts.KeepTrivia {
		return nil
	}
	var node *ast.Spaces
	for p.pos < len(p.toks) && p.toks[p.pos].Kind.IsTrivia() {
		tok := p.toks[p.pos]
		if node == nil {
			node = &ast.Spaces{Loc: tok.Span}
		}
		node.Runs = append(node.Runs, tok.Text)
		node.Loc = node.Loc.Cover(tok.Span)
		p.pos++
	}
	return node
}
