package parser

import (
	"headspace/internal/ast"
	"headspace/internal/diag"
	"headspace/internal/token"
)

const functionKeyword = "function"

// parseDeclaration handles `name : type` and `name : function[] [...]`.
func (p *Parser) parseDeclaration() (ast.TopLevel, error) {
	nameTok, err := p.expectIdent("", "declaration name")
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Loc: nameTok.Span, Name: nameTok.Text}

	colon, err := p.expectSymbol(':', diag.SynExpectColon)
	if err != nil {
		return nil, err
	}
	marker := &ast.DeclarationMarker{Loc: colon.Span}

	if p.peek().Is(token.Ident, functionKeyword) && p.peekN(1).IsSymbol('[') {
		def, err := p.parseFunctionDefinition()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionDeclaration{
			Loc:    nameTok.Span.Cover(def.Loc),
			Name:   name,
			Marker: marker,
			Def:    def,
		}, nil
	}

	typeTok, err := p.expectIdent("", "type name")
	if err != nil {
		return nil, err
	}
	return &ast.Declaration{
		Loc:    nameTok.Span.Cover(typeTok.Span),
		Name:   name,
		Marker: marker,
		Type:   &ast.VariableType{Loc: typeTok.Span, Name: typeTok.Text},
	}, nil
}

func (p *Parser) parseFunctionDefinition() (*ast.FunctionDefinition, error) {
	kw, err := p.expectIdent(functionKeyword, "'function'")
	if err != nil {
		return nil, err
	}
	open, err := p.expectSymbol('[', diag.SynExpectLeftBracket)
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expectSymbol(']', diag.SynExpectRightBracket)
	if err != nil {
		return nil, err
	}
	body, err := p.parseCodeBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefinition{
		Loc:     kw.Span.Cover(body.Loc),
		Keyword: &ast.Identifier{Loc: kw.Span, Name: kw.Text},
		Params:  &ast.ParameterList{Loc: open.Span.Cover(closeTok.Span)},
		Body:    body,
	}, nil
}

// parseAssignment handles `name = literal`.
func (p *Parser) parseAssignment() (ast.TopLevel, error) {
	nameTok, err := p.expectIdent("", "assignment target")
	if err != nil {
		return nil, err
	}
	eq, err := p.expectSymbol('=', diag.SynUnexpectedToken)
	if err != nil {
		return nil, err
	}
	var value ast.Literal
	switch tok := p.peek(); tok.Kind {
	case token.String:
		p.advance()
		value = &ast.StringLiteral{Loc: tok.Span, Raw: tok.Text}
	case token.Number:
		p.advance()
		value = &ast.NumberLiteral{Loc: tok.Span, Raw: tok.Text}
	default:
		return nil, p.fail(diag.SynExpectLiteral, "string or number literal")
	}
	return &ast.Assignment{
		Loc:    nameTok.Span.Cover(value.Span()),
		Target: &ast.Identifier{Loc: nameTok.Span, Name: nameTok.Text},
		Op:     &ast.AssignmentOperator{Loc: eq.Span},
		Value:  value,
	}, nil
}
