package ast

import (
	"strings"

	"headspace/internal/source"
)

// Module is the root. A nil *Module stands for a source without statements.
type Module struct {
	Loc   source.Span
	Stmts []TopLevel
}

// Declaration is `name: type`.
type Declaration struct {
	Loc    source.Span
	Name   *Identifier
	Marker *DeclarationMarker
	Type   *VariableType
}

// FunctionDeclaration is `name: function[] [ ... ]`.
type FunctionDeclaration struct {
	Loc    source.Span
	Name   *Identifier
	Marker *DeclarationMarker
	Def    *FunctionDefinition
}

type FunctionDefinition struct {
	Loc     source.Span
	Keyword *Identifier
	Params  *ParameterList
	Body    *CodeBlock
}

// ParameterList is the empty `[]` after `function`.
type ParameterList struct {
	Loc source.Span
}

type CodeBlock struct {
	Loc   source.Span
	Items []BlockItem
}

// ForeignCodeBlock holds raw lines between BEGIN_FOREIGN_CODE_<Lang> and
// END_FOREIGN_CODE_<Lang>.
type ForeignCodeBlock struct {
	Loc   source.Span
	Lang  string
	Lines []string
}

type FunctionCall struct {
	Loc    source.Span
	Callee *IdentifierChain
	Args   *FunctionCallArguments
}

// IdentifierChain is a dotted name such as os.print.
type IdentifierChain struct {
	Loc      source.Span
	Segments []*Identifier
}

type FunctionCallArguments struct {
	Loc  source.Span
	Args []Argument
}

// Assignment is `name = literal`.
type Assignment struct {
	Loc    source.Span
	Target *Identifier
	Op     *AssignmentOperator
	Value  Literal
}

type Identifier struct {
	Loc  source.Span
	Name string
}

type VariableType struct {
	Loc  source.Span
	Name string
}

type DeclarationMarker struct {
	Loc source.Span
}

type AssignmentOperator struct {
	Loc source.Span
}

// StringLiteral keeps the raw text, quotes and escapes included.
type StringLiteral struct {
	Loc source.Span
	Raw string
}

type NumberLiteral struct {
	Loc source.Span
	Raw string
}

// Spaces keeps top-level trivia runs when the parser is asked to.
type Spaces struct {
	Loc  source.Span
	Runs []string
}

func (*Module) Kind() Kind                { return KindModule }
func (*Declaration) Kind() Kind           { return KindDeclaration }
func (*FunctionDeclaration) Kind() Kind   { return KindFunctionDeclaration }
func (*FunctionDefinition) Kind() Kind    { return KindFunctionDefinition }
func (*ParameterList) Kind() Kind         { return KindParameterList }
func (*CodeBlock) Kind() Kind             { return KindCodeBlock }
func (*ForeignCodeBlock) Kind() Kind      { return KindForeignCodeBlock }
func (*FunctionCall) Kind() Kind          { return KindFunctionCall }
func (*IdentifierChain) Kind() Kind       { return KindIdentifierChain }
func (*FunctionCallArguments) Kind() Kind { return KindFunctionCallArguments }
func (*Assignment) Kind() Kind            { return KindAssignment }
func (*Identifier) Kind() Kind            { return KindIdentifier }
func (*VariableType) Kind() Kind          { return KindVariableType }
func (*DeclarationMarker) Kind() Kind     { return KindDeclarationMarker }
func (*AssignmentOperator) Kind() Kind    { return KindAssignmentOperator }
func (*StringLiteral) Kind() Kind         { return KindStringLiteral }
func (*NumberLiteral) Kind() Kind         { return KindNumberLiteral }
func (*Spaces) Kind() Kind                { return KindSpaces }

func (n *Module) Span() source.Span                { return n.Loc }
func (n *Declaration) Span() source.Span           { return n.Loc }
func (n *FunctionDeclaration) Span() source.Span   { return n.Loc }
func (n *FunctionDefinition) Span() source.Span    { return n.Loc }
func (n *ParameterList) Span() source.Span         { return n.Loc }
func (n *CodeBlock) Span() source.Span             { return n.Loc }
func (n *ForeignCodeBlock) Span() source.Span      { return n.Loc }
func (n *FunctionCall) Span() source.Span          { return n.Loc }
func (n *IdentifierChain) Span() source.Span       { return n.Loc }
func (n *FunctionCallArguments) Span() source.Span { return n.Loc }
func (n *Assignment) Span() source.Span            { return n.Loc }
func (n *Identifier) Span() source.Span            { return n.Loc }
func (n *VariableType) Span() source.Span          { return n.Loc }
func (n *DeclarationMarker) Span() source.Span     { return n.Loc }
func (n *AssignmentOperator) Span() source.Span    { return n.Loc }
func (n *StringLiteral) Span() source.Span         { return n.Loc }
func (n *NumberLiteral) Span() source.Span         { return n.Loc }
func (n *Spaces) Span() source.Span                { return n.Loc }

func (n *Module) Children() []Node {
	out := make([]Node, 0, len(n.Stmts))
	for _, s := range n.Stmts {
		out = append(out, s)
	}
	return out
}

func (n *Declaration) Children() []Node {
	return []Node{n.Name, n.Marker, n.Type}
}

func (n *FunctionDeclaration) Children() []Node {
	return []Node{n.Name, n.Marker, n.Def}
}

func (n *FunctionDefinition) Children() []Node {
	return []Node{n.Keyword, n.Params, n.Body}
}

func (n *CodeBlock) Children() []Node {
	out := make([]Node, 0, len(n.Items))
	for _, it := range n.Items {
		out = append(out, it)
	}
	return out
}

func (n *FunctionCall) Children() []Node {
	return []Node{n.Callee, n.Args}
}

func (n *IdentifierChain) Children() []Node {
	out := make([]Node, 0, len(n.Segments))
	for _, s := range n.Segments {
		out = append(out, s)
	}
	return out
}

func (n *FunctionCallArguments) Children() []Node {
	out := make([]Node, 0, len(n.Args))
	for _, a := range n.Args {
		out = append(out, a)
	}
	return out
}

func (n *Assignment) Children() []Node {
	return []Node{n.Target, n.Op, n.Value}
}

func (*ParameterList) Children() []Node      { return nil }
func (*ForeignCodeBlock) Children() []Node   { return nil }
func (*Identifier) Children() []Node         { return nil }
func (*VariableType) Children() []Node       { return nil }
func (*DeclarationMarker) Children() []Node  { return nil }
func (*AssignmentOperator) Children() []Node { return nil }
func (*StringLiteral) Children() []Node      { return nil }
func (*NumberLiteral) Children() []Node      { return nil }
func (*Spaces) Children() []Node             { return nil }

func (*Module) Leaf() []string                { return nil }
func (*Declaration) Leaf() []string           { return nil }
func (*FunctionDeclaration) Leaf() []string   { return nil }
func (*FunctionDefinition) Leaf() []string    { return nil }
func (*CodeBlock) Leaf() []string             { return nil }
func (*FunctionCall) Leaf() []string          { return nil }
func (*IdentifierChain) Leaf() []string       { return nil }
func (*FunctionCallArguments) Leaf() []string { return nil }
func (*Assignment) Leaf() []string            { return nil }

func (*ParameterList) Leaf() []string      { return []string{"[", "]"} }
func (n *ForeignCodeBlock) Leaf() []string { return append([]string(nil), n.Lines...) }
func (n *Identifier) Leaf() []string       { return []string{n.Name} }
func (n *VariableType) Leaf() []string     { return []string{n.Name} }
func (*DeclarationMarker) Leaf() []string  { return []string{":"} }
func (*AssignmentOperator) Leaf() []string { return []string{"="} }
func (n *StringLiteral) Leaf() []string    { return []string{n.Raw} }
func (n *NumberLiteral) Leaf() []string    { return []string{n.Raw} }
func (n *Spaces) Leaf() []string           { return append([]string(nil), n.Runs...) }

func (*Module) node()                {}
func (*Declaration) node()           {}
func (*FunctionDeclaration) node()   {}
func (*FunctionDefinition) node()    {}
func (*ParameterList) node()         {}
func (*CodeBlock) node()             {}
func (*ForeignCodeBlock) node()      {}
func (*FunctionCall) node()          {}
func (*IdentifierChain) node()       {}
func (*FunctionCallArguments) node() {}
func (*Assignment) node()            {}
func (*Identifier) node()            {}
func (*VariableType) node()          {}
func (*DeclarationMarker) node()     {}
func (*AssignmentOperator) node()    {}
func (*StringLiteral) node()         {}
func (*NumberLiteral) node()         {}
func (*Spaces) node()                {}

func (*Declaration) topLevel()         {}
func (*FunctionDeclaration) topLevel() {}
func (*Assignment) topLevel()          {}
func (*Spaces) topLevel()              {}

func (*FunctionCall) blockItem()     {}
func (*ForeignCodeBlock) blockItem() {}

func (*StringLiteral) argument()   {}
func (*NumberLiteral) argument()   {}
func (*IdentifierChain) argument() {}

func (*StringLiteral) literal() {}
func (*NumberLiteral) literal() {}

// Dotted joins the segments with '.'.
func (n *IdentifierChain) Dotted() string {
	parts := make([]string, len(n.Segments))
	for i, s := range n.Segments {
		parts[i] = s.Name
	}
	return strings.Join(parts, ".")
}

// Quote returns the opening quote character.
func (n *StringLiteral) Quote() byte {
	if n.Raw == "" {
		return 0
	}
	return n.Raw[0]
}

// Terminated reports whether the literal ends with an unescaped matching quote.
func (n *StringLiteral) Terminated() bool {
	if len(n.Raw) < 2 || n.Raw[len(n.Raw)-1] != n.Raw[0] {
		return false
	}
	backslashes := 0
	for i := len(n.Raw) - 2; i > 0 && n.Raw[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 0
}

// Body returns the text between the quotes with escapes untouched.
func (n *StringLiteral) Body() string {
	if len(n.Raw) == 0 {
		return ""
	}
	if n.Terminated() {
		return n.Raw[1 : len(n.Raw)-1]
	}
	return n.Raw[1:]
}
