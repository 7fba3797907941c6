package ast

import (
	"testing"
)

func helloModule() *Module {
	str := &StringLiteral{Raw: "'Hello World!'"}
	call := &FunctionCall{
		Callee: &IdentifierChain{Segments: []*Identifier{{Name: "os"}, {Name: "print"}}},
		Args:   &FunctionCallArguments{Args: []Argument{str}},
	}
	return &Module{Stmts: []TopLevel{
		&Assignment{
			Target: &Identifier{Name: "moduleName"},
			Op:     &AssignmentOperator{},
			Value:  &StringLiteral{Raw: `"hello"`},
		},
		&FunctionDeclaration{
			Name:   &Identifier{Name: "main"},
			Marker: &DeclarationMarker{},
			Def: &FunctionDefinition{
				Keyword: &Identifier{Name: "function"},
				Params:  &ParameterList{},
				Body:    &CodeBlock{Items: []BlockItem{call}},
			},
		},
	}}
}

func TestLeafAndBranchAreExclusive(t *testing.T) {
	for n := range All(helloModule()) {
		children, leaf := n.Children(), n.Leaf()
		if n.Kind().IsLeaf() {
			if children != nil {
				t.Errorf("%s: leaf kind has children", n.Kind())
			}
			if len(leaf) == 0 {
				t.Errorf("%s: leaf kind without text", n.Kind())
			}
		} else if leaf != nil {
			t.Errorf("%s: branch kind has leaf text", n.Kind())
		}
	}
}

func TestWalkOrderAndSkip(t *testing.T) {
	var kinds []Kind
	Walk(helloModule(), func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KindAssignment
	})
	want := []Kind{
		KindModule,
		KindAssignment,
		KindFunctionDeclaration, KindIdentifier, KindDeclarationMarker,
		KindFunctionDefinition, KindIdentifier, KindParameterList, KindCodeBlock,
		KindFunctionCall, KindIdentifierChain, KindIdentifier, KindIdentifier,
		KindFunctionCallArguments, KindStringLiteral,
	}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("step %d: got %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestWalkNilModule(t *testing.T) {
	var m *Module
	Walk(m, func(Node) bool {
		t.Fatal("visited nil module")
		return true
	})
}

func TestDotted(t *testing.T) {
	chain := &IdentifierChain{Segments: []*Identifier{{Name: "a"}, {Name: "b"}, {Name: "c"}}}
	if got := chain.Dotted(); got != "a.b.c" {
		t.Fatalf("Dotted() = %q", got)
	}
}

func TestStringLiteralBody(t *testing.T) {
	cases := []struct {
		raw        string
		terminated bool
		body       string
	}{
		{`'Hello World!'`, true, "Hello World!"},
		{`"a\"b"`, true, `a\"b`},
		{`'it\'s'`, true, `it\'s`},
		{`'open`, false, "open"},
		{`"ends\"`, false, `ends\"`},
		{`"\\"`, true, `\\`},
		{`'`, false, ""},
	}
	for _, tc := range cases {
		lit := &StringLiteral{Raw: tc.raw}
		if lit.Terminated() != tc.terminated {
			t.Errorf("%s: Terminated() = %v", tc.raw, lit.Terminated())
		}
		if lit.Body() != tc.body {
			t.Errorf("%s: Body() = %q, want %q", tc.raw, lit.Body(), tc.body)
		}
	}
}

func TestKindNames(t *testing.T) {
	if KindFunctionCallArguments.String() != "FunctionCallArguments" {
		t.Fatalf("unexpected name %q", KindFunctionCallArguments)
	}
	if Kind(200).String() != "Unknown" {
		t.Fatalf("out-of-range kind should be Unknown")
	}
}
