package parser

import (
	"errors"
	"slices"
	"testing"

	"headspace/internal/ast"
	"headspace/internal/diag"
)

const helloWorld = `moduleName = "hello"

main: function[] [
  os.print['Hello World!']
]
`

func TestVariableDeclaration(t *testing.T) {
	mod := mustParse(t, "x: int32")
	if len(mod.Stmts) != 1 {
		t.Fatalf("stmts = %d, want 1", len(mod.Stmts))
	}
	decl, ok := mod.Stmts[0].(*ast.Declaration)
	if !ok {
		t.Fatalf("got %T, want *ast.Declaration", mod.Stmts[0])
	}
	if decl.Name.Name != "x" || decl.Type.Name != "int32" {
		t.Fatalf("unexpected declaration %q : %q", decl.Name.Name, decl.Type.Name)
	}
	kinds := []ast.Kind{}
	for _, c := range decl.Children() {
		kinds = append(kinds, c.Kind())
	}
	want := []ast.Kind{ast.KindIdentifier, ast.KindDeclarationMarker, ast.KindVariableType}
	if !slices.Equal(kinds, want) {
		t.Fatalf("children %v, want %v", kinds, want)
	}
	if decl.Marker.Leaf()[0] != ":" {
		t.Fatalf("marker leaf = %v", decl.Marker.Leaf())
	}
}

func TestEmptyInputYieldsNoModule(t *testing.T) {
	for _, src := range []string{"", "   \n\t", "// only a comment\n", "/* block */ \n"} {
		mod, bag, err := parseSource(t, src, Options{})
		if err != nil || mod != nil {
			t.Errorf("%q: got (%v, %v), want (nil, nil)", src, mod, err)
		}
		if bag.Len() != 0 {
			t.Errorf("%q: unexpected diagnostics %v", src, bag.Items())
		}
	}
}

func TestHelloWorld(t *testing.T) {
	mod := mustParse(t, helloWorld)
	if len(mod.Stmts) != 2 {
		t.Fatalf("stmts = %d, want 2", len(mod.Stmts))
	}
	asg, ok := mod.Stmts[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("first stmt %T", mod.Stmts[0])
	}
	if asg.Target.Name != "moduleName" || asg.Value.(*ast.StringLiteral).Raw != `"hello"` {
		t.Fatalf("unexpected assignment %+v", asg)
	}

	fn, ok := mod.Stmts[1].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("second stmt %T", mod.Stmts[1])
	}
	if fn.Name.Name != "main" || fn.Def.Keyword.Name != "function" {
		t.Fatalf("unexpected function %q", fn.Name.Name)
	}
	if got := fn.Def.Params.Leaf(); !slices.Equal(got, []string{"[", "]"}) {
		t.Fatalf("params leaf %v", got)
	}
	if len(fn.Def.Body.Items) != 1 {
		t.Fatalf("body items = %d", len(fn.Def.Body.Items))
	}
	call := fn.Def.Body.Items[0].(*ast.FunctionCall)
	if call.Callee.Dotted() != "os.print" {
		t.Fatalf("callee %q", call.Callee.Dotted())
	}
	if len(call.Args.Args) != 1 || call.Args.Args[0].(*ast.StringLiteral).Raw != "'Hello World!'" {
		t.Fatalf("unexpected args %v", call.Args.Args)
	}
}

func TestTieBreakDeclarationVsAssignment(t *testing.T) {
	mod := mustParse(t, "a: b\nc = 1\nd = 'x'")
	want := []ast.Kind{ast.KindDeclaration, ast.KindAssignment, ast.KindAssignment}
	var got []ast.Kind
	for _, s := range mod.Stmts {
		got = append(got, s.Kind())
	}
	if !slices.Equal(got, want) {
		t.Fatalf("kinds %v, want %v", got, want)
	}
	if _, ok := mod.Stmts[1].(*ast.Assignment).Value.(*ast.NumberLiteral); !ok {
		t.Fatalf("c = 1 should hold a number literal")
	}
}

func TestFunctionKeywordWithoutBracketIsAType(t *testing.T) {
	mod := mustParse(t, "f: function")
	decl, ok := mod.Stmts[0].(*ast.Declaration)
	if !ok || decl.Type.Name != "function" {
		t.Fatalf("got %T, want a Declaration of type function", mod.Stmts[0])
	}
}

func TestUnrecognizedTopLevelEndsModule(t *testing.T) {
	mod, bag, err := parseSource(t, "x: int32\n42 garbage", Options{})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(mod.Stmts) != 1 {
		t.Fatalf("stmts = %d, want 1", len(mod.Stmts))
	}
	if !hasCode(bag, diag.SynUnexpectedTopLevel) || bag.HasErrors() {
		t.Fatalf("want a single SYN2101 warning, got %v", bag.Items())
	}

	mod, _, err = parseSource(t, "just words", Options{})
	if err != nil || mod == nil || len(mod.Stmts) != 0 {
		t.Fatalf("got (%v, %v), want an empty module", mod, err)
	}
}

func TestSingleStatementMode(t *testing.T) {
	mod, bag, err := parseSource(t, helloWorld, Options{SingleStatement: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(mod.Stmts) != 1 || mod.Stmts[0].Kind() != ast.KindAssignment {
		t.Fatalf("want only the moduleName assignment, got %v", mod.Stmts)
	}
	if !hasCode(bag, diag.SynTrailingAfterProgram) {
		t.Fatalf("want SYN2107 info, got %v", bag.Items())
	}

	_, bag, _ = parseSource(t, "x: int32  // done\n", Options{SingleStatement: true})
	if bag.Len() != 0 {
		t.Fatalf("trailing trivia must not be reported: %v", bag.Items())
	}
}

func TestKeepTrivia(t *testing.T) {
	mod, _, err := parseSource(t, "// head\nx: int32\n\ny = 2\n", Options{KeepTrivia: true})
	if err != nil {
		t.Fatal(err)
	}
	var kinds []ast.Kind
	for _, s := range mod.Stmts {
		kinds = append(kinds, s.Kind())
	}
	want := []ast.Kind{ast.KindSpaces, ast.KindDeclaration, ast.KindSpaces, ast.KindAssignment, ast.KindSpaces}
	if !slices.Equal(kinds, want) {
		t.Fatalf("kinds %v, want %v", kinds, want)
	}
	if got := mod.Stmts[0].Leaf(); !slices.Equal(got, []string{"// head\n"}) {
		t.Fatalf("leading trivia %q", got)
	}
}

func TestCallArguments(t *testing.T) {
	src := "main: function[] [ f[] a.b[42] os.print[hello_str] g['s'] ]"
	mod := mustParse(t, src)
	items := mod.Stmts[0].(*ast.FunctionDeclaration).Def.Body.Items
	if len(items) != 4 {
		t.Fatalf("items = %d, want 4", len(items))
	}
	if n := len(items[0].(*ast.FunctionCall).Args.Args); n != 0 {
		t.Fatalf("f[] has %d args", n)
	}
	if _, ok := items[1].(*ast.FunctionCall).Args.Args[0].(*ast.NumberLiteral); !ok {
		t.Fatalf("a.b[42] should carry a number")
	}
	chain, ok := items[2].(*ast.FunctionCall).Args.Args[0].(*ast.IdentifierChain)
	if !ok || chain.Dotted() != "hello_str" {
		t.Fatalf("os.print[hello_str] should carry an identifier chain")
	}
}

func TestForeignCodeBlock(t *testing.T) {
	src := `moduleName = "foreign"

main: function[][
BEGIN_FOREIGN_CODE_C
  char* hello_str = "hello\n";
  /* kept */ int x = 1; // too
END_FOREIGN_CODE_C
  BEGIN_FOREIGN_CODE_PYTHON
    hello_str = 'hello\n'
  END_FOREIGN_CODE_PYTHON
  os.print[hello_str]
]
`
	mod := mustParse(t, src)
	items := mod.Stmts[1].(*ast.FunctionDeclaration).Def.Body.Items
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	c := items[0].(*ast.ForeignCodeBlock)
	if c.Lang != "C" {
		t.Fatalf("lang %q", c.Lang)
	}
	wantC := []string{`  char* hello_str = "hello\n";`, `  /* kept */ int x = 1; // too`}
	if !slices.Equal(c.Lines, wantC) {
		t.Fatalf("C lines %q, want %q", c.Lines, wantC)
	}
	py := items[1].(*ast.ForeignCodeBlock)
	if py.Lang != "PYTHON" || !slices.Equal(py.Lines, []string{`    hello_str = 'hello\n'`}) {
		t.Fatalf("python block %q %q", py.Lang, py.Lines)
	}
	if items[2].Kind() != ast.KindFunctionCall {
		t.Fatalf("third item %s", items[2].Kind())
	}
}

func TestForeignCodeOtherEndMarkerIsContent(t *testing.T) {
	src := "f: function[] [ BEGIN_FOREIGN_CODE_GO\nEND_FOREIGN_CODE_C\nEND_FOREIGN_CODE_GO ]"
	mod := mustParse(t, src)
	fb := mod.Stmts[0].(*ast.FunctionDeclaration).Def.Body.Items[0].(*ast.ForeignCodeBlock)
	if !slices.Equal(fb.Lines, []string{"END_FOREIGN_CODE_C"}) {
		t.Fatalf("lines %q", fb.Lines)
	}
}

func TestForeignCodeCRLF(t *testing.T) {
	src := "f: function[] [\r\nBEGIN_FOREIGN_CODE_C\r\nputs(\"a\");\r\nEND_FOREIGN_CODE_C\r\n]"
	mod := mustParse(t, src)
	fb := mod.Stmts[0].(*ast.FunctionDeclaration).Def.Body.Items[0].(*ast.ForeignCodeBlock)
	if !slices.Equal(fb.Lines, []string{`puts("a");`}) {
		t.Fatalf("lines %q", fb.Lines)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"missing type", "x:", diag.SynExpectIdentifier},
		{"number as type", "x: 5", diag.SynExpectIdentifier},
		{"assignment without literal", "x = y", diag.SynExpectLiteral},
		{"missing params", "main: function[ [ ]", diag.SynExpectRightBracket},
		{"unclosed body", "main: function[] [ os.print['x']", diag.SynExpectRightBracket},
		{"missing call bracket", "main: function[] [ os.print ]", diag.SynExpectLeftBracket},
		{"dangling dot", "main: function[] [ os.[] ]", diag.SynExpectIdentifier},
		{"two arguments", "main: function[] [ f['a' 'b'] ]", diag.SynExpectRightBracket},
		{"symbol in body", "main: function[] [ ; ]", diag.SynUnexpectedToken},
		{"missing end marker", "main: function[] [ BEGIN_FOREIGN_CODE_C x ]", diag.SynForeignMissingEnd},
		{"empty tag", "main: function[] [ BEGIN_FOREIGN_CODE_ END_FOREIGN_CODE_ ]", diag.SynForeignEmptyTag},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectParseError(t, tc.src, tc.code)
		})
	}
}

func TestParseErrorDetails(t *testing.T) {
	perr := expectParseError(t, "x: 5", diag.SynExpectIdentifier)
	if perr.Pos != 3 {
		t.Fatalf("pos = %d, want 3", perr.Pos)
	}
	if perr.Found != `Number "5"` {
		t.Fatalf("found = %q", perr.Found)
	}
	if perr.Span.Start != 3 || perr.Span.End != 4 {
		t.Fatalf("span = %v", perr.Span)
	}
	var target *ParseError
	if !errors.As(perr, &target) {
		t.Fatalf("errors.As failed")
	}
}

func TestParseWithoutReporter(t *testing.T) {
	_, err := Parse(tokenize(t, "x ="), Options{})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func FuzzParse(f *testing.F) {
	f.Add(helloWorld)
	f.Add("x: int32")
	f.Add("f: function[] [ BEGIN_FOREIGN_CODE_C\nx\nEND_FOREIGN_CODE_C ]")
	f.Fuzz(func(t *testing.T, src string) {
		mod, err := Parse(tokenize(t, src), Options{})
		if err != nil && mod != nil {
			t.Fatalf("tree returned together with error")
		}
		if mod != nil {
			ast.Walk(mod, func(n ast.Node) bool {
				if n.Children() != nil && n.Leaf() != nil {
					t.Fatalf("%s has both children and leaf text", n.Kind())
				}
				return true
			})
		}
	})
}
