package parser

import (
	"testing"

	"headspace/internal/ast"
	"headspace/internal/diag"
	"headspace/internal/lexer"
	"headspace/internal/source"
	"headspace/internal/token"
)

func tokenize(t testing.TB, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hs", []byte(src))
	return lexer.Tokenize(fs.Get(id), lexer.Options{})
}

func parseSource(t *testing.T, src string, opts Options) (*ast.Module, *diag.Bag, error) {
	t.Helper()
	bag := diag.NewBag(0)
	if opts.Reporter == nil {
		opts.Reporter = diag.NewBagReporter(bag)
	}
	mod, err := Parse(tokenize(t, src), opts)
	return mod, bag, err
}

func mustParse(t *testing.T, src string) *ast.Module {
	t.Helper()
	mod, bag, err := parseSource(t, src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if mod == nil {
		t.Fatalf("expected a module for %q", src)
	}
	return mod
}

func expectParseError(t *testing.T, src string, code diag.Code) *ParseError {
	t.Helper()
	mod, bag, err := parseSource(t, src, Options{})
	if err == nil {
		t.Fatalf("expected parse error for %q, got module %v", src, mod)
	}
	if mod != nil {
		t.Fatalf("a failed parse must not return a tree")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type %T, want *ParseError", err)
	}
	if perr.Code != code {
		t.Fatalf("%q: code %s, want %s (%v)", src, perr.Code.ID(), code.ID(), perr)
	}
	if !bag.HasErrors() {
		t.Fatalf("parse error was not reported")
	}
	return perr
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}
