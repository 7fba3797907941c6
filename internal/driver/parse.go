package driver

import (
	"fmt"

	"headspace/internal/ast"
	"headspace/internal/diag"
	"headspace/internal/lexer"
	"headspace/internal/parser"
	"headspace/internal/sema"
	"headspace/internal/source"
	"headspace/internal/token"
)

// ParseOptions tunes Parse and ParseSource.
type ParseOptions struct {
	MaxDiagnostics  int
	SingleStatement bool
	KeepTrivia      bool
	// Check runs sema.Check on a successful parse.
	Check bool
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Module  *ast.Module // nil for empty input or on a parse error
	Bag     *diag.Bag
	// Err is the *parser.ParseError, if any. It is also recorded in Bag.
	Err error
}

// Parse loads, tokenizes and parses one file. The returned error covers
// loading only; syntax errors land in ParseResult.Err and Bag.
func Parse(path string, opts ParseOptions) (*ParseResult, error) {
	bag := diag.NewBag(opts.MaxDiagnostics)
	fs, file, err := LoadFile(path, bag)
	if err != nil {
		return &ParseResult{FileSet: fs, Bag: bag}, err
	}
	return parseFile(fs, file, bag, opts), nil
}

// ParseSource parses an in-memory buffer.
func ParseSource(name string, content []byte, opts ParseOptions) *ParseResult {
	fs, file := LoadSource(name, content)
	return parseFile(fs, file, diag.NewBag(opts.MaxDiagnostics), opts)
}

func parseFile(fs *source.FileSet, file *source.File, bag *diag.Bag, opts ParseOptions) *ParseResult {
	reporter := diag.NewBagReporter(bag)
	toks := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	mod, err := parser.Parse(toks, parser.Options{
		Reporter:        reporter,
		SingleStatement: opts.SingleStatement,
		KeepTrivia:      opts.KeepTrivia,
	})
	res := &ParseResult{
		FileSet: fs,
		File:    file,
		Tokens:  toks,
		Module:  mod,
		Bag:     bag,
	}
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", file.Path, err)
		res.Module = nil
		return res
	}
	if opts.Check {
		checkModule(mod, reporter)
	}
	return res
}

func parseTokens(toks []token.Token, reporter diag.Reporter, single bool) (*ast.Module, error) {
	return parser.Parse(toks, parser.Options{Reporter: reporter, SingleStatement: single})
}

func checkModule(mod *ast.Module, reporter diag.Reporter) {
	sema.Check(mod, reporter)
}
