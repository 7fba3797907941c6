package driver

import (
	"headspace/internal/diag"
	"headspace/internal/lexer"
	"headspace/internal/source"
	"headspace/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads and tokenizes one file. The token list ends with EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	bag := diag.NewBag(maxDiagnostics)
	fs, file, err := LoadFile(path, bag)
	if err != nil {
		return &TokenizeResult{FileSet: fs, Bag: bag}, err
	}
	return tokenizeFile(fs, file, bag), nil
}

// TokenizeSource tokenizes an in-memory buffer.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs, file := LoadSource(name, content)
	return tokenizeFile(fs, file, diag.NewBag(maxDiagnostics))
}

func tokenizeFile(fs *source.FileSet, file *source.File, bag *diag.Bag) *TokenizeResult {
	lx := lexer.New(file, lexer.Options{Reporter: diag.NewBagReporter(bag)})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
