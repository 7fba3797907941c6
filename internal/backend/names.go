package backend

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"headspace/internal/ast"
	"headspace/internal/sema"
)

const defaultModuleName = "main"

// moduleName picks the output base name: moduleName from the source, then
// cfg.FallbackName, then "main". The result is NFC-normalized and never
// contains a path separator.
func moduleName(mod *ast.Module, cfg Config) string {
	name, ok := sema.ModuleName(mod)
	if !ok || strings.TrimSpace(name) == "" {
		name = cfg.FallbackName
	}
	name = strings.TrimSpace(norm.NFC.String(name))
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return defaultModuleName
	}
	return name
}

// javaClassName turns a module name into a public class name: title-cased
// and restricted to identifier characters.
func javaClassName(module string) string {
	title := cases.Title(language.Und, cases.NoLower).String(module)
	var b strings.Builder
	for _, r := range title {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := b.String()
	if name == "" {
		return "Main"
	}
	if r := []rune(name)[0]; unicode.IsDigit(r) {
		name = "_" + name
	}
	return name
}
