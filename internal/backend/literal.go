package backend

import (
	"fmt"
	"strings"

	"headspace/internal/ast"
)

// doubleQuoted renders a string literal with double quotes. Escapes are kept
// except \', which Go rejects and becomes a plain quote. Bare double quotes
// from a single-quoted source are escaped, and a dangling backslash in an
// unterminated literal is doubled so the result still closes.
func doubleQuoted(lit *ast.StringLiteral) string {
	body := lit.Body()
	var b strings.Builder
	b.Grow(len(body) + 2)
	b.WriteByte('"')
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 == len(body):
			b.WriteString(`\\`)
		case c == '\\':
			if body[i+1] == '\'' {
				b.WriteByte('\'')
			} else {
				b.WriteByte(c)
				b.WriteByte(body[i+1])
			}
			i++
		case c == '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// rawString keeps the source quoting and closes an unterminated literal.
func rawString(lit *ast.StringLiteral) string {
	if lit.Terminated() {
		return lit.Raw
	}
	raw := lit.Raw
	if danglingBackslash(lit.Body()) {
		raw += `\`
	}
	return raw + string(lit.Quote())
}

// danglingBackslash reports whether body ends in an unpaired backslash.
func danglingBackslash(body string) bool {
	n := 0
	for i := len(body) - 1; i >= 0 && body[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// numberString prints a number exactly as written: "5." stays "5.".
func numberString(n *ast.NumberLiteral) string {
	return `"` + n.Raw + `"`
}

// argumentRenderer maps each argument variant to target text.
type argumentRenderer struct {
	str    func(*ast.StringLiteral) string
	number func(*ast.NumberLiteral) string
	ident  func(*ast.IdentifierChain) string
}

func (r argumentRenderer) render(arg ast.Argument) string {
	switch a := arg.(type) {
	case *ast.StringLiteral:
		return r.str(a)
	case *ast.NumberLiteral:
		return r.number(a)
	case *ast.IdentifierChain:
		return r.ident(a)
	default:
		panic(fmt.Sprintf("backend: unexpected argument %T", arg))
	}
}

func dotted(c *ast.IdentifierChain) string { return c.Dotted() }
