package token

import "headspace/internal/source"

// Token is a single lexical unit with its kind, literal text and location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Is reports whether the token has kind k and exactly the given text.
func (t Token) Is(k Kind, text string) bool {
	return t.Kind == k && t.Text == text
}

// IsSymbol reports whether the token is the one-character symbol c.
func (t Token) IsSymbol(c byte) bool {
	return t.Kind == Symbol && len(t.Text) == 1 && t.Text[0] == c
}

// Describe renders the token for diagnostics: `Symbol "["`, `end of input`.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF, Invalid:
		return "end of input"
	case Space:
		return "whitespace"
	}
	text := t.Text
	if len(text) > 24 {
		text = text[:21] + "..."
	}
	return t.Kind.String() + " " + quote(text)
}

func quote(s string) string {
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			b = append(b, '\\', 'n')
		case '\t':
			b = append(b, '\\', 't')
		case '\r':
			b = append(b, '\\', 'r')
		case '"', '\\':
			b = append(b, '\\', c)
		default:
			b = append(b, c)
		}
	}
	return string(append(b, '"'))
}
