package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks a token that was expected but absent.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident is a run of letters, digits and underscores starting with a letter.
	Ident
	// Number is a run of digits with at most one decimal point.
	Number
	// String is a quoted literal, quotes included.
	String
	// Comment is a block (/* */) or line (//) comment.
	Comment
	// Space is a maximal run of whitespace.
	Space
	// Symbol is any other single character.
	Symbol
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Ident:   "Identifier",
	Number:  "Number",
	String:  "String",
	Comment: "Comment",
	Space:   "Space",
	Symbol:  "Symbol",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsTrivia reports whether tokens of this kind are skipped by the parser's lookahead.
func (k Kind) IsTrivia() bool {
	return k == Space || k == Comment
}

// IsEOF reports whether k is the end-of-input sentinel.
func (k Kind) IsEOF() bool {
	return k == EOF
}
