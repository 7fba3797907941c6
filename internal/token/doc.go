// Package token defines lexical token kinds for the headspace compiler.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Space and Comment tokens are first-class; the lexer never drops bytes,
//     so concatenating Text of every token reproduces the input.
//   - Keywords do not exist at this level: "function" and the foreign-code
//     markers are plain identifiers, recognized by the parser.
package token
