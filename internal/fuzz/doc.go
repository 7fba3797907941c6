// Package fuzztests houses Go fuzz harnesses for the headspace front end
// (source -> lexer -> parser) and the emitters behind it. They guard against
// panics and hangs on arbitrary input.
//
// Seeds come from the repository testdata/*.hs files plus a few inline
// snippets.
package fuzztests
