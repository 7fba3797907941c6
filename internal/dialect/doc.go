// Package dialect guesses which target language a foreign code block is
// written in. Sema uses it to warn when a block tagged for one target reads
// like another, which usually means a copy-paste into the wrong block.
//
// Evidence collection never changes parsing or emission; the result only
// feeds an optional warning.
package dialect
