// Package sema holds the backend-agnostic questions every emitter asks of a
// syntax tree: the module name, the main function and what each statement
// of its body means. Emitters only render the typed answers.
package sema
