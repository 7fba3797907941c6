package ast

import "headspace/internal/source"

// Node is implemented by every syntax tree variant. The set is closed:
// only types in this package satisfy it.
//
// Branch kinds return nil from Leaf; leaf kinds return nil from Children.
type Node interface {
	Kind() Kind
	Span() source.Span
	Children() []Node
	Leaf() []string
	node()
}

// TopLevel is a statement directly inside a Module.
type TopLevel interface {
	Node
	topLevel()
}

// BlockItem is an entry of a function body.
type BlockItem interface {
	Node
	blockItem()
}

// Argument is the optional argument of a call.
type Argument interface {
	Node
	argument()
}

// Literal is the value side of a top-level assignment.
type Literal interface {
	Node
	literal()
}
