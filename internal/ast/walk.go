package ast

import "iter"

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the current node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || isNilNode(n) {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// All yields n and every descendant in pre-order.
func All(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walkYield(n, yield)
	}
}

func walkYield(n Node, yield func(Node) bool) bool {
	if n == nil || isNilNode(n) {
		return true
	}
	if !yield(n) {
		return false
	}
	for _, c := range n.Children() {
		if !walkYield(c, yield) {
			return false
		}
	}
	return true
}

// isNilNode catches typed nil pointers stored in the interface.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *Module:
		return v == nil
	case *CodeBlock:
		return v == nil
	case *FunctionCallArguments:
		return v == nil
	}
	return false
}
