package sema

import (
	"fmt"

	"headspace/internal/ast"
)

// Action is the meaning of one function body item.
type Action interface {
	Node() ast.Node
	action()
}

// PrintAction writes Arg to standard output with no trailing newline.
// Arg is nil for os.print[], which prints nothing.
type PrintAction struct {
	Call *ast.FunctionCall
	Arg  ast.Argument
}

// ForeignAction carries raw lines for the target named by Block.Lang.
type ForeignAction struct {
	Block *ast.ForeignCodeBlock
}

// IgnoredAction is a call with no meaning in any target. It produces no
// output unless strict mode turns it into an error.
type IgnoredAction struct {
	Call *ast.FunctionCall
}

func (a PrintAction) Node() ast.Node   { return a.Call }
func (a ForeignAction) Node() ast.Node { return a.Block }
func (a IgnoredAction) Node() ast.Node { return a.Call }

func (PrintAction) action()   {}
func (ForeignAction) action() {}
func (IgnoredAction) action() {}

// BodyActions classifies the body of fn in source order.
func BodyActions(fn *ast.FunctionDeclaration) []Action {
	if fn == nil {
		return nil
	}
	items := fn.Def.Body.Items
	out := make([]Action, 0, len(items))
	for _, item := range items {
		switch it := item.(type) {
		case *ast.FunctionCall:
			arg, isPrint, _ := PrintArgument(it)
			if isPrint {
				out = append(out, PrintAction{Call: it, Arg: arg})
			} else {
				out = append(out, IgnoredAction{Call: it})
			}
		case *ast.ForeignCodeBlock:
			out = append(out, ForeignAction{Block: it})
		default:
			panic(fmt.Sprintf("sema: unexpected block item %T", item))
		}
	}
	return out
}

// HasPrint reports whether any action prints something.
func HasPrint(actions []Action) bool {
	for _, a := range actions {
		if p, ok := a.(PrintAction); ok && p.Arg != nil {
			return true
		}
	}
	return false
}
