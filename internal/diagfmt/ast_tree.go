package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"headspace/internal/ast"
	"headspace/internal/source"
)

type treeNode struct {
	label    string
	span     string
	children []*treeNode
}

func buildTreeNode(n ast.Node, fs *source.FileSet) *treeNode {
	node := &treeNode{label: n.Kind().String(), span: formatSpan(n.Span(), fs)}
	if leaf := n.Leaf(); leaf != nil {
		switch v := n.(type) {
		case *ast.ForeignCodeBlock:
			node.label = fmt.Sprintf("%s %s (%d lines)", n.Kind(), v.Lang, len(leaf))
			node.children = quotedChildren(leaf)
		case *ast.Spaces:
			node.label = fmt.Sprintf("%s (%d runs)", n.Kind(), len(leaf))
			node.children = quotedChildren(leaf)
		default:
			quoted := make([]string, len(leaf))
			for i, l := range leaf {
				quoted[i] = strconv.Quote(l)
			}
			node.label += " " + strings.Join(quoted, " ")
		}
		return node
	}
	for _, c := range n.Children() {
		node.children = append(node.children, buildTreeNode(c, fs))
	}
	return node
}

func quotedChildren(lines []string) []*treeNode {
	out := make([]*treeNode, len(lines))
	for i, l := range lines {
		out[i] = &treeNode{label: strconv.Quote(l)}
	}
	return out
}

func formatSpan(sp source.Span, fs *source.FileSet) string {
	if fs == nil || fs.Get(sp.File) == nil {
		return fmt.Sprintf("%d..%d", sp.Start, sp.End)
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

// FormatTreePretty prints the tree with box-drawing branches and the spans
// aligned in a right-hand column.
func FormatTreePretty(w io.Writer, mod *ast.Module, fs *source.FileSet) error {
	if mod == nil {
		_, err := fmt.Fprintln(w, "<empty module>")
		return err
	}
	type row struct{ text, span string }
	var rows []row
	var walk func(n *treeNode, prefix string, last, root bool)
	walk = func(n *treeNode, prefix string, last, root bool) {
		branch, next := "", ""
		if !root {
			branch, next = "├── ", "│   "
			if last {
				branch, next = "└── ", "    "
			}
		}
		rows = append(rows, row{text: prefix + branch + n.label, span: n.span})
		for i, c := range n.children {
			walk(c, prefix+next, i == len(n.children)-1, false)
		}
	}
	walk(buildTreeNode(mod, fs), "", true, true)

	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r.text))
	}
	for _, r := range rows {
		line := r.text
		if r.span != "" {
			line = runewidth.FillRight(r.text, width) + "  " + r.span
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// NodeJSON is the generic JSON form of a syntax node.
type NodeJSON struct {
	Kind     string      `json:"kind"`
	Span     source.Span `json:"span"`
	Lang     string      `json:"lang,omitempty"`
	Leaf     []string    `json:"leaf,omitempty"`
	Children []NodeJSON  `json:"children,omitempty"`
}

func buildNodeJSON(n ast.Node) NodeJSON {
	out := NodeJSON{Kind: n.Kind().String(), Span: n.Span(), Leaf: n.Leaf()}
	if fb, ok := n.(*ast.ForeignCodeBlock); ok {
		out.Lang = fb.Lang
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, buildNodeJSON(c))
	}
	return out
}

// FormatTreeJSON writes the tree as nested JSON objects; an empty module is null.
func FormatTreeJSON(w io.Writer, mod *ast.Module) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if mod == nil {
		return enc.Encode(nil)
	}
	return enc.Encode(buildNodeJSON(mod))
}
