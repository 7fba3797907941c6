package format

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"headspace/internal/ast"
	"headspace/internal/diag"
	"headspace/internal/lexer"
	"headspace/internal/parser"
	"headspace/internal/source"
	"headspace/internal/token"
)

// Options controls indentation.
type Options struct {
	// IndentWidth is the number of spaces per level. Zero means 2.
	IndentWidth int
	// UseTabs indents with one tab per level instead of spaces.
	UseTabs bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 2
	}
	return o
}

// ErrUnformattable is returned for input the formatter would change the
// meaning of: syntax errors, and anything the parser skips over with a
// warning.
var ErrUnformattable = errors.New("source cannot be formatted")

// UnformattableError carries the diagnostic that blocked formatting.
type UnformattableError struct {
	Diag diag.Diagnostic
}

func (e *UnformattableError) Error() string {
	return fmt.Sprintf("%s: %s", e.Diag.Code.ID(), e.Diag.Message)
}

func (e *UnformattableError) Unwrap() error { return ErrUnformattable }

// FormatSource parses content and prints it in canonical layout.
func FormatSource(name string, content []byte, opt Options) ([]byte, error) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual(name, content))
	mod, toks, err := parseStrict(sf)
	if err != nil {
		return nil, err
	}
	return FormatFile(sf, mod, toks, opt), nil
}

// parseStrict lexes and parses sf, refusing any warning: a skipped tail or an
// unterminated literal would be lost or altered by reprinting.
func parseStrict(sf *source.File) (*ast.Module, []token.Token, error) {
	bag := diag.NewBag(16)
	rep := diag.NewBagReporter(bag)
	toks := lexer.Tokenize(sf, lexer.Options{Reporter: rep})
	mod, err := parser.Parse(toks, parser.Options{Reporter: rep})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUnformattable, err)
	}
	bag.Sort()
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevWarning {
			return nil, nil, &UnformattableError{Diag: d}
		}
	}
	return mod, toks, nil
}

type printer struct {
	src      []byte
	w        *Writer
	comments []token.Token
	ci       int
	cursor   uint32 // source offset already accounted for
}

// FormatFile prints mod, taking comments from toks. The output always ends
// with a newline unless it is empty.
func FormatFile(sf *source.File, mod *ast.Module, toks []token.Token, opt Options) []byte {
	p := &printer{
		src: sf.Content,
		w:   NewWriter(opt, len(sf.Content)),
	}
	for _, t := range toks {
		if t.Kind == token.Comment {
			p.comments = append(p.comments, t)
		}
	}
	if mod != nil {
		for _, stmt := range mod.Stmts {
			if _, ok := stmt.(*ast.Spaces); ok {
				continue
			}
			p.gap(stmt.Span().Start, true, true)
			p.printTop(stmt)
		}
	}
	p.gap(uint32(len(p.src)), false, false)
	if !p.w.Empty() && !p.w.atLineStart {
		p.w.Newline()
	}
	return p.w.Bytes()
}

// gap writes the comments between the cursor and to, keeping at most one
// blank line wherever the source had one. With force the next construct
// starts on a fresh line; without keepBlank no blank line precedes it.
func (p *printer) gap(to uint32, force, keepBlank bool) {
	for ; p.ci < len(p.comments); p.ci++ {
		c := p.comments[p.ci]
		if c.Span.Start >= to {
			break
		}
		if c.Span.Start < p.cursor {
			continue
		}
		text := strings.TrimRight(c.Text, "\r\n")
		nl := p.newlines(p.cursor, c.Span.Start)
		if nl == 0 && !p.w.Empty() && !p.w.atLineStart {
			p.w.WriteString(" ")
		} else {
			p.breakLines(nl, true)
		}
		p.w.WriteString(text)
		p.cursor = c.Span.Start + uint32(len(text))
	}
	nl := p.newlines(p.cursor, to)
	if !keepBlank {
		nl = min(nl, 1)
	}
	p.breakLines(nl, force)
	p.cursor = max(p.cursor, to)
}

func (p *printer) breakLines(nl int, force bool) {
	if p.w.Empty() {
		return
	}
	if nl >= 2 {
		p.w.BlankLine()
		return
	}
	if (force || nl > 0) && !p.w.atLineStart {
		p.w.Newline()
	}
}

func (p *printer) newlines(from, to uint32) int {
	if from >= to || int(to) > len(p.src) {
		return 0
	}
	return bytes.Count(p.src[from:to], []byte{'\n'})
}

// hasComment reports whether a comment starts inside [start, end).
func (p *printer) hasComment(start, end uint32) bool {
	for _, c := range p.comments[p.ci:] {
		if c.Span.Start >= end {
			return false
		}
		if c.Span.Start >= start {
			return true
		}
	}
	return false
}

// copySource writes the original text of sp and moves past it.
func (p *printer) copySource(sp source.Span) {
	p.w.WriteString(string(p.src[sp.Start:sp.End]))
	p.cursor = sp.End
}

func (p *printer) printTop(stmt ast.TopLevel) {
	sp := stmt.Span()
	switch n := stmt.(type) {
	case *ast.Assignment:
		if p.hasComment(sp.Start, sp.End) {
			p.copySource(sp)
			return
		}
		p.w.WriteString(n.Target.Name + " = " + literalText(n.Value))
	case *ast.Declaration:
		if p.hasComment(sp.Start, sp.End) {
			p.copySource(sp)
			return
		}
		p.w.WriteString(n.Name.Name + ": " + n.Type.Name)
	case *ast.FunctionDeclaration:
		p.printFunction(n)
		return
	default:
		p.copySource(sp)
		return
	}
	p.cursor = sp.End
}

func (p *printer) printFunction(fn *ast.FunctionDeclaration) {
	body := fn.Def.Body
	if p.hasComment(fn.Loc.Start, body.Loc.Start+1) {
		p.copySource(fn.Loc)
		return
	}
	p.w.WriteString(fn.Name.Name + ": function[][")
	p.w.MarkOpen()
	p.cursor = body.Loc.Start + 1

	p.w.Indent()
	for _, item := range body.Items {
		p.gap(item.Span().Start, true, true)
		p.printItem(item)
	}
	closeAt := body.Loc.End - 1
	p.gap(closeAt, len(body.Items) > 0 || p.newlines(body.Loc.Start, closeAt) > 0, false)
	p.w.Dedent()
	p.w.WriteString("]")
	p.cursor = body.Loc.End
}

func (p *printer) printItem(item ast.BlockItem) {
	sp := item.Span()
	switch n := item.(type) {
	case *ast.FunctionCall:
		if p.hasComment(sp.Start, sp.End) {
			p.copySource(sp)
			return
		}
		arg := ""
		if n.Args != nil && len(n.Args.Args) > 0 {
			arg = argumentText(n.Args.Args[0])
		}
		p.w.WriteString(n.Callee.Dotted() + "[" + arg + "]")
	case *ast.ForeignCodeBlock:
		p.w.WriteString("BEGIN_FOREIGN_CODE_" + n.Lang)
		p.w.Newline()
		for _, line := range n.Lines {
			p.w.WriteRaw(line)
			p.w.Newline()
		}
		p.w.WriteString("END_FOREIGN_CODE_" + n.Lang)
	default:
		p.copySource(sp)
		return
	}
	p.cursor = sp.End
}

func literalText(l ast.Literal) string {
	switch v := l.(type) {
	case *ast.StringLiteral:
		return v.Raw
	case *ast.NumberLiteral:
		return v.Raw
	}
	return ""
}

func argumentText(a ast.Argument) string {
	switch v := a.(type) {
	case *ast.StringLiteral:
		return v.Raw
	case *ast.NumberLiteral:
		return v.Raw
	case *ast.IdentifierChain:
		return v.Dotted()
	}
	return ""
}
