package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"headspace/internal/diag"
	"headspace/internal/source"
)

type palette struct {
	err, warn, info, note *color.Color
	code, gutter, caret   *color.Color
	path                  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgGreen),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		path:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.gutter, p.caret, p.path} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders bag.Items() (sorted by the caller) as:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	   3 | main: function[] [
//	     |                  ^
//
// followed by notes in the same shape when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		sevColor := pal.severity(d.Severity)
		loc := location(fs, d.Primary, opts.PathMode)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			pal.path.Sprint(loc), sevColor.Sprint(d.Severity.String()), pal.code.Sprint(d.Code.ID()), d.Message)
		writeSnippet(w, fs, d.Primary, opts.Context, pal, sevColor)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "%s: %s: %s\n", pal.path.Sprint(location(fs, n.Span, opts.PathMode)), pal.note.Sprint("note"), n.Msg)
			writeSnippet(w, fs, n.Span, 0, pal, pal.note)
		}
	}
	if dropped := bag.Dropped(); dropped > 0 {
		fmt.Fprintf(w, "\n... %d more diagnostics not shown\n", dropped)
	}
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	if fs == nil {
		return "<input>"
	}
	f := fs.Get(sp.File)
	if f == nil {
		return "<input>"
	}
	pos := fs.Position(sp.File, sp.Start)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, mode), pos.Line, pos.Col)
}

// writeSnippet prints the source line under sp with a caret underline.
// Columns are display widths so wide characters line up.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, context int8, pal palette, mark *color.Color) {
	if fs == nil {
		return
	}
	f := fs.Get(sp.File)
	if f == nil || len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(sp)
	gutterWidth := len(fmt.Sprint(start.Line))
	first := start.Line
	if context > 0 && first > uint32(context) {
		first -= uint32(context)
	} else if context > 0 {
		first = 1
	}
	for ln := first; ln < start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), expandTabs(f.GetLine(ln)))
	}

	line := f.GetLine(start.Line)
	fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, start.Line), expandTabs(line))

	prefix := byteSlice(line, int(start.Col)-1)
	underlined := line[len(prefix):]
	if end.Line == start.Line {
		underlined = byteSlice(underlined, int(end.Col)-int(start.Col))
	}
	pad := runewidth.StringWidth(expandTabs(prefix))
	width := runewidth.StringWidth(expandTabs(underlined))
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(w, "%s %s%s\n",
		pal.gutter.Sprintf("%*s |", gutterWidth, ""),
		strings.Repeat(" ", pad),
		mark.Sprint("^"+strings.Repeat("~", width-1)))
}

func byteSlice(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n > len(s) {
		return s
	}
	return s[:n]
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
