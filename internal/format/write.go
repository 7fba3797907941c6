package format

import (
	"bytes"
	"strings"
)

// Writer accumulates formatted output and tracks indentation.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
	// afterOpen is set right after a '[' opens a body; no blank line may
	// follow it.
	afterOpen bool
}

func NewWriter(opt Options, sizeHint int) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		buf:         make([]byte, 0, sizeHint),
		atLineStart: true,
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Empty reports whether nothing was written yet.
func (w *Writer) Empty() bool {
	return len(w.buf) == 0
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for range w.indentLevel {
			w.buf = append(w.buf, '\t')
		}
	} else {
		for range w.indentLevel * w.opt.IndentWidth {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes s, indenting first when at the start of a line.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.afterOpen = false
	w.atLineStart = s[len(s)-1] == '\n'
}

// WriteRaw writes s without indentation.
func (w *Writer) WriteRaw(s string) {
	w.buf = append(w.buf, s...)
	w.afterOpen = false
	w.atLineStart = strings.HasSuffix(s, "\n")
}

// Newline ends the current line.
func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// BlankLine makes sure the previous line is followed by exactly one empty
// line. It does nothing at the top of the output or right after an opening
// bracket.
func (w *Writer) BlankLine() {
	if w.Empty() {
		return
	}
	if !w.atLineStart {
		w.Newline()
	}
	if w.afterOpen || bytes.HasSuffix(w.buf, []byte("\n\n")) {
		return
	}
	w.Newline()
}

func (w *Writer) Indent() { w.indentLevel++ }

func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

// MarkOpen records that a body was just opened.
func (w *Writer) MarkOpen() { w.afterOpen = true }
