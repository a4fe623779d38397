package format

// Writer accumulates generated output line by line. It tracks the current
// indentation depth and whether the in-progress line already has content,
// and keeps whitespace canonical: spaces and newlines are idempotent, and
// trailing spaces never survive a line flush.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a writer sized for roughly the original input.
func NewWriter(opt Options, sizeHint int) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		buf:         make([]byte, 0, sizeHint+sizeHint/4),
		atLineStart: true,
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// LineHasContent reports whether the current line already holds anything.
func (w *Writer) LineHasContent() bool {
	return !w.atLineStart
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.IndentType == IndentTabs {
		for i := 0; i < w.indentLevel; i++ {
			w.buf = append(w.buf, '\t')
		}
	} else {
		for i := 0; i < w.indentLevel*w.opt.IndentSize; i++ {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString appends s, emitting indentation first when at line start.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

// Space appends one space unless the line is empty or already ends with
// whitespace.
func (w *Writer) Space() {
	if w.atLineStart || len(w.buf) == 0 {
		return
	}
	last := w.buf[len(w.buf)-1]
	if last == ' ' || last == '\t' || last == '\n' {
		return
	}
	w.buf = append(w.buf, ' ')
}

// Newline flushes the current line. Trailing spaces are trimmed first, and
// flushing an already-empty line is a no-op.
func (w *Writer) Newline() {
	w.trimLineTrailingSpace()
	if w.atLineStart {
		return
	}
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// BlankLine flushes the current line and guarantees exactly one empty line
// before the next content.
func (w *Writer) BlankLine() {
	w.Newline()
	if len(w.buf) == 0 {
		return
	}
	if len(w.buf) >= 2 && w.buf[len(w.buf)-1] == '\n' && w.buf[len(w.buf)-2] == '\n' {
		return
	}
	w.buf = append(w.buf, '\n')
}

func (w *Writer) trimLineTrailingSpace() {
	for len(w.buf) > 0 {
		last := w.buf[len(w.buf)-1]
		if last != ' ' && last != '\t' {
			return
		}
		w.buf = w.buf[:len(w.buf)-1]
	}
}

// IndentPush increases the indentation depth.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation depth, floored at zero.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
