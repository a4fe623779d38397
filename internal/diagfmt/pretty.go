// Package diagfmt renders diagnostics and token dumps for the CLI.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsfmt/internal/diag"
	"jsfmt/internal/source"
)

// PrettyOpts configures human-readable diagnostic output.
type PrettyOpts struct {
	// Color enables severity coloring.
	Color bool
	// MaxLineWidth truncates overlong context lines; 0 means no limit.
	MaxLineWidth int
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
)

// Pretty renders every diagnostic in the bag as
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//	    <source line>
//	    ^~~~
//
// followed by any notes in the same shape. Call bag.Sort() first for a
// deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeFinding(w, fs, d.Primary, d.Severity.String(), d.Code.ID(), d.Message, opts)
		for _, note := range d.Notes {
			writeFinding(w, fs, note.Span, "note", "", note.Msg, opts)
		}
	}
}

func writeFinding(w io.Writer, fs *source.FileSet, sp source.Span, sev, code, msg string, opts PrettyOpts) {
	file := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)

	label := sev
	if opts.Color {
		label = severityColor(sev).Sprint(sev)
	}
	if code != "" {
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", file.Path, start.Line, start.Col, label, code, msg)
	} else {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", file.Path, start.Line, start.Col, label, msg)
	}

	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	if opts.MaxLineWidth > 0 {
		line = truncate(line, opts.MaxLineWidth)
	}
	fmt.Fprintf(w, "    %s\n", line)

	caretLen := int(sp.Len())
	if caretLen < 1 {
		caretLen = 1
	}
	if remaining := len(line) - int(start.Col) + 1; caretLen > remaining && remaining > 0 {
		caretLen = remaining
	}
	marker := "^" + strings.Repeat("~", caretLen-1)
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", int(start.Col)-1), marker)
}

func severityColor(sev string) *color.Color {
	switch sev {
	case "error":
		return errColor
	case "warning":
		return warnColor
	default:
		return infoColor
	}
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
