package lexer

import (
	"jsfmt/internal/diag"
	"jsfmt/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical findings (unterminated literals). May be
	// nil; the scanner keeps going either way.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}
