// Package validate performs structural checks over a token sequence:
// bracket balance and a few statement-shape heuristics. Findings are
// non-fatal; formatting proceeds regardless, and it is up to the caller to
// inspect the collected diagnostics.
package validate

import (
	"fmt"

	"jsfmt/internal/diag"
	"jsfmt/internal/token"
)

var closerFor = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

var openerFor = map[string]string{
	")": "(",
	"]": "[",
	"}": "{",
}

// keywords that must be followed by an opening parenthesis. The check is a
// low-confidence lint hint: it false-flags keywords used as property names.
var parenKeywords = map[string]struct{}{
	"if":    {},
	"while": {},
	"for":   {},
}

type openBracket struct {
	tok    token.Token
	closer string
}

// Run checks bracket balance and keyword shape, emitting findings through
// the reporter.
func Run(tokens []token.Token, r diag.Reporter) {
	if r == nil {
		r = diag.NopReporter{}
	}

	var stack []openBracket
	for i, tok := range tokens {
		switch tok.Kind {
		case token.Punct:
			if closer, ok := closerFor[tok.Text]; ok {
				stack = append(stack, openBracket{tok: tok, closer: closer})
				continue
			}
			if _, ok := openerFor[tok.Text]; !ok {
				continue
			}
			if len(stack) == 0 {
				r.Report(diag.ValUnexpectedClosing, diag.SevError, tok.Span,
					fmt.Sprintf("unexpected closing %q", tok.Text), nil)
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if open.closer != tok.Text {
				r.Report(diag.ValMismatchedBracket, diag.SevError, tok.Span,
					fmt.Sprintf("mismatched bracket: expected %q, found %q", open.closer, tok.Text),
					[]diag.Note{{Span: open.tok.Span, Msg: fmt.Sprintf("%q opened here", open.tok.Text)}})
			}

		case token.Keyword:
			if _, ok := parenKeywords[tok.Text]; !ok {
				continue
			}
			if next, ok := nextSignificant(tokens, i+1); !ok || next.Text != "(" {
				r.Report(diag.ValMissingParen, diag.SevWarning, tok.Span,
					fmt.Sprintf("missing opening parenthesis after %q", tok.Text), nil)
			}
		}
	}

	// anything still open is reported at its original position
	for _, open := range stack {
		r.Report(diag.ValUnclosedBracket, diag.SevError, open.tok.Span,
			fmt.Sprintf("unclosed %q", open.tok.Text), nil)
	}
}

func nextSignificant(tokens []token.Token, from int) (token.Token, bool) {
	for _, tok := range tokens[from:] {
		if tok.IsSignificant() {
			return tok, true
		}
	}
	return token.Token{}, false
}
