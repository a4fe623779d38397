package lexer

import (
	"jsfmt/internal/diag"
	"jsfmt/internal/token"
)

// scanString consumes a string literal delimited by ', ", or `. Backslash
// escapes are honored but not validated. For template literals, an embedded
// ${...} expression is skipped by counting nested braces, so the token spans
// the whole literal including its expression holes. An unterminated literal
// is absorbed to end of input and reported as a warning.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	for !lx.cursor.EOF() {
		if lx.cursor.Eat(quote) {
			return lx.emit(token.String, start)
		}

		b := lx.cursor.Peek()
		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}

		if quote == '`' && b == '$' && lx.cursor.PeekAt(1) == '{' {
			lx.cursor.Bump() // '$'
			lx.cursor.Bump() // '{'
			lx.skipTemplateExpr()
			continue
		}

		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, diag.SevWarning, sp, "unterminated string literal")
	return lx.emit(token.String, start)
}

// skipTemplateExpr consumes a ${...} hole up to its matching closing brace.
// Expression contents are not tokenized; only brace depth is tracked.
func (lx *Lexer) skipTemplateExpr() {
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		switch lx.cursor.Bump() {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
}
