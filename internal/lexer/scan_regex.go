package lexer

import (
	"jsfmt/internal/diag"
	"jsfmt/internal/token"
)

// scanRegex attempts to consume a regex literal starting at '/'. The scan
// honors backslash escapes and character classes (a '/' inside [...] is
// literal), stops at the first unescaped '/', and then consumes trailing
// flag characters. A bare newline before the closing '/' aborts the regex
// interpretation: the cursor is reset and ok is false so the caller can
// re-scan the '/' as an operator.
func (lx *Lexer) scanRegex() (tok token.Token, ok bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	inClass := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}

		if b == '\n' {
			lx.cursor.Reset(start)
			return token.Token{}, false
		}

		switch b {
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				lx.cursor.Bump()
				for !lx.cursor.EOF() && isRegexFlag(lx.cursor.Peek()) {
					lx.cursor.Bump()
				}
				return lx.emit(token.Regex, start), true
			}
		}

		lx.cursor.Bump()
	}

	// absorbed to end of input
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedRegex, diag.SevWarning, sp, "unterminated regex literal")
	return lx.emit(token.Regex, start), true
}
