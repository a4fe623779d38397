package lexer

import (
	"jsfmt/internal/diag"
	"jsfmt/internal/token"
)

// scanWhitespace greedily consumes a run of whitespace into one token.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpaceByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

// scanSlash decides between a comment, a regex literal, and the division
// operator. '/' opens a regex only when the previous significant token
// cannot end an expression (see token.RegexAllowedAfter).
func (lx *Lexer) scanSlash() token.Token {
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && (b1 == '/' || b1 == '*') {
		return lx.scanComment()
	}
	if token.RegexAllowedAfter(lx.prev, lx.hasPrev) {
		if tok, ok := lx.scanRegex(); ok {
			return tok
		}
	}
	return lx.scanOperatorOrPunct()
}

func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	if lx.cursor.Peek() == '/' {
		// line comment: runs to end of line, newline excluded
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return lx.emit(token.Comment, start)
	}

	// block comment: runs to the matching '*/'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(token.Comment, start)
		}
		lx.cursor.Bump()
	}

	// absorbed to end of input
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedComment, diag.SevWarning, sp, "unterminated block comment")
	return lx.emit(token.Comment, start)
}
