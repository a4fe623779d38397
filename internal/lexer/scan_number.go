package lexer

import (
	"jsfmt/internal/token"
)

// scanNumber consumes a decimal numeric literal: digits, at most one decimal
// point, and an optional exponent with an optional sign. The exponent marker
// is only consumed when digits actually follow it, so "1e" scans as the
// number "1" and the identifier "e".
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		if isDec(next) {
			lx.cursor.Bump() // e/E
		} else if (next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2)) {
			lx.cursor.Bump() // e/E
			lx.cursor.Bump() // sign
		} else {
			return lx.emit(token.Number, start)
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.emit(token.Number, start)
}
