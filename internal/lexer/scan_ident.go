package lexer

import (
	"jsfmt/internal/token"
)

// scanIdentOrKeyword scans [A-Za-z_$][A-Za-z0-9_$]* and classifies the
// result as a keyword when it appears in the reserved-word table.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	tok := lx.emit(token.Ident, start)
	if token.IsKeyword(tok.Text) {
		tok.Kind = token.Keyword
	}
	return tok
}
