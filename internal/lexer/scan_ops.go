package lexer

import (
	"jsfmt/internal/token"
)

func isPunctByte(b byte) bool {
	switch b {
	case '{', '}', '(', ')', '[', ']', ';', ',', '.':
		return true
	}
	return false
}

// scanOperatorOrPunct scans a multi-character operator (greedy), a single
// punctuation character, or — as a last resort — any other rune as a
// punctuation token so that scanning never fails.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	for _, width := range []uint32{4, 3, 2} {
		if lx.tryOperator(width) {
			return lx.emit(token.Operator, start)
		}
	}

	ch := lx.cursor.Peek()
	if _, ok := token.Operators1[ch]; ok {
		lx.cursor.Bump()
		return lx.emit(token.Operator, start)
	}
	if isPunctByte(ch) {
		lx.cursor.Bump()
		return lx.emit(token.Punct, start)
	}

	// unknown character: emit it whole as punctuation
	lx.bumpRune()
	return lx.emit(token.Punct, start)
}

func (lx *Lexer) tryOperator(width uint32) bool {
	if lx.cursor.Off+width > uint32(len(lx.file.Content)) {
		return false
	}
	text := string(lx.file.Content[lx.cursor.Off : lx.cursor.Off+width])
	var ok bool
	switch width {
	case 4:
		_, ok = token.Operators4[text]
	case 3:
		_, ok = token.Operators3[text]
	case 2:
		_, ok = token.Operators2[text]
	}
	if !ok {
		return false
	}
	for i := uint32(0); i < width; i++ {
		lx.cursor.Bump()
	}
	return true
}
