package lexer

import "unicode/utf8"

// Byte classifiers. The scanner works on bytes with an ASCII fast path;
// multi-byte runes only matter for the fallback scanner.

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isRegexFlag(b byte) bool {
	switch b {
	case 'g', 'i', 'm', 'u', 'y':
		return true
	}
	return false
}

// bumpRune advances the cursor over one full rune so the fallback scanner
// never splits a multi-byte character across tokens.
func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		lx.cursor.Bump()
		return
	}
	_, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	for i := 0; i < sz; i++ {
		lx.cursor.Bump()
	}
}
