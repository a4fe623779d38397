package token

import (
	"jsfmt/internal/source"
)

// Token represents a single source token. Text is the exact source
// substring: concatenating the Text of every token in order reproduces the
// input byte-for-byte, because whitespace and comments are tokens too.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Line uint32 // 1-based line of the first character
	Col  uint32 // 1-based column of the first character
}

// IsWordLike reports whether the token is a keyword, identifier, or number.
// Two adjacent word-like tokens must be kept apart by at least one space or
// they would fuse into a different token on re-scan.
func (t Token) IsWordLike() bool {
	switch t.Kind {
	case Keyword, Ident, Number:
		return true
	default:
		return false
	}
}

// IsSignificant reports whether the token carries code (not whitespace,
// comment, or EOF).
func (t Token) IsSignificant() bool {
	switch t.Kind {
	case Whitespace, Comment, EOF:
		return false
	default:
		return true
	}
}
