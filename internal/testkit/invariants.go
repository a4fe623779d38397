// Package testkit holds invariant checks shared by tests across packages.
package testkit

import (
	"fmt"
	"strings"

	"jsfmt/internal/token"
)

// CheckLossless verifies the scanner's core contract: concatenating the
// text of every token in order reproduces the input exactly.
func CheckLossless(input string, tokens []token.Token) error {
	var b strings.Builder
	b.Grow(len(input))
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	if got := b.String(); got != input {
		return fmt.Errorf("token concatenation diverges from input:\n got: %q\nwant: %q", got, input)
	}
	return nil
}

// Significant filters a token sequence down to code-bearing tokens,
// optionally dropping comments the way the generators do.
func Significant(tokens []token.Token, keepComments bool) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Kind {
		case token.Whitespace, token.EOF:
			continue
		case token.Comment:
			if !keepComments {
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

// CheckSameSignificant verifies that two token sequences agree on kind and
// text of every significant token, the property minification must preserve.
func CheckSameSignificant(before, after []token.Token, keepComments bool) error {
	a := Significant(before, keepComments)
	b := Significant(after, keepComments)
	if len(a) != len(b) {
		return fmt.Errorf("significant token count diverges: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Text != b[i].Text {
			return fmt.Errorf("token %d diverges: %s(%q) vs %s(%q)",
				i, a[i].Kind, a[i].Text, b[i].Kind, b[i].Text)
		}
	}
	return nil
}
