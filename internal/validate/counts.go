package validate

import (
	"jsfmt/internal/token"
)

// Counts are per-input keyword tallies surfaced in formatting statistics.
type Counts struct {
	Functions int
	Variables int
}

// Count tallies 'function' and variable-declaration keywords in one pass.
func Count(tokens []token.Token) Counts {
	var c Counts
	for _, tok := range tokens {
		if tok.Kind != token.Keyword {
			continue
		}
		switch tok.Text {
		case "function":
			c.Functions++
		case "var", "let", "const":
			c.Variables++
		}
	}
	return c
}
