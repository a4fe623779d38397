package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"jsfmt/internal/token"
)

// TokenOutput is the machine-readable projection of one token.
type TokenOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
	Start  uint32 `json:"start"`
	End    uint32 `json:"end"`
}

// FormatTokensPretty writes one token per line for human inspection.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%4d: %-12s %q at %d:%d\n",
			i+1, tok.Kind.String(), tok.Text, tok.Line, tok.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the token list as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Line:   tok.Line,
			Column: tok.Col,
			Start:  tok.Span.Start,
			End:    tok.Span.End,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
