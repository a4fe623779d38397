package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeQuotes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		style QuoteStyle
		want  string
	}{
		{"preserve leaves single", `'a'`, QuotePreserve, `'a'`},
		{"preserve leaves double", `"a"`, QuotePreserve, `"a"`},
		{"single to double", `'hello'`, QuoteDouble, `"hello"`},
		{"double to single", `"hello"`, QuoteSingle, `'hello'`},
		{"already target", `"hello"`, QuoteDouble, `"hello"`},
		{"escapes new delimiter", `'say "hi"'`, QuoteDouble, `"say \"hi\""`},
		{"unescapes old delimiter", `'it\'s'`, QuoteDouble, `"it's"`},
		{"keeps other escapes", `'a\nb\\c'`, QuoteDouble, `"a\nb\\c"`},
		{"both quote kinds inside", `'mix "d" and \'s\''`, QuoteDouble, `"mix \"d\" and 's'"`},
		{"template untouched", "`a ${x} b`", QuoteDouble, "`a ${x} b`"},
		{"unterminated untouched", `"open`, QuoteSingle, `"open`},
		{"empty string", `''`, QuoteDouble, `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, normalizeQuotes(tt.text, tt.style))
		})
	}
}

func TestWriterWhitespaceIsIdempotent(t *testing.T) {
	w := NewWriter(Default(), 16)
	w.WriteString("a")
	w.Space()
	w.Space()
	w.WriteString("b")
	w.Newline()
	w.Newline()
	w.WriteString("c")
	require.Equal(t, "a b\nc", string(w.Bytes()))
}

func TestWriterTrimsTrailingSpacesOnNewline(t *testing.T) {
	w := NewWriter(Default(), 16)
	w.WriteString("a")
	w.Space()
	w.Newline()
	w.WriteString("b")
	require.Equal(t, "a\nb", string(w.Bytes()))
}

func TestWriterIndentation(t *testing.T) {
	w := NewWriter(Default(), 32)
	w.WriteString("{")
	w.IndentPush()
	w.Newline()
	w.WriteString("x")
	w.IndentPop()
	w.Newline()
	w.WriteString("}")
	require.Equal(t, "{\n  x\n}", string(w.Bytes()))

	tabs := Default()
	tabs.IndentType = IndentTabs
	w = NewWriter(tabs, 32)
	w.IndentPush()
	w.WriteString("x")
	require.Equal(t, "\tx", string(w.Bytes()))
}

func TestWriterIndentPopFloorsAtZero(t *testing.T) {
	w := NewWriter(Default(), 8)
	w.IndentPop()
	w.IndentPop()
	w.WriteString("x")
	require.Equal(t, "x", string(w.Bytes()))
}
