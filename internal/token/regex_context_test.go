package token

import "testing"

func TestIsKeyword(t *testing.T) {
	for _, kw := range []string{"function", "var", "let", "const", "return", "typeof", "undefined"} {
		if !IsKeyword(kw) {
			t.Errorf("expected %q to be a keyword", kw)
		}
	}
	for _, word := range []string{"Function", "foo", "returns", "", "CONST"} {
		if IsKeyword(word) {
			t.Errorf("expected %q not to be a keyword", word)
		}
	}
}

func TestRegexAllowedAfter(t *testing.T) {
	tests := []struct {
		name    string
		prev    Token
		hasPrev bool
		want    bool
	}{
		{"start of input", Token{}, false, true},
		{"after return", Token{Kind: Keyword, Text: "return"}, true, true},
		{"after case", Token{Kind: Keyword, Text: "case"}, true, true},
		{"after typeof", Token{Kind: Keyword, Text: "typeof"}, true, true},
		{"after this", Token{Kind: Keyword, Text: "this"}, true, false},
		{"after assignment", Token{Kind: Operator, Text: "="}, true, true},
		{"after logical and", Token{Kind: Operator, Text: "&&"}, true, true},
		{"after colon", Token{Kind: Operator, Text: ":"}, true, true},
		{"after postfix increment", Token{Kind: Operator, Text: "++"}, true, false},
		{"after open paren", Token{Kind: Punct, Text: "("}, true, true},
		{"after comma", Token{Kind: Punct, Text: ","}, true, true},
		{"after close paren", Token{Kind: Punct, Text: ")"}, true, false},
		{"after close bracket", Token{Kind: Punct, Text: "]"}, true, false},
		{"after identifier", Token{Kind: Ident, Text: "a"}, true, false},
		{"after number", Token{Kind: Number, Text: "10"}, true, false},
		{"after string", Token{Kind: String, Text: `"s"`}, true, false},
		{"after regex", Token{Kind: Regex, Text: "/x/"}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RegexAllowedAfter(tt.prev, tt.hasPrev); got != tt.want {
				t.Errorf("RegexAllowedAfter(%v(%q)) = %v, want %v",
					tt.prev.Kind, tt.prev.Text, got, tt.want)
			}
		})
	}
}

func TestTokenClassification(t *testing.T) {
	if !(Token{Kind: Ident}).IsWordLike() || !(Token{Kind: Number}).IsWordLike() || !(Token{Kind: Keyword}).IsWordLike() {
		t.Error("idents, numbers and keywords are word-like")
	}
	if (Token{Kind: Operator}).IsWordLike() {
		t.Error("operators are not word-like")
	}
	if (Token{Kind: Whitespace}).IsSignificant() || (Token{Kind: Comment}).IsSignificant() || (Token{Kind: EOF}).IsSignificant() {
		t.Error("whitespace, comments and EOF are not significant")
	}
	if !(Token{Kind: String}).IsSignificant() {
		t.Error("strings are significant")
	}
}
