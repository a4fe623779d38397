package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"jsfmt/internal/diag"
	"jsfmt/internal/lexer"
	"jsfmt/internal/source"
	"jsfmt/internal/testkit"
	"jsfmt/internal/token"
)

// testReporter collects every diagnostic emitted by the scanner.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) Codes() []string {
	codes := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		codes = append(codes, d.Code.ID())
	}
	return codes
}

func scan(input string) ([]token.Token, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	reporter := &testReporter{}
	tokens := lexer.Tokenize(fs.Get(fileID), lexer.Options{Reporter: reporter})
	return tokens, reporter
}

// significant drops whitespace tokens so tests can assert on code shape.
func significant(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != token.Whitespace {
			out = append(out, tok)
		}
	}
	return out
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	tokens, reporter := scan(input)
	tokens = significant(tokens)

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %s\ndiagnostics: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.Codes())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	tokens, _ := scan(input)
	if len(tokens) != 1 {
		t.Fatalf("expected a single token for %q, got %s", input, tokensToString(tokens))
	}
	if tokens[0].Kind != kind {
		t.Errorf("expected kind %v, got %v", kind, tokens[0].Kind)
	}
	if tokens[0].Text != text {
		t.Errorf("expected text %q, got %q", text, tokens[0].Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"foo", "foo"},
		{"_bar", "_bar"},
		{"$jquery", "$jquery"},
		{"x123", "x123"},
		{"camelCase", "camelCase"},
		{"UPPER", "UPPER"},
		{"$", "$"},
		{"_", "_"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Ident, tt.text)
		})
	}
}

func TestKeywords(t *testing.T) {
	for _, kw := range []string{
		"function", "var", "let", "const", "if", "else", "while", "for",
		"return", "switch", "case", "break", "continue", "new", "delete",
		"typeof", "instanceof", "in", "of", "class", "extends",
		"await", "yield", "try", "catch", "finally", "throw", "this",
		"null", "undefined", "true", "false", "void", "do", "default",
	} {
		t.Run(kw, func(t *testing.T) {
			expectSingleToken(t, kw, token.Keyword, kw)
		})
	}

	// case sensitivity: only the lowercase spelling is a keyword
	expectSingleToken(t, "Function", token.Ident, "Function")
	expectSingleToken(t, "IF", token.Ident, "IF")
}

func TestNumbers(t *testing.T) {
	tests := []string{"0", "42", "3.14", "0.5", "10e3", "1e+9", "2.5e-3", "123456789"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Number, input)
		})
	}
}

func TestNumber_DotWithoutDigitIsNotDecimal(t *testing.T) {
	// "1." followed by an identifier is a member access on a number
	expectTokens(t, "1.toString", []token.Kind{token.Number, token.Punct, token.Ident})
	// an exponent marker with no digits stays part of the identifier land
	expectTokens(t, "1e", []token.Kind{token.Number, token.Ident})
}

func TestStrings(t *testing.T) {
	tests := []string{
		`"hello"`,
		`'world'`,
		`"it's"`,
		`'say "hi"'`,
		`"esc \" ape"`,
		`'back\\slash'`,
		`""`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.String, input)
		})
	}
}

func TestString_Unterminated(t *testing.T) {
	tokens, reporter := scan(`"no close`)
	if len(tokens) != 1 || tokens[0].Kind != token.String {
		t.Fatalf("expected one absorbed string token, got %s", tokensToString(tokens))
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code.ID() != "unterminated-string" {
		t.Fatalf("expected unterminated-string diagnostic, got %v", reporter.Codes())
	}
	if reporter.diagnostics[0].Severity != diag.SevWarning {
		t.Errorf("expected warning severity, got %v", reporter.diagnostics[0].Severity)
	}
}

func TestString_NewlineTerminatesNothing(t *testing.T) {
	// a quote absorbs across newlines until the matching quote or EOF
	input := "\"line one\nline two\""
	expectSingleToken(t, input, token.String, input)
}

func TestTemplateLiterals(t *testing.T) {
	tests := []string{
		"`plain`",
		"`has ${x} inside`",
		"`nested ${a + {b: 1}.b} braces`",
		"`multi\nline`",
		"`${outer(`${inner}`)}`",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.String, input)
		})
	}
}

func TestComments(t *testing.T) {
	expectSingleToken(t, "// line comment", token.Comment, "// line comment")
	expectSingleToken(t, "/* block */", token.Comment, "/* block */")
	expectSingleToken(t, "/* multi\nline */", token.Comment, "/* multi\nline */")

	// line comment does not absorb the newline
	expectTokens(t, "// c\nx", []token.Kind{token.Comment, token.Ident})
}

func TestComment_UnterminatedBlock(t *testing.T) {
	tokens, reporter := scan("/* never closed")
	if len(tokens) != 1 || tokens[0].Kind != token.Comment {
		t.Fatalf("expected one absorbed comment token, got %s", tokensToString(tokens))
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code.ID() != "unterminated-comment" {
		t.Fatalf("expected unterminated-comment diagnostic, got %v", reporter.Codes())
	}
}

func TestOperators_LongestMatch(t *testing.T) {
	tests := []struct {
		input string
		texts []string
	}{
		{">>>=", []string{">>>="}},
		{"===", []string{"==="}},
		{"!==", []string{"!=="}},
		{">>>", []string{">>>"}},
		{"**=", []string{"**="}},
		{"&&=", []string{"&&="}},
		{"||=", []string{"||="}},
		{"??=", []string{"??="}},
		{"==", []string{"=="}},
		{"=>", []string{"=>"}},
		{"++", []string{"++"}},
		{"?.", []string{"?."}},
		{"??", []string{"??"}},
		{"====", []string{"===", "="}},
		{"<<<", []string{"<<", "<"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, _ := scan(tt.input)
			if len(tokens) != len(tt.texts) {
				t.Fatalf("expected %d operators, got %s", len(tt.texts), tokensToString(tokens))
			}
			for i, want := range tt.texts {
				if tokens[i].Kind != token.Operator || tokens[i].Text != want {
					t.Errorf("token %d: expected Operator(%q), got %v(%q)",
						i, want, tokens[i].Kind, tokens[i].Text)
				}
			}
		})
	}
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "{}()[];,.", []token.Kind{
		token.Punct, token.Punct, token.Punct, token.Punct,
		token.Punct, token.Punct, token.Punct, token.Punct, token.Punct,
	})
}

func TestRegex_AfterOperatorsAndKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"assignment", "x = /ab+c/g", "/ab+c/g"},
		{"open paren", "test(/x/)", "/x/"},
		{"comma", "f(a, /b/)", "/b/"},
		{"return", "return /abc/gi", "/abc/gi"},
		{"logical", "a && /b/.test(c)", "/b/"},
		{"start of input", "/^start$/m", "/^start$/m"},
		{"case", "case /p/:", "/p/"},
		{"typeof", "typeof /r/", "/r/"},
		{"escaped slash", `x = /a\/b/`, `/a\/b/`},
		{"class with slash", "x = /[/]/", "/[/]/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, _ := scan(tt.input)
			var found bool
			for _, tok := range tokens {
				if tok.Kind == token.Regex {
					found = true
					if tok.Text != tt.want {
						t.Errorf("expected regex %q, got %q", tt.want, tok.Text)
					}
				}
			}
			if !found {
				t.Fatalf("no regex token in %s", tokensToString(tokens))
			}
		})
	}
}

func TestRegex_DivisionStaysDivision(t *testing.T) {
	tests := []string{
		"a / b",
		"10 / 2",
		"(a + b) / c",
		"x++ / y",
		"arr[0] / 2",
		"a / b / c",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tokens, _ := scan(input)
			for _, tok := range tokens {
				if tok.Kind == token.Regex {
					t.Fatalf("misread division as regex in %q: %s", input, tokensToString(tokens))
				}
			}
		})
	}
}

func TestRegex_NewlineBacksOffToDivision(t *testing.T) {
	// an unclosed "regex" with a newline before the closing slash is
	// rescanned as a division operator
	tokens, _ := scan("x = /a\nb/")
	for _, tok := range tokens {
		if tok.Kind == token.Regex {
			t.Fatalf("expected division fallback, got regex in %s", tokensToString(tokens))
		}
	}
}

func TestUnknownBytesBecomePunct(t *testing.T) {
	tokens, _ := scan("a # b @ c")
	kinds := significant(tokens)
	want := []token.Kind{token.Ident, token.Punct, token.Ident, token.Punct, token.Ident}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d tokens, got %s", len(want), tokensToString(kinds))
	}
	for i := range want {
		if kinds[i].Kind != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], kinds[i].Kind)
		}
	}
}

func TestLineAndColumnPositions(t *testing.T) {
	tokens, _ := scan("var x;\nvar y;")
	var second *token.Token
	for i := range tokens {
		if tokens[i].Text == "y" {
			second = &tokens[i]
		}
	}
	if second == nil {
		t.Fatal("token y not found")
	}
	if second.Line != 2 || second.Col != 5 {
		t.Errorf("expected y at 2:5, got %d:%d", second.Line, second.Col)
	}
}

func TestLossless_Samples(t *testing.T) {
	samples := []string{
		"",
		"function calculate(a,b){if(a>b){return a+b;}else{return a-b;}}",
		"const re = /ab+c/gi; // trailing\nlet s = `t ${x + 1} t`;",
		"/* header */\r\nvar x = 'mixed \"quotes\"';\t\tx /= 2;",
		"aé + ☃ // unicode",
		"\"unterminated",
		"`open ${",
	}
	for _, input := range samples {
		tokens, _ := scan(input)
		if err := testkit.CheckLossless(input, tokens); err != nil {
			t.Errorf("input %q: %v", input, err)
		}
	}
}

func TestLossless_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")
		tokens, _ := scan(input)
		if err := testkit.CheckLossless(input, tokens); err != nil {
			t.Fatal(err)
		}
	})
}

func TestTokenize_ExcludesEOF(t *testing.T) {
	tokens, _ := scan("x")
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			t.Fatal("Tokenize must not include the EOF token")
		}
	}
}
