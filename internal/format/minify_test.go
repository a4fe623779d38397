package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"jsfmt/internal/format"
	"jsfmt/internal/testkit"
)

func minify(t testing.TB, input string, opt format.Options) string {
	t.Helper()
	opt.Mode = format.Minify
	return format.MinifyTokens(tokenize(t, input), opt)
}

func TestMinifyDropsInsignificantWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"var  x  =  1 ;", "var x=1;"},
		{"function f ( a , b ) { return a + b ; }", "function f(a,b){return a+b;}"},
		{"if ( a ) {\n  b ( ) ;\n}", "if(a){b();}"},
		{"a\n.\nb", "a.b"},
	}
	for _, tt := range tests {
		opt := format.Default()
		opt.PreserveComments = false
		require.Equal(t, tt.want, minify(t, tt.input, opt), "input %q", tt.input)
	}
}

func TestMinifyKeepsWordBoundaries(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"return x;", "return x;"},
		{"typeof  value", "typeof value"},
		{"var a = new Thing();", "var a=new Thing();"},
		{"a instanceof B", "a instanceof B"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, minify(t, tt.input, format.Default()), "input %q", tt.input)
	}
}

func TestMinifyOperatorSeparation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// fusing these would change the token stream on re-scan
		{"a + + b", "a+ +b"},
		{"a - - b", "a- -b"},
		{"a++ + b", "a++ +b"},
		{"a < < b", "a< <b"},
		{"x = /a/ / /b/", "x=/a/ / /b/"},
		// an identifier fused onto a regex would be read as extra flags
		{"if (/x/ in map) { f(); }", "if(/x/ in map){f();}"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, minify(t, tt.input, format.Default()), "input %q", tt.input)
	}
}

func TestMinifyComments(t *testing.T) {
	opt := format.Default()
	opt.PreserveComments = false
	require.Equal(t, "a b", minify(t, "a /* gone */ b", opt),
		"dropping a comment must not fuse its neighbors")
	require.Equal(t, "var x=1;", minify(t, "// note\nvar x = 1;", opt))

	got := minify(t, "// keep\nvar x = 1;", format.Default())
	require.Equal(t, "// keep\nvar x=1;", got,
		"a preserved line comment keeps its terminating newline")

	got = minify(t, "var x = /* keep */ 1;", format.Default())
	require.Equal(t, "var x=/* keep */1;", got)
}

func TestMinifyAddSemicolons(t *testing.T) {
	opt := format.Default()
	opt.AddSemicolons = true

	require.Equal(t, "var f=function(){};var g=1", minify(t, "var f = function() {}\nvar g = 1", opt))
	require.Equal(t, "if(a){b()}else{c()}", minify(t, "if (a) { b() } else { c() }", opt),
		"no semicolon before else")
	require.Equal(t, "do{a()}while(b)", minify(t, "do { a() } while (b)", opt),
		"no semicolon before the while of do-while")
	require.Equal(t, "if(a){b()};c()", minify(t, "if (a) { b() }\nc()", opt))
}

func TestMinifyNeverLongerThanBeautify(t *testing.T) {
	inputs := []string{
		"function calculate(a,b){if(a>b){return a+b;}else{return a-b;}}",
		"var  x  =  1 ;\n\nvar y = 2;",
		"for(var i=0;i<10;i++){f(i);}",
	}
	for _, input := range inputs {
		toks := tokenize(t, input)
		minified := format.MinifyTokens(toks, format.Default())
		beautified := format.BeautifyTokens(toks, format.Default())
		require.LessOrEqual(t, len(minified), len(beautified), "input %q", input)
	}
}

func TestMinifyPreservesSignificantTokens(t *testing.T) {
	inputs := []string{
		"function calculate(a,b){if(a>b){return a+b;}else{return a-b;}}",
		"const s = `t ${x + 1} t`;",
		"var re = /ab+c/gi; var q = a / b / c;",
		"x = /a/ / /b/",
		"a + + b - - c",
		"return\n/x/.test(s);",
		"if (/x/ in map) { f(); }",
		"/x//* gone */in y",
		"var ok = /a/g in cache;",
	}
	for _, input := range inputs {
		before := tokenize(t, input)
		opt := format.Default()
		opt.PreserveComments = false
		after := tokenize(t, format.MinifyTokens(before, opt))
		require.NoError(t, testkit.CheckSameSignificant(before, after, false), "input %q", input)
	}
}

func TestMinifyPreservesSignificantTokens_Property(t *testing.T) {
	// build inputs from realistic fragments so the property exercises the
	// whitespace-dropping decisions rather than scanner error recovery
	fragments := []string{
		"var x = 1;", "f(a, b)", "return x", "a + b", "a ++", "+ b",
		"/re/g", "'str'", "\"str\"", "`t ${x} t`", "// comment\n",
		"/* block */", "{", "}", "(", ")", "x", "42", "<", "=", "<=",
		"if (a) { b(); }", "\n", " ", "\t",
	}
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		input := ""
		for i := 0; i < n; i++ {
			input += rapid.SampledFrom(fragments).Draw(t, "fragment") + " "
		}

		before := scanTokens(input)
		opt := format.Default()
		opt.PreserveComments = false
		minified := format.MinifyTokens(before, opt)
		after := scanTokens(minified)

		if err := testkit.CheckSameSignificant(before, after, false); err != nil {
			t.Fatalf("input %q minified to %q: %v", input, minified, err)
		}
	})
}
