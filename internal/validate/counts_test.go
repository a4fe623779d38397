package validate_test

import (
	"testing"

	"jsfmt/internal/diag"
	"jsfmt/internal/lexer"
	"jsfmt/internal/source"
	"jsfmt/internal/validate"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		functions int
		variables int
	}{
		{"empty", "", 0, 0},
		{"one function", "function f() {}", 1, 0},
		{"nested functions", "function a() { return function () {}; }", 2, 0},
		{"var let const", "var a; let b; const c = 1;", 0, 3},
		{"mixed", "const f = function () { var x; };", 1, 2},
		{"keywords in strings ignored", `var s = "function var let";`, 0, 1},
		{"keywords in comments ignored", "// function var\nlet a;", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("test.js", []byte(tt.input)))
			tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.NopReporter{}})

			counts := validate.Count(tokens)
			if counts.Functions != tt.functions || counts.Variables != tt.variables {
				t.Errorf("Count(%q) = %+v, want {Functions:%d Variables:%d}",
					tt.input, counts, tt.functions, tt.variables)
			}
		})
	}
}
