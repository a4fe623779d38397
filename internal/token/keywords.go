package token

var keywords = map[string]struct{}{
	"await":      {},
	"break":      {},
	"case":       {},
	"catch":      {},
	"class":      {},
	"const":      {},
	"continue":   {},
	"debugger":   {},
	"default":    {},
	"delete":     {},
	"do":         {},
	"else":       {},
	"enum":       {},
	"export":     {},
	"extends":    {},
	"false":      {},
	"finally":    {},
	"for":        {},
	"function":   {},
	"if":         {},
	"import":     {},
	"in":         {},
	"instanceof": {},
	"let":        {},
	"new":        {},
	"null":       {},
	"of":         {},
	"return":     {},
	"static":     {},
	"super":      {},
	"switch":     {},
	"this":       {},
	"throw":      {},
	"true":       {},
	"try":        {},
	"typeof":     {},
	"undefined":  {},
	"var":        {},
	"void":       {},
	"while":      {},
	"with":       {},
	"yield":      {},
}

// IsKeyword reports whether ident is a reserved word. Keywords are
// case-sensitive; only the lowercase forms are recognized.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
