package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// EOF marks the end of the source input.
	EOF Kind = iota
	// Keyword represents a reserved word such as 'function' or 'return'.
	Keyword
	// Ident represents an identifier token.
	Ident
	// Number represents a numeric literal token.
	Number
	// String represents a string literal, including template literals.
	String
	// Regex represents a regular-expression literal with its flags.
	Regex
	// Operator represents a single- or multi-character operator.
	Operator
	// Punct represents structural punctuation: braces, brackets, parens,
	// semicolons, commas, and dots. Unrecognized characters also land here
	// so that scanning never fails.
	Punct
	// Comment represents a line or block comment.
	Comment
	// Whitespace represents a run of blanks, tabs, and newlines.
	Whitespace
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "eof"
	case Keyword:
		return "keyword"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string"
	case Regex:
		return "regex"
	case Operator:
		return "operator"
	case Punct:
		return "punctuation"
	case Comment:
		return "comment"
	case Whitespace:
		return "whitespace"
	}
	return "unknown"
}
