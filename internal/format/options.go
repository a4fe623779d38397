package format

// Mode selects which generator consumes the token stream.
type Mode uint8

const (
	// Beautify reconstructs indented, human-readable source text.
	Beautify Mode = iota
	// Minify reconstructs the most compact text that is still safe to
	// re-scan (no accidental token fusion).
	Minify
)

func (m Mode) String() string {
	if m == Minify {
		return "minify"
	}
	return "beautify"
}

// IndentType selects the beautifier's indentation unit.
type IndentType uint8

const (
	// IndentSpaces indents with IndentSize spaces per level.
	IndentSpaces IndentType = iota
	// IndentTabs indents with one tab per level.
	IndentTabs
)

// QuoteStyle controls string-literal quote normalization. Template literals
// are never rewritten.
type QuoteStyle uint8

const (
	// QuotePreserve leaves string literals untouched.
	QuotePreserve QuoteStyle = iota
	// QuoteSingle rewrites string literals to single quotes.
	QuoteSingle
	// QuoteDouble rewrites string literals to double quotes.
	QuoteDouble
)

// Options is the shared configuration record for both generators. The zero
// value is not useful; start from Default() or call withDefaults.
type Options struct {
	Mode       Mode
	IndentSize int
	IndentType IndentType

	InsertSpaceAfterKeywords       bool
	InsertSpaceBeforeFunctionParen bool
	InsertSpaceAfterFunctionParen  bool
	InsertSpaceBeforeOpeningBrace  bool

	InsertNewLineBeforeOpeningBrace bool
	InsertNewLineAfterOpeningBrace  bool
	InsertNewLineBeforeClosingBrace bool

	PreserveComments   bool
	PreserveEmptyLines bool
	AddSemicolons      bool
	TrailingCommas     bool

	QuoteStyle QuoteStyle

	// ValidateSyntax enables the structural validator in the driver.
	ValidateSyntax bool
}

// Default returns the configuration the CLI and the web shell start from.
func Default() Options {
	return Options{
		Mode:                            Beautify,
		IndentSize:                      2,
		IndentType:                      IndentSpaces,
		InsertSpaceAfterKeywords:        true,
		InsertSpaceBeforeFunctionParen:  false,
		InsertSpaceAfterFunctionParen:   false,
		InsertSpaceBeforeOpeningBrace:   true,
		InsertNewLineBeforeOpeningBrace: false,
		InsertNewLineAfterOpeningBrace:  true,
		InsertNewLineBeforeClosingBrace: true,
		PreserveComments:                true,
		PreserveEmptyLines:              true,
		AddSemicolons:                   false,
		TrailingCommas:                  false,
		QuoteStyle:                      QuotePreserve,
		ValidateSyntax:                  true,
	}
}

func (o Options) withDefaults() Options {
	if o.IndentSize <= 0 {
		o.IndentSize = 2
	}
	return o
}
