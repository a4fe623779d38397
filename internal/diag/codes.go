package diag

// Code identifies a diagnostic category. Codes are grouped by the phase
// that emits them: 1xxx lexical, 2xxx structural, 3xxx driver.
type Code uint16

const (
	// UnknownCode is the zero value; nothing should emit it on purpose.
	UnknownCode Code = 0

	// Lexical findings. The scanner is permissive and never fails; these
	// report literals that were absorbed to end-of-input.
	LexUnterminatedString  Code = 1001
	LexUnterminatedComment Code = 1002
	LexUnterminatedRegex   Code = 1003

	// Structural findings from the bracket-balance validator.
	ValUnexpectedClosing Code = 2001
	ValMismatchedBracket Code = 2002
	ValUnclosedBracket   Code = 2003
	ValMissingParen      Code = 2004

	// Driver findings.
	DrvEmptyInput Code = 3001
	DrvInternal   Code = 3002
)

var codeIDs = map[Code]string{
	LexUnterminatedString:  "unterminated-string",
	LexUnterminatedComment: "unterminated-comment",
	LexUnterminatedRegex:   "unterminated-regex",
	ValUnexpectedClosing:   "unexpected-closing",
	ValMismatchedBracket:   "mismatched-bracket",
	ValUnclosedBracket:     "unclosed-bracket",
	ValMissingParen:        "missing-paren",
	DrvEmptyInput:          "empty-input",
	DrvInternal:            "internal",
}

// ID returns the stable string identifier used in machine-readable output.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return "unknown"
}

func (c Code) String() string { return c.ID() }
