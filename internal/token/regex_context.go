package token

// Regex-vs-divide disambiguation. A '/' opens a regex literal only when the
// immediately preceding significant token cannot end an expression. The
// tables below are the whole heuristic; keeping them as explicit sets makes
// the single most failure-prone scanner decision directly testable.

// regexPrecedingPunct holds punctuation texts after which '/' starts a
// regex literal. Closers are deliberately absent: after ')' or ']' a slash
// divides the value the bracketed expression produced.
var regexPrecedingPunct = map[string]struct{}{
	"(": {},
	"[": {},
	"{": {},
	",": {},
	";": {},
}

// postfixOperators end an expression, so a following '/' is division.
var postfixOperators = map[string]struct{}{
	"++": {},
	"--": {},
}

// regexPrecedingKeywords holds keywords after which '/' starts a regex
// literal.
var regexPrecedingKeywords = map[string]struct{}{
	"return":     {},
	"case":       {},
	"in":         {},
	"of":         {},
	"delete":     {},
	"void":       {},
	"typeof":     {},
	"new":        {},
	"instanceof": {},
}

// RegexAllowedAfter reports whether a '/' seen after prev should be scanned
// as the start of a regex literal. prev is the previous significant token;
// ok is false when there is none (start of input), in which case a regex is
// allowed.
func RegexAllowedAfter(prev Token, ok bool) bool {
	if !ok {
		return true
	}
	switch prev.Kind {
	case Keyword:
		_, allowed := regexPrecedingKeywords[prev.Text]
		return allowed
	case Operator:
		// every operator except the postfix forms leaves an expression open
		_, postfix := postfixOperators[prev.Text]
		return !postfix
	case Punct:
		_, allowed := regexPrecedingPunct[prev.Text]
		return allowed
	default:
		return false
	}
}
