package format

import (
	"strings"

	"jsfmt/internal/token"
)

type minifier struct {
	b       strings.Builder
	opt     Options
	toks    []token.Token
	lastSig token.Token
	hasLast bool
}

// MinifyTokens reconstructs the most compact text that still re-scans to the
// same significant token sequence. The one spacing rule that matters: a
// whitespace run survives as a single space only between two word-like
// tokens, so 'return x' can never become 'returnx'.
func MinifyTokens(toks []token.Token, opt Options) string {
	opt = opt.withDefaults()
	m := &minifier{opt: opt, toks: toks}
	size := 0
	for _, t := range toks {
		size += len(t.Text)
	}
	m.b.Grow(size)

	for i, tok := range toks {
		m.emit(i, tok)
		if tok.IsSignificant() {
			m.lastSig = tok
			m.hasLast = true
		}
	}
	return m.b.String()
}

func (m *minifier) emit(i int, tok token.Token) {
	switch tok.Kind {
	case token.Whitespace:
		next, ok := nextSignificant(m.toks, i+1)
		if ok && m.hasLast && sigSeparationNeeded(m.lastSig, next) {
			m.space()
		}
	case token.Comment:
		if !m.opt.PreserveComments {
			return
		}
		m.b.WriteString(tok.Text)
		if strings.HasPrefix(tok.Text, "//") {
			// a preserved line comment must not swallow what follows
			m.b.WriteByte('\n')
		}
	case token.String:
		m.write(normalizeQuotes(tok.Text, m.opt.QuoteStyle))
	case token.Keyword, token.Ident, token.Number, token.Regex, token.Operator:
		m.write(tok.Text)
	case token.Punct:
		m.write(tok.Text)
		if tok.Text == "}" && m.opt.AddSemicolons {
			if next, ok := nextSignificant(m.toks, i+1); ok && needsSemicolonBefore(next) {
				m.b.WriteByte(';')
			}
		}
	case token.EOF:
	}
}

// needsSemicolonBefore reports whether a statement plausibly starts at next,
// for the best-effort semicolon recovery after '}'. This is a heuristic, not
// full automatic-semicolon-insertion.
func needsSemicolonBefore(next token.Token) bool {
	if next.Kind == token.Punct {
		return false
	}
	if next.Kind == token.Keyword {
		if _, cont := braceContinuers[next.Text]; cont || next.Text == "while" {
			return false
		}
	}
	return true
}

func (m *minifier) space() {
	s := m.b.String()
	if len(s) == 0 || s[len(s)-1] == ' ' {
		return
	}
	m.b.WriteByte(' ')
}

// sigSeparationNeeded reports whether dropping all whitespace between two
// significant tokens would change them on re-scan: two word-like tokens
// merge into one, and an identifier byte right after a regex's closing '/'
// is consumed as extra flags ('/x/ in' must not become '/x/in').
func sigSeparationNeeded(prev, next token.Token) bool {
	if prev.IsWordLike() && next.IsWordLike() {
		return true
	}
	return prev.Kind == token.Regex && next.IsWordLike()
}

// write appends text, inserting a separator space when the previous output
// byte would otherwise fuse with the first byte of text on re-scan. This
// covers word-like tokens whose separating whitespace was dropped around a
// removed comment, and sign operators that would merge into '++' or '--'.
func (m *minifier) write(text string) {
	if text == "" {
		return
	}
	s := m.b.String()
	if len(s) > 0 && (wouldFuse(s[len(s)-1], text[0]) || m.regexBoundary(s[len(s)-1], text[0])) {
		m.b.WriteByte(' ')
	}
	m.b.WriteString(text)
}

// regexBoundary catches the regex-flag variant of fusion that byte pairs
// alone cannot see: whether a trailing '/' closes a regex depends on the
// kind of the last significant token, not on the byte itself.
func (m *minifier) regexBoundary(prev, next byte) bool {
	return prev == '/' && m.hasLast && m.lastSig.Kind == token.Regex && isWordByte(next)
}

// fusePairs holds every two-byte sequence that opens a multi-character
// operator or a comment. Dropping the whitespace between two tokens whose
// boundary bytes form such a pair would change the token stream on re-scan
// ('/x/' '/y/' becoming a line comment, '<' '<' becoming a shift).
var fusePairs = buildFusePairs()

func buildFusePairs() map[[2]byte]struct{} {
	pairs := map[[2]byte]struct{}{
		{'/', '/'}: {},
		{'/', '*'}: {},
	}
	for _, set := range []map[string]struct{}{token.Operators2, token.Operators3, token.Operators4} {
		for op := range set {
			pairs[[2]byte{op[0], op[1]}] = struct{}{}
		}
	}
	return pairs
}

func wouldFuse(prev, next byte) bool {
	if isWordByte(prev) && isWordByte(next) {
		return true
	}
	_, ok := fusePairs[[2]byte{prev, next}]
	return ok
}

func isWordByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
