package format

import (
	"strings"

	"jsfmt/internal/token"
)

// keywords that read better with a trailing space before whatever follows.
var spacedKeywords = map[string]struct{}{
	"if":       {},
	"while":    {},
	"for":      {},
	"switch":   {},
	"catch":    {},
	"function": {},
	"return":   {},
	"throw":    {},
	"new":      {},
	"typeof":   {},
	"delete":   {},
	"void":     {},
}

// keywords that continue the statement of the preceding closing brace.
var braceContinuers = map[string]struct{}{
	"else":    {},
	"catch":   {},
	"finally": {},
}

// operators that bind tightly to their operand and take no surrounding
// spaces.
var tightOperators = map[string]struct{}{
	"++": {},
	"--": {},
	"!":  {},
}

type beautifier struct {
	w          *Writer
	opt        Options
	toks       []token.Token
	prevSig    token.Token
	hasPrevSig bool
	lastTok    token.Token // last non-whitespace token emitted
	hasLast    bool
	parenDepth int
}

// BeautifyTokens reconstructs indented, human-readable source text from the
// token sequence.
func BeautifyTokens(toks []token.Token, opt Options) string {
	opt = opt.withDefaults()
	size := 0
	for _, t := range toks {
		size += len(t.Text)
	}
	b := &beautifier{
		w:    NewWriter(opt, size),
		opt:  opt,
		toks: toks,
	}
	for i, tok := range toks {
		b.emit(i, tok)
		if tok.IsSignificant() {
			b.prevSig = tok
			b.hasPrevSig = true
		}
		if tok.Kind != token.Whitespace && tok.Kind != token.EOF {
			b.lastTok = tok
			b.hasLast = true
		}
	}
	return tidyBlankLines(string(b.w.Bytes()))
}

func (b *beautifier) emit(i int, tok token.Token) {
	switch tok.Kind {
	case token.Whitespace:
		b.emitWhitespace(i, tok)
	case token.Comment:
		b.emitComment(tok)
	case token.String:
		b.w.WriteString(normalizeQuotes(tok.Text, b.opt.QuoteStyle))
	case token.Regex, token.Number, token.Ident:
		b.w.WriteString(tok.Text)
	case token.Keyword:
		b.emitKeyword(tok)
	case token.Operator:
		b.emitOperator(tok)
	case token.Punct:
		b.emitPunct(i, tok)
	case token.EOF:
	}
}

func (b *beautifier) emitWhitespace(i int, tok token.Token) {
	switch {
	case strings.Contains(tok.Text, "\n\n") && b.opt.PreserveEmptyLines:
		b.w.BlankLine()
	case strings.ContainsRune(tok.Text, '\n'):
		b.w.Newline()
	default:
		next, ok := nextSignificant(b.toks, i+1)
		if !ok {
			return
		}
		switch {
		case b.hasLast && b.lastTok.Kind == token.Comment && !strings.HasPrefix(b.lastTok.Text, "//"):
			// keep an inline block comment separated from what follows
			b.w.Space()
		case b.hasPrevSig && sigSeparationNeeded(b.prevSig, next):
			b.w.Space()
		}
	}
}

func (b *beautifier) emitComment(tok token.Token) {
	if !b.opt.PreserveComments {
		return
	}
	if strings.HasPrefix(tok.Text, "//") {
		// line comments always start on their own line
		b.w.Newline()
		b.w.WriteString(tok.Text)
		b.w.Newline()
		return
	}
	if b.w.LineHasContent() {
		b.w.Space()
	}
	b.w.WriteString(tok.Text)
}

func (b *beautifier) emitKeyword(tok token.Token) {
	if _, ok := braceContinuers[tok.Text]; ok && b.w.LineHasContent() {
		b.w.Space()
	}
	b.w.WriteString(tok.Text)
	if b.opt.InsertSpaceAfterKeywords {
		if _, ok := spacedKeywords[tok.Text]; ok {
			b.w.Space()
		}
	}
}

func (b *beautifier) emitOperator(tok token.Token) {
	if _, tight := tightOperators[tok.Text]; tight {
		b.w.WriteString(tok.Text)
		return
	}
	b.w.Space()
	b.w.WriteString(tok.Text)
	b.w.Space()
}

func (b *beautifier) emitPunct(i int, tok token.Token) {
	switch tok.Text {
	case "{":
		if b.opt.InsertNewLineBeforeOpeningBrace {
			b.w.Newline()
		} else if b.opt.InsertSpaceBeforeOpeningBrace {
			b.w.Space()
		}
		b.w.WriteString("{")
		b.w.IndentPush()
		if b.opt.InsertNewLineAfterOpeningBrace {
			b.w.Newline()
		}

	case "}":
		b.w.IndentPop()
		if b.opt.InsertNewLineBeforeClosingBrace {
			b.w.Newline()
		}
		b.w.WriteString("}")
		if !b.closingBraceStaysInline(i) {
			b.w.Newline()
		}

	case "(":
		if b.opt.InsertSpaceBeforeFunctionParen && b.hasPrevSig {
			if b.prevSig.Kind == token.Ident || (b.prevSig.Kind == token.Keyword && b.prevSig.Text == "function") {
				b.w.Space()
			}
		}
		b.w.WriteString("(")
		b.parenDepth++

	case ")":
		b.w.WriteString(")")
		if b.parenDepth > 0 {
			b.parenDepth--
		}
		if b.opt.InsertSpaceAfterFunctionParen {
			b.w.Space()
		}

	case ";":
		b.w.WriteString(";")
		// semicolons inside for-headers do not end the line
		if b.parenDepth == 0 {
			b.w.Newline()
		} else {
			b.w.Space()
		}

	case ",":
		b.w.WriteString(",")
		if next, ok := nextSignificant(b.toks, i+1); ok {
			if (next.Text == "}" || next.Text == "]") && !b.opt.TrailingCommas {
				return
			}
		}
		b.w.Space()

	default:
		// '[', ']', '.', and any fallback character append verbatim
		b.w.WriteString(tok.Text)
	}
}

// closingBraceStaysInline reports whether the token following a '}' keeps it
// on the same line (else/catch/finally/while continuations and trailing
// punctuation such as ')', ';', or ',').
func (b *beautifier) closingBraceStaysInline(i int) bool {
	next, ok := nextSignificant(b.toks, i+1)
	if !ok {
		return true // nothing follows; avoid a dangling newline
	}
	if next.Kind == token.Keyword {
		_, cont := braceContinuers[next.Text]
		return cont
	}
	switch next.Text {
	case ")", "]", "}", ";", ",", ".", "(", ":":
		return true
	}
	return false
}

func nextSignificant(toks []token.Token, from int) (token.Token, bool) {
	for _, t := range toks[from:] {
		if t.IsSignificant() {
			return t, true
		}
	}
	return token.Token{}, false
}

// tidyBlankLines collapses runs of blank lines to a single blank line and
// trims leading/trailing blank lines from the final output.
func tidyBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blankRun++
			if blankRun > 1 || len(out) == 0 {
				continue
			}
			out = append(out, "")
			continue
		}
		blankRun = 0
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
