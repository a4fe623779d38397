// Package lexer implements a permissive single-pass scanner for
// JavaScript-like source text. It never fails: malformed input produces a
// best-effort token sequence, and the concatenation of all token texts
// always reproduces the input exactly. Whitespace and comments are emitted
// as ordinary tokens; any collapsing happens in the generators.
package lexer

import (
	"jsfmt/internal/source"
	"jsfmt/internal/token"
)

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	prev    token.Token // last significant token, for regex disambiguation
	hasPrev bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize scans the whole file and returns every token up to but not
// including EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+8)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Next returns the next token. After end of input it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return lx.emit(token.EOF, lx.cursor.Mark())
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isSpaceByte(ch):
		tok = lx.scanWhitespace()

	case ch == '/':
		tok = lx.scanSlash()

	case ch == '"' || ch == '\'' || ch == '`':
		tok = lx.scanString()

	case isDec(ch):
		tok = lx.scanNumber()

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	if tok.IsSignificant() {
		lx.prev = tok
		lx.hasPrev = true
	}
	return tok
}

// emit builds a token for the span from start to the current cursor
// position, filling Text and line/column.
func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lc := lx.file.LineColAt(sp.Start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Line: lc.Line,
		Col:  lc.Col,
	}
}
