package format

import "strings"

// normalizeQuotes rewrites a string literal's delimiter to the target style,
// escaping any bare occurrence of the new quote inside the content and
// unescaping occurrences of the old one that no longer need it. Template
// literals and literals already in the target style pass through untouched.
// The text must be a complete literal including both delimiters; absorbed
// unterminated literals are returned as is.
func normalizeQuotes(text string, style QuoteStyle) string {
	if style == QuotePreserve || len(text) < 2 {
		return text
	}

	var target byte
	switch style {
	case QuoteSingle:
		target = '\''
	case QuoteDouble:
		target = '"'
	default:
		return text
	}

	old := text[0]
	if old != '\'' && old != '"' {
		return text // template literal or not a string
	}
	if text[len(text)-1] != old {
		return text // unterminated, absorbed to end of input
	}
	if old == target {
		return text
	}

	content := text[1 : len(text)-1]
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte(target)

	for i := 0; i < len(content); i++ {
		c := content[i]
		if c == '\\' && i+1 < len(content) {
			next := content[i+1]
			if next == old {
				// escape no longer required under the new delimiter
				b.WriteByte(old)
			} else {
				b.WriteByte(c)
				b.WriteByte(next)
			}
			i++
			continue
		}
		if c == target {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}

	b.WriteByte(target)
	return b.String()
}
