package nlp

import (
	"strings"
	"unicode"
)

// Normalize lower-cases the input, strips everything except word characters,
// whitespace, and apostrophes, and collapses whitespace runs to single
// spaces. Empty input normalizes to the empty string. Pure function.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == '\'':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			// punctuation and symbols are dropped
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
