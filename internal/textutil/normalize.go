package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text and drops every character that is not an ASCII
// letter, digit or space. Other whitespace (tabs, newlines) is dropped too.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lowered))
	for i := 0; i < len(lowered); i++ {
		c := lowered[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c)
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FoldDiacritics strips combining marks after canonical decomposition, so
// "Café" becomes "Cafe". Characters without an ASCII base are left as is and
// removed later by Normalize.
func FoldDiacritics(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}

// Prepare applies the configured normalization chain to raw text.
func Prepare(text string, foldDiacritics bool) string {
	if foldDiacritics {
		text = FoldDiacritics(text)
	}
	return Normalize(text)
}
