// Package textmatch provides name/title normalization and fuzzy matching
// used when reconciling metadata from different providers.
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CleanName normalizes a name or title for comparison purposes.
// Lowercases, removes accents, strips punctuation, and collapses whitespace.
func CleanName(s string) string {
	s = strings.ToLower(s)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Slugify converts a name into a lowercase hyphen-separated identifier.
// Returns "" when the input contains no usable characters.
func Slugify(s string) string {
	s = strings.ToLower(removeAccents(s))

	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
