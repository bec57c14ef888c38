// Package naming converts raw document segments (path fragments, property
// keys, operation identifiers) into TitleCase name components.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// TitleSegment converts a segment into a TitleCase name component. Words are
// split on delimiters (-, _, ., /, space) and camelCase boundaries,
// non-alphanumeric runes are stripped, and the first letter of each word is
// capitalized:
//
//	"line-items"  -> "LineItems"
//	"lineItems"   -> "LineItems"
//	"{draftId}"   -> "DraftId"
//	"v2"          -> "V2"
func TitleSegment(segment string) string {
	var b strings.Builder
	for _, word := range splitWords(segment) {
		b.WriteString(titleCaser.String(word))
	}
	return b.String()
}

// splitWords breaks a segment into words at delimiters and lower-to-upper
// camelCase transitions, dropping any rune that is not a letter or digit.
func splitWords(s string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	var prev rune
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || r == '/' || r == ' ':
			flush()
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			// strip
			continue
		default:
			if unicode.IsUpper(r) && unicode.IsLower(prev) {
				flush()
			}
			current = append(current, r)
		}
		prev = r
	}
	flush()
	return words
}
