package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeID trims surrounding whitespace and uppercases a book or student ID.
// "  b101 " and "B101" both normalize to "B101".
func NormalizeID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// TitleCase trims s and capitalizes every run of letters, lowercasing the
// rest of the run. Any non-letter starts a new run, so "g.v." becomes "G.V."
// and "o'reilly" becomes "O'Reilly".
// Used for book titles and author names at input time.
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	// A Caser keeps state between calls, so build one per call.
	caser := cases.Title(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	for s != "" {
		start := strings.IndexFunc(s, unicode.IsLetter)
		if start < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:start])
		s = s[start:]

		end := strings.IndexFunc(s, isNotLetter)
		if end < 0 {
			end = len(s)
		}
		b.WriteString(caser.String(s[:end]))
		s = s[end:]
	}
	return b.String()
}

func isNotLetter(r rune) bool {
	return !unicode.IsLetter(r)
}
