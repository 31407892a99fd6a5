package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	lowerUpperBoundary  = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
	digitLetterBoundary = regexp.MustCompile(`(\d)(\p{L})`)
	letterYearBoundary  = regexp.MustCompile(`(\p{L})((?:19|20)\d{2})`)
	multiSpace          = regexp.MustCompile(`[ \t]{2,}`)
)

// ReinsertSpaces repairs word boundaries lost during PDF extraction before
// the text goes to the Gemini parser: a space is inserted between a lowercase
// letter followed by an uppercase one, between a digit and a following
// letter, and between a letter and a following 4-digit year; repeated
// whitespace collapses afterwards.
func ReinsertSpaces(text string) string {
	text = lowerUpperBoundary.ReplaceAllString(text, "$1 $2")
	text = letterYearBoundary.ReplaceAllString(text, "$1 $2")
	text = digitLetterBoundary.ReplaceAllString(text, "$1 $2")
	return multiSpace.ReplaceAllString(text, " ")
}

// CleanBulletPrefix strips leading bullet and dash glyphs plus surrounding
// whitespace from a text field.
func CleanBulletPrefix(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		switch r {
		case '•', '◦', '▪', '-', '–', '—', '*', '·':
			return true
		}
		return unicode.IsSpace(r)
	})
}
