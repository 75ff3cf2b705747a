package similarity

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tokenize lowercases text, strips combining marks and returns every run of
// two or more letters, digits or underscores.
func Tokenize(text string) []string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	clean, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		clean = strings.ToLower(text)
	}

	words := strings.FieldsFunc(clean, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	tokens := words[:0]
	for _, word := range words {
		if utf8.RuneCountInString(word) > 1 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
