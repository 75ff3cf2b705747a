package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

var digitPattern = regexp.MustCompile(`\d+`)

type NumberExtractor struct {
	numberWords map[string]int
}

func NewNumberExtractor() *NumberExtractor {
	return &NumberExtractor{
		numberWords: map[string]int{
			// Units
			"zero":      0,
			"one":       1,
			"two":       2,
			"couple":    2,
			"pair":      2,
			"three":     3,
			"four":      4,
			"five":      5,
			"six":       6,
			"seven":     7,
			"eight":     8,
			"nine":      9,
			"ten":       10,
			"eleven":    11,
			"twelve":    12,
			"dozen":     12,
			"thirteen":  13,
			"fourteen":  14,
			"fifteen":   15,
			"sixteen":   16,
			"seventeen": 17,
			"eighteen":  18,
			"nineteen":  19,

			// Tens
			"twenty":  20,
			"thirty":  30,
			"forty":   40,
			"fifty":   50,
			"sixty":   60,
			"seventy": 70,
			"eighty":  80,
			"ninety":  90,
			"hundred": 100,
		},
	}
}

// ExtractCount finds the first positive whole number in text, either as
// digits or spelled out in English ("twenty one", "a dozen").
func (ne *NumberExtractor) ExtractCount(text string) (int, bool) {
	text = strings.ToLower(text)

	if match := digitPattern.FindString(text); match != "" {
		if n, err := strconv.Atoi(match); err == nil && n > 0 {
			return n, true
		}
	}

	n := ne.parseEnglishNumber(text)
	return n, n > 0
}

func (ne *NumberExtractor) parseEnglishNumber(text string) int {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '-' || r == ',' || r == '.'
	})

	current := 0
	found := false
	for _, word := range words {
		val, exists := ne.numberWords[word]
		if !exists {
			if found {
				break
			}
			continue
		}

		switch {
		case word == "dozen" || val == 100:
			if current == 0 {
				current = 1
			}
			current *= val
		default:
			// "twenty one" composes, "one two" does not.
			if found && (current%10 != 0 || val >= 10) {
				return current
			}
			current += val
		}
		found = true
	}

	return current
}
