package nlp

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NLPProcessor recognises the short conversational replies a booking flow
// depends on (yes, no, stop). Anything else is reported as a fallback.
type NLPProcessor struct {
	mappings  []IntentMappingData
	threshold float64
}

func NewProcessor() INLPProcessor {
	return &NLPProcessor{
		mappings:  getDefaultIntentMappings(),
		threshold: 0.75,
	}
}

func (nlp *NLPProcessor) Classify(text string) *IntentResult {
	clean := cleanText(text)
	if clean == "" {
		return &IntentResult{Intent: IntentFallback}
	}
	tokens := strings.Fields(clean)

	best := &IntentResult{Intent: IntentFallback}
	for _, mapping := range nlp.mappings {
		result := nlp.score(tokens, clean, mapping)
		if result.Confidence > best.Confidence {
			best = result
		}
	}

	if best.Confidence < nlp.threshold {
		return &IntentResult{Intent: IntentFallback, Confidence: best.Confidence}
	}
	return best
}

// Exact returns the intent whose keyword or phrase is the whole reply, such as
// "cancel" or "never mind". A reply that only starts with one ("Stop Inn")
// does not count.
func (nlp *NLPProcessor) Exact(text string) (string, bool) {
	clean := cleanText(text)
	if clean == "" {
		return "", false
	}
	for _, mapping := range nlp.mappings {
		for _, keyword := range mapping.Keywords {
			if clean == keyword {
				return mapping.Intent, true
			}
		}
		for _, phrase := range mapping.Phrases {
			if clean == phrase {
				return mapping.Intent, true
			}
		}
	}
	return "", false
}

func (nlp *NLPProcessor) score(tokens []string, fullText string, mapping IntentMappingData) *IntentResult {
	var matches []MatchResult
	best := 0.0

	for _, phrase := range mapping.Phrases {
		if fullText == phrase {
			matches = append(matches, MatchResult{Keyword: phrase, Score: 1.0, Type: "phrase"})
			best = 1.0
		} else if strings.Contains(fullText, phrase) {
			// Longer phrases win: "i didn't" beats "i did".
			score := 0.75 + 0.2*float64(len(phrase))/float64(len(fullText))
			matches = append(matches, MatchResult{Keyword: phrase, Score: score, Type: "phrase"})
			best = math.Max(best, score)
		}
	}

	// Only the opening word of a reply carries its polarity ("no, thanks",
	// "yes please"); later words are usually a restatement.
	if len(tokens) > 0 {
		first := tokens[0]
		for _, keyword := range mapping.Keywords {
			similarity := calculateSimilarity(first, keyword)
			switch {
			case similarity == 1.0:
				matches = append(matches, MatchResult{Keyword: keyword, Score: 1.0, Type: "exact"})
				best = 1.0
			case similarity > 0.75 && len(keyword) > 3:
				matches = append(matches, MatchResult{Keyword: keyword, Score: similarity * 0.9, Type: "fuzzy"})
				best = math.Max(best, similarity*0.9)
			}
		}
	}

	return &IntentResult{
		Intent:     mapping.Intent,
		Confidence: best,
		Matches:    matches,
	}
}

func calculateSimilarity(text1, text2 string) float64 {
	if text1 == text2 {
		return 1.0
	}
	distance := levenshteinDistance(text1, text2)
	maxLen := math.Max(float64(len(text1)), float64(len(text2)))
	if maxLen == 0 {
		return 0.0
	}
	return math.Max(0, 1.0-(float64(distance)/maxLen))
}

func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

func cleanText(text string) string {
	text = strings.ToLower(text)
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, text)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '\'' {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

func getDefaultIntentMappings() []IntentMappingData {
	// Earlier mappings win ties, so "never mind" is a cancel and not a deny.
	return []IntentMappingData{
		{
			Intent:   IntentCancel,
			Keywords: []string{"stop", "cancel", "quit", "exit", "abort"},
			Phrases:  []string{"never mind", "forget it", "start over"},
		},
		{
			Intent:   IntentAffirm,
			Keywords: []string{"yes", "yeah", "yep", "yup", "sure", "ok", "okay", "correct", "absolutely", "definitely", "indeed", "affirmative", "right"},
			Phrases:  []string{"of course", "sounds good", "that's right", "i have", "i did", "go ahead", "book it"},
		},
		{
			Intent:   IntentDeny,
			Keywords: []string{"no", "nope", "nah", "never", "negative", "none"},
			Phrases:  []string{"not really", "i haven't", "i have not", "i didn't", "no thanks", "not interested"},
		},
	}
}
