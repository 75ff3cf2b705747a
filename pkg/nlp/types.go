package nlp

const (
	IntentAffirm   = "affirm"
	IntentDeny     = "deny"
	IntentCancel   = "stop"
	IntentFallback = "nlu_fallback"
)

type IntentResult struct {
	Intent     string        `json:"intent"`
	Confidence float64       `json:"confidence"`
	Matches    []MatchResult `json:"matches"`
}

type MatchResult struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
	Type    string  `json:"type"`
}

type INLPProcessor interface {
	Classify(text string) *IntentResult
	Exact(text string) (string, bool)
}

type IntentMappingData struct {
	Intent   string   `json:"intent"`
	Keywords []string `json:"keywords"`
	Phrases  []string `json:"phrases"`
}
