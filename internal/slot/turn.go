package slot

import "strings"

const (
	IntentAffirm   = "affirm"
	IntentDeny     = "deny"
	IntentFallback = "nlu_fallback"

	EntityNumber   = "number"
	EntityCardinal = "CARDINAL"
	EntityTime     = "time"
)

type Entity struct {
	Kind  string `json:"entity"`
	Value string `json:"value"`
}

// Turn is what the language layer recognised in the latest user message.
type Turn struct {
	Intent   string
	Entities []Entity
}

func (t Turn) Is(intent string) bool {
	return strings.EqualFold(t.Intent, intent)
}

func (t Turn) Values(kinds ...string) []string {
	var values []string
	for _, e := range t.Entities {
		for _, kind := range kinds {
			if e.Kind == kind {
				values = append(values, e.Value)
				break
			}
		}
	}
	return values
}

type Result struct {
	Slot     Name
	Accepted bool
	Value    interface{}
	Message  string
}

func accept(name Name, value interface{}) Result {
	return Result{Slot: name, Accepted: true, Value: value}
}

func reject(name Name, message string) Result {
	return Result{Slot: name, Message: message}
}
