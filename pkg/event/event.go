package event

import "sync"

const (
	TurnLimitReached  = "turn_limit_reached"
	ValidationFailed  = "validation_rejected"
	SubstituteOffered = "substitute_offered"
	NoAlternative     = "no_alternative"
	DietaryMismatch   = "dietary_mismatch"
	SlotUnavailable   = "slot_unavailable"
	SessionCancelled  = "session_cancelled"
)

type Fields map[string]interface{}

type Event struct {
	Name      string
	SessionID string
	Fields    Fields
}

type Sink interface {
	Emit(e Event)
}

type SinkFunc func(e Event)

func (f SinkFunc) Emit(e Event) {
	f(e)
}

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Multi sends every event to each non-nil sink in order.
func Multi(sinks ...Sink) Sink {
	var kept []Sink
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return SinkFunc(func(e Event) {
		for _, s := range kept {
			s.Emit(e)
		}
	})
}

// Recorder keeps events in memory; used by tests and diagnostics.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.events))
	for _, e := range r.events {
		names = append(names, e.Name)
	}
	return names
}
