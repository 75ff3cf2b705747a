package slot

import (
	"fmt"

	"RestaurantAssistant/internal/entity"
	"RestaurantAssistant/pkg/event"
)

const DefaultTurnLimit = 10

// Guard counts validation attempts on a session. Once the counter reaches
// the limit the conversation must stop collecting and recommend with what it
// has.
type Guard struct {
	limit int
	sink  event.Sink
}

type Attempt struct {
	Result       Result
	LimitReached bool
	Notice       string
}

func NewGuard(limit int, sink event.Sink) *Guard {
	if limit <= 0 {
		limit = DefaultTurnLimit
	}
	if sink == nil {
		sink = event.Discard
	}
	return &Guard{limit: limit, sink: sink}
}

func (g *Guard) Limit() int {
	return g.limit
}

// Exhausted reports whether the session has used up its attempts.
func (g *Guard) Exhausted(s *entity.BookingSession) bool {
	return s.TurnCounter >= g.limit
}

func (g *Guard) Notice() string {
	return fmt.Sprintf("We've reached our %d-question limit. Here's my final suggestion.", g.limit)
}

// Attempt runs one validation and counts it whatever the outcome. An
// accepted value is kept even when this attempt trips the limit.
func (g *Guard) Attempt(s *entity.BookingSession, validate func() Result) Attempt {
	s.TurnCounter++
	res := validate()

	if !res.Accepted {
		g.sink.Emit(event.Event{
			Name:      event.ValidationFailed,
			SessionID: s.ID,
			Fields:    event.Fields{"slot": res.Slot.String(), "turn": s.TurnCounter},
		})
	}

	if !g.Exhausted(s) {
		return Attempt{Result: res}
	}

	g.sink.Emit(event.Event{
		Name:      event.TurnLimitReached,
		SessionID: s.ID,
		Fields:    event.Fields{"turn": s.TurnCounter, "limit": g.limit, "slot": res.Slot.String()},
	})
	return Attempt{Result: res, LimitReached: true, Notice: g.Notice()}
}

// Validate is Attempt around a single validator call.
func (g *Guard) Validate(v *Validators, s *entity.BookingSession, name Name, value string, turn Turn) Attempt {
	return g.Attempt(s, func() Result {
		return v.Validate(s, name, value, turn)
	})
}
