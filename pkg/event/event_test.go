package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Emit(Event{Name: TurnLimitReached, SessionID: "s1"})
	r.Emit(Event{Name: NoAlternative, SessionID: "s1", Fields: Fields{"cuisine": "thai"}})

	assert.Equal(t, []string{TurnLimitReached, NoAlternative}, r.Names())
	assert.Equal(t, "thai", r.Events()[1].Fields["cuisine"])
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard.Emit(Event{Name: SessionCancelled}) })
}

func TestMulti(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	sink := Multi(a, nil, b)
	sink.Emit(Event{Name: SubstituteOffered})

	assert.Equal(t, []string{SubstituteOffered}, a.Names())
	assert.Equal(t, []string{SubstituteOffered}, b.Names())

	assert.Same(t, a, Multi(nil, a))
	assert.NotPanics(t, func() { Multi().Emit(Event{Name: SessionCancelled}) })
}
