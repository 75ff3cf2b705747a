package log

import (
	"github.com/sirupsen/logrus"

	"RestaurantAssistant/pkg/event"
)

// eventSink writes booking events as structured log lines. Turn-limit and
// fallback events are warnings; the rest are informational.
type eventSink struct {
	logger *logrus.Logger
}

func NewEventSink(logger *logrus.Logger) event.Sink {
	return &eventSink{logger: logger}
}

func (s *eventSink) Emit(e event.Event) {
	fields := Fields{
		"event":      e.Name,
		"session_id": e.SessionID,
	}
	for k, v := range e.Fields {
		fields[k] = v
	}

	entry := s.logger.WithFields(fields)
	switch e.Name {
	case event.TurnLimitReached, event.NoAlternative, event.DietaryMismatch:
		entry.Warn("Booking fallback")
	case event.ValidationFailed:
		entry.Debug("Slot rejected")
	default:
		entry.Info("Booking event")
	}
}
