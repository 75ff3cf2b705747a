package bookingService

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"RestaurantAssistant/internal/api/booking"
	"RestaurantAssistant/internal/entity"
	"RestaurantAssistant/internal/slot"
	contextPkg "RestaurantAssistant/pkg/context"
)

func (s *bookingService) StartSession(ctx context.Context) (*booking.TurnResponse, error) {
	session := entity.NewBookingSession(s.utils.NewSessionID(), s.now())

	if err := s.bookingRepo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"session_id": session.ID,
	}).Info("Booking session started")

	return s.respond(session, "", booking.KindPrompt, msgGreeting+" "+s.prompt(slot.PastBookings)), nil
}

func (s *bookingService) GetSession(ctx context.Context, sessionID string) (*booking.SessionResponse, error) {
	session, err := s.bookingRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := booking.NewSessionResponse(session, slot.Resolve(session, ""))
	return &resp, nil
}

// ResetSession clears every slot and the turn counter. An unknown id gets a
// fresh session under that id, so the call always succeeds.
func (s *bookingService) ResetSession(ctx context.Context, sessionID string) (*booking.TurnResponse, error) {
	session, err := s.bookingRepo.GetSession(ctx, sessionID)
	if errors.Is(err, booking.ErrSessionNotFound) {
		session = entity.NewBookingSession(sessionID, s.now())
	} else if err != nil {
		return nil, err
	}

	session.Reset()
	session.LastActivity = s.now()

	if err := s.bookingRepo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"session_id": session.ID,
	}).Info("Booking session reset")

	return s.respond(session, "", booking.KindPrompt, s.prompt(slot.PastBookings)), nil
}
