package bookingService

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"RestaurantAssistant/internal/api/booking"
	"RestaurantAssistant/internal/entity"
	"RestaurantAssistant/internal/recommend"
	"RestaurantAssistant/internal/slot"
	contextPkg "RestaurantAssistant/pkg/context"
	"RestaurantAssistant/pkg/event"
	"RestaurantAssistant/pkg/nlp"
)

func (s *bookingService) ProcessTurn(ctx context.Context, sessionID string, req booking.TurnRequest) (*booking.TurnResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Empty() {
		return nil, booking.ErrEmptyTurn
	}

	session, err := s.bookingRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.LastActivity = s.now()

	turn := req.Turn()
	if turn.Intent == "" && req.Text != "" {
		turn.Intent = s.textIntent(session, req.Text)
	}

	resp, err := s.handleTurn(session, turn, req)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": session.ID,
		"intent":     turn.Intent,
		"kind":       resp.Kind,
		"next_slot":  resp.NextSlot,
		"turn":       session.TurnCounter,
	}).Debug("Booking turn processed")

	return resp, nil
}

func (s *bookingService) handleTurn(session *entity.BookingSession, turn slot.Turn, req booking.TurnRequest) (*booking.TurnResponse, error) {
	if session.Cancelled || slot.IsCancel(turn.Intent) {
		if !session.Cancelled {
			session.Cancelled = true
			s.sink.Emit(event.Event{Name: event.SessionCancelled, SessionID: session.ID})
		}
		return s.respond(session, turn.Intent, booking.KindCancelled, msgCancelled), nil
	}

	candidates, err := s.candidates(session, turn, req)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 && s.awaitingConfirmation(session) {
		if value, ok := s.confirmationValue(turn, req); ok {
			return s.confirm(session, turn, value), nil
		}
	}
	if len(candidates) == 0 && session.RebookConfirmed == entity.TriTrue && session.OfferedRestaurant != "" {
		return s.respond(session, turn.Intent, booking.KindConfirmed, s.confirmation(session)), nil
	}

	var (
		messages   []string
		rejections []string
		notice     string
		forced     bool
	)

	for _, name := range slot.Order {
		value, ok := candidates[name]
		if !ok {
			continue
		}

		attempt := s.guard.Validate(s.validators, session, name, value, turn)
		if attempt.Result.Accepted {
			if name == slot.PastRestaurantName {
				messages = append(messages, acknowledgePastBooking(session.PastRestaurantName))
			}
		} else {
			rejections = append(rejections, attempt.Result.Message)
		}

		if attempt.LimitReached {
			forced = true
			notice = attempt.Notice
			break
		}
	}
	messages = append(messages, rejections...)

	if len(candidates) > 0 {
		session.OfferedRestaurant = ""
		session.RebookConfirmed = entity.TriUnknown
	}

	res := slot.Resolve(session, turn.Intent)
	if res.Status == slot.StatusCollecting && !forced && s.guard.Exhausted(session) {
		forced = true
		notice = s.guard.Notice()
	}

	if res.Status == slot.StatusCollecting && !forced {
		next, _ := res.Next()
		kind := booking.KindPrompt
		if len(candidates) == 0 {
			kind = booking.KindFallback
			messages = append(messages, msgFallback)
		}
		messages = append(messages, s.prompt(next))

		resp := s.respond(session, turn.Intent, kind, strings.Join(messages, " "))
		resp.Rejections = rejections
		return resp, nil
	}

	out := s.engine.Recommend(session)
	if notice != "" {
		messages = append([]string{notice}, messages...)
	}
	messages = append(messages, describeOutcome(out))
	if out.Kind == recommend.KindDietaryMismatch || out.Kind == recommend.KindNoAlternative {
		if next, ok := slot.Resolve(session, turn.Intent).Next(); ok {
			messages = append(messages, s.prompt(next))
		}
	}

	resp := s.respond(session, turn.Intent, string(out.Kind), strings.Join(messages, " "))
	resp.Notice = notice
	resp.Rejections = rejections
	if out.Kind.Confident() {
		resp.Recommendation = booking.NewRecommendationResponse(out.Restaurant, out.Score)
	}
	return resp, nil
}

// candidates collects the raw slot values carried by a turn: explicit slot
// values first, then entities named after a slot, then free text (or a bare
// yes/no intent) as the answer to the slot currently being asked.
func (s *bookingService) candidates(session *entity.BookingSession, turn slot.Turn, req booking.TurnRequest) (map[slot.Name]string, error) {
	candidates := make(map[slot.Name]string)

	for key, value := range req.Slots {
		name, ok := slot.Parse(key)
		if !ok {
			return nil, booking.ErrInvalidSlot
		}
		if name != slot.RebookConfirmed {
			candidates[name] = value
		}
	}

	for _, e := range turn.Entities {
		name, ok := slot.Parse(e.Kind)
		if !ok || name == slot.RebookConfirmed {
			continue
		}
		if _, set := candidates[name]; !set {
			candidates[name] = e.Value
		}
	}

	if s.awaitingConfirmation(session) {
		return candidates, nil
	}

	next, ok := slot.Resolve(session, turn.Intent).Next()
	if !ok {
		return candidates, nil
	}
	if _, set := candidates[next]; !set {
		switch {
		case req.Text != "":
			candidates[next] = req.Text
		case turn.Is(slot.IntentAffirm), turn.Is(slot.IntentDeny), len(turn.Entities) > 0:
			candidates[next] = ""
		}
	}
	return candidates, nil
}

// textIntent reads an intent out of free text. Text answering an open
// question (a name, a cuisine, a date) belongs to that slot's validator, so
// there only a reply that is nothing but a cancel phrase counts.
func (s *bookingService) textIntent(session *entity.BookingSession, text string) string {
	if s.awaitsYesNo(session) {
		if result := s.nlpProcessor.Classify(text); result.Intent != nlp.IntentFallback {
			return result.Intent
		}
		return ""
	}
	if intent, ok := s.nlpProcessor.Exact(text); ok && intent == nlp.IntentCancel {
		return intent
	}
	return ""
}

func (s *bookingService) awaitsYesNo(session *entity.BookingSession) bool {
	if s.awaitingConfirmation(session) {
		return true
	}
	next, ok := slot.Resolve(session, "").Next()
	if !ok {
		return true
	}
	return next == slot.PastBookings || next == slot.RebookConfirmed
}

func (s *bookingService) awaitingConfirmation(session *entity.BookingSession) bool {
	return session.OfferedRestaurant != "" && !session.RebookConfirmed.IsSet()
}

func (s *bookingService) confirmationValue(turn slot.Turn, req booking.TurnRequest) (string, bool) {
	if value, ok := req.Slots[slot.RebookConfirmed.String()]; ok {
		return value, true
	}
	if turn.Is(slot.IntentAffirm) || turn.Is(slot.IntentDeny) || req.Text != "" {
		return req.Text, true
	}
	return "", false
}

// confirm answers an offer. It sits outside the resolver: the offer exists
// only once the required slots are complete.
func (s *bookingService) confirm(session *entity.BookingSession, turn slot.Turn, value string) *booking.TurnResponse {
	res := s.validators.Validate(session, slot.RebookConfirmed, value, turn)
	if !res.Accepted {
		resp := s.respond(session, turn.Intent, booking.KindPrompt, res.Message+" "+s.prompt(slot.RebookConfirmed))
		resp.NextSlot = slot.RebookConfirmed.String()
		return resp
	}

	if session.RebookConfirmed == entity.TriTrue {
		return s.respond(session, turn.Intent, booking.KindConfirmed, s.confirmation(session))
	}

	session.OfferedRestaurant = ""
	return s.respond(session, turn.Intent, booking.KindDeclined, msgDeclined)
}

func (s *bookingService) confirmation(session *entity.BookingSession) string {
	guests := session.NumOfGuests
	if guests < 1 {
		guests = 1
	}
	return describeConfirmation(session.OfferedRestaurant, session.DateAndTime, guests)
}
