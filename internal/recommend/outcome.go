package recommend

import (
	"time"

	"RestaurantAssistant/internal/entity"
)

type Kind string

const (
	KindRecommendation  Kind = "recommendation"
	KindRebookOffer     Kind = "rebook_offer"
	KindSubstitute      Kind = "substitute"
	KindNoAlternative   Kind = "no_alternative"
	KindDietaryMismatch Kind = "dietary_mismatch"
	KindUnavailable     Kind = "unavailable"
	KindNoMatch         Kind = "no_match"
)

// Confident reports whether the outcome names a restaurant the user can book.
func (k Kind) Confident() bool {
	return k == KindRecommendation || k == KindRebookOffer || k == KindSubstitute
}

// Request is the recommendation input after defaults have been applied.
type Request struct {
	SessionID  string
	Restaurant string
	Cuisines   []string
	Diets      []string
	Date       *time.Time
	Guests     int
}

func (r Request) Rebooking() bool {
	return r.Restaurant != ""
}

func (r Request) TimeLabel() string {
	if r.Date == nil {
		return ""
	}
	return TimeLabel(*r.Date)
}

// Outcome is the single result of a recommendation run.
type Outcome struct {
	Kind       Kind
	Restaurant *entity.Restaurant
	Requested  string
	Cuisine    string
	Diets      []string
	Date       *time.Time
	Guests     int
	Score      float64
}

// RequestFromSession reads the request out of a session. Missing guests
// default to 1 and unset preferences mean no constraint.
func RequestFromSession(s *entity.BookingSession) Request {
	req := Request{
		SessionID:  s.ID,
		Restaurant: s.PastRestaurantName,
		Cuisines:   append([]string(nil), s.CuisinePreferences.Tags...),
		Diets:      append([]string(nil), s.DietaryPreferences.Tags...),
		Guests:     s.NumOfGuests,
	}
	if req.Guests < 1 {
		req.Guests = 1
	}
	if s.DateAndTime != nil {
		d := *s.DateAndTime
		req.Date = &d
	}
	return req
}
