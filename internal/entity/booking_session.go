package entity

import (
	"time"
)

type TriState uint8

const (
	TriUnknown TriState = 0
	TriTrue    TriState = 1
	TriFalse   TriState = 2
)

var TriStateMap = map[TriState]string{
	TriUnknown: "unknown",
	TriTrue:    "true",
	TriFalse:   "false",
}

func TriFromBool(b bool) TriState {
	if b {
		return TriTrue
	}
	return TriFalse
}

func (t TriState) String() string {
	return TriStateMap[t]
}

func (t TriState) IsSet() bool {
	return t == TriTrue || t == TriFalse
}

func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case TriTrue:
		return []byte("true"), nil
	case TriFalse:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*t = TriTrue
	case "false":
		*t = TriFalse
	default:
		*t = TriUnknown
	}
	return nil
}

// Preference is a tag set slot. Set with no tags means "no constraint".
type Preference struct {
	Tags []string `json:"tags"`
	Set  bool     `json:"set"`
}

func NoConstraint() Preference {
	return Preference{Set: true}
}

func PreferenceOf(tags ...string) Preference {
	return Preference{Tags: tags, Set: true}
}

func (p Preference) Constrained() bool {
	return p.Set && len(p.Tags) > 0
}

type BookingSession struct {
	ID                 string     `json:"id"`
	PastBookings       TriState   `json:"past_bookings"`
	PastRestaurantName string     `json:"past_restaurant_name,omitempty"`
	CuisinePreferences Preference `json:"cuisine_preferences"`
	DietaryPreferences Preference `json:"dietary_preferences"`
	DateAndTime        *time.Time `json:"date_and_time,omitempty"`
	NumOfGuests        int        `json:"num_of_guests,omitempty"`
	TurnCounter        int        `json:"turn_counter"`
	RebookConfirmed    TriState   `json:"rebook_confirmed"`
	Cancelled          bool       `json:"cancelled"`
	OfferedRestaurant  string     `json:"offered_restaurant,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	LastActivity       time.Time  `json:"last_activity"`
}

func NewBookingSession(id string, now time.Time) *BookingSession {
	return &BookingSession{
		ID:           id,
		CreatedAt:    now,
		LastActivity: now,
	}
}

// Reset clears every slot and the turn counter. Identity and timestamps survive.
func (s *BookingSession) Reset() {
	*s = BookingSession{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt,
		LastActivity: s.LastActivity,
	}
}
