package slot

import (
	"strings"

	"RestaurantAssistant/internal/entity"
)

type Status uint8

const (
	StatusCollecting Status = iota
	StatusComplete
	StatusCancelled
)

var StatusMap = map[Status]string{
	StatusCollecting: "collecting",
	StatusComplete:   "complete",
	StatusCancelled:  "cancelled",
}

func (s Status) String() string {
	return StatusMap[s]
}

type Resolution struct {
	Status   Status
	Required []Name
}

// Next returns the slot that should be asked for now.
func (r Resolution) Next() (Name, bool) {
	if r.Status != StatusCollecting || len(r.Required) == 0 {
		return "", false
	}
	return r.Required[0], true
}

var (
	rebookingBranch  = []Name{PastRestaurantName, DateAndTime, NumOfGuests}
	newBookingBranch = []Name{CuisinePreferences, DietaryPreferences, DateAndTime, NumOfGuests}
	namedBranch      = []Name{DateAndTime, NumOfGuests}
)

// IsCancel reports whether intent asks to abandon the conversation.
func IsCancel(intent string) bool {
	switch strings.ToLower(intent) {
	case "stop", "cancel":
		return true
	}
	return false
}

// Resolve derives the outstanding slots from the session alone. It keeps no
// state between calls, so every turn starts from what the session holds.
func Resolve(s *entity.BookingSession, intent string) Resolution {
	if s.Cancelled || IsCancel(intent) {
		return Resolution{Status: StatusCancelled}
	}

	var branch []Name
	switch {
	case s.PastRestaurantName != "":
		branch = namedBranch
	case s.PastBookings == entity.TriTrue:
		branch = rebookingBranch
	case s.PastBookings == entity.TriFalse:
		branch = newBookingBranch
	default:
		return Resolution{Status: StatusCollecting, Required: []Name{PastBookings}}
	}

	required := make([]Name, 0, len(branch))
	for _, name := range branch {
		if !Filled(s, name) {
			required = append(required, name)
		}
	}
	if len(required) == 0 {
		return Resolution{Status: StatusComplete}
	}
	return Resolution{Status: StatusCollecting, Required: required}
}
