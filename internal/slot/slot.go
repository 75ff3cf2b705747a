package slot

import "RestaurantAssistant/internal/entity"

type Name string

const (
	PastBookings       Name = "past_bookings"
	PastRestaurantName Name = "past_restaurant_name"
	CuisinePreferences Name = "cuisine_preferences"
	DietaryPreferences Name = "dietary_preferences"
	DateAndTime        Name = "date_and_time"
	NumOfGuests        Name = "num_of_guests"
	RebookConfirmed    Name = "rebook_confirmed"
)

// Order is the order in which candidates from a single turn are validated.
var Order = []Name{
	PastRestaurantName,
	PastBookings,
	CuisinePreferences,
	DietaryPreferences,
	DateAndTime,
	NumOfGuests,
}

var names = map[string]Name{
	string(PastBookings):       PastBookings,
	string(PastRestaurantName): PastRestaurantName,
	string(CuisinePreferences): CuisinePreferences,
	string(DietaryPreferences): DietaryPreferences,
	string(DateAndTime):        DateAndTime,
	string(NumOfGuests):        NumOfGuests,
	string(RebookConfirmed):    RebookConfirmed,
}

func Parse(name string) (Name, bool) {
	n, ok := names[name]
	return n, ok
}

func (n Name) String() string {
	return string(n)
}

// Filled reports whether the session holds a value for the slot.
func Filled(s *entity.BookingSession, name Name) bool {
	switch name {
	case PastBookings:
		return s.PastBookings.IsSet()
	case PastRestaurantName:
		return s.PastRestaurantName != ""
	case CuisinePreferences:
		return s.CuisinePreferences.Set
	case DietaryPreferences:
		return s.DietaryPreferences.Set
	case DateAndTime:
		return s.DateAndTime != nil
	case NumOfGuests:
		return s.NumOfGuests > 0
	case RebookConfirmed:
		return s.RebookConfirmed.IsSet()
	default:
		return false
	}
}

// Clear unsets a single slot.
func Clear(s *entity.BookingSession, name Name) {
	switch name {
	case PastBookings:
		s.PastBookings = entity.TriUnknown
	case PastRestaurantName:
		s.PastRestaurantName = ""
	case CuisinePreferences:
		s.CuisinePreferences = entity.Preference{}
	case DietaryPreferences:
		s.DietaryPreferences = entity.Preference{}
	case DateAndTime:
		s.DateAndTime = nil
	case NumOfGuests:
		s.NumOfGuests = 0
	case RebookConfirmed:
		s.RebookConfirmed = entity.TriUnknown
	}
}
