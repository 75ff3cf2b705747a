package recommend

import (
	"time"

	"RestaurantAssistant/internal/entity"
)

const TimeLabelLayout = "3:04 PM"

func TimeLabel(t time.Time) string {
	return t.Format(TimeLabelLayout)
}

// Available reports whether r lists label on the weekday of date and can seat
// guests. Missing weekdays or times simply mean "not available".
func Available(r entity.Restaurant, guests int, date time.Time, label string) bool {
	if r.MaxGuests < guests {
		return false
	}
	for _, t := range r.TimesOn(date.Weekday().String()) {
		if t == label {
			return true
		}
	}
	return false
}

func AvailableAt(r entity.Restaurant, guests int, at time.Time) bool {
	return Available(r, guests, at, TimeLabel(at))
}
