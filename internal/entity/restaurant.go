package entity

import "strings"

type Restaurant struct {
	Name           string              `json:"name"`
	Cuisine        string              `json:"cuisine"`
	DietaryOptions []string            `json:"dietary_options"`
	MaxGuests      int                 `json:"max_guests"`
	Availability   map[string][]string `json:"availability"`
	Rating         float64             `json:"rating"`
	Location       string              `json:"location,omitempty"`
}

// Description is the text indexed for content-based ranking.
func (r Restaurant) Description() string {
	parts := make([]string, 0, len(r.DietaryOptions)+2)
	parts = append(parts, r.Name, r.Cuisine)
	parts = append(parts, r.DietaryOptions...)
	return strings.Join(parts, " ")
}

// TimesOn returns the bookable time labels for a weekday name. Weekday keys
// are compared case-insensitively.
func (r Restaurant) TimesOn(weekday string) []string {
	if times, ok := r.Availability[weekday]; ok {
		return times
	}
	for day, times := range r.Availability {
		if strings.EqualFold(day, weekday) {
			return times
		}
	}
	return nil
}

func (r Restaurant) OffersAll(diets []string) bool {
	for _, diet := range diets {
		found := false
		for _, option := range r.DietaryOptions {
			if strings.EqualFold(option, diet) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r Restaurant) Clone() Restaurant {
	out := r
	if r.DietaryOptions != nil {
		out.DietaryOptions = append([]string(nil), r.DietaryOptions...)
	}
	if r.Availability != nil {
		out.Availability = make(map[string][]string, len(r.Availability))
		for day, times := range r.Availability {
			out.Availability[day] = append([]string(nil), times...)
		}
	}
	return out
}
