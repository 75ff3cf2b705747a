package bookingService

import (
	"fmt"
	"strings"
	"time"

	"RestaurantAssistant/internal/recommend"
	"RestaurantAssistant/internal/slot"
)

const (
	msgGreeting  = "Hi! I can help you book a table."
	msgFallback  = "Sorry, I did not understand that. Can you rephrase, please?"
	msgCancelled = "Okay, I've cancelled this booking. Start a new conversation whenever you're ready."
	msgDeclined  = "No problem. Let me know if you'd like to look for somewhere else."
	msgNoMatch   = "I couldn't find any restaurant that fits your preferences right now. Want to try adjusting your request?"
)

func (s *bookingService) prompt(name slot.Name) string {
	switch name {
	case slot.PastBookings:
		return "Have you booked a restaurant with us before?"
	case slot.PastRestaurantName:
		return "Which restaurant did you book last time?"
	case slot.CuisinePreferences:
		return fmt.Sprintf("What kind of cuisine would you like? I know %s.", joinList(s.validators.Vocabulary().Cuisines()))
	case slot.DietaryPreferences:
		return "Do you have any dietary preferences, such as vegan, vegetarian or gluten-free?"
	case slot.DateAndTime:
		return "What date and time would you like to book for?"
	case slot.NumOfGuests:
		return "How many guests will be joining?"
	case slot.RebookConfirmed:
		return "Would you like me to book it?"
	default:
		return msgFallback
	}
}

func acknowledgePastBooking(name string) string {
	return fmt.Sprintf("I see you've booked at %s before.", name)
}

// describeOutcome renders the user-facing text for a recommendation run.
func describeOutcome(out recommend.Outcome) string {
	when := describeWhen(out.Date, out.Guests)

	switch out.Kind {
	case recommend.KindRecommendation:
		r := out.Restaurant
		var b strings.Builder
		fmt.Fprintf(&b, "I recommend **%s**, which serves %s cuisine.", r.Name, r.Cuisine)
		if len(r.DietaryOptions) > 0 {
			fmt.Fprintf(&b, " It offers %s options and has a rating of %.1f.", joinList(r.DietaryOptions), r.Rating)
		} else {
			fmt.Fprintf(&b, " It has a rating of %.1f.", r.Rating)
		}
		if r.Location != "" {
			fmt.Fprintf(&b, " It's located in %s.", r.Location)
		}
		if when != "" {
			fmt.Fprintf(&b, " It's available %s.", when)
		}
		b.WriteString(" Would you like me to book it?")
		return b.String()

	case recommend.KindRebookOffer:
		return fmt.Sprintf("Good news! %s has a table %s. Shall I book it?", out.Restaurant.Name, when)

	case recommend.KindSubstitute:
		return fmt.Sprintf("Sorry, %s isn't available %s, but %s also serves %s cuisine and has a table. Would you like to book %s instead?",
			out.Requested, when, out.Restaurant.Name, out.Cuisine, out.Restaurant.Name)

	case recommend.KindNoAlternative:
		if out.Cuisine == "" {
			return fmt.Sprintf("Sorry, I couldn't find %s or a similar restaurant with a table %s.", out.Requested, when)
		}
		return fmt.Sprintf("Sorry, no %s restaurant is available %s.", out.Cuisine, when)

	case recommend.KindDietaryMismatch:
		cuisine := "restaurant"
		if out.Cuisine != "" {
			cuisine = out.Cuisine + " restaurant"
		}
		return fmt.Sprintf("Sorry, I couldn't find a %s that offers %s options.", cuisine, joinList(out.Diets))

	case recommend.KindUnavailable:
		return fmt.Sprintf("Sorry, %s isn't available %s. Could you suggest another date or time?", out.Restaurant.Name, when)

	default:
		return msgNoMatch
	}
}

func describeConfirmation(restaurant string, date *time.Time, guests int) string {
	if when := describeWhen(date, guests); when != "" {
		return fmt.Sprintf("Great! Your table at %s %s is booked.", restaurant, when)
	}
	return fmt.Sprintf("Great! Your table at %s is booked.", restaurant)
}

func describeWhen(date *time.Time, guests int) string {
	var parts []string
	if date != nil {
		parts = append(parts, fmt.Sprintf("on %s at %s", date.Format("Monday, January 2"), recommend.TimeLabel(*date)))
	}
	switch {
	case guests == 1:
		parts = append(parts, "for 1 guest")
	case guests > 1:
		parts = append(parts, fmt.Sprintf("for %d guests", guests))
	}
	return strings.Join(parts, " ")
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
