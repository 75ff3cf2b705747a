package slot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"RestaurantAssistant/internal/entity"
	"RestaurantAssistant/pkg/nlp"
)

const (
	MsgPastBookings   = "Sorry, I didn't catch that. Have you booked with us before? Please answer yes or no."
	MsgRestaurantName = "Please tell me the name of the restaurant you booked before."
	MsgDateOnly       = "Please include a time as well as a date, for example 2025-06-02 7:00 PM."
	MsgDateInvalid    = "Sorry, I couldn't understand that date. Please give a date and time, for example 2025-06-02 7:00 PM."
	MsgGuests         = "Please tell me how many guests will be joining, as a number of at least 1."
	MsgConfirm        = "Please answer yes or no."
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
	"2006-01-02 3:04PM",
	"2006-01-02 03:04 PM",
	"2006-01-02",
}

var yesWords = map[string]bool{"yes": true, "y": true, "yeah": true, "yep": true, "sure": true}
var noWords = map[string]bool{"no": true, "n": true, "nope": true, "nah": true}

// Validator checks one candidate value and writes the outcome to the session:
// the normalised value on success, an unset slot on rejection.
type Validator func(s *entity.BookingSession, value string, turn Turn) Result

type Validators struct {
	vocab    Vocabulary
	numbers  *nlp.NumberExtractor
	location *time.Location
	table    map[Name]Validator
}

type ValidatorOption func(*Validators)

func WithLocation(loc *time.Location) ValidatorOption {
	return func(v *Validators) {
		v.location = loc
	}
}

func NewValidators(vocab Vocabulary, opts ...ValidatorOption) *Validators {
	v := &Validators{
		vocab:    vocab,
		numbers:  nlp.NewNumberExtractor(),
		location: time.Local,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.table = map[Name]Validator{
		PastBookings:       v.pastBookings,
		PastRestaurantName: v.pastRestaurantName,
		CuisinePreferences: v.cuisinePreferences,
		DietaryPreferences: v.dietaryPreferences,
		DateAndTime:        v.dateAndTime,
		NumOfGuests:        v.numOfGuests,
		RebookConfirmed:    v.rebookConfirmed,
	}
	return v
}

func (v *Validators) Vocabulary() Vocabulary {
	return v.vocab
}

func (v *Validators) Validate(s *entity.BookingSession, name Name, value string, turn Turn) Result {
	fn, ok := v.table[name]
	if !ok {
		return reject(name, fmt.Sprintf("Unknown slot %q.", name))
	}
	res := fn(s, strings.TrimSpace(value), turn)
	if !res.Accepted {
		Clear(s, name)
	}
	return res
}

func (v *Validators) pastBookings(s *entity.BookingSession, value string, turn Turn) Result {
	if s.PastRestaurantName != "" {
		s.PastBookings = entity.TriTrue
		return accept(PastBookings, true)
	}

	b, ok := polarity(value, turn)
	if !ok {
		return reject(PastBookings, MsgPastBookings)
	}
	s.PastBookings = entity.TriFromBool(b)
	return accept(PastBookings, b)
}

func (v *Validators) pastRestaurantName(s *entity.BookingSession, value string, _ Turn) Result {
	if value == "" {
		return reject(PastRestaurantName, MsgRestaurantName)
	}
	s.PastRestaurantName = value
	s.PastBookings = entity.TriTrue
	return accept(PastRestaurantName, value)
}

func (v *Validators) cuisinePreferences(s *entity.BookingSession, value string, _ Turn) Result {
	tags := SplitTags(value)
	if len(tags) == 0 {
		return reject(CuisinePreferences, v.unsupportedCuisine(value))
	}

	var kept []string
	for _, tag := range tags {
		if isOneOf(tag, AnyCuisine) {
			continue
		}
		if !v.vocab.IsCuisine(tag) {
			return reject(CuisinePreferences, v.unsupportedCuisine(tag))
		}
		kept = append(kept, tag)
	}

	s.CuisinePreferences = entity.PreferenceOf(kept...)
	return accept(CuisinePreferences, kept)
}

func (v *Validators) dietaryPreferences(s *entity.BookingSession, value string, turn Turn) Result {
	tags := SplitTags(value)

	// A plain "no" means no restriction, but "no, vegan" still names a diet.
	if turn.Is(IntentDeny) && !v.namesDiet(tags) {
		s.DietaryPreferences = entity.NoConstraint()
		return accept(DietaryPreferences, []string{"omnivore"})
	}

	if len(tags) == 0 {
		return reject(DietaryPreferences, v.unsupportedDiet(value))
	}

	var kept []string
	for _, tag := range tags {
		if isOneOf(tag, NoRestriction) {
			continue
		}
		if !v.vocab.IsDiet(tag) {
			return reject(DietaryPreferences, v.unsupportedDiet(tag))
		}
		kept = append(kept, tag)
	}

	if len(kept) == 0 {
		s.DietaryPreferences = entity.NoConstraint()
		return accept(DietaryPreferences, []string{"omnivore"})
	}
	s.DietaryPreferences = entity.PreferenceOf(kept...)
	return accept(DietaryPreferences, kept)
}

func (v *Validators) dateAndTime(s *entity.BookingSession, value string, turn Turn) Result {
	candidates := append([]string{value}, turn.Values(EntityTime)...)

	// Midnight means the message carried a date without a time, so a later
	// candidate with a time wins over it.
	var parsed *time.Time
	dateOnly := false
	for _, candidate := range candidates {
		t, ok := v.parseTime(candidate)
		if !ok {
			continue
		}
		if isMidnight(t) {
			dateOnly = true
			continue
		}
		parsed = &t
		break
	}
	if parsed == nil {
		if dateOnly {
			return reject(DateAndTime, MsgDateOnly)
		}
		return reject(DateAndTime, MsgDateInvalid)
	}

	s.DateAndTime = parsed
	return accept(DateAndTime, *parsed)
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

func (v *Validators) parseTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, strings.ToUpper(value), v.location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (v *Validators) numOfGuests(s *entity.BookingSession, value string, turn Turn) Result {
	if n, err := strconv.Atoi(value); err == nil {
		if n >= 1 {
			s.NumOfGuests = n
			return accept(NumOfGuests, n)
		}
		return reject(NumOfGuests, MsgGuests)
	}

	for _, raw := range turn.Values(EntityNumber, EntityCardinal) {
		if n, ok := v.numbers.ExtractCount(raw); ok {
			s.NumOfGuests = n
			return accept(NumOfGuests, n)
		}
	}

	if n, ok := v.numbers.ExtractCount(value); ok {
		s.NumOfGuests = n
		return accept(NumOfGuests, n)
	}
	return reject(NumOfGuests, MsgGuests)
}

func (v *Validators) rebookConfirmed(s *entity.BookingSession, value string, turn Turn) Result {
	b, ok := polarity(value, turn)
	if !ok {
		return reject(RebookConfirmed, MsgConfirm)
	}
	s.RebookConfirmed = entity.TriFromBool(b)
	return accept(RebookConfirmed, b)
}

func (v *Validators) unsupportedCuisine(tag string) string {
	return fmt.Sprintf("Sorry, we don't support %q cuisine. Supported cuisines are: %s.",
		tag, strings.Join(v.vocab.Cuisines(), ", "))
}

func (v *Validators) namesDiet(tags []string) bool {
	for _, tag := range tags {
		if v.vocab.IsDiet(tag) && !isOneOf(tag, NoRestriction) {
			return true
		}
	}
	return false
}

func (v *Validators) unsupportedDiet(tag string) string {
	return fmt.Sprintf("Sorry, we don't support %q as a dietary preference. Supported options are: %s.",
		tag, strings.Join(v.vocab.Diets(), ", "))
}

// polarity reads a yes/no answer from the intent first, then the raw value.
func polarity(value string, turn Turn) (bool, bool) {
	switch {
	case turn.Is(IntentAffirm):
		return true, true
	case turn.Is(IntentDeny):
		return false, true
	}

	value = strings.ToLower(value)
	if b, err := strconv.ParseBool(value); err == nil {
		return b, true
	}
	switch {
	case yesWords[value]:
		return true, true
	case noWords[value]:
		return false, true
	}
	return false, false
}
