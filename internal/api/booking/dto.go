package booking

import (
	"time"

	"RestaurantAssistant/internal/entity"
	"RestaurantAssistant/internal/slot"
)

const (
	KindPrompt    = "prompt"
	KindFallback  = "fallback"
	KindCancelled = "cancelled"
	KindConfirmed = "confirmed"
	KindDeclined  = "declined"
)

type EntityRequest struct {
	Entity string `json:"entity" validate:"required,max=64"`
	Value  string `json:"value" validate:"max=256"`
}

type TurnRequest struct {
	Intent   string            `json:"intent" validate:"max=64"`
	Entities []EntityRequest   `json:"entities" validate:"max=20,dive"`
	Slots    map[string]string `json:"slots" validate:"max=7,dive,keys,oneof=past_bookings past_restaurant_name cuisine_preferences dietary_preferences date_and_time num_of_guests rebook_confirmed,endkeys,max=256"`
	Text     string            `json:"text" validate:"max=500"`
}

func (r TurnRequest) Empty() bool {
	return r.Intent == "" && len(r.Entities) == 0 && len(r.Slots) == 0 && r.Text == ""
}

func (r TurnRequest) Turn() slot.Turn {
	t := slot.Turn{Intent: r.Intent}
	for _, e := range r.Entities {
		t.Entities = append(t.Entities, slot.Entity{Kind: e.Entity, Value: e.Value})
	}
	return t
}

type SessionResponse struct {
	ID                 string     `json:"id"`
	PastBookings       *bool      `json:"past_bookings"`
	PastRestaurantName string     `json:"past_restaurant_name,omitempty"`
	CuisinePreferences []string   `json:"cuisine_preferences"`
	DietaryPreferences []string   `json:"dietary_preferences"`
	DateAndTime        *time.Time `json:"date_and_time"`
	NumOfGuests        int        `json:"num_of_guests,omitempty"`
	TurnCounter        int        `json:"turn_counter"`
	RebookConfirmed    *bool      `json:"rebook_confirmed"`
	Cancelled          bool       `json:"cancelled"`
	OfferedRestaurant  string     `json:"offered_restaurant,omitempty"`
	Status             string     `json:"status"`
	RequiredSlots      []string   `json:"required_slots"`
	CreatedAt          time.Time  `json:"created_at"`
	LastActivity       time.Time  `json:"last_activity"`
}

type RecommendationResponse struct {
	Name           string   `json:"name"`
	Cuisine        string   `json:"cuisine"`
	DietaryOptions []string `json:"dietary_options"`
	Rating         float64  `json:"rating"`
	Location       string   `json:"location,omitempty"`
	Score          float64  `json:"score"`
}

type TurnResponse struct {
	SessionID      string                  `json:"session_id"`
	Kind           string                  `json:"kind"`
	NextSlot       string                  `json:"next_slot,omitempty"`
	RequiredSlots  []string                `json:"required_slots"`
	Message        string                  `json:"message"`
	Notice         string                  `json:"notice,omitempty"`
	Rejections     []string                `json:"rejections,omitempty"`
	Recommendation *RecommendationResponse `json:"recommendation,omitempty"`
	Session        SessionResponse         `json:"session"`
}

func triPtr(t entity.TriState) *bool {
	if !t.IsSet() {
		return nil
	}
	b := t == entity.TriTrue
	return &b
}

func tagsOrEmpty(p entity.Preference) []string {
	if p.Tags == nil {
		return []string{}
	}
	return p.Tags
}

func NewSessionResponse(s *entity.BookingSession, res slot.Resolution) SessionResponse {
	return SessionResponse{
		ID:                 s.ID,
		PastBookings:       triPtr(s.PastBookings),
		PastRestaurantName: s.PastRestaurantName,
		CuisinePreferences: tagsOrEmpty(s.CuisinePreferences),
		DietaryPreferences: tagsOrEmpty(s.DietaryPreferences),
		DateAndTime:        s.DateAndTime,
		NumOfGuests:        s.NumOfGuests,
		TurnCounter:        s.TurnCounter,
		RebookConfirmed:    triPtr(s.RebookConfirmed),
		Cancelled:          s.Cancelled,
		OfferedRestaurant:  s.OfferedRestaurant,
		Status:             res.Status.String(),
		RequiredSlots:      SlotNames(res.Required),
		CreatedAt:          s.CreatedAt,
		LastActivity:       s.LastActivity,
	}
}

func SlotNames(names []slot.Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}

func NewRecommendationResponse(r *entity.Restaurant, score float64) *RecommendationResponse {
	if r == nil {
		return nil
	}
	diets := r.DietaryOptions
	if diets == nil {
		diets = []string{}
	}
	return &RecommendationResponse{
		Name:           r.Name,
		Cuisine:        r.Cuisine,
		DietaryOptions: diets,
		Rating:         r.Rating,
		Location:       r.Location,
		Score:          score,
	}
}
