package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriStateJSON(t *testing.T) {
	type wrapper struct {
		V TriState `json:"v"`
	}

	for _, tt := range []struct {
		state TriState
		raw   string
	}{
		{TriUnknown, `{"v":null}`},
		{TriTrue, `{"v":true}`},
		{TriFalse, `{"v":false}`},
	} {
		data, err := json.Marshal(wrapper{V: tt.state})
		require.NoError(t, err)
		assert.Equal(t, tt.raw, string(data))

		var back wrapper
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, tt.state, back.V)
	}
}

func TestPreference(t *testing.T) {
	assert.False(t, Preference{}.Set)
	assert.False(t, NoConstraint().Constrained())
	assert.True(t, NoConstraint().Set)
	assert.True(t, PreferenceOf("vegan").Constrained())
}

func TestResetKeepsIdentity(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	date := created.Add(36 * time.Hour)

	s := NewBookingSession("abc", created)
	s.PastBookings = TriTrue
	s.PastRestaurantName = "La Bella"
	s.CuisinePreferences = PreferenceOf("italian")
	s.DateAndTime = &date
	s.NumOfGuests = 4
	s.TurnCounter = 7
	s.Cancelled = true
	s.OfferedRestaurant = "La Bella"

	s.Reset()
	first := *s
	s.Reset()

	assert.Equal(t, first, *s)
	assert.Equal(t, "abc", s.ID)
	assert.Equal(t, created, s.CreatedAt)
	assert.Equal(t, TriUnknown, s.PastBookings)
	assert.Empty(t, s.PastRestaurantName)
	assert.False(t, s.CuisinePreferences.Set)
	assert.Nil(t, s.DateAndTime)
	assert.Zero(t, s.TurnCounter)
	assert.False(t, s.Cancelled)
}

func TestRestaurantHelpers(t *testing.T) {
	r := Restaurant{
		Name:           "Sakura",
		Cuisine:        "japanese",
		DietaryOptions: []string{"Gluten-Free", "pescatarian"},
		Availability:   map[string][]string{"monday": {"7:00 PM"}},
	}

	assert.Equal(t, "Sakura japanese Gluten-Free pescatarian", r.Description())
	assert.Equal(t, []string{"7:00 PM"}, r.TimesOn("Monday"))
	assert.Nil(t, r.TimesOn("Tuesday"))
	assert.True(t, r.OffersAll([]string{"gluten-free"}))
	assert.False(t, r.OffersAll([]string{"gluten-free", "vegan"}))
	assert.True(t, r.OffersAll(nil))

	clone := r.Clone()
	clone.DietaryOptions[0] = "vegan"
	clone.Availability["monday"][0] = "8:00 PM"
	assert.Equal(t, "Gluten-Free", r.DietaryOptions[0])
	assert.Equal(t, "7:00 PM", r.Availability["monday"][0])
}
