package slot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RestaurantAssistant/internal/entity"
)

func newValidators() *Validators {
	return NewValidators(DefaultVocabulary(), WithLocation(time.UTC))
}

func TestValidatePastBookings(t *testing.T) {
	tests := []struct {
		name     string
		known    string
		value    string
		intent   string
		accepted bool
		want     entity.TriState
	}{
		{"affirm intent", "", "", IntentAffirm, true, entity.TriTrue},
		{"deny intent", "", "", IntentDeny, true, entity.TriFalse},
		{"raw true", "", "true", "", true, entity.TriTrue},
		{"raw no", "", "No", "", true, entity.TriFalse},
		{"named restaurant forces true", "La Bella", "", IntentDeny, true, entity.TriTrue},
		{"unreadable", "", "maybe", "", false, entity.TriUnknown},
	}

	v := newValidators()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := entity.NewBookingSession("s", time.Now())
			s.PastRestaurantName = tt.known

			res := v.Validate(s, PastBookings, tt.value, Turn{Intent: tt.intent})
			assert.Equal(t, tt.accepted, res.Accepted)
			assert.Equal(t, tt.want, s.PastBookings)
			if !tt.accepted {
				assert.Equal(t, MsgPastBookings, res.Message)
			}
		})
	}
}

func TestValidatePastRestaurantName(t *testing.T) {
	v := newValidators()
	s := entity.NewBookingSession("s", time.Now())

	res := v.Validate(s, PastRestaurantName, "  La Bella ", Turn{})
	require.True(t, res.Accepted)
	assert.Equal(t, "La Bella", s.PastRestaurantName)
	assert.Equal(t, entity.TriTrue, s.PastBookings)

	res = v.Validate(s, PastRestaurantName, "   ", Turn{})
	assert.False(t, res.Accepted)
	assert.Empty(t, s.PastRestaurantName)
}

func TestValidateCuisinePreferences(t *testing.T) {
	tests := []struct {
		value    string
		accepted bool
		want     []string
	}{
		{"Italian", true, []string{"italian"}},
		{"italian, THAI and korean", true, []string{"italian", "thai", "korean"}},
		{"italian/italian", true, []string{"italian"}},
		{"no preference", true, nil},
		{"italian, klingon", false, nil},
		{"", false, nil},
	}

	v := newValidators()
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s := entity.NewBookingSession("s", time.Now())
			res := v.Validate(s, CuisinePreferences, tt.value, Turn{})

			assert.Equal(t, tt.accepted, res.Accepted)
			assert.Equal(t, tt.accepted, s.CuisinePreferences.Set)
			assert.Equal(t, tt.want, s.CuisinePreferences.Tags)
			if !tt.accepted {
				assert.Contains(t, res.Message, "Supported cuisines are: italian, mexican")
			}
		})
	}
}

func TestValidateDietaryPreferences(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		intent      string
		accepted    bool
		constrained bool
		want        []string
	}{
		{"single", "Vegan", "", true, true, []string{"vegan"}},
		{"several", "gluten-free & halal", "", true, true, []string{"gluten-free", "halal"}},
		{"omnivore", "omnivore", "", true, false, nil},
		{"synonym phrase", "No dietary restrictions", "", true, false, nil},
		{"none", "none", "", true, false, nil},
		{"deny intent", "", IntentDeny, true, false, nil},
		{"plain no", "no", "", true, false, nil},
		{"deny intent naming a diet", "no, vegan please", IntentDeny, true, true, []string{"vegan"}},
		{"filler words", "vegan please", "", true, true, []string{"vegan"}},
		{"synonym mixed with diet", "anything, vegan", "", true, true, []string{"vegan"}},
		{"unknown diet", "paleo", "", false, false, nil},
	}

	v := newValidators()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := entity.NewBookingSession("s", time.Now())
			res := v.Validate(s, DietaryPreferences, tt.value, Turn{Intent: tt.intent})

			assert.Equal(t, tt.accepted, res.Accepted)
			assert.Equal(t, tt.accepted, s.DietaryPreferences.Set)
			assert.Equal(t, tt.constrained, s.DietaryPreferences.Constrained())
			assert.Equal(t, tt.want, s.DietaryPreferences.Tags)
		})
	}
}

func TestValidateDateAndTime(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		entities []Entity
		want     time.Time
		message  string
	}{
		{"rfc3339", "2025-06-02T19:00:00Z", nil, time.Date(2025, 6, 2, 19, 0, 0, 0, time.UTC), ""},
		{"twelve hour", "2025-06-02 7:30 pm", nil, time.Date(2025, 6, 2, 19, 30, 0, 0, time.UTC), ""},
		{"from time entity", "tomorrow evening", []Entity{{Kind: EntityTime, Value: "2025-06-03T18:00:00.000+00:00"}}, time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC), ""},
		{"midnight", "2025-06-02T00:00:00Z", nil, time.Time{}, MsgDateOnly},
		{"midnight on any date", "1999-12-31 00:00", nil, time.Time{}, MsgDateOnly},
		{"date only", "2025-06-02", nil, time.Time{}, MsgDateOnly},
		{"date only with time entity", "2025-06-02", []Entity{{Kind: EntityTime, Value: "2025-06-02T19:00:00Z"}}, time.Date(2025, 6, 2, 19, 0, 0, 0, time.UTC), ""},
		{"garbage", "next blue moon", nil, time.Time{}, MsgDateInvalid},
	}

	v := newValidators()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := entity.NewBookingSession("s", time.Now())
			res := v.Validate(s, DateAndTime, tt.value, Turn{Entities: tt.entities})

			if tt.message != "" {
				assert.False(t, res.Accepted)
				assert.Equal(t, tt.message, res.Message)
				assert.Nil(t, s.DateAndTime)
				return
			}
			require.True(t, res.Accepted)
			require.NotNil(t, s.DateAndTime)
			assert.True(t, tt.want.Equal(*s.DateAndTime), "got %s", s.DateAndTime)
		})
	}
}

func TestValidateNumOfGuests(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		entities []Entity
		want     int
	}{
		{"integer", "4", nil, 4},
		{"numeric entity", "a few of us", []Entity{{Kind: EntityNumber, Value: "3"}}, 3},
		{"cardinal entity", "", []Entity{{Kind: EntityCardinal, Value: "five"}}, 5},
		{"spelled out", "table for two", nil, 2},
		{"zero", "0", nil, 0},
		{"negative", "-3", nil, 0},
		{"nothing numeric", "lots", nil, 0},
	}

	v := newValidators()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := entity.NewBookingSession("s", time.Now())
			s.NumOfGuests = 7

			res := v.Validate(s, NumOfGuests, tt.value, Turn{Entities: tt.entities})
			assert.Equal(t, tt.want > 0, res.Accepted)
			assert.Equal(t, tt.want, s.NumOfGuests)
			if tt.want == 0 {
				assert.Equal(t, MsgGuests, res.Message)
			}
		})
	}
}

func TestValidateRebookConfirmed(t *testing.T) {
	v := newValidators()
	s := entity.NewBookingSession("s", time.Now())

	assert.True(t, v.Validate(s, RebookConfirmed, "", Turn{Intent: IntentAffirm}).Accepted)
	assert.Equal(t, entity.TriTrue, s.RebookConfirmed)

	assert.False(t, v.Validate(s, RebookConfirmed, "perhaps", Turn{}).Accepted)
	assert.Equal(t, entity.TriUnknown, s.RebookConfirmed)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"vegan", "gluten-free", "halal"}, SplitTags("Vegan; gluten-free and halal"))
	assert.Equal(t, []string{"no dietary restrictions"}, SplitTags("  No   dietary restrictions "))
	assert.Empty(t, SplitTags(" , ; "))
	assert.Equal(t, []string{"vegan", "halal"}, SplitTags("vegan please, halal only"))
}
