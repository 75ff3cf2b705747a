package config

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RestaurantAssistant/internal/api/booking"
	"RestaurantAssistant/internal/api/catalog"
	"RestaurantAssistant/pkg/event"
	"RestaurantAssistant/pkg/metrics"
)

func newTestServer(t *testing.T) (*fiber.App, *event.Recorder) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	app := fiber.New(fiber.Config{
		JSONEncoder: jsoniter.Marshal,
		JSONDecoder: jsoniter.Unmarshal,
	})
	events := &event.Recorder{}

	server, err := NewServer(
		WithFiber(app),
		WithLogger(logger),
		WithValidator(NewValidator()),
		WithBookingConfig(BookingConfig{
			TurnLimit:     10,
			CatalogSource: "file",
			CatalogPath:   "../../data/restaurants.json",
			SessionStore:  "memory",
			RecommendSeed: 7,
			Timezone:      "UTC",
		}),
		WithCatalog(),
		WithMiddleware(),
		WithUtils(),
		WithEventSink(events),
		WithMetrics(metrics.New()),
	)
	require.NoError(t, err)

	server.RegisterHandler()
	server.Mount()
	return app, events
}

func call(t *testing.T, app *fiber.App, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := jsoniter.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, jsoniter.Unmarshal(data, out), string(data))
	}
	return resp.StatusCode
}

func TestNewServerRequiresCatalog(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := NewServer(WithFiber(fiber.New()), WithLogger(logger))
	assert.Error(t, err)

	_, err = NewServer(WithFiber(fiber.New()), WithLogger(logger),
		WithBookingConfig(BookingConfig{CatalogPath: "missing.json"}), WithCatalog())
	assert.Error(t, err)
}

func TestServerHealthAndCatalog(t *testing.T) {
	app, _ := newTestServer(t)

	var health map[string]interface{}
	assert.Equal(t, http.StatusOK, call(t, app, "GET", "/", nil, &health))
	assert.Equal(t, float64(12), health["restaurants"])

	var list catalog.ListResponse
	assert.Equal(t, http.StatusOK, call(t, app, "GET", "/api/v1/restaurants?cuisine=japanese", nil, &list))
	assert.Equal(t, 2, list.Total)

	var one catalog.RestaurantResponse
	assert.Equal(t, http.StatusOK, call(t, app, "GET", "/api/v1/restaurants/le%20petit%20bistro", nil, &one))
	assert.Equal(t, "Le Petit Bistro", one.Name)

	assert.Equal(t, http.StatusNotFound, call(t, app, "GET", "/api/v1/restaurants/nowhere", nil, nil))
	assert.Equal(t, http.StatusBadRequest, call(t, app, "GET", "/api/v1/restaurants?guests=-1", nil, nil))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="/api/v1/restaurants/:name"`)
}

func TestServerBookingConversation(t *testing.T) {
	app, events := newTestServer(t)

	var started booking.TurnResponse
	require.Equal(t, http.StatusCreated, call(t, app, "POST", "/api/v1/booking/sessions", nil, &started))
	require.NotEmpty(t, started.SessionID)
	turns := "/api/v1/booking/sessions/" + started.SessionID + "/turns"

	var resp booking.TurnResponse
	require.Equal(t, http.StatusOK, call(t, app, "POST", turns, booking.TurnRequest{Text: "no"}, &resp))
	assert.Equal(t, "cuisine_preferences", resp.NextSlot)

	require.Equal(t, http.StatusOK, call(t, app, "POST", turns, booking.TurnRequest{Slots: map[string]string{
		"cuisine_preferences": "japanese",
		"dietary_preferences": "gluten-free",
		"date_and_time":       "2025-06-02 7:00 PM",
		"num_of_guests":       "2",
	}}, &resp))
	assert.Equal(t, "recommendation", resp.Kind)
	require.NotNil(t, resp.Recommendation)
	assert.Equal(t, "Sakura", resp.Recommendation.Name)

	require.Equal(t, http.StatusOK, call(t, app, "POST", turns, booking.TurnRequest{Intent: "affirm"}, &resp))
	assert.Equal(t, "confirmed", resp.Kind)

	var session booking.SessionResponse
	require.Equal(t, http.StatusOK, call(t, app, "GET", "/api/v1/booking/sessions/"+started.SessionID, nil, &session))
	assert.Equal(t, "complete", session.Status)
	assert.Equal(t, 5, session.TurnCounter)

	require.Equal(t, http.StatusOK, call(t, app, "DELETE", "/api/v1/booking/sessions/"+started.SessionID+"/slots", nil, &resp))
	assert.Equal(t, "past_bookings", resp.NextSlot)
	assert.Empty(t, events.Names())
}
