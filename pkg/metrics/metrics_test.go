package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RestaurantAssistant/pkg/event"
)

func TestEmitCountsByName(t *testing.T) {
	m := New()
	m.Emit(event.Event{Name: event.TurnLimitReached})
	m.Emit(event.Event{Name: event.TurnLimitReached})
	m.Emit(event.Event{Name: event.SubstituteOffered})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.events.WithLabelValues(event.TurnLimitReached)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues(event.SubstituteOffered)))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.Emit(event.Event{Name: event.NoAlternative})

	assert.Equal(t, 0.0, testutil.ToFloat64(b.events.WithLabelValues(event.NoAlternative)))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		return c.SendString(c.Params("id"))
	})

	for _, id := range []string{"1", "2"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/items/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_request_duration_seconds_count{method="GET",route="/items/:id",status="200"} 2`)
}
