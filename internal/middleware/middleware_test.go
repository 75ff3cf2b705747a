package middleware

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(m Middleware) *fiber.App {
	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Use(m.NewLoggingMiddleware())
	app.Get("/ping", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendString(m.GetRequestID(c))
	})
	return app
}

func TestRequestID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := newTestApp(New(logger))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	generated := resp.Header.Get(RequestIDKey)
	_, err = ulid.Parse(generated)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDKey, "caller-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "caller-id", resp.Header.Get(RequestIDKey))

	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, "caller-id", hook.LastEntry().Data["request_id"])
	assert.Equal(t, 200, hook.LastEntry().Data["status"])
}

func TestRequestIDRejectsUnsafeValues(t *testing.T) {
	logger, _ := test.NewNullLogger()
	app := newTestApp(New(logger))

	for _, id := range []string{"has space", "semi;colon", strings.Repeat("a", 65)} {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(RequestIDKey, id)
		resp, err := app.Test(req)
		require.NoError(t, err)

		got := resp.Header.Get(RequestIDKey)
		assert.NotEqual(t, id, got)
		_, err = ulid.Parse(got)
		assert.NoError(t, err, id)
	}
}

func TestRateLimiter(t *testing.T) {
	logger, _ := test.NewNullLogger()
	app := newTestApp(New(logger, WithRateLimit(0, 2)))

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	r := newRateLimiter(1, 1)
	r.now = func() time.Time { return now }

	for i := 0; i < maxTrackedClients; i++ {
		r.GetLimiterFrom(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	require.Len(t, r.bucket, maxTrackedClients)

	now = now.Add(clientIdleTimeout + time.Second)
	r.GetLimiterFrom("192.168.1.1")
	assert.Len(t, r.bucket, 1)
}

func TestSanitizeRequestBody(t *testing.T) {
	assert.JSONEq(t, `{"intent":"affirm","api_key":"[SECRET]"}`, sanitizeRequestBody(`{"intent":"affirm","api_key":"abc"}`))
	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody("hello"))
}
