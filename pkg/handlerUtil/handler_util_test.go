package handlerUtil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RestaurantAssistant/internal/api/booking"
	"RestaurantAssistant/internal/api/catalog"
)

func serve(t *testing.T, h *ErrorHandler, err error) (int, ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return h.Handle(c, "req-1", err, c.Path(), "test")
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)
	body, _ := io.ReadAll(resp.Body)

	var out ErrorResponse
	require.NoError(t, jsoniter.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestHandleMapsSentinelErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{booking.ErrSessionNotFound, 404, "SESSION_NOT_FOUND"},
		{fmt.Errorf("load: %w", booking.ErrSessionNotFound), 404, "SESSION_NOT_FOUND"},
		{booking.ErrInvalidSlot, 400, "INVALID_SLOT"},
		{booking.ErrEmptyTurn, 400, "EMPTY_TURN"},
		{booking.ErrSessionStore, 500, "SESSION_STORE_ERROR"},
		{catalog.ErrRestaurantNotFound, 404, "RESTAURANT_NOT_FOUND"},
		{context.DeadlineExceeded, 408, "REQUEST_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			status, body := serve(t, New(logger), tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestHandleLogsRequestID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	serve(t, New(logger), booking.ErrSessionNotFound)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "req-1", entry.Data["request_id"])
	assert.Equal(t, "test", entry.Data["operation"])
}

func TestHandleValidationError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	h := New(logger)
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		return h.HandleValidationError(c, "req-1", errors.New("intent too long"), c.Path())
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
