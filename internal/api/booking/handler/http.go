package bookingHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	bookingService "RestaurantAssistant/internal/api/booking/service"
	"RestaurantAssistant/internal/middleware"
)

type BookingHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	bookingService bookingService.IBookingService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bookingService bookingService.IBookingService,
) *BookingHandler {
	return &BookingHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		bookingService: bookingService,
	}
}

func (h *BookingHandler) Start(srv fiber.Router) {
	sessions := srv.Group("/booking/sessions")

	sessions.Post("", h.middleware.NewRateLimiter, h.StartSession)
	sessions.Get("/:session_id", h.GetSession)
	sessions.Post("/:session_id/turns", h.middleware.NewRateLimiter, h.ProcessTurn)
	sessions.Delete("/:session_id/slots", h.ResetSession)
}
