package catalogHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	catalogService "RestaurantAssistant/internal/api/catalog/service"
	"RestaurantAssistant/internal/middleware"
)

type CatalogHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	catalogService catalogService.ICatalogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	catalogService catalogService.ICatalogService,
) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	restaurants := srv.Group("/restaurants")

	restaurants.Get("", h.ListRestaurants)
	restaurants.Get("/:name", h.GetRestaurant)
}
