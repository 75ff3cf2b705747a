package catalogHandler

import (
	"context"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"RestaurantAssistant/internal/api/catalog"
	contextPkg "RestaurantAssistant/pkg/context"
	"RestaurantAssistant/pkg/handlerUtil"
	"RestaurantAssistant/pkg/log"
)

func (h *CatalogHandler) ListRestaurants(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req catalog.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	resp, err := h.catalogService.ListRestaurants(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_restaurants")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *CatalogHandler) GetRestaurant(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"name":       name,
	}).Debug("Processing get restaurant request")

	resp, err := h.catalogService.GetRestaurant(c, name)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_restaurant")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}
