package catalog

import "RestaurantAssistant/pkg/response"

var (
	ErrRestaurantNotFound = response.NewError(404, "restaurant not found")
	ErrUnknownSource      = response.NewError(500, "unknown catalog source")
	ErrCatalogLoad        = response.NewError(500, "failed to load restaurant catalog")
	ErrCatalogInvalid     = response.NewError(500, "restaurant catalog is invalid")
)
