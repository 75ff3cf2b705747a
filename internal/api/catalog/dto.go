package catalog

import "RestaurantAssistant/internal/entity"

type ListRequest struct {
	Cuisine string `query:"cuisine" validate:"omitempty,max=64"`
	Diet    string `query:"diet" validate:"omitempty,max=64"`
	Guests  int    `query:"guests" validate:"omitempty,min=1,max=100"`
}

type RestaurantResponse struct {
	Name           string              `json:"name"`
	Cuisine        string              `json:"cuisine"`
	DietaryOptions []string            `json:"dietary_options"`
	MaxGuests      int                 `json:"max_guests"`
	Rating         float64             `json:"rating"`
	Location       string              `json:"location,omitempty"`
	Availability   map[string][]string `json:"availability"`
}

type ListResponse struct {
	Total       int                  `json:"total"`
	Restaurants []RestaurantResponse `json:"restaurants"`
}

func NewRestaurantResponse(r entity.Restaurant) RestaurantResponse {
	diets := r.DietaryOptions
	if diets == nil {
		diets = []string{}
	}
	availability := r.Availability
	if availability == nil {
		availability = map[string][]string{}
	}
	return RestaurantResponse{
		Name:           r.Name,
		Cuisine:        r.Cuisine,
		DietaryOptions: diets,
		MaxGuests:      r.MaxGuests,
		Rating:         r.Rating,
		Location:       r.Location,
		Availability:   availability,
	}
}
