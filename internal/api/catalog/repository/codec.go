package catalogRepository

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"RestaurantAssistant/internal/api/catalog"
	"RestaurantAssistant/internal/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func decodeRestaurants(data []byte) ([]entity.Restaurant, error) {
	var restaurants []entity.Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogInvalid, err)
	}
	return restaurants, nil
}
