package catalogRepository

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"RestaurantAssistant/internal/api/catalog"
	"RestaurantAssistant/internal/entity"
	contextPkg "RestaurantAssistant/pkg/context"
)

type fileRepository struct {
	path string
	log  *logrus.Logger
}

func NewFile(path string, log *logrus.Logger) Repository {
	return &fileRepository{path: path, log: log}
}

func (r *fileRepository) LoadRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       r.path,
			"error":      err.Error(),
		}).Error("Failed to read restaurant catalog file")
		return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogLoad, err)
	}

	restaurants, err := decodeRestaurants(data)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       r.path,
			"error":      err.Error(),
		}).Error("Failed to decode restaurant catalog file")
		return nil, err
	}
	return restaurants, nil
}
