package catalogRepository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"RestaurantAssistant/internal/api/catalog"
	"RestaurantAssistant/internal/entity"
	contextPkg "RestaurantAssistant/pkg/context"
	"RestaurantAssistant/pkg/s3"
)

type s3Repository struct {
	client s3.ItfS3
	key    string
	log    *logrus.Logger
}

func NewS3(client s3.ItfS3, key string, log *logrus.Logger) Repository {
	return &s3Repository{client: client, key: key, log: log}
}

func (r *s3Repository) LoadRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	data, err := r.client.GetObject(ctx, r.key)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"key":        r.key,
			"error":      err.Error(),
		}).Error("Failed to download restaurant catalog")
		return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogLoad, err)
	}

	return decodeRestaurants(data)
}
