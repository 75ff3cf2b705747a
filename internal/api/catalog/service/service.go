package catalogService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/sirupsen/logrus"

	"RestaurantAssistant/internal/api/catalog"
	catalogRepository "RestaurantAssistant/internal/api/catalog/repository"
	"RestaurantAssistant/internal/entity"
	"RestaurantAssistant/internal/recommend"
	contextPkg "RestaurantAssistant/pkg/context"
)

type ICatalogService interface {
	ListRestaurants(ctx context.Context, req catalog.ListRequest) (*catalog.ListResponse, error)
	GetRestaurant(ctx context.Context, name string) (*catalog.RestaurantResponse, error)
}

type catalogService struct {
	log     *logrus.Logger
	catalog *recommend.Catalog
}

func New(log *logrus.Logger, c *recommend.Catalog) ICatalogService {
	return &catalogService{
		log:     log,
		catalog: c,
	}
}

var loadRetry = []retry.Option{
	retry.Attempts(3),
	retry.Delay(500 * time.Millisecond),
	retry.LastErrorOnly(true),
}

// Load reads the restaurant list once and validates it into a catalog.
// Source failures are retried; a malformed catalog is not.
func Load(ctx context.Context, repo catalogRepository.Repository, log *logrus.Logger) (*recommend.Catalog, error) {
	var restaurants []entity.Restaurant

	opts := append([]retry.Option{
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, catalog.ErrCatalogInvalid)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"attempt":    n + 1,
				"error":      err.Error(),
			}).Warn("Restaurant catalog load failed, retrying")
		}),
	}, loadRetry...)

	err := retry.Do(func() error {
		var err error
		restaurants, err = repo.LoadRestaurants(ctx)
		return err
	}, opts...)
	if err != nil {
		return nil, err
	}

	c, err := recommend.NewCatalog(restaurants)
	if err != nil {
		log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Restaurant catalog failed validation")
		return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogInvalid, err)
	}

	log.WithFields(logrus.Fields{
		"request_id":  contextPkg.GetRequestID(ctx),
		"restaurants": c.Len(),
	}).Info("Restaurant catalog loaded")
	return c, nil
}

func (s *catalogService) ListRestaurants(ctx context.Context, req catalog.ListRequest) (*catalog.ListResponse, error) {
	resp := &catalog.ListResponse{Restaurants: []catalog.RestaurantResponse{}}

	for _, r := range s.catalog.All() {
		if !matches(r, req) {
			continue
		}
		resp.Restaurants = append(resp.Restaurants, catalog.NewRestaurantResponse(r))
	}
	resp.Total = len(resp.Restaurants)

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"cuisine":    req.Cuisine,
		"diet":       req.Diet,
		"total":      resp.Total,
	}).Debug("Restaurants listed")

	return resp, nil
}

func (s *catalogService) GetRestaurant(ctx context.Context, name string) (*catalog.RestaurantResponse, error) {
	r, ok := s.catalog.Lookup(name)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"name":       name,
		}).Debug("Restaurant not found")
		return nil, catalog.ErrRestaurantNotFound
	}

	resp := catalog.NewRestaurantResponse(r)
	return &resp, nil
}

func matches(r entity.Restaurant, req catalog.ListRequest) bool {
	if req.Cuisine != "" && !strings.EqualFold(r.Cuisine, strings.TrimSpace(req.Cuisine)) {
		return false
	}
	if req.Diet != "" && !r.OffersAll([]string{strings.TrimSpace(req.Diet)}) {
		return false
	}
	if req.Guests > 0 && r.MaxGuests < req.Guests {
		return false
	}
	return true
}
