package catalogService

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RestaurantAssistant/internal/api/catalog"
	"RestaurantAssistant/internal/entity"
)

type stubRepository struct {
	restaurants []entity.Restaurant
	err         error
}

func (s stubRepository) LoadRestaurants(context.Context) ([]entity.Restaurant, error) {
	return s.restaurants, s.err
}

type flakyRepository struct {
	failures int
	calls    int
}

func (f *flakyRepository) LoadRestaurants(context.Context) ([]entity.Restaurant, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, catalog.ErrCatalogLoad
	}
	return restaurants, nil
}

func init() {
	loadRetry = []retry.Option{
		retry.Attempts(3),
		retry.Delay(time.Millisecond),
		retry.LastErrorOnly(true),
	}
}

var restaurants = []entity.Restaurant{
	{Name: "La Bella", Cuisine: "italian", DietaryOptions: []string{"vegetarian"}, MaxGuests: 6},
	{Name: "Pasta House", Cuisine: "Italian", DietaryOptions: []string{"vegan", "vegetarian"}, MaxGuests: 12},
	{Name: "Sakura", Cuisine: "japanese", DietaryOptions: []string{"gluten-free"}, MaxGuests: 8},
}

func newService(t *testing.T) ICatalogService {
	t.Helper()
	logger, _ := test.NewNullLogger()
	c, err := Load(context.Background(), stubRepository{restaurants: restaurants}, logger)
	require.NoError(t, err)
	return New(logger, c)
}

func TestLoad(t *testing.T) {
	logger, _ := test.NewNullLogger()

	c, err := Load(context.Background(), stubRepository{restaurants: restaurants}, logger)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	dup := append([]entity.Restaurant{}, restaurants...)
	dup = append(dup, entity.Restaurant{Name: "sakura"})
	_, err = Load(context.Background(), stubRepository{restaurants: dup}, logger)
	assert.ErrorIs(t, err, catalog.ErrCatalogInvalid)

	loadErr := errors.New("boom")
	_, err = Load(context.Background(), stubRepository{err: loadErr}, logger)
	assert.ErrorIs(t, err, loadErr)
}

func TestLoadRetriesSourceFailures(t *testing.T) {
	logger, hook := test.NewNullLogger()

	repo := &flakyRepository{failures: 2}
	c, err := Load(context.Background(), repo, logger)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, repo.calls)
	assert.NotEmpty(t, hook.AllEntries())

	repo = &flakyRepository{failures: 5}
	_, err = Load(context.Background(), repo, logger)
	assert.ErrorIs(t, err, catalog.ErrCatalogLoad)
	assert.Equal(t, 3, repo.calls)
}

func TestLoadDoesNotRetryInvalidCatalog(t *testing.T) {
	logger, _ := test.NewNullLogger()
	calls := 0
	repo := stubFunc(func() ([]entity.Restaurant, error) {
		calls++
		return nil, catalog.ErrCatalogInvalid
	})

	_, err := Load(context.Background(), repo, logger)
	assert.ErrorIs(t, err, catalog.ErrCatalogInvalid)
	assert.Equal(t, 1, calls)
}

type stubFunc func() ([]entity.Restaurant, error)

func (f stubFunc) LoadRestaurants(context.Context) ([]entity.Restaurant, error) {
	return f()
}

func TestListRestaurants(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name string
		req  catalog.ListRequest
		want []string
	}{
		{"all", catalog.ListRequest{}, []string{"La Bella", "Pasta House", "Sakura"}},
		{"cuisine ignores case", catalog.ListRequest{Cuisine: "ITALIAN"}, []string{"La Bella", "Pasta House"}},
		{"diet", catalog.ListRequest{Diet: "vegan"}, []string{"Pasta House"}},
		{"guests", catalog.ListRequest{Guests: 7}, []string{"Pasta House", "Sakura"}},
		{"combined", catalog.ListRequest{Cuisine: "italian", Diet: "vegetarian", Guests: 10}, []string{"Pasta House"}},
		{"none", catalog.ListRequest{Cuisine: "thai"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ListRestaurants(context.Background(), tt.req)
			require.NoError(t, err)

			names := []string{}
			for _, r := range resp.Restaurants {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
			assert.Equal(t, len(tt.want), resp.Total)
		})
	}
}

func TestGetRestaurant(t *testing.T) {
	svc := newService(t)

	got, err := svc.GetRestaurant(context.Background(), "  sakura ")
	require.NoError(t, err)
	assert.Equal(t, "Sakura", got.Name)
	assert.NotNil(t, got.Availability)

	_, err = svc.GetRestaurant(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, catalog.ErrRestaurantNotFound)
}
