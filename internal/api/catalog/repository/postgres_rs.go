package catalogRepository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"RestaurantAssistant/internal/api/catalog"
	"RestaurantAssistant/internal/entity"
	contextPkg "RestaurantAssistant/pkg/context"
)

type RestaurantDB struct {
	Name           sql.NullString  `db:"name"`
	Cuisine        sql.NullString  `db:"cuisine"`
	DietaryOptions pq.StringArray  `db:"dietary_options"`
	MaxGuests      sql.NullInt64   `db:"max_guests"`
	Availability   []byte          `db:"availability"`
	Rating         sql.NullFloat64 `db:"rating"`
	Location       sql.NullString  `db:"location"`
}

type postgresRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

func NewPostgres(db *sqlx.DB, log *logrus.Logger) Repository {
	return &postgresRepository{q: db, log: log}
}

func (r *postgresRepository) LoadRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"is_active": true,
	}

	query, args, err := sqlx.Named(queryLoadRestaurants, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("LoadRestaurants named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("LoadRestaurants execution err")
		return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogLoad, err)
	}
	defer rows.Close()

	var restaurants []entity.Restaurant
	for rows.Next() {
		var row RestaurantDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("LoadRestaurants scan err")
			return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogLoad, err)
		}

		restaurant, err := r.makeRestaurant(row)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"restaurant": row.Name.String,
				"error":      err.Error(),
			}).Error("LoadRestaurants invalid availability")
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogLoad, err)
	}

	return restaurants, nil
}

func (r *postgresRepository) makeRestaurant(row RestaurantDB) (entity.Restaurant, error) {
	restaurant := entity.Restaurant{
		Name:           row.Name.String,
		Cuisine:        row.Cuisine.String,
		DietaryOptions: []string(row.DietaryOptions),
		MaxGuests:      int(row.MaxGuests.Int64),
		Rating:         row.Rating.Float64,
		Location:       row.Location.String,
	}

	if len(row.Availability) > 0 {
		if err := json.Unmarshal(row.Availability, &restaurant.Availability); err != nil {
			return entity.Restaurant{}, fmt.Errorf("%w: availability of %q: %v", catalog.ErrCatalogInvalid, row.Name.String, err)
		}
	}
	return restaurant, nil
}
