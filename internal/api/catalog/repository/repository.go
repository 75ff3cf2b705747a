package catalogRepository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"RestaurantAssistant/internal/api/catalog"
	"RestaurantAssistant/internal/entity"
	"RestaurantAssistant/pkg/s3"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceS3       = "s3"
)

// Repository loads the full restaurant list. The catalog is read once at
// startup, so there is no per-restaurant query.
type Repository interface {
	LoadRestaurants(ctx context.Context) ([]entity.Restaurant, error)
}

type Config struct {
	Source string
	Path   string
	S3Key  string
}

// New picks the loader for cfg.Source. The database and s3 client are only
// required by their own source.
func New(cfg Config, db *sqlx.DB, s3Client s3.ItfS3, log *logrus.Logger) (Repository, error) {
	switch strings.ToLower(cfg.Source) {
	case "", SourceFile:
		return NewFile(cfg.Path, log), nil
	case SourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("%w: postgres source needs a database", catalog.ErrUnknownSource)
		}
		return NewPostgres(db, log), nil
	case SourceS3:
		if s3Client == nil {
			return nil, fmt.Errorf("%w: s3 source needs an s3 client", catalog.ErrUnknownSource)
		}
		return NewS3(s3Client, cfg.S3Key, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownSource, cfg.Source)
	}
}
