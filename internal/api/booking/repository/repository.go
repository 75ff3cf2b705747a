package bookingRepository

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"RestaurantAssistant/internal/entity"
	"RestaurantAssistant/pkg/redis"
)

const sessionKeyPrefix = "booking:session:"

type Repository interface {
	GetSession(ctx context.Context, id string) (*entity.BookingSession, error)
	SaveSession(ctx context.Context, session *entity.BookingSession) error
	DeleteSession(ctx context.Context, id string) error
}

// New picks the redis store when a client is given and the in-process store
// otherwise. Sessions idle for longer than ttl are dropped.
func New(redisServer redis.IRedis, ttl time.Duration, log *logrus.Logger) Repository {
	if redisServer != nil {
		return &redisRepository{redis: redisServer, ttl: ttl, log: log}
	}
	return &memoryRepository{
		sessions: make(map[string][]byte),
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
