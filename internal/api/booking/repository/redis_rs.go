package bookingRepository

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"RestaurantAssistant/internal/api/booking"
	"RestaurantAssistant/internal/entity"
	contextPkg "RestaurantAssistant/pkg/context"
	"RestaurantAssistant/pkg/redis"
)

type redisRepository struct {
	redis redis.IRedis
	ttl   time.Duration
	log   *logrus.Logger
}

func (r *redisRepository) GetSession(ctx context.Context, id string) (*entity.BookingSession, error) {
	requestID := contextPkg.GetRequestID(ctx)

	data, err := r.redis.Get(ctx, sessionKey(id))
	if errors.Is(err, redis.ErrNil) {
		return nil, booking.ErrSessionNotFound
	} else if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": id,
			"error":      err.Error(),
		}).Error("Failed to read session from redis")
		return nil, booking.ErrSessionStore
	}

	s, err := decodeSession(data)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": id,
			"error":      err.Error(),
		}).Error("Failed to decode stored session")
		return nil, booking.ErrSessionCorrupt
	}
	return s, nil
}

// SaveSession rewrites the whole session and refreshes its expiry.
func (r *redisRepository) SaveSession(ctx context.Context, session *entity.BookingSession) error {
	requestID := contextPkg.GetRequestID(ctx)

	data, err := encodeSession(session)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": session.ID,
			"error":      err.Error(),
		}).Error("Failed to encode session")
		return booking.ErrSessionStore
	}

	if err := r.redis.Set(ctx, sessionKey(session.ID), data, r.ttl); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": session.ID,
			"error":      err.Error(),
		}).Error("Failed to write session to redis")
		return booking.ErrSessionStore
	}
	return nil
}

func (r *redisRepository) DeleteSession(ctx context.Context, id string) error {
	if err := r.redis.Delete(ctx, sessionKey(id)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": id,
			"error":      err.Error(),
		}).Error("Failed to delete session from redis")
		return booking.ErrSessionStore
	}
	return nil
}
