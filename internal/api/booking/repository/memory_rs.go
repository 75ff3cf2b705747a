package bookingRepository

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"RestaurantAssistant/internal/api/booking"
	"RestaurantAssistant/internal/entity"
	contextPkg "RestaurantAssistant/pkg/context"
)

// memoryRepository stores encoded copies so callers never share a session
// value across requests.
type memoryRepository struct {
	mu       sync.Mutex
	sessions map[string][]byte
	ttl      time.Duration
	now      func() time.Time
	log      *logrus.Logger
}

func (r *memoryRepository) GetSession(ctx context.Context, id string) (*entity.BookingSession, error) {
	r.mu.Lock()
	data, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return nil, booking.ErrSessionNotFound
	}

	s, err := decodeSession(data)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": id,
			"error":      err.Error(),
		}).Error("Failed to decode stored session")
		return nil, booking.ErrSessionCorrupt
	}

	if r.ttl > 0 && r.now().Sub(s.LastActivity) > r.ttl {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		return nil, booking.ErrSessionNotFound
	}
	return s, nil
}

func (r *memoryRepository) SaveSession(ctx context.Context, session *entity.BookingSession) error {
	data, err := encodeSession(session)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": session.ID,
			"error":      err.Error(),
		}).Error("Failed to encode session")
		return booking.ErrSessionStore
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = data
	return nil
}

func (r *memoryRepository) DeleteSession(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
