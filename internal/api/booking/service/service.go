package bookingService

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"RestaurantAssistant/internal/api/booking"
	bookingRepository "RestaurantAssistant/internal/api/booking/repository"
	"RestaurantAssistant/internal/entity"
	"RestaurantAssistant/internal/recommend"
	"RestaurantAssistant/internal/slot"
	"RestaurantAssistant/pkg/event"
	"RestaurantAssistant/pkg/nlp"
	"RestaurantAssistant/pkg/utils"
)

type IBookingService interface {
	StartSession(ctx context.Context) (*booking.TurnResponse, error)
	GetSession(ctx context.Context, sessionID string) (*booking.SessionResponse, error)
	ProcessTurn(ctx context.Context, sessionID string, req booking.TurnRequest) (*booking.TurnResponse, error)
	ResetSession(ctx context.Context, sessionID string) (*booking.TurnResponse, error)
}

// Recommender produces the final answer for a completed session.
type Recommender interface {
	Recommend(s *entity.BookingSession) recommend.Outcome
}

type bookingService struct {
	log          *logrus.Logger
	bookingRepo  bookingRepository.Repository
	validators   *slot.Validators
	guard        *slot.Guard
	engine       Recommender
	nlpProcessor nlp.INLPProcessor
	utils        utils.IUtils
	sink         event.Sink
	now          func() time.Time
}

func New(
	log *logrus.Logger,
	bookingRepo bookingRepository.Repository,
	validators *slot.Validators,
	guard *slot.Guard,
	engine Recommender,
	nlpProcessor nlp.INLPProcessor,
	utils utils.IUtils,
	sink event.Sink,
) IBookingService {
	if sink == nil {
		sink = event.Discard
	}
	return &bookingService{
		log:          log,
		bookingRepo:  bookingRepo,
		validators:   validators,
		guard:        guard,
		engine:       engine,
		nlpProcessor: nlpProcessor,
		utils:        utils,
		sink:         sink,
		now:          time.Now,
	}
}

func (s *bookingService) respond(session *entity.BookingSession, intent, kind, message string) *booking.TurnResponse {
	res := slot.Resolve(session, intent)
	resp := &booking.TurnResponse{
		SessionID:     session.ID,
		Kind:          kind,
		RequiredSlots: booking.SlotNames(res.Required),
		Message:       message,
		Session:       booking.NewSessionResponse(session, res),
	}
	if next, ok := res.Next(); ok {
		resp.NextSlot = next.String()
	}
	return resp
}
