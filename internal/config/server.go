package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"RestaurantAssistant/database/postgres"
	bookingHandler "RestaurantAssistant/internal/api/booking/handler"
	bookingRepository "RestaurantAssistant/internal/api/booking/repository"
	bookingService "RestaurantAssistant/internal/api/booking/service"
	catalogHandler "RestaurantAssistant/internal/api/catalog/handler"
	catalogRepository "RestaurantAssistant/internal/api/catalog/repository"
	catalogService "RestaurantAssistant/internal/api/catalog/service"
	"RestaurantAssistant/internal/middleware"
	"RestaurantAssistant/internal/recommend"
	"RestaurantAssistant/internal/slot"
	"RestaurantAssistant/pkg/event"
	"RestaurantAssistant/pkg/log"
	"RestaurantAssistant/pkg/metrics"
	"RestaurantAssistant/pkg/nlp"
	"RestaurantAssistant/pkg/redis"
	"RestaurantAssistant/pkg/s3"
	"RestaurantAssistant/pkg/similarity"
	"RestaurantAssistant/pkg/utils"
)

const SessionStoreRedis = "redis"

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
	s3Client    s3.ItfS3
	sink        event.Sink
	metrics     *metrics.Metrics
	cfg         BookingConfig
	location    *time.Location
	catalog     *recommend.Catalog
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{
		cfg:      BookingConfig{TurnLimit: slot.DefaultTurnLimit, AppPort: "3000"},
		location: time.Local,
	}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.catalog == nil {
		return nil, fmt.Errorf("restaurant catalog is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithBookingConfig(cfg BookingConfig) ServerOption {
	return func(s *Server) error {
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		s.cfg = cfg
		s.location = loc
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

// WithCatalog loads the restaurant catalog from the configured source. It
// must come after the database and s3 options it may depend on.
func WithCatalog() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before catalog")
		}

		repo, err := catalogRepository.New(catalogRepository.Config{
			Source: s.cfg.CatalogSource,
			Path:   s.cfg.CatalogPath,
			S3Key:  s.cfg.CatalogS3Key,
		}, s.db, s.s3Client, s.log)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		c, err := catalogService.Load(ctx, repo, s.log)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		s.catalog = c
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}

		var opts []middleware.Option
		if s.cfg.RateLimit > 0 && s.cfg.RateBurst > 0 {
			opts = append(opts, middleware.WithRateLimit(rate.Limit(s.cfg.RateLimit), s.cfg.RateBurst))
		}
		s.middleware = middleware.New(s.log, opts...)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithEventSink(sink event.Sink) ServerOption {
	return func(s *Server) error {
		s.sink = sink
		return nil
	}
}

func WithMetrics(m *metrics.Metrics) ServerOption {
	return func(s *Server) error {
		s.metrics = m
		return nil
	}
}

func (s *Server) RegisterHandler() {
	if s.middleware == nil {
		s.middleware = middleware.New(s.log)
	}
	if s.validator == nil {
		s.validator = NewValidator()
	}
	if s.utils == nil {
		s.utils = utils.New()
	}
	if s.sink == nil {
		s.sink = log.NewEventSink(s.log)
	}
	if s.metrics != nil {
		s.sink = event.Multi(s.sink, s.metrics)
	}

	// Catalog Domain
	catalogServices := catalogService.New(s.log, s.catalog)
	catalogHandlers := catalogHandler.New(s.log, s.validator, s.middleware, catalogServices)

	// Booking Domain
	engineOpts := []recommend.Option{recommend.WithSink(s.sink)}
	if s.cfg.RecommendSeed != 0 {
		engineOpts = append(engineOpts, recommend.WithSeed(s.cfg.RecommendSeed))
	}
	engine := recommend.NewEngine(s.catalog, similarity.NewIndex(s.catalog.Texts()), engineOpts...)

	var sessionStore redis.IRedis
	if strings.EqualFold(s.cfg.SessionStore, SessionStoreRedis) {
		sessionStore = s.redisServer
	}
	bookingRepo := bookingRepository.New(sessionStore, s.cfg.SessionTTL(), s.log)
	bookingServices := bookingService.New(
		s.log,
		bookingRepo,
		slot.NewValidators(slot.DefaultVocabulary(), slot.WithLocation(s.location)),
		slot.NewGuard(s.cfg.TurnLimit, s.sink),
		engine,
		nlp.NewProcessor(),
		s.utils,
		s.sink,
	)
	bookingHandlers := bookingHandler.New(s.log, s.validator, s.middleware, bookingServices)

	s.handlers = append(s.handlers, catalogHandlers, bookingHandlers)
}

// Mount attaches the middleware chain, the health check and every registered
// handler under /api/v1.
func (s *Server) Mount() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	if s.metrics != nil {
		s.engine.Use(s.metrics.Middleware())
		s.engine.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
	}
	s.setupHealthCheck()

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) Run() error {
	s.Mount()

	port := s.cfg.AppPort
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.db != nil {
			s.db.Close()
		}
		return err
	}

	return nil
}

func (s *Server) Shutdown() error {
	if s.db != nil {
		defer s.db.Close()
	}
	return s.engine.Shutdown()
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message":     "Server is Healthy!",
			"restaurants": s.catalog.Len(),
		})
	})
}
