package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	catalogRepository "RestaurantAssistant/internal/api/catalog/repository"
	"RestaurantAssistant/internal/config"
	"RestaurantAssistant/pkg/log"
	"RestaurantAssistant/pkg/metrics"
	"RestaurantAssistant/pkg/redis"
)

func main() {
	envErr := godotenv.Load()
	logger := log.NewLogger()
	if envErr != nil && !os.IsNotExist(envErr) {
		logger.Warnf("Error loading .env file: %v", envErr)
	}

	cfg, err := config.LoadBookingConfig(logger)
	if err != nil {
		logger.Fatal(err)
	}

	options := []config.ServerOption{
		config.WithFiber(config.NewFiber(logger)),
		config.WithLogger(logger),
		config.WithValidator(config.NewValidator()),
		config.WithBookingConfig(cfg),
	}

	switch strings.ToLower(cfg.CatalogSource) {
	case catalogRepository.SourcePostgres:
		options = append(options, config.WithDatabase())
	case catalogRepository.SourceS3:
		options = append(options, config.WithS3Client())
	}
	if strings.EqualFold(cfg.SessionStore, config.SessionStoreRedis) {
		options = append(options, config.WithRedisServer(redis.New(logger)))
	}

	options = append(options,
		config.WithCatalog(),
		config.WithMiddleware(),
		config.WithUtils(),
		config.WithEventSink(log.NewEventSink(logger)),
		config.WithMetrics(metrics.New()),
	)

	server, err := config.NewServer(options...)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
