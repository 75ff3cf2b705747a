package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type BookingConfig struct {
	AppPort           string  `mapstructure:"APP_PORT"`
	TurnLimit         int     `mapstructure:"TURN_LIMIT"`
	CatalogSource     string  `mapstructure:"CATALOG_SOURCE"`
	CatalogPath       string  `mapstructure:"CATALOG_PATH"`
	CatalogS3Key      string  `mapstructure:"CATALOG_S3_KEY"`
	SessionStore      string  `mapstructure:"SESSION_STORE"`
	SessionTTLMinutes int     `mapstructure:"SESSION_TTL_MINUTES"`
	RecommendSeed     uint64  `mapstructure:"RECOMMEND_SEED"`
	Timezone          string  `mapstructure:"BOOKING_TIMEZONE"`
	RateLimit         float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateBurst         int     `mapstructure:"RATE_LIMIT_BURST"`
}

var bookingDefaults = map[string]interface{}{
	"APP_PORT":            "3000",
	"TURN_LIMIT":          10,
	"CATALOG_SOURCE":      "file",
	"CATALOG_PATH":        "data/restaurants.json",
	"CATALOG_S3_KEY":      "restaurants.json",
	"SESSION_STORE":       "memory",
	"SESSION_TTL_MINUTES": 60,
	"RECOMMEND_SEED":      0,
	"BOOKING_TIMEZONE":    "",
	"RATE_LIMIT_RPS":      50,
	"RATE_LIMIT_BURST":    100,
}

// LoadBookingConfig reads config.yaml from . or ./config when present, with
// environment variables taking precedence.
func LoadBookingConfig(logger *logrus.Logger) (BookingConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for key, value := range bookingDefaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		logger.Debug("No config file found, using environment variables only")
	}

	var cfg BookingConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return BookingConfig{}, fmt.Errorf("failed to decode booking config: %w", err)
	}
	return cfg, nil
}

func (c BookingConfig) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// Location resolves BOOKING_TIMEZONE, falling back to the process zone.
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
