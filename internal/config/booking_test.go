package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBookingConfigDefaults(t *testing.T) {
	logger, _ := test.NewNullLogger()

	cfg, err := LoadBookingConfig(logger)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.TurnLimit)
	assert.Equal(t, "file", cfg.CatalogSource)
	assert.Equal(t, "data/restaurants.json", cfg.CatalogPath)
	assert.Equal(t, "memory", cfg.SessionStore)
	assert.Equal(t, time.Hour, cfg.SessionTTL())
	assert.Zero(t, cfg.RecommendSeed)
	assert.Equal(t, "3000", cfg.AppPort)
}

func TestLoadBookingConfigFromEnv(t *testing.T) {
	t.Setenv("TURN_LIMIT", "4")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("SESSION_TTL_MINUTES", "15")
	t.Setenv("RECOMMEND_SEED", "42")
	t.Setenv("CATALOG_SOURCE", "s3")
	logger, _ := test.NewNullLogger()

	cfg, err := LoadBookingConfig(logger)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.TurnLimit)
	assert.Equal(t, "redis", cfg.SessionStore)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL())
	assert.Equal(t, uint64(42), cfg.RecommendSeed)
	assert.Equal(t, "s3", cfg.CatalogSource)
}

func TestBookingConfigLocation(t *testing.T) {
	loc, err := BookingConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = BookingConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = BookingConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}

func TestSessionTTLDisabled(t *testing.T) {
	assert.Zero(t, BookingConfig{SessionTTLMinutes: 0}.SessionTTL())
}
