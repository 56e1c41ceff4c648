package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("ARCHIVE_WORKERS", "")

	cfg := Load()
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 4, cfg.ArchiveWorkers)
	assert.Equal(t, 8, cfg.DefaultPageSize)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", " k1:9092, ,k2:9092 ")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("ARCHIVE_WORKERS", "-3")
	t.Setenv("APP_ENV", "production")

	cfg := Load()
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 4, cfg.ArchiveWorkers, "non-positive values fall back to default")
	assert.False(t, cfg.IsDevelopment())
}
