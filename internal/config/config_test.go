package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost:9000", cfg.ClickHouse.Addr)
	assert.Equal(t, "default", cfg.ClickHouse.Database)
	assert.Equal(t, 10, cfg.ClickHouse.Timeout)
	assert.Equal(t, "localhost:9001", cfg.MinIO.Endpoint)
	assert.Equal(t, "credit-scores", cfg.MinIO.Bucket)
	assert.False(t, cfg.MinIO.UseSSL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CLICKHOUSE_ADDR", "ch.internal:9440")
	t.Setenv("CLICKHOUSE_TIMEOUT", "30")
	t.Setenv("MINIO_BUCKET", "scores-prod")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, "ch.internal:9440", cfg.ClickHouse.Addr)
	assert.Equal(t, 30, cfg.ClickHouse.Timeout)
	assert.Equal(t, "scores-prod", cfg.MinIO.Bucket)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestEnvHelpersFallBackOnBadValues(t *testing.T) {
	t.Setenv("CLICKHOUSE_TIMEOUT", "not-a-number")
	t.Setenv("MINIO_USE_SSL", "maybe")

	cfg := Load()

	assert.Equal(t, 10, cfg.ClickHouse.Timeout)
	assert.False(t, cfg.MinIO.UseSSL)
}
