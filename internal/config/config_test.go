package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.App.Host)
	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, []string{"*"}, cfg.App.CORSOrigins)
	assert.True(t, cfg.App.CookieSecure)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "videotube", cfg.Mongo.Database)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiry)
	assert.Equal(t, 240*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, "localhost:8000", cfg.ListenAddr())
}

func TestLoad_FromFile(t *testing.T) {
	os.Clearenv()

	path := filepath.Join(t.TempDir(), "config.env")
	content := "APP_PORT=9000\n" +
		"CORS_ORIGIN=http://a.test, http://b.test\n" +
		"KAFKA_BROKERS=k1:9092,k2:9092\n" +
		"ACCESS_TOKEN_EXPIRY=15m\n" +
		"STORAGE_BACKEND=MINIO\n" +
		"COOKIE_SECURE=false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORSOrigins)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, "minio", cfg.Storage.Backend)
	assert.False(t, cfg.App.CookieSecure)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad port", "REDIS_PORT", "abc"},
		{"bad duration", "REFRESH_TOKEN_EXPIRY", "10 days"},
		{"bad bool", "STORAGE_USE_SSL", "maybe"},
		{"bad backend", "STORAGE_BACKEND", "ftp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			t.Setenv(tt.key, tt.val)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
