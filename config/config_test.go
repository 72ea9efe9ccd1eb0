package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "DATABASE_URL", "CORS_ALLOWED_ORIGINS", "EMAIL_PROVIDER", "SHUTDOWN_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	t.Setenv("GO_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test ")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("EMAIL_PROVIDER", "ses")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DBUrl)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "ses", cfg.Email.Provider)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	t.Run("unknown store driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "redis")
		t.Setenv("SHUTDOWN_TIMEOUT", "")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad shutdown timeout", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production", "warn")

	logger.Info("dropped")
	require.Zero(t, buf.Len())

	logger.Warn("kept", "k", "v")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "v", line["k"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
