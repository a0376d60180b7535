package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_NAME", "TOP_TRACKS_LIMIT", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "upskill", cfg.DBName)
	assert.Equal(t, 5, cfg.TopTracksLimit)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_NAME", "")
	t.Setenv("TOP_TRACKS_LIMIT", "3")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "upskill.db", cfg.DBName)
	assert.Equal(t, 3, cfg.TopTracksLimit)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	t.Setenv("TOP_TRACKS_LIMIT", "zero")
	t.Setenv("DB_MAX_IDLE_CONNS", "-")

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 5, cfg.TopTracksLimit)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
}
