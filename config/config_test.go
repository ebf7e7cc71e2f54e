package config

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_SSLMODE", "PORT", "CORS_ORIGINS", "SEED_KEY", "DB_DEBUG"} {
		t.Setenv(k, "")
	}
	t.Setenv("DB_USER", "luke")
	t.Setenv("DB_PASSWORD", "x")
	t.Setenv("DB_NAME", "swapi")

	cfg := FromEnv()
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "seed/reference.json", cfg.SeedKey)
	assert.False(t, cfg.DBDebug)
	assert.Equal(t, "host=localhost user=luke password=x dbname=swapi port=5432 sslmode=disable", cfg.DSN())
}

func TestDatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/swapi")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://example.com ,")
	t.Setenv("DB_DEBUG", "true")

	cfg := FromEnv()
	assert.Equal(t, "postgres://u:p@db:5432/swapi", cfg.DSN())
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSOrigins)
	assert.True(t, cfg.DBDebug)
}
