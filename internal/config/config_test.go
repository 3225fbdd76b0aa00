package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_DRIVER", "SQLITE_PATH", "GEMINI_MODEL", "GEMINI_MAX_RETRIES",
		"UPLOAD_PATH", "TAILORED_PATH", "MAX_FILE_SIZE", "TAILORED_RETENTION",
		"SCRAPER_TIMEOUT", "SCRAPER_USE_BROWSER",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./cv_agent.db", cfg.GetDatabaseDSN())
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 3, cfg.Gemini.MaxRetries)
	assert.Equal(t, "./uploads", cfg.Storage.UploadPath)
	assert.Equal(t, "./tailored_cvs", cfg.Storage.TailoredPath)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 30*time.Second, cfg.Scraper.Timeout)
	assert.False(t, cfg.Scraper.UseBrowser)
	assert.Zero(t, cfg.Retention.MaxAge)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "agent")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "cvs")
	t.Setenv("GEMINI_TEMPERATURE", "0.7")
	t.Setenv("SCRAPER_USE_BROWSER", "true")
	t.Setenv("TAILORED_RETENTION", "72h")
	t.Setenv("GEMINI_MAX_RETRIES", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db port=5432 user=agent password=secret dbname=cvs sslmode=disable", cfg.GetDatabaseDSN())
	assert.InDelta(t, 0.7, cfg.Gemini.Temperature, 0.0001)
	assert.True(t, cfg.Scraper.UseBrowser)
	assert.Equal(t, 72*time.Hour, cfg.Retention.MaxAge)
	assert.Equal(t, 3, cfg.Gemini.MaxRetries)
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SCRAPER_TIMEOUT", "soon")
	assert.Equal(t, 30*time.Second, getEnvAsDuration("SCRAPER_TIMEOUT", "30s"))
}
