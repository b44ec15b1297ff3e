package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "clinic")
	t.Setenv("DB_PASSWORD", "clinic-pass")
	t.Setenv("DB_NAME", "trichocare_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://redis.internal:6379")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://admin.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "clinic", cfg.DBUser)
	assert.Equal(t, "clinic-pass", cfg.DBPassword)
	assert.Equal(t, "trichocare_test", cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://redis.internal:6379", cfg.RedisURL)
	assert.Equal(t, []string{"http://localhost:5173", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET", "REDIS_URL", "ALLOWED_ORIGINS", "SCORING_GUIDE_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "trichocare", cfg.DBName)
	assert.Equal(t, "your-secret-key", cfg.JWTSecret)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Empty(t, cfg.ScoringGuidePath)
}

func TestLoadConfigScoringGuidePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	t.Setenv("SCORING_GUIDE_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ScoringGuidePath)
}

func TestLoadConfigRejectsMissingGuideFile(t *testing.T) {
	t.Setenv("SCORING_GUIDE_PATH", "/nonexistent/guide.json")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfigRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}
