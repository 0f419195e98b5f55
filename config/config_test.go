package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/store")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("UPLOAD_DIR", "/srv/uploads")

	cfg := Load()

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://app:secret@db:5432/store", cfg.DatabaseURL)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, "/srv/uploads", cfg.UploadDir)
}

func TestLoadAssemblesDSNFromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "store")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("JWT_SECRET", "x")

	cfg := Load()

	assert.Equal(t,
		"host=db.internal user=app password=pw dbname=store port=5433 sslmode=disable",
		cfg.DatabaseURL)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "not-a-number")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.Port, "unparseable port falls back to the default")
	assert.Empty(t, cfg.JWTSecret, "no default secret; main refuses to boot without one")
	assert.Equal(t, "./uploads", cfg.UploadDir)
}
