package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hempdb/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "STORAGE", "DB_DRIVER", "DATABASE_URL", "DB_HOST", "DB_PORT",
		"DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE", "DB_PATH",
		"DB_MAX_CONNS", "DB_CONN_TIMEOUT_SEC", "SEED_ON_START", "SEED_XLSX",
		"IMPORT_ALLOWED_DOMAINS",
	} {
		t.Setenv(k, "")
	}
	cfg := config.Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db", cfg.Storage)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Equal(t, 5*time.Second, cfg.DBConnTimeout)
	assert.True(t, cfg.SeedOnStart)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE", "memory")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_MAX_CONNS", "3")
	t.Setenv("SEED_ON_START", "false")
	cfg := config.Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "memory", cfg.Storage)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 3, cfg.DBMaxConns)
	assert.False(t, cfg.SeedOnStart)
}

func TestPostgresDSN(t *testing.T) {
	cfg := config.AppConfig{
		DBHost: "db.internal", DBPort: "5433", DBName: "catalog",
		DBUser: "svc", DBPassword: "pw", DBSSLMode: "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 dbname=catalog user=svc password=pw sslmode=require",
		cfg.PostgresDSN())

	cfg.DatabaseURL = "postgres://svc:pw@db.internal:5433/catalog"
	assert.Equal(t, cfg.DatabaseURL, cfg.PostgresDSN())
}
