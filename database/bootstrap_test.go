package database_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hempdb/config"
	"hempdb/database"
	"hempdb/entities"
)

func sqliteConfig(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{
		DBDriver:      "sqlite",
		DBPath:        filepath.Join(t.TempDir(), "test.db"),
		DBMaxConns:    2,
		DBConnTimeout: 5 * time.Second,
	}
}

func TestOpenMigratesSchema(t *testing.T) {
	db, err := database.Open(sqliteConfig(t))
	require.NoError(t, err)

	for _, model := range []any{
		&entities.User{},
		&entities.PlantType{},
		&entities.PlantPart{},
		&entities.Industry{},
		&entities.SubIndustry{},
		&entities.HempProduct{},
		&entities.ResearchPaper{},
	} {
		assert.True(t, db.Migrator().HasTable(model), "%T table missing", model)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DBDriver = "oracle"
	_, err := database.Open(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown db driver")
}

func TestOpenBoundsThePool(t *testing.T) {
	db, err := database.Open(sqliteConfig(t))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 2, sqlDB.Stats().MaxOpenConnections)
}
