package repositoryImp_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hempdb/config"
	"hempdb/database"
	"hempdb/pkg/catalog/repository"
	"hempdb/pkg/catalog/repositoryImp"
	"hempdb/pkg/catalog/storagetest"
)

func openStore(t *testing.T) *repositoryImp.Store {
	t.Helper()
	cfg := config.AppConfig{
		DBDriver:      "sqlite",
		DBPath:        filepath.Join(t.TempDir(), "catalog.db"),
		DBMaxConns:    2,
		DBConnTimeout: 5 * time.Second,
	}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	return repositoryImp.New(db)
}

func TestStorageContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) repository.Storage {
		return openStore(t)
	})
}

func TestAdvisoryLockNoopOnSQLite(t *testing.T) {
	st := openStore(t)
	ran := false
	err := st.WithAdvisoryLock(42, func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, ran)

	wantErr := errors.New("seed failed")
	err = st.WithAdvisoryLock(42, func() error { return wantErr })
	require.ErrorIs(t, err, wantErr)
}
