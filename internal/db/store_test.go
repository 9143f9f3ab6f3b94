package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/tecsolutions-backend/internal/config"
	"github.com/ignatzorin/tecsolutions-backend/internal/storage"
)

func TestOpenStore_Memory(t *testing.T) {
	store, closer, err := OpenStore(context.Background(), &config.Config{StoreDriver: config.StoreMemory})
	require.NoError(t, err)
	defer closer.Close()

	assert.IsType(t, &storage.MemoryStore{}, store)
}

func TestOpenStore_SQLiteFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		StoreDriver: config.StoreSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "nested", "data.db"),
	}

	store, closer, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.ClientsKey, `[{"id":"1"}]`))
	require.NoError(t, closer.Close())

	store, closer, err = OpenStore(ctx, cfg)
	require.NoError(t, err)
	defer closer.Close()

	value, ok, err := store.Get(ctx, storage.ClientsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, _, err := OpenStore(context.Background(), &config.Config{StoreDriver: "mongo"})
	assert.Error(t, err)
}

func TestMigrationFilesSortedAndFiltered(t *testing.T) {
	names, err := migrationFiles(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_kv_store.sql", names[0])
}
