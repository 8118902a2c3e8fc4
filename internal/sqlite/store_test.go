package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedforge/channelstore/pkg/types"
)

// openTestStore opens a store on a fresh temp database with the schema
// ensured, closed automatically at test end.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "channels.db"))
	require.NoError(t, err)
	require.NoError(t, store.EnsureSchema())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channels.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.EnsureSchema())

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file should exist after open")
	assert.Equal(t, path, store.Path())
}

func TestOpenBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "channels.db")

	_, err := Open(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrStorageUnavailable)
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "channels.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.EnsureSchema())

	// Existing data must survive a second EnsureSchema and a reopen.
	_, err = store.Channels().Create(&types.Channel{Name: "news", URL: "https://x"})
	require.NoError(t, err)
	require.NoError(t, store.EnsureSchema())
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.EnsureSchema())

	channels, err := store.Channels().List()
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "news", channels[0].Name)
}

func TestCloseIdempotent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "channels.db"))
	require.NoError(t, err)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}

func TestForeignKeysEnforced(t *testing.T) {
	// The pragma must be live on the session; without it the cascade tests
	// would pass vacuously and orphans could appear.
	store := openTestStore(t)

	var enabled int64
	err := store.db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	assert.EqualValues(t, 1, enabled)
}
