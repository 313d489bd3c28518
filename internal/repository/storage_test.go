package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storageBackends(t *testing.T) map[string]StorageInterface {
	t.Helper()

	fileStorage, err := NewFileStorage(filepath.Join(t.TempDir(), "files"))
	require.NoError(t, err)

	sqliteStorage, err := NewSQLiteStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStorage.Close() })

	return map[string]StorageInterface{
		"memory": NewMemoryStorage(),
		"file":   fileStorage,
		"sqlite": sqliteStorage,
	}
}

func TestStorage_GetSet(t *testing.T) {
	for name, storage := range storageBackends(t) {
		t.Run(name, func(t *testing.T) {
			value, found, err := storage.Get(KeyEmployees)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Nil(t, value)

			require.NoError(t, storage.Set(KeyEmployees, []byte(`[{"id":"emp-1"}]`)))
			value, found, err = storage.Get(KeyEmployees)
			require.NoError(t, err)
			assert.True(t, found)
			assert.JSONEq(t, `[{"id":"emp-1"}]`, string(value))

			require.NoError(t, storage.Set(KeyEmployees, []byte(`[]`)))
			value, _, err = storage.Get(KeyEmployees)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(value))

			_, found, err = storage.Get(KeyTeams)
			require.NoError(t, err)
			assert.False(t, found)

			assert.NoError(t, storage.Ping())
		})
	}
}

func TestMemoryStorage_ReturnsCopies(t *testing.T) {
	storage := NewMemoryStorage()
	input := []byte("abc")
	require.NoError(t, storage.Set("k", input))
	input[0] = 'x'

	value, _, err := storage.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(value))

	value[1] = 'y'
	again, _, _ := storage.Get("k")
	assert.Equal(t, "abc", string(again))
}

func TestFileStorage(t *testing.T) {
	t.Run("writes key.json and leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		storage, err := NewFileStorage(dir)
		require.NoError(t, err)

		require.NoError(t, storage.Set(KeyTopics, []byte(`[]`)))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "topics.json", entries[0].Name())
	})

	t.Run("rejects keys that escape the directory", func(t *testing.T) {
		storage, err := NewFileStorage(t.TempDir())
		require.NoError(t, err)

		assert.Error(t, storage.Set("../outside", []byte("x")))
		_, _, err = storage.Get("a/b")
		assert.Error(t, err)
	})

	t.Run("ping fails when directory is removed", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "data")
		storage, err := NewFileStorage(dir)
		require.NoError(t, err)
		require.NoError(t, os.RemoveAll(dir))

		assert.Error(t, storage.Ping())
	})
}

func TestSQLiteStorage_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	storage, err := NewSQLiteStorage(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "orgbook.db"), storage.Path())
	require.NoError(t, storage.Set(KeyTeams, []byte(`[{"id":"team-1"}]`)))
	require.NoError(t, storage.Close())

	reopened, err := NewSQLiteStorage(dir)
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get(KeyTeams)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"team-1"}]`, string(value))
}
