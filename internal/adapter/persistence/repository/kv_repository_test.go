package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moap_dashboard/internal/config"
	"moap_dashboard/internal/infrastructure/database"
	"moap_dashboard/internal/usecase/interfaces"
)

func exerciseKeyValueStore(t *testing.T, kv interfaces.IKeyValueStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		v, found, err := kv.Get(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, v)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, kv.Put(ctx, "moap_data", []byte(`{"materials":[]}`)))
		v, found, err := kv.Get(ctx, "moap_data")
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"materials":[]}`, string(v))
	})

	t.Run("put overwrites", func(t *testing.T) {
		require.NoError(t, kv.Put(ctx, "moap_data", []byte(`{"v":1}`)))
		require.NoError(t, kv.Put(ctx, "moap_data", []byte(`{"v":2}`)))
		v, _, err := kv.Get(ctx, "moap_data")
		require.NoError(t, err)
		assert.JSONEq(t, `{"v":2}`, string(v))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, kv.Put(ctx, "moap_user", []byte(`{"id":"1"}`)))
		require.NoError(t, kv.Delete(ctx, "moap_user"))
		_, found, err := kv.Get(ctx, "moap_user")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete absent is a no-op", func(t *testing.T) {
		assert.NoError(t, kv.Delete(ctx, "never-written"))
	})

	t.Run("invalid keys", func(t *testing.T) {
		for _, key := range []string{"", "  ", "../etc", `a\b`, ".."} {
			_, _, err := kv.Get(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
			assert.ErrorIs(t, kv.Put(ctx, key, []byte("x")), ErrInvalidKey, "key %q", key)
		}
	})
}

func TestMemoryKV(t *testing.T) {
	exerciseKeyValueStore(t, NewMemoryKV())
}

func TestMemoryKVReturnsCopies(t *testing.T) {
	kv := NewMemoryKV()
	in := []byte("abc")
	require.NoError(t, kv.Put(context.Background(), "k", in))
	in[0] = 'x'
	out, _, _ := kv.Get(context.Background(), "k")
	assert.Equal(t, "abc", string(out))
}

func TestFileKV(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	exerciseKeyValueStore(t, kv)

	t.Run("one file per key, no temp leftovers", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Join(dir, "nested"))
		require.NoError(t, err)
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.ElementsMatch(t, []string{"moap_data.json"}, names)
	})
}

func TestSQLiteKV(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	kv, err := NewSQLKV(ctx, db, SQLiteDialect)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	exerciseKeyValueStore(t, kv)

	t.Run("table creation is idempotent", func(t *testing.T) {
		_, err := NewSQLKV(ctx, db, SQLiteDialect)
		assert.NoError(t, err)
	})
}

func TestOpenKeyValueStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		kv, closeFn, err := OpenKeyValueStore(ctx, config.Config{PersistenceDriver: config.DriverMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryKV{}, kv)
		assert.NoError(t, closeFn())
	})

	t.Run("file", func(t *testing.T) {
		kv, _, err := OpenKeyValueStore(ctx, config.Config{PersistenceDriver: config.DriverFile, DataDir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &FileKV{}, kv)
	})

	t.Run("sqlite", func(t *testing.T) {
		kv, closeFn, err := OpenKeyValueStore(ctx, config.Config{
			PersistenceDriver: config.DriverSQLite,
			SQLitePath:        filepath.Join(t.TempDir(), "moap.db"),
		})
		require.NoError(t, err)
		assert.IsType(t, &SQLKV{}, kv)
		assert.NoError(t, closeFn())
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := OpenKeyValueStore(ctx, config.Config{PersistenceDriver: "floppy"})
		assert.Error(t, err)
	})
}
