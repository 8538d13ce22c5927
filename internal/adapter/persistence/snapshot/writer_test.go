package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moap_dashboard/internal/adapter/persistence/memory"
	"moap_dashboard/internal/adapter/persistence/repository"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/infrastructure/logger"
)

type countingKV struct {
	*repository.MemoryKV
	mu   sync.Mutex
	puts int
	fail error
}

func newCountingKV() *countingKV {
	return &countingKV{MemoryKV: repository.NewMemoryKV()}
}

func (c *countingKV) Put(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	c.puts++
	fail := c.fail
	c.mu.Unlock()
	if fail != nil {
		return fail
	}
	return c.MemoryKV.Put(ctx, key, value)
}

func (c *countingKV) Puts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.puts
}

type recordingObserver struct {
	mu      sync.Mutex
	results []error
}

func (r *recordingObserver) ObserveSnapshotWrite(err error, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, err)
}

func addMaterials(t *testing.T, s *memory.Store, prefix string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := s.Materials().Create(context.Background(), entities.Material{ID: fmt.Sprintf("%s-%d", prefix, i), Name: "x"})
		require.NoError(t, err)
	}
}

func TestWriterWriteThrough(t *testing.T) {
	kv := newCountingKV()
	store := memory.NewSeeded()
	w := NewWriter(NewRepository(kv, DefaultKey, logger.Discard()), store, 0, logger.Discard())
	w.Attach(store)

	addMaterials(t, store, "wt", 3)

	assert.Equal(t, 3, kv.Puts())
	assert.False(t, w.Pending())
}

func TestWriterDebounceCoalescesBurst(t *testing.T) {
	kv := newCountingKV()
	store := memory.NewSeeded()
	obs := &recordingObserver{}
	w := NewWriter(NewRepository(kv, DefaultKey, logger.Discard()), store, 50*time.Millisecond, logger.Discard()).WithObserver(obs)
	w.Attach(store)

	addMaterials(t, store, "burst", 5)
	assert.Zero(t, kv.Puts())
	assert.True(t, w.Pending())

	assert.Eventually(t, func() bool { return kv.Puts() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.False(t, w.Pending())

	repo := NewRepository(kv, DefaultKey, logger.Discard())
	snap, found := repo.Load(context.Background())
	require.True(t, found)
	assert.Len(t, snap.Materials, 15)

	obs.mu.Lock()
	assert.Equal(t, []error{nil}, obs.results)
	obs.mu.Unlock()
}

func TestWriterFlush(t *testing.T) {
	ctx := context.Background()
	kv := newCountingKV()
	store := memory.NewSeeded()
	w := NewWriter(NewRepository(kv, DefaultKey, logger.Discard()), store, time.Hour, logger.Discard())
	w.Attach(store)

	t.Run("nothing pending", func(t *testing.T) {
		require.NoError(t, w.Flush(ctx))
		assert.Zero(t, kv.Puts())
	})

	t.Run("pending changes written at once", func(t *testing.T) {
		addMaterials(t, store, "flush", 2)
		require.NoError(t, w.Flush(ctx))
		assert.Equal(t, 1, kv.Puts())
		assert.False(t, w.Pending())
	})

	t.Run("failure keeps changes pending", func(t *testing.T) {
		kv.mu.Lock()
		kv.fail = errors.New("disk full")
		kv.mu.Unlock()

		_, err := store.Obras().Delete(ctx, "1")
		require.NoError(t, err)
		assert.Error(t, w.Flush(ctx))
		assert.True(t, w.Pending())

		kv.mu.Lock()
		kv.fail = nil
		kv.mu.Unlock()
		require.NoError(t, w.Close(ctx))
		assert.False(t, w.Pending())
	})

	t.Run("closed writer ignores changes", func(t *testing.T) {
		before := kv.Puts()
		addMaterials(t, store, "closed", 1)
		assert.False(t, w.Pending())
		assert.Equal(t, before, kv.Puts())
	})
}
