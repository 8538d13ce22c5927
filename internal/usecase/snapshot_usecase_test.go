package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"moap_dashboard/internal/adapter/persistence/memory"
	"moap_dashboard/internal/adapter/persistence/repository"
	"moap_dashboard/internal/adapter/persistence/snapshot"
	"moap_dashboard/internal/infrastructure/logger"
)

func TestSnapshotUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("export import round trip", func(t *testing.T) {
		src := memory.NewSeeded()
		if _, err := src.Materials().Delete(ctx, "1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		kv := repository.NewMemoryKV()
		srcUC := NewSnapshotUseCase(src, snapshot.NewRepository(kv, "", logger.Discard()), nil)
		data, err := srcUC.Export(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		dst := memory.NewSeeded()
		dstKV := repository.NewMemoryKV()
		dstUC := NewSnapshotUseCase(dst, snapshot.NewRepository(dstKV, "", logger.Discard()), nil)
		if err := dstUC.Import(ctx, data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dst.Materials().Len() != 9 {
			t.Fatalf("expected 9 materials, got %d", dst.Materials().Len())
		}
		if _, found, _ := dstKV.Get(ctx, snapshot.DefaultKey); !found {
			t.Fatalf("expected import persisted")
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		uc := NewSnapshotUseCase(memory.NewSeeded(), snapshot.NewRepository(repository.NewMemoryKV(), "", logger.Discard()), nil)
		if err := uc.Import(ctx, []byte("[1,2]")); !errors.Is(err, ErrInvalidSnapshot) {
			t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
		}
	})

	t.Run("flush through writer", func(t *testing.T) {
		store := memory.NewSeeded()
		kv := repository.NewMemoryKV()
		repo := snapshot.NewRepository(kv, "", logger.Discard())
		writer := snapshot.NewWriter(repo, store, 0, logger.Discard())
		uc := NewSnapshotUseCase(store, repo, writer)

		if err := uc.Flush(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, found, _ := kv.Get(ctx, snapshot.DefaultKey); found {
			t.Fatalf("expected clean writer to skip the write")
		}
	})

	t.Run("reset reseeds and saves", func(t *testing.T) {
		store := memory.NewSeeded()
		if _, err := store.Materials().DeleteAll(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		kv := repository.NewMemoryKV()
		repo := snapshot.NewRepository(kv, "", logger.Discard())
		uc := NewSnapshotUseCase(store, repo, nil)

		if err := uc.Reset(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Materials().Len() != 10 {
			t.Fatalf("expected seed restored")
		}
		snap, found := repo.Load(ctx)
		if !found || len(snap.Materials) != 10 {
			t.Fatalf("expected seed persisted")
		}
		if snap.Materials[0].Name != "Cimento Portland" {
			t.Fatalf("unexpected first material: %+v", snap.Materials[0])
		}
	})
}

// gatedKV holds the first Put until release is closed.
type gatedKV struct {
	*repository.MemoryKV
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedKV() *gatedKV {
	return &gatedKV{MemoryKV: repository.NewMemoryKV(), entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedKV) Put(ctx context.Context, key string, value []byte) error {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	return g.MemoryKV.Put(ctx, key, value)
}

func TestSnapshotUseCase_ImportWinsOverEarlierWrite(t *testing.T) {
	ctx := context.Background()

	empty := memory.NewSeeded()
	if _, err := empty.Materials().DeleteAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := NewSnapshotUseCase(empty, snapshot.NewRepository(repository.NewMemoryKV(), "", logger.Discard()), nil).Export(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store := memory.NewSeeded()
	kv := newGatedKV()
	repo := snapshot.NewRepository(kv, "", logger.Discard())
	writer := snapshot.NewWriter(repo, store, 0, logger.Discard())
	writer.Attach(store)
	uc := NewSnapshotUseCase(store, repo, writer)

	// a write-through save of the pre-import state gets stuck in the backend
	go func() { _, _ = store.Materials().Delete(ctx, "1") }()
	<-kv.entered

	done := make(chan error, 1)
	go func() { done <- uc.Import(ctx, data) }()
	time.Sleep(20 * time.Millisecond)
	close(kv.release)

	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := writer.Close(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, found := repo.Load(ctx)
	if !found {
		t.Fatalf("expected a stored snapshot")
	}
	if len(snap.Materials) != 0 {
		t.Fatalf("expected the imported empty catalogue, got %d materials", len(snap.Materials))
	}
	if writer.Pending() {
		t.Fatalf("expected nothing pending after the import")
	}
}

func TestSnapshotUseCase_ResetThroughWriter(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeeded()
	kv := repository.NewMemoryKV()
	repo := snapshot.NewRepository(kv, "", logger.Discard())
	writer := snapshot.NewWriter(repo, store, time.Hour, logger.Discard())
	writer.Attach(store)
	uc := NewSnapshotUseCase(store, repo, writer)

	if _, err := store.Materials().DeleteAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !writer.Pending() {
		t.Fatalf("expected the deletion to be pending")
	}
	if err := uc.Reset(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.Pending() {
		t.Fatalf("expected reset to flush the writer")
	}
	snap, found := repo.Load(ctx)
	if !found || len(snap.Materials) != 10 {
		t.Fatalf("expected the seed persisted, got %d materials", len(snap.Materials))
	}
}
