package usecase

import (
	"context"
	"errors"
	"fmt"

	"moap_dashboard/internal/adapter/persistence/memory"
	"moap_dashboard/internal/adapter/persistence/snapshot"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

type ISnapshotUseCase interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) error
	Flush(ctx context.Context) error
	Reset(ctx context.Context) error
}

// SnapshotUseCase administers the persisted state as a whole. writer may be
// nil, in which case Flush saves synchronously.
type SnapshotUseCase struct {
	store  *memory.Store
	repo   *snapshot.Repository
	writer *snapshot.Writer
}

var _ ISnapshotUseCase = (*SnapshotUseCase)(nil)

func NewSnapshotUseCase(store *memory.Store, repo *snapshot.Repository, writer *snapshot.Writer) *SnapshotUseCase {
	return &SnapshotUseCase{store: store, repo: repo, writer: writer}
}

func (u *SnapshotUseCase) Export(context.Context) ([]byte, error) {
	return snapshot.Encode(u.store.Snapshot())
}

// Import restores the collections present in data and persists the result.
// Collections the document does not mention keep their current content.
func (u *SnapshotUseCase) Import(ctx context.Context, data []byte) error {
	snap, err := snapshot.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	u.store.Restore(snap)
	return u.save(ctx)
}

func (u *SnapshotUseCase) Flush(ctx context.Context) error {
	if u.writer != nil {
		return u.writer.Flush(ctx)
	}
	return u.repo.Save(ctx, u.store.Snapshot())
}

// Reset brings back the built-in data set and overwrites the persisted copy.
func (u *SnapshotUseCase) Reset(ctx context.Context) error {
	u.store.Seed()
	return u.save(ctx)
}

// save goes through the writer when there is one, so a debounced write that
// started earlier cannot land after this one.
func (u *SnapshotUseCase) save(ctx context.Context) error {
	if u.writer != nil {
		u.writer.MarkDirty()
		return u.writer.Flush(ctx)
	}
	return u.repo.Save(ctx, u.store.Snapshot())
}
