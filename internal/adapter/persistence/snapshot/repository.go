package snapshot

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"moap_dashboard/internal/adapter/persistence/memory"
	"moap_dashboard/internal/usecase/interfaces"
)

const DefaultKey = "moap_data"

// Repository loads and saves the snapshot document under one key.
type Repository struct {
	kv  interfaces.IKeyValueStore
	key string
	log *logrus.Entry
}

func NewRepository(kv interfaces.IKeyValueStore, key string, log *logrus.Entry) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{kv: kv, key: key, log: log}
}

func (r *Repository) Key() string { return r.key }

// Load returns found=false when nothing was saved yet or the stored document
// cannot be read. Failures are logged and swallowed: the caller keeps the
// seed data.
func (r *Repository) Load(ctx context.Context) (memory.Snapshot, bool) {
	data, found, err := r.kv.Get(ctx, r.key)
	if err != nil {
		r.log.WithError(err).WithField("key", r.key).Warn("snapshot read failed, keeping defaults")
		return memory.Snapshot{}, false
	}
	if !found {
		r.log.WithField("key", r.key).Info("no snapshot stored")
		return memory.Snapshot{}, false
	}
	snap, err := Decode(data)
	if err != nil {
		r.log.WithError(err).WithFields(logrus.Fields{"key": r.key, "bytes": len(data)}).Warn("snapshot unreadable, keeping defaults")
		return memory.Snapshot{}, false
	}
	return snap, true
}

// Save overwrites the stored document.
func (r *Repository) Save(ctx context.Context, snap memory.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.kv.Put(ctx, r.key, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Reset removes the stored document.
func (r *Repository) Reset(ctx context.Context) error {
	if err := r.kv.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("reset snapshot: %w", err)
	}
	return nil
}
