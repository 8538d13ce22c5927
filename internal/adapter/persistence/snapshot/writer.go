package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"moap_dashboard/internal/adapter/persistence/memory"
)

// Source is what the writer snapshots; *memory.Store satisfies it.
type Source interface {
	Snapshot() memory.Snapshot
}

// WriteObserver is told about every write attempt.
type WriteObserver interface {
	ObserveSnapshotWrite(err error, d time.Duration)
}

// Writer saves the store after it changes. Changes arriving within the
// debounce window are coalesced into one write; a zero debounce writes on
// every change.
type Writer struct {
	repo     *Repository
	source   Source
	debounce time.Duration
	observer WriteObserver
	log      *logrus.Entry

	writeMu sync.Mutex // serializes saves

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	closed bool
}

func NewWriter(repo *Repository, source Source, debounce time.Duration, log *logrus.Entry) *Writer {
	return &Writer{repo: repo, source: source, debounce: debounce, log: log}
}

// WithObserver sets the write observer. Call before the writer is attached.
func (w *Writer) WithObserver(o WriteObserver) *Writer {
	w.observer = o
	return w
}

// Attach subscribes the writer to store changes.
func (w *Writer) Attach(s *memory.Store) {
	s.Subscribe(w.Notify)
}

// Notify marks the state dirty and schedules a write.
func (w *Writer) Notify(memory.Change) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.dirty = true
	if w.debounce <= 0 {
		w.mu.Unlock()
		if err := w.Flush(context.Background()); err != nil {
			w.log.WithError(err).Error("snapshot write failed")
		}
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.fire)
	}
	w.mu.Unlock()
}

func (w *Writer) fire() {
	w.mu.Lock()
	w.timer = nil
	w.mu.Unlock()
	if err := w.Flush(context.Background()); err != nil {
		w.log.WithError(err).Error("snapshot write failed")
	}
}

// MarkDirty records a change the store did not announce, such as a Restore,
// so the next Flush writes it.
func (w *Writer) MarkDirty() {
	w.mu.Lock()
	w.dirty = true
	w.mu.Unlock()
}

// Pending reports whether changes are waiting to be written.
func (w *Writer) Pending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dirty
}

// Flush writes pending changes now. It is a no-op when nothing changed since
// the last write. On failure the changes stay pending.
func (w *Writer) Flush(ctx context.Context) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	pending := w.dirty
	w.dirty = false
	w.mu.Unlock()

	if !pending {
		return nil
	}

	start := time.Now()
	err := w.repo.Save(ctx, w.source.Snapshot())
	if w.observer != nil {
		w.observer.ObserveSnapshotWrite(err, time.Since(start))
	}
	if err != nil {
		w.mu.Lock()
		w.dirty = true
		w.mu.Unlock()
		return err
	}
	w.log.WithField("took", time.Since(start).String()).Debug("snapshot written")
	return nil
}

// Close flushes pending changes and stops scheduling new writes.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	return w.Flush(ctx)
}
