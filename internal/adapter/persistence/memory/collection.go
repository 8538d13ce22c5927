package memory

import (
	"context"
	"strings"

	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/usecase/interfaces"
)

// Collection is an ordered entity collection backed by one slice of the store
// state. It implements interfaces.IRepository.
type Collection[T entities.Entity[T]] struct {
	store *Store
	name  string
	items *[]T
}

func newCollection[T entities.Entity[T]](s *Store, name string, items *[]T) *Collection[T] {
	return &Collection[T]{store: s, name: name, items: items}
}

func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) List(_ context.Context) ([]T, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return cloneAll(*c.items), nil
}

func (c *Collection[T]) Len() int {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return len(*c.items)
}

func (c *Collection[T]) GetByID(_ context.Context, id string) (T, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return (*c.items)[i].Clone(), nil
	}
	var zero T
	return zero, nil
}

func (c *Collection[T]) Create(_ context.Context, e T) (T, error) {
	var zero T
	id := e.EntityID()
	if strings.TrimSpace(id) == "" {
		return zero, interfaces.ErrEmptyID
	}

	c.store.mu.Lock()
	if c.indexOf(id) >= 0 {
		c.store.mu.Unlock()
		return zero, interfaces.ErrDuplicateID
	}
	*c.items = append(*c.items, e.Clone())
	c.store.mu.Unlock()

	c.store.emit(Change{Collection: c.name, Op: OpCreate, ID: id, Count: 1})
	return e.Clone(), nil
}

func (c *Collection[T]) Mutate(_ context.Context, id string, fn func(*T)) (T, error) {
	var zero T
	c.store.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.store.mu.Unlock()
		return zero, nil
	}
	updated := (*c.items)[i].Clone()
	fn(&updated)
	(*c.items)[i] = updated
	out := updated.Clone()
	c.store.mu.Unlock()

	c.store.emit(Change{Collection: c.name, Op: OpUpdate, ID: id, Count: 1})
	return out, nil
}

// MutateAll keeps only the entities fn reports as changed and emits one
// change event when there is at least one.
func (c *Collection[T]) MutateAll(_ context.Context, fn func(*T) bool) (int, error) {
	c.store.mu.Lock()
	items := *c.items
	n := 0
	for i := range items {
		updated := items[i].Clone()
		if fn(&updated) {
			items[i] = updated
			n++
		}
	}
	c.store.mu.Unlock()

	if n > 0 {
		c.store.emit(Change{Collection: c.name, Op: OpUpdate, Count: n})
	}
	return n, nil
}

func (c *Collection[T]) Delete(_ context.Context, id string) (bool, error) {
	c.store.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.store.mu.Unlock()
		return false, nil
	}
	items := *c.items
	kept := make([]T, 0, len(items)-1)
	kept = append(kept, items[:i]...)
	kept = append(kept, items[i+1:]...)
	*c.items = kept
	c.store.mu.Unlock()

	c.store.emit(Change{Collection: c.name, Op: OpDelete, ID: id, Count: 1})
	return true, nil
}

func (c *Collection[T]) DeleteAll(_ context.Context) (int, error) {
	c.store.mu.Lock()
	n := len(*c.items)
	*c.items = []T{}
	c.store.mu.Unlock()

	if n > 0 {
		c.store.emit(Change{Collection: c.name, Op: OpDelete, Count: n})
	}
	return n, nil
}

// indexOf must be called with the store lock held.
func (c *Collection[T]) indexOf(id string) int {
	for i, it := range *c.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}

func cloneAll[T entities.Entity[T]](in []T) []T {
	out := make([]T, len(in))
	for i, it := range in {
		out[i] = it.Clone()
	}
	return out
}
