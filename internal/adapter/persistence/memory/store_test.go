package memory

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/usecase/interfaces"
)

func jsonOf(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func ids[T entities.Entity[T]](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.EntityID()
	}
	return out
}

func TestSeed(t *testing.T) {
	s := NewSeeded()
	assert.Equal(t, 10, s.Materials().Len())
	assert.Equal(t, 4, s.Obras().Len())
	assert.Equal(t, 2, s.Budgets().Len())
	assert.Equal(t, 2, s.Visitas().Len())
	assert.Equal(t, 3, s.Concursos().Len())
	assert.Equal(t, 5, s.Users().Len())
	assert.Equal(t, 3, s.Conversations().Len())
	assert.Equal(t, 5, s.Messages().Len())
	assert.Equal(t, 3, s.Notifications().Len())
	assert.Equal(t, 2, s.Invitations().Len())

	b, err := s.Budgets().GetByID(context.Background(), "1")
	require.NoError(t, err)
	// 5000*0.15 + 120*45 + 2500*4.20
	assert.True(t, b.Total().Equal(decimal.RequireFromString("16650")), b.Total().String())
}

func TestCollectionCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("appends at the end", func(t *testing.T) {
		s := NewSeeded()
		m := entities.Material{ID: "m-new", Name: "Cimento", Unit: "kg", Price: decimal.RequireFromString("0.15"), Category: "Estrutura", Type: entities.MaterialTypeMaterial}
		_, err := s.Materials().Create(ctx, m)
		require.NoError(t, err)

		list, _ := s.Materials().List(ctx)
		require.Len(t, list, 11)
		assert.Equal(t, "m-new", list[10].ID)
		assert.True(t, list[10].Price.Equal(decimal.RequireFromString("0.15")))
	})

	t.Run("refuses duplicate id", func(t *testing.T) {
		s := NewSeeded()
		_, err := s.Materials().Create(ctx, entities.Material{ID: "1", Name: "dup"})
		assert.ErrorIs(t, err, interfaces.ErrDuplicateID)
		assert.Equal(t, 10, s.Materials().Len())
	})

	t.Run("refuses empty id", func(t *testing.T) {
		s := New()
		_, err := s.Materials().Create(ctx, entities.Material{ID: " "})
		assert.ErrorIs(t, err, interfaces.ErrEmptyID)
		assert.Zero(t, s.Materials().Len())
	})
}

func TestCollectionMutate(t *testing.T) {
	ctx := context.Background()

	t.Run("absent id leaves collection unchanged", func(t *testing.T) {
		s := NewSeeded()
		before, _ := s.Obras().List(ctx)

		got, err := s.Obras().Mutate(ctx, "nope", func(o *entities.Obra) { o.Name = "changed" })
		require.NoError(t, err)
		assert.Empty(t, got.ID)

		after, _ := s.Obras().List(ctx)
		assert.JSONEq(t, jsonOf(t, before), jsonOf(t, after))
	})

	t.Run("merges into the stored entity", func(t *testing.T) {
		s := NewSeeded()
		name := "Renamed"
		got, err := s.Obras().Mutate(ctx, "2", func(o *entities.Obra) { entities.ObraPatch{Name: &name}.Apply(o) })
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, "Algarve", got.Region)

		stored, _ := s.Obras().GetByID(ctx, "2")
		assert.Equal(t, "Renamed", stored.Name)
	})

	t.Run("returned values do not alias the store", func(t *testing.T) {
		s := NewSeeded()
		o, _ := s.Obras().GetByID(ctx, "1")
		o.AssignedUsers[0] = "999"
		again, _ := s.Obras().GetByID(ctx, "1")
		assert.Equal(t, []string{"2", "3"}, again.AssignedUsers)
	})

	t.Run("mutate all", func(t *testing.T) {
		s := NewSeeded()
		n, err := s.Notifications().MutateAll(ctx, func(n *entities.Notification) bool {
			n.Read = true
			return true
		})
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		list, _ := s.Notifications().List(ctx)
		for _, it := range list {
			assert.True(t, it.Read)
		}
	})

	t.Run("mutate all keeps unchanged entities", func(t *testing.T) {
		s := NewSeeded()
		n, err := s.Notifications().MutateAll(ctx, func(n *entities.Notification) bool {
			n.Title = "ignored"
			return false
		})
		require.NoError(t, err)
		assert.Zero(t, n)
		list, _ := s.Notifications().List(ctx)
		for _, it := range list {
			assert.NotEqual(t, "ignored", it.Title)
		}
	})
}

func TestCollectionDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes exactly one and keeps order", func(t *testing.T) {
		s := NewSeeded()
		removed, err := s.Materials().Delete(ctx, "4")
		require.NoError(t, err)
		assert.True(t, removed)

		list, _ := s.Materials().List(ctx)
		assert.Equal(t, []string{"1", "2", "3", "5", "6", "7", "8", "9", "10"}, ids(list))
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s := NewSeeded()
		before, _ := s.Visitas().List(ctx)
		removed, err := s.Visitas().Delete(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.False(t, removed)
		after, _ := s.Visitas().List(ctx)
		assert.JSONEq(t, jsonOf(t, before), jsonOf(t, after))
	})

	t.Run("delete all", func(t *testing.T) {
		s := NewSeeded()
		n, err := s.Notifications().DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		list, _ := s.Notifications().List(ctx)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestChangeEvents(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	var mu sync.Mutex
	var changes []Change
	s.Subscribe(func(c Change) {
		mu.Lock()
		defer mu.Unlock()
		changes = append(changes, c)
	})

	_, _ = s.Visitas().Create(ctx, entities.Visita{ID: "v9", ObraID: "1"})
	_, _ = s.Visitas().Mutate(ctx, "v9", func(v *entities.Visita) { v.Notes = "x" })
	_, _ = s.Visitas().Mutate(ctx, "missing", func(v *entities.Visita) { v.Notes = "x" })
	_, _ = s.Visitas().Delete(ctx, "v9")
	_, _ = s.Visitas().Delete(ctx, "v9")
	_, _ = s.Notifications().MutateAll(ctx, func(n *entities.Notification) bool {
		n.Read = true
		return true
	})
	_, _ = s.Notifications().MutateAll(ctx, func(*entities.Notification) bool { return false })
	s.Restore(Snapshot{Materials: []entities.Material{}})

	assert.Equal(t, []Change{
		{Collection: CollectionVisitas, Op: OpCreate, ID: "v9", Count: 1},
		{Collection: CollectionVisitas, Op: OpUpdate, ID: "v9", Count: 1},
		{Collection: CollectionVisitas, Op: OpDelete, ID: "v9", Count: 1},
		{Collection: CollectionNotifications, Op: OpUpdate, Count: 3},
	}, changes)
}

func TestSubscriberMayReadStore(t *testing.T) {
	s := NewSeeded()
	var snap Snapshot
	s.Subscribe(func(Change) { snap = s.Snapshot() })

	_, err := s.Materials().Create(context.Background(), entities.Material{ID: "x", Name: "Areia"})
	require.NoError(t, err)
	assert.Len(t, snap.Materials, 11)
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot is a deep copy", func(t *testing.T) {
		s := NewSeeded()
		snap := s.Snapshot()
		snap.Budgets[0].Items[0].Quantity = decimal.NewFromInt(1)
		b, _ := s.Budgets().GetByID(ctx, "1")
		assert.True(t, b.Items[0].Quantity.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("restore replaces only present collections", func(t *testing.T) {
		s := NewSeeded()
		s.Restore(Snapshot{
			Materials: []entities.Material{{ID: "only", Name: "Única"}},
			Budgets:   []entities.Budget{},
		})
		assert.Equal(t, 1, s.Materials().Len())
		assert.Equal(t, 0, s.Budgets().Len())
		assert.Equal(t, 4, s.Obras().Len())
		assert.Equal(t, 5, s.Users().Len())
	})

	t.Run("restore of own snapshot is identity", func(t *testing.T) {
		s := NewSeeded()
		before := s.Snapshot()
		other := New()
		other.Restore(before)
		assert.JSONEq(t, jsonOf(t, before), jsonOf(t, other.Snapshot()))
	})

	t.Run("seed resets mutations", func(t *testing.T) {
		s := NewSeeded()
		_, _ = s.Materials().Delete(ctx, "1")
		s.Seed()
		assert.Equal(t, 10, s.Materials().Len())
	})
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Notifications().Create(ctx, entities.Notification{ID: string(rune('A' + i))})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Notifications().Len())
}
