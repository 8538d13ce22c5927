package idgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moap_dashboard/internal/domain/entities"
)

func TestUUIDGenerator_ProducesDistinctIDs(t *testing.T) {
	g := UUIDGenerator{}
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		id := g.NewID()
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence("mat")
	assert.Equal(t, "mat-1", s.NewID())
	assert.Equal(t, "mat-2", s.NewID())
}

func TestToday(t *testing.T) {
	c := FixedClock{At: time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)}
	assert.Equal(t, entities.Date("2024-03-09"), Today(c))
}
