// Package idgen provides the id and clock helpers shared by the use cases.
package idgen

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"moap_dashboard/internal/domain/entities"
)

// Generator produces candidate entity ids. Uniqueness within a collection is
// enforced by the store, which refuses duplicates.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// Sequence yields prefix-1, prefix-2, ... and is meant for tests.
type Sequence struct {
	prefix string
	next   atomic.Uint64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	return s.prefix + "-" + strconv.FormatUint(s.next.Add(1), 10)
}

// Clock returns the current instant. Use cases default to SystemClock.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At.UTC() }

// Today is the calendar day of the clock's current instant.
func Today(c Clock) entities.Date {
	return entities.NewDate(c.Now())
}
