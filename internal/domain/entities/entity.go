package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Persisted snapshots keep prices as JSON numbers, as the dashboard wrote them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Entity is implemented by every record held in a store collection.
type Entity[T any] interface {
	EntityID() string
	Clone() T
}

// DateLayout is the wire layout of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar day serialized as YYYY-MM-DD.
//
// Dates are kept as text so snapshots written by older dashboard builds load
// unchanged even when a value is not a valid day.
type Date string

func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// Before compares two dates chronologically. Unparsable dates sort first.
func (d Date) Before(other Date) bool {
	a, errA := d.Time()
	b, errB := other.Time()
	switch {
	case errA != nil && errB != nil:
		return false
	case errA != nil:
		return true
	case errB != nil:
		return false
	}
	return a.Before(b)
}

func (d Date) IsZero() bool {
	return d == ""
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
