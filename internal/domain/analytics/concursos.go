package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/entities"
)

// ConcursoFilter narrows the tender list. Nil budget bounds are open.
type ConcursoFilter struct {
	Search    string // title or contracting entity
	Region    string
	Category  string
	Type      string
	Status    string
	BudgetMin *decimal.Decimal
	BudgetMax *decimal.Decimal
}

func FilterConcursos(concursos []entities.Concurso, f ConcursoFilter) []entities.Concurso {
	out := []entities.Concurso{}
	for _, c := range concursos {
		if !anyContainsFold(f.Search, c.Title, c.Entity) {
			continue
		}
		if !matchesExact(f.Region, c.Region) || !matchesExact(f.Category, c.Category) ||
			!matchesExact(f.Type, c.Type) || !matchesExact(f.Status, string(c.Status)) {
			continue
		}
		if f.BudgetMin != nil && c.Budget.LessThan(*f.BudgetMin) {
			continue
		}
		if f.BudgetMax != nil && c.Budget.GreaterThan(*f.BudgetMax) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// DaysUntil counts whole days, rounded up, from now to the start of the
// deadline day (UTC). Past deadlines give zero or negative values. ok is false
// for an unparsable deadline.
func DaysUntil(deadline entities.Date, now time.Time) (days int, ok bool) {
	d, err := deadline.Time()
	if err != nil {
		return 0, false
	}
	diff := d.Sub(now).Hours() / 24
	return int(math.Ceil(diff)), true
}
