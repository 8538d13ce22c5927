package analytics

import (
	"sort"

	"moap_dashboard/internal/domain/entities"
)

// VisitaFilter bounds are inclusive; empty bounds are open.
type VisitaFilter struct {
	Status string
	ObraID string
	From   entities.Date
	To     entities.Date
}

func FilterVisitas(visitas []entities.Visita, f VisitaFilter) []entities.Visita {
	out := []entities.Visita{}
	for _, v := range visitas {
		if !matchesExact(f.Status, string(v.Status)) || !matchesExact(f.ObraID, v.ObraID) {
			continue
		}
		if !f.From.IsZero() && v.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && f.To.Before(v.Date) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func CountVisitasByStatus(visitas []entities.Visita) map[entities.VisitaStatus]int {
	out := map[entities.VisitaStatus]int{}
	for _, v := range visitas {
		out[v.Status]++
	}
	return out
}

// UpcomingVisitas returns scheduled visits ordered by date then time, at most
// limit of them (limit <= 0 means all).
func UpcomingVisitas(visitas []entities.Visita, limit int) []entities.Visita {
	out := FilterVisitas(visitas, VisitaFilter{Status: string(entities.VisitaStatusAgendada)})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Time < out[j].Time
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
