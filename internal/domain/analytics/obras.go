package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/entities"
)

type ObraSort string

const (
	SortByDate   ObraSort = "date"
	SortByBudget ObraSort = "budget"
	SortByName   ObraSort = "name"
)

type ObraFilter struct {
	Search string // name or address
	Status string
	Region string
}

func FilterObras(obras []entities.Obra, f ObraFilter) []entities.Obra {
	out := []entities.Obra{}
	for _, o := range obras {
		if !anyContainsFold(f.Search, o.Name, o.Address) {
			continue
		}
		if !matchesExact(f.Status, string(o.Status)) || !matchesExact(f.Region, o.Region) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// SortObras returns a sorted copy: newest creation date first, largest
// estimated budget first, or name ascending. Ties keep the input order; an
// unknown key keeps it too.
func SortObras(obras []entities.Obra, by ObraSort) []entities.Obra {
	out := make([]entities.Obra, len(obras))
	copy(out, obras)

	switch by {
	case SortByDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].CreatedDate.Before(out[i].CreatedDate)
		})
	case SortByBudget:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EstimatedBudget.GreaterThan(out[j].EstimatedBudget)
		})
	case SortByName:
		c := newCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	}
	return out
}

func CountObrasByStatus(obras []entities.Obra) map[entities.ObraStatus]int {
	out := map[entities.ObraStatus]int{}
	for _, o := range obras {
		out[o.Status]++
	}
	return out
}

func ApprovedObras(obras []entities.Obra) int {
	return CountObrasByStatus(obras)[entities.ObraStatusAprovado]
}

// PendingObras counts obras still waiting for a decision.
func PendingObras(obras []entities.Obra) int {
	counts := CountObrasByStatus(obras)
	return counts[entities.ObraStatusPendente] + counts[entities.ObraStatusEmAnalise]
}

// ApprovalRate is the rounded percentage of approved obras, 0 when there are
// none.
func ApprovalRate(obras []entities.Obra) int {
	if len(obras) == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(ApprovedObras(obras))).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(obras)))).
		Round(0).IntPart())
}

func EstimatedBudgetTotal(obras []entities.Obra) decimal.Decimal {
	total := decimal.Zero
	for _, o := range obras {
		total = total.Add(o.EstimatedBudget)
	}
	return total
}

// ObraRegions lists regions in first-seen order.
func ObraRegions(obras []entities.Obra) []string {
	regions := make([]string, 0, len(obras))
	for _, o := range obras {
		regions = append(regions, o.Region)
	}
	return distinct(regions)
}

// ObraOverview gathers what the obra detail screen shows next to the obra.
type ObraOverview struct {
	Obra          entities.Obra
	Budgets       []entities.Budget
	BudgetsTotal  decimal.Decimal
	Visitas       []entities.Visita
	AssignedUsers []entities.User
}

func BuildObraOverview(o entities.Obra, budgets []entities.Budget, visitas []entities.Visita, users []entities.User) ObraOverview {
	ov := ObraOverview{Obra: o, Budgets: []entities.Budget{}, Visitas: []entities.Visita{}, AssignedUsers: []entities.User{}}
	for _, b := range budgets {
		if b.ObraID == o.ID {
			ov.Budgets = append(ov.Budgets, b)
		}
	}
	ov.BudgetsTotal = BudgetsTotal(ov.Budgets)
	for _, v := range visitas {
		if v.ObraID == o.ID {
			ov.Visitas = append(ov.Visitas, v)
		}
	}
	assigned := make(map[string]struct{}, len(o.AssignedUsers))
	for _, id := range o.AssignedUsers {
		assigned[id] = struct{}{}
	}
	for _, u := range users {
		if _, ok := assigned[u.ID]; ok {
			ov.AssignedUsers = append(ov.AssignedUsers, u)
		}
	}
	return ov
}
