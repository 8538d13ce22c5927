package analytics

import (
	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/entities"
)

func BudgetTotal(b entities.Budget) decimal.Decimal {
	return b.Total()
}

// BudgetsTotal sums the line totals of every budget.
func BudgetsTotal(budgets []entities.Budget) decimal.Decimal {
	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.Total())
	}
	return total
}

func CountBudgetsByStatus(budgets []entities.Budget) map[entities.BudgetStatus]int {
	out := map[entities.BudgetStatus]int{}
	for _, b := range budgets {
		out[b.Status]++
	}
	return out
}

type BudgetFilter struct {
	Search string
	ObraID string
	Status string
}

func FilterBudgets(budgets []entities.Budget, f BudgetFilter) []entities.Budget {
	out := []entities.Budget{}
	for _, b := range budgets {
		if !anyContainsFold(f.Search, b.Name, b.ObraName) {
			continue
		}
		if !matchesExact(f.ObraID, b.ObraID) || !matchesExact(f.Status, string(b.Status)) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// CategoryTotal is the share of a budget spent on one material category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// BudgetByCategory groups line totals by category, in first-seen order.
func BudgetByCategory(b entities.Budget) []CategoryTotal {
	idx := map[string]int{}
	out := []CategoryTotal{}
	for _, it := range b.Items {
		i, ok := idx[it.Category]
		if !ok {
			i = len(out)
			idx[it.Category] = i
			out = append(out, CategoryTotal{Category: it.Category, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(it.LineTotal())
	}
	return out
}
