package response

import (
	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/entities"
)

type BudgetItemResponse struct {
	ID           string          `json:"id"`
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Total        decimal.Decimal `json:"total"`
	Category     string          `json:"category"`
}

// BudgetResponse carries the derived total next to the items it is folded from.
type BudgetResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	ObraID      string               `json:"obra_id"`
	ObraName    string               `json:"obra_name"`
	CreatedDate string               `json:"created_date"`
	Status      string               `json:"status"`
	Items       []BudgetItemResponse `json:"items"`
	Total       decimal.Decimal      `json:"total"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	resp := BudgetResponse{
		ID:          b.ID,
		Name:        b.Name,
		ObraID:      b.ObraID,
		ObraName:    b.ObraName,
		CreatedDate: string(b.CreatedDate),
		Status:      string(b.Status),
		Items:       make([]BudgetItemResponse, 0, len(b.Items)),
		Total:       b.Total(),
	}
	for _, it := range b.Items {
		resp.Items = append(resp.Items, BudgetItemResponse{
			ID:           it.ID,
			MaterialID:   it.MaterialID,
			MaterialName: it.MaterialName,
			Unit:         it.Unit,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Total:        it.LineTotal(),
			Category:     it.Category,
		})
	}
	return resp
}

func FromBudgets(bs []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBudget(b))
	}
	return out
}
