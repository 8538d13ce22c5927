package request

import (
	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/entities"
)

type BudgetItemRequest struct {
	MaterialID   string          `json:"material_id" binding:"required"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Category     string          `json:"category"`
}

type CreateBudgetRequest struct {
	Name     string              `json:"name" binding:"required"`
	ObraID   string              `json:"obra_id"`
	ObraName string              `json:"obra_name"`
	Status   string              `json:"status" binding:"omitempty,oneof=rascunho finalizado enviado"`
	Items    []BudgetItemRequest `json:"items" binding:"dive"`
}

func (r CreateBudgetRequest) ToEntity() entities.Budget {
	b := entities.Budget{
		Name:     r.Name,
		ObraID:   r.ObraID,
		ObraName: r.ObraName,
		Status:   entities.BudgetStatus(r.Status),
		Items:    make([]entities.BudgetItem, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		b.Items = append(b.Items, entities.BudgetItem{
			MaterialID:   it.MaterialID,
			MaterialName: it.MaterialName,
			Unit:         it.Unit,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Category:     it.Category,
		})
	}
	return b
}

type UpdateBudgetRequest struct {
	Name     *string `json:"name"`
	ObraID   *string `json:"obra_id"`
	ObraName *string `json:"obra_name"`
	Status   *string `json:"status" binding:"omitempty,oneof=rascunho finalizado enviado"`
}

func (r UpdateBudgetRequest) ToPatch() entities.BudgetPatch {
	p := entities.BudgetPatch{Name: r.Name, ObraID: r.ObraID, ObraName: r.ObraName}
	if r.Status != nil {
		s := entities.BudgetStatus(*r.Status)
		p.Status = &s
	}
	return p
}

type AddBudgetItemRequest struct {
	MaterialID string          `json:"material_id" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
}

type UpdateBudgetItemRequest struct {
	Quantity  *decimal.Decimal `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

func (r UpdateBudgetItemRequest) ToPatch() entities.BudgetItemPatch {
	return entities.BudgetItemPatch{Quantity: r.Quantity, UnitPrice: r.UnitPrice}
}
