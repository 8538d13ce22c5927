package request

import (
	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/entities"
)

type CreateMaterialRequest struct {
	Name     string          `json:"name" binding:"required"`
	Unit     string          `json:"unit" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category" binding:"required"`
	Type     string          `json:"type" binding:"omitempty,oneof=material work"`
	Region   string          `json:"region"`
}

func (r CreateMaterialRequest) ToEntity() entities.Material {
	return entities.Material{
		Name:     r.Name,
		Unit:     r.Unit,
		Price:    r.Price,
		Category: r.Category,
		Type:     entities.MaterialType(r.Type),
		Region:   r.Region,
	}
}

// UpdateMaterialRequest only changes the fields present in the body.
type UpdateMaterialRequest struct {
	Name     *string          `json:"name"`
	Unit     *string          `json:"unit"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
	Type     *string          `json:"type" binding:"omitempty,oneof=material work"`
	Region   *string          `json:"region"`
}

func (r UpdateMaterialRequest) ToPatch() entities.MaterialPatch {
	p := entities.MaterialPatch{
		Name:     r.Name,
		Unit:     r.Unit,
		Price:    r.Price,
		Category: r.Category,
		Region:   r.Region,
	}
	if r.Type != nil {
		t := entities.MaterialType(*r.Type)
		p.Type = &t
	}
	return p
}
