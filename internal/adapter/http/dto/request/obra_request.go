package request

import (
	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/entities"
)

type CreateObraRequest struct {
	Name            string          `json:"name" binding:"required"`
	Type            string          `json:"type" binding:"required"`
	Region          string          `json:"region" binding:"required"`
	Address         string          `json:"address"`
	EstimatedBudget decimal.Decimal `json:"estimated_budget"`
	StartDate       string          `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate         string          `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Urgency         string          `json:"urgency"`
	Description     string          `json:"description"`
	Requirements    string          `json:"requirements"`
	ContactName     string          `json:"contact_name"`
	ContactPhone    string          `json:"contact_phone"`
	ContactEmail    string          `json:"contact_email" binding:"omitempty,email"`
}

func (r CreateObraRequest) ToEntity() entities.Obra {
	return entities.Obra{
		Name:            r.Name,
		Type:            r.Type,
		Region:          r.Region,
		Address:         r.Address,
		EstimatedBudget: r.EstimatedBudget,
		StartDate:       entities.Date(r.StartDate),
		EndDate:         entities.Date(r.EndDate),
		Urgency:         r.Urgency,
		Description:     r.Description,
		Requirements:    r.Requirements,
		ContactName:     r.ContactName,
		ContactPhone:    r.ContactPhone,
		ContactEmail:    r.ContactEmail,
	}
}

type UpdateObraRequest struct {
	Name            *string          `json:"name"`
	Type            *string          `json:"type"`
	Region          *string          `json:"region"`
	Address         *string          `json:"address"`
	EstimatedBudget *decimal.Decimal `json:"estimated_budget"`
	StartDate       *string          `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate         *string          `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Urgency         *string          `json:"urgency"`
	Description     *string          `json:"description"`
	Requirements    *string          `json:"requirements"`
	ContactName     *string          `json:"contact_name"`
	ContactPhone    *string          `json:"contact_phone"`
	ContactEmail    *string          `json:"contact_email" binding:"omitempty,email"`
	Status          *string          `json:"status" binding:"omitempty,oneof=pendente em_analise info_adicional aprovado rejeitado"`
	Progress        *int             `json:"progress" binding:"omitempty,min=0,max=100"`
}

func (r UpdateObraRequest) ToPatch() entities.ObraPatch {
	p := entities.ObraPatch{
		Name:            r.Name,
		Type:            r.Type,
		Region:          r.Region,
		Address:         r.Address,
		EstimatedBudget: r.EstimatedBudget,
		StartDate:       datePtr(r.StartDate),
		EndDate:         datePtr(r.EndDate),
		Urgency:         r.Urgency,
		Description:     r.Description,
		Requirements:    r.Requirements,
		ContactName:     r.ContactName,
		ContactPhone:    r.ContactPhone,
		ContactEmail:    r.ContactEmail,
		Progress:        r.Progress,
	}
	if r.Status != nil {
		s := entities.ObraStatus(*r.Status)
		p.Status = &s
	}
	return p
}

type AssignUserRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func datePtr(v *string) *entities.Date {
	if v == nil {
		return nil
	}
	d := entities.Date(*v)
	return &d
}
