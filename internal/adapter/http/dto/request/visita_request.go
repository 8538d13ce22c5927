package request

import "moap_dashboard/internal/domain/entities"

type CreateVisitaRequest struct {
	ObraID       string `json:"obra_id" binding:"required"`
	ObraName     string `json:"obra_name"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	Time         string `json:"time" binding:"omitempty,datetime=15:04"`
	Type         string `json:"type"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	Notes        string `json:"notes"`
}

func (r CreateVisitaRequest) ToEntity() entities.Visita {
	return entities.Visita{
		ObraID:       r.ObraID,
		ObraName:     r.ObraName,
		Date:         entities.Date(r.Date),
		Time:         r.Time,
		Type:         r.Type,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
		Notes:        r.Notes,
	}
}

type UpdateVisitaRequest struct {
	Date         *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time         *string `json:"time" binding:"omitempty,datetime=15:04"`
	Type         *string `json:"type"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status" binding:"omitempty,oneof=agendada realizada cancelada"`
}

func (r UpdateVisitaRequest) ToPatch() entities.VisitaPatch {
	p := entities.VisitaPatch{
		Date:         datePtr(r.Date),
		Time:         r.Time,
		Type:         r.Type,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
		Notes:        r.Notes,
	}
	if r.Status != nil {
		s := entities.VisitaStatus(*r.Status)
		p.Status = &s
	}
	return p
}
