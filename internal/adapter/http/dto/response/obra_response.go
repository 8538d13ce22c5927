package response

import (
	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
)

type ObraResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Region          string          `json:"region"`
	Address         string          `json:"address"`
	EstimatedBudget decimal.Decimal `json:"estimated_budget"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Urgency         string          `json:"urgency"`
	Description     string          `json:"description"`
	Requirements    string          `json:"requirements"`
	ContactName     string          `json:"contact_name"`
	ContactPhone    string          `json:"contact_phone"`
	ContactEmail    string          `json:"contact_email"`
	Status          string          `json:"status"`
	Progress        int             `json:"progress"`
	CreatedDate     string          `json:"created_date"`
	AssignedUsers   []string        `json:"assigned_users"`
}

func FromObra(o entities.Obra) ObraResponse {
	assigned := o.AssignedUsers
	if assigned == nil {
		assigned = []string{}
	}
	return ObraResponse{
		ID:              o.ID,
		Name:            o.Name,
		Type:            o.Type,
		Region:          o.Region,
		Address:         o.Address,
		EstimatedBudget: o.EstimatedBudget,
		StartDate:       string(o.StartDate),
		EndDate:         string(o.EndDate),
		Urgency:         o.Urgency,
		Description:     o.Description,
		Requirements:    o.Requirements,
		ContactName:     o.ContactName,
		ContactPhone:    o.ContactPhone,
		ContactEmail:    o.ContactEmail,
		Status:          string(o.Status),
		Progress:        o.Progress,
		CreatedDate:     string(o.CreatedDate),
		AssignedUsers:   assigned,
	}
}

func FromObras(os []entities.Obra) []ObraResponse {
	out := make([]ObraResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromObra(o))
	}
	return out
}

type ObraOverviewResponse struct {
	Obra          ObraResponse     `json:"obra"`
	Budgets       []BudgetResponse `json:"budgets"`
	BudgetsTotal  decimal.Decimal  `json:"budgets_total"`
	Visitas       []VisitaResponse `json:"visitas"`
	AssignedUsers []UserResponse   `json:"assigned_users"`
}

func FromObraOverview(ov analytics.ObraOverview) ObraOverviewResponse {
	return ObraOverviewResponse{
		Obra:          FromObra(ov.Obra),
		Budgets:       FromBudgets(ov.Budgets),
		BudgetsTotal:  ov.BudgetsTotal,
		Visitas:       FromVisitas(ov.Visitas),
		AssignedUsers: FromUsers(ov.AssignedUsers),
	}
}

type VisitaResponse struct {
	ID           string `json:"id"`
	ObraID       string `json:"obra_id"`
	ObraName     string `json:"obra_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Type         string `json:"type"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
}

func FromVisita(v entities.Visita) VisitaResponse {
	return VisitaResponse{
		ID:           v.ID,
		ObraID:       v.ObraID,
		ObraName:     v.ObraName,
		Date:         string(v.Date),
		Time:         v.Time,
		Type:         v.Type,
		ContactName:  v.ContactName,
		ContactPhone: v.ContactPhone,
		Notes:        v.Notes,
		Status:       string(v.Status),
	}
}

func FromVisitas(vs []entities.Visita) []VisitaResponse {
	out := make([]VisitaResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVisita(v))
	}
	return out
}
