package response

import (
	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/entities"
)

type ConcursoResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Entity       string          `json:"entity"`
	Region       string          `json:"region"`
	Category     string          `json:"category"`
	Type         string          `json:"type"`
	Budget       decimal.Decimal `json:"budget"`
	Deadline     string          `json:"deadline"`
	Description  string          `json:"description"`
	Status       string          `json:"status"`
	InvitedUsers []string        `json:"invited_users"`
	DaysLeft     *int            `json:"days_left,omitempty"`
}

func FromConcurso(c entities.Concurso) ConcursoResponse {
	invited := c.InvitedUsers
	if invited == nil {
		invited = []string{}
	}
	return ConcursoResponse{
		ID:           c.ID,
		Title:        c.Title,
		Entity:       c.Entity,
		Region:       c.Region,
		Category:     c.Category,
		Type:         c.Type,
		Budget:       c.Budget,
		Deadline:     string(c.Deadline),
		Description:  c.Description,
		Status:       string(c.Status),
		InvitedUsers: invited,
	}
}

func FromConcursos(cs []entities.Concurso) []ConcursoResponse {
	out := make([]ConcursoResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromConcurso(c))
	}
	return out
}
