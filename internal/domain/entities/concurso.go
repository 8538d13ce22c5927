package entities

import "github.com/shopspring/decimal"

type ConcursoStatus string

const (
	ConcursoStatusAberto      ConcursoStatus = "aberto"
	ConcursoStatusFechado     ConcursoStatus = "fechado"
	ConcursoStatusEmAvaliacao ConcursoStatus = "em_avaliacao"
)

// Concurso is a public-sector tender.
type Concurso struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Entity       string          `json:"entity"`
	Region       string          `json:"region"`
	Category     string          `json:"category"`
	Type         string          `json:"type"`
	Budget       decimal.Decimal `json:"budget"`
	Deadline     Date            `json:"deadline"`
	Description  string          `json:"description"`
	Status       ConcursoStatus  `json:"status"`
	InvitedUsers []string        `json:"invitedUsers"`
}

func (c Concurso) EntityID() string { return c.ID }

func (c Concurso) Clone() Concurso {
	c.InvitedUsers = cloneStrings(c.InvitedUsers)
	return c
}
