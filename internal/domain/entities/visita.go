package entities

type VisitaStatus string

const (
	VisitaStatusAgendada  VisitaStatus = "agendada"
	VisitaStatusRealizada VisitaStatus = "realizada"
	VisitaStatusCancelada VisitaStatus = "cancelada"
)

// Visita is a site visit scheduled against an obra.
type Visita struct {
	ID           string       `json:"id"`
	ObraID       string       `json:"obraId"`
	ObraName     string       `json:"obraName"`
	Date         Date         `json:"date"`
	Time         string       `json:"time"`
	Type         string       `json:"type"`
	ContactName  string       `json:"contactName"`
	ContactPhone string       `json:"contactPhone"`
	Notes        string       `json:"notes"`
	Status       VisitaStatus `json:"status"`
}

func (v Visita) EntityID() string { return v.ID }

func (v Visita) Clone() Visita { return v }

type VisitaPatch struct {
	ObraID       *string
	ObraName     *string
	Date         *Date
	Time         *string
	Type         *string
	ContactName  *string
	ContactPhone *string
	Notes        *string
	Status       *VisitaStatus
}

func (p VisitaPatch) Apply(v *Visita) {
	setString(&v.ObraID, p.ObraID)
	setString(&v.ObraName, p.ObraName)
	if p.Date != nil {
		v.Date = *p.Date
	}
	setString(&v.Time, p.Time)
	setString(&v.Type, p.Type)
	setString(&v.ContactName, p.ContactName)
	setString(&v.ContactPhone, p.ContactPhone)
	setString(&v.Notes, p.Notes)
	if p.Status != nil {
		v.Status = *p.Status
	}
}
