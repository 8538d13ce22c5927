package entities

import "github.com/shopspring/decimal"

// ObraStatus is the approval state of a construction project.
//
// There is no enforced transition graph: any update may set any value.
type ObraStatus string

const (
	ObraStatusPendente      ObraStatus = "pendente"
	ObraStatusEmAnalise     ObraStatus = "em_analise"
	ObraStatusInfoAdicional ObraStatus = "info_adicional"
	ObraStatusAprovado      ObraStatus = "aprovado"
	ObraStatusRejeitado     ObraStatus = "rejeitado"
)

// Obra is a construction project submitted for approval and tracking.
type Obra struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Region          string          `json:"region"`
	Address         string          `json:"address"`
	EstimatedBudget decimal.Decimal `json:"estimatedBudget"`
	StartDate       Date            `json:"startDate"`
	EndDate         Date            `json:"endDate"`
	Urgency         string          `json:"urgency"`
	Description     string          `json:"description"`
	Requirements    string          `json:"requirements"`
	ContactName     string          `json:"contactName"`
	ContactPhone    string          `json:"contactPhone"`
	ContactEmail    string          `json:"contactEmail"`
	Status          ObraStatus      `json:"status"`
	Progress        int             `json:"progress"`
	CreatedDate     Date            `json:"createdDate"`
	AssignedUsers   []string        `json:"assignedUsers"`
}

func (o Obra) EntityID() string { return o.ID }

func (o Obra) Clone() Obra {
	o.AssignedUsers = cloneStrings(o.AssignedUsers)
	return o
}

type ObraPatch struct {
	Name            *string
	Type            *string
	Region          *string
	Address         *string
	EstimatedBudget *decimal.Decimal
	StartDate       *Date
	EndDate         *Date
	Urgency         *string
	Description     *string
	Requirements    *string
	ContactName     *string
	ContactPhone    *string
	ContactEmail    *string
	Status          *ObraStatus
	Progress        *int
	AssignedUsers   *[]string
}

func (p ObraPatch) Apply(o *Obra) {
	setString(&o.Name, p.Name)
	setString(&o.Type, p.Type)
	setString(&o.Region, p.Region)
	setString(&o.Address, p.Address)
	if p.EstimatedBudget != nil {
		o.EstimatedBudget = *p.EstimatedBudget
	}
	if p.StartDate != nil {
		o.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		o.EndDate = *p.EndDate
	}
	setString(&o.Urgency, p.Urgency)
	setString(&o.Description, p.Description)
	setString(&o.Requirements, p.Requirements)
	setString(&o.ContactName, p.ContactName)
	setString(&o.ContactPhone, p.ContactPhone)
	setString(&o.ContactEmail, p.ContactEmail)
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Progress != nil {
		o.Progress = *p.Progress
	}
	if p.AssignedUsers != nil {
		o.AssignedUsers = cloneStrings(*p.AssignedUsers)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
