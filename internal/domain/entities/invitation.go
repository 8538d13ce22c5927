package entities

// InvitationStatus is a label only; nothing expires invitations automatically.
type InvitationStatus string

const (
	InvitationStatusEnviado  InvitationStatus = "enviado"
	InvitationStatusAceite   InvitationStatus = "aceite"
	InvitationStatusExpirado InvitationStatus = "expirado"
)

type Invitation struct {
	ID       string           `json:"id"`
	Email    string           `json:"email"`
	Name     string           `json:"name,omitempty"`
	Role     string           `json:"role,omitempty"`
	Status   InvitationStatus `json:"status"`
	SentDate Date             `json:"sentDate"`
	SentBy   string           `json:"sentBy"`
}

func (i Invitation) EntityID() string { return i.ID }

func (i Invitation) Clone() Invitation { return i }
