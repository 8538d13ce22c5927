package entities

import "time"

type NotificationType string

const (
	NotificationTypeObra     NotificationType = "obra"
	NotificationTypeMessage  NotificationType = "message"
	NotificationTypeBudget   NotificationType = "budget"
	NotificationTypeVisit    NotificationType = "visit"
	NotificationTypeConcurso NotificationType = "concurso"
	NotificationTypeSystem   NotificationType = "system"
)

// Notification is created as a side effect of most mutations and is only
// removed by an explicit clear.
type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Timestamp   time.Time        `json:"timestamp"`
	Read        bool             `json:"read"`
	Link        string           `json:"link,omitempty"`
}

func (n Notification) EntityID() string { return n.ID }

func (n Notification) Clone() Notification { return n }
