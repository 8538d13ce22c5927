package response

import (
	"time"

	"moap_dashboard/internal/domain/entities"
)

type ConversationResponse struct {
	ID                string `json:"id"`
	ParticipantID     string `json:"participant_id"`
	ParticipantName   string `json:"participant_name"`
	ParticipantAvatar string `json:"participant_avatar"`
	ParticipantRole   string `json:"participant_role"`
	LastMessage       string `json:"last_message"`
	LastMessageTime   string `json:"last_message_time"`
	Unread            int    `json:"unread"`
	Online            bool   `json:"online"`
}

func FromConversation(c entities.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:                c.ID,
		ParticipantID:     c.ParticipantID,
		ParticipantName:   c.ParticipantName,
		ParticipantAvatar: c.ParticipantAvatar,
		ParticipantRole:   c.ParticipantRole,
		LastMessage:       c.LastMessage,
		LastMessageTime:   c.LastMessageTime,
		Unread:            c.Unread,
		Online:            c.Online,
	}
}

func FromConversations(cs []entities.Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromConversation(c))
	}
	return out
}

type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	SenderAvatar   string    `json:"sender_avatar"`
	ReceiverID     string    `json:"receiver_id"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}

func FromMessage(m entities.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		SenderName:     m.SenderName,
		SenderAvatar:   m.SenderAvatar,
		ReceiverID:     m.ReceiverID,
		Content:        m.Content,
		Timestamp:      m.Timestamp,
		Read:           m.Read,
	}
}

func FromMessages(ms []entities.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMessage(m))
	}
	return out
}

type NotificationResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Read        bool      `json:"read"`
	Link        string    `json:"link,omitempty"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Type:        string(n.Type),
		Title:       n.Title,
		Description: n.Description,
		Timestamp:   n.Timestamp,
		Read:        n.Read,
		Link:        n.Link,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}

type InvitationResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
	Status   string `json:"status"`
	SentDate string `json:"sent_date"`
	SentBy   string `json:"sent_by"`
}

func FromInvitation(i entities.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:       i.ID,
		Email:    i.Email,
		Name:     i.Name,
		Role:     i.Role,
		Status:   string(i.Status),
		SentDate: string(i.SentDate),
		SentBy:   i.SentBy,
	}
}

func FromInvitations(is []entities.Invitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(is))
	for _, i := range is {
		out = append(out, FromInvitation(i))
	}
	return out
}

// CountResponse reports how many records a bulk operation touched.
type CountResponse struct {
	Count int `json:"count"`
}
