package entities

import "time"

// Conversation carries a denormalized preview of its latest message.
type Conversation struct {
	ID                string `json:"id"`
	ParticipantID     string `json:"participantId"`
	ParticipantName   string `json:"participantName"`
	ParticipantAvatar string `json:"participantAvatar"`
	ParticipantRole   string `json:"participantRole"`
	LastMessage       string `json:"lastMessage"`
	LastMessageTime   string `json:"lastMessageTime"`
	Unread            int    `json:"unread"`
	Online            bool   `json:"online"`
}

func (c Conversation) EntityID() string { return c.ID }

func (c Conversation) Clone() Conversation { return c }

// Message belongs to a conversation. Messages are append-only.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	SenderName     string    `json:"senderName"`
	SenderAvatar   string    `json:"senderAvatar"`
	ReceiverID     string    `json:"receiverId"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}

func (m Message) EntityID() string { return m.ID }

func (m Message) Clone() Message { return m }
