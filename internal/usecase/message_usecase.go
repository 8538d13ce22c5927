package usecase

import (
	"context"
	"errors"
	"strings"

	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/usecase/interfaces"
)

var (
	ErrConversationNotFound  = errors.New("conversation not found")
	ErrInvalidConversationID = errors.New("invalid conversation id")
	ErrEmptyMessage          = errors.New("empty message")
)

// lastMessageTimeNow is the relative label shown for a message just sent.
const lastMessageTimeNow = "Agora"

type IMessageUseCase interface {
	ListConversations(ctx context.Context, search string) ([]entities.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]entities.Message, error)
	SendMessage(ctx context.Context, conversationID, content string) (entities.Message, error)
	MarkConversationRead(ctx context.Context, conversationID string) (entities.Conversation, error)
	UnreadCount(ctx context.Context) (int, error)
}

type MessageUseCase struct {
	conversations interfaces.IConversationRepository
	messages      interfaces.IMessageRepository
	sessions      SessionSource
	ids           idgen.Generator
	clock         idgen.Clock
}

var _ IMessageUseCase = (*MessageUseCase)(nil)

func NewMessageUseCase(
	conversations interfaces.IConversationRepository,
	messages interfaces.IMessageRepository,
	sessions SessionSource,
	ids idgen.Generator,
	clock idgen.Clock,
) *MessageUseCase {
	ids, clock = orDefault(ids, clock)
	return &MessageUseCase{conversations: conversations, messages: messages, sessions: sessions, ids: ids, clock: clock}
}

func (u *MessageUseCase) ListConversations(ctx context.Context, search string) ([]entities.Conversation, error) {
	all, err := u.conversations.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FilterConversations(all, search), nil
}

func (u *MessageUseCase) ListMessages(ctx context.Context, conversationID string) ([]entities.Message, error) {
	conv, err := u.conversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	all, err := u.messages.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ConversationMessages(all, conv.ID), nil
}

// SendMessage appends a message from the acting user to the conversation
// participant and refreshes the conversation preview.
func (u *MessageUseCase) SendMessage(ctx context.Context, conversationID, content string) (entities.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return entities.Message{}, ErrEmptyMessage
	}
	conv, err := u.conversation(ctx, conversationID)
	if err != nil {
		return entities.Message{}, err
	}

	sender := actingUser(ctx, u.sessions)
	msg, err := createWithFreshID(ctx, u.messages, u.ids, func(id string) entities.Message {
		return entities.Message{
			ID:             id,
			ConversationID: conv.ID,
			SenderID:       sender.ID,
			SenderName:     sender.Name,
			SenderAvatar:   sender.Avatar,
			ReceiverID:     conv.ParticipantID,
			Content:        content,
			Timestamp:      u.clock.Now(),
			Read:           true,
		}
	})
	if err != nil {
		return entities.Message{}, err
	}

	if _, err := u.conversations.Mutate(ctx, conv.ID, func(c *entities.Conversation) {
		c.LastMessage = content
		c.LastMessageTime = lastMessageTimeNow
	}); err != nil {
		return entities.Message{}, err
	}
	return msg, nil
}

// MarkConversationRead zeroes the unread counter and marks every message of
// the conversation as read.
func (u *MessageUseCase) MarkConversationRead(ctx context.Context, conversationID string) (entities.Conversation, error) {
	id, ok := normalizeID(conversationID)
	if !ok {
		return entities.Conversation{}, ErrInvalidConversationID
	}
	conv, err := u.conversations.Mutate(ctx, id, func(c *entities.Conversation) { c.Unread = 0 })
	if err != nil {
		return entities.Conversation{}, err
	}
	if conv.ID == "" {
		return entities.Conversation{}, ErrConversationNotFound
	}
	if _, err := u.messages.MutateAll(ctx, func(m *entities.Message) bool {
		if m.ConversationID != id || m.Read {
			return false
		}
		m.Read = true
		return true
	}); err != nil {
		return entities.Conversation{}, err
	}
	return conv, nil
}

func (u *MessageUseCase) UnreadCount(ctx context.Context) (int, error) {
	all, err := u.conversations.List(ctx)
	if err != nil {
		return 0, err
	}
	return analytics.UnreadMessages(all), nil
}

func (u *MessageUseCase) conversation(ctx context.Context, id string) (entities.Conversation, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Conversation{}, ErrInvalidConversationID
	}
	conv, err := u.conversations.GetByID(ctx, id)
	if err != nil {
		return entities.Conversation{}, err
	}
	if conv.ID == "" {
		return entities.Conversation{}, ErrConversationNotFound
	}
	return conv, nil
}
