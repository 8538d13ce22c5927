package analytics

import (
	"sort"

	"moap_dashboard/internal/domain/entities"
)

// UnreadMessages sums the unread counters of the conversations.
func UnreadMessages(conversations []entities.Conversation) int {
	n := 0
	for _, c := range conversations {
		n += c.Unread
	}
	return n
}

func FilterConversations(conversations []entities.Conversation, search string) []entities.Conversation {
	out := []entities.Conversation{}
	for _, c := range conversations {
		if anyContainsFold(search, c.ParticipantName) {
			out = append(out, c)
		}
	}
	return out
}

// ConversationMessages returns the messages of one conversation, oldest
// first.
func ConversationMessages(messages []entities.Message, conversationID string) []entities.Message {
	out := []entities.Message{}
	for _, m := range messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func FilterUsers(users []entities.User, search string) []entities.User {
	out := []entities.User{}
	for _, u := range users {
		if anyContainsFold(search, u.Name, u.Email, u.Company, u.Role) {
			out = append(out, u)
		}
	}
	return out
}
