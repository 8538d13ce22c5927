package analytics

import (
	"sort"

	"moap_dashboard/internal/domain/entities"
)

func UnreadNotifications(notifications []entities.Notification) int {
	n := 0
	for _, it := range notifications {
		if !it.Read {
			n++
		}
	}
	return n
}

func CountNotificationsByType(notifications []entities.Notification) map[entities.NotificationType]int {
	out := map[entities.NotificationType]int{}
	for _, it := range notifications {
		out[it.Type]++
	}
	return out
}

type NotificationFilter struct {
	Type       string
	UnreadOnly bool
}

// RecentNotifications filters and orders newest first. Among equal timestamps
// the most recently added comes first.
func RecentNotifications(notifications []entities.Notification, f NotificationFilter) []entities.Notification {
	out := []entities.Notification{}
	for i := len(notifications) - 1; i >= 0; i-- {
		n := notifications[i]
		if !matchesExact(f.Type, string(n.Type)) || (f.UnreadOnly && n.Read) {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
