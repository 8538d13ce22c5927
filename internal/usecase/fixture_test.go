package usecase

import (
	"context"
	"testing"
	"time"

	"moap_dashboard/internal/adapter/persistence/memory"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/infrastructure/logger"
)

var testNow = time.Date(2024, time.February, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store         *memory.Store
	ids           *idgen.Sequence
	clock         idgen.FixedClock
	notifications *NotificationUseCase
}

func newFixture() fixture {
	store := memory.NewSeeded()
	ids := idgen.NewSequence("t")
	clock := idgen.FixedClock{At: testNow}
	return fixture{
		store:         store,
		ids:           ids,
		clock:         clock,
		notifications: NewNotificationUseCase(store.Notifications(), ids, clock, logger.Discard()),
	}
}

// lastNotification returns the most recently appended notification.
func (f fixture) lastNotification(t *testing.T) entities.Notification {
	t.Helper()
	all, err := f.store.Notifications().List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) == 0 {
		t.Fatalf("expected notifications")
	}
	return all[len(all)-1]
}

func (f fixture) notificationCount(t *testing.T) int {
	t.Helper()
	return f.store.Notifications().Len()
}

type staticSession struct {
	user entities.SessionUser
	ok   bool
}

func (s staticSession) CurrentUser(context.Context) (entities.SessionUser, bool) {
	return s.user, s.ok
}
