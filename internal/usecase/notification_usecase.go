package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrInvalidNotification   = errors.New("invalid notification")
)

// NotificationInput is what callers provide; id, timestamp and read state are
// assigned on insert.
type NotificationInput struct {
	Type        entities.NotificationType
	Title       string
	Description string
	Link        string
}

type INotificationUseCase interface {
	Add(ctx context.Context, in NotificationInput) (entities.Notification, error)
	List(ctx context.Context, filter analytics.NotificationFilter) ([]entities.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
	Clear(ctx context.Context) (int, error)
}

type NotificationUseCase struct {
	repo  interfaces.INotificationRepository
	ids   idgen.Generator
	clock idgen.Clock
	log   *logrus.Entry
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository, ids idgen.Generator, clock idgen.Clock, log *logrus.Entry) *NotificationUseCase {
	ids, clock = orDefault(ids, clock)
	return &NotificationUseCase{repo: repo, ids: ids, clock: clock, log: log}
}

func (u *NotificationUseCase) Add(ctx context.Context, in NotificationInput) (entities.Notification, error) {
	if strings.TrimSpace(in.Title) == "" {
		return entities.Notification{}, ErrInvalidNotification
	}
	if in.Type == "" {
		in.Type = entities.NotificationTypeSystem
	}
	return createWithFreshID(ctx, u.repo, u.ids, func(id string) entities.Notification {
		return entities.Notification{
			ID:          id,
			Type:        in.Type,
			Title:       in.Title,
			Description: in.Description,
			Timestamp:   u.clock.Now(),
			Read:        false,
			Link:        in.Link,
		}
	})
}

// notify records a side-effect notification. A failure here never fails the
// mutation that caused it.
func (u *NotificationUseCase) notify(ctx context.Context, in NotificationInput) {
	if _, err := u.Add(ctx, in); err != nil {
		u.log.WithError(err).WithField("title", in.Title).Warn("notification not recorded")
	}
}

func (u *NotificationUseCase) List(ctx context.Context, filter analytics.NotificationFilter) ([]entities.Notification, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.RecentNotifications(all, filter), nil
}

func (u *NotificationUseCase) UnreadCount(ctx context.Context) (int, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return analytics.UnreadNotifications(all), nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Notification{}, ErrInvalidNotificationID
	}
	n, err := u.repo.Mutate(ctx, id, func(n *entities.Notification) { n.Read = true })
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

// MarkAllRead returns how many notifications went from unread to read.
func (u *NotificationUseCase) MarkAllRead(ctx context.Context) (int, error) {
	return u.repo.MutateAll(ctx, func(n *entities.Notification) bool {
		if n.Read {
			return false
		}
		n.Read = true
		return true
	})
}

func (u *NotificationUseCase) Clear(ctx context.Context) (int, error) {
	return u.repo.DeleteAll(ctx)
}
