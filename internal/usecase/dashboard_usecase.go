package usecase

import (
	"context"

	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/usecase/interfaces"
)

type IDashboardUseCase interface {
	Summary(ctx context.Context) (analytics.Summary, error)
}

type DashboardUseCase struct {
	obras         interfaces.IObraRepository
	budgets       interfaces.IBudgetRepository
	visitas       interfaces.IVisitaRepository
	conversations interfaces.IConversationRepository
	notifications interfaces.INotificationRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	obras interfaces.IObraRepository,
	budgets interfaces.IBudgetRepository,
	visitas interfaces.IVisitaRepository,
	conversations interfaces.IConversationRepository,
	notifications interfaces.INotificationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		obras:         obras,
		budgets:       budgets,
		visitas:       visitas,
		conversations: conversations,
		notifications: notifications,
	}
}

// Summary is recomputed from the collections on every call.
func (u *DashboardUseCase) Summary(ctx context.Context) (analytics.Summary, error) {
	var (
		c   analytics.Collections
		err error
	)
	if c.Obras, err = u.obras.List(ctx); err != nil {
		return analytics.Summary{}, err
	}
	if c.Budgets, err = u.budgets.List(ctx); err != nil {
		return analytics.Summary{}, err
	}
	if c.Visitas, err = u.visitas.List(ctx); err != nil {
		return analytics.Summary{}, err
	}
	if c.Conversations, err = u.conversations.List(ctx); err != nil {
		return analytics.Summary{}, err
	}
	if c.Notifications, err = u.notifications.List(ctx); err != nil {
		return analytics.Summary{}, err
	}
	return analytics.DashboardSummary(c), nil
}
