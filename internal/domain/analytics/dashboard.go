package analytics

import (
	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/entities"
)

// Collections is the state the dashboard summary is computed from.
type Collections struct {
	Obras         []entities.Obra
	Budgets       []entities.Budget
	Visitas       []entities.Visita
	Conversations []entities.Conversation
	Notifications []entities.Notification
}

// Summary backs the cards of the dashboard home screen.
type Summary struct {
	Obras               int
	ApprovedObras       int
	PendingObras        int
	ApprovalRate        int
	EstimatedBudget     decimal.Decimal
	Budgets             int
	FinalizedBudgets    int
	TotalBudgetValue    decimal.Decimal
	ScheduledVisits     int
	CompletedVisits     int
	UnreadMessages      int
	Conversations       int
	UnreadNotifications int
	UpcomingVisitas     []entities.Visita
}

const upcomingOnDashboard = 4

func DashboardSummary(c Collections) Summary {
	visits := CountVisitasByStatus(c.Visitas)
	return Summary{
		Obras:               len(c.Obras),
		ApprovedObras:       ApprovedObras(c.Obras),
		PendingObras:        PendingObras(c.Obras),
		ApprovalRate:        ApprovalRate(c.Obras),
		EstimatedBudget:     EstimatedBudgetTotal(c.Obras),
		Budgets:             len(c.Budgets),
		FinalizedBudgets:    CountBudgetsByStatus(c.Budgets)[entities.BudgetStatusFinalizado],
		TotalBudgetValue:    BudgetsTotal(c.Budgets),
		ScheduledVisits:     visits[entities.VisitaStatusAgendada],
		CompletedVisits:     visits[entities.VisitaStatusRealizada],
		UnreadMessages:      UnreadMessages(c.Conversations),
		Conversations:       len(c.Conversations),
		UnreadNotifications: UnreadNotifications(c.Notifications),
		UpcomingVisitas:     UpcomingVisitas(c.Visitas, upcomingOnDashboard),
	}
}
