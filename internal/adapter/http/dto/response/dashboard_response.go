package response

import (
	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/analytics"
)

type DashboardResponse struct {
	Obras               int              `json:"obras"`
	ApprovedObras       int              `json:"approved_obras"`
	PendingObras        int              `json:"pending_obras"`
	ApprovalRate        int              `json:"approval_rate"`
	EstimatedBudget     decimal.Decimal  `json:"estimated_budget"`
	Budgets             int              `json:"budgets"`
	FinalizedBudgets    int              `json:"finalized_budgets"`
	TotalBudgetValue    decimal.Decimal  `json:"total_budget_value"`
	ScheduledVisits     int              `json:"scheduled_visits"`
	CompletedVisits     int              `json:"completed_visits"`
	UnreadMessages      int              `json:"unread_messages"`
	Conversations       int              `json:"conversations"`
	UnreadNotifications int              `json:"unread_notifications"`
	UpcomingVisitas     []VisitaResponse `json:"upcoming_visitas"`
}

func FromSummary(s analytics.Summary) DashboardResponse {
	return DashboardResponse{
		Obras:               s.Obras,
		ApprovedObras:       s.ApprovedObras,
		PendingObras:        s.PendingObras,
		ApprovalRate:        s.ApprovalRate,
		EstimatedBudget:     s.EstimatedBudget,
		Budgets:             s.Budgets,
		FinalizedBudgets:    s.FinalizedBudgets,
		TotalBudgetValue:    s.TotalBudgetValue,
		ScheduledVisits:     s.ScheduledVisits,
		CompletedVisits:     s.CompletedVisits,
		UnreadMessages:      s.UnreadMessages,
		Conversations:       s.Conversations,
		UnreadNotifications: s.UnreadNotifications,
		UpcomingVisitas:     FromVisitas(s.UpcomingVisitas),
	}
}
