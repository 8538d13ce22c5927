package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moap_dashboard/internal/domain/entities"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func obraIDs(obras []entities.Obra) []string {
	out := make([]string, len(obras))
	for i, o := range obras {
		out[i] = o.ID
	}
	return out
}

func sampleObras() []entities.Obra {
	return []entities.Obra{
		{ID: "1", Name: "Edifício Sol", Address: "Rua das Flores, Lisboa", Region: "Lisboa", Status: entities.ObraStatusAprovado, EstimatedBudget: d("2500000"), CreatedDate: "2024-01-10"},
		{ID: "2", Name: "Hotel Mar", Address: "Av. da Praia, Faro", Region: "Algarve", Status: entities.ObraStatusEmAnalise, EstimatedBudget: d("850000"), CreatedDate: "2024-01-12"},
		{ID: "3", Name: "Área Escolar", Address: "Rua da Educação, Porto", Region: "Norte", Status: entities.ObraStatusPendente, EstimatedBudget: d("850000"), CreatedDate: "2024-01-15"},
		{ID: "4", Name: "Centro Histórico", Address: "Praça Velha, Coimbra", Region: "Lisboa", Status: entities.ObraStatusInfoAdicional, EstimatedBudget: d("1200000"), CreatedDate: "2024-01-12"},
	}
}

func TestBudgetTotals(t *testing.T) {
	b := entities.Budget{Items: []entities.BudgetItem{
		{Quantity: d("10"), UnitPrice: d("2.00"), Category: "Estrutura"},
		{Quantity: d("5"), UnitPrice: d("3.00"), Category: "Acabamentos"},
	}}
	assert.True(t, BudgetTotal(b).Equal(d("35")), BudgetTotal(b).String())

	empty := entities.Budget{}
	assert.True(t, BudgetTotal(empty).IsZero())

	both := BudgetsTotal([]entities.Budget{b, b})
	assert.True(t, both.Equal(d("70")))

	byCat := BudgetByCategory(b)
	require.Len(t, byCat, 2)
	assert.Equal(t, "Estrutura", byCat[0].Category)
	assert.True(t, byCat[0].Total.Equal(d("20")))
}

func TestBudgetTotalIsExactForCents(t *testing.T) {
	b := entities.Budget{Items: []entities.BudgetItem{
		{Quantity: d("3"), UnitPrice: d("0.10")},
		{Quantity: d("1"), UnitPrice: d("0.20")},
	}}
	assert.Equal(t, "0.5", BudgetTotal(b).String())
}

func TestCountBudgetsByStatusAndFilter(t *testing.T) {
	budgets := []entities.Budget{
		{ID: "1", Name: "Inicial", ObraID: "1", ObraName: "Sol", Status: entities.BudgetStatusFinalizado},
		{ID: "2", Name: "Revisão", ObraID: "2", ObraName: "Mar", Status: entities.BudgetStatusRascunho},
		{ID: "3", Name: "Revisão 2", ObraID: "2", ObraName: "Mar", Status: entities.BudgetStatusRascunho},
	}
	counts := CountBudgetsByStatus(budgets)
	assert.Equal(t, 1, counts[entities.BudgetStatusFinalizado])
	assert.Equal(t, 2, counts[entities.BudgetStatusRascunho])

	got := FilterBudgets(budgets, BudgetFilter{Search: "revisão", ObraID: "2"})
	assert.Len(t, got, 2)
	got = FilterBudgets(budgets, BudgetFilter{Status: "all"})
	assert.Len(t, got, 3)
}

func TestFilterObras(t *testing.T) {
	obras := sampleObras()

	t.Run("search matches name or address case-insensitively", func(t *testing.T) {
		assert.Equal(t, []string{"2"}, obraIDs(FilterObras(obras, ObraFilter{Search: "FARO"})))
		assert.Equal(t, []string{"1"}, obraIDs(FilterObras(obras, ObraFilter{Search: "sol"})))
	})

	t.Run("status and region", func(t *testing.T) {
		assert.Equal(t, []string{"1", "4"}, obraIDs(FilterObras(obras, ObraFilter{Region: "Lisboa"})))
		assert.Equal(t, []string{"3"}, obraIDs(FilterObras(obras, ObraFilter{Status: "pendente", Region: "all"})))
	})

	t.Run("no match gives an empty non-nil slice", func(t *testing.T) {
		got := FilterObras(obras, ObraFilter{Search: "zzz"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSortObras(t *testing.T) {
	obras := sampleObras()

	assert.Equal(t, []string{"3", "2", "4", "1"}, obraIDs(SortObras(obras, SortByDate)), "ties keep insertion order")
	assert.Equal(t, []string{"1", "4", "2", "3"}, obraIDs(SortObras(obras, SortByBudget)), "ties keep insertion order")
	assert.Equal(t, []string{"3", "4", "1", "2"}, obraIDs(SortObras(obras, SortByName)))
	assert.Equal(t, []string{"1", "2", "3", "4"}, obraIDs(SortObras(obras, "unknown")))
	assert.Equal(t, []string{"1", "2", "3", "4"}, obraIDs(obras), "input is not modified")
}

func TestObraStats(t *testing.T) {
	obras := sampleObras()
	assert.Equal(t, 1, ApprovedObras(obras))
	assert.Equal(t, 2, PendingObras(obras))
	assert.Equal(t, 25, ApprovalRate(obras))
	assert.Equal(t, 0, ApprovalRate(nil))
	assert.True(t, EstimatedBudgetTotal(obras).Equal(d("5400000")))
	assert.Equal(t, []string{"Lisboa", "Algarve", "Norte"}, ObraRegions(obras))

	counts := CountObrasByStatus(obras)
	assert.Equal(t, 1, counts[entities.ObraStatusInfoAdicional])
	assert.Zero(t, counts[entities.ObraStatusRejeitado])
}

func TestBuildObraOverview(t *testing.T) {
	obra := entities.Obra{ID: "1", AssignedUsers: []string{"3", "2"}}
	budgets := []entities.Budget{
		{ID: "b1", ObraID: "1", Items: []entities.BudgetItem{{Quantity: d("2"), UnitPrice: d("5")}}},
		{ID: "b2", ObraID: "2", Items: []entities.BudgetItem{{Quantity: d("1"), UnitPrice: d("99")}}},
		{ID: "b3", ObraID: "1", Items: []entities.BudgetItem{{Quantity: d("1"), UnitPrice: d("1.5")}}},
	}
	visitas := []entities.Visita{{ID: "v1", ObraID: "2"}, {ID: "v2", ObraID: "1"}}
	users := []entities.User{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	ov := BuildObraOverview(obra, budgets, visitas, users)
	assert.Len(t, ov.Budgets, 2)
	assert.True(t, ov.BudgetsTotal.Equal(d("11.5")))
	require.Len(t, ov.Visitas, 1)
	assert.Equal(t, "v2", ov.Visitas[0].ID)
	require.Len(t, ov.AssignedUsers, 2)
	assert.Equal(t, "2", ov.AssignedUsers[0].ID)
}

func TestFilterConcursos(t *testing.T) {
	concursos := []entities.Concurso{
		{ID: "1", Title: "Centro de Saúde", Entity: "CM Lisboa", Region: "Lisboa", Category: "Saúde", Type: "Concurso Público", Budget: d("3500000"), Status: entities.ConcursoStatusAberto},
		{ID: "2", Title: "Parque Urbano", Entity: "CM Porto", Region: "Norte", Category: "Infraestruturas", Type: "Concurso Limitado", Budget: d("1200000"), Status: entities.ConcursoStatusAberto},
		{ID: "3", Title: "Biblioteca", Entity: "CM Coimbra", Region: "Centro", Category: "Educação", Type: "Concurso Público", Budget: d("800000"), Status: entities.ConcursoStatusEmAvaliacao},
	}
	ids := func(cs []entities.Concurso) []string {
		out := []string{}
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []string{"2"}, ids(FilterConcursos(concursos, ConcursoFilter{Search: "porto"})))
	assert.Equal(t, []string{"1", "3"}, ids(FilterConcursos(concursos, ConcursoFilter{Type: "Concurso Público"})))
	assert.Equal(t, []string{"2"}, ids(FilterConcursos(concursos, ConcursoFilter{BudgetMin: ptr(d("1000000")), BudgetMax: ptr(d("1200000"))})))
	assert.Equal(t, []string{"3"}, ids(FilterConcursos(concursos, ConcursoFilter{Status: "em_avaliacao", Category: "Educação", Region: "Centro"})))
	assert.Len(t, FilterConcursos(concursos, ConcursoFilter{}), 3)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC)

	days, ok := DaysUntil("2024-02-28", now)
	require.True(t, ok)
	assert.Equal(t, 8, days)

	days, ok = DaysUntil("2024-02-20", now)
	require.True(t, ok)
	assert.Equal(t, 0, days)

	days, ok = DaysUntil("2024-02-10", now)
	require.True(t, ok)
	assert.Equal(t, -10, days)

	_, ok = DaysUntil("soon", now)
	assert.False(t, ok)
}

func TestMaterials(t *testing.T) {
	materials := []entities.Material{
		{ID: "1", Name: "Cimento Portland", Category: "Estrutura", Region: "Nacional", Type: entities.MaterialTypeMaterial},
		{ID: "2", Name: "Azulejo", Category: "Revestimentos", Region: "Norte", Type: entities.MaterialTypeMaterial},
		{ID: "3", Name: "Mão de obra pedreiro", Category: "Estrutura", Region: "Nacional", Type: entities.MaterialTypeWork},
	}
	assert.Len(t, FilterMaterials(materials, MaterialFilter{Category: "Estrutura"}), 2)
	assert.Len(t, FilterMaterials(materials, MaterialFilter{Type: "work"}), 1)
	assert.Len(t, FilterMaterials(materials, MaterialFilter{Search: "cimento", Region: "Nacional"}), 1)
	assert.Equal(t, []string{"Estrutura", "Revestimentos"}, MaterialCategories(materials))
}

func TestVisitas(t *testing.T) {
	visitas := []entities.Visita{
		{ID: "1", ObraID: "1", Date: "2024-02-05", Time: "10:00", Status: entities.VisitaStatusAgendada},
		{ID: "2", ObraID: "2", Date: "2024-01-28", Time: "14:30", Status: entities.VisitaStatusRealizada},
		{ID: "3", ObraID: "1", Date: "2024-02-01", Time: "16:00", Status: entities.VisitaStatusAgendada},
		{ID: "4", ObraID: "1", Date: "2024-02-01", Time: "09:00", Status: entities.VisitaStatusAgendada},
	}

	got := FilterVisitas(visitas, VisitaFilter{From: "2024-02-01", To: "2024-02-04"})
	assert.Len(t, got, 2)
	assert.Len(t, FilterVisitas(visitas, VisitaFilter{ObraID: "2"}), 1)

	up := UpcomingVisitas(visitas, 2)
	require.Len(t, up, 2)
	assert.Equal(t, "4", up[0].ID)
	assert.Equal(t, "3", up[1].ID)
	assert.Len(t, UpcomingVisitas(visitas, 0), 3)
}

func TestMessagesAndUsers(t *testing.T) {
	convs := []entities.Conversation{
		{ID: "conv-2", ParticipantName: "Carlos Mendes", Unread: 2},
		{ID: "conv-3", ParticipantName: "Sofia Almeida", Unread: 0},
		{ID: "conv-4", ParticipantName: "Ricardo Pereira", Unread: 1},
	}
	assert.Equal(t, 3, UnreadMessages(convs))
	assert.Len(t, FilterConversations(convs, "sofia"), 1)

	t0 := time.Date(2024, 1, 28, 9, 0, 0, 0, time.UTC)
	msgs := []entities.Message{
		{ID: "b", ConversationID: "conv-2", Timestamp: t0.Add(time.Hour)},
		{ID: "x", ConversationID: "conv-3", Timestamp: t0},
		{ID: "a", ConversationID: "conv-2", Timestamp: t0},
	}
	conv := ConversationMessages(msgs, "conv-2")
	require.Len(t, conv, 2)
	assert.Equal(t, "a", conv[0].ID)

	users := []entities.User{
		{ID: "2", Name: "Carlos", Email: "carlos@construcao.pt", Company: "Construções Mendes", Role: "Engenheiro Civil"},
		{ID: "3", Name: "Sofia", Email: "sofia@arquitetura.pt", Company: "Atelier", Role: "Arquiteta"},
	}
	assert.Len(t, FilterUsers(users, "ARQUITET"), 1)
	assert.Len(t, FilterUsers(users, "mendes"), 1)
	assert.Len(t, FilterUsers(users, ""), 2)
}

func TestNotifications(t *testing.T) {
	t0 := time.Date(2024, 1, 28, 10, 0, 0, 0, time.UTC)
	ns := []entities.Notification{
		{ID: "n1", Type: entities.NotificationTypeObra, Timestamp: t0, Read: false},
		{ID: "n2", Type: entities.NotificationTypeMessage, Timestamp: t0.Add(30 * time.Minute), Read: false},
		{ID: "n3", Type: entities.NotificationTypeConcurso, Timestamp: t0.Add(-20 * time.Hour), Read: true},
		{ID: "n4", Type: entities.NotificationTypeSystem, Timestamp: t0, Read: false},
	}

	assert.Equal(t, 3, UnreadNotifications(ns))
	assert.Equal(t, 1, CountNotificationsByType(ns)[entities.NotificationTypeSystem])

	recent := RecentNotifications(ns, NotificationFilter{})
	got := []string{}
	for _, n := range recent {
		got = append(got, n.ID)
	}
	assert.Equal(t, []string{"n2", "n4", "n1", "n3"}, got)

	assert.Len(t, RecentNotifications(ns, NotificationFilter{UnreadOnly: true}), 3)
	assert.Len(t, RecentNotifications(ns, NotificationFilter{Type: "obra"}), 1)
}

func TestDashboardSummary(t *testing.T) {
	s := DashboardSummary(Collections{
		Obras: sampleObras(),
		Budgets: []entities.Budget{
			{Status: entities.BudgetStatusFinalizado, Items: []entities.BudgetItem{{Quantity: d("10"), UnitPrice: d("2")}}},
			{Status: entities.BudgetStatusRascunho, Items: []entities.BudgetItem{{Quantity: d("5"), UnitPrice: d("3")}}},
		},
		Visitas: []entities.Visita{
			{ID: "1", Status: entities.VisitaStatusAgendada, Date: "2024-02-05"},
			{ID: "2", Status: entities.VisitaStatusRealizada},
		},
		Conversations: []entities.Conversation{{Unread: 2}, {Unread: 1}},
		Notifications: []entities.Notification{{Read: false}, {Read: true}},
	})

	assert.Equal(t, 4, s.Obras)
	assert.Equal(t, 1, s.ApprovedObras)
	assert.Equal(t, 2, s.PendingObras)
	assert.Equal(t, 2, s.Budgets)
	assert.Equal(t, 1, s.FinalizedBudgets)
	assert.True(t, s.TotalBudgetValue.Equal(d("35")))
	assert.Equal(t, 1, s.ScheduledVisits)
	assert.Equal(t, 1, s.CompletedVisits)
	assert.Equal(t, 3, s.UnreadMessages)
	assert.Equal(t, 2, s.Conversations)
	assert.Equal(t, 1, s.UnreadNotifications)
	require.Len(t, s.UpcomingVisitas, 1)
}
