package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/entities"
)

type seedSet struct {
	Snapshot
	Users []entities.User
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func seedMaterial(id, name, unit, price, category, region, updated string) entities.Material {
	return entities.Material{
		ID:          id,
		Name:        name,
		Unit:        unit,
		Price:       dec(price),
		Category:    category,
		Type:        entities.MaterialTypeMaterial,
		Region:      region,
		LastUpdated: entities.Date(updated),
	}
}

func seedItem(id string, m entities.Material, qty string) entities.BudgetItem {
	return entities.BudgetItem{
		ID:           id,
		MaterialID:   m.ID,
		MaterialName: m.Name,
		Unit:         m.Unit,
		Quantity:     dec(qty),
		UnitPrice:    m.Price,
		Category:     m.Category,
	}
}

// seedData is the data set the dashboard shows on a fresh install.
func seedData() seedSet {
	materials := []entities.Material{
		seedMaterial("1", "Cimento Portland", "kg", "0.15", "Estrutura", "Nacional", "2024-01-15"),
		seedMaterial("2", "Tijolo Cerâmico", "un", "0.45", "Alvenaria", "Nacional", "2024-01-15"),
		seedMaterial("3", "Areia Grossa", "m³", "45.00", "Estrutura", "Lisboa", "2024-01-10"),
		seedMaterial("4", "Ferro CA-50 10mm", "kg", "4.20", "Estrutura", "Nacional", "2024-01-12"),
		seedMaterial("5", "Azulejo 30x30", "m²", "18.50", "Revestimentos", "Norte", "2024-01-08"),
		seedMaterial("6", "Tinta Acrílica", "L", "12.00", "Acabamentos", "Nacional", "2024-01-14"),
		seedMaterial("7", "Betão C25/30", "m³", "85.00", "Estrutura", "Nacional", "2024-01-11"),
		seedMaterial("8", "Tubo PVC 110mm", "m", "8.50", "Instalações", "Nacional", "2024-01-09"),
		seedMaterial("9", "Cabo Elétrico 2.5mm", "m", "1.20", "Instalações", "Nacional", "2024-01-13"),
		seedMaterial("10", "Porta Interior", "un", "120.00", "Acabamentos", "Nacional", "2024-01-07"),
	}

	obras := []entities.Obra{
		{
			ID:              "1",
			Name:            "Edifício Residencial Sol Nascente",
			Type:            "Construção Nova",
			Region:          "Lisboa e Vale do Tejo",
			Address:         "Rua das Flores 123, 1200-123 Lisboa",
			EstimatedBudget: dec("2500000"),
			StartDate:       "2024-03-01",
			EndDate:         "2025-06-30",
			Urgency:         "media",
			Description:     "Construção de edifício residencial com 24 apartamentos em 6 pisos, incluindo 2 caves para estacionamento.",
			Requirements:    "Certificação A+ de eficiência energética, painéis solares, materiais sustentáveis.",
			ContactName:     "João Silva",
			ContactPhone:    "+351 912 345 678",
			ContactEmail:    "joao.silva@email.pt",
			Status:          entities.ObraStatusAprovado,
			Progress:        85,
			CreatedDate:     "2024-01-10",
			AssignedUsers:   []string{"2", "3"},
		},
		{
			ID:              "2",
			Name:            "Renovação Hotel Mar Azul",
			Type:            "Renovação",
			Region:          "Algarve",
			Address:         "Av. da Praia 456, 8000-456 Faro",
			EstimatedBudget: dec("850000"),
			StartDate:       "2024-04-15",
			EndDate:         "2024-10-30",
			Urgency:         "alta",
			Description:     "Renovação completa de hotel de 50 quartos, incluindo áreas comuns, restaurante e piscina.",
			Requirements:    "Manter operação parcial durante obras, materiais anti-ruído.",
			ContactName:     "Maria Santos",
			ContactPhone:    "+351 923 456 789",
			ContactEmail:    "maria.santos@email.pt",
			Status:          entities.ObraStatusEmAnalise,
			Progress:        45,
			CreatedDate:     "2024-01-12",
			AssignedUsers:   []string{"4"},
		},
		{
			ID:              "3",
			Name:            "Ampliação Escola Primária",
			Type:            "Ampliação",
			Region:          "Norte",
			Address:         "Rua da Educação 789, 4000-789 Porto",
			EstimatedBudget: dec("450000"),
			StartDate:       "2024-07-01",
			EndDate:         "2024-12-15",
			Urgency:         "media",
			Description:     "Ampliação de escola primária com novas salas de aula, ginásio e cantina.",
			Requirements:    "Obras durante período de férias escolares, acessibilidade total.",
			ContactName:     "Ana Ferreira",
			ContactPhone:    "+351 934 567 890",
			ContactEmail:    "ana.ferreira@email.pt",
			Status:          entities.ObraStatusPendente,
			Progress:        20,
			CreatedDate:     "2024-01-15",
			AssignedUsers:   []string{},
		},
		{
			ID:              "4",
			Name:            "Reabilitação Centro Histórico",
			Type:            "Reabilitação",
			Region:          "Centro",
			Address:         "Praça Velha 12, 3000-012 Coimbra",
			EstimatedBudget: dec("1200000"),
			StartDate:       "2024-05-01",
			EndDate:         "2025-03-30",
			Urgency:         "baixa",
			Description:     "Reabilitação de edifício histórico para uso misto: comércio no piso térreo e habitação nos pisos superiores.",
			Requirements:    "Aprovação DGPC, técnicas de restauro tradicionais, materiais compatíveis.",
			ContactName:     "Pedro Costa",
			ContactPhone:    "+351 945 678 901",
			ContactEmail:    "pedro.costa@email.pt",
			Status:          entities.ObraStatusInfoAdicional,
			Progress:        60,
			CreatedDate:     "2024-01-08",
			AssignedUsers:   []string{"2"},
		},
	}

	budgets := []entities.Budget{
		{
			ID:          "1",
			Name:        "Orçamento Inicial",
			ObraID:      "1",
			ObraName:    "Edifício Residencial Sol Nascente",
			CreatedDate: "2024-01-20",
			Status:      entities.BudgetStatusFinalizado,
			Items: []entities.BudgetItem{
				seedItem("1", materials[0], "5000"),
				seedItem("2", materials[2], "120"),
				seedItem("3", materials[3], "2500"),
			},
		},
		{
			ID:          "2",
			Name:        "Revisão Março",
			ObraID:      "2",
			ObraName:    "Renovação Hotel Mar Azul",
			CreatedDate: "2024-01-25",
			Status:      entities.BudgetStatusRascunho,
			Items: []entities.BudgetItem{
				seedItem("1", materials[4], "450"),
				seedItem("2", materials[5], "200"),
			},
		},
	}

	visitas := []entities.Visita{
		{
			ID:           "1",
			ObraID:       "1",
			ObraName:     "Edifício Residencial Sol Nascente",
			Date:         "2024-02-05",
			Time:         "10:00",
			Type:         "Vistoria Técnica",
			ContactName:  "João Silva",
			ContactPhone: "+351 912 345 678",
			Notes:        "Verificar progresso da fundação",
			Status:       entities.VisitaStatusAgendada,
		},
		{
			ID:           "2",
			ObraID:       "2",
			ObraName:     "Renovação Hotel Mar Azul",
			Date:         "2024-01-28",
			Time:         "14:30",
			Type:         "Reunião com Cliente",
			ContactName:  "Maria Santos",
			ContactPhone: "+351 923 456 789",
			Notes:        "Apresentar propostas de acabamentos",
			Status:       entities.VisitaStatusRealizada,
		},
	}

	concursos := []entities.Concurso{
		{
			ID:           "1",
			Title:        "Construção de Centro de Saúde",
			Entity:       "Câmara Municipal de Lisboa",
			Region:       "Lisboa e Vale do Tejo",
			Category:     "Saúde",
			Type:         "Concurso Público",
			Budget:       dec("3500000"),
			Deadline:     "2024-02-28",
			Description:  "Construção de novo centro de saúde com 20 gabinetes médicos, laboratório e zona de urgência.",
			Status:       entities.ConcursoStatusAberto,
			InvitedUsers: []string{},
		},
		{
			ID:           "2",
			Title:        "Requalificação Parque Urbano",
			Entity:       "Câmara Municipal do Porto",
			Region:       "Norte",
			Category:     "Infraestruturas",
			Type:         "Concurso Limitado",
			Budget:       dec("1200000"),
			Deadline:     "2024-03-15",
			Description:  "Requalificação de parque urbano incluindo caminhos pedonais, iluminação e mobiliário urbano.",
			Status:       entities.ConcursoStatusAberto,
			InvitedUsers: []string{"2"},
		},
		{
			ID:           "3",
			Title:        "Ampliação Biblioteca Municipal",
			Entity:       "Câmara Municipal de Coimbra",
			Region:       "Centro",
			Category:     "Educação",
			Type:         "Concurso Público",
			Budget:       dec("800000"),
			Deadline:     "2024-02-10",
			Description:  "Ampliação de biblioteca municipal com nova ala de arquivo e auditório.",
			Status:       entities.ConcursoStatusEmAvaliacao,
			InvitedUsers: []string{"3", "4"},
		},
	}

	users := []entities.User{
		{ID: "1", Name: "Administrador", Email: "admin@moap.pt", Role: "Admin", Company: "MOAP", Avatar: "/admin-avatar-professional.jpg", Online: true, JoinDate: "2023-01-01"},
		{ID: "2", Name: "Carlos Mendes", Email: "carlos.mendes@construcao.pt", Role: "Engenheiro Civil", Company: "Construções Mendes", Avatar: "/professional-man.png", Online: true, JoinDate: "2023-06-15"},
		{ID: "3", Name: "Sofia Almeida", Email: "sofia.almeida@arquitetura.pt", Role: "Arquiteta", Company: "Atelier Almeida", Avatar: "/professional-woman.png", Online: false, JoinDate: "2023-08-20"},
		{ID: "4", Name: "Ricardo Pereira", Email: "ricardo.pereira@obras.pt", Role: "Gestor de Obra", Company: "Obras & Projetos", Avatar: "/man-construction.jpg", Online: true, JoinDate: "2023-10-01"},
		{ID: "5", Name: "Marta Rodrigues", Email: "marta.rodrigues@design.pt", Role: "Designer de Interiores", Company: "MR Design", Avatar: "/woman-architect.png", Online: false, JoinDate: "2023-11-15"},
	}

	conversations := []entities.Conversation{
		{ID: "conv-2", ParticipantID: "2", ParticipantName: "Carlos Mendes", ParticipantAvatar: "/professional-man.png", ParticipantRole: "Engenheiro Civil", LastMessage: "Os materiais já chegaram à obra?", LastMessageTime: "10:30", Unread: 2, Online: true},
		{ID: "conv-3", ParticipantID: "3", ParticipantName: "Sofia Almeida", ParticipantAvatar: "/professional-woman.png", ParticipantRole: "Arquiteta", LastMessage: "Enviei as alterações ao projeto", LastMessageTime: "Ontem", Unread: 0, Online: false},
		{ID: "conv-4", ParticipantID: "4", ParticipantName: "Ricardo Pereira", ParticipantAvatar: "/man-construction.jpg", ParticipantRole: "Gestor de Obra", LastMessage: "Reunião confirmada para amanhã", LastMessageTime: "09:15", Unread: 1, Online: true},
	}

	messages := []entities.Message{
		{ID: "m1", ConversationID: "conv-2", SenderID: "2", SenderName: "Carlos Mendes", SenderAvatar: "/professional-man.png", ReceiverID: "1", Content: "Bom dia! Gostaria de discutir o orçamento da obra Sol Nascente.", Timestamp: ts("2024-01-28T09:00:00"), Read: true},
		{ID: "m2", ConversationID: "conv-2", SenderID: "1", SenderName: "Administrador", SenderAvatar: "/admin-avatar-professional.jpg", ReceiverID: "2", Content: "Bom dia Carlos! Claro, podemos agendar uma reunião?", Timestamp: ts("2024-01-28T09:15:00"), Read: true},
		{ID: "m3", ConversationID: "conv-2", SenderID: "2", SenderName: "Carlos Mendes", SenderAvatar: "/professional-man.png", ReceiverID: "1", Content: "Os materiais já chegaram à obra?", Timestamp: ts("2024-01-28T10:30:00"), Read: false},
		{ID: "m4", ConversationID: "conv-3", SenderID: "3", SenderName: "Sofia Almeida", SenderAvatar: "/professional-woman.png", ReceiverID: "1", Content: "Enviei as alterações ao projeto", Timestamp: ts("2024-01-27T16:00:00"), Read: true},
		{ID: "m5", ConversationID: "conv-4", SenderID: "4", SenderName: "Ricardo Pereira", SenderAvatar: "/man-construction.jpg", ReceiverID: "1", Content: "Reunião confirmada para amanhã", Timestamp: ts("2024-01-28T09:15:00"), Read: false},
	}

	notifications := []entities.Notification{
		{ID: "n1", Type: entities.NotificationTypeObra, Title: "Obra Aprovada", Description: "Edifício Residencial Sol Nascente foi aprovado.", Timestamp: ts("2024-01-28T10:00:00"), Read: false, Link: "/dashboard/obras/1"},
		{ID: "n2", Type: entities.NotificationTypeMessage, Title: "Nova Mensagem", Description: "Carlos Mendes enviou uma mensagem.", Timestamp: ts("2024-01-28T10:30:00"), Read: false, Link: "/dashboard/messages"},
		{ID: "n3", Type: entities.NotificationTypeConcurso, Title: "Novo Concurso", Description: "Novo concurso público disponível na sua região.", Timestamp: ts("2024-01-27T14:00:00"), Read: true, Link: "/dashboard/concursos"},
	}

	invitations := []entities.Invitation{
		{ID: "i1", Email: "jose.ferreira@construcao.pt", Name: "José Ferreira", Role: "Empreiteiro", Status: entities.InvitationStatusEnviado, SentDate: "2024-01-25", SentBy: "Administrador"},
		{ID: "i2", Email: "ana.costa@arquitetura.pt", Name: "Ana Costa", Role: "Arquiteta", Status: entities.InvitationStatusAceite, SentDate: "2024-01-20", SentBy: "Administrador"},
	}

	return seedSet{
		Snapshot: Snapshot{
			Materials:     materials,
			Budgets:       budgets,
			Obras:         obras,
			Visitas:       visitas,
			Concursos:     concursos,
			Conversations: conversations,
			Messages:      messages,
			Notifications: notifications,
			Invitations:   invitations,
		},
		Users: users,
	}
}
