package usecase

import (
	"context"
	"errors"
	"testing"

	"moap_dashboard/internal/domain/entities"
)

func TestInvitationUseCase_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid email", func(t *testing.T) {
		f := newFixture()
		uc := NewInvitationUseCase(f.store.Invitations(), f.notifications, nil, f.ids, f.clock)

		for _, email := range []string{"", "nao-e-email", "a@"} {
			if _, err := uc.Send(ctx, InvitationInput{Email: email}); !errors.Is(err, ErrInvalidEmail) {
				t.Fatalf("expected ErrInvalidEmail for %q, got %v", email, err)
			}
		}
		if f.store.Invitations().Len() != 2 {
			t.Fatalf("expected invitations unchanged")
		}
	})

	t.Run("send success", func(t *testing.T) {
		f := newFixture()
		session := staticSession{user: entities.SessionUser{ID: "1", Name: "Gestora"}, ok: true}
		uc := NewInvitationUseCase(f.store.Invitations(), f.notifications, session, f.ids, f.clock)

		inv, err := uc.Send(ctx, InvitationInput{Email: " rui@obras.pt ", Name: "Rui", Role: "Empreiteiro"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Email != "rui@obras.pt" || inv.Status != entities.InvitationStatusEnviado || inv.SentDate != "2024-02-01" || inv.SentBy != "Gestora" {
			t.Fatalf("unexpected invitation: %+v", inv)
		}
		n := f.lastNotification(t)
		if n.Title != "Convite Enviado" || n.Description != "Convite enviado para rui@obras.pt." {
			t.Fatalf("unexpected notification: %+v", n)
		}
	})
}

func TestInvitationUseCase_SendBulk(t *testing.T) {
	ctx := context.Background()

	t.Run("one bad address stores nothing", func(t *testing.T) {
		f := newFixture()
		uc := NewInvitationUseCase(f.store.Invitations(), f.notifications, nil, f.ids, f.clock)

		if _, err := uc.SendBulk(ctx, []string{"a@b.pt", "x"}); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
		if f.store.Invitations().Len() != 2 {
			t.Fatalf("expected invitations unchanged")
		}
		if _, err := uc.SendBulk(ctx, []string{" ", ""}); !errors.Is(err, ErrNoInvitationEmails) {
			t.Fatalf("expected ErrNoInvitationEmails, got %v", err)
		}
	})

	t.Run("bulk success", func(t *testing.T) {
		f := newFixture()
		uc := NewInvitationUseCase(f.store.Invitations(), f.notifications, nil, f.ids, f.clock)

		out, err := uc.SendBulk(ctx, []string{"a@b.pt", "", "c@d.pt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 || out[0].SentBy != "Administrador" || out[1].Name != "" {
			t.Fatalf("unexpected invitations: %+v", out)
		}
		if f.notificationCount(t) != 4 {
			t.Fatalf("expected exactly one notification, got %d", f.notificationCount(t)-3)
		}
		n := f.lastNotification(t)
		if n.Title != "Convites Enviados" || n.Description != "2 convites enviados." {
			t.Fatalf("unexpected notification: %+v", n)
		}
		all, _ := uc.List(ctx)
		if len(all) != 4 {
			t.Fatalf("expected 4 invitations, got %d", len(all))
		}
	})
}
