package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/usecase/interfaces"
)

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrNoInvitationEmails = errors.New("no invitation emails")
)

type InvitationInput struct {
	Email string
	Name  string
	Role  string
}

type IInvitationUseCase interface {
	List(ctx context.Context) ([]entities.Invitation, error)
	Send(ctx context.Context, in InvitationInput) (entities.Invitation, error)
	SendBulk(ctx context.Context, emails []string) ([]entities.Invitation, error)
}

type InvitationUseCase struct {
	repo          interfaces.IInvitationRepository
	notifications *NotificationUseCase
	sessions      SessionSource
	validate      *validator.Validate
	ids           idgen.Generator
	clock         idgen.Clock
}

var _ IInvitationUseCase = (*InvitationUseCase)(nil)

func NewInvitationUseCase(
	repo interfaces.IInvitationRepository,
	notifications *NotificationUseCase,
	sessions SessionSource,
	ids idgen.Generator,
	clock idgen.Clock,
) *InvitationUseCase {
	ids, clock = orDefault(ids, clock)
	return &InvitationUseCase{
		repo:          repo,
		notifications: notifications,
		sessions:      sessions,
		validate:      validator.New(),
		ids:           ids,
		clock:         clock,
	}
}

func (u *InvitationUseCase) List(ctx context.Context) ([]entities.Invitation, error) {
	return u.repo.List(ctx)
}

func (u *InvitationUseCase) Send(ctx context.Context, in InvitationInput) (entities.Invitation, error) {
	email, err := u.checkEmail(in.Email)
	if err != nil {
		return entities.Invitation{}, err
	}
	in.Email = email
	inv, err := u.create(ctx, in)
	if err != nil {
		return entities.Invitation{}, err
	}
	u.notifications.notify(ctx, NotificationInput{
		Type:        entities.NotificationTypeSystem,
		Title:       "Convite Enviado",
		Description: "Convite enviado para " + inv.Email + ".",
	})
	return inv, nil
}

// SendBulk invites every address or none: all addresses are validated before
// the first invitation is stored.
func (u *InvitationUseCase) SendBulk(ctx context.Context, emails []string) ([]entities.Invitation, error) {
	cleaned := make([]string, 0, len(emails))
	for _, e := range emails {
		if strings.TrimSpace(e) == "" {
			continue
		}
		email, err := u.checkEmail(e)
		if err != nil {
			return nil, err
		}
		cleaned = append(cleaned, email)
	}
	if len(cleaned) == 0 {
		return nil, ErrNoInvitationEmails
	}

	out := make([]entities.Invitation, 0, len(cleaned))
	for _, email := range cleaned {
		inv, err := u.create(ctx, InvitationInput{Email: email})
		if err != nil {
			return out, err
		}
		out = append(out, inv)
	}
	u.notifications.notify(ctx, NotificationInput{
		Type:        entities.NotificationTypeSystem,
		Title:       "Convites Enviados",
		Description: strconv.Itoa(len(out)) + " convites enviados.",
	})
	return out, nil
}

func (u *InvitationUseCase) create(ctx context.Context, in InvitationInput) (entities.Invitation, error) {
	sentBy := actingUser(ctx, u.sessions).Name
	return createWithFreshID(ctx, u.repo, u.ids, func(id string) entities.Invitation {
		return entities.Invitation{
			ID:       id,
			Email:    in.Email,
			Name:     strings.TrimSpace(in.Name),
			Role:     strings.TrimSpace(in.Role),
			Status:   entities.InvitationStatusEnviado,
			SentDate: idgen.Today(u.clock),
			SentBy:   sentBy,
		}
	})
}

func (u *InvitationUseCase) checkEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if err := u.validate.Var(email, "required,email"); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}
