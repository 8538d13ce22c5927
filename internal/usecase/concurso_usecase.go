package usecase

import (
	"context"
	"errors"
	"slices"

	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/usecase/interfaces"
)

var (
	ErrConcursoNotFound  = errors.New("concurso not found")
	ErrInvalidConcursoID = errors.New("invalid concurso id")
	ErrNoUsersToInvite   = errors.New("no users to invite")
)

type IConcursoUseCase interface {
	List(ctx context.Context, filter analytics.ConcursoFilter) ([]entities.Concurso, error)
	GetByID(ctx context.Context, id string) (entities.Concurso, error)
	DaysUntilDeadline(ctx context.Context, id string) (int, bool, error)
	InviteUser(ctx context.Context, concursoID, userID string) (entities.Concurso, error)
	InviteUsers(ctx context.Context, concursoID string, userIDs []string) (entities.Concurso, error)
}

type ConcursoUseCase struct {
	repo          interfaces.IConcursoRepository
	users         interfaces.IUserRepository
	notifications *NotificationUseCase
	clock         idgen.Clock
}

var _ IConcursoUseCase = (*ConcursoUseCase)(nil)

func NewConcursoUseCase(repo interfaces.IConcursoRepository, users interfaces.IUserRepository, notifications *NotificationUseCase, clock idgen.Clock) *ConcursoUseCase {
	_, clock = orDefault(nil, clock)
	return &ConcursoUseCase{repo: repo, users: users, notifications: notifications, clock: clock}
}

func (u *ConcursoUseCase) List(ctx context.Context, filter analytics.ConcursoFilter) ([]entities.Concurso, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FilterConcursos(all, filter), nil
}

func (u *ConcursoUseCase) GetByID(ctx context.Context, id string) (entities.Concurso, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Concurso{}, ErrInvalidConcursoID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Concurso{}, err
	}
	if c.ID == "" {
		return entities.Concurso{}, ErrConcursoNotFound
	}
	return c, nil
}

// DaysUntilDeadline reports false when the deadline is not a valid date.
func (u *ConcursoUseCase) DaysUntilDeadline(ctx context.Context, id string) (int, bool, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return 0, false, err
	}
	days, ok := analytics.DaysUntil(c.Deadline, u.clock.Now())
	return days, ok, nil
}

// InviteUser records the user on the tender. Ids outside the roster are
// recorded too, but only a known user produces a notification. Inviting the
// same user twice changes nothing.
func (u *ConcursoUseCase) InviteUser(ctx context.Context, concursoID, userID string) (entities.Concurso, error) {
	userID, ok := normalizeID(userID)
	if !ok {
		return entities.Concurso{}, ErrInvalidUserID
	}
	concursoID, ok = normalizeID(concursoID)
	if !ok {
		return entities.Concurso{}, ErrInvalidConcursoID
	}

	added := false
	updated, err := u.repo.Mutate(ctx, concursoID, func(c *entities.Concurso) {
		if !slices.Contains(c.InvitedUsers, userID) {
			c.InvitedUsers = append(c.InvitedUsers, userID)
			added = true
		}
	})
	if err != nil {
		return entities.Concurso{}, err
	}
	if updated.ID == "" {
		return entities.Concurso{}, ErrConcursoNotFound
	}
	if !added {
		return updated, nil
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.Concurso{}, err
	}
	if user.ID != "" {
		u.notifications.notify(ctx, NotificationInput{
			Type:        entities.NotificationTypeConcurso,
			Title:       "Convite Enviado",
			Description: user.Name + " foi convidado para " + updated.Title + ".",
			Link:        "/dashboard/concursos",
		})
	}
	return updated, nil
}

func (u *ConcursoUseCase) InviteUsers(ctx context.Context, concursoID string, userIDs []string) (entities.Concurso, error) {
	if len(userIDs) == 0 {
		return entities.Concurso{}, ErrNoUsersToInvite
	}
	for _, id := range userIDs {
		if _, ok := normalizeID(id); !ok {
			return entities.Concurso{}, ErrInvalidUserID
		}
	}
	var (
		updated entities.Concurso
		err     error
	)
	for _, id := range userIDs {
		updated, err = u.InviteUser(ctx, concursoID, id)
		if err != nil {
			return entities.Concurso{}, err
		}
	}
	return updated, nil
}
