package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"

	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/usecase/interfaces"
)

var (
	ErrObraNotFound  = errors.New("obra not found")
	ErrInvalidObraID = errors.New("invalid obra id")
	ErrInvalidObra   = errors.New("invalid obra")
)

type IObraUseCase interface {
	List(ctx context.Context, filter analytics.ObraFilter, sortBy analytics.ObraSort) ([]entities.Obra, error)
	Regions(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (entities.Obra, error)
	Overview(ctx context.Context, id string) (analytics.ObraOverview, error)
	Add(ctx context.Context, o entities.Obra) (entities.Obra, error)
	Update(ctx context.Context, id string, patch entities.ObraPatch) (entities.Obra, error)
	Delete(ctx context.Context, id string) error
	AssignUser(ctx context.Context, obraID, userID string) (entities.Obra, error)
}

type ObraUseCase struct {
	repo          interfaces.IObraRepository
	budgets       interfaces.IBudgetRepository
	visitas       interfaces.IVisitaRepository
	users         interfaces.IUserRepository
	notifications *NotificationUseCase
	ids           idgen.Generator
	clock         idgen.Clock
}

var _ IObraUseCase = (*ObraUseCase)(nil)

func NewObraUseCase(
	repo interfaces.IObraRepository,
	budgets interfaces.IBudgetRepository,
	visitas interfaces.IVisitaRepository,
	users interfaces.IUserRepository,
	notifications *NotificationUseCase,
	ids idgen.Generator,
	clock idgen.Clock,
) *ObraUseCase {
	ids, clock = orDefault(ids, clock)
	return &ObraUseCase{
		repo:          repo,
		budgets:       budgets,
		visitas:       visitas,
		users:         users,
		notifications: notifications,
		ids:           ids,
		clock:         clock,
	}
}

func (u *ObraUseCase) List(ctx context.Context, filter analytics.ObraFilter, sortBy analytics.ObraSort) ([]entities.Obra, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SortObras(analytics.FilterObras(all, filter), sortBy), nil
}

func (u *ObraUseCase) Regions(ctx context.Context) ([]string, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ObraRegions(all), nil
}

func (u *ObraUseCase) GetByID(ctx context.Context, id string) (entities.Obra, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Obra{}, ErrInvalidObraID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Obra{}, err
	}
	if o.ID == "" {
		return entities.Obra{}, ErrObraNotFound
	}
	return o, nil
}

func (u *ObraUseCase) Overview(ctx context.Context, id string) (analytics.ObraOverview, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return analytics.ObraOverview{}, err
	}
	budgets, err := u.budgets.List(ctx)
	if err != nil {
		return analytics.ObraOverview{}, err
	}
	visitas, err := u.visitas.List(ctx)
	if err != nil {
		return analytics.ObraOverview{}, err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return analytics.ObraOverview{}, err
	}
	return analytics.BuildObraOverview(o, budgets, visitas, users), nil
}

// Add submits a new obra. Whatever the caller sends, a submitted obra starts
// pending, with no progress and nobody assigned.
func (u *ObraUseCase) Add(ctx context.Context, o entities.Obra) (entities.Obra, error) {
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" || o.EstimatedBudget.IsNegative() {
		return entities.Obra{}, ErrInvalidObra
	}
	o.Status = entities.ObraStatusPendente
	o.Progress = 0
	o.CreatedDate = idgen.Today(u.clock)
	o.AssignedUsers = []string{}

	created, err := createWithFreshID(ctx, u.repo, u.ids, func(id string) entities.Obra {
		o.ID = id
		return o
	})
	if err != nil {
		return entities.Obra{}, err
	}

	u.notifications.notify(ctx, NotificationInput{
		Type:        entities.NotificationTypeObra,
		Title:       "Nova Obra Submetida",
		Description: created.Name + " foi submetida para análise.",
		Link:        "/dashboard/obras",
	})
	return created, nil
}

func (u *ObraUseCase) Update(ctx context.Context, id string, patch entities.ObraPatch) (entities.Obra, error) {
	return u.mutate(ctx, id, patch.Apply)
}

// Delete leaves budgets and visitas of the obra in place.
func (u *ObraUseCase) Delete(ctx context.Context, id string) error {
	id, ok := normalizeID(id)
	if !ok {
		return ErrInvalidObraID
	}
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrObraNotFound
	}
	return nil
}

// AssignUser adds a roster member to the obra team. Assigning twice is a no-op.
func (u *ObraUseCase) AssignUser(ctx context.Context, obraID, userID string) (entities.Obra, error) {
	userID, ok := normalizeID(userID)
	if !ok {
		return entities.Obra{}, ErrInvalidUserID
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.Obra{}, err
	}
	if user.ID == "" {
		return entities.Obra{}, ErrUserNotFound
	}
	return u.mutate(ctx, obraID, func(o *entities.Obra) {
		if !slices.Contains(o.AssignedUsers, userID) {
			o.AssignedUsers = append(o.AssignedUsers, userID)
		}
	})
}

func (u *ObraUseCase) mutate(ctx context.Context, id string, fn func(*entities.Obra)) (entities.Obra, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Obra{}, ErrInvalidObraID
	}
	updated, err := u.repo.Mutate(ctx, id, fn)
	if err != nil {
		return entities.Obra{}, err
	}
	if updated.ID == "" {
		return entities.Obra{}, ErrObraNotFound
	}
	return updated, nil
}
