package usecase

import (
	"context"
	"errors"
	"strings"

	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/usecase/interfaces"
)

var (
	ErrVisitaNotFound  = errors.New("visita not found")
	ErrInvalidVisitaID = errors.New("invalid visita id")
	ErrInvalidVisita   = errors.New("invalid visita")
)

type IVisitaUseCase interface {
	List(ctx context.Context, filter analytics.VisitaFilter) ([]entities.Visita, error)
	Upcoming(ctx context.Context, limit int) ([]entities.Visita, error)
	GetByID(ctx context.Context, id string) (entities.Visita, error)
	Add(ctx context.Context, v entities.Visita) (entities.Visita, error)
	Update(ctx context.Context, id string, patch entities.VisitaPatch) (entities.Visita, error)
	Delete(ctx context.Context, id string) error
}

type VisitaUseCase struct {
	repo          interfaces.IVisitaRepository
	obras         interfaces.IObraRepository
	notifications *NotificationUseCase
	ids           idgen.Generator
}

var _ IVisitaUseCase = (*VisitaUseCase)(nil)

func NewVisitaUseCase(repo interfaces.IVisitaRepository, obras interfaces.IObraRepository, notifications *NotificationUseCase, ids idgen.Generator) *VisitaUseCase {
	ids, _ = orDefault(ids, nil)
	return &VisitaUseCase{repo: repo, obras: obras, notifications: notifications, ids: ids}
}

func (u *VisitaUseCase) List(ctx context.Context, filter analytics.VisitaFilter) ([]entities.Visita, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FilterVisitas(all, filter), nil
}

func (u *VisitaUseCase) Upcoming(ctx context.Context, limit int) ([]entities.Visita, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.UpcomingVisitas(all, limit), nil
}

func (u *VisitaUseCase) GetByID(ctx context.Context, id string) (entities.Visita, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Visita{}, ErrInvalidVisitaID
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Visita{}, err
	}
	if v.ID == "" {
		return entities.Visita{}, ErrVisitaNotFound
	}
	return v, nil
}

// Add schedules a visit. The obra name is taken from the obra when the caller
// leaves it empty.
func (u *VisitaUseCase) Add(ctx context.Context, v entities.Visita) (entities.Visita, error) {
	v.ObraID = strings.TrimSpace(v.ObraID)
	if v.ObraID == "" || v.Date.IsZero() {
		return entities.Visita{}, ErrInvalidVisita
	}
	if v.ObraName == "" {
		o, err := u.obras.GetByID(ctx, v.ObraID)
		if err != nil {
			return entities.Visita{}, err
		}
		if o.ID == "" {
			return entities.Visita{}, ErrObraNotFound
		}
		v.ObraName = o.Name
	}
	v.Status = entities.VisitaStatusAgendada

	created, err := createWithFreshID(ctx, u.repo, u.ids, func(id string) entities.Visita {
		v.ID = id
		return v
	})
	if err != nil {
		return entities.Visita{}, err
	}

	u.notifications.notify(ctx, NotificationInput{
		Type:        entities.NotificationTypeVisit,
		Title:       "Visita Agendada",
		Description: "Visita a " + created.ObraName + " agendada para " + string(created.Date) + ".",
		Link:        "/dashboard/visitas",
	})
	return created, nil
}

func (u *VisitaUseCase) Update(ctx context.Context, id string, patch entities.VisitaPatch) (entities.Visita, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Visita{}, ErrInvalidVisitaID
	}
	updated, err := u.repo.Mutate(ctx, id, patch.Apply)
	if err != nil {
		return entities.Visita{}, err
	}
	if updated.ID == "" {
		return entities.Visita{}, ErrVisitaNotFound
	}
	return updated, nil
}

func (u *VisitaUseCase) Delete(ctx context.Context, id string) error {
	id, ok := normalizeID(id)
	if !ok {
		return ErrInvalidVisitaID
	}
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrVisitaNotFound
	}
	return nil
}
