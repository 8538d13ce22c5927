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
	ErrMaterialNotFound  = errors.New("material not found")
	ErrInvalidMaterialID = errors.New("invalid material id")
	ErrInvalidMaterial   = errors.New("invalid material")
)

type IMaterialUseCase interface {
	List(ctx context.Context, filter analytics.MaterialFilter) ([]entities.Material, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	Add(ctx context.Context, material entities.Material) (entities.Material, error)
	Update(ctx context.Context, id string, patch entities.MaterialPatch) (entities.Material, error)
	Delete(ctx context.Context, id string) error
}

type MaterialUseCase struct {
	repo          interfaces.IMaterialRepository
	notifications *NotificationUseCase
	ids           idgen.Generator
	clock         idgen.Clock
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository, notifications *NotificationUseCase, ids idgen.Generator, clock idgen.Clock) *MaterialUseCase {
	ids, clock = orDefault(ids, clock)
	return &MaterialUseCase{repo: repo, notifications: notifications, ids: ids, clock: clock}
}

func (u *MaterialUseCase) List(ctx context.Context, filter analytics.MaterialFilter) ([]entities.Material, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FilterMaterials(all, filter), nil
}

func (u *MaterialUseCase) Categories(ctx context.Context) ([]string, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.MaterialCategories(all), nil
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id string) (entities.Material, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Material{}, ErrInvalidMaterialID
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

// Add appends the material under a new id. The id of m is ignored.
func (u *MaterialUseCase) Add(ctx context.Context, m entities.Material) (entities.Material, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" || m.Price.IsNegative() {
		return entities.Material{}, ErrInvalidMaterial
	}
	if m.Type == "" {
		m.Type = entities.MaterialTypeMaterial
	}
	if m.LastUpdated.IsZero() {
		m.LastUpdated = idgen.Today(u.clock)
	}

	created, err := createWithFreshID(ctx, u.repo, u.ids, func(id string) entities.Material {
		m.ID = id
		return m
	})
	if err != nil {
		return entities.Material{}, err
	}

	u.notifications.notify(ctx, NotificationInput{
		Type:        entities.NotificationTypeSystem,
		Title:       "Material Adicionado",
		Description: created.Name + " foi adicionado à lista.",
		Link:        "/dashboard/prices",
	})
	return created, nil
}

// Update merges the set fields of patch. Values are not validated.
func (u *MaterialUseCase) Update(ctx context.Context, id string, patch entities.MaterialPatch) (entities.Material, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Material{}, ErrInvalidMaterialID
	}
	updated, err := u.repo.Mutate(ctx, id, patch.Apply)
	if err != nil {
		return entities.Material{}, err
	}
	if updated.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return updated, nil
}

// Delete does not cascade: budget items keep their copied material fields.
func (u *MaterialUseCase) Delete(ctx context.Context, id string) error {
	id, ok := normalizeID(id)
	if !ok {
		return ErrInvalidMaterialID
	}
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrMaterialNotFound
	}
	return nil
}
