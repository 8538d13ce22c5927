package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/usecase/interfaces"
	mock_interfaces "moap_dashboard/internal/usecase/interfaces/mocks"
)

func TestMaterialUseCase_Add(t *testing.T) {
	t.Run("invalid material", func(t *testing.T) {
		f := newFixture()
		uc := NewMaterialUseCase(f.store.Materials(), f.notifications, f.ids, f.clock)

		for _, m := range []entities.Material{
			{Name: "   ", Price: decimal.NewFromInt(1)},
			{Name: "Gesso", Price: decimal.NewFromInt(-1)},
		} {
			if _, err := uc.Add(context.Background(), m); !errors.Is(err, ErrInvalidMaterial) {
				t.Fatalf("expected ErrInvalidMaterial, got %v", err)
			}
		}
		if f.store.Materials().Len() != 10 {
			t.Fatalf("expected materials unchanged")
		}
	})

	t.Run("add success", func(t *testing.T) {
		f := newFixture()
		uc := NewMaterialUseCase(f.store.Materials(), f.notifications, f.ids, f.clock)

		res, err := uc.Add(context.Background(), entities.Material{ID: "ignored", Name: " Gesso ", Unit: "kg", Price: decimal.RequireFromString("0.80"), Category: "Acabamentos"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "t-1" || res.Name != "Gesso" || res.Type != entities.MaterialTypeMaterial || res.LastUpdated != "2024-02-01" {
			t.Fatalf("unexpected material: %+v", res)
		}
		all, _ := f.store.Materials().List(context.Background())
		if len(all) != 11 || all[10].ID != "t-1" {
			t.Fatalf("expected material appended, got %d", len(all))
		}

		n := f.lastNotification(t)
		if n.Type != entities.NotificationTypeSystem || n.Title != "Material Adicionado" || n.Description != "Gesso foi adicionado à lista." || n.Read {
			t.Fatalf("unexpected notification: %+v", n)
		}
		if !n.Timestamp.Equal(testNow) {
			t.Fatalf("expected timestamp %v, got %v", testNow, n.Timestamp)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepository[entities.Material](ctrl)
		f := newFixture()
		uc := NewMaterialUseCase(repo, f.notifications, idgen.NewSequence("m"), f.clock)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Material{})).Return(entities.Material{}, errors.New("db"))

		_, err := uc.Add(context.Background(), entities.Material{Name: "Gesso"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if f.notificationCount(t) != 3 {
			t.Fatalf("expected no notification on failure")
		}
	})

	t.Run("duplicate id is retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepository[entities.Material](ctrl)
		f := newFixture()
		uc := NewMaterialUseCase(repo, f.notifications, idgen.NewSequence("m"), f.clock)

		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Material{}, interfaces.ErrDuplicateID),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, m entities.Material) (entities.Material, error) {
					if m.ID != "m-2" {
						t.Fatalf("expected second id, got %s", m.ID)
					}
					return m, nil
				},
			),
		)

		res, err := uc.Add(context.Background(), entities.Material{Name: "Gesso"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "m-2" {
			t.Fatalf("expected m-2, got %s", res.ID)
		}
	})
}

func TestMaterialUseCase_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		uc := NewMaterialUseCase(nil, nil, nil, nil)
		if _, err := uc.Update(ctx, " ", entities.MaterialPatch{}); !errors.Is(err, ErrInvalidMaterialID) {
			t.Fatalf("expected ErrInvalidMaterialID, got %v", err)
		}
		if err := uc.Delete(ctx, ""); !errors.Is(err, ErrInvalidMaterialID) {
			t.Fatalf("expected ErrInvalidMaterialID, got %v", err)
		}
		if _, err := uc.GetByID(ctx, ""); !errors.Is(err, ErrInvalidMaterialID) {
			t.Fatalf("expected ErrInvalidMaterialID, got %v", err)
		}
	})

	t.Run("update merges fields", func(t *testing.T) {
		f := newFixture()
		uc := NewMaterialUseCase(f.store.Materials(), f.notifications, f.ids, f.clock)
		price := decimal.RequireFromString("0.18")

		res, err := uc.Update(ctx, "1", entities.MaterialPatch{Price: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Price.Equal(price) || res.Name != "Cimento Portland" {
			t.Fatalf("unexpected material: %+v", res)
		}
	})

	t.Run("absent id", func(t *testing.T) {
		f := newFixture()
		uc := NewMaterialUseCase(f.store.Materials(), f.notifications, f.ids, f.clock)

		if _, err := uc.Update(ctx, "999", entities.MaterialPatch{}); !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
		if err := uc.Delete(ctx, "999"); !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
		if _, err := uc.GetByID(ctx, "999"); !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
		if f.store.Materials().Len() != 10 {
			t.Fatalf("expected materials unchanged")
		}
	})

	t.Run("delete keeps budget lines", func(t *testing.T) {
		f := newFixture()
		uc := NewMaterialUseCase(f.store.Materials(), f.notifications, f.ids, f.clock)

		if err := uc.Delete(ctx, "1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, _ := f.store.Budgets().GetByID(ctx, "1")
		if b.Items[0].MaterialName != "Cimento Portland" {
			t.Fatalf("expected budget item untouched, got %+v", b.Items[0])
		}
	})
}

func TestMaterialUseCase_ListAndCategories(t *testing.T) {
	f := newFixture()
	uc := NewMaterialUseCase(f.store.Materials(), f.notifications, f.ids, f.clock)

	res, err := uc.List(context.Background(), analytics.MaterialFilter{Category: "Estrutura"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 4 {
		t.Fatalf("expected 4 structural materials, got %d", len(res))
	}

	cats, err := uc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %v", cats)
	}
}
