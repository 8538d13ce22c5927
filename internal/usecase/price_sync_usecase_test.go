package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/infrastructure/logger"
	mock_interfaces "moap_dashboard/internal/usecase/interfaces/mocks"
)

type countingRecorder struct{ total int }

func (r *countingRecorder) RecordPriceUpdates(n int) { r.total += n }

func TestPriceSyncUseCase_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPriceGateway(ctrl)
		f := newFixture()
		uc := NewPriceSyncUseCase(f.store.Materials(), gateway, f.notifications, nil, f.clock, logger.Discard())

		gateway.EXPECT().SyncPrices(gomock.Any(), gomock.Any()).Return(entities.PriceSyncResponse{}, errors.New("timeout"))

		if _, err := uc.Sync(ctx); !errors.Is(err, ErrPriceSyncFailed) {
			t.Fatalf("expected ErrPriceSyncFailed, got %v", err)
		}
	})

	t.Run("unsuccessful response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPriceGateway(ctrl)
		f := newFixture()
		uc := NewPriceSyncUseCase(f.store.Materials(), gateway, f.notifications, nil, f.clock, logger.Discard())

		gateway.EXPECT().SyncPrices(gomock.Any(), gomock.Any()).Return(entities.PriceSyncResponse{Success: false, Error: "Failed to sync prices"}, nil)

		if _, err := uc.Sync(ctx); !errors.Is(err, ErrPriceSyncFailed) {
			t.Fatalf("expected ErrPriceSyncFailed, got %v", err)
		}
		m, _ := f.store.Materials().GetByID(ctx, "1")
		if !m.Price.Equal(decimal.RequireFromString("0.15")) {
			t.Fatalf("expected price unchanged, got %s", m.Price)
		}
	})

	t.Run("applies only known materials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPriceGateway(ctrl)
		f := newFixture()
		rec := &countingRecorder{}
		uc := NewPriceSyncUseCase(f.store.Materials(), gateway, f.notifications, rec, f.clock, logger.Discard())

		gateway.EXPECT().SyncPrices(gomock.Any(), gomock.AssignableToTypeOf(entities.PriceSyncRequest{})).DoAndReturn(
			func(_ context.Context, req entities.PriceSyncRequest) (entities.PriceSyncResponse, error) {
				if len(req.Materials) != 10 || req.Materials[2].Name != "Areia Grossa" || !req.Materials[2].Price.Equal(decimal.NewFromInt(45)) {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.PriceSyncResponse{Success: true, Updates: []entities.PriceUpdate{
					{ID: "3", Name: "Areia Grossa", OldPrice: decimal.NewFromInt(45), NewPrice: decimal.RequireFromString("47.25"), Change: 5},
					{ID: "ghost", Name: "Fantasma", NewPrice: decimal.NewFromInt(1)},
				}}, nil
			},
		)

		applied, err := uc.Sync(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(applied) != 1 || applied[0].ID != "3" || rec.total != 1 {
			t.Fatalf("expected one applied update, got %+v", applied)
		}
		m, _ := f.store.Materials().GetByID(ctx, "3")
		if !m.Price.Equal(decimal.RequireFromString("47.25")) || m.LastUpdated != "2024-02-01" {
			t.Fatalf("unexpected material: %+v", m)
		}
		if f.store.Materials().Len() != 10 {
			t.Fatalf("expected unknown material not created")
		}
		n := f.lastNotification(t)
		if n.Title != "Preços Atualizados" {
			t.Fatalf("unexpected notification: %+v", n)
		}
	})
}
