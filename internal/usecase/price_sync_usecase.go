package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/usecase/interfaces"
)

var (
	ErrPriceSyncFailed   = errors.New("price sync failed")
	ErrNoMaterialsToSync = errors.New("no materials to sync")
)

// PriceSyncRecorder counts the price updates that were applied.
type PriceSyncRecorder interface {
	RecordPriceUpdates(n int)
}

type IPriceSyncUseCase interface {
	Sync(ctx context.Context) ([]entities.PriceUpdate, error)
}

type PriceSyncUseCase struct {
	materials     interfaces.IMaterialRepository
	gateway       interfaces.IPriceGateway
	notifications *NotificationUseCase
	recorder      PriceSyncRecorder
	clock         idgen.Clock
	log           *logrus.Entry
}

var _ IPriceSyncUseCase = (*PriceSyncUseCase)(nil)

func NewPriceSyncUseCase(
	materials interfaces.IMaterialRepository,
	gateway interfaces.IPriceGateway,
	notifications *NotificationUseCase,
	recorder PriceSyncRecorder,
	clock idgen.Clock,
	log *logrus.Entry,
) *PriceSyncUseCase {
	_, clock = orDefault(nil, clock)
	return &PriceSyncUseCase{
		materials:     materials,
		gateway:       gateway,
		notifications: notifications,
		recorder:      recorder,
		clock:         clock,
		log:           log,
	}
}

// Sync asks the provider for current prices of every material and overwrites
// the price of each material it knows about. Updates for ids that are not in
// the list (deleted meanwhile, or invented by the provider) are dropped.
func (u *PriceSyncUseCase) Sync(ctx context.Context) ([]entities.PriceUpdate, error) {
	materials, err := u.materials.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return nil, ErrNoMaterialsToSync
	}

	req := entities.PriceSyncRequest{Materials: make([]entities.PriceQuote, len(materials))}
	for i, m := range materials {
		req.Materials[i] = entities.PriceQuote{ID: m.ID, Name: m.Name, Price: m.Price}
	}

	resp, err := u.gateway.SyncPrices(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPriceSyncFailed, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrPriceSyncFailed, resp.Error)
	}

	today := idgen.Today(u.clock)
	applied := make([]entities.PriceUpdate, 0, len(resp.Updates))
	for _, up := range resp.Updates {
		if up.NewPrice.IsNegative() {
			u.log.WithField("material_id", up.ID).Warn("ignoring negative price")
			continue
		}
		updated, err := u.materials.Mutate(ctx, up.ID, func(m *entities.Material) {
			m.Price = up.NewPrice
			m.LastUpdated = today
		})
		if err != nil {
			return applied, err
		}
		if updated.ID == "" {
			continue
		}
		applied = append(applied, up)
	}

	if u.recorder != nil {
		u.recorder.RecordPriceUpdates(len(applied))
	}
	if len(applied) > 0 {
		u.notifications.notify(ctx, NotificationInput{
			Type:        entities.NotificationTypeSystem,
			Title:       "Preços Atualizados",
			Description: strconv.Itoa(len(applied)) + " preços atualizados com valores de mercado.",
			Link:        "/dashboard/prices",
		})
	}
	u.log.WithFields(logrus.Fields{"requested": len(materials), "applied": len(applied)}).Info("prices synced")
	return applied, nil
}
