package interfaces

import (
	"context"

	"moap_dashboard/internal/domain/entities"
)

// IPriceGateway abstracts the external market-price provider.
type IPriceGateway interface {
	SyncPrices(ctx context.Context, req entities.PriceSyncRequest) (entities.PriceSyncResponse, error)
}
