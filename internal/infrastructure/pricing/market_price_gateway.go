// Package pricing talks to the market-price provider used by the price sync.
package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/usecase/interfaces"
)

var (
	ErrMissingPriceSyncEndpoint  = errors.New("missing PRICE_SYNC_ENDPOINT")
	ErrPriceGatewayNotConfigured = errors.New("price gateway not configured")
)

// Mock variations fall in [mockMinVariation, mockMinVariation+mockSpread).
const (
	mockSource       = "mercado português"
	mockConfidence   = 0.85
	mockMinVariation = -0.15
	mockSpread       = 0.4
	maxResponseBytes = 1 << 20
)

type Config struct {
	Endpoint string
	Mock     bool
	Timeout  time.Duration
}

// MarketPriceGateway posts the material list to the provider endpoint, or
// simulates market movement in mock mode.
type MarketPriceGateway struct {
	endpoint string
	client   *http.Client
	mockMode bool
	random   func() float64
	log      *logrus.Entry
}

var _ interfaces.IPriceGateway = (*MarketPriceGateway)(nil)

func NewMarketPriceGateway(cfg Config, log *logrus.Entry) (*MarketPriceGateway, error) {
	if cfg.Mock {
		log.Info("mock mode enabled")
		return &MarketPriceGateway{mockMode: true, random: rand.Float64, log: log}, nil
	}
	if cfg.Endpoint == "" {
		log.Error("missing PRICE_SYNC_ENDPOINT")
		return nil, ErrMissingPriceSyncEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	log.WithField("endpoint", cfg.Endpoint).Info("price provider client initialized")
	return &MarketPriceGateway{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}, nil
}

func (g *MarketPriceGateway) SyncPrices(ctx context.Context, req entities.PriceSyncRequest) (entities.PriceSyncResponse, error) {
	if g != nil && g.mockMode {
		return g.mockSync(req), nil
	}
	if g == nil || g.client == nil {
		return entities.PriceSyncResponse{}, ErrPriceGatewayNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return entities.PriceSyncResponse{}, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return entities.PriceSyncResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	g.log.WithField("materials", len(req.Materials)).Debug("sync start")
	resp, err := g.client.Do(httpReq)
	if err != nil {
		g.log.WithError(err).Error("provider request failed")
		return entities.PriceSyncResponse{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return entities.PriceSyncResponse{}, err
	}

	var out entities.PriceSyncResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		g.log.WithError(err).WithField("status", resp.StatusCode).Error("provider response unreadable")
		return entities.PriceSyncResponse{}, fmt.Errorf("price provider: status %d: %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= http.StatusBadRequest && out.Success {
		return entities.PriceSyncResponse{}, fmt.Errorf("price provider: status %d", resp.StatusCode)
	}
	g.log.WithFields(logrus.Fields{"status": resp.StatusCode, "updates": len(out.Updates), "success": out.Success}).Info("sync done")
	return out, nil
}

// mockSync moves every price by a random variation and rounds to cents.
func (g *MarketPriceGateway) mockSync(req entities.PriceSyncRequest) entities.PriceSyncResponse {
	updates := make([]entities.PriceUpdate, 0, len(req.Materials))
	for _, m := range req.Materials {
		variation := mockMinVariation + g.random()*mockSpread
		newPrice := m.Price.Mul(decimal.NewFromFloat(1 + variation)).Round(2)
		updates = append(updates, entities.PriceUpdate{
			ID:         m.ID,
			Name:       m.Name,
			OldPrice:   m.Price,
			NewPrice:   newPrice,
			Change:     variation * 100,
			Source:     mockSource,
			Confidence: mockConfidence,
		})
	}
	g.log.WithField("updates", len(updates)).Info("mock sync done")
	return entities.PriceSyncResponse{Success: true, Updates: updates}
}
