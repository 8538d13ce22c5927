package entities

import "github.com/shopspring/decimal"

// PriceQuote is one material sent to the market-price provider.
type PriceQuote struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type PriceSyncRequest struct {
	Materials []PriceQuote `json:"materials"`
}

// PriceUpdate is the provider's suggestion for one material. Change is the
// relative variation in percent.
type PriceUpdate struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	OldPrice   decimal.Decimal `json:"oldPrice"`
	NewPrice   decimal.Decimal `json:"newPrice"`
	Change     float64         `json:"change"`
	Source     string          `json:"source"`
	Confidence float64         `json:"confidence"`
}

type PriceSyncResponse struct {
	Success bool          `json:"success"`
	Updates []PriceUpdate `json:"updates"`
	Error   string        `json:"error,omitempty"`
}
