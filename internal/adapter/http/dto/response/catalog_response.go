package response

import (
	"github.com/shopspring/decimal"

	"moap_dashboard/internal/domain/entities"
)

type MaterialResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Type        string          `json:"type,omitempty"`
	Region      string          `json:"region,omitempty"`
	LastUpdated string          `json:"last_updated,omitempty"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Unit:        m.Unit,
		Price:       m.Price,
		Category:    m.Category,
		Type:        string(m.Type),
		Region:      m.Region,
		LastUpdated: string(m.LastUpdated),
	}
}

func FromMaterials(ms []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMaterial(m))
	}
	return out
}

type PriceUpdateResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	OldPrice   decimal.Decimal `json:"old_price"`
	NewPrice   decimal.Decimal `json:"new_price"`
	Change     float64         `json:"change"`
	Source     string          `json:"source"`
	Confidence float64         `json:"confidence"`
}

type PriceSyncResponse struct {
	Updated int                   `json:"updated"`
	Updates []PriceUpdateResponse `json:"updates"`
}

func FromPriceUpdates(updates []entities.PriceUpdate) PriceSyncResponse {
	out := PriceSyncResponse{Updated: len(updates), Updates: make([]PriceUpdateResponse, 0, len(updates))}
	for _, u := range updates {
		out.Updates = append(out.Updates, PriceUpdateResponse{
			ID:         u.ID,
			Name:       u.Name,
			OldPrice:   u.OldPrice,
			NewPrice:   u.NewPrice,
			Change:     u.Change,
			Source:     u.Source,
			Confidence: u.Confidence,
		})
	}
	return out
}

type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Avatar   string `json:"avatar"`
	Online   bool   `json:"online"`
	JoinDate string `json:"join_date"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Company:  u.Company,
		Avatar:   u.Avatar,
		Online:   u.Online,
		JoinDate: string(u.JoinDate),
	}
}

func FromUsers(us []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromUser(u))
	}
	return out
}

type SessionResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}

func FromSessionUser(u entities.SessionUser) SessionResponse {
	return SessionResponse{ID: u.ID, Username: u.Username, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}
