package entities

import "github.com/shopspring/decimal"

// MaterialType distinguishes priced materials from labour lines.
type MaterialType string

const (
	MaterialTypeMaterial MaterialType = "material"
	MaterialTypeWork     MaterialType = "work"
)

// Material is a line of the reference price list.
//
// Price may be overwritten wholesale by a price sync; LastUpdated records the
// day of the last overwrite.
type Material struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Type        MaterialType    `json:"type,omitempty"`
	Region      string          `json:"region,omitempty"`
	LastUpdated Date            `json:"lastUpdated,omitempty"`
}

func (m Material) EntityID() string { return m.ID }

func (m Material) Clone() Material { return m }

// MaterialPatch carries the fields of a partial material update. Nil fields are
// left untouched.
type MaterialPatch struct {
	Name        *string
	Unit        *string
	Price       *decimal.Decimal
	Category    *string
	Type        *MaterialType
	Region      *string
	LastUpdated *Date
}

func (p MaterialPatch) Apply(m *Material) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Unit != nil {
		m.Unit = *p.Unit
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Region != nil {
		m.Region = *p.Region
	}
	if p.LastUpdated != nil {
		m.LastUpdated = *p.LastUpdated
	}
}
