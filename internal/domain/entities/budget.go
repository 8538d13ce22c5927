package entities

import "github.com/shopspring/decimal"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// The progression rascunho -> finalizado -> enviado is a convention of the
// dashboard; the store accepts any value.
type BudgetStatus string

const (
	BudgetStatusRascunho   BudgetStatus = "rascunho"
	BudgetStatusFinalizado BudgetStatus = "finalizado"
	BudgetStatusEnviado    BudgetStatus = "enviado"
)

// BudgetItem is one priced line of a budget.
//
// MaterialName, Unit, Category and UnitPrice are copied from the material when
// the line is added; later material changes do not propagate.
type BudgetItem struct {
	ID           string          `json:"id"`
	MaterialID   string          `json:"materialId"`
	MaterialName string          `json:"materialName"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Category     string          `json:"category"`
}

func (i BudgetItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Budget is an itemized cost estimate for an obra.
//
// ObraName is denormalized at creation time and goes stale if the obra is
// renamed. The total is always derived from Items.
type Budget struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	ObraID      string       `json:"obraId"`
	ObraName    string       `json:"obraName"`
	CreatedDate Date         `json:"createdDate"`
	Status      BudgetStatus `json:"status"`
	Items       []BudgetItem `json:"items"`
}

func (b Budget) EntityID() string { return b.ID }

func (b Budget) Clone() Budget {
	if b.Items != nil {
		items := make([]BudgetItem, len(b.Items))
		copy(items, b.Items)
		b.Items = items
	}
	return b
}

// Total folds quantity x unitPrice over the items.
func (b Budget) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range b.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

type BudgetPatch struct {
	Name     *string
	ObraID   *string
	ObraName *string
	Status   *BudgetStatus
	Items    *[]BudgetItem
}

func (p BudgetPatch) Apply(b *Budget) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.ObraID != nil {
		b.ObraID = *p.ObraID
	}
	if p.ObraName != nil {
		b.ObraName = *p.ObraName
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Items != nil {
		items := make([]BudgetItem, len(*p.Items))
		copy(items, *p.Items)
		b.Items = items
	}
}

// BudgetItemPatch edits a line after it was added.
type BudgetItemPatch struct {
	Quantity  *decimal.Decimal
	UnitPrice *decimal.Decimal
}

func (p BudgetItemPatch) Apply(it *BudgetItem) {
	if p.Quantity != nil {
		it.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		it.UnitPrice = *p.UnitPrice
	}
}
