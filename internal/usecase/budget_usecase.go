package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/usecase/interfaces"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrInvalidBudgetID     = errors.New("invalid budget id")
	ErrInvalidBudget       = errors.New("invalid budget")
	ErrBudgetItemNotFound  = errors.New("budget item not found")
	ErrInvalidBudgetItemID = errors.New("invalid budget item id")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrExportNotConfigured = errors.New("budget export not configured")
)

// BudgetExport is a rendered budget document.
type BudgetExport struct {
	FileName    string
	ContentType string
	Content     []byte
}

type IBudgetUseCase interface {
	List(ctx context.Context, filter analytics.BudgetFilter) ([]entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Add(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Update(ctx context.Context, id string, patch entities.BudgetPatch) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	AddItem(ctx context.Context, budgetID, materialID string, quantity decimal.Decimal) (entities.Budget, error)
	UpdateItem(ctx context.Context, budgetID, itemID string, patch entities.BudgetItemPatch) (entities.Budget, error)
	RemoveItem(ctx context.Context, budgetID, itemID string) (entities.Budget, error)
	Duplicate(ctx context.Context, id string) (entities.Budget, error)
	Finalize(ctx context.Context, id string) (entities.Budget, error)
	MarkSent(ctx context.Context, id string) (entities.Budget, error)
	Export(ctx context.Context, id string) (BudgetExport, error)
}

type BudgetUseCase struct {
	repo          interfaces.IBudgetRepository
	materials     interfaces.IMaterialRepository
	obras         interfaces.IObraRepository
	notifications *NotificationUseCase
	exporter      interfaces.IBudgetExporter
	ids           idgen.Generator
	clock         idgen.Clock
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	materials interfaces.IMaterialRepository,
	obras interfaces.IObraRepository,
	notifications *NotificationUseCase,
	exporter interfaces.IBudgetExporter,
	ids idgen.Generator,
	clock idgen.Clock,
) *BudgetUseCase {
	ids, clock = orDefault(ids, clock)
	return &BudgetUseCase{
		repo:          repo,
		materials:     materials,
		obras:         obras,
		notifications: notifications,
		exporter:      exporter,
		ids:           ids,
		clock:         clock,
	}
}

func (u *BudgetUseCase) List(ctx context.Context, filter analytics.BudgetFilter) ([]entities.Budget, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FilterBudgets(all, filter), nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// Add creates a budget. A missing obra name is resolved from the obra; a
// missing status defaults to draft and every item gets a fresh id.
func (u *BudgetUseCase) Add(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return entities.Budget{}, ErrInvalidBudget
	}
	b.ObraID = strings.TrimSpace(b.ObraID)
	if b.ObraName == "" && b.ObraID != "" {
		o, err := u.obras.GetByID(ctx, b.ObraID)
		if err != nil {
			return entities.Budget{}, err
		}
		if o.ID == "" {
			return entities.Budget{}, ErrObraNotFound
		}
		b.ObraName = o.Name
	}
	if b.ObraName == "" {
		return entities.Budget{}, ErrInvalidBudget
	}
	if b.Status == "" {
		b.Status = entities.BudgetStatusRascunho
	}
	if b.CreatedDate.IsZero() {
		b.CreatedDate = idgen.Today(u.clock)
	}
	items := make([]entities.BudgetItem, len(b.Items))
	for i, it := range b.Items {
		it.ID = u.ids.NewID()
		items[i] = it
	}
	b.Items = items

	created, err := createWithFreshID(ctx, u.repo, u.ids, func(id string) entities.Budget {
		b.ID = id
		return b
	})
	if err != nil {
		return entities.Budget{}, err
	}

	u.notifications.notify(ctx, NotificationInput{
		Type:        entities.NotificationTypeBudget,
		Title:       "Orçamento Criado",
		Description: created.Name + " foi criado.",
		Link:        "/dashboard/orcamentos",
	})
	return created, nil
}

func (u *BudgetUseCase) Update(ctx context.Context, id string, patch entities.BudgetPatch) (entities.Budget, error) {
	return u.mutate(ctx, id, patch.Apply)
}

func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	id, ok := normalizeID(id)
	if !ok {
		return ErrInvalidBudgetID
	}
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrBudgetNotFound
	}
	return nil
}

// AddItem appends a line priced from the material as it is now. Later
// material changes are not reflected in the line.
func (u *BudgetUseCase) AddItem(ctx context.Context, budgetID, materialID string, quantity decimal.Decimal) (entities.Budget, error) {
	if !quantity.IsPositive() {
		return entities.Budget{}, ErrInvalidQuantity
	}
	materialID, ok := normalizeID(materialID)
	if !ok {
		return entities.Budget{}, ErrInvalidMaterialID
	}
	m, err := u.materials.GetByID(ctx, materialID)
	if err != nil {
		return entities.Budget{}, err
	}
	if m.ID == "" {
		return entities.Budget{}, ErrMaterialNotFound
	}

	item := entities.BudgetItem{
		ID:           u.ids.NewID(),
		MaterialID:   m.ID,
		MaterialName: m.Name,
		Unit:         m.Unit,
		Quantity:     quantity,
		UnitPrice:    m.Price,
		Category:     m.Category,
	}
	return u.mutate(ctx, budgetID, func(b *entities.Budget) {
		b.Items = append(b.Items, item)
	})
}

// UpdateItem edits quantity and/or unit price of one line.
func (u *BudgetUseCase) UpdateItem(ctx context.Context, budgetID, itemID string, patch entities.BudgetItemPatch) (entities.Budget, error) {
	itemID, ok := normalizeID(itemID)
	if !ok {
		return entities.Budget{}, ErrInvalidBudgetItemID
	}
	if patch.Quantity != nil && !patch.Quantity.IsPositive() {
		return entities.Budget{}, ErrInvalidQuantity
	}
	found := false
	b, err := u.mutate(ctx, budgetID, func(b *entities.Budget) {
		for i := range b.Items {
			if b.Items[i].ID == itemID {
				patch.Apply(&b.Items[i])
				found = true
				return
			}
		}
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if !found {
		return entities.Budget{}, ErrBudgetItemNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) RemoveItem(ctx context.Context, budgetID, itemID string) (entities.Budget, error) {
	itemID, ok := normalizeID(itemID)
	if !ok {
		return entities.Budget{}, ErrInvalidBudgetItemID
	}
	found := false
	b, err := u.mutate(ctx, budgetID, func(b *entities.Budget) {
		kept := make([]entities.BudgetItem, 0, len(b.Items))
		for _, it := range b.Items {
			if it.ID == itemID && !found {
				found = true
				continue
			}
			kept = append(kept, it)
		}
		b.Items = kept
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if !found {
		return entities.Budget{}, ErrBudgetItemNotFound
	}
	return b, nil
}

// Duplicate copies a budget as a new draft dated today, with fresh item ids.
func (u *BudgetUseCase) Duplicate(ctx context.Context, id string) (entities.Budget, error) {
	src, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	cp := src.Clone()
	cp.Name = src.Name + " (Cópia)"
	cp.Status = entities.BudgetStatusRascunho
	cp.CreatedDate = idgen.Today(u.clock)
	for i := range cp.Items {
		cp.Items[i].ID = u.ids.NewID()
	}
	if cp.Items == nil {
		cp.Items = []entities.BudgetItem{}
	}
	return createWithFreshID(ctx, u.repo, u.ids, func(newID string) entities.Budget {
		cp.ID = newID
		return cp
	})
}

func (u *BudgetUseCase) Finalize(ctx context.Context, id string) (entities.Budget, error) {
	return u.setStatus(ctx, id, entities.BudgetStatusFinalizado)
}

func (u *BudgetUseCase) MarkSent(ctx context.Context, id string) (entities.Budget, error) {
	return u.setStatus(ctx, id, entities.BudgetStatusEnviado)
}

func (u *BudgetUseCase) Export(ctx context.Context, id string) (BudgetExport, error) {
	if u.exporter == nil {
		return BudgetExport{}, ErrExportNotConfigured
	}
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return BudgetExport{}, err
	}
	content, err := u.exporter.ExportBudget(b)
	if err != nil {
		return BudgetExport{}, err
	}
	return BudgetExport{
		FileName:    exportFileName(b) + u.exporter.FileExtension(),
		ContentType: u.exporter.ContentType(),
		Content:     content,
	}, nil
}

func (u *BudgetUseCase) setStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	return u.mutate(ctx, id, func(b *entities.Budget) { b.Status = status })
}

func (u *BudgetUseCase) mutate(ctx context.Context, id string, fn func(*entities.Budget)) (entities.Budget, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	updated, err := u.repo.Mutate(ctx, id, fn)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

// exportFileName builds an ASCII file name from the budget name, e.g.
// "Orçamento Inicial" becomes "orcamento-Orcamento_Inicial".
func exportFileName(b entities.Budget) string {
	plain, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), b.Name)
	if err != nil {
		plain = b.Name
	}
	var sb strings.Builder
	sb.WriteString("orcamento-")
	for _, r := range plain {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteRune('_')
		}
	}
	if sb.Len() == len("orcamento-") {
		sb.WriteString(b.ID)
	}
	return sb.String()
}
