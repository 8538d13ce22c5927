package interfaces

import "moap_dashboard/internal/domain/entities"

// IBudgetExporter renders a budget as a downloadable document.
type IBudgetExporter interface {
	ContentType() string
	FileExtension() string
	ExportBudget(b entities.Budget) ([]byte, error)
}
