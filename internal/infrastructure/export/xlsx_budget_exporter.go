// Package export renders budgets as spreadsheets.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/usecase/interfaces"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheetName       = "Orçamento"
	itemsHeaderRow  = 6
)

var itemHeadings = []string{"Material", "Categoria", "Unidade", "Quantidade", "Preço Unitário", "Total"}

// XLSXBudgetExporter writes one sheet: the budget details, a row per item and
// a closing total row.
type XLSXBudgetExporter struct{}

var _ interfaces.IBudgetExporter = XLSXBudgetExporter{}

func NewXLSXBudgetExporter() XLSXBudgetExporter { return XLSXBudgetExporter{} }

func (XLSXBudgetExporter) ContentType() string   { return xlsxContentType }
func (XLSXBudgetExporter) FileExtension() string { return ".xlsx" }

func (XLSXBudgetExporter) ExportBudget(b entities.Budget) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	details := [][2]string{
		{"Orçamento", b.Name},
		{"Obra", b.ObraName},
		{"Data", string(b.CreatedDate)},
		{"Estado", string(b.Status)},
	}
	for i, d := range details {
		row := i + 1
		if err := setRow(f, row, d[0], d[1]); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell(1, row), cell(1, row), bold); err != nil {
			return nil, err
		}
	}

	headings := make([]any, len(itemHeadings))
	for i, h := range itemHeadings {
		headings[i] = h
	}
	if err := setRow(f, itemsHeaderRow, headings...); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, cell(1, itemsHeaderRow), cell(len(itemHeadings), itemsHeaderRow), bold); err != nil {
		return nil, err
	}

	row := itemsHeaderRow
	for _, it := range b.Items {
		row++
		err := setRow(f, row,
			it.MaterialName,
			it.Category,
			it.Unit,
			it.Quantity.InexactFloat64(),
			it.UnitPrice.InexactFloat64(),
			it.LineTotal().InexactFloat64(),
		)
		if err != nil {
			return nil, err
		}
	}

	row++
	if err := f.SetCellValue(sheetName, cell(5, row), "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, cell(6, row), b.Total().InexactFloat64()); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, cell(5, row), cell(6, row), bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "A", "A", 32); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values ...any) error {
	for i, v := range values {
		if err := f.SetCellValue(sheetName, cell(i+1, row), v); err != nil {
			return err
		}
	}
	return nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
