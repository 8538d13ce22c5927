package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"moap_dashboard/internal/domain/entities"
)

func TestXLSXBudgetExporter(t *testing.T) {
	b := entities.Budget{
		ID:          "1",
		Name:        "Orçamento Inicial",
		ObraName:    "Edifício Residencial Sol Nascente",
		CreatedDate: "2024-01-20",
		Status:      entities.BudgetStatusFinalizado,
		Items: []entities.BudgetItem{
			{ID: "1", MaterialName: "Cimento Portland", Category: "Estrutura", Unit: "kg", Quantity: decimal.NewFromInt(5000), UnitPrice: decimal.RequireFromString("0.15")},
			{ID: "2", MaterialName: "Areia Grossa", Category: "Estrutura", Unit: "m³", Quantity: decimal.NewFromInt(120), UnitPrice: decimal.NewFromInt(45)},
		},
	}

	exp := NewXLSXBudgetExporter()
	assert.Equal(t, ".xlsx", exp.FileExtension())
	assert.Contains(t, exp.ContentType(), "spreadsheetml")

	data, err := exp.ExportBudget(b)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orçamento")
	require.NoError(t, err)
	require.Len(t, rows, 9)

	assert.Equal(t, []string{"Orçamento", "Orçamento Inicial"}, rows[0])
	assert.Equal(t, []string{"Estado", "finalizado"}, rows[3])
	assert.Equal(t, []string{"Material", "Categoria", "Unidade", "Quantidade", "Preço Unitário", "Total"}, rows[5])
	assert.Equal(t, []string{"Cimento Portland", "Estrutura", "kg", "5000", "0.15", "750"}, rows[6])
	assert.Equal(t, []string{"Areia Grossa", "Estrutura", "m³", "120", "45", "5400"}, rows[7])
	assert.Equal(t, "Total", rows[8][4])
	assert.Equal(t, "6150", rows[8][5])
}

func TestXLSXBudgetExporter_EmptyBudget(t *testing.T) {
	data, err := NewXLSXBudgetExporter().ExportBudget(entities.Budget{ID: "x", Name: "Vazio"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	total, err := f.GetCellValue("Orçamento", "F7")
	require.NoError(t, err)
	assert.Equal(t, "0", total)
}
