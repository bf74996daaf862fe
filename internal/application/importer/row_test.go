package importer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pacas-api/internal/application/importer"
)

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// Las columnas tienen alias: "lote" y "drop" valen como identificador,
// "producto" como nombre, etc. El lector ya entrega los encabezados en
// minúsculas y recortados.
func TestRow_AliasDeColumnas(t *testing.T) {
	res := runPipeline(t, []importer.Row{
		{Index: 2, Cells: map[string]any{"lote": "1/20", "producto": "Camisa", "unidades": "2", "valor": "50"}},
	})

	require.Empty(t, res.Errors)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.Equal(t, "Camisa", rec.Name)
	assert.Equal(t, "20", rec.BatchNumber)
	assert.Equal(t, 2, rec.Quantity)
	assert.True(t, rec.UnitPrice.Equal(decimalFrom(t, "50")))
}

func TestRow_PrimerAliasPresenteGana(t *testing.T) {
	res := runPipeline(t, []importer.Row{
		{Index: 2, Cells: map[string]any{"paca": "7", "lote": "9", "nombre": "Camisa"}},
	})

	require.Len(t, res.Records, 1)
	assert.Equal(t, "7", res.Records[0].BatchNumber, "\"paca\" tiene prioridad sobre \"lote\"")
}

func TestRow_CeldasNumericasDeExcel(t *testing.T) {
	// excelize entrega celdas numéricas como float64
	res := runPipeline(t, []importer.Row{
		{Index: 2, Cells: map[string]any{"paca": float64(20), "nombre": "Camisa", "cantidad": float64(3), "precio": float64(99.5)}},
	})

	require.Empty(t, res.Errors)
	rec := res.Records[0]
	assert.Equal(t, "20", rec.BatchNumber)
	assert.Equal(t, 3, rec.Quantity)
	assert.True(t, rec.UnitPrice.Equal(decimalFrom(t, "99.5")))
}

func TestRow_PrecioConComaDecimal(t *testing.T) {
	res := runPipeline(t, []importer.Row{
		{Index: 2, Cells: map[string]any{"paca": "20", "nombre": "Camisa", "precio": "150,50"}},
	})

	require.Empty(t, res.Errors)
	assert.True(t, res.Records[0].UnitPrice.Equal(decimalFrom(t, "150.50")))
}

func TestRow_CantidadVaciaValeUno(t *testing.T) {
	res := runPipeline(t, []importer.Row{
		{Index: 2, Cells: map[string]any{"paca": "20", "nombre": "Camisa"}},
	})

	require.Empty(t, res.Errors)
	assert.Equal(t, 1, res.Records[0].Quantity, "sin columna de cantidad la fila vale una pieza")
}

func TestRow_CantidadDecimalEsError(t *testing.T) {
	res := runPipeline(t, []importer.Row{
		{Index: 2, Cells: map[string]any{"paca": "20", "nombre": "Camisa", "cantidad": float64(2.5)}},
	})

	assert.Len(t, res.Errors, 1)
	assert.Empty(t, res.Records)
}

func TestRow_PrecioNegativoEsError(t *testing.T) {
	res := runPipeline(t, []importer.Row{
		{Index: 2, Cells: map[string]any{"paca": "20", "nombre": "Camisa", "precio": "-10"}},
	})

	assert.Len(t, res.Errors, 1)
	assert.Empty(t, res.Records)
}
