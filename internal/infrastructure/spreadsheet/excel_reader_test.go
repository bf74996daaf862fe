package spreadsheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/pacas-api/internal/infrastructure/spreadsheet"
)

// buildWorkbook arma un XLSX en memoria: primera fila encabezados, resto datos.
func buildWorkbook(t *testing.T, sheet string, filas [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, fila := range filas {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &fila))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadRows_EncabezadosNormalizados(t *testing.T) {
	buf := buildWorkbook(t, "Pacas", [][]any{
		{" Paca ", "NOMBRE", "Cantidad"},
		{"1/20", "Camisa", "3"},
	})

	sheet, rows, err := spreadsheet.NewExcelReader("").ReadRows(buf)
	require.NoError(t, err)
	assert.Equal(t, "Pacas", sheet)
	require.Len(t, rows, 1)

	// encabezados en minúsculas y recortados
	assert.Equal(t, "1/20", rows[0].Cells["paca"])
	assert.Equal(t, "Camisa", rows[0].Cells["nombre"])
	assert.Equal(t, "3", rows[0].Cells["cantidad"])
}

func TestReadRows_IndexEsLaFilaRealDeLaHoja(t *testing.T) {
	buf := buildWorkbook(t, "Pacas", [][]any{
		{"paca", "nombre"},
		{"20", "Camisa"},
		{"", ""}, // fila vacía: se salta pero no corre la numeración
		{"20", "Gorra"},
	})

	_, rows, err := spreadsheet.NewExcelReader("").ReadRows(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Index)
	assert.Equal(t, 4, rows[1].Index, "la fila vacía intermedia conserva la numeración de la hoja")
}

func TestReadRows_HojaConfigurada(t *testing.T) {
	buf := buildWorkbook(t, "Inventario", [][]any{
		{"paca", "nombre"},
		{"7", "Gorra"},
	})

	sheet, rows, err := spreadsheet.NewExcelReader("Inventario").ReadRows(buf)
	require.NoError(t, err)
	assert.Equal(t, "Inventario", sheet)
	assert.Len(t, rows, 1)
}

func TestReadRows_HojaInexistente(t *testing.T) {
	buf := buildWorkbook(t, "Pacas", [][]any{{"paca"}, {"7"}})

	_, _, err := spreadsheet.NewExcelReader("NoExiste").ReadRows(buf)
	assert.Error(t, err)
}

func TestReadRows_ArchivoIlegible(t *testing.T) {
	_, _, err := spreadsheet.NewExcelReader("").ReadRows(strings.NewReader("esto no es un xlsx"))
	assert.Error(t, err, "un archivo corrupto es fallo duro, la corrida nunca arranca")
}

func TestReadRows_SoloEncabezado(t *testing.T) {
	buf := buildWorkbook(t, "Pacas", [][]any{{"paca", "nombre"}})

	_, rows, err := spreadsheet.NewExcelReader("").ReadRows(buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
