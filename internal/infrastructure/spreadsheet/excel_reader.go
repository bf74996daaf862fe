// Package spreadsheet lee planillas XLSX y las materializa como filas crudas
// para el pipeline de importación. Es el colaborador de E/S del pipeline: si
// el archivo no se puede abrir, el error es duro y la corrida nunca arranca.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/pacas-api/internal/application/importer"
)

// ExcelReader lee la primera hoja (o una hoja fija configurada) de un XLSX.
type ExcelReader struct {
	sheetName string // vacío = primera hoja del libro
}

var _ importer.RowReader = (*ExcelReader)(nil)

// NewExcelReader construye el lector. sheetName vacío usa la primera hoja.
func NewExcelReader(sheetName string) *ExcelReader {
	return &ExcelReader{sheetName: sheetName}
}

// ReadRows abre el libro, ubica la hoja y devuelve las filas de datos con las
// celdas indexadas por encabezado (minúsculas, recortado). La primera fila es
// el encabezado; las filas totalmente vacías se saltan. Index conserva el
// número de fila real de la hoja para que los errores sean rastreables.
func (r *ExcelReader) ReadRows(src io.Reader) (string, []importer.Row, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return "", nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	sheet := r.sheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return "", nil, fmt.Errorf("el libro no tiene hojas")
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return "", nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return sheet, nil, nil
	}

	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []importer.Row
	for idx := 1; idx < len(raw); idx++ {
		cells := raw[idx]
		if isEmptyRow(cells) {
			continue
		}
		rowCells := make(map[string]any, len(headers))
		for col, header := range headers {
			if header == "" || col >= len(cells) {
				continue
			}
			rowCells[header] = cells[col]
		}
		// idx+1 = número de fila en la hoja (1-based, encabezado incluido)
		rows = append(rows, importer.Row{Index: idx + 1, Cells: rowCells})
	}
	return sheet, rows, nil
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
