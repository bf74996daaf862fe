package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Row es una fila cruda de la planilla: celdas indexadas por nombre de
// columna (encabezado en minúsculas y sin espacios en los extremos, como las
// entrega el lector de planillas). Index es el número de fila en la hoja de
// origen, para los mensajes de error.
type Row struct {
	Index int
	Cells map[string]any
}

// Nombres de columna reconocidos, con sus alias en orden de preferencia.
// "observaciones" y "notas" son columnas distintas a propósito: la primera se
// mina para inferir estado/atribución, la segunda pasa tal cual.
var (
	colIdentifier = []string{"paca", "lote", "drop", "nro paca", "codigo paca"}
	colName       = []string{"nombre", "producto", "descripcion", "articulo"}
	colQuantity   = []string{"cantidad", "cant", "unidades", "qty"}
	colUnitPrice  = []string{"precio", "precio unitario", "precio venta", "valor"}
	colCategory   = []string{"categoria", "categoría", "cat", "tipo"}
	colBrand      = []string{"marca"}
	colColor      = []string{"color"}
	colSize       = []string{"talla", "tamaño", "size"}
	colAnnotation = []string{"observaciones", "observacion", "estado"}
	colUserNotes  = []string{"notas", "comentarios"}
)

// cell devuelve el valor de la primera columna presente entre los alias.
func (r Row) cell(aliases []string) any {
	for _, name := range aliases {
		if v, ok := r.Cells[name]; ok {
			return v
		}
	}
	return nil
}

// stringCell coerciona una celda a texto recortado.
func stringCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(c)
	case float64:
		if c == float64(int64(c)) {
			return strconv.FormatInt(int64(c), 10)
		}
		return strconv.FormatFloat(c, 'f', -1, 64)
	case int:
		return strconv.Itoa(c)
	default:
		return strings.TrimSpace(fmt.Sprint(c))
	}
}

// intCell coerciona una celda a entero no negativo. Celda vacía -> def.
// Texto no numérico o valor negativo son errores recuperables de fila.
func intCell(v any, def int) (int, error) {
	switch c := v.(type) {
	case nil:
		return def, nil
	case int:
		if c < 0 {
			return 0, fmt.Errorf("valor negativo: %d", c)
		}
		return c, nil
	case float64:
		if c != float64(int64(c)) {
			return 0, fmt.Errorf("no es un entero: %v", c)
		}
		if c < 0 {
			return 0, fmt.Errorf("valor negativo: %v", c)
		}
		return int(c), nil
	case string:
		s := strings.TrimSpace(c)
		if s == "" {
			return def, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("no es un entero: %q", s)
		}
		if n < 0 {
			return 0, fmt.Errorf("valor negativo: %d", n)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("tipo de celda inesperado: %T", v)
	}
}

// decimalCell coerciona una celda a decimal no negativo. Vacía -> cero.
// Acepta coma decimal ("1.500,50" no; "1500,50" sí) porque las planillas
// vienen con ambos formatos según la configuración regional.
func decimalCell(v any) (decimal.Decimal, error) {
	switch c := v.(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		d := decimal.NewFromFloat(c)
		if d.IsNegative() {
			return decimal.Zero, fmt.Errorf("valor negativo: %v", c)
		}
		return d, nil
	case int:
		if c < 0 {
			return decimal.Zero, fmt.Errorf("valor negativo: %d", c)
		}
		return decimal.NewFromInt(int64(c)), nil
	case string:
		s := strings.TrimSpace(c)
		if s == "" {
			return decimal.Zero, nil
		}
		if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
			s = strings.Replace(s, ",", ".", 1)
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("no es un número: %q", c)
		}
		if d.IsNegative() {
			return decimal.Zero, fmt.Errorf("valor negativo: %q", c)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("tipo de celda inesperado: %T", v)
	}
}
