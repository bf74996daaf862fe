// Package matchkey deriva la huella con la que se detecta que dos filas de
// una misma importación denotan el mismo artículo real. La clave vive solo
// durante la corrida (mapa en memoria); no es identidad persistente.
package matchkey

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/pacas-api/internal/domain/entity"
	"github.com/tu-usuario/pacas-api/internal/domain/identifier"
)

// Derive construye la clave de coincidencia del registro. Función pura de
// los campos del registro.
//
// Formato numerado: paca|producto|nombre|categoría — el ordinal embebido ya
// es único dentro de su paca por convención de origen, así que la clave
// resiste ediciones de marca/color/talla.
//
// Formato legado: paca|nombre|categoría|marca|color|talla — sin ordinal
// embebido, la tupla descriptiva completa es la mejor huella disponible.
func Derive(rec *entity.InventoryRecord) string {
	if rec.Format == identifier.FormatNumbered && rec.ProductSequence != nil {
		return strings.Join([]string{
			normalize(rec.BatchNumber),
			strconv.Itoa(*rec.ProductSequence),
			normalize(rec.Name),
			normalize(rec.Category),
		}, "|")
	}
	return strings.Join([]string{
		normalize(rec.BatchNumber),
		normalize(rec.Name),
		normalize(rec.Category),
		normalize(rec.Brand),
		normalize(rec.Color),
		normalize(rec.Size),
	}, "|")
}

// normalize recorta, pasa a minúsculas y normaliza a Unicode NFC. Los
// literales "undefined"/"null" se tratan como vacío: se cuelan desde el
// almacenamiento upstream cuando la celda nunca tuvo valor.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "undefined" || s == "null" {
		return ""
	}
	return norm.NFC.String(s)
}
