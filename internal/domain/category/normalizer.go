// Package category normaliza las etiquetas de categoría de las planillas
// (texto libre, abreviaturas, errores de tipeo) a un conjunto fijo de códigos
// canónicos. Es deliberadamente permisivo: una categoría desconocida cae al
// código por defecto en vez de frenar la importación.
package category

import "strings"

// Códigos canónicos de categoría.
const (
	CodeDamas      = "DAM" // ropa de dama
	CodeCaballeros = "CAB" // ropa de caballero
	CodeNinos      = "NIN" // ropa de niños
	CodeInterior   = "RI"  // ropa interior
	CodeCalzado    = "CAL" // calzado
	CodeAccesorios = "ACC" // accesorios
	CodeHogar      = "HOG" // hogar y lencería de casa
	CodeJuguetes   = "JUG" // juguetes
	CodeElectro    = "ELE" // electrónica menor
	CodeVariedades = "VIB" // variedades / misceláneo (por defecto)
)

// DefaultCode es el código aplicado cuando la etiqueta no se reconoce.
const DefaultCode = CodeVariedades

var canonical = map[string]struct{}{
	CodeDamas: {}, CodeCaballeros: {}, CodeNinos: {}, CodeInterior: {},
	CodeCalzado: {}, CodeAccesorios: {}, CodeHogar: {}, CodeJuguetes: {},
	CodeElectro: {}, CodeVariedades: {},
}

// alias asocia una etiqueta (ya en minúsculas) con su código canónico.
type alias struct {
	Label string
	Code  string
}

// aliases es la tabla de sinónimos, traducciones y typos frecuentes vistos en
// planillas reales. Es un slice y no un map porque el fallback parcial recorre
// en orden y gana la primera coincidencia: el orden es parte del contrato.
var aliases = []alias{
	{"damas", CodeDamas},
	{"dama", CodeDamas},
	{"mujer", CodeDamas},
	{"mujeres", CodeDamas},
	{"ropa de dama", CodeDamas},
	{"women", CodeDamas},
	{"caballeros", CodeCaballeros},
	{"caballero", CodeCaballeros},
	{"hombre", CodeCaballeros},
	{"hombres", CodeCaballeros},
	{"ropa de caballero", CodeCaballeros},
	{"men", CodeCaballeros},
	{"niños", CodeNinos},
	{"ninos", CodeNinos},
	{"niñas", CodeNinos},
	{"ninas", CodeNinos},
	{"infantil", CodeNinos},
	{"kids", CodeNinos},
	{"bebes", CodeNinos},
	{"ropa interior", CodeInterior},
	{"ropa interior ", CodeInterior}, // variante con espacio final vista en planillas
	{"interior", CodeInterior},
	{"interiores", CodeInterior},
	{"lenceria", CodeInterior},
	{"calzado", CodeCalzado},
	{"zapatos", CodeCalzado},
	{"zapatillas", CodeCalzado},
	{"shoes", CodeCalzado},
	{"accesorios", CodeAccesorios},
	{"acesorios", CodeAccesorios}, // typo frecuente
	{"accesorio", CodeAccesorios},
	{"carteras", CodeAccesorios},
	{"bolsos", CodeAccesorios},
	{"hogar", CodeHogar},
	{"casa", CodeHogar},
	{"sabanas", CodeHogar},
	{"cortinas", CodeHogar},
	{"juguetes", CodeJuguetes},
	{"juguete", CodeJuguetes},
	{"toys", CodeJuguetes},
	{"electronica", CodeElectro},
	{"electronicos", CodeElectro},
	{"electro", CodeElectro},
	{"variedades", CodeVariedades},
	{"varios", CodeVariedades},
	{"miscelaneo", CodeVariedades},
	{"misceláneo", CodeVariedades},
	{"otros", CodeVariedades},
}

// Normalize mapea una etiqueta de categoría de texto libre a su código
// canónico. Vacío o desconocido -> DefaultCode.
func Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return DefaultCode
	}

	// Códigos canónicos escritos tal cual (en cualquier casing) pasan directo.
	upper := strings.ToUpper(trimmed)
	if _, ok := canonical[upper]; ok {
		return upper
	}

	lower := strings.ToLower(trimmed)
	for _, a := range aliases {
		if lower == a.Label {
			return a.Code
		}
	}

	// Fallback parcial: alias sin sus propios espacios, o prefijo. Ojo: el
	// chequeo de prefijo puede enganchar un alias corto dentro de una
	// etiqueta larga no relacionada; es comportamiento observado y las
	// capas superiores dependen de él tal cual.
	for _, a := range aliases {
		if lower == strings.TrimSpace(a.Label) || strings.HasPrefix(lower, a.Label) {
			return a.Code
		}
	}

	return DefaultCode
}
