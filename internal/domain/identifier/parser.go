// Package identifier parsea los identificadores de paca que vienen en las
// planillas de importación. Conviven dos esquemas: el legado, un número de
// paca a secas ("20"), y el numerado, "producto/paca" ("001/20" = producto 1
// de la paca 20 — el primer grupo es SIEMPRE el producto, el segundo la paca).
package identifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Formato del identificador de paca.
const (
	FormatLegacy   = "legacy"   // número de paca a secas
	FormatNumbered = "numbered" // producto/paca
)

var (
	numberedRe  = regexp.MustCompile(`^\s*(\d+)\s*[/\\-]\s*(\d+)\s*$`)
	legacyRe    = regexp.MustCompile(`^\s*(\d+)\s*$`)
	nonDigitsRe = regexp.MustCompile(`\D`)
)

// ParsedIdentifier es el resultado estructurado de parsear un identificador.
// ProductSequence está presente si y solo si Format == FormatNumbered.
// BatchNumber siempre es una cadena numérica no vacía ("0" si no se pudo parsear).
type ParsedIdentifier struct {
	Raw             string
	Format          string
	BatchNumber     string
	ProductSequence *int
}

// IsNumbered indica si el identificador es del formato numerado (producto/paca).
func (p ParsedIdentifier) IsNumbered() bool {
	return p.Format == FormatNumbered
}

// Parse convierte el valor crudo de la celda en un ParsedIdentifier.
// Es total: nunca falla, para cualquier entrada (nil, número, texto basura)
// devuelve el mejor resultado posible. El resto del pipeline cuenta con eso.
func Parse(value any) ParsedIdentifier {
	raw := cellString(value)
	if strings.TrimSpace(raw) == "" {
		return ParsedIdentifier{Raw: "", Format: FormatLegacy, BatchNumber: "0"}
	}

	if m := numberedRe.FindStringSubmatch(raw); m != nil {
		// Primer grupo = producto, segundo = paca. No invertir: la
		// convención de origen es "número de producto / número de paca".
		seq, _ := strconv.Atoi(m[1])
		batch := canonicalNumber(m[2])
		return ParsedIdentifier{Raw: raw, Format: FormatNumbered, BatchNumber: batch, ProductSequence: &seq}
	}

	if m := legacyRe.FindStringSubmatch(raw); m != nil {
		return ParsedIdentifier{Raw: raw, Format: FormatLegacy, BatchNumber: canonicalNumber(m[1])}
	}

	// Fallback: quedarse solo con los dígitos. Celdas tipo "Paca 20" o
	// "#20" terminan como legado de la paca 20.
	digits := nonDigitsRe.ReplaceAllString(raw, "")
	if digits == "" {
		return ParsedIdentifier{Raw: raw, Format: FormatLegacy, BatchNumber: "0"}
	}
	return ParsedIdentifier{Raw: raw, Format: FormatLegacy, BatchNumber: canonicalNumber(digits)}
}

// IsNumberedFormat verifica si el valor crudo tiene forma "producto/paca".
// Predicado puro para validación en capas superiores; debe coincidir con
// la rama numerada de Parse.
func IsNumberedFormat(value any) bool {
	return numberedRe.MatchString(cellString(value))
}

// IsLegacyFormat verifica si el valor crudo es un número de paca a secas.
// Excluye explícitamente todo lo que matchee el formato numerado, de modo
// que ambos predicados son mutuamente excluyentes.
func IsLegacyFormat(value any) bool {
	s := cellString(value)
	return legacyRe.MatchString(s) && !numberedRe.MatchString(s)
}

// Format renderiza el identificador en forma canónica: "producto/paca" para
// el numerado, el número de paca para el legado. No conserva el separador ni
// los ceros a la izquierda del valor original.
func Format(p ParsedIdentifier) string {
	if p.Format == FormatNumbered && p.ProductSequence != nil {
		return fmt.Sprintf("%d/%s", *p.ProductSequence, p.BatchNumber)
	}
	return p.BatchNumber
}

// canonicalNumber normaliza el grupo de dígitos a decimal canónico
// ("001" -> "1"); si todo son ceros queda "0".
func canonicalNumber(digits string) string {
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Números de paca absurdamente largos: recortar ceros a mano.
		trimmed := strings.TrimLeft(digits, "0")
		if trimmed == "" {
			return "0"
		}
		return trimmed
	}
	return strconv.Itoa(n)
}

// cellString coerciona el valor de la celda a texto. Las planillas entregan
// strings, números o nil según cómo Excel tipó la celda.
func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// Celdas numéricas: 20.0 debe leerse "20", no "20.000000".
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}
