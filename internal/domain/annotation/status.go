// Package annotation infiere estado y atribución de venta a partir del texto
// libre de observaciones de la planilla. Es extracción heurística por
// patrones, no una gramática: una anotación ambigua o malformada produce
// ausencia, nunca un error.
package annotation

import (
	"regexp"
	"strings"
)

// Estados de ciclo de vida de un registro de inventario.
const (
	StatusAvailable   = "available"
	StatusSold        = "sold"
	StatusDonated     = "donated"
	StatusReserved    = "reserved"
	StatusPromotional = "promotional"
	StatusReview      = "review"
	StatusExpired     = "expired"
	StatusLost        = "lost"
)

// statusRule asocia un patrón con el estado que implica.
type statusRule struct {
	Pattern *regexp.Regexp
	Status  string
}

// statusRules se evalúa en orden y gana la primera coincidencia. El orden es
// política: "vendido" se chequea primero porque una observación puede
// mencionar varias palabras clave ("vendido, estaba reservado") y la venta
// manda. No reordenar.
var statusRules = []statusRule{
	{regexp.MustCompile(`(?i)vendid[oa]s?|sold`), StatusSold},
	{regexp.MustCompile(`(?i)donad[oa]s?|regalad[oa]s?`), StatusDonated},
	{regexp.MustCompile(`(?i)reservad[oa]s?|apartad[oa]s?`), StatusReserved},
	{regexp.MustCompile(`(?i)promoci[oó]n|promo\b|oferta`), StatusPromotional},
	{regexp.MustCompile(`(?i)revisar|revisi[oó]n|verificar|por confirmar`), StatusReview},
	{regexp.MustCompile(`(?i)vencid[oa]s?|caducad[oa]s?`), StatusExpired},
	{regexp.MustCompile(`(?i)perdid[oa]s?|extraviad[oa]s?`), StatusLost},
}

// InferStatus deduce el estado a partir del texto de observaciones.
// Vacío o sin coincidencias -> StatusAvailable.
func InferStatus(text string) string {
	if text == "" {
		return StatusAvailable
	}
	for _, rule := range statusRules {
		if rule.Pattern.MatchString(text) {
			return rule.Status
		}
	}
	return StatusAvailable
}

// Attribution nombres extraídos de la observación: quién vendió y a quién.
// Campo vacío = no se pudo extraer.
type Attribution struct {
	SoldBy string
	SoldTo string
}

// Los prefijos etiquetados se intentan en orden; para cada campo gana el
// primer patrón que matchee. El nombre capturado corta en coma, punto y
// coma o fin de línea.
var (
	soldByPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)vendedor[a]?\s*:\s*([^,;\n]+)`),
		regexp.MustCompile(`(?i)vendid[oa]s?\s+por[\s:]\s*([^,;\n]+)`),
	}
	soldToPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)cliente\s*:\s*([^,;\n]+)`),
		// [\s:] tras la "a" evita capturar palabras que empiezan con a
		// ("vendida ayer" no es "vendida a Yer").
		regexp.MustCompile(`(?i)vendid[oa]s?\s+a[\s:]\s*([^,;\n]+)`),
	}
)

// ExtractAttribution extrae "vendido por" y "vendido a" del texto de
// observaciones. Sin coincidencias devuelve campos vacíos.
func ExtractAttribution(text string) Attribution {
	var attr Attribution
	if text == "" {
		return attr
	}
	for _, re := range soldByPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			attr.SoldBy = trimName(m[1])
			break
		}
	}
	for _, re := range soldToPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			attr.SoldTo = trimName(m[1])
			break
		}
	}
	return attr
}

var spacesRe = regexp.MustCompile(`\s+`)

// trimName colapsa espacios internos y recorta extremos.
func trimName(s string) string {
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}
