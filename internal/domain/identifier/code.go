package identifier

import (
	"fmt"
	"regexp"
	"strconv"
)

// Formato externo de los códigos escaneables (los lee el flujo de lectura de
// etiquetas, no cambiar sin migrar las etiquetas ya impresas):
//
//	numerado: DRP-{paca}-{producto, 3 dígitos}   ej. DRP-20-001
//	legado:   LOT-{paca}-{secuencia, 3 dígitos}  ej. LOT-7-004
//
// El prefijo distingue los dos esquemas, y de ambos se recupera el número de
// paca con DecodeCode. Para el numerado se usa el número de producto embebido
// en el identificador de origen (estable entre re-importaciones); para el
// legado no existe tal número, así que se usa la secuencia asignada por el
// pipeline dentro de la corrida.
const (
	codePrefixNumbered = "DRP"
	codePrefixLegacy   = "LOT"
)

var codeRe = regexp.MustCompile(`^(DRP|LOT)-(\d+)-(\d+)$`)

// GenerateCode deriva el código escaneable a partir del identificador parseado
// y la secuencia de importación. Función pura: mismos argumentos, mismo código.
func GenerateCode(p ParsedIdentifier, importSequence int) string {
	if p.Format == FormatNumbered && p.ProductSequence != nil {
		return fmt.Sprintf("%s-%s-%03d", codePrefixNumbered, p.BatchNumber, *p.ProductSequence)
	}
	return fmt.Sprintf("%s-%s-%03d", codePrefixLegacy, p.BatchNumber, importSequence)
}

// EncodeCode arma un código a partir de sus componentes ya decodificados.
// Es la inversa de DecodeCode; la usa la búsqueda por código escaneado para
// probar la interpretación alternativa.
func EncodeCode(format, batchNumber string, sequence int) string {
	prefix := codePrefixLegacy
	if format == FormatNumbered {
		prefix = codePrefixNumbered
	}
	return fmt.Sprintf("%s-%s-%03d", prefix, batchNumber, sequence)
}

// DecodedCode es el resultado de descomponer un código escaneado.
type DecodedCode struct {
	Format      string // FormatNumbered o FormatLegacy según el prefijo
	BatchNumber string
	Sequence    int // producto (DRP) o secuencia de importación (LOT)
}

// DecodeCode descompone un código escaneado y recupera el número de paca.
// ok es false si el texto no tiene la forma de un código generado aquí.
func DecodeCode(code string) (DecodedCode, bool) {
	m := codeRe.FindStringSubmatch(code)
	if m == nil {
		return DecodedCode{}, false
	}
	format := FormatLegacy
	if m[1] == codePrefixNumbered {
		format = FormatNumbered
	}
	seq, _ := strconv.Atoi(m[3])
	return DecodedCode{Format: format, BatchNumber: canonicalNumber(m[2]), Sequence: seq}, true
}
