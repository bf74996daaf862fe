package annotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/pacas-api/internal/domain/annotation"
)

// ──────────────────────────────────────────────────────────────────────────────
// InferStatus: tabla de patrones en orden de prioridad
// ──────────────────────────────────────────────────────────────────────────────

func TestInferStatus_CasosBasicos(t *testing.T) {
	cases := map[string]string{
		"Vendido a Juan":         annotation.StatusSold,
		"vendida ayer":           annotation.StatusSold,
		"VENDIDOS los 3":         annotation.StatusSold,
		"Donado a la escuela":    annotation.StatusDonated,
		"regalado":               annotation.StatusDonated,
		"Reservado para María":   annotation.StatusReserved,
		"apartada":               annotation.StatusReserved,
		"en promoción":           annotation.StatusPromotional,
		"oferta 2x1":             annotation.StatusPromotional,
		"revisar talla":          annotation.StatusReview,
		"por confirmar":          annotation.StatusReview,
		"vencido":                annotation.StatusExpired,
		"caducado en junio":      annotation.StatusExpired,
		"perdido en el traslado": annotation.StatusLost,
		"extraviado":             annotation.StatusLost,
	}
	for text, want := range cases {
		assert.Equal(t, want, annotation.InferStatus(text), "texto=%q", text)
	}
}

func TestInferStatus_VacioEsDisponible(t *testing.T) {
	assert.Equal(t, annotation.StatusAvailable, annotation.InferStatus(""))
}

func TestInferStatus_SinCoincidenciaEsDisponible(t *testing.T) {
	assert.Equal(t, annotation.StatusAvailable, annotation.InferStatus("pieza en buen estado"))
}

// La observación puede mencionar varias palabras clave; "vendido" se evalúa
// primero y gana siempre. Este orden es el contrato.
func TestInferStatus_PrioridadVendidoSobreElResto(t *testing.T) {
	assert.Equal(t, annotation.StatusSold, annotation.InferStatus("estaba reservado pero fue vendido"))
	assert.Equal(t, annotation.StatusSold, annotation.InferStatus("vendido, revisar pago"))
	assert.Equal(t, annotation.StatusDonated, annotation.InferStatus("donado, estaba reservado"))
}

func TestInferStatus_NoDistingueMayusculas(t *testing.T) {
	assert.Equal(t, annotation.InferStatus("VENDIDO"), annotation.InferStatus("vendido"))
}

// ──────────────────────────────────────────────────────────────────────────────
// ExtractAttribution: prefijos etiquetados en orden
// ──────────────────────────────────────────────────────────────────────────────

func TestExtractAttribution_PrefijosEtiquetados(t *testing.T) {
	attr := annotation.ExtractAttribution("Vendedor: Carla, Cliente: Juan Pérez")
	assert.Equal(t, "Carla", attr.SoldBy)
	assert.Equal(t, "Juan Pérez", attr.SoldTo)
}

func TestExtractAttribution_VariantesVendidoPorYVendidoA(t *testing.T) {
	attr := annotation.ExtractAttribution("Vendido por Rosa")
	assert.Equal(t, "Rosa", attr.SoldBy)
	assert.Empty(t, attr.SoldTo)

	attr = annotation.ExtractAttribution("Vendido a Pedro")
	assert.Equal(t, "Pedro", attr.SoldTo)
	assert.Empty(t, attr.SoldBy)
}

func TestExtractAttribution_GanaElPrimerPatron(t *testing.T) {
	// "Vendedor:" va antes que "vendido por" en la lista de patrones
	attr := annotation.ExtractAttribution("Vendedor: Carla; vendido por Rosa")
	assert.Equal(t, "Carla", attr.SoldBy)
}

func TestExtractAttribution_SinEtiquetasDevuelveVacio(t *testing.T) {
	attr := annotation.ExtractAttribution("pieza en buen estado")
	assert.Empty(t, attr.SoldBy)
	assert.Empty(t, attr.SoldTo)

	attr = annotation.ExtractAttribution("")
	assert.Empty(t, attr.SoldBy)
	assert.Empty(t, attr.SoldTo)
}

func TestExtractAttribution_RecortaEspacios(t *testing.T) {
	attr := annotation.ExtractAttribution("Cliente:   Ana   María  ")
	assert.Equal(t, "Ana María", attr.SoldTo)
}
