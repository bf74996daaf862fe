package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pacas-api/internal/domain/identifier"
)

func TestGenerateCode_NumeradoUsaOrdinalEmbebido(t *testing.T) {
	p := identifier.Parse("3/20")

	// La secuencia de importación NO participa en el formato numerado: el
	// código debe ser estable entre re-importaciones aunque la fila caiga
	// en otra posición.
	assert.Equal(t, "DRP-20-003", identifier.GenerateCode(p, 1))
	assert.Equal(t, "DRP-20-003", identifier.GenerateCode(p, 99))
}

func TestGenerateCode_LegadoUsaSecuenciaDeImportacion(t *testing.T) {
	p := identifier.Parse("7")

	assert.Equal(t, "LOT-7-001", identifier.GenerateCode(p, 1))
	assert.Equal(t, "LOT-7-004", identifier.GenerateCode(p, 4))
}

func TestGenerateCode_EsPuro(t *testing.T) {
	p := identifier.Parse("12/5")
	assert.Equal(t, identifier.GenerateCode(p, 2), identifier.GenerateCode(p, 2),
		"mismos argumentos, mismo código siempre")
}

func TestGenerateCode_FormatosDistinguibles(t *testing.T) {
	numerado := identifier.GenerateCode(identifier.Parse("1/20"), 1)
	legado := identifier.GenerateCode(identifier.Parse("20"), 1)

	assert.NotEqual(t, numerado, legado,
		"la búsqueda por código escaneado necesita distinguir ambos esquemas")
}

func TestDecodeCode_RecuperaPaca(t *testing.T) {
	d, ok := identifier.DecodeCode("DRP-20-003")
	require.True(t, ok)
	assert.Equal(t, identifier.FormatNumbered, d.Format)
	assert.Equal(t, "20", d.BatchNumber)
	assert.Equal(t, 3, d.Sequence)

	d, ok = identifier.DecodeCode("LOT-7-004")
	require.True(t, ok)
	assert.Equal(t, identifier.FormatLegacy, d.Format)
	assert.Equal(t, "7", d.BatchNumber)
	assert.Equal(t, 4, d.Sequence)
}

func TestDecodeCode_RoundTrip(t *testing.T) {
	p := identifier.Parse("9/31")
	d, ok := identifier.DecodeCode(identifier.GenerateCode(p, 5))
	require.True(t, ok)
	assert.Equal(t, p.BatchNumber, d.BatchNumber, "del código siempre se recupera la paca")
}

func TestDecodeCode_RechazaBasura(t *testing.T) {
	for _, code := range []string{"", "XXX-1-001", "DRP-20", "DRP-a-001", "drp-20-001"} {
		_, ok := identifier.DecodeCode(code)
		assert.False(t, ok, "code=%q", code)
	}
}
