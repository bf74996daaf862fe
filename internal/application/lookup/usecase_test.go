package lookup_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pacas-api/internal/application/lookup"
	"github.com/tu-usuario/pacas-api/internal/domain"
	"github.com/tu-usuario/pacas-api/internal/domain/entity"
)

const testCompanyID = "00000000-0000-0000-0000-000000000001"

// fakeRecordRepo repositorio en memoria indexado por código generado.
type fakeRecordRepo struct {
	byCode map[string]*entity.InventoryRecord
	fail   error
}

func (f *fakeRecordRepo) Create(rec *entity.InventoryRecord) error { return nil }

func (f *fakeRecordRepo) GetByCode(companyID, code string) (*entity.InventoryRecord, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	rec, ok := f.byCode[code]
	if !ok || rec.CompanyID != companyID {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeRecordRepo) ListByBatch(companyID, batch string, limit, offset int) ([]*entity.InventoryRecord, error) {
	return nil, nil
}

func (f *fakeRecordRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.InventoryRecord, error) {
	return nil, nil
}

func repoWith(codes ...string) *fakeRecordRepo {
	byCode := make(map[string]*entity.InventoryRecord, len(codes))
	for _, c := range codes {
		byCode[c] = &entity.InventoryRecord{CompanyID: testCompanyID, GeneratedCode: c, Name: "pieza " + c}
	}
	return &fakeRecordRepo{byCode: byCode}
}

func TestResolve_CoincidenciaDirecta(t *testing.T) {
	uc := lookup.NewScanUseCase(repoWith("DRP-20-003"))

	rec, err := uc.Resolve(testCompanyID, "DRP-20-003")
	require.NoError(t, err)
	assert.Equal(t, "DRP-20-003", rec.GeneratedCode)
}

// Etiqueta con prefijo equivocado: "DRP-20-003" no existe pero "LOT-20-003"
// sí. La interpretación alternativa debe encontrarlo.
func TestResolve_FallbackALaOtraInterpretacion(t *testing.T) {
	uc := lookup.NewScanUseCase(repoWith("LOT-20-003"))

	rec, err := uc.Resolve(testCompanyID, "DRP-20-003")
	require.NoError(t, err)
	assert.Equal(t, "LOT-20-003", rec.GeneratedCode)
}

func TestResolve_FallbackEnAmbosSentidos(t *testing.T) {
	uc := lookup.NewScanUseCase(repoWith("DRP-7-001"))

	rec, err := uc.Resolve(testCompanyID, "LOT-7-001")
	require.NoError(t, err)
	assert.Equal(t, "DRP-7-001", rec.GeneratedCode)
}

func TestResolve_NingunaInterpretacionExiste(t *testing.T) {
	uc := lookup.NewScanUseCase(repoWith("DRP-20-003"))

	_, err := uc.Resolve(testCompanyID, "DRP-99-001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_CodigoMalformado(t *testing.T) {
	uc := lookup.NewScanUseCase(repoWith())

	_, err := uc.Resolve(testCompanyID, "no-es-un-codigo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolve_RecortaEspaciosDelEscaner(t *testing.T) {
	uc := lookup.NewScanUseCase(repoWith("LOT-7-004"))

	rec, err := uc.Resolve(testCompanyID, "  LOT-7-004\n")
	require.NoError(t, err)
	assert.Equal(t, "LOT-7-004", rec.GeneratedCode)
}

func TestResolve_NoMezclaEmpresas(t *testing.T) {
	uc := lookup.NewScanUseCase(repoWith("DRP-20-003"))

	_, err := uc.Resolve("otra-empresa", "DRP-20-003")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_PropagaErroresDelRepositorio(t *testing.T) {
	boom := errors.New("conexión caída")
	uc := lookup.NewScanUseCase(&fakeRecordRepo{fail: boom})

	_, err := uc.Resolve(testCompanyID, "DRP-20-003")
	assert.ErrorIs(t, err, boom)
}
