// Package lookup resuelve códigos escaneados (QR/barras) a registros de
// inventario. Los lectores a veces devuelven el código con el prefijo
// equivocado (etiquetas viejas re-pegadas, pacas re-etiquetadas), así que
// si la interpretación inicial no encuentra nada se intenta la otra.
package lookup

import (
	"strings"

	"github.com/tu-usuario/pacas-api/internal/domain"
	"github.com/tu-usuario/pacas-api/internal/domain/entity"
	"github.com/tu-usuario/pacas-api/internal/domain/identifier"
	"github.com/tu-usuario/pacas-api/internal/domain/repository"
)

// ScanUseCase busca un registro a partir de su código escaneado.
type ScanUseCase struct {
	records repository.RecordRepository
}

// NewScanUseCase construye el caso de uso.
func NewScanUseCase(records repository.RecordRepository) *ScanUseCase {
	return &ScanUseCase{records: records}
}

// Resolve busca el código tal cual y, si no hay resultado, con la
// interpretación alternativa (mismo número de paca y secuencia, el otro
// esquema). Devuelve domain.ErrNotFound si ninguna interpretación existe y
// domain.ErrInvalidInput si el texto no es un código generado por el sistema.
func (uc *ScanUseCase) Resolve(companyID, code string) (*entity.InventoryRecord, error) {
	code = strings.TrimSpace(code)
	decoded, ok := identifier.DecodeCode(code)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	rec, err := uc.records.GetByCode(companyID, code)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return rec, nil
	}

	alt := identifier.EncodeCode(alternateFormat(decoded.Format), decoded.BatchNumber, decoded.Sequence)
	rec, err = uc.records.GetByCode(companyID, alt)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func alternateFormat(format string) string {
	if format == identifier.FormatNumbered {
		return identifier.FormatLegacy
	}
	return identifier.FormatNumbered
}
