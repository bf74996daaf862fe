package repository

import "github.com/tu-usuario/pacas-api/internal/domain/entity"

// RecordRepository define el puerto de persistencia para los registros de
// inventario emitidos por el pipeline de importación.
type RecordRepository interface {
	Create(rec *entity.InventoryRecord) error
	GetByCode(companyID, code string) (*entity.InventoryRecord, error)
	ListByBatch(companyID, batchNumber string, limit, offset int) ([]*entity.InventoryRecord, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.InventoryRecord, error)
}
