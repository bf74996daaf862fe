package repository

import "github.com/tu-usuario/pacas-api/internal/domain/entity"

// BatchAggregateRepository define el puerto de persistencia de los acumulados
// por paca. El rollup de cada corrida reemplaza el acumulado completo, por
// eso la operación es Upsert y no update incremental.
type BatchAggregateRepository interface {
	Upsert(agg *entity.BatchAggregate) error
	GetByBatch(companyID, batchNumber string) (*entity.BatchAggregate, error)
	ListByCompany(companyID string) ([]*entity.BatchAggregate, error)
}
