package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/pacas-api/internal/domain/entity"
	"github.com/tu-usuario/pacas-api/internal/domain/repository"
)

var _ repository.BatchAggregateRepository = (*BatchAggregateRepo)(nil)

// BatchAggregateRepo implementación de BatchAggregateRepository sobre
// PostgreSQL (usable con pool o tx).
type BatchAggregateRepo struct {
	q Querier
}

// NewBatchAggregateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchAggregateRepository(q Querier) *BatchAggregateRepo {
	return &BatchAggregateRepo{q: q}
}

// Upsert reemplaza el acumulado de la paca con el recálculo de la corrida.
func (r *BatchAggregateRepo) Upsert(agg *entity.BatchAggregate) error {
	query := `
		INSERT INTO batch_aggregates
			(company_id, batch_number, total_records, total_units, total_value, sold_units, available_units, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id, batch_number) DO UPDATE SET
			total_records = EXCLUDED.total_records,
			total_units = EXCLUDED.total_units,
			total_value = EXCLUDED.total_value,
			sold_units = EXCLUDED.sold_units,
			available_units = EXCLUDED.available_units,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		agg.CompanyID, agg.BatchNumber, agg.TotalRecords, agg.TotalUnits,
		agg.TotalValue, agg.SoldUnits, agg.AvailableUnits, agg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert batch aggregate: %w", err)
	}
	return nil
}

// GetByBatch obtiene el acumulado de una paca. (nil, nil) si no existe.
func (r *BatchAggregateRepo) GetByBatch(companyID, batchNumber string) (*entity.BatchAggregate, error) {
	query := `
		SELECT company_id, batch_number, total_records, total_units, total_value, sold_units, available_units, updated_at
		FROM batch_aggregates WHERE company_id = $1 AND batch_number = $2`
	var agg entity.BatchAggregate
	err := r.q.QueryRow(context.Background(), query, companyID, batchNumber).Scan(
		&agg.CompanyID, &agg.BatchNumber, &agg.TotalRecords, &agg.TotalUnits,
		&agg.TotalValue, &agg.SoldUnits, &agg.AvailableUnits, &agg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch aggregate: %w", err)
	}
	return &agg, nil
}

// ListByCompany lista los acumulados de la empresa en orden numérico de paca.
func (r *BatchAggregateRepo) ListByCompany(companyID string) ([]*entity.BatchAggregate, error) {
	query := `
		SELECT company_id, batch_number, total_records, total_units, total_value, sold_units, available_units, updated_at
		FROM batch_aggregates WHERE company_id = $1
		ORDER BY batch_number::bigint`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list batch aggregates: %w", err)
	}
	defer rows.Close()
	var list []*entity.BatchAggregate
	for rows.Next() {
		var agg entity.BatchAggregate
		if err := rows.Scan(&agg.CompanyID, &agg.BatchNumber, &agg.TotalRecords, &agg.TotalUnits,
			&agg.TotalValue, &agg.SoldUnits, &agg.AvailableUnits, &agg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan batch aggregate: %w", err)
		}
		list = append(list, &agg)
	}
	return list, rows.Err()
}
