package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/pacas-api/internal/domain"
	"github.com/tu-usuario/pacas-api/internal/domain/entity"
	"github.com/tu-usuario/pacas-api/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

// RecordRepo implementación del puerto RecordRepository sobre PostgreSQL
// (usable con pool o tx).
type RecordRepo struct {
	q Querier
}

// NewRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecordRepository(q Querier) *RecordRepo {
	return &RecordRepo{q: q}
}

const recordColumns = `
	id, company_id, name, batch_number, format, product_sequence,
	import_sequence, generated_code, quantity, unit_price, category,
	brand, color, size, annotation_text, user_notes,
	available_qty, sold_qty, donated_qty, lost_qty, expired_qty,
	status, sold_by, sold_to, created_at, updated_at`

// Create persiste un registro emitido por el pipeline.
func (r *RecordRepo) Create(rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO import_records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.CompanyID, rec.Name, rec.BatchNumber, rec.Format, rec.ProductSequence,
		rec.ImportSequence, rec.GeneratedCode, rec.Quantity, rec.UnitPrice, rec.Category,
		rec.Brand, rec.Color, rec.Size, rec.AnnotationText, rec.UserNotes,
		rec.AvailableQty, rec.SoldQty, rec.DonatedQty, rec.LostQty, rec.ExpiredQty,
		rec.Status, rec.SoldBy, rec.SoldTo, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert import record: %w", err)
	}
	return nil
}

// GetByCode obtiene un registro por empresa y código generado. (nil, nil) si no existe.
func (r *RecordRepo) GetByCode(companyID, code string) (*entity.InventoryRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM import_records WHERE company_id = $1 AND generated_code = $2`
	rec, err := r.scanOne(r.q.QueryRow(context.Background(), query, companyID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get record by code: %w", err)
	}
	return rec, nil
}

// ListByBatch lista los registros de una paca con paginación, en orden de secuencia.
func (r *RecordRepo) ListByBatch(companyID, batchNumber string, limit, offset int) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM import_records
		WHERE company_id = $1 AND batch_number = $2
		ORDER BY import_sequence LIMIT $3 OFFSET $4`
	return r.list(query, companyID, batchNumber, limit, offset)
}

// ListByCompany lista los registros de la empresa con paginación.
func (r *RecordRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM import_records
		WHERE company_id = $1
		ORDER BY created_at DESC, import_sequence LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

func (r *RecordRepo) list(query string, args ...any) ([]*entity.InventoryRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		rec, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func (r *RecordRepo) scanOne(row pgx.Row) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := row.Scan(
		&rec.ID, &rec.CompanyID, &rec.Name, &rec.BatchNumber, &rec.Format, &rec.ProductSequence,
		&rec.ImportSequence, &rec.GeneratedCode, &rec.Quantity, &rec.UnitPrice, &rec.Category,
		&rec.Brand, &rec.Color, &rec.Size, &rec.AnnotationText, &rec.UserNotes,
		&rec.AvailableQty, &rec.SoldQty, &rec.DonatedQty, &rec.LostQty, &rec.ExpiredQty,
		&rec.Status, &rec.SoldBy, &rec.SoldTo, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
