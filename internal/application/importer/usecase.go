package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/tu-usuario/pacas-api/internal/domain"
	"github.com/tu-usuario/pacas-api/internal/domain/repository"
	"github.com/tu-usuario/pacas-api/pkg/logger"
)

// ImportUseCase orquesta una importación completa: lee la planilla, corre el
// pipeline sobre las filas y persiste registros y acumulados en una única
// transacción. Los errores de fila NO hacen fallar la operación: viajan en
// el resumen para que la capa de presentación los muestre como advertencia.
type ImportUseCase struct {
	reader   RowReader
	txRunner TxRunner
	log      *logger.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(reader RowReader, txRunner TxRunner, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{reader: reader, txRunner: txRunner, log: log}
}

// Summary resumen de una importación para la capa de presentación.
type Summary struct {
	Records   int      `json:"records"`
	Batches   int      `json:"batches"`
	RowErrors []string `json:"row_errors,omitempty"`
}

// Import procesa la planilla de src para la empresa indicada.
// Fallo duro (archivo ilegible, hoja vacía) -> error y nada persiste.
// Errores de fila -> se persiste lo válido y el resumen los lista.
func (uc *ImportUseCase) Import(ctx context.Context, companyID string, src io.Reader) (*Summary, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}

	sheet, rows, err := uc.reader.ReadRows(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptySheet
	}

	res := NewPipeline(sheet).Run(companyID, rows)

	err = uc.txRunner.Run(ctx, func(
		recordRepo repository.RecordRepository,
		batchRepo repository.BatchAggregateRepository,
	) error {
		for _, rec := range res.Records {
			if err := recordRepo.Create(rec); err != nil {
				return fmt.Errorf("guardar registro %s: %w", rec.GeneratedCode, err)
			}
		}
		for _, agg := range res.Aggregates {
			if err := batchRepo.Upsert(agg); err != nil {
				return fmt.Errorf("guardar acumulado paca %s: %w", agg.BatchNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("sheet", sheet).
		Int("rows", len(rows)).
		Int("records", len(res.Records)).
		Int("batches", len(res.Aggregates)).
		Int("row_errors", len(res.Errors)).
		Msg("importación de planilla completada")

	return &Summary{
		Records:   len(res.Records),
		Batches:   len(res.Aggregates),
		RowErrors: res.Errors,
	}, nil
}
