package importer

import (
	"context"
	"io"

	"github.com/tu-usuario/pacas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que una corrida de importación se
// persista completa o no se persista.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		recordRepo repository.RecordRepository,
		batchRepo repository.BatchAggregateRepository,
	) error) error
}

// RowReader es el colaborador que materializa las filas de la planilla
// (lectura de archivo). Devuelve el nombre de la hoja leída para etiquetar
// los errores de fila. Si el archivo no se puede abrir la corrida nunca
// arranca: eso es un fallo duro, no un error de fila.
type RowReader interface {
	ReadRows(r io.Reader) (sheet string, rows []Row, err error)
}
