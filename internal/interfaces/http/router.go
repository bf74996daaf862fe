package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pacas-api/internal/application/importer"
	"github.com/tu-usuario/pacas-api/internal/application/lookup"
	"github.com/tu-usuario/pacas-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ImportUC   *importer.ImportUseCase
	ScanUC     *lookup.ScanUseCase
	RecordRepo repository.RecordRepository
	BatchRepo  repository.BatchAggregateRepository
	JWTSecret  string
}

// Router registra las rutas de la API. Todo lo que no es /health requiere
// Bearer Token; la importación además exige rol admin o importador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	importHandler := NewImportHandler(deps.ImportUC)
	imports := api.Group("/imports", RequireRole("admin", "importador"))
	imports.Post("/", importHandler.Import)

	recordHandler := NewRecordHandler(deps.RecordRepo, deps.BatchRepo, deps.ScanUC)
	records := api.Group("/records")
	records.Get("/", recordHandler.List)
	records.Get("/scan/:code", recordHandler.Scan)

	batches := api.Group("/batches")
	batches.Get("/", recordHandler.ListBatches)
}
