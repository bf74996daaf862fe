package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pacas-api/internal/application/dto"
	"github.com/tu-usuario/pacas-api/internal/application/lookup"
	"github.com/tu-usuario/pacas-api/internal/domain"
	"github.com/tu-usuario/pacas-api/internal/domain/entity"
	"github.com/tu-usuario/pacas-api/internal/domain/repository"
)

// RecordHandler maneja consultas de registros y acumulados (protegido).
type RecordHandler struct {
	records repository.RecordRepository
	batches repository.BatchAggregateRepository
	scan    *lookup.ScanUseCase
}

// NewRecordHandler construye el handler.
func NewRecordHandler(records repository.RecordRepository, batches repository.BatchAggregateRepository, scan *lookup.ScanUseCase) *RecordHandler {
	return &RecordHandler{records: records, batches: batches, scan: scan}
}

// List godoc
// @Summary      Listar registros de inventario
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Param        batch   query  string  false  "Filtrar por número de paca"
// @Param        limit   query  int     false  "Tamaño de página (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.RecordResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/records [get]
func (h *RecordHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	var (
		list []*entity.InventoryRecord
		err  error
	)
	if batch := c.Query("batch"); batch != "" {
		list, err = h.records.ListByBatch(companyID, batch, page.Limit, page.Offset)
	} else {
		list, err = h.records.ListByCompany(companyID, page.Limit, page.Offset)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := make([]dto.RecordResponse, 0, len(list))
	for _, rec := range list {
		out = append(out, toRecordResponse(rec))
	}
	return c.JSON(out)
}

// Scan godoc
// @Summary      Buscar registro por código escaneado
// @Description  Resuelve un código QR/barras a su registro. Si la
//
//	interpretación directa no existe se intenta la alternativa
//	(mismo número de paca y secuencia, el otro esquema).
//
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código escaneado (DRP-... o LOT-...)"
// @Success      200  {object}  dto.RecordResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/records/scan/{code} [get]
func (h *RecordHandler) Scan(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	rec, err := h.scan.Resolve(companyID, c.Params("code"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "el texto escaneado no es un código del sistema"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ninguna interpretación del código existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toRecordResponse(rec))
}

// ListBatches godoc
// @Summary      Listar acumulados por paca
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.BatchAggregateResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/batches [get]
func (h *RecordHandler) ListBatches(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	list, err := h.batches.ListByCompany(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := make([]dto.BatchAggregateResponse, 0, len(list))
	for _, agg := range list {
		out = append(out, dto.BatchAggregateResponse{
			BatchNumber:    agg.BatchNumber,
			TotalRecords:   agg.TotalRecords,
			TotalUnits:     agg.TotalUnits,
			TotalValue:     agg.TotalValue.StringFixed(2),
			SoldUnits:      agg.SoldUnits,
			AvailableUnits: agg.AvailableUnits,
			UpdatedAt:      agg.UpdatedAt,
		})
	}
	return c.JSON(out)
}

func toRecordResponse(rec *entity.InventoryRecord) dto.RecordResponse {
	return dto.RecordResponse{
		ID:              rec.ID,
		Name:            rec.Name,
		BatchNumber:     rec.BatchNumber,
		Format:          rec.Format,
		ProductSequence: rec.ProductSequence,
		ImportSequence:  rec.ImportSequence,
		GeneratedCode:   rec.GeneratedCode,
		Quantity:        rec.Quantity,
		UnitPrice:       rec.UnitPrice.StringFixed(2),
		Category:        rec.Category,
		Brand:           rec.Brand,
		Color:           rec.Color,
		Size:            rec.Size,
		AnnotationText:  rec.AnnotationText,
		UserNotes:       rec.UserNotes,
		AvailableQty:    rec.AvailableQty,
		SoldQty:         rec.SoldQty,
		DonatedQty:      rec.DonatedQty,
		LostQty:         rec.LostQty,
		ExpiredQty:      rec.ExpiredQty,
		Status:          rec.Status,
		SoldBy:          rec.SoldBy,
		SoldTo:          rec.SoldTo,
		CreatedAt:       rec.CreatedAt,
	}
}
