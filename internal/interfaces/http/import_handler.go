package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pacas-api/internal/application/dto"
	"github.com/tu-usuario/pacas-api/internal/application/importer"
	"github.com/tu-usuario/pacas-api/internal/domain"
)

// ImportHandler maneja la subida e importación de planillas (protegido).
type ImportHandler struct {
	uc *importer.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importar planilla de pacas
// @Description  Sube un XLSX, corre el pipeline de conciliación y persiste
//
//	registros y acumulados. Los errores de fila no hacen fallar la
//	operación: vuelven en row_errors como advertencia.
//
// @Tags         imports
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Planilla XLSX"
// @Success      201   {object}  dto.ImportSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/imports [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se espera el archivo en el campo 'file'"})
	}
	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer src.Close()

	summary, err := h.uc.Import(c.Context(), companyID, src)
	if err != nil {
		// Fallo duro: la corrida nunca arrancó o la persistencia falló.
		if errors.Is(err, domain.ErrUnreadableFile) || errors.Is(err, domain.ErrEmptySheet) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SHEET", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ImportSummaryResponse{
		Records:   summary.Records,
		Batches:   summary.Batches,
		RowErrors: summary.RowErrors,
	})
}
