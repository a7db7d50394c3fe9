package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/application/ingest"
	"github.com/jhoicas/retail-analytics-api/internal/domain"
)

// UploadHandler maneja la carga de la planilla de productos: parseo,
// derivación de histórico y persistencia transaccional.
type UploadHandler struct {
	uc          *ingest.IngestUseCase
	maxUploadMB int
	log         zerolog.Logger
}

// NewUploadHandler construye el handler de carga.
func NewUploadHandler(uc *ingest.IngestUseCase, maxUploadMB int, log zerolog.Logger) *UploadHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 10
	}
	return &UploadHandler{uc: uc, maxUploadMB: maxUploadMB, log: log}
}

// Upload godoc
// @Summary      Cargar planilla de productos (xlsx, xls, csv)
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "planilla de 15 columnas"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "no se proporcionó archivo"})
	}
	if fileHeader.Size > int64(h.maxUploadMB)*1024*1024 {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
			Code: "FILE_TOO_LARGE", Message: "el archivo excede el tamaño máximo permitido",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	rows, err := ingest.ParseUpload(fileHeader.Filename, contentType, data)
	if err != nil {
		// Contenedor ilegible o formato no soportado: error estructural.
		h.log.Warn().Err(err).Str("filename", fileHeader.Filename).Msg("archivo de carga ilegible")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "el archivo no se pudo procesar"})
	}
	if len(rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_VALID_ROWS", Message: "el archivo no contiene filas válidas"})
	}

	count, err := h.uc.Ingest(c.Context(), userID, rows)
	if err != nil {
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
		}
		h.log.Error().Err(err).Str("user_id", userID).Int("rows", len(rows)).Msg("fallo al persistir la carga")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo guardar la carga"})
	}

	h.log.Info().Str("user_id", userID).Int("products", count).Msg("carga procesada")
	return c.JSON(dto.UploadResponse{Success: true, ProductsCount: count})
}
