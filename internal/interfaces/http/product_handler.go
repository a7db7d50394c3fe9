package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/application/usecase"
	"github.com/jhoicas/retail-analytics-api/internal/domain"
)

// ProductHandler consultas de catálogo del dashboard.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	reportUC *usecase.ReportUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase, reportUC *usecase.ReportUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, reportUC: reportUC}
}

// List godoc
// @Summary      Listar productos del usuario (id + nombre)
// @Tags         products
// @Produce      json
// @Success      200  {array}   dto.ProductSummaryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	}
	products, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(products)
}

// GetHistory godoc
// @Summary      Detalle de un producto con su histórico derivado
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "id de producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetHistory(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	}
	productID := c.Params("id")
	detail, err := h.uc.GetHistory(c.Context(), userID, productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if detail == nil {
		// No distinguir entre inexistente y de otro usuario.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(detail)
}

// Report godoc
// @Summary      Exportar el histórico de un producto como PDF
// @Tags         products
// @Produce      application/pdf
// @Param        id   path      string  true  "id de producto"
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/report [get]
func (h *ProductHandler) Report(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	}
	productID := c.Params("id")
	pdfBytes, err := h.reportUC.GenerateHistoryReport(c.Context(), userID, productID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="historico-`+productID+`.pdf"`)
	return c.Send(pdfBytes)
}
