package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/application/ports"
	"github.com/jhoicas/retail-analytics-api/internal/application/usecase"
	"github.com/jhoicas/retail-analytics-api/internal/domain"
)

// InsightsHandler genera el análisis de negocio con IA sobre los productos
// seleccionados. Las fallas del colaborador LLM se mapean a códigos HTTP
// distintos según el sentinel del puerto.
type InsightsHandler struct {
	uc  *usecase.InsightsUseCase
	log zerolog.Logger
}

// NewInsightsHandler construye el handler de insights.
func NewInsightsHandler(uc *usecase.InsightsUseCase, log zerolog.Logger) *InsightsHandler {
	return &InsightsHandler{uc: uc, log: log}
}

// Generate godoc
// @Summary      Generar insights de negocio con IA
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InsightsRequest  true  "product_ids"
// @Success      200   {object}  dto.InsightsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/insights [post]
func (h *InsightsHandler) Generate(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	}

	var in dto.InsightsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.uc.Generate(c.Context(), userID, in.ProductIDs)
	if err != nil {
		switch {
		case err == domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_ids es requerido"})
		case err == domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ningún producto válido en la selección"})
		case errors.Is(err, ports.ErrNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_NOT_CONFIGURED", Message: "el servicio de IA no está configurado"})
		case errors.Is(err, ports.ErrInvalidAPIKey):
			h.log.Error().Err(err).Msg("credencial de IA inválida")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "AI_INVALID_KEY", Message: "credencial del servicio de IA inválida"})
		case errors.Is(err, ports.ErrRateLimited):
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "AI_RATE_LIMITED", Message: "el servicio de IA está saturado, intente más tarde"})
		default:
			h.log.Error().Err(err).Str("user_id", userID).Msg("fallo al generar insights")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron generar los insights"})
		}
	}
	return c.JSON(out)
}
