package ports

import (
	"context"
	"errors"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
)

// Errores del colaborador LLM que la capa HTTP traduce a mensajes distintos
// para el usuario. Nunca afectan la ingesta ni los datos de las gráficas.
var (
	// ErrNotConfigured la API key del proveedor no está configurada.
	ErrNotConfigured = errors.New("servicio de IA no configurado")
	// ErrInvalidAPIKey el proveedor rechazó la credencial (HTTP 401).
	ErrInvalidAPIKey = errors.New("API key de IA inválida")
	// ErrRateLimited el proveedor aplicó rate limit (HTTP 429).
	ErrRateLimited = errors.New("límite de peticiones de IA excedido")
)

// InsightsResult texto libre generado por el modelo y tokens consumidos.
type InsightsResult struct {
	Insights   string
	TokensUsed int
}

// LLMService define el puerto de salida para el colaborador de completions.
// Cualquier adaptador (OpenAI, Anthropic, mock) debe implementar esta
// interfaz. La aplicación solo conoce este contrato, no la implementación
// concreta (DIP).
type LLMService interface {
	// GenerateInsights recibe el resumen de tendencias de los productos
	// seleccionados y devuelve insights de negocio en texto libre.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas
	// externas.
	GenerateInsights(ctx context.Context, products []dto.ProductTrendSummaryDTO) (*InsightsResult, error)
}
