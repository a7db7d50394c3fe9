// Package ai contiene los adaptadores del puerto LLMService: OpenAI (por
// defecto) y Anthropic. Ambos usan net/http de la librería estándar; no
// requieren SDKs oficiales.
package ai

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
)

const insightsSystemPrompt = `Eres un analista de negocio retail especializado en inventario y ventas.
Con base en los datos de productos entregados, responde en español con:
1. Tendencias y patrones clave (2-3 viñetas)
2. Hallazgos o anomalías notables (1-2 viñetas)
3. Recomendaciones de negocio (2-3 viñetas)
Mantén la respuesta profesional, concisa y de menos de 200 palabras. Usa viñetas.`

// buildInsightsPrompt serializa el resumen de tendencias como el contenido
// de usuario del prompt. El resumen ya viene agregado (totales y series por
// día); el modelo solo redacta.
func buildInsightsPrompt(products []dto.ProductTrendSummaryDTO) (string, error) {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return "", fmt.Errorf("AI: serializar resumen de productos: %w", err)
	}
	return "Datos de productos:\n" + string(data), nil
}
