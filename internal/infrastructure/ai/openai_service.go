package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/application/ports"
)

// Verificar en tiempo de compilación que OpenAIService implementa LLMService.
var _ ports.LLMService = (*OpenAIService)(nil)

const openAIChatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// OpenAIService adaptador que implementa LLMService usando la API REST de
// chat completions de OpenAI.
type OpenAIService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIService construye el adaptador. model suele ser "gpt-4o-mini".
// Si apiKey está vacío las llamadas devuelven ErrNotConfigured en lugar de panic.
func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red; el use case impone además su propio context.WithTimeout.
			Timeout: 60 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo OpenAI Chat Completions ────────────────

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateInsights envía el resumen de tendencias a OpenAI y devuelve el
// texto de insights. Las credenciales inválidas y el rate limit se mapean a
// errores sentinel para que la capa HTTP los reporte de forma distinta.
func (s *OpenAIService) GenerateInsights(ctx context.Context, products []dto.ProductTrendSummaryDTO) (*ports.InsightsResult, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: OPENAI_API_KEY: %w", ports.ErrNotConfigured)
	}

	userContent, err := buildInsightsPrompt(products)
	if err != nil {
		return nil, err
	}

	payload := openAIRequest{
		Model: s.model,
		Messages: []openAIMessage{
			{Role: "system", Content: insightsSystemPrompt},
			{Role: "user", Content: userContent},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatCompletionsURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// continúa abajo
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("AI: OpenAI HTTP 401: %w", ports.ErrInvalidAPIKey)
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("AI: OpenAI HTTP 429: %w", ports.ErrRateLimited)
	default:
		var errResp openAIResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: OpenAI error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: OpenAI HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var completion openAIResponse
	if err := json.Unmarshal(rawBody, &completion); err != nil {
		return nil, fmt.Errorf("AI: deserializar respuesta OpenAI: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("AI: OpenAI devolvió respuesta vacía")
	}

	return &ports.InsightsResult{
		Insights:   completion.Choices[0].Message.Content,
		TokensUsed: completion.Usage.TotalTokens,
	}, nil
}
