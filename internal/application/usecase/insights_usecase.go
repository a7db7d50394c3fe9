package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/application/ports"
	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
)

// InsightsUseCase genera el análisis de negocio con IA sobre los productos
// seleccionados. Las fallas del colaborador LLM se reportan al usuario pero
// nunca tocan la ingesta ni los datos de las gráficas.
type InsightsUseCase struct {
	productRepo repository.ProductRepository
	llm         ports.LLMService
	timeout     time.Duration
}

// NewInsightsUseCase construye el caso de uso. timeout acota cada llamada
// al LLM para que la latencia externa no bloquee los goroutines del servidor.
func NewInsightsUseCase(productRepo repository.ProductRepository, llm ports.LLMService, timeout time.Duration) *InsightsUseCase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &InsightsUseCase{productRepo: productRepo, llm: llm, timeout: timeout}
}

// Generate carga los productos seleccionados del usuario, arma el resumen de
// tendencias y delega la redacción al LLM. Los IDs que no existen o
// pertenecen a otro usuario se ignoran; si ninguno es válido devuelve
// ErrNotFound.
func (uc *InsightsUseCase) Generate(ctx context.Context, userID string, productIDs []string) (*dto.InsightsResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if len(productIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	summaries := make([]dto.ProductTrendSummaryDTO, 0, len(productIDs))
	for _, id := range productIDs {
		product, err := uc.productRepo.GetByUserAndID(ctx, userID, id)
		if err != nil {
			return nil, fmt.Errorf("cargar producto %q: %w", id, err)
		}
		if product == nil {
			continue
		}
		summaries = append(summaries, BuildTrendSummary(product))
	}
	if len(summaries) == 0 {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	result, err := uc.llm.GenerateInsights(ctx, summaries)
	if err != nil {
		return nil, err
	}
	return &dto.InsightsResponse{Insights: result.Insights, TokensUsed: result.TokensUsed}, nil
}

// BuildTrendSummary condensa el histórico de un producto en las series y
// totales que consume el prompt del LLM.
func BuildTrendSummary(p *entity.Product) dto.ProductTrendSummaryDTO {
	s := dto.ProductTrendSummaryDTO{
		ID:               p.ID,
		Name:             p.Name,
		OpeningInventory: p.OpeningInventory,
		FinalInventory:   p.OpeningInventory,
	}
	for _, r := range p.Records {
		sales := r.SalesAmount()
		procurement := r.ProcurementAmount()
		s.TotalSales = s.TotalSales.Add(sales)
		s.TotalProcurement = s.TotalProcurement.Add(procurement)
		s.InventoryTrend = append(s.InventoryTrend, r.Inventory)
		s.SalesTrend = append(s.SalesTrend, sales)
		s.ProcurementTrend = append(s.ProcurementTrend, procurement)
		s.FinalInventory = r.Inventory
	}
	return s
}
