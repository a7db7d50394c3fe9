package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/application/ports"
	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[string]*entity.Product // clave user_id|id
}

func (r *stubProductRepo) Upsert(context.Context, *entity.Product) error { return nil }

func (r *stubProductRepo) ListByUser(_ context.Context, userID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) GetByUserAndID(_ context.Context, userID, id string) (*entity.Product, error) {
	return r.products[userID+"|"+id], nil
}

func (r *stubProductRepo) DeleteByUser(context.Context, string) error      { return nil }
func (r *stubProductRepo) CountByUser(context.Context, string) (int, error) { return 0, nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubLLM struct {
	received []dto.ProductTrendSummaryDTO
	result   *ports.InsightsResult
	err      error
}

func (s *stubLLM) GenerateInsights(_ context.Context, products []dto.ProductTrendSummaryDTO) (*ports.InsightsResult, error) {
	s.received = products
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func productoDePrueba(userID, id string) *entity.Product {
	return &entity.Product{
		ID:               id,
		UserID:           userID,
		Name:             "Café molido",
		OpeningInventory: 100,
		Records: []entity.DailyRecord{
			{Day: 1, ProcurementQty: 10, ProcurementPrice: decimal.NewFromInt(5), SalesQty: 20, SalesPrice: decimal.NewFromInt(8), Inventory: 90},
			{Day: 2, SalesQty: 5, SalesPrice: decimal.NewFromInt(8), Inventory: 85},
			{Day: 3, ProcurementQty: 5, ProcurementPrice: decimal.NewFromFloat(5.5), Inventory: 90},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildTrendSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildTrendSummary_AgregaTotalesYSeries(t *testing.T) {
	s := BuildTrendSummary(productoDePrueba("user-1", "P-001"))

	assert.Equal(t, "P-001", s.ID)
	assert.Equal(t, 100, s.OpeningInventory)
	assert.Equal(t, 90, s.FinalInventory)
	assert.Equal(t, []int{90, 85, 90}, s.InventoryTrend)

	// ventas: 20*8 + 5*8 + 0 = 200; compras: 10*5 + 0 + 5*5.5 = 77.5
	assert.True(t, decimal.NewFromInt(200).Equal(s.TotalSales), "total ventas = %s", s.TotalSales)
	assert.True(t, decimal.NewFromFloat(77.5).Equal(s.TotalProcurement), "total compras = %s", s.TotalProcurement)
	assert.Len(t, s.SalesTrend, 3)
	assert.Len(t, s.ProcurementTrend, 3)
}

func TestBuildTrendSummary_SinRegistrosUsaInicialComoFinal(t *testing.T) {
	p := &entity.Product{ID: "P-009", UserID: "u", Name: "x", OpeningInventory: 7}
	s := BuildTrendSummary(p)
	assert.Equal(t, 7, s.FinalInventory)
	assert.Empty(t, s.InventoryTrend)
}

// ──────────────────────────────────────────────────────────────────────────────
// Generate
// ──────────────────────────────────────────────────────────────────────────────

func newInsightsFixture(llm *stubLLM) *InsightsUseCase {
	repo := &stubProductRepo{products: map[string]*entity.Product{
		"user-1|P-001": productoDePrueba("user-1", "P-001"),
		"user-1|P-002": productoDePrueba("user-1", "P-002"),
		"user-2|P-003": productoDePrueba("user-2", "P-003"),
	}}
	return NewInsightsUseCase(repo, llm, time.Second)
}

func TestGenerate_EnviaResumenesAlLLM(t *testing.T) {
	llm := &stubLLM{result: &ports.InsightsResult{Insights: "• tendencia estable", TokensUsed: 321}}
	uc := newInsightsFixture(llm)

	out, err := uc.Generate(context.Background(), "user-1", []string{"P-001", "P-002"})
	require.NoError(t, err)

	assert.Equal(t, "• tendencia estable", out.Insights)
	assert.Equal(t, 321, out.TokensUsed)
	require.Len(t, llm.received, 2, "el LLM recibe un resumen por producto")
	assert.Equal(t, []int{90, 85, 90}, llm.received[0].InventoryTrend)
}

func TestGenerate_SinUsuario_EsUnauthorized(t *testing.T) {
	uc := newInsightsFixture(&stubLLM{})
	_, err := uc.Generate(context.Background(), "", []string{"P-001"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGenerate_SinSeleccion_EsInvalido(t *testing.T) {
	uc := newInsightsFixture(&stubLLM{})
	_, err := uc.Generate(context.Background(), "user-1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_IgnoraProductosDeOtroUsuario(t *testing.T) {
	llm := &stubLLM{result: &ports.InsightsResult{Insights: "ok"}}
	uc := newInsightsFixture(llm)

	// P-003 es de user-2: se ignora, pero P-001 sí entra.
	_, err := uc.Generate(context.Background(), "user-1", []string{"P-001", "P-003"})
	require.NoError(t, err)
	require.Len(t, llm.received, 1)
	assert.Equal(t, "P-001", llm.received[0].ID)
}

func TestGenerate_NingunProductoValido_EsNotFound(t *testing.T) {
	uc := newInsightsFixture(&stubLLM{})
	_, err := uc.Generate(context.Background(), "user-1", []string{"P-003", "inexistente"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerate_PropagaSentinelsDelLLM(t *testing.T) {
	llm := &stubLLM{err: ports.ErrRateLimited}
	uc := newInsightsFixture(llm)

	_, err := uc.Generate(context.Background(), "user-1", []string{"P-001"})
	assert.ErrorIs(t, err, ports.ErrRateLimited)
}
