package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

func newProductFixture() *ProductUseCase {
	repo := &stubProductRepo{products: map[string]*entity.Product{
		"user-1|P-001": productoDePrueba("user-1", "P-001"),
		"user-2|P-003": productoDePrueba("user-2", "P-003"),
	}}
	return NewProductUseCase(repo)
}

func TestList_SoloProductosDelUsuario(t *testing.T) {
	uc := newProductFixture()

	out, err := uc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "P-001", out[0].ID)
	assert.Equal(t, "Café molido", out[0].Name)
}

func TestList_UsuarioSinCatalogo(t *testing.T) {
	uc := newProductFixture()
	out, err := uc.List(context.Background(), "user-nuevo")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGetHistory_IncluyeMontosDerivados(t *testing.T) {
	uc := newProductFixture()

	detail, err := uc.GetHistory(context.Background(), "user-1", "P-001")
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "P-001", detail.ID)
	assert.Equal(t, 100, detail.OpeningInventory)
	require.Len(t, detail.History, 3)

	// día 1: compras 10*5 = 50, ventas 20*8 = 160
	d1 := detail.History[0]
	assert.Equal(t, 1, d1.Day)
	assert.Equal(t, 90, d1.Inventory)
	assert.True(t, decimal.NewFromInt(50).Equal(d1.ProcurementAmount), "monto compra = %s", d1.ProcurementAmount)
	assert.True(t, decimal.NewFromInt(160).Equal(d1.SalesAmount), "monto venta = %s", d1.SalesAmount)
}

func TestGetHistory_ProductoDeOtroUsuarioEsNil(t *testing.T) {
	uc := newProductFixture()

	detail, err := uc.GetHistory(context.Background(), "user-1", "P-003")
	require.NoError(t, err)
	assert.Nil(t, detail, "un producto ajeno se trata igual que uno inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// ReportUseCase
// ──────────────────────────────────────────────────────────────────────────────

type stubPDFGenerator struct {
	out []byte
	err error
}

func (g *stubPDFGenerator) GenerateHistoryPDF(_ context.Context, _ *entity.Product) ([]byte, error) {
	return g.out, g.err
}

func TestGenerateHistoryReport_DevuelveBytes(t *testing.T) {
	repo := &stubProductRepo{products: map[string]*entity.Product{
		"user-1|P-001": productoDePrueba("user-1", "P-001"),
	}}
	uc := NewReportUseCase(repo, &stubPDFGenerator{out: []byte("%PDF-1.7")})

	pdf, err := uc.GenerateHistoryReport(context.Background(), "user-1", "P-001")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), pdf)
}

func TestGenerateHistoryReport_ProductoAjenoEsNotFound(t *testing.T) {
	repo := &stubProductRepo{products: map[string]*entity.Product{
		"user-2|P-003": productoDePrueba("user-2", "P-003"),
	}}
	uc := NewReportUseCase(repo, &stubPDFGenerator{out: []byte("%PDF-1.7")})

	_, err := uc.GenerateHistoryReport(context.Background(), "user-1", "P-003")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateHistoryReport_PropagaErrorDelGenerador(t *testing.T) {
	repo := &stubProductRepo{products: map[string]*entity.Product{
		"user-1|P-001": productoDePrueba("user-1", "P-001"),
	}}
	genErr := errors.New("fuente no disponible")
	uc := NewReportUseCase(repo, &stubPDFGenerator{err: genErr})

	_, err := uc.GenerateHistoryReport(context.Background(), "user-1", "P-001")
	assert.ErrorIs(t, err, genErr)
}
