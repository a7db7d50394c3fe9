package usecase

import (
	"context"

	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
)

// HistoryPDFGenerator puerto de salida para la representación PDF del
// histórico de un producto.
type HistoryPDFGenerator interface {
	GenerateHistoryPDF(ctx context.Context, product *entity.Product) ([]byte, error)
}

// ReportUseCase exporta el histórico derivado de un producto como PDF.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	generator   HistoryPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(productRepo repository.ProductRepository, generator HistoryPDFGenerator) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, generator: generator}
}

// GenerateHistoryReport genera el PDF del producto indicado, scoped al
// usuario. Devuelve ErrNotFound si el producto no existe o pertenece a otro
// usuario.
func (uc *ReportUseCase) GenerateHistoryReport(ctx context.Context, userID, productID string) ([]byte, error) {
	product, err := uc.productRepo.GetByUserAndID(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateHistoryPDF(ctx, product)
}
