package usecase

import (
	"context"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
)

// ProductUseCase consultas de catálogo para el dashboard. Solo lectura;
// la escritura va siempre por el pipeline de ingesta.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// List devuelve los productos del usuario (id + nombre), ordenados por id.
func (uc *ProductUseCase) List(ctx context.Context, userID string) ([]dto.ProductSummaryResponse, error) {
	products, err := uc.productRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductSummaryResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductSummaryResponse{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

// GetHistory devuelve el detalle de un producto con su histórico derivado,
// incluyendo los montos de compra y venta por día. Devuelve nil si el
// producto no existe o pertenece a otro usuario.
func (uc *ProductUseCase) GetHistory(ctx context.Context, userID, productID string) (*dto.ProductDetailResponse, error) {
	product, err := uc.productRepo.GetByUserAndID(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductDetail(product), nil
}

func toProductDetail(p *entity.Product) *dto.ProductDetailResponse {
	history := make([]dto.DailyRecordDTO, 0, len(p.Records))
	for _, r := range p.Records {
		history = append(history, dto.DailyRecordDTO{
			Day:               r.Day,
			Inventory:         r.Inventory,
			ProcurementAmount: r.ProcurementAmount(),
			SalesAmount:       r.SalesAmount(),
			ProcurementQty:    r.ProcurementQty,
			ProcurementPrice:  r.ProcurementPrice,
			SalesQty:          r.SalesQty,
			SalesPrice:        r.SalesPrice,
		})
	}
	return &dto.ProductDetailResponse{
		ID:               p.ID,
		Name:             p.Name,
		OpeningInventory: p.OpeningInventory,
		History:          history,
	}
}
