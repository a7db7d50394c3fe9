package ingest

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
)

// IngestUseCase persiste el lote derivado de una carga reemplazando el
// estado previo de cada producto.
//
// Política de persistencia: upsert por producto con clave (user_id, id).
// Un producto existente se actualiza (nombre, inventario inicial) y sus
// DailyRecords se regeneran completos; los productos del catálogo que no
// vienen en el archivo nuevo quedan intactos. Ver DESIGN.md para la
// decisión frente a la variante wipe-and-recreate.
type IngestUseCase struct {
	txRunner TxRunner
}

// NewIngestUseCase construye el caso de uso.
func NewIngestUseCase(txRunner TxRunner) *IngestUseCase {
	return &IngestUseCase{txRunner: txRunner}
}

// Ingest deriva y persiste las filas parseadas para el usuario indicado.
// Rechaza la operación completa antes de tocar el storage si no hay usuario
// autenticado o si el lote viene vacío. Todo el lote se escribe en una sola
// transacción; devuelve el número de productos procesados.
func (uc *IngestUseCase) Ingest(ctx context.Context, userID string, rows []ProductRow) (int, error) {
	if userID == "" {
		return 0, domain.ErrUnauthorized
	}
	if len(rows) == 0 {
		return 0, domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(txCtx context.Context, products repository.ProductRepository) error {
		for i := range rows {
			product := BuildProduct(userID, rows[i])
			if err := products.Upsert(txCtx, product); err != nil {
				return fmt.Errorf("producto %q: %w", product.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
