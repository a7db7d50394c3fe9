package ingest

import (
	"context"

	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de productos atado a esa tx. Garantiza atomicidad a nivel de
// lote: o se confirman todos los productos de la carga o ninguno, y ante
// error o timeout el catálogo previo del usuario queda intacto.
//
// El contexto que recibe fn es el de la transacción (puede llevar el
// presupuesto de tiempo del lote); toda operación del repositorio debe
// usarlo, no el contexto original del caller.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context, products repository.ProductRepository) error) error
}
