package repository

import (
	"context"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las operaciones están scoped por userID: un producto nunca es
// visible ni mutable para un usuario que no lo posee.
type ProductRepository interface {
	// Upsert inserta el producto o actualiza nombre e inventario inicial si ya
	// existe (clave compuesta user_id + id), reemplazando por completo sus
	// DailyRecords. Nunca parchea registros diarios de forma parcial.
	Upsert(ctx context.Context, product *entity.Product) error
	// ListByUser lista los productos del usuario (solo ID y Name), ordenados por ID.
	ListByUser(ctx context.Context, userID string) ([]*entity.Product, error)
	// GetByUserAndID devuelve el producto con sus registros ordenados por día,
	// o nil si no existe o pertenece a otro usuario.
	GetByUserAndID(ctx context.Context, userID, id string) (*entity.Product, error)
	// DeleteByUser elimina todo el catálogo del usuario (cascada sobre DailyRecords).
	DeleteByUser(ctx context.Context, userID string) error
	// CountByUser devuelve el número de productos del usuario.
	CountByUser(ctx context.Context, userID string) (int, error)
}
