package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Upsert inserta o actualiza el producto (clave compuesta user_id + id) y
// regenera por completo sus registros diarios: borrar y reinsertar, nunca
// parchear. Pensado para ejecutarse dentro de la tx del lote de ingesta.
func (r *ProductRepo) Upsert(ctx context.Context, product *entity.Product) error {
	const upsertProduct = `
		INSERT INTO products (user_id, id, name, opening_inventory, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, id) DO UPDATE
		SET name = EXCLUDED.name,
		    opening_inventory = EXCLUDED.opening_inventory,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, upsertProduct,
		product.UserID, product.ID, product.Name, product.OpeningInventory,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("upsert product: %w", err)
	}

	_, err = r.q.Exec(ctx,
		`DELETE FROM daily_records WHERE user_id = $1 AND product_id = $2`,
		product.UserID, product.ID,
	)
	if err != nil {
		return fmt.Errorf("delete daily records: %w", err)
	}

	const insertRecord = `
		INSERT INTO daily_records (user_id, product_id, day, procurement_qty, procurement_price, sales_qty, sales_price, inventory)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, rec := range product.Records {
		_, err = r.q.Exec(ctx, insertRecord,
			product.UserID, product.ID, rec.Day,
			rec.ProcurementQty, rec.ProcurementPrice,
			rec.SalesQty, rec.SalesPrice, rec.Inventory,
		)
		if err != nil {
			return fmt.Errorf("insert daily record (day %d): %w", rec.Day, err)
		}
	}
	return nil
}

// ListByUser lista los productos del usuario (solo id y nombre), ordenados por id.
func (r *ProductRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name FROM products WHERE user_id = $1 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.UserID = userID
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByUserAndID obtiene un producto con sus registros ordenados por día.
// Devuelve nil si no existe o pertenece a otro usuario.
func (r *ProductRepo) GetByUserAndID(ctx context.Context, userID, id string) (*entity.Product, error) {
	const getProduct = `
		SELECT id, user_id, name, opening_inventory, created_at, updated_at
		FROM products WHERE user_id = $1 AND id = $2`
	var p entity.Product
	err := r.q.QueryRow(ctx, getProduct, userID, id).Scan(
		&p.ID, &p.UserID, &p.Name, &p.OpeningInventory, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	const getRecords = `
		SELECT day, procurement_qty, procurement_price, sales_qty, sales_price, inventory
		FROM daily_records
		WHERE user_id = $1 AND product_id = $2
		ORDER BY day ASC`
	rows, err := r.q.Query(ctx, getRecords, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get daily records: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rec entity.DailyRecord
		if err := rows.Scan(&rec.Day, &rec.ProcurementQty, &rec.ProcurementPrice,
			&rec.SalesQty, &rec.SalesPrice, &rec.Inventory); err != nil {
			return nil, fmt.Errorf("scan daily record: %w", err)
		}
		p.Records = append(p.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteByUser elimina el catálogo completo del usuario. Los daily_records
// caen por cascada del FK.
func (r *ProductRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete products: %w", err)
	}
	return nil
}

// CountByUser devuelve el número de productos del usuario.
func (r *ProductRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}
