package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/retail-analytics-api/internal/application/ingest"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
)

// Ensure TxRunner implements ingest.TxRunner.
var _ ingest.TxRunner = (*TxRunner)(nil)

// TxBudgets presupuestos de la transacción de ingesta. LockWait acota la
// espera por locks y TxTimeout la duración total; ambos vienen de config
// para que una carga contenida no cuelgue el request indefinidamente.
type TxBudgets struct {
	LockWait  time.Duration
	TxTimeout time.Duration
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con los
// presupuestos aplicados vía SET LOCAL (expiran solos al cerrar la tx).
type TxRunner struct {
	pool    *pgxpool.Pool
	budgets TxBudgets
}

// NewTxRunner construye el runner con el pool y los presupuestos.
func NewTxRunner(pool *pgxpool.Pool, budgets TxBudgets) *TxRunner {
	return &TxRunner{pool: pool, budgets: budgets}
}

// Run inicia una transacción, ejecuta fn con un repositorio atado a la tx y
// hace Commit o Rollback. Cualquier error, timeout o cancelación del request
// en cualquier punto deja el catálogo exactamente como estaba antes. fn
// recibe el contexto acotado por TxTimeout, de modo que el presupuesto
// cancela también las escrituras del lote, no solo Begin y Commit.
func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context, products repository.ProductRepository) error) error {
	if r.budgets.TxTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.budgets.TxTimeout)
		defer cancel()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// SET LOCAL no acepta parámetros bind; los valores vienen de config, no
	// del usuario.
	if r.budgets.LockWait > 0 {
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.budgets.LockWait.Milliseconds())); err != nil {
			return fmt.Errorf("set lock_timeout: %w", err)
		}
	}
	if r.budgets.TxTimeout > 0 {
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = '%dms'", r.budgets.TxTimeout.Milliseconds())); err != nil {
			return fmt.Errorf("set statement_timeout: %w", err)
		}
	}

	if err := fn(ctx, NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
