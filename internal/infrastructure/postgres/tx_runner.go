package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/homer-api/internal/domain/repository"
)

// TxRunner ejecuta funciones dentro de una transacción PostgreSQL,
// entregando repositorios atados a la tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunWithItems ejecuta fn con un ItemRepository transaccional.
// Commit si fn devuelve nil, rollback en cualquier otro caso.
func (t *TxRunner) RunWithItems(ctx context.Context, fn func(items repository.ItemRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewItemRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
