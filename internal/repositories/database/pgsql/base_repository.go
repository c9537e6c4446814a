package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bankledger/internal/apperrors"
)

// BaseRepository provides common transaction handling for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// RunAtomic executes fn inside a single database transaction. The
// transaction is rolled back unless fn returns nil and the commit succeeds.
// Begin/commit failures surface as apperrors.ErrStorage; errors returned by
// fn pass through unchanged.
func (r *BaseRepository) RunAtomic(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", apperrors.ErrStorage, err)
	}
	defer func() {
		// Rollback after a successful commit reports ErrTxClosed; that is
		// the normal path, not a failure.
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", apperrors.ErrStorage, err)
	}
	return nil
}
