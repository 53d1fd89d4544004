package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/openmaterials/auction-engine/internal/domain/errors"
	"github.com/openmaterials/auction-engine/internal/service/bidding"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so repositories run
// against whichever the context carries.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// TxFromContext retrieves the transaction placed by the transaction manager.
func TxFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// PgxTransactionManager implements bidding.TransactionManager over a pgx
// pool. The open transaction travels in the context so repositories used
// inside the callback share it.
type PgxTransactionManager struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPgxTransactionManager creates a transaction manager.
func NewPgxTransactionManager(pool *pgxpool.Pool, logger *zap.Logger) bidding.TransactionManager {
	return &PgxTransactionManager{pool: pool, logger: logger}
}

// InTx runs fn inside a transaction. Row locks taken by GetForUpdate inside
// fn serialize concurrent submissions per auction; different auctions
// proceed in parallel. A failure at begin or commit surfaces as a retryable
// storage error.
func (m *PgxTransactionManager) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return errors.NewStorageError("failed to begin transaction").WithCause(err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			m.logger.Error("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.NewStorageError("failed to commit transaction").WithCause(err)
	}
	return nil
}
