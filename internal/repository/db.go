package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgForeignKeyViolation = "23503"
)

// Named in the schema migration.
const constraintPreventSelfFollow = "prevent_self_follow"

var (
	// ErrDuplicate reports a unique constraint violation.
	ErrDuplicate        = errors.New("duplicate record")
	// ErrSelfReference reports a follow edge pointing back at its follower.
	ErrSelfReference    = errors.New("self reference")
	// ErrReferenceMissing reports a foreign key pointing at a row that no longer exists.
	ErrReferenceMissing = errors.New("referenced record missing")
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// Transactor runs a function inside a single database transaction. Repository
// calls made with the context passed to fn join that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pgTransactor struct {
	pool *pgxpool.Pool
}

// NewTransactor returns a pgx-backed Transactor.
func NewTransactor(pool *pgxpool.Pool) Transactor {
	return &pgTransactor{pool: pool}
}

func (t *pgTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return pgx.BeginTxFunc(ctx, t.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or the pool.
func conn(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// translateConstraint maps known constraint violations to repository sentinels.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == pgUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	case pgErr.Code == pgCheckViolation && pgErr.ConstraintName == constraintPreventSelfFollow:
		return ErrSelfReference
	case pgErr.Code == pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrReferenceMissing, pgErr.ConstraintName)
	default:
		return err
	}
}
