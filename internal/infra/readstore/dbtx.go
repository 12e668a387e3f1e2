package readstore

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DBTX is the read-only query surface of *pgxpool.Pool.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
