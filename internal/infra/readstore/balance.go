package readstore

import (
	"context"

	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
)

// BalanceReadStore serves the required-balance aggregation. Reads only;
// reconciliation never mutates.
type BalanceReadStore struct {
	db DBTX
}

func NewBalanceReadStore(db DBTX) *BalanceReadStore {
	return &BalanceReadStore{db: db}
}

func (r *BalanceReadStore) ActivePrizes(ctx context.Context) ([]queries.ActivePrizeLine, error) {
	rows, err := r.db.Query(ctx,
		"SELECT amount, type FROM prizes WHERE status <> 'Transferred'")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active prizes", err)
	}
	defer rows.Close()

	var lines []queries.ActivePrizeLine
	for rows.Next() {
		var l queries.ActivePrizeLine
		if err := rows.Scan(&l.AmountKoinu, &l.Type); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active prize", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read active prizes", err)
	}
	return lines, nil
}

func (r *BalanceReadStore) PoolLines(ctx context.Context) ([]queries.PoolLine, error) {
	rows, err := r.db.Query(ctx, "SELECT amount, quantity FROM prize_pool")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query pool lines", err)
	}
	defer rows.Close()

	var lines []queries.PoolLine
	for rows.Next() {
		var l queries.PoolLine
		if err := rows.Scan(&l.AmountKoinu, &l.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pool line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pool lines", err)
	}
	return lines, nil
}
