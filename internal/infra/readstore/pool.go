package readstore

import (
	"context"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
)

type PoolReadStore struct {
	db DBTX
}

func NewPoolReadStore(db DBTX) *PoolReadStore {
	return &PoolReadStore{db: db}
}

func (r *PoolReadStore) ListAll(ctx context.Context) ([]*queries.PoolEntryView, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, amount, quantity, created_at, updated_at FROM prize_pool ORDER BY amount ASC")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pool entries", err)
	}
	defer rows.Close()

	var views []*queries.PoolEntryView
	for rows.Next() {
		var v queries.PoolEntryView
		var amountKoinu int64
		if err := rows.Scan(&v.ID, &amountKoinu, &v.Quantity, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pool entry", err)
		}
		v.Amount = float64(amountKoinu) / prize.KoinuPerDoge
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pool entries", err)
	}
	return views, nil
}
