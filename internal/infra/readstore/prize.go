package readstore

import (
	"context"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
)

type PrizeReadStore struct {
	db DBTX
}

func NewPrizeReadStore(db DBTX) *PrizeReadStore {
	return &PrizeReadStore{db: db}
}

func (r *PrizeReadStore) ListAll(ctx context.Context) ([]*queries.PrizeView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, redemption_code, type, amount, status, created_at, updated_at
		 FROM prizes ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list prizes", err)
	}
	defer rows.Close()

	var views []*queries.PrizeView
	for rows.Next() {
		var v queries.PrizeView
		var amountKoinu int64
		if err := rows.Scan(&v.ID, &v.RedemptionCode, &v.Type, &amountKoinu, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan prize", err)
		}
		v.Amount = float64(amountKoinu) / prize.KoinuPerDoge
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read prizes", err)
	}
	return views, nil
}
