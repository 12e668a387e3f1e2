package repository

import (
	"context"

	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const poolColumns = "id, amount, quantity, created_at, updated_at"

type PoolRepository struct {
	db DBTX
}

func NewPoolRepository(db DBTX) *PoolRepository {
	return &PoolRepository{db: db}
}

func scanPoolEntry(row pgx.Row) (*shared.PoolEntrySnapshot, error) {
	var e shared.PoolEntrySnapshot
	err := row.Scan(&e.ID, &e.AmountKoinu, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PoolRepository) AvailableEntries(ctx context.Context) ([]shared.PoolEntrySnapshot, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+poolColumns+" FROM prize_pool WHERE quantity > 0 ORDER BY amount ASC")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available pool entries", err)
	}
	defer rows.Close()

	var entries []shared.PoolEntrySnapshot
	for rows.Next() {
		e, err := scanPoolEntry(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pool entry", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pool entries", err)
	}
	return entries, nil
}

// DecrementQuantity takes one unit off an entry. The quantity > 0 guard
// keeps two racing redemptions from driving the last unit negative.
func (r *PoolRepository) DecrementQuantity(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE prize_pool SET quantity = quantity - 1, updated_at = now() WHERE id = $1 AND quantity > 0", id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement pool quantity", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PoolRepository) UpsertByAmount(ctx context.Context, amountKoinu int64, quantity int32) (*shared.PoolEntrySnapshot, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO prize_pool (amount, quantity) VALUES ($1, $2)
		 ON CONFLICT (amount) DO UPDATE
		 SET quantity = prize_pool.quantity + EXCLUDED.quantity, updated_at = now()
		 RETURNING `+poolColumns,
		amountKoinu, quantity)
	e, err := scanPoolEntry(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert pool entry", err)
	}
	return e, nil
}

func (r *PoolRepository) Update(ctx context.Context, id int64, amountKoinu int64, quantity int32) (*shared.PoolEntrySnapshot, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE prize_pool SET amount = $2, quantity = $3, updated_at = now()
		 WHERE id = $1
		 RETURNING `+poolColumns,
		id, amountKoinu, quantity)
	e, err := scanPoolEntry(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("pool entry not found", err, infra.KindNotFound)
		}
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("pool denomination already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to update pool entry", err)
	}
	return e, nil
}

func (r *PoolRepository) FindByID(ctx context.Context, id int64) (*shared.PoolEntrySnapshot, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+poolColumns+" FROM prize_pool WHERE id = $1", id)
	e, err := scanPoolEntry(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("pool entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pool entry", err)
	}
	return e, nil
}

func (r *PoolRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM prize_pool WHERE id = $1", id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pool entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pool entry not found", nil, infra.KindNotFound)
	}
	return nil
}
