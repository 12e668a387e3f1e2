package repository

import (
	"context"

	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const prizeColumns = "id, redemption_code, type, amount, status, created_at, updated_at"

type PrizeRepository struct {
	db DBTX
}

func NewPrizeRepository(db DBTX) *PrizeRepository {
	return &PrizeRepository{db: db}
}

func scanPrize(row pgx.Row) (*shared.PrizeSnapshot, error) {
	var p shared.PrizeSnapshot
	err := row.Scan(&p.ID, &p.RedemptionCode, &p.Type, &p.AmountKoinu, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PrizeRepository) FindByCodeForUpdate(ctx context.Context, code string) (*shared.PrizeSnapshot, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+prizeColumns+" FROM prizes WHERE redemption_code = $1 FOR UPDATE", code)
	p, err := scanPrize(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("prize not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find prize by code", err)
	}
	return p, nil
}

func (r *PrizeRepository) FindByID(ctx context.Context, id int64) (*shared.PrizeSnapshot, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+prizeColumns+" FROM prizes WHERE id = $1", id)
	p, err := scanPrize(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("prize not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find prize by id", err)
	}
	return p, nil
}

func (r *PrizeRepository) Create(ctx context.Context, code, typ string, amountKoinu int64) (*shared.PrizeSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO prizes (redemption_code, type, amount, status)
		 VALUES ($1, $2, $3, 'Available')
		 RETURNING `+prizeColumns,
		code, typ, amountKoinu)
	p, err := scanPrize(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("redemption code already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create prize", err)
	}
	return p, nil
}

func (r *PrizeRepository) CreateBatch(ctx context.Context, prizes []shared.PrizeSnapshot) (int64, error) {
	var count int64
	for _, p := range prizes {
		tag, err := r.db.Exec(ctx,
			`INSERT INTO prizes (redemption_code, type, amount, status)
			 VALUES ($1, $2, $3, 'Available')`,
			p.RedemptionCode, p.Type, p.AmountKoinu)
		if err != nil {
			if isUniqueViolation(err) {
				return count, infra.WrapRepoErr("redemption code already exists", err, infra.KindDuplicateKey)
			}
			return count, infra.WrapRepoErr("failed to create prize batch", err)
		}
		count += tag.RowsAffected()
	}
	return count, nil
}

func (r *PrizeRepository) FindExistingCodes(ctx context.Context, codes []string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT redemption_code FROM prizes WHERE redemption_code = ANY($1)", codes)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to look up existing codes", err)
	}
	defer rows.Close()

	var existing []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, infra.WrapRepoErr("failed to scan existing code", err)
		}
		existing = append(existing, code)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read existing codes", err)
	}
	return existing, nil
}

func (r *PrizeRepository) MarkRedeemed(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE prizes SET status = 'Redeemed', updated_at = now() WHERE id = $1 AND status = 'Available'", id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark prize redeemed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("prize was not available", nil, infra.KindConflict)
	}
	return nil
}

func (r *PrizeRepository) AssignRandom(ctx context.Context, id int64, amountKoinu int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE prizes SET status = 'Redeemed', type = 'Assigned', amount = $2, updated_at = now()
		 WHERE id = $1 AND status = 'Available'`,
		id, amountKoinu)
	if err != nil {
		return infra.WrapRepoErr("failed to assign random prize", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("prize was not available", nil, infra.KindConflict)
	}
	return nil
}

func (r *PrizeRepository) MarkTransferred(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE prizes SET status = 'Transferred', updated_at = now() WHERE id = $1 AND status = 'Redeemed'", id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark prize transferred", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("prize was not redeemed", nil, infra.KindConflict)
	}
	return nil
}

func (r *PrizeRepository) Update(ctx context.Context, id int64, code, typ string, amountKoinu int64, status string) (*shared.PrizeSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE prizes SET redemption_code = $2, type = $3, amount = $4, status = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+prizeColumns,
		id, code, typ, amountKoinu, status)
	p, err := scanPrize(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("prize not found", err, infra.KindNotFound)
		}
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("redemption code already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to update prize", err)
	}
	return p, nil
}

func (r *PrizeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM prizes WHERE id = $1", id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete prize", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("prize not found", nil, infra.KindNotFound)
	}
	return nil
}
