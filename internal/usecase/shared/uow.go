package shared

import (
	"context"
	"time"
)

// UnitOfWork runs a function inside a single atomic transaction. The
// Random-redemption path (record update + pool decrement) must commit both
// writes or neither.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write-side repositories bound to one open transaction.
type Tx interface {
	Prizes() PrizeRepository
	Pool() PoolRepository
	Credentials() CredentialRepository
}

// PrizeSnapshot is the row-level view the command layer works with.
type PrizeSnapshot struct {
	ID             int64
	RedemptionCode string
	Type           string
	AmountKoinu    int64
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PoolEntrySnapshot struct {
	ID          int64
	AmountKoinu int64
	Quantity    int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PrizeRepository interface {
	// FindByCodeForUpdate locks the prize row so concurrent redemptions of
	// the same code serialize on it.
	FindByCodeForUpdate(ctx context.Context, code string) (*PrizeSnapshot, error)
	FindByID(ctx context.Context, id int64) (*PrizeSnapshot, error)
	Create(ctx context.Context, code, typ string, amountKoinu int64) (*PrizeSnapshot, error)
	CreateBatch(ctx context.Context, prizes []PrizeSnapshot) (int64, error)
	FindExistingCodes(ctx context.Context, codes []string) ([]string, error)
	// MarkRedeemed is guarded on status = Available.
	MarkRedeemed(ctx context.Context, id int64) error
	// AssignRandom sets amount, flips type to Assigned and status to
	// Redeemed, guarded on status = Available.
	AssignRandom(ctx context.Context, id int64, amountKoinu int64) error
	// MarkTransferred is guarded on status = Redeemed.
	MarkTransferred(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, code, typ string, amountKoinu int64, status string) (*PrizeSnapshot, error)
	Delete(ctx context.Context, id int64) error
}

type PoolRepository interface {
	// AvailableEntries returns in-stock entries ordered by ascending amount.
	AvailableEntries(ctx context.Context) ([]PoolEntrySnapshot, error)
	// DecrementQuantity conditionally takes one unit (quantity > 0 guard)
	// and reports whether a unit was actually taken.
	DecrementQuantity(ctx context.Context, id int64) (bool, error)
	UpsertByAmount(ctx context.Context, amountKoinu int64, quantity int32) (*PoolEntrySnapshot, error)
	Update(ctx context.Context, id int64, amountKoinu int64, quantity int32) (*PoolEntrySnapshot, error)
	FindByID(ctx context.Context, id int64) (*PoolEntrySnapshot, error)
	Delete(ctx context.Context, id int64) error
}

type CredentialRepository interface {
	PasswordHash(ctx context.Context) (string, error)
	SetPasswordHash(ctx context.Context, hash string) error
}
