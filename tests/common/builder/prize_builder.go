//go:build unit || e2e

package builder

import (
	"time"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/shared"
)

// PrizeBuilder assembles prize fixtures with sensible defaults.
type PrizeBuilder struct {
	ID     int64
	Code   string
	Type   prize.Type
	Amount float64
	Status prize.Status
}

func NewPrizeBuilder() *PrizeBuilder {
	return &PrizeBuilder{
		ID:     1,
		Code:   "DOGE-2024-WOW",
		Type:   prize.TypeSpecific,
		Amount: 100,
		Status: prize.StatusAvailable,
	}
}

func (b *PrizeBuilder) WithID(id int64) *PrizeBuilder {
	b.ID = id
	return b
}

func (b *PrizeBuilder) WithCode(code string) *PrizeBuilder {
	b.Code = code
	return b
}

func (b *PrizeBuilder) WithType(t prize.Type) *PrizeBuilder {
	b.Type = t
	return b
}

func (b *PrizeBuilder) WithAmount(doge float64) *PrizeBuilder {
	b.Amount = doge
	return b
}

func (b *PrizeBuilder) WithStatus(s prize.Status) *PrizeBuilder {
	b.Status = s
	return b
}

func (b *PrizeBuilder) BuildDomain() (*prize.Prize, error) {
	amount, err := prize.NewAmountFromDoge(b.Amount)
	if err != nil {
		return nil, err
	}
	return prize.NewPrize(b.Code, b.Type, amount)
}

func (b *PrizeBuilder) BuildSnapshot() shared.PrizeSnapshot {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	amountKoinu := int64(b.Amount * prize.KoinuPerDoge)
	return shared.PrizeSnapshot{
		ID:             b.ID,
		RedemptionCode: b.Code,
		Type:           b.Type.String(),
		AmountKoinu:    amountKoinu,
		Status:         b.Status.String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *PrizeBuilder) BuildView() *queries.PrizeView {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &queries.PrizeView{
		ID:             b.ID,
		RedemptionCode: b.Code,
		Amount:         b.Amount,
		Type:           b.Type.String(),
		Status:         b.Status.String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
