package queries

import (
	"context"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/errs"
)

var ErrBalanceReadFailed = errs.New("failed to read balance data")

// ActivePrizeLine is a non-Transferred prize reduced to what the balance
// calculation needs.
type ActivePrizeLine struct {
	AmountKoinu int64
	Type        string
}

type PoolLine struct {
	AmountKoinu int64
	Quantity    int32
}

type BalanceReads interface {
	// ActivePrizes returns every prize with status != Transferred.
	ActivePrizes(ctx context.Context) ([]ActivePrizeLine, error)
	// PoolLines returns every pool entry, including out-of-stock ones.
	PoolLines(ctx context.Context) ([]PoolLine, error)
}

type BalanceQueries interface {
	RequiredBalance(ctx context.Context) (*RequiredBalanceReport, error)
}

type balanceQueriesImpl struct {
	reads BalanceReads
}

func NewBalanceQueries(reads BalanceReads) BalanceQueries {
	return &balanceQueriesImpl{reads: reads}
}

// RequiredBalance computes the wallet balance needed to cover every
// outstanding obligation. The full pool value is reserved, not just the
// share matching unresolved Random codes: any remaining Random code could
// draw any denomination. Assigned prizes (resolved but not yet transferred)
// owe their locked-in amount, so they count alongside Specific ones.
func (q *balanceQueriesImpl) RequiredBalance(ctx context.Context) (*RequiredBalanceReport, error) {
	actives, err := q.reads.ActivePrizes(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrBalanceReadFailed)
	}

	var specificKoinu int64
	var randomCount int
	for _, p := range actives {
		switch prize.Type(p.Type) {
		case prize.TypeSpecific, prize.TypeAssigned:
			specificKoinu += p.AmountKoinu
		case prize.TypeRandom:
			randomCount++
		}
	}

	lines, err := q.reads.PoolLines(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrBalanceReadFailed)
	}

	var poolKoinu int64
	for _, l := range lines {
		poolKoinu += l.AmountKoinu * int64(l.Quantity)
	}

	return &RequiredBalanceReport{
		RequiredBalance:         toDoge(specificKoinu + poolKoinu),
		ActivePrizesCount:       len(actives),
		SpecificPrizesBalance:   toDoge(specificKoinu),
		ActiveRandomPrizesCount: randomCount,
		PrizePoolTotal:          toDoge(poolKoinu),
	}, nil
}

func toDoge(koinu int64) float64 {
	return float64(koinu) / prize.KoinuPerDoge
}
