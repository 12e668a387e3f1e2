package queries

import (
	"context"

	"github.com/dogecoinfoundation/doge-prize/internal/pkg/errs"
)

var ErrWalletUnavailable = errs.New("wallet rpc unavailable")

// WalletReader is the read-only slice of the node RPC surface.
type WalletReader interface {
	Balance(ctx context.Context, minConfirmations int) (float64, error)
	Addresses(ctx context.Context) ([]string, error)
}

type WalletQueries interface {
	BalanceReport(ctx context.Context) (*WalletBalanceReport, error)
}

type walletQueriesImpl struct {
	wallet WalletReader
}

func NewWalletQueries(wallet WalletReader) WalletQueries {
	return &walletQueriesImpl{wallet: wallet}
}

func (q *walletQueriesImpl) BalanceReport(ctx context.Context) (*WalletBalanceReport, error) {
	available, err := q.wallet.Balance(ctx, 1)
	if err != nil {
		return nil, errs.Mark(err, ErrWalletUnavailable)
	}

	total, err := q.wallet.Balance(ctx, 0)
	if err != nil {
		return nil, errs.Mark(err, ErrWalletUnavailable)
	}

	addresses, err := q.wallet.Addresses(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrWalletUnavailable)
	}
	if addresses == nil {
		addresses = []string{}
	}

	return &WalletBalanceReport{
		AvailableBalance: available,
		PendingBalance:   total - available,
		TotalBalance:     total,
		Addresses:        addresses,
	}, nil
}
