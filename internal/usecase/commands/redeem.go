package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/audit"
	"github.com/dogecoinfoundation/doge-prize/internal/domain/pool"
	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/errs"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/shared"
)

var (
	ErrCodeRequired  = errs.New("redemption code is required")
	ErrPrizeNotFound = errs.New("invalid redemption code")
	ErrPoolExhausted = errs.New("no prizes available in the pool")
	ErrDatabase      = errs.New("database operation failed")
)

// RedeemResult carries the post-redemption view of the prize. Redeemed is
// false when the code had already been consumed and the call only served
// the stored state back.
type RedeemResult struct {
	Prize    *queries.PrizeView
	Message  string
	Redeemed bool
}

type RedeemCommands interface {
	Redeem(ctx context.Context, code string) (*RedeemResult, error)
}

type redeemUseCaseImpl struct {
	uow     shared.UnitOfWork
	picker  *pool.Picker
	auditor AuditSink
}

func NewRedeemCommands(uow shared.UnitOfWork, picker *pool.Picker, auditor AuditSink) RedeemCommands {
	return &redeemUseCaseImpl{uow: uow, picker: picker, auditor: auditor}
}

func (u *redeemUseCaseImpl) Redeem(ctx context.Context, code string) (*RedeemResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCodeRequired
	}

	var result *RedeemResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Prizes().FindByCodeForUpdate(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPrizeNotFound
			}
			return errs.Mark(err, ErrDatabase)
		}

		if snap.Status != string(prize.StatusAvailable) {
			result = &RedeemResult{
				Prize:    prizeViewFromSnapshot(snap),
				Message:  fmt.Sprintf("This prize was previously %s", strings.ToLower(snap.Status)),
				Redeemed: false,
			}
			return nil
		}

		if snap.Type == string(prize.TypeRandom) {
			return u.redeemRandom(ctx, tx, snap, &result)
		}

		if err := tx.Prizes().MarkRedeemed(ctx, snap.ID); err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		snap.Status = string(prize.StatusRedeemed)
		result = &RedeemResult{
			Prize:    prizeViewFromSnapshot(snap),
			Message:  "Redemption code redeemed successfully",
			Redeemed: true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.recordRedeemAudit(ctx, result)
	return result, nil
}

// redeemRandom draws a denomination from the pool and binds it to the locked
// prize row. The decrement is conditional on remaining stock, so a draw lost
// to a concurrent redemption falls through to the next candidate.
func (u *redeemUseCaseImpl) redeemRandom(ctx context.Context, tx shared.Tx, snap *shared.PrizeSnapshot, result **RedeemResult) error {
	candidates, err := tx.Pool().AvailableEntries(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabase)
	}

	for len(candidates) > 0 {
		idx, err := u.picker.Pick(len(candidates))
		if err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		selected := candidates[idx]

		taken, err := tx.Pool().DecrementQuantity(ctx, selected.ID)
		if err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		if !taken {
			candidates = append(candidates[:idx], candidates[idx+1:]...)
			continue
		}

		if err := tx.Prizes().AssignRandom(ctx, snap.ID, selected.AmountKoinu); err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		snap.Type = string(prize.TypeAssigned)
		snap.AmountKoinu = selected.AmountKoinu
		snap.Status = string(prize.StatusRedeemed)
		*result = &RedeemResult{
			Prize:    prizeViewFromSnapshot(snap),
			Message:  fmt.Sprintf("Random prize redeemed successfully! You won %g DOGE", koinuToDoge(selected.AmountKoinu)),
			Redeemed: true,
		}
		return nil
	}

	return ErrPoolExhausted
}

func (u *redeemUseCaseImpl) recordRedeemAudit(ctx context.Context, result *RedeemResult) {
	p := result.Prize
	if result.Redeemed {
		u.auditor.Append(ctx, audit.ActionRedeem, audit.EntityPrize, p.ID,
			fmt.Sprintf("%s prize %d with redemption code %s was redeemed for %g DOGE",
				p.Type, p.ID, p.RedemptionCode, p.Amount))
		return
	}
	u.auditor.Append(ctx, audit.ActionUpdate, audit.EntityPrize, p.ID,
		fmt.Sprintf("%s prize %d with redemption code %s was viewed (status: %s)",
			p.Type, p.ID, p.RedemptionCode, p.Status))
}

func koinuToDoge(koinu int64) float64 {
	return float64(koinu) / prize.KoinuPerDoge
}
