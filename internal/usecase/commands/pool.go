package commands

import (
	"context"
	"fmt"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/audit"
	domainpool "github.com/dogecoinfoundation/doge-prize/internal/domain/pool"
	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/errs"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/shared"
)

var (
	ErrPoolEntryNotFound = errs.New("prize pool entry not found")
	ErrInvalidPoolEntry  = errs.New("amount must be positive and quantity non-negative")
)

type PoolCommands interface {
	// Upsert adds quantity to the entry with the given denomination,
	// creating the entry when it does not exist yet.
	Upsert(ctx context.Context, amountDoge float64, quantity int32) (*queries.PoolEntryView, error)
	Update(ctx context.Context, id int64, amountDoge float64, quantity int32) (*queries.PoolEntryView, error)
	Delete(ctx context.Context, id int64) error
}

type poolUseCaseImpl struct {
	uow     shared.UnitOfWork
	auditor AuditSink
}

func NewPoolCommands(uow shared.UnitOfWork, auditor AuditSink) PoolCommands {
	return &poolUseCaseImpl{uow: uow, auditor: auditor}
}

func validatePoolEntry(amountDoge float64, quantity int32) (*domainpool.Entry, error) {
	amount, err := prize.NewAmountFromDoge(amountDoge)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPoolEntry)
	}
	entry, err := domainpool.NewEntry(amount, quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPoolEntry)
	}
	return entry, nil
}

func (u *poolUseCaseImpl) Upsert(ctx context.Context, amountDoge float64, quantity int32) (*queries.PoolEntryView, error) {
	entry, err := validatePoolEntry(amountDoge, quantity)
	if err != nil {
		return nil, err
	}

	var snap *shared.PoolEntrySnapshot
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		upserted, err := tx.Pool().UpsertByAmount(ctx, entry.Amount().Koinu(), entry.Quantity())
		if err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		snap = upserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.auditor.Append(ctx, audit.ActionCreate, audit.EntityPrizePool, snap.ID,
		fmt.Sprintf("Added %d prizes of %g DOGE to the prize pool", entry.Quantity(), entry.Amount().Doge()))
	return poolEntryViewFromSnapshot(snap), nil
}

func (u *poolUseCaseImpl) Update(ctx context.Context, id int64, amountDoge float64, quantity int32) (*queries.PoolEntryView, error) {
	entry, err := validatePoolEntry(amountDoge, quantity)
	if err != nil {
		return nil, err
	}

	var snap *shared.PoolEntrySnapshot
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, err := tx.Pool().Update(ctx, id, entry.Amount().Koinu(), entry.Quantity())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPoolEntryNotFound
			}
			return errs.Mark(err, ErrDatabase)
		}
		snap = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.auditor.Append(ctx, audit.ActionUpdate, audit.EntityPrizePool, snap.ID,
		fmt.Sprintf("Updated prize pool entry %d to %d prizes of %g DOGE", snap.ID, snap.Quantity, koinuToDoge(snap.AmountKoinu)))
	return poolEntryViewFromSnapshot(snap), nil
}

func (u *poolUseCaseImpl) Delete(ctx context.Context, id int64) error {
	var snap *shared.PoolEntrySnapshot
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Pool().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPoolEntryNotFound
			}
			return errs.Mark(err, ErrDatabase)
		}
		if err := tx.Pool().Delete(ctx, id); err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		snap = found
		return nil
	})
	if err != nil {
		return err
	}

	u.auditor.Append(ctx, audit.ActionDelete, audit.EntityPrizePool, snap.ID,
		fmt.Sprintf("Deleted prize pool entry with %d prizes of %g DOGE", snap.Quantity, koinuToDoge(snap.AmountKoinu)))
	return nil
}

func poolEntryViewFromSnapshot(s *shared.PoolEntrySnapshot) *queries.PoolEntryView {
	return &queries.PoolEntryView{
		ID:        s.ID,
		Amount:    koinuToDoge(s.AmountKoinu),
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
