package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/audit"
	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/errs"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/shared"
)

var (
	ErrWalletAddressRequired = errs.New("redemption code and wallet address are required")
	ErrAlreadyTransferred    = errs.New("prize has already been transferred")
	ErrNotRedeemed           = errs.New("prize must be redeemed before it can be transferred")
	ErrSendFailed            = errs.New("failed to send transaction")
	// ErrPostSendUpdateFailed means the coins left the wallet but the prize
	// row still says Redeemed. Requires manual reconciliation.
	ErrPostSendUpdateFailed = errs.New("transaction sent but status update failed")
)

type TransferResult struct {
	Prize         *queries.PrizeView
	TransactionID string
	Message       string
}

type TransferCommands interface {
	Transfer(ctx context.Context, code, walletAddress string) (*TransferResult, error)
}

type transferUseCaseImpl struct {
	uow     shared.UnitOfWork
	wallet  WalletSender
	auditor AuditSink
}

func NewTransferCommands(uow shared.UnitOfWork, wallet WalletSender, auditor AuditSink) TransferCommands {
	return &transferUseCaseImpl{uow: uow, wallet: wallet, auditor: auditor}
}

func (u *transferUseCaseImpl) Transfer(ctx context.Context, code, walletAddress string) (*TransferResult, error) {
	code = strings.TrimSpace(code)
	walletAddress = strings.TrimSpace(walletAddress)
	if code == "" || walletAddress == "" {
		return nil, ErrWalletAddressRequired
	}

	// The eligibility check and the broadcast are deliberately separate
	// transactions: no row lock is held across the network call.
	var snap *shared.PrizeSnapshot
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Prizes().FindByCodeForUpdate(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPrizeNotFound
			}
			return errs.Mark(err, ErrDatabase)
		}
		switch found.Status {
		case string(prize.StatusTransferred):
			return ErrAlreadyTransferred
		case string(prize.StatusRedeemed):
			snap = found
			return nil
		default:
			return ErrNotRedeemed
		}
	})
	if err != nil {
		return nil, err
	}

	amountDoge := koinuToDoge(snap.AmountKoinu)
	sent, err := u.wallet.Send(ctx, walletAddress, amountDoge)
	if err != nil {
		return nil, errs.Mark(err, ErrSendFailed)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Prizes().MarkTransferred(ctx, snap.ID)
	})
	if err != nil {
		slog.Error("transaction sent but prize status update failed, manual reconciliation required",
			"prize_id", snap.ID,
			"redemption_code", code,
			"address", walletAddress,
			"amount_doge", amountDoge,
			"transaction_id", sent.TxID,
			"error", err.Error())
		u.auditor.Append(ctx, audit.ActionSend, audit.EntityDoge, snap.ID,
			fmt.Sprintf("Sent %g DOGE to address %s for redemption code %s but status update failed. Transaction ID: %s",
				amountDoge, walletAddress, code, sent.TxID))
		return nil, errs.Mark(err, ErrPostSendUpdateFailed)
	}
	snap.Status = string(prize.StatusTransferred)

	u.auditor.Append(ctx, audit.ActionTransfer, audit.EntityPrize, snap.ID,
		fmt.Sprintf("Transferred %g DOGE to address %s for redemption code %s. Transaction ID: %s",
			amountDoge, walletAddress, code, sent.TxID))

	return &TransferResult{
		Prize:         prizeViewFromSnapshot(snap),
		TransactionID: sent.TxID,
		Message:       "Transaction submitted successfully",
	}, nil
}
