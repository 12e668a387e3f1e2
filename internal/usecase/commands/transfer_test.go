//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/audit"
	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"
	"github.com/dogecoinfoundation/doge-prize/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "D8vFz4p1L37sVtbVa41vCSmKCgm2MJcyHP"

func newTransferFixture(store *fakeStore, sender *fakeWalletSender) (commands.TransferCommands, *fakeAuditSink) {
	sink := &fakeAuditSink{}
	uow := &fakeUoW{store: store}
	return commands.NewTransferCommands(uow, sender, sink), sink
}

func TestTransfer_Validation(t *testing.T) {
	store := newFakeStore()
	uc, _ := newTransferFixture(store, &fakeWalletSender{txID: "tx"})

	_, err := uc.Transfer(context.Background(), "", testAddress)
	assert.ErrorIs(t, err, commands.ErrWalletAddressRequired)

	_, err = uc.Transfer(context.Background(), "CODE", "")
	assert.ErrorIs(t, err, commands.ErrWalletAddressRequired)

	_, err = uc.Transfer(context.Background(), "NOPE", testAddress)
	assert.ErrorIs(t, err, commands.ErrPrizeNotFound)
}

func TestTransfer_StatusGuards(t *testing.T) {
	t.Run("available prize must be redeemed first", func(t *testing.T) {
		store := newFakeStore()
		store.addPrize(builder.NewPrizeBuilder().WithCode("SPEC-1").BuildSnapshot())
		sender := &fakeWalletSender{txID: "tx"}
		uc, _ := newTransferFixture(store, sender)

		_, err := uc.Transfer(context.Background(), "SPEC-1", testAddress)
		assert.ErrorIs(t, err, commands.ErrNotRedeemed)
		assert.Empty(t, sender.sends)
	})

	t.Run("transferred prize is rejected", func(t *testing.T) {
		store := newFakeStore()
		store.addPrize(builder.NewPrizeBuilder().
			WithCode("SPEC-1").WithStatus(prize.StatusTransferred).BuildSnapshot())
		sender := &fakeWalletSender{txID: "tx"}
		uc, _ := newTransferFixture(store, sender)

		_, err := uc.Transfer(context.Background(), "SPEC-1", testAddress)
		assert.ErrorIs(t, err, commands.ErrAlreadyTransferred)
		assert.Empty(t, sender.sends)
	})
}

func TestTransfer_Success(t *testing.T) {
	store := newFakeStore()
	snap := store.addPrize(builder.NewPrizeBuilder().
		WithCode("SPEC-1").WithAmount(100).WithStatus(prize.StatusRedeemed).BuildSnapshot())
	sender := &fakeWalletSender{txID: "deadbeef"}
	uc, sink := newTransferFixture(store, sender)

	result, err := uc.Transfer(context.Background(), "SPEC-1", testAddress)
	require.NoError(t, err)

	require.Len(t, sender.sends, 1)
	assert.Equal(t, testAddress, sender.sends[0].Address)
	assert.Equal(t, float64(100), sender.sends[0].Amount)

	assert.Equal(t, "deadbeef", result.TransactionID)
	assert.Equal(t, "Transaction submitted successfully", result.Message)
	assert.Equal(t, "Transferred", result.Prize.Status)
	assert.Equal(t, "Transferred", store.prizes[snap.ID].Status)

	require.Len(t, sink.appends, 1)
	assert.Equal(t, audit.ActionTransfer, sink.appends[0].Action)
	assert.Contains(t, sink.appends[0].Details, "deadbeef")
	assert.Contains(t, sink.appends[0].Details, testAddress)
}

func TestTransfer_SendFailure(t *testing.T) {
	store := newFakeStore()
	snap := store.addPrize(builder.NewPrizeBuilder().
		WithCode("SPEC-1").WithAmount(100).WithStatus(prize.StatusRedeemed).BuildSnapshot())
	sender := &fakeWalletSender{err: errors.New("connection refused")}
	uc, sink := newTransferFixture(store, sender)

	_, err := uc.Transfer(context.Background(), "SPEC-1", testAddress)
	assert.ErrorIs(t, err, commands.ErrSendFailed)

	// No funds moved, so the prize stays claimable.
	assert.Equal(t, "Redeemed", store.prizes[snap.ID].Status)
	assert.Empty(t, sink.appends)
}

func TestTransfer_PostSendUpdateFailure(t *testing.T) {
	store := newFakeStore()
	snap := store.addPrize(builder.NewPrizeBuilder().
		WithCode("SPEC-1").WithAmount(100).WithStatus(prize.StatusRedeemed).BuildSnapshot())
	store.failMarkTransferred = true
	sender := &fakeWalletSender{txID: "deadbeef"}
	uc, sink := newTransferFixture(store, sender)

	_, err := uc.Transfer(context.Background(), "SPEC-1", testAddress)
	assert.ErrorIs(t, err, commands.ErrPostSendUpdateFailed)

	require.Len(t, sender.sends, 1)
	assert.Equal(t, "Redeemed", store.prizes[snap.ID].Status)

	// The send still leaves an audit trail for reconciliation.
	require.Len(t, sink.appends, 1)
	assert.Equal(t, audit.ActionSend, sink.appends[0].Action)
	assert.Equal(t, audit.EntityDoge, sink.appends[0].EntityType)
	assert.Contains(t, sink.appends[0].Details, "deadbeef")
}
