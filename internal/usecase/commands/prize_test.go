//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/audit"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"
	"github.com/dogecoinfoundation/doge-prize/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrizeFixture(store *fakeStore) (commands.PrizeCommands, *fakeAuditSink) {
	sink := &fakeAuditSink{}
	return commands.NewPrizeCommands(&fakeUoW{store: store}, sink), sink
}

func TestCreatePrize(t *testing.T) {
	t.Run("creates a specific prize", func(t *testing.T) {
		store := newFakeStore()
		uc, sink := newPrizeFixture(store)

		view, err := uc.Create(context.Background(), commands.CreatePrizeParams{
			RedemptionCode: "SPEC-1",
			Type:           "Specific",
			Amount:         100,
		})
		require.NoError(t, err)

		assert.Equal(t, "SPEC-1", view.RedemptionCode)
		assert.Equal(t, "Available", view.Status)
		assert.Equal(t, float64(100), view.Amount)

		require.Len(t, sink.appends, 1)
		assert.Equal(t, audit.ActionCreate, sink.appends[0].Action)
	})

	t.Run("random prize ignores the amount", func(t *testing.T) {
		store := newFakeStore()
		uc, _ := newPrizeFixture(store)

		view, err := uc.Create(context.Background(), commands.CreatePrizeParams{
			RedemptionCode: "RAND-1",
			Type:           "Random",
			Amount:         999,
		})
		require.NoError(t, err)
		assert.Equal(t, float64(0), view.Amount)
	})

	t.Run("validation failures", func(t *testing.T) {
		store := newFakeStore()
		uc, _ := newPrizeFixture(store)

		_, err := uc.Create(context.Background(), commands.CreatePrizeParams{
			RedemptionCode: "", Type: "Specific", Amount: 100,
		})
		assert.ErrorIs(t, err, commands.ErrCodeRequired)

		_, err = uc.Create(context.Background(), commands.CreatePrizeParams{
			RedemptionCode: "X", Type: "Lucky", Amount: 100,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidPrizeType)

		_, err = uc.Create(context.Background(), commands.CreatePrizeParams{
			RedemptionCode: "X", Type: "Specific", Amount: 0,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidAmount)
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		store := newFakeStore()
		store.addPrize(builder.NewPrizeBuilder().WithCode("SPEC-1").BuildSnapshot())
		uc, _ := newPrizeFixture(store)

		_, err := uc.Create(context.Background(), commands.CreatePrizeParams{
			RedemptionCode: "SPEC-1", Type: "Specific", Amount: 100,
		})
		assert.ErrorIs(t, err, commands.ErrDuplicateCode)
	})
}

func TestUpdatePrize(t *testing.T) {
	store := newFakeStore()
	snap := store.addPrize(builder.NewPrizeBuilder().WithCode("SPEC-1").BuildSnapshot())
	uc, sink := newPrizeFixture(store)

	view, err := uc.Update(context.Background(), snap.ID, commands.UpdatePrizeParams{
		RedemptionCode: "SPEC-1",
		Type:           "Specific",
		Amount:         250,
		Status:         "Redeemed",
	})
	require.NoError(t, err)

	assert.Equal(t, float64(250), view.Amount)
	assert.Equal(t, "Redeemed", view.Status)
	require.Len(t, sink.appends, 1)
	assert.Equal(t, audit.ActionUpdate, sink.appends[0].Action)

	_, err = uc.Update(context.Background(), 9999, commands.UpdatePrizeParams{
		RedemptionCode: "X", Type: "Specific", Amount: 1, Status: "Available",
	})
	assert.ErrorIs(t, err, commands.ErrPrizeNotFound)

	_, err = uc.Update(context.Background(), snap.ID, commands.UpdatePrizeParams{
		RedemptionCode: "SPEC-1", Type: "Specific", Amount: 1, Status: "Lost",
	})
	assert.ErrorIs(t, err, commands.ErrInvalidPrizeState)
}

func TestDeletePrize(t *testing.T) {
	store := newFakeStore()
	snap := store.addPrize(builder.NewPrizeBuilder().WithCode("SPEC-1").BuildSnapshot())
	uc, sink := newPrizeFixture(store)

	require.NoError(t, uc.Delete(context.Background(), snap.ID))
	assert.NotContains(t, store.prizes, snap.ID)
	require.Len(t, sink.appends, 1)
	assert.Equal(t, audit.ActionDelete, sink.appends[0].Action)

	assert.ErrorIs(t, uc.Delete(context.Background(), snap.ID), commands.ErrPrizeNotFound)
}

func TestImportCSV(t *testing.T) {
	t.Run("imports valid rows with a header", func(t *testing.T) {
		store := newFakeStore()
		uc, sink := newPrizeFixture(store)

		csv := "code,type,amount\nWOW-1,Specific,100\nWOW-2,Random,0\nWOW-3,Specific,25.5\n"
		imported, err := uc.ImportCSV(context.Background(), strings.NewReader(csv), "prizes.csv")
		require.NoError(t, err)

		assert.Equal(t, int64(3), imported)
		assert.Len(t, store.prizes, 3)
		require.Len(t, sink.appends, 1)
		assert.Contains(t, sink.appends[0].Details, "prizes.csv")
	})

	t.Run("collects every row problem", func(t *testing.T) {
		store := newFakeStore()
		uc, _ := newPrizeFixture(store)

		csv := "code,type,amount\n,Specific,100\nWOW-1,Lucky,100\nWOW-2,Specific,abc\nWOW-3,Specific,0\n"
		_, err := uc.ImportCSV(context.Background(), strings.NewReader(csv), "bad.csv")

		var csvErr *commands.CSVValidationError
		require.ErrorAs(t, err, &csvErr)
		assert.Len(t, csvErr.Problems, 4)
		assert.Empty(t, store.prizes)
	})

	t.Run("rejects duplicates inside the file", func(t *testing.T) {
		store := newFakeStore()
		uc, _ := newPrizeFixture(store)

		csv := "code,type,amount\nWOW-1,Specific,100\nWOW-1,Specific,200\n"
		_, err := uc.ImportCSV(context.Background(), strings.NewReader(csv), "dup.csv")

		var csvErr *commands.CSVValidationError
		require.ErrorAs(t, err, &csvErr)
		assert.Contains(t, csvErr.Problems[0], "duplicate")
	})

	t.Run("rejects codes already in the database and imports nothing", func(t *testing.T) {
		store := newFakeStore()
		store.addPrize(builder.NewPrizeBuilder().WithCode("WOW-1").BuildSnapshot())
		uc, _ := newPrizeFixture(store)

		csv := "code,type,amount\nWOW-1,Specific,100\nWOW-2,Specific,200\n"
		_, err := uc.ImportCSV(context.Background(), strings.NewReader(csv), "existing.csv")

		var csvErr *commands.CSVValidationError
		require.ErrorAs(t, err, &csvErr)
		assert.Len(t, store.prizes, 1)
	})

	t.Run("rejects empty files", func(t *testing.T) {
		store := newFakeStore()
		uc, _ := newPrizeFixture(store)

		_, err := uc.ImportCSV(context.Background(), strings.NewReader("code,type,amount\n"), "empty.csv")

		var csvErr *commands.CSVValidationError
		require.ErrorAs(t, err, &csvErr)
	})
}
