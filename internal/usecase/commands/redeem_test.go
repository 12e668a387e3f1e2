//go:build unit

package commands_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/audit"
	"github.com/dogecoinfoundation/doge-prize/internal/domain/pool"
	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"
	"github.com/dogecoinfoundation/doge-prize/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedeemFixture(store *fakeStore) (commands.RedeemCommands, *fakeAuditSink) {
	sink := &fakeAuditSink{}
	uow := &fakeUoW{store: store}
	picker := pool.NewPicker(rand.NewSource(1))
	return commands.NewRedeemCommands(uow, picker, sink), sink
}

func TestRedeem_Validation(t *testing.T) {
	store := newFakeStore()
	uc, _ := newRedeemFixture(store)

	_, err := uc.Redeem(context.Background(), "")
	assert.ErrorIs(t, err, commands.ErrCodeRequired)

	_, err = uc.Redeem(context.Background(), "   ")
	assert.ErrorIs(t, err, commands.ErrCodeRequired)

	_, err = uc.Redeem(context.Background(), "NOPE")
	assert.ErrorIs(t, err, commands.ErrPrizeNotFound)
}

func TestRedeem_SpecificPrize(t *testing.T) {
	store := newFakeStore()
	store.addPrize(builder.NewPrizeBuilder().WithCode("SPEC-1").WithAmount(100).BuildSnapshot())
	uc, sink := newRedeemFixture(store)

	result, err := uc.Redeem(context.Background(), "SPEC-1")
	require.NoError(t, err)

	assert.True(t, result.Redeemed)
	assert.Equal(t, "Redemption code redeemed successfully", result.Message)
	assert.Equal(t, "Redeemed", result.Prize.Status)
	assert.Equal(t, float64(100), result.Prize.Amount)

	stored := store.prizes[result.Prize.ID]
	assert.Equal(t, "Redeemed", stored.Status)

	require.Len(t, sink.appends, 1)
	assert.Equal(t, audit.ActionRedeem, sink.appends[0].Action)
	assert.Equal(t, audit.EntityPrize, sink.appends[0].EntityType)
	assert.Contains(t, sink.appends[0].Details, "SPEC-1")
}

func TestRedeem_IsIdempotentView(t *testing.T) {
	t.Run("previously redeemed", func(t *testing.T) {
		store := newFakeStore()
		store.addPrize(builder.NewPrizeBuilder().
			WithCode("SPEC-1").WithStatus(prize.StatusRedeemed).BuildSnapshot())
		uc, sink := newRedeemFixture(store)

		result, err := uc.Redeem(context.Background(), "SPEC-1")
		require.NoError(t, err)

		assert.False(t, result.Redeemed)
		assert.Equal(t, "This prize was previously redeemed", result.Message)
		assert.Equal(t, "Redeemed", result.Prize.Status)

		require.Len(t, sink.appends, 1)
		assert.Equal(t, audit.ActionUpdate, sink.appends[0].Action)
		assert.Contains(t, sink.appends[0].Details, "viewed")
	})

	t.Run("previously transferred", func(t *testing.T) {
		store := newFakeStore()
		store.addPrize(builder.NewPrizeBuilder().
			WithCode("SPEC-1").WithStatus(prize.StatusTransferred).BuildSnapshot())
		uc, _ := newRedeemFixture(store)

		result, err := uc.Redeem(context.Background(), "SPEC-1")
		require.NoError(t, err)

		assert.False(t, result.Redeemed)
		assert.Equal(t, "This prize was previously transferred", result.Message)
	})

	t.Run("second redemption does not change state again", func(t *testing.T) {
		store := newFakeStore()
		store.addPrize(builder.NewPrizeBuilder().WithCode("SPEC-1").BuildSnapshot())
		uc, _ := newRedeemFixture(store)

		first, err := uc.Redeem(context.Background(), "SPEC-1")
		require.NoError(t, err)
		assert.True(t, first.Redeemed)

		second, err := uc.Redeem(context.Background(), "SPEC-1")
		require.NoError(t, err)
		assert.False(t, second.Redeemed)
		assert.Equal(t, first.Prize.Status, second.Prize.Status)
	})
}

func TestRedeem_RandomPrize(t *testing.T) {
	t.Run("draws from the pool and locks the amount in", func(t *testing.T) {
		store := newFakeStore()
		store.addPrize(builder.NewPrizeBuilder().
			WithCode("RAND-1").WithType(prize.TypeRandom).WithAmount(0).BuildSnapshot())
		store.addPoolEntry(100, 50*prize.KoinuPerDoge, 3)
		uc, sink := newRedeemFixture(store)

		result, err := uc.Redeem(context.Background(), "RAND-1")
		require.NoError(t, err)

		assert.True(t, result.Redeemed)
		assert.Equal(t, "Assigned", result.Prize.Type)
		assert.Equal(t, "Redeemed", result.Prize.Status)
		assert.Equal(t, float64(50), result.Prize.Amount)
		assert.Equal(t, "Random prize redeemed successfully! You won 50 DOGE", result.Message)

		assert.Equal(t, int32(2), store.pool[100].Quantity)

		require.Len(t, sink.appends, 1)
		assert.Equal(t, audit.ActionRedeem, sink.appends[0].Action)
		assert.Contains(t, sink.appends[0].Details, "50 DOGE")
	})

	t.Run("empty pool leaves the prize untouched", func(t *testing.T) {
		store := newFakeStore()
		snap := store.addPrize(builder.NewPrizeBuilder().
			WithCode("RAND-1").WithType(prize.TypeRandom).WithAmount(0).BuildSnapshot())
		store.addPoolEntry(100, 50*prize.KoinuPerDoge, 0)
		uc, sink := newRedeemFixture(store)

		_, err := uc.Redeem(context.Background(), "RAND-1")
		assert.ErrorIs(t, err, commands.ErrPoolExhausted)

		assert.Equal(t, "Available", store.prizes[snap.ID].Status)
		assert.Equal(t, "Random", store.prizes[snap.ID].Type)
		assert.Empty(t, sink.appends)
	})

	t.Run("re-draws when a candidate is emptied concurrently", func(t *testing.T) {
		store := newFakeStore()
		store.addPrize(builder.NewPrizeBuilder().
			WithCode("RAND-1").WithType(prize.TypeRandom).WithAmount(0).BuildSnapshot())
		store.addPoolEntry(100, 25*prize.KoinuPerDoge, 1)
		store.addPoolEntry(101, 75*prize.KoinuPerDoge, 1)
		store.denyDecrements = 1
		uc, _ := newRedeemFixture(store)

		result, err := uc.Redeem(context.Background(), "RAND-1")
		require.NoError(t, err)

		assert.True(t, result.Redeemed)
		assert.Equal(t, 2, store.decrementCalls)
		assert.Contains(t, []float64{25, 75}, result.Prize.Amount)
	})

	t.Run("assignment failure rolls the decrement back", func(t *testing.T) {
		store := newFakeStore()
		snap := store.addPrize(builder.NewPrizeBuilder().
			WithCode("RAND-1").WithType(prize.TypeRandom).WithAmount(0).BuildSnapshot())
		store.addPoolEntry(100, 50*prize.KoinuPerDoge, 3)
		store.failAssignRandom = true
		uc, sink := newRedeemFixture(store)

		_, err := uc.Redeem(context.Background(), "RAND-1")
		assert.ErrorIs(t, err, commands.ErrDatabase)

		assert.Equal(t, "Available", store.prizes[snap.ID].Status)
		assert.Equal(t, "Random", store.prizes[snap.ID].Type)
		assert.Equal(t, int64(0), store.prizes[snap.ID].AmountKoinu)
		assert.Equal(t, int32(3), store.pool[100].Quantity)
		assert.Empty(t, sink.appends)
	})

	t.Run("drains the pool exactly and then exhausts", func(t *testing.T) {
		store := newFakeStore()
		codes := []string{"RAND-1", "RAND-2", "RAND-3", "RAND-4"}
		for _, code := range codes {
			store.addPrize(builder.NewPrizeBuilder().WithID(0).
				WithCode(code).WithType(prize.TypeRandom).WithAmount(0).BuildSnapshot())
		}
		store.addPoolEntry(100, 10*prize.KoinuPerDoge, 2)
		store.addPoolEntry(101, 50*prize.KoinuPerDoge, 1)
		uc, _ := newRedeemFixture(store)

		var totalWon float64
		for _, code := range codes[:3] {
			result, err := uc.Redeem(context.Background(), code)
			require.NoError(t, err)
			require.True(t, result.Redeemed)
			totalWon += result.Prize.Amount
		}

		assert.Equal(t, float64(70), totalWon)
		assert.Equal(t, int32(0), store.pool[100].Quantity)
		assert.Equal(t, int32(0), store.pool[101].Quantity)

		_, err := uc.Redeem(context.Background(), codes[3])
		assert.ErrorIs(t, err, commands.ErrPoolExhausted)
	})

	t.Run("all candidates lost exhausts the pool", func(t *testing.T) {
		store := newFakeStore()
		snap := store.addPrize(builder.NewPrizeBuilder().
			WithCode("RAND-1").WithType(prize.TypeRandom).WithAmount(0).BuildSnapshot())
		store.addPoolEntry(100, 25*prize.KoinuPerDoge, 1)
		store.addPoolEntry(101, 75*prize.KoinuPerDoge, 1)
		store.denyDecrements = 2
		uc, _ := newRedeemFixture(store)

		_, err := uc.Redeem(context.Background(), "RAND-1")
		assert.ErrorIs(t, err, commands.ErrPoolExhausted)
		assert.Equal(t, "Available", store.prizes[snap.ID].Status)
	})
}
