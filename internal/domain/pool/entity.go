package pool

import (
	"errors"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
)

var (
	ErrNegativeQuantity = errors.New("pool quantity cannot be negative")
	ErrZeroDenomination = errors.New("pool denomination must be positive")
)

// Entry is one denomination of the shared Random-prize inventory. An entry
// with zero quantity stays visible but is never selectable.
type Entry struct {
	amount   prize.Amount
	quantity int32
}

func NewEntry(amount prize.Amount, quantity int32) (*Entry, error) {
	if amount.IsZero() {
		return nil, ErrZeroDenomination
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	return &Entry{amount: amount, quantity: quantity}, nil
}

func (e *Entry) Amount() prize.Amount { return e.amount }
func (e *Entry) Quantity() int32      { return e.quantity }
