package prize

import (
	"errors"
	"fmt"
	"math"
)

// KoinuPerDoge is the number of base units in one DOGE (8 decimal places).
const KoinuPerDoge = 100_000_000

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Amount is a DOGE value held in koinu to keep arithmetic exact.
type Amount struct {
	koinu int64
}

func NewAmount(koinu int64) (Amount, error) {
	if koinu < 0 {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{koinu: koinu}, nil
}

func NewAmountFromDoge(doge float64) (Amount, error) {
	if doge < 0 || math.IsNaN(doge) || math.IsInf(doge, 0) {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{koinu: int64(math.Round(doge * KoinuPerDoge))}, nil
}

func ZeroAmount() Amount {
	return Amount{}
}

func (a Amount) Koinu() int64 {
	return a.koinu
}

func (a Amount) Doge() float64 {
	return float64(a.koinu) / KoinuPerDoge
}

func (a Amount) IsZero() bool {
	return a.koinu == 0
}

func (a Amount) Add(other Amount) Amount {
	return Amount{koinu: a.koinu + other.koinu}
}

func (a Amount) String() string {
	return fmt.Sprintf("%g DOGE", a.Doge())
}
