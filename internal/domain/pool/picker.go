package pool

import (
	"errors"
	"math/rand"
	"sync"
)

var ErrNoCandidates = errors.New("no pool entries to pick from")

// Picker selects a candidate index uniformly at random. Every distinct
// in-stock denomination is equally likely regardless of how many units
// remain at that denomination; rare high-value prizes are not suppressed
// by abundant low-value ones. Callers pass candidates in ascending-amount
// order so draws are reproducible under a seeded source.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPicker(src rand.Source) *Picker {
	return &Picker{rng: rand.New(src)}
}

func (p *Picker) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoCandidates
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n), nil
}
