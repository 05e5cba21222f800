package domain

import (
	"math/rand/v2"
	"sync"
)

// Rand is the randomness the corgi draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Int64N(n int64) int64
}

// lockedRand serializes access to a *rand.Rand, which is not safe for
// concurrent use.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a randomly seeded source safe for concurrent use.
func NewRand() Rand {
	return NewSeededRand(rand.Uint64(), rand.Uint64())
}

// NewSeededRand returns a deterministic source safe for concurrent use.
func NewSeededRand(seed1, seed2 uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Float64()
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.IntN(n)
}

func (l *lockedRand) Int64N(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Int64N(n)
}
