package snake

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is the RNG provider backed by a seeded PCG source.
type Random struct {
	r *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededRandom seeds from the wall clock.
func NewTimeSeededRandom() *Random {
	return NewRandom(uint64(time.Now().UnixNano()))
}

func (r *Random) Range(lo, hi int) int {
	return lo + r.r.Intn(hi-lo)
}
