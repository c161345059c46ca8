// Package random isolates the engine's only source of non-determinism
// behind an injectable interface so tests can fix the outcome.
package random

import (
	"math/rand"
	"time"
)

// Source yields uniform random integers.
type Source interface {
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
}

// rngSource wraps math/rand with a private state.
type rngSource struct {
	rng *rand.Rand
}

func (s *rngSource) IntN(n int) int { return s.rng.Intn(n) }

// New returns a Source seeded with seed, reproducible across runs.
func New(seed int64) Source {
	return &rngSource{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // non-cryptographic by design
}

// Default returns a time-seeded Source for production use.
func Default() Source {
	return New(time.Now().UnixNano())
}

// Sequence is a fixed-sequence Source for deterministic tests. Values are
// reduced modulo n and replayed round-robin.
type Sequence struct {
	Values []int
	pos    int
}

// IntN returns the next fixed value modulo n, or 0 when no values are set.
func (s *Sequence) IntN(n int) int {
	if len(s.Values) == 0 || n <= 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return ((v % n) + n) % n
}
