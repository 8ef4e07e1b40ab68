package core

import "math/rand"

// Rand is the source of randomness injected into game engines.
// Engines never reach for an ambient RNG; the platform seeds a real
// source from RuntimeConfig.Seed, and tests plug in a scripted one to
// assert exact placement outcomes.
type Rand interface {
	// Intn returns a non-negative pseudo-random int in [0, n).
	Intn(n int) int
	// Float64 returns a pseudo-random float64 in [0.0, 1.0).
	Float64() float64
}

// NewRand returns a deterministic Rand seeded with the given value.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

var _ Rand = (*rand.Rand)(nil)

// SequenceRand is a scripted Rand for tests. Intn returns the next queued
// value modulo n; Float64 returns the next queued value scaled into [0, 1).
// Both wrap around when the script is exhausted, so a single-entry script
// behaves as a constant source.
type SequenceRand struct {
	Seq []int
	pos int
}

func (s *SequenceRand) next() int {
	if len(s.Seq) == 0 {
		return 0
	}
	v := s.Seq[s.pos%len(s.Seq)]
	s.pos++
	return v
}

// Intn returns the next scripted value modulo n.
func (s *SequenceRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := s.next() % n
	if v < 0 {
		v += n
	}
	return v
}

// Float64 returns the next scripted value mapped into [0, 1).
func (s *SequenceRand) Float64() float64 {
	return float64(s.Intn(1000)) / 1000.0
}
