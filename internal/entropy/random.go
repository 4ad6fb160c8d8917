// Package entropy provides the single random-source seam for the
// simulation. Every stochastic draw (weather, luck, customer
// generation, budgets) flows through a Source so that a seeded run
// replays identically.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// Source yields uniform random draws.
type Source interface {
	// Float returns a uniform float64 in [0, 1).
	Float() float64
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// NewSeeded returns a deterministic Source. Two sources with the same
// seed produce the same draw sequence.
func NewSeeded(seed int64) Source {
	return &seeded{rng: mathrand.New(mathrand.NewSource(seed))}
}

type seeded struct {
	rng *mathrand.Rand
}

func (s *seeded) Float() float64 {
	return s.rng.Float64()
}

func (s *seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Default returns a crypto-backed Source for unseeded play.
func Default() Source {
	return cryptoSource{}
}

type cryptoSource struct{}

func (cryptoSource) Float() float64 {
	return cryptoRandFloat()
}

func (c cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("entropy: Intn with non-positive n")
	}
	return int(c.Float() * float64(n))
}

// cryptoRandFloat generates a random float64 in [0, 1) from crypto/rand.
func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// This should never happen but return 0.5 as a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
