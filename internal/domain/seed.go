package domain

import (
	"crypto/rand"
	"fmt"
)

// SeedSize is the number of seed bytes consumed by an alphabet's RNG.
const SeedSize = 32

// SeedProvider supplies seeds for pseudo-random streams.
// This abstraction allows reproducible tests without touching production seeding.
type SeedProvider interface {
	Seed() ([SeedSize]byte, error)
}

// CryptoSeed implements SeedProvider using the OS entropy source.
// Every call returns fresh bytes, so no two streams share a seed.
type CryptoSeed struct{}

// Seed reads SeedSize bytes from crypto/rand.
func (CryptoSeed) Seed() ([SeedSize]byte, error) {
	var seed [SeedSize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return seed, fmt.Errorf("reading entropy: %w", err)
	}
	return seed, nil
}

// FixedSeed implements SeedProvider with a constant seed for testing.
type FixedSeed struct {
	seed [SeedSize]byte
}

// NewFixedSeed creates a FixedSeed whose seed starts with b.
// Bytes past SeedSize are ignored; missing bytes are zero.
func NewFixedSeed(b []byte) *FixedSeed {
	s := &FixedSeed{}
	copy(s.seed[:], b)
	return s
}

// Seed returns the fixed seed.
func (s *FixedSeed) Seed() ([SeedSize]byte, error) {
	return s.seed, nil
}
