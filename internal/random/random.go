// Package random provides the integer sampling used to draw quiz operands.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the samplers need.
type Source interface {
	Intn(n int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a generator seeded with seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSource returns a generator seeded from crypto/rand, falling back to the
// wall clock when the system entropy source fails.
func NewSource() *rand.Rand {
	seed, err := NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return New(seed)
}

// Int returns a uniformly distributed integer in [min, max] inclusive.
// Callers must pass min <= max.
func Int(src Source, min, max int) int {
	return src.Intn(max-min+1) + min
}
