// Package random provides the deterministic random source shared by maze
// generators and the random-mouse solver.
//
// Policy:
//   - Determinism: the same seed yields the same stream on every platform.
//   - No globals: every consumer receives its *rand.Rand explicitly.
//   - Seed 0 maps to DefaultSeed, so a zero-valued configuration is reproducible.
//
// Concurrency:
//   - *rand.Rand is not goroutine-safe. Use Derive to hand each goroutine its
//     own stream.
package random

import (
	"errors"
	"math/rand"
)

// DefaultSeed is used when callers pass seed 0.
const DefaultSeed int64 = 1

// ErrNegativeLength indicates a negative permutation length.
var ErrNegativeLength = errors.New("random: negative length")

// New returns a deterministic generator seeded with seed (DefaultSeed if 0).
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent stream from base and a stream id. base is
// advanced by one draw so repeated derivations with the same id differ.
// A nil base derives from DefaultSeed.
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// Shuffle permutes s in place (Fisher–Yates). A nil rng uses New(0).
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](s []T, rng *rand.Rand) {
	if len(s) <= 1 {
		return
	}
	if rng == nil {
		rng = New(0)
	}
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Perm returns a permutation of 0..n-1 drawn from rng.
// Complexity: O(n).
func Perm(n int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(p, rng)
	return p, nil
}

// Pick returns a uniformly chosen element of s. s must be non-empty.
func Pick[T any](s []T, rng *rand.Rand) T {
	return s[rng.Intn(len(s))]
}

// Chance reports true with probability p.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
