package core

import (
	"hash/fnv"
	"math"
)

// RNG is a deterministic pseudo-random number generator (xorshift64).
// The same seed always yields the same tile sequence.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &RNG{state: seed}
}

// NewRNGFromString creates an RNG seeded with the FNV-64a hash of s.
func NewRNGFromString(s string) *RNG {
	return NewRNG(SeedFromString(s))
}

// SeedFromString hashes a textual seed such as "abcd" into a numeric one.
func SeedFromString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a random int in [min, max], both inclusive.
func (r *RNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(math.Floor(r.Float()*float64(max-min+1)))
}

// TileType draws a tile type from an alphabet of n types.
func (r *RNG) TileType(n int) TileType {
	return TileType(r.Range(0, n-1))
}
