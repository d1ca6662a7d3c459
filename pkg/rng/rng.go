// Package rng defines the random source threaded through every generator.
//
// Nothing in this module draws from a global generator. Callers build one
// [Source] (usually with [New]) and pass it down, so a whole image is
// reproducible from its seed, and tests can substitute a scripted source.
package rng

import (
	"fmt"
	"math/rand/v2"
)

// Source is the subset of *rand.Rand the generators use.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
	// Shuffle pseudo-randomizes the order of n elements.
	Shuffle(n int, swap func(i, j int))
}

// New returns a PCG-backed source seeded from seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Seed returns a fresh non-zero seed from the runtime's random state. Seeds
// fit in 63 bits so they round-trip through TOML integers.
func Seed() uint64 {
	for {
		if s := rand.Uint64() >> 1; s != 0 {
			return s
		}
	}
}

// Range is a half-open integer interval [Min, Max). Min may be negative.
type Range struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// R is shorthand for Range{Min: lo, Max: hi}.
func R(lo, hi int) Range {
	return Range{Min: lo, Max: hi}
}

// Empty reports whether the range contains no integers.
func (r Range) Empty() bool {
	return r.Min >= r.Max
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v int) bool {
	return v >= r.Min && v < r.Max
}

// Draw returns a uniform value from r. It panics if r is empty.
func (r Range) Draw(src Source) int {
	return r.Min + src.IntN(r.Max-r.Min)
}

// DrawUint is Draw for ranges known to be non-negative.
func (r Range) DrawUint(src Source) uint32 {
	return uint32(r.Draw(src))
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Min, r.Max)
}

// Pick returns a uniformly chosen element of items. It panics if items is
// empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Ensure *rand.Rand satisfies Source.
var _ Source = (*rand.Rand)(nil)
