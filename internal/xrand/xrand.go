// Package xrand implements the engine's deterministic RNG (C8): a seeded
// stream that reproduces the same sequence for the same seed string, with no
// global state — the Rand value is threaded explicitly through call stacks
// the way the teacher threads *board.Board/*Solver through its call chain.
//
// No repo in the example pack ships a seeded, string-keyed PRNG, so this is
// built on stdlib math/rand/v2 (PCG) rather than a pack dependency — see
// DESIGN.md for the justification. The string seed is folded to two uint64
// seeds with FNV-1a, matching the "derive seed from date's ISO-8601 string"
// contract of spec.md §4.8.
package xrand

import (
	"hash/fnv"
	"math/rand/v2"
)

// Rand is a deterministic, seeded pseudorandom stream.
type Rand struct {
	r *rand.Rand
}

// New builds a Rand whose entire sequence is determined by seed.
func New(seed string) *Rand {
	h1 := fnv.New64a()
	h1.Write([]byte(seed))
	s1 := h1.Sum64()

	h2 := fnv.New64a()
	h2.Write([]byte(seed))
	h2.Write([]byte{0xff})
	s2 := h2.Sum64()
	if s2 == 0 {
		s2 = 1
	}

	return &Rand{r: rand.New(rand.NewPCG(s1, s2))}
}

// IntN returns a pseudorandom number in [0, n).
func (r *Rand) IntN(n int) int { return r.r.IntN(n) }

// Float64 returns a pseudorandom number in [0, 1).
func (r *Rand) Float64() float64 { return r.r.Float64() }

// Bool returns true with probability p.
func (r *Rand) Bool(p float64) bool { return r.Float64() < p }

// Shuffle randomizes the order of the first n elements via swap.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// WeightedIndex samples an index into weights proportionally to its weight.
func (r *Rand) WeightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	pick := r.IntN(total)
	acc := 0
	for i, w := range weights {
		acc += w
		if pick < acc {
			return i
		}
	}
	return len(weights) - 1
}
