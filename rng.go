package flexcache

import "math/rand/v2"

// DefaultRNG returns an RNG backed by math/rand/v2's global source. It is
// adequate for eviction-order randomization; it is not a cryptographic
// source and callers needing reproducible sequences should inject their
// own RNG (tests in this package use a deterministic sequenceRNG).
func DefaultRNG() RNG {
	return func() uint32 {
		return rand.Uint32()
	}
}
