// Package seedhash maps arbitrary string seeds to a stable uint64 so that
// rng.Random can be constructed deterministically from either an integer or
// a string, with re-seeding from the same string always reproducing the
// same sequence.
package seedhash

import "github.com/cespare/xxhash/v2"

// Hash returns a stable, deterministic hash of s. The same string always
// hashes to the same value, across process restarts and Go versions (xxhash
// is a fixed algorithm, unlike hash/maphash which is seeded per-process).
func Hash(s string) uint64 {
	return xxhash.Sum64String(s)
}
