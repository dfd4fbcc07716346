package gen

import (
	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
)

// drawLength picks a container length in [size.Min, size.Max], shrinking
// toward size.Min — used by every container generator below so they all
// honor the same Size contract.
func drawLength(r *rng.Random, size Size) int {
	if size.Max < size.Min {
		panic(&ConfigError{Reason: "container size: max must be >= min"})
	}
	if size.Max == size.Min {
		return size.Min
	}
	return int(r.Interval(int64(size.Min), int64(size.Max)))
}

// Array draws a slice of length in [size.Min, size.Max], shrinking by
// length first (dropping contiguous runs) and then by element.
func Array[T any](g Generator[T], size Size) Generator[[]T] {
	return func(r *rng.Random) shrink.Shrinkable[[]T] {
		n := drawLength(r, size)
		elems := make([]shrink.Shrinkable[T], n)
		for i := range elems {
			elems[i] = g(r)
		}
		return shrink.Array(elems, size.Min)
	}
}

// UniqueArray is Array constrained so every element compares distinct
// under eq, resampling an element whenever it collides with one already
// kept. Shrink candidates that would reintroduce a collision are dropped
// the same way shrink.Set drops them. A run of retryCap consecutive
// collisions — the underlying generator's domain too small for the
// requested length — panics with *RetryExhausted instead of looping forever.
func UniqueArray[T comparable](g Generator[T], size Size) Generator[[]T] {
	return func(r *rng.Random) shrink.Shrinkable[[]T] {
		n := drawLength(r, size)
		elems := make([]shrink.Shrinkable[T], 0, n)
		seen := map[T]struct{}{}
		stall := 0
		for len(elems) < n {
			if stall >= retryCap {
				panic(&RetryExhausted{Op: "unique_array", Attempts: retryCap})
			}
			s := g(r)
			if _, dup := seen[s.Value]; dup {
				stall++
				continue
			}
			stall = 0
			seen[s.Value] = struct{}{}
			elems = append(elems, s)
		}
		return shrink.Set(elems, size.Min)
	}
}

// Set is UniqueArray under the name the spec's container table uses for an
// unordered collection with no duplicate elements.
func Set[T comparable](g Generator[T], size Size) Generator[[]T] {
	return UniqueArray(g, size)
}

// Dictionary draws a slice of distinct-keyed (key, value) entries, shrunk
// by length, then by key (collision-avoiding), then by value. Key
// generation is subject to the same retryCap stall guard as UniqueArray.
func Dictionary[K comparable, V any](gk Generator[K], gv Generator[V], size Size) Generator[[]shrink.KV[K, V]] {
	return func(r *rng.Random) shrink.Shrinkable[[]shrink.KV[K, V]] {
		n := drawLength(r, size)
		entries := make([]shrink.Entry[K, V], 0, n)
		seen := map[K]struct{}{}
		stall := 0
		for len(entries) < n {
			if stall >= retryCap {
				panic(&RetryExhausted{Op: "dictionary", Attempts: retryCap})
			}
			k := gk(r)
			if _, dup := seen[k.Value]; dup {
				stall++
				continue
			}
			stall = 0
			seen[k.Value] = struct{}{}
			entries = append(entries, shrink.Entry[K, V]{Key: k, Val: gv(r)})
		}
		return shrink.Dict(entries, size.Min)
	}
}
