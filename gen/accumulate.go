package gen

import (
	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
	"github.com/kestrel-labs/qcheck/stream"
)

// Accumulate draws a chain of size.Min..size.Max states: the first from
// initial, each subsequent one from step(previous). Shrinking is
// length-first: shorter prefixes of the chain (halving toward size.Min) are
// tried before the initial state is shrunk. Every candidate regenerates its
// suffix from a frozen random snapshot taken right after the initial draw,
// so a shorter prefix is exactly the first k elements of the full chain and
// the search doesn't have to understand step's internals to make progress.
func Accumulate[T any](initial Generator[T], step func(T) Generator[T], size Size) Generator[[]T] {
	return func(r *rng.Random) shrink.Shrinkable[[]T] {
		n := drawLength(r, size)
		if n == 0 {
			return shrink.Leaf([]T{})
		}
		s0 := initial(r)
		snapshot := r.Clone()
		return buildChain(s0, step, n, size.Min, snapshot)
	}
}

func buildChain[T any](start shrink.Shrinkable[T], step func(T) Generator[T], n, minLen int, snapshot *rng.Random) shrink.Shrinkable[[]T] {
	rc := snapshot.Clone()
	states := make([]T, n)
	states[0] = start.Value
	cur := start.Value
	for i := 1; i < n; i++ {
		s := step(cur)(rc)
		cur = s.Value
		states[i] = cur
	}
	return shrink.New(states, func() stream.Stream[shrink.Shrinkable[[]T]] {
		lengths := chainLengthShrinks(start, step, n, minLen, snapshot)
		elements := stream.Transform(start.Shrinks(), func(c shrink.Shrinkable[T]) shrink.Shrinkable[[]T] {
			return buildChain(c, step, n, minLen, snapshot)
		})
		return lengths.Concat(elements)
	})
}

// chainLengthShrinks tries shorter prefixes of the chain by halving n
// toward minLen, the same policy shrink.Array uses for contiguous-run
// removal — here a "shorter run" is just a shorter prefix, since every
// later state is derived from the one before it.
func chainLengthShrinks[T any](start shrink.Shrinkable[T], step func(T) Generator[T], n, minLen int, snapshot *rng.Random) stream.Stream[shrink.Shrinkable[[]T]] {
	var candidates []shrink.Shrinkable[[]T]
	for k := n / 2; k >= 1; k /= 2 {
		if k < minLen || k >= n {
			continue
		}
		candidates = append(candidates, buildChain(start, step, k, minLen, snapshot))
	}
	return stream.FromSlice(candidates)
}

// Aggregate is Accumulate folded down to its final state only, matching
// the spec's sequence combinator that returns a running total instead of
// every intermediate value.
func Aggregate[T any](initial Generator[T], step func(T) Generator[T], size Size) Generator[T] {
	return Map(Accumulate(initial, step, size), func(states []T) T {
		if len(states) == 0 {
			var zero T
			return zero
		}
		return states[len(states)-1]
	})
}
