package gen

import (
	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
)

// Just always produces v, with no shrink children. Useful as a building
// block inside OneOf/ElementOf lists and for fixing one field of a
// generated structure.
func Just[T any](v T) Generator[T] {
	return func(r *rng.Random) shrink.Shrinkable[T] {
		return shrink.Leaf(v)
	}
}

// Lazy defers construction of the underlying generator until the first
// draw, so self-referential or mutually-recursive generators (e.g. trees)
// don't build their whole definition eagerly at package init time.
func Lazy[T any](build func() Generator[T]) Generator[T] {
	return func(r *rng.Random) shrink.Shrinkable[T] {
		return build()(r)
	}
}

// Boolean draws true or false with equal probability, shrinking true
// toward false.
func Boolean() Generator[bool] {
	return func(r *rng.Random) shrink.Shrinkable[bool] {
		return shrink.Bool(r.NextBoolean(0.5))
	}
}

// WeightedBoolean draws true with probability p, shrinking true toward
// false.
func WeightedBoolean(p float64) Generator[bool] {
	return func(r *rng.Random) shrink.Shrinkable[bool] {
		return shrink.Bool(r.NextBoolean(p))
	}
}

// ElementOf picks among a fixed, weighted list of values, shrinking toward
// whichever value was listed first.
func ElementOf[T any](items ...Weighted[T]) Generator[T] {
	normalized, err := normalize(items)
	if err != nil {
		panic(err)
	}
	values := make([]T, len(normalized))
	weights := make([]float64, len(normalized))
	for i, it := range normalized {
		values[i] = it.Value
		weights[i] = it.Weight
	}
	n := int64(len(values))
	return func(r *rng.Random) shrink.Shrinkable[T] {
		idx := selectWeighted(r, weights)
		idxShrink := shrink.IntBounded(int64(idx), 0, n-1)
		return shrink.Map(idxShrink, func(i int64) T { return values[i] })
	}
}

// OneOf picks among a fixed, weighted list of generators and defers to
// whichever one was selected, preserving that generator's own shrink tree
// rather than shrinking across generator choice.
func OneOf[T any](items ...Weighted[Generator[T]]) Generator[T] {
	normalized, err := normalize(items)
	if err != nil {
		panic(err)
	}
	gens := make([]Generator[T], len(normalized))
	weights := make([]float64, len(normalized))
	for i, it := range normalized {
		gens[i] = it.Value
		weights[i] = it.Weight
	}
	return func(r *rng.Random) shrink.Shrinkable[T] {
		idx := selectWeighted(r, weights)
		return gens[idx](r)
	}
}
