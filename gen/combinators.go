package gen

import (
	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
)

// Map transforms every value a generator produces, carrying the shrink
// tree through the transformation unchanged in shape.
func Map[T, U any](g Generator[T], f func(T) U) Generator[U] {
	return func(r *rng.Random) shrink.Shrinkable[U] {
		return shrink.Map(g(r), f)
	}
}

// Filter retries the underlying generator until its predicate holds, and
// prunes any shrink candidate that no longer satisfies it. Retries are
// capped at retryCap; a predicate that's almost never true is a generator
// error, surfaced as a *RetryExhausted panic rather than hanging forever.
func Filter[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return func(r *rng.Random) shrink.Shrinkable[T] {
		for attempt := 0; attempt < retryCap; attempt++ {
			s := g(r)
			if pred(s.Value) {
				return shrink.Filter(s, pred)
			}
		}
		panic(&RetryExhausted{Op: "filter", Attempts: retryCap})
	}
}

// FlatMap draws from g, then uses its value to build a second generator
// and draws from that, preferring to shrink the second generator's tree
// before falling back to re-deriving from shrunk values of the first (see
// shrink.FlatMap).
func FlatMap[T, U any](g Generator[T], f func(T) Generator[U]) Generator[U] {
	return func(r *rng.Random) shrink.Shrinkable[U] {
		sa := g(r)
		clone := r.Clone()
		return shrink.FlatMap(sa, func(a T) shrink.Shrinkable[U] {
			return f(a)(clone)
		})
	}
}

// Chain is FlatMap under the name the spec's combinator table uses.
func Chain[T, U any](g Generator[T], f func(T) Generator[U]) Generator[U] {
	return FlatMap(g, f)
}

// Construct draws from ga and then gb, both from r in turn (via Tuple),
// and combines their values with f, carrying both shrink trees as an
// interleaved Tuple2 underneath.
func Construct[A, B, T any](ga Generator[A], gb Generator[B], f func(A, B) T) Generator[T] {
	return Map(Tuple(ga, gb), func(p shrink.Pair[A, B]) T { return f(p.A, p.B) })
}

// Tuple pairs two generators, shrinking each component's value
// independently while interleaving candidate order across positions.
func Tuple[A, B any](ga Generator[A], gb Generator[B]) Generator[shrink.Pair[A, B]] {
	return func(r *rng.Random) shrink.Shrinkable[shrink.Pair[A, B]] {
		sa := ga(r)
		sb := gb(r)
		return shrink.Tuple2(sa, sb)
	}
}

// Tuple3 and Tuple4 extend Tuple to three and four components.
func Tuple3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[shrink.Triple[A, B, C]] {
	return func(r *rng.Random) shrink.Shrinkable[shrink.Triple[A, B, C]] {
		return shrink.Tuple3(ga(r), gb(r), gc(r))
	}
}

func Tuple4[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D]) Generator[shrink.Quad[A, B, C, D]] {
	return func(r *rng.Random) shrink.Shrinkable[shrink.Quad[A, B, C, D]] {
		return shrink.Tuple4(ga(r), gb(r), gc(r), gd(r))
	}
}
