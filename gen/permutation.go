package gen

import (
	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
)

// Permutation draws a random permutation of 0..n-1 (Fisher-Yates),
// shrinking toward the identity permutation.
func Permutation(n int) Generator[[]int] {
	if n < 0 {
		panic(&ConfigError{Reason: "permutation: n must be >= 0"})
	}
	return func(r *rng.Random) shrink.Shrinkable[[]int] {
		p := make([]int, n)
		for i := range p {
			p[i] = i
		}
		for i := n - 1; i > 0; i-- {
			j := int(r.Interval(0, int64(i)))
			p[i], p[j] = p[j], p[i]
		}
		return shrink.Permutation(p)
	}
}

// PermutationOf draws a random reordering of the given slice's elements,
// reusing Permutation for the shrinkable index sequence and mapping
// through the original values.
func PermutationOf[T any](values []T) Generator[[]T] {
	n := len(values)
	return Map(Permutation(n), func(idx []int) []T {
		out := make([]T, n)
		for i, v := range idx {
			out[i] = values[v]
		}
		return out
	})
}
