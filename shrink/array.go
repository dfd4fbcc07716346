package shrink

import "github.com/kestrel-labs/qcheck/stream"

// Array builds a length-first array shrinker from a slice of already-built
// element Shrinkables. It first tries removing contiguous runs of length
// len/2, len/4, ..., 1 (sliding the window across the array), which gives
// O(log len) shrink levels instead of element-by-element decrement; once
// that is exhausted it falls back to shrinking elements independently, one
// index at a time, through each element's own shrink tree. minLen bounds
// how short a length-shrink is allowed to go.
func Array[T any](elems []Shrinkable[T], minLen int) Shrinkable[[]T] {
	return New(valuesOf(elems), func() stream.Stream[Shrinkable[[]T]] {
		return lengthShrinks(elems, minLen).Concat(elementShrinks(elems, minLen))
	})
}

func valuesOf[T any](elems []Shrinkable[T]) []T {
	out := make([]T, len(elems))
	for i, e := range elems {
		out[i] = e.Value
	}
	return out
}

func lengthShrinks[T any](elems []Shrinkable[T], minLen int) stream.Stream[Shrinkable[[]T]] {
	n := len(elems)
	var candidates []Shrinkable[[]T]
	for k := n / 2; k >= 1; k /= 2 {
		if n-k < minLen {
			continue
		}
		for i := 0; i+k <= n; i += k {
			remaining := make([]Shrinkable[T], 0, n-k)
			remaining = append(remaining, elems[:i]...)
			remaining = append(remaining, elems[i+k:]...)
			candidates = append(candidates, Array(remaining, minLen))
		}
	}
	return stream.FromSlice(candidates)
}

func elementShrinks[T any](elems []Shrinkable[T], minLen int) stream.Stream[Shrinkable[[]T]] {
	result := stream.Empty[Shrinkable[[]T]]()
	for i := range elems {
		idx := i
		perIndex := stream.Transform(elems[idx].Shrinks(), func(c Shrinkable[T]) Shrinkable[[]T] {
			replaced := make([]Shrinkable[T], len(elems))
			copy(replaced, elems)
			replaced[idx] = c
			return Array(replaced, minLen)
		})
		result = result.Concat(perIndex)
	}
	return result
}
