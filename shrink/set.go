package shrink

import "github.com/kestrel-labs/qcheck/stream"

// Set shrinks a slice of already-unique element Shrinkables the same way
// Array does (length-first, then per-index), except an element-shrink
// candidate that would collide with another surviving element's value is
// dropped rather than offered, preserving uniqueness throughout the tree.
func Set[T comparable](elems []Shrinkable[T], minLen int) Shrinkable[[]T] {
	return New(valuesOf(elems), func() stream.Stream[Shrinkable[[]T]] {
		return setLengthShrinks(elems, minLen).Concat(setElementShrinks(elems, minLen))
	})
}

func setLengthShrinks[T comparable](elems []Shrinkable[T], minLen int) stream.Stream[Shrinkable[[]T]] {
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
			candidates = append(candidates, Set(remaining, minLen))
		}
	}
	return stream.FromSlice(candidates)
}

func setElementShrinks[T comparable](elems []Shrinkable[T], minLen int) stream.Stream[Shrinkable[[]T]] {
	result := stream.Empty[Shrinkable[[]T]]()
	for i := range elems {
		idx := i
		others := make(map[T]struct{}, len(elems))
		for j, e := range elems {
			if j != idx {
				others[e.Value] = struct{}{}
			}
		}
		candidates := elems[idx].Shrinks().Filter(func(c Shrinkable[T]) bool {
			_, collides := others[c.Value]
			return !collides
		})
		mapped := stream.Transform(candidates, func(c Shrinkable[T]) Shrinkable[[]T] {
			replaced := make([]Shrinkable[T], len(elems))
			copy(replaced, elems)
			replaced[idx] = c
			return Set(replaced, minLen)
		})
		result = result.Concat(mapped)
	}
	return result
}
