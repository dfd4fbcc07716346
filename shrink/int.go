package shrink

import "github.com/kestrel-labs/qcheck/stream"

// Int builds a binary-search shrink tree toward 0 for a signed integer seed.
//
// The root's first candidate is 0 itself; after it come the midpoints of
// the open interval between 0 and n, halving toward n (for n = 13: 0, 6,
// 9, 11, 12). Each candidate's own children are the values strictly
// between 0 and that candidate, built the same way, so every candidate is
// strictly closer to 0 than its parent. Every integer strictly between 0
// and n appears exactly once in the tree.
func Int(n int64) Shrinkable[int64] {
	if n == 0 {
		return Leaf(int64(0))
	}
	return New(n, func() stream.Stream[Shrinkable[int64]] {
		return stream.Singleton(Leaf(int64(0))).Concat(bisect(0, n))
	})
}

// bisect returns the shrink nodes covering the open interval between lo
// (the end nearer 0) and hi (the original value); lo may be above or below
// hi. It yields the interval's midpoint, whose children cover the part
// between lo and the midpoint, followed by the nodes covering the part
// between the midpoint and hi.
func bisect(lo, hi int64) stream.Stream[Shrinkable[int64]] {
	if d := hi - lo; d >= -1 && d <= 1 {
		return stream.Empty[Shrinkable[int64]]()
	}
	mid := lo + (hi-lo)/2
	node := New(mid, func() stream.Stream[Shrinkable[int64]] { return bisect(lo, mid) })
	return stream.Cons(node, func() stream.Stream[Shrinkable[int64]] { return bisect(mid, hi) })
}

// IntBounded is Int restricted so no candidate falls outside [min, max].
// Used by generators whose source range doesn't include 0 (so "shrink
// toward 0" must instead aim at whichever bound is closest to 0).
func IntBounded(n, min, max int64) Shrinkable[int64] {
	target := int64(0)
	if min > 0 {
		target = min
	} else if max < 0 {
		target = max
	}
	if n == target {
		return Leaf(n)
	}
	return Map(Int(n-target), func(v int64) int64 { return v + target })
}
