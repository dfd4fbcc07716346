package shrink

import (
	"math"

	"github.com/kestrel-labs/qcheck/stream"
)

// Float shrinks toward 0.0: special values (NaN, +-Inf) shrink directly to
// 0.0; ordinary values shrink via their truncated integer part first, then
// fractional halving toward 0, then a sign flip for negatives, and finally
// land on the exact value 0.0.
func Float(v float64) Shrinkable[float64] {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(v, func() stream.Stream[Shrinkable[float64]] {
			return stream.Singleton(Leaf(0.0))
		})
	}
	return floatNode(v)
}

func floatNode(v float64) Shrinkable[float64] {
	if v == 0 { // catches both +0 and -0
		return Leaf(0.0)
	}
	return New(v, func() stream.Stream[Shrinkable[float64]] {
		var candidates []Shrinkable[float64]

		if ip := math.Trunc(v); ip != v {
			candidates = append(candidates, floatNode(ip))
		}
		if half := v / 2; half != v {
			candidates = append(candidates, floatNode(half))
		}
		if v < 0 {
			candidates = append(candidates, floatNode(-v))
		}
		candidates = append(candidates, Leaf(0.0))

		return stream.FromSlice(candidates)
	})
}
