package shrink

import "github.com/kestrel-labs/qcheck/stream"

// Bool shrinks true toward false; false has no children.
func Bool(v bool) Shrinkable[bool] {
	if !v {
		return Leaf(false)
	}
	return New(true, func() stream.Stream[Shrinkable[bool]] {
		return stream.Singleton(Leaf(false))
	})
}
