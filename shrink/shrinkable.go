// Package shrink implements the Shrinkable tree (a value paired with a lazy
// tree of strictly-simpler candidates) and the per-type shrink strategies
// that produce such trees for the primitive and container types this module
// generates.
package shrink

import (
	"fmt"
	"sync"

	"github.com/kestrel-labs/qcheck/stream"
)

// Shrinkable is a value paired with a function producing a lazy stream of
// simpler candidates. The value never changes once a Shrinkable exists;
// Shrinks is side-effect-free and memoized, so repeated calls return
// equivalent streams without recomputation.
type Shrinkable[T any] struct {
	Value     T
	shrinksFn func() stream.Stream[Shrinkable[T]]
}

// New builds a Shrinkable from a value and a thunk computing its children.
// The thunk is memoized: Shrinks() always forces it at most once.
func New[T any](v T, children func() stream.Stream[Shrinkable[T]]) Shrinkable[T] {
	var (
		once sync.Once
		s    stream.Stream[Shrinkable[T]]
	)
	return Shrinkable[T]{
		Value: v,
		shrinksFn: func() stream.Stream[Shrinkable[T]] {
			once.Do(func() { s = children() })
			return s
		},
	}
}

// Leaf builds a Shrinkable with no children — a value that does not shrink
// further.
func Leaf[T any](v T) Shrinkable[T] {
	return Shrinkable[T]{Value: v, shrinksFn: func() stream.Stream[Shrinkable[T]] { return stream.Empty[Shrinkable[T]]() }}
}

// Shrinks returns the lazy stream of this node's children.
func (s Shrinkable[T]) Shrinks() stream.Stream[Shrinkable[T]] {
	if s.shrinksFn == nil {
		return stream.Empty[Shrinkable[T]]()
	}
	return s.shrinksFn()
}

// Map lifts f over the value and recursively over every descendant.
func Map[T, U any](s Shrinkable[T], f func(T) U) Shrinkable[U] {
	return New(f(s.Value), func() stream.Stream[Shrinkable[U]] {
		return stream.Transform(s.Shrinks(), func(c Shrinkable[T]) Shrinkable[U] { return Map(c, f) })
	})
}

// FlatMap replaces this node with f(value), grafting the original shrink
// tree (mapped through f) behind it. Shrinking of the grafted node's own
// children is tried first; once that's exhausted the search continues into
// the original tree's shrinks, re-run through f.
func FlatMap[T, U any](s Shrinkable[T], f func(T) Shrinkable[U]) Shrinkable[U] {
	inner := f(s.Value)
	return New(inner.Value, func() stream.Stream[Shrinkable[U]] {
		fromOriginal := stream.Transform(s.Shrinks(), func(c Shrinkable[T]) Shrinkable[U] { return FlatMap(c, f) })
		return inner.Shrinks().Concat(fromOriginal)
	})
}

// FilterError is returned when Filter is applied to a root value that
// itself fails the predicate — a generation error, not a property failure.
type FilterError struct {
	Predicate string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("shrink: value does not satisfy predicate %s", e.Predicate)
}

// Filter keeps only children (recursively) whose value satisfies pred. It
// panics with a *FilterError if the root value itself fails pred — callers
// that generate-then-filter are expected to never construct such a root.
func Filter[T any](s Shrinkable[T], pred func(T) bool) Shrinkable[T] {
	if !pred(s.Value) {
		panic(&FilterError{Predicate: "filter"})
	}
	return New(s.Value, func() stream.Stream[Shrinkable[T]] {
		kept := s.Shrinks().Filter(func(c Shrinkable[T]) bool { return pred(c.Value) })
		return stream.Transform(kept, func(c Shrinkable[T]) Shrinkable[T] { return Filter(c, pred) })
	})
}

// WithShrinks replaces the shrink stream entirely, keeping the value.
func WithShrinks[T any](s Shrinkable[T], children func() stream.Stream[Shrinkable[T]]) Shrinkable[T] {
	return New(s.Value, children)
}

// ConcatStatic appends extra to every node's own child stream, recursively
// — i.e. to every "horizontal dead end" in the tree, not just the root's.
func ConcatStatic[T any](s Shrinkable[T], extra stream.Stream[Shrinkable[T]]) Shrinkable[T] {
	return Concat(s, func(Shrinkable[T]) stream.Stream[Shrinkable[T]] { return extra })
}

// Concat is like ConcatStatic but f receives the parent Shrinkable, so the
// appended stream can depend on the node it's being grafted onto.
func Concat[T any](s Shrinkable[T], f func(Shrinkable[T]) stream.Stream[Shrinkable[T]]) Shrinkable[T] {
	return New(s.Value, func() stream.Stream[Shrinkable[T]] {
		own := stream.Transform(s.Shrinks(), func(c Shrinkable[T]) Shrinkable[T] { return Concat(c, f) })
		extra := stream.Transform(f(s), func(c Shrinkable[T]) Shrinkable[T] { return Concat(c, f) })
		return own.Concat(extra)
	})
}

// AndThenStatic appends extra only at vertical dead ends — leaves whose own
// child stream is empty — rather than at every level.
func AndThenStatic[T any](s Shrinkable[T], extra stream.Stream[Shrinkable[T]]) Shrinkable[T] {
	return AndThen(s, func(Shrinkable[T]) stream.Stream[Shrinkable[T]] { return extra })
}

// AndThen is like AndThenStatic but f receives the leaf Shrinkable.
func AndThen[T any](s Shrinkable[T], f func(Shrinkable[T]) stream.Stream[Shrinkable[T]]) Shrinkable[T] {
	return New(s.Value, func() stream.Stream[Shrinkable[T]] {
		children := s.Shrinks()
		if !children.IsEmpty() {
			return stream.Transform(children, func(c Shrinkable[T]) Shrinkable[T] { return AndThen(c, f) })
		}
		grafted := f(s)
		return stream.Transform(grafted, func(c Shrinkable[T]) Shrinkable[T] { return AndThen(c, f) })
	})
}

// Take truncates the first-level shrink stream to at most n candidates.
func Take[T any](s Shrinkable[T], n int) Shrinkable[T] {
	return New(s.Value, func() stream.Stream[Shrinkable[T]] { return s.Shrinks().Take(n) })
}

// Retrieve navigates a path of child indices, failing if any index is out
// of range for the node it's applied to.
func Retrieve[T any](s Shrinkable[T], path []int) (Shrinkable[T], error) {
	cur := s
	for depth, idx := range path {
		it := cur.Shrinks().Iterator()
		found := false
		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok {
				break
			}
			if i == idx {
				cur = v
				found = true
				break
			}
		}
		if !found {
			return Shrinkable[T]{}, fmt.Errorf("shrink: Retrieve: index %d out of range at depth %d", idx, depth)
		}
	}
	return cur, nil
}
