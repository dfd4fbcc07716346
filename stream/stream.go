// Package stream provides a memoized, possibly-infinite sequence type used
// by the shrink package to represent shrink candidates lazily.
//
// A Stream is either empty or a head value plus a thunk producing the tail.
// Forcing a Stream is memoized: the same Stream value always yields the same
// head/tail/ok triple no matter how many times it is forced, but two
// independent callers can walk the same Stream with independent cursors.
package stream

import "sync"

// Stream is a lazy, memoized, singly-linked sequence of T.
// The zero value is an empty stream; non-empty streams are built with Cons,
// New, Singleton or FromSlice.
type Stream[T any] struct {
	force func() (head T, tail Stream[T], ok bool)
}

// New builds a Stream from a thunk. The thunk is evaluated at most once.
func New[T any](thunk func() (T, Stream[T], bool)) Stream[T] {
	var (
		once sync.Once
		h    T
		t    Stream[T]
		ok   bool
	)
	return Stream[T]{force: func() (T, Stream[T], bool) {
		once.Do(func() { h, t, ok = thunk() })
		return h, t, ok
	}}
}

// Empty returns the empty stream.
func Empty[T any]() Stream[T] {
	return Stream[T]{force: func() (T, Stream[T], bool) {
		var zero T
		return zero, Stream[T]{}, false
	}}
}

// Singleton returns a one-element stream.
func Singleton[T any](v T) Stream[T] {
	return Cons(v, func() Stream[T] { return Empty[T]() })
}

// Cons builds a stream whose head is v and whose tail is produced lazily by
// tailFn when first demanded.
func Cons[T any](v T, tailFn func() Stream[T]) Stream[T] {
	return New(func() (T, Stream[T], bool) { return v, tailFn(), true })
}

// FromSlice builds a finite stream from a slice, preserving order.
func FromSlice[T any](vs []T) Stream[T] {
	if len(vs) == 0 {
		return Empty[T]()
	}
	head := vs[0]
	rest := vs[1:]
	return Cons(head, func() Stream[T] { return FromSlice(rest) })
}

// Next forces the stream, returning its head, tail and whether it was
// non-empty. Calling Next repeatedly on the same Stream value is cheap and
// always returns the same result.
func (s Stream[T]) Next() (head T, tail Stream[T], ok bool) {
	if s.force == nil {
		var zero T
		return zero, Stream[T]{}, false
	}
	return s.force()
}

// IsEmpty reports whether the stream has no elements.
func (s Stream[T]) IsEmpty() bool {
	_, _, ok := s.Next()
	return !ok
}

// Concat appends other after s exhausts. Non-destructive: both s and other
// remain independently traversable.
func (s Stream[T]) Concat(other Stream[T]) Stream[T] {
	return New(func() (T, Stream[T], bool) {
		h, t, ok := s.Next()
		if ok {
			return h, t.Concat(other), true
		}
		return other.Next()
	})
}

// Take truncates the stream to at most n elements.
func (s Stream[T]) Take(n int) Stream[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return New(func() (T, Stream[T], bool) {
		h, t, ok := s.Next()
		if !ok {
			var zero T
			return zero, Stream[T]{}, false
		}
		return h, t.Take(n - 1), true
	})
}

// Filter keeps only elements satisfying pred. Forcing a filtered stream
// whose remainder never satisfies pred diverges on an infinite source; the
// caller is responsible for bounding depth in that case (e.g. with Take).
func (s Stream[T]) Filter(pred func(T) bool) Stream[T] {
	return New(func() (T, Stream[T], bool) {
		cur := s
		for {
			h, t, ok := cur.Next()
			if !ok {
				var zero T
				return zero, Stream[T]{}, false
			}
			if pred(h) {
				return h, t.Filter(pred), true
			}
			cur = t
		}
	})
}

// Iterator returns a cursor over s. Multiple independent iterators over the
// same Stream value do not interfere with one another.
func (s Stream[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{cur: s}
}

// ToSlice materializes up to n elements of s. Pass a negative n to drain the
// whole (necessarily finite) stream.
func (s Stream[T]) ToSlice(n int) []T {
	out := []T{}
	it := s.Iterator()
	for n < 0 || len(out) < n {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// Iterator is a non-destructive cursor over a Stream.
type Iterator[T any] struct {
	cur Stream[T]
}

// Next advances the cursor, returning the next value or false when exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	h, t, ok := it.cur.Next()
	if !ok {
		var zero T
		return zero, false
	}
	it.cur = t
	return h, true
}

// Transform maps f over every element of s lazily.
func Transform[T, U any](s Stream[T], f func(T) U) Stream[U] {
	return New(func() (U, Stream[U], bool) {
		h, t, ok := s.Next()
		if !ok {
			var zero U
			return zero, Stream[U]{}, false
		}
		return f(h), Transform(t, f), true
	})
}

// Interleave round-robins across streams instead of exhausting each in
// turn, so that — for example — a tuple's positions each get an early
// chance to shrink rather than position 0 monopolizing the front of the
// stream. Exhausted streams are skipped; Interleave ends once all are.
func Interleave[T any](streams []Stream[T]) Stream[T] {
	return interleaveFrom(streams, 0)
}

func interleaveFrom[T any](streams []Stream[T], start int) Stream[T] {
	n := len(streams)
	if n == 0 {
		return Empty[T]()
	}
	for tries := 0; tries < n; tries++ {
		idx := (start + tries) % n
		h, t, ok := streams[idx].Next()
		if !ok {
			continue
		}
		next := append([]Stream[T]{}, streams...)
		next[idx] = t
		return Cons(h, func() Stream[T] { return interleaveFrom(next, idx+1) })
	}
	return Empty[T]()
}
