package shrink

import "github.com/kestrel-labs/qcheck/stream"

// Pair, Triple and Quad are the materialized value types tuple Shrinkables
// carry. Each position shrinks independently; the candidate stream
// interleaves across positions so every position gets an early turn rather
// than position 0 exhausting its tree first.

type Pair[A, B any] struct {
	A A
	B B
}

func Tuple2[A, B any](a Shrinkable[A], b Shrinkable[B]) Shrinkable[Pair[A, B]] {
	return New(Pair[A, B]{a.Value, b.Value}, func() stream.Stream[Shrinkable[Pair[A, B]]] {
		sa := stream.Transform(a.Shrinks(), func(c Shrinkable[A]) Shrinkable[Pair[A, B]] { return Tuple2(c, b) })
		sb := stream.Transform(b.Shrinks(), func(c Shrinkable[B]) Shrinkable[Pair[A, B]] { return Tuple2(a, c) })
		return stream.Interleave([]stream.Stream[Shrinkable[Pair[A, B]]]{sa, sb})
	})
}

type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

func Tuple3[A, B, C any](a Shrinkable[A], b Shrinkable[B], c Shrinkable[C]) Shrinkable[Triple[A, B, C]] {
	return New(Triple[A, B, C]{a.Value, b.Value, c.Value}, func() stream.Stream[Shrinkable[Triple[A, B, C]]] {
		sa := stream.Transform(a.Shrinks(), func(x Shrinkable[A]) Shrinkable[Triple[A, B, C]] { return Tuple3(x, b, c) })
		sb := stream.Transform(b.Shrinks(), func(x Shrinkable[B]) Shrinkable[Triple[A, B, C]] { return Tuple3(a, x, c) })
		sc := stream.Transform(c.Shrinks(), func(x Shrinkable[C]) Shrinkable[Triple[A, B, C]] { return Tuple3(a, b, x) })
		return stream.Interleave([]stream.Stream[Shrinkable[Triple[A, B, C]]]{sa, sb, sc})
	})
}

type Quad[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

func Tuple4[A, B, C, D any](a Shrinkable[A], b Shrinkable[B], c Shrinkable[C], d Shrinkable[D]) Shrinkable[Quad[A, B, C, D]] {
	return New(Quad[A, B, C, D]{a.Value, b.Value, c.Value, d.Value}, func() stream.Stream[Shrinkable[Quad[A, B, C, D]]] {
		sa := stream.Transform(a.Shrinks(), func(x Shrinkable[A]) Shrinkable[Quad[A, B, C, D]] { return Tuple4(x, b, c, d) })
		sb := stream.Transform(b.Shrinks(), func(x Shrinkable[B]) Shrinkable[Quad[A, B, C, D]] { return Tuple4(a, x, c, d) })
		sc := stream.Transform(c.Shrinks(), func(x Shrinkable[C]) Shrinkable[Quad[A, B, C, D]] { return Tuple4(a, b, x, d) })
		sd := stream.Transform(d.Shrinks(), func(x Shrinkable[D]) Shrinkable[Quad[A, B, C, D]] { return Tuple4(a, b, c, x) })
		return stream.Interleave([]stream.Stream[Shrinkable[Quad[A, B, C, D]]]{sa, sb, sc, sd})
	})
}
