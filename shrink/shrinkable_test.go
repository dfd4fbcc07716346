package shrink

import (
	"testing"

	"github.com/kestrel-labs/qcheck/stream"
	"github.com/stretchr/testify/require"
)

func chain(n int) Shrinkable[int] {
	if n <= 0 {
		return Leaf(0)
	}
	return New(n, func() stream.Stream[Shrinkable[int]] {
		return stream.Singleton(chain(n - 1))
	})
}

func TestLeafHasNoChildren(t *testing.T) {
	require.True(t, Leaf(5).Shrinks().IsEmpty())
}

func TestShrinksMemoized(t *testing.T) {
	calls := 0
	s := New(1, func() stream.Stream[Shrinkable[int]] {
		calls++
		return stream.Empty[Shrinkable[int]]()
	})
	s.Shrinks()
	s.Shrinks()
	require.Equal(t, 1, calls)
}

func TestMapPreservesStructure(t *testing.T) {
	s := chain(3)
	doubled := Map(s, func(v int) int { return v * 2 })
	require.Equal(t, 6, doubled.Value)

	c1, _, ok := doubled.Shrinks().Next()
	require.True(t, ok)
	require.Equal(t, 4, c1.Value)

	c2, _, ok := c1.Shrinks().Next()
	require.True(t, ok)
	require.Equal(t, 2, c2.Value)
}

func TestFilterPanicsOnBadRoot(t *testing.T) {
	require.Panics(t, func() {
		Filter(Leaf(3), func(v int) bool { return v%2 == 0 })
	})
}

func TestFilterKeepsMatchingChildren(t *testing.T) {
	s := New(10, func() stream.Stream[Shrinkable[int]] {
		return stream.FromSlice([]Shrinkable[int]{Leaf(4), Leaf(5), Leaf(6)})
	})
	filtered := Filter(s, func(v int) bool { return v%2 == 0 })
	vals := []int{}
	it := filtered.Shrinks().Iterator()
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		vals = append(vals, c.Value)
	}
	require.Equal(t, []int{4, 6}, vals)
}

func TestConcatStaticAppendsAtEveryLevel(t *testing.T) {
	s := Leaf(1)
	extra := stream.Singleton(Leaf(99))
	grafted := ConcatStatic(s, extra)
	vals := grafted.Shrinks().ToSlice(-1)
	require.Len(t, vals, 1)
	require.Equal(t, 99, vals[0].Value)
	// recursively, the grafted node also carries the extra tail
	require.False(t, vals[0].Shrinks().IsEmpty())
}

func TestAndThenStaticOnlyAtLeaves(t *testing.T) {
	s := chain(2) // 2 -> 1 -> 0 (leaf)
	extra := stream.Singleton(Leaf(-1))
	grafted := AndThenStatic(s, extra)

	// first level (value 2) is not a leaf, so its children are unchanged (just "1")
	c1, _, ok := grafted.Shrinks().Next()
	require.True(t, ok)
	require.Equal(t, 1, c1.Value)

	c2, _, ok := c1.Shrinks().Next()
	require.True(t, ok)
	require.Equal(t, 0, c2.Value)

	// value 0 was a leaf before grafting, so now it carries the extra stream
	leafChildren := c2.Shrinks().ToSlice(-1)
	require.Len(t, leafChildren, 1)
	require.Equal(t, -1, leafChildren[0].Value)
}

func TestTakeTruncatesFirstLevel(t *testing.T) {
	s := New(0, func() stream.Stream[Shrinkable[int]] {
		return stream.FromSlice([]Shrinkable[int]{Leaf(1), Leaf(2), Leaf(3), Leaf(4)})
	})
	truncated := Take(s, 2)
	vals := truncated.Shrinks().ToSlice(-1)
	require.Len(t, vals, 2)
}

func TestRetrieveNavigatesPath(t *testing.T) {
	s := chain(3)
	got, err := Retrieve(s, []int{0, 0})
	require.NoError(t, err)
	require.Equal(t, 1, got.Value)
}

func TestRetrieveOutOfRange(t *testing.T) {
	s := chain(1)
	_, err := Retrieve(s, []int{5})
	require.Error(t, err)
}

func TestFlatMapPrefersInnerShrinksFirst(t *testing.T) {
	// a: 3 -> 2 -> 1 -> 0 ; f(a) = leaf(a*10) with no children of its own
	a := chain(3)
	f := func(v int) Shrinkable[int] { return Leaf(v * 10) }
	fm := FlatMap(a, f)
	require.Equal(t, 30, fm.Value)

	// inner has no children, so we fall straight through to the mapped
	// original tree.
	c, _, ok := fm.Shrinks().Next()
	require.True(t, ok)
	require.Equal(t, 20, c.Value)
}
