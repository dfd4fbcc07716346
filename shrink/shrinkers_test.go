package shrink

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// preOrder walks a Shrinkable tree, collecting every value reached via any
// path, stopping a branch once it has already been seen so duplicate
// detection in this test doesn't also have to re-walk shared subtrees.
func preOrderValues[T comparable](s Shrinkable[T], limit int) []T {
	out := []T{}
	var walk func(n Shrinkable[T])
	walk = func(n Shrinkable[T]) {
		if len(out) >= limit {
			return
		}
		out = append(out, n.Value)
		it := n.Shrinks().Iterator()
		for {
			if len(out) >= limit {
				return
			}
			c, ok := it.Next()
			if !ok {
				break
			}
			walk(c)
		}
	}
	walk(s)
	return out
}

func TestBoolShrink(t *testing.T) {
	require.True(t, Bool(false).Shrinks().IsEmpty())
	children := Bool(true).Shrinks().ToSlice(-1)
	require.Len(t, children, 1)
	require.Equal(t, false, children[0].Value)
}

func testIntCompleteness(t *testing.T, n int64) {
	t.Helper()
	s := Int(n)
	vals := preOrderValues(s, 10_000_000)[1:] // drop the root itself
	lo, hi := int64(0), n
	if n < 0 {
		lo, hi = n, 0
	}
	seen := map[int64]int{}
	for _, v := range vals {
		seen[v]++
	}
	for v := lo + 1; v < hi; v++ {
		require.Equal(t, 1, seen[v], "value %d must appear exactly once", v)
	}
	require.Equal(t, 1, seen[0], "0 must be reachable exactly once")
	for v, c := range seen {
		abs := v
		if abs < 0 {
			abs = -abs
		}
		nAbs := n
		if nAbs < 0 {
			nAbs = -nAbs
		}
		require.LessOrEqual(t, abs, nAbs)
		require.Equal(t, 1, c)
	}
}

func TestIntShrinkCompletenessSmall(t *testing.T) {
	testIntCompleteness(t, 13)
	testIntCompleteness(t, -13)
	testIntCompleteness(t, 1)
	testIntCompleteness(t, -1)
}

func TestIntShrinkCompletenessFixtures(t *testing.T) {
	for _, n := range []int64{40213, 7531246, 964285173} {
		s := Int(n)
		vals := preOrderValues(s, 4_000_000)
		require.NotEmpty(t, vals)
		require.Equal(t, n, vals[0])
		// every value strictly simpler than n in absolute terms
		for _, v := range vals[1:] {
			require.Less(t, absI64(v), absI64(n))
		}
	}
}

func absI64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestIntZeroHasNoChildren(t *testing.T) {
	require.True(t, Int(0).Shrinks().IsEmpty())
}

func TestFloatSpecialValuesShrinkToZero(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s := Float(v)
		children := s.Shrinks().ToSlice(-1)
		require.Len(t, children, 1)
		require.Equal(t, 0.0, children[0].Value)
	}
}

func TestFloatShrinksTowardZero(t *testing.T) {
	s := Float(12.75)
	found := preOrderValues(s, 1000)
	require.Contains(t, found, 0.0)
	for _, v := range found[1:] {
		require.Less(t, math.Abs(v), math.Abs(12.75))
	}
}

func TestArrayLengthFirst(t *testing.T) {
	elems := make([]Shrinkable[int], 8)
	for i := range elems {
		elems[i] = Leaf(0)
	}
	arr := Array(elems, 0)
	first, _, ok := arr.Shrinks().Next()
	require.True(t, ok)
	require.LessOrEqual(t, len(first.Value), 4, "first shrink attempt must halve the length, not decrement by one")
}

func TestArrayRespectsMinLen(t *testing.T) {
	elems := make([]Shrinkable[int], 5)
	for i := range elems {
		elems[i] = Leaf(i)
	}
	arr := Array(elems, 3)
	it := arr.Shrinks().Iterator()
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		require.GreaterOrEqual(t, len(c.Value), 3)
	}
}

func TestSetDropsCollidingCandidates(t *testing.T) {
	elems := []Shrinkable[int]{Int64ToInt(Int(5)), Int64ToInt(Int(2))}
	s := Set(elems, 0)
	it := s.Shrinks().Iterator()
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		seen := map[int]struct{}{}
		for _, v := range c.Value {
			_, dup := seen[v]
			require.False(t, dup, "set candidate must remain unique: %v", c.Value)
			seen[v] = struct{}{}
		}
	}
}

func Int64ToInt(s Shrinkable[int64]) Shrinkable[int] {
	return Map(s, func(v int64) int { return int(v) })
}

func TestPermutationShrinksTowardIdentity(t *testing.T) {
	p := []int{2, 0, 3, 1}
	s := Permutation(p)
	children := s.Shrinks().ToSlice(-1)
	require.NotEmpty(t, children)
	for _, c := range children {
		outOfPlace := 0
		for i, v := range c.Value {
			if v != i {
				outOfPlace++
			}
		}
		origOutOfPlace := 0
		for i, v := range p {
			if v != i {
				origOutOfPlace++
			}
		}
		require.Less(t, outOfPlace, origOutOfPlace)
	}
}

func TestPermutationIdentityHasNoUsefulChildren(t *testing.T) {
	s := Permutation([]int{0, 1, 2, 3})
	require.True(t, s.Shrinks().IsEmpty())
}

func TestDictShrinksKeysThenValues(t *testing.T) {
	entries := []Entry[int, int]{
		{Key: Int64ToInt(Int(10)), Val: Int64ToInt(Int(100))},
		{Key: Int64ToInt(Int(20)), Val: Int64ToInt(Int(200))},
	}
	d := Dict(entries, 0)
	vals := d.Value
	sort.Slice(vals, func(i, j int) bool { return vals[i].Key < vals[j].Key })
	require.Equal(t, []int{10, 20}, []int{vals[0].Key, vals[1].Key})
	require.False(t, d.Shrinks().IsEmpty())
	sawKey, sawVal := false, false
	it := d.Shrinks().Iterator()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		if len(c.Value) != 2 {
			continue
		}
		keyChanged := c.Value[0].Key != 10 || c.Value[1].Key != 20
		if keyChanged {
			require.False(t, sawVal, "key shrink after a value shrink")
			sawKey = true
		} else {
			sawVal = true
		}
	}
	require.True(t, sawKey)
	require.True(t, sawVal)
}
