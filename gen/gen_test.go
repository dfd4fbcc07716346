package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrel-labs/qcheck/rng"
)

func TestJustAlwaysSameValue(t *testing.T) {
	r := rng.NewFromSeed(1)
	g := Just(42)
	require.Equal(t, 42, g(r).Value)
	require.True(t, g(r).Shrinks().IsEmpty())
}

func TestBooleanDeterministic(t *testing.T) {
	g := Boolean()
	r1 := rng.NewFromSeed(7)
	r2 := rng.NewFromSeed(7)
	require.Equal(t, g(r1).Value, g(r2).Value)
}

func TestElementOfShrinksTowardFirst(t *testing.T) {
	g := ElementOf(WeightedValue(10, 0.5), WeightedValue(20, 0.5))
	r := rng.NewFromSeed(3)
	var s = g(r)
	children := s.Shrinks().ToSlice(-1)
	for _, c := range children {
		require.Equal(t, 10, c.Value)
	}
}

func TestOneOfPreservesChosenGeneratorTree(t *testing.T) {
	g := OneOf(WeightedGen(Just(1), 1.0))
	r := rng.NewFromSeed(9)
	s := g(r)
	require.Equal(t, 1, s.Value)
	require.True(t, s.Shrinks().IsEmpty())
}

func TestNormalizeRejectsOverweight(t *testing.T) {
	_, err := normalize([]Weighted[int]{WeightedValue(1, 0.7), WeightedValue(2, 0.6)})
	require.Error(t, err)
}

func TestNormalizeSplitsRemainder(t *testing.T) {
	out, err := normalize([]Weighted[int]{WeightedValue(1, 0.2), UnweightedValue(2), UnweightedValue(3)})
	require.NoError(t, err)
	require.InDelta(t, 0.2, out[0].Weight, 1e-9)
	require.InDelta(t, 0.4, out[1].Weight, 1e-9)
	require.InDelta(t, 0.4, out[2].Weight, 1e-9)
}

func TestIntervalBounds(t *testing.T) {
	r := rng.NewFromSeed(11)
	g := Interval(-5, 5)
	for i := 0; i < 200; i++ {
		v := g(r).Value
		require.GreaterOrEqual(t, v, int64(-5))
		require.LessOrEqual(t, v, int64(5))
	}
}

func TestMapTransformsValueAndShrinks(t *testing.T) {
	r := rng.NewFromSeed(5)
	g := Map(Interval(0, 100), func(v int64) string { return "" })
	s := g(r)
	require.Equal(t, "", s.Value)
	require.False(t, s.Shrinks().IsEmpty())
	it := s.Shrinks().Iterator()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		require.Equal(t, "", c.Value)
	}
}

func TestFilterOnlyProducesMatching(t *testing.T) {
	r := rng.NewFromSeed(13)
	g := Filter(Interval(0, 100), func(v int64) bool { return v%2 == 0 })
	for i := 0; i < 50; i++ {
		v := g(r).Value
		require.Equal(t, int64(0), v%2)
	}
}

func TestFlatMapDependentGenerator(t *testing.T) {
	r := rng.NewFromSeed(17)
	g := FlatMap(Interval(1, 5), func(n int64) Generator[[]int64] {
		return Array(Interval(0, 0), Size{Min: int(n), Max: int(n)})
	})
	s := g(r)
	require.GreaterOrEqual(t, len(s.Value), 1)
	require.LessOrEqual(t, len(s.Value), 5)
	for _, x := range s.Value {
		require.Equal(t, int64(0), x)
	}
}

func TestArrayRespectsSize(t *testing.T) {
	r := rng.NewFromSeed(19)
	g := Array(Just(0), Size{Min: 2, Max: 4})
	for i := 0; i < 50; i++ {
		v := g(r).Value
		require.GreaterOrEqual(t, len(v), 2)
		require.LessOrEqual(t, len(v), 4)
	}
}

func TestUniqueArrayHasNoDuplicates(t *testing.T) {
	r := rng.NewFromSeed(23)
	g := UniqueArray(Interval(0, 1000), Size{Min: 5, Max: 5})
	v := g(r).Value
	seen := map[int64]struct{}{}
	for _, x := range v {
		_, dup := seen[x]
		require.False(t, dup)
		seen[x] = struct{}{}
	}
}

func TestDictionaryKeysUnique(t *testing.T) {
	r := rng.NewFromSeed(29)
	g := Dictionary(Interval(0, 50), Interval(0, 50), Size{Min: 4, Max: 4})
	v := g(r).Value
	seen := map[int64]struct{}{}
	for _, e := range v {
		_, dup := seen[e.Key]
		require.False(t, dup)
		seen[e.Key] = struct{}{}
	}
}

func TestAsciiStringLowercaseShrinkTarget(t *testing.T) {
	r := rng.NewFromSeed(31)
	g := AsciiString(Size{Min: 3, Max: 8})
	s := g(r)
	require.GreaterOrEqual(t, len(s.Value), 3)
	require.LessOrEqual(t, len(s.Value), 8)
	want := []rune(s.Value)
	for i, c := range want {
		if c != 'a' {
			want[i] = 'a'
			break
		}
	}
	it := s.Shrinks().Iterator()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		if len(c.Value) == len(s.Value) {
			require.Equal(t, string(want), c.Value)
			break
		}
	}
}

func TestPermutationCoversAllIndices(t *testing.T) {
	r := rng.NewFromSeed(37)
	g := Permutation(6)
	v := g(r).Value
	seen := map[int]struct{}{}
	for _, x := range v {
		seen[x] = struct{}{}
	}
	require.Len(t, seen, 6)
}

func TestFilterRetryCapPanicsOnImpossiblePredicate(t *testing.T) {
	r := rng.NewFromSeed(5)
	g := Filter(Interval(0, 10), func(int64) bool { return false })
	require.Panics(t, func() { g(r) })
}

func TestUniqueArrayRetryCapPanicsWhenDomainTooSmall(t *testing.T) {
	r := rng.NewFromSeed(9)
	g := UniqueArray(Boolean(), Size{Min: 5, Max: 5})
	require.Panics(t, func() { g(r) })
}

func TestAccumulateLengthShrinkTriesShorterPrefixesFirst(t *testing.T) {
	r := rng.NewFromSeed(41)
	start := Just(0)(r)
	snapshot := r.Clone()
	step := func(prev int) Generator[int] { return Just(prev + 1) }

	s := buildChain(start, step, 8, 1, snapshot)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, s.Value)

	children := s.Shrinks().ToSlice(-1)
	require.NotEmpty(t, children)
	first := children[0]
	require.Less(t, len(first.Value), len(s.Value))
	require.Equal(t, s.Value[:len(first.Value)], first.Value)
}

func TestAccumulateChainLength(t *testing.T) {
	r := rng.NewFromSeed(41)
	g := Accumulate(Just(0), func(prev int) Generator[int] {
		return Just(prev + 1)
	}, Size{Min: 5, Max: 5})
	v := g(r).Value
	require.Equal(t, []int{0, 1, 2, 3, 4}, v)
}

func TestAggregateReturnsFinalState(t *testing.T) {
	r := rng.NewFromSeed(43)
	g := Aggregate(Just(0), func(prev int) Generator[int] {
		return Just(prev + 10)
	}, Size{Min: 3, Max: 3})
	require.Equal(t, 20, g(r).Value)
}

func TestTupleBuildsPair(t *testing.T) {
	r := rng.NewFromSeed(47)
	g := Tuple(Just(1), Just("a"))
	v := g(r).Value
	require.Equal(t, 1, v.A)
	require.Equal(t, "a", v.B)
}
