package prop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrel-labs/qcheck/gen"
)

func TestForAll2CommutativityPasses(t *testing.T) {
	cfg := Default().SetSeed(1).SetNumRuns(50)
	err := ForAll2(cfg, gen.Interval(0, 100), gen.Interval(0, 100), func(a, b int64) error {
		if a+b != b+a {
			return errorf("addition not commutative")
		}
		return nil
	})
	require.NoError(t, err)
}

func TestForAll1ShrinksToMinimalCounterexample(t *testing.T) {
	cfg := Default().SetSeed(99).SetNumRuns(100)
	err := ForAll1(cfg, gen.Array(gen.Interval(0, 10), gen.Size{Min: 0, Max: 10}), func(xs []int64) error {
		if len(xs) >= 3 {
			return errorf("length >= 3")
		}
		return nil
	})
	require.Error(t, err)
	pf, ok := err.(*PropertyFailure)
	require.True(t, ok)
	xs := pf.Args[0].([]int64)
	require.Len(t, xs, 3)
	for _, x := range xs {
		require.Equal(t, int64(0), x)
	}
}

func TestForAll1PreconditionSkipDoesNotFailAlone(t *testing.T) {
	cfg := Default().SetSeed(5).SetNumRuns(20)
	calls := 0
	err := ForAll1(cfg, gen.Interval(0, 10), func(v int64) error {
		calls++
		if v == 3 {
			return Precondition("avoid 3")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 20, calls)
}

func TestForAll1TooManyPreconditionsFails(t *testing.T) {
	cfg := Default().SetSeed(5).SetNumRuns(20)
	err := ForAll1(cfg, gen.Just(1), func(v int) error {
		return Precondition("always")
	})
	require.Error(t, err)
}

func TestMatrix2ExhaustsCartesianProduct(t *testing.T) {
	calls := 0
	err := Matrix2(func(a, b int) error {
		calls++
		return nil
	}, []int{1, 2, 3}, []int{2, 3})
	require.NoError(t, err)
	require.Equal(t, 6, calls)
}

func TestMatrix2ReportsFailingCombination(t *testing.T) {
	err := Matrix2(func(a, b int) error {
		if a == 2 && b == 3 {
			return errorf("boom")
		}
		return nil
	}, []int{1, 2, 3}, []int{2, 3})
	require.Error(t, err)
	pf := err.(*PropertyFailure)
	require.Equal(t, []any{2, 3}, pf.Args)
}

func TestExample1PassesOnConcreteValue(t *testing.T) {
	require.NoError(t, Example1(func(v int) error {
		if v != 2 {
			return errorf("not 2")
		}
		return nil
	}, 2))
}

func TestDeterministicAcrossRuns(t *testing.T) {
	cfg := Default().SetSeed(777).SetNumRuns(30)
	run := func() error {
		return ForAll1(cfg, gen.Interval(0, 1000), func(v int64) error {
			if v == 500 {
				return errorf("hit 500")
			}
			return nil
		})
	}
	err1 := run()
	err2 := run()
	require.Equal(t, err1 == nil, err2 == nil)
	if err1 != nil {
		require.Equal(t, err1.(*PropertyFailure).Args, err2.(*PropertyFailure).Args)
	}
}

func TestForAll1DrawsDistinctValuesAcrossRuns(t *testing.T) {
	cfg := Default().SetSeed(11).SetNumRuns(50)
	seen := map[int64]struct{}{}
	err := ForAll1(cfg, gen.Interval(0, 1_000_000), func(v int64) error {
		seen[v] = struct{}{}
		return nil
	})
	require.NoError(t, err)
	require.Greater(t, len(seen), 1, "every iteration produced the same value — the master generator isn't advancing")
}

func TestForAll2DrawsDistinctValuesAcrossRuns(t *testing.T) {
	cfg := Default().SetSeed(13).SetNumRuns(50)
	seen := map[[2]int64]struct{}{}
	err := ForAll2(cfg, gen.Interval(0, 1_000_000), gen.Interval(0, 1_000_000), func(a, b int64) error {
		seen[[2]int64{a, b}] = struct{}{}
		return nil
	})
	require.NoError(t, err)
	require.Greater(t, len(seen), 1, "every iteration produced the same pair — the master generator isn't advancing")
}

func TestForAll1FilterRetryCapSurfacesAsGenerationError(t *testing.T) {
	cfg := Default().SetSeed(21).SetNumRuns(5)
	impossible := gen.Filter(gen.Interval(0, 10), func(int64) bool { return false })
	err := ForAll1(cfg, impossible, func(int64) error { return nil })
	require.Error(t, err)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

type simpleErr string

func (e simpleErr) Error() string { return string(e) }

func errorf(msg string) error { return simpleErr(msg) }
