package stateful

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrel-labs/qcheck/gen"
	"github.com/kestrel-labs/qcheck/prop"
	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
)

// bugListModel mirrors the spec's literal stateful example: push appends,
// clear is buggy and only drops half the list (rounded down, so a
// one-element list keeps its element), and post_check asserts the
// live slice's length matches the model's count.
type bugListModel struct {
	count int
}

func pushAction(v int) Action[[]int, bugListModel] {
	return Action[[]int, bugListModel]{
		Name: "push",
		Run: func(obj []int, model bugListModel) ([]int, bugListModel, error) {
			return append(append([]int{}, obj...), v), bugListModel{count: model.count + 1}, nil
		},
	}
}

func clearAction() Action[[]int, bugListModel] {
	return Action[[]int, bugListModel]{
		Name: "clear",
		Run: func(obj []int, model bugListModel) ([]int, bugListModel, error) {
			half := len(obj) / 2
			return obj[:len(obj)-half], bugListModel{count: 0}, nil
		},
	}
}

func TestHarnessShrinksToMinimalBugReproduction(t *testing.T) {
	h := Harness[[]int, bugListModel]{
		InitialState: func(r *rng.Random) shrink.Shrinkable[[]int] { return shrink.Leaf([]int{}) },
		Model:        func(obj []int) bugListModel { return bugListModel{count: len(obj)} },
		NextAction: func(obj []int, model bugListModel) gen.Generator[Action[[]int, bugListModel]] {
			return gen.OneOf(
				gen.WeightedGen(gen.Map(gen.Interval(0, 100), func(v int64) Action[[]int, bugListModel] { return pushAction(int(v)) }), 0.6),
				gen.WeightedGen(gen.Just(clearAction()), 0.4),
			)
		},
		PostCheck: func(obj []int, model bugListModel) error {
			if len(obj) != model.count {
				return errors.New("length mismatch")
			}
			return nil
		},
	}
	cfg := prop.Default().SetSeed(1234).SetNumRuns(200).SetMinActions(1).SetMaxActions(10)
	err := Run(cfg, h)
	require.Error(t, err)
	f, ok := err.(*Failure[[]int, bugListModel])
	require.True(t, ok)
	require.LessOrEqual(t, len(f.Actions), 2)
	hasPush, hasClear := false, false
	for _, a := range f.Actions {
		if a.Name == "push" {
			hasPush = true
		}
		if a.Name == "clear" {
			hasClear = true
		}
	}
	require.True(t, hasPush)
	require.True(t, hasClear)
}

func TestHarnessPassesWhenModelCorrect(t *testing.T) {
	h := Harness[[]int, bugListModel]{
		InitialState: func(r *rng.Random) shrink.Shrinkable[[]int] { return shrink.Leaf([]int{}) },
		Model:        func(obj []int) bugListModel { return bugListModel{count: len(obj)} },
		NextAction: func(obj []int, model bugListModel) gen.Generator[Action[[]int, bugListModel]] {
			return gen.Map(gen.Interval(0, 100), func(v int64) Action[[]int, bugListModel] { return pushAction(int(v)) })
		},
		PostCheck: func(obj []int, model bugListModel) error {
			if len(obj) != model.count {
				return errors.New("length mismatch")
			}
			return nil
		},
	}
	cfg := prop.Default().SetSeed(42).SetNumRuns(50).SetMinActions(1).SetMaxActions(5)
	require.NoError(t, Run(cfg, h))
}
