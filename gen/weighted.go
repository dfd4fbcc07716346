package gen

import (
	"math"

	"github.com/kestrel-labs/qcheck/rng"
)

// Weighted pairs a value with an optional weight in [0,1]. Entries built
// with WeightedValue carry an explicit weight; entries built with
// UnweightedValue split whatever weight remains after normalization,
// equally among themselves.
type Weighted[T any] struct {
	Value     T
	Weight    float64
	HasWeight bool
}

// WeightedValue builds a Weighted entry carrying an explicit weight.
func WeightedValue[T any](v T, w float64) Weighted[T] {
	return Weighted[T]{Value: v, Weight: w, HasWeight: true}
}

// UnweightedValue builds a Weighted entry with no explicit weight; its
// share of probability mass is computed during normalization.
func UnweightedValue[T any](v T) Weighted[T] {
	return Weighted[T]{Value: v}
}

// WeightedGen is WeightedValue specialized for one_of's generator list.
func WeightedGen[T any](g Generator[T], w float64) Weighted[Generator[T]] {
	return WeightedValue(g, w)
}

const weightEpsilon = 1e-9

// normalize validates and fills in a Weighted list's weights so they sum to
// 1.0. Explicit weights are kept; unweighted entries split the remainder
// equally. It is a configuration error (§7) if an explicit weight falls
// outside [0,1], if the explicit sum exceeds 1, if unweighted entries exist
// with no remainder left to split, or if every entry is explicitly weighted
// but the weights don't already sum to 1 (needed so weighted selection below
// covers the full probability mass with no gap).
func normalize[T any](items []Weighted[T]) ([]Weighted[T], error) {
	if len(items) == 0 {
		return nil, &ConfigError{Reason: "weighted list must have at least one entry"}
	}
	sumExplicit := 0.0
	nUnweighted := 0
	for _, it := range items {
		if it.HasWeight {
			if it.Weight < 0 || it.Weight > 1 {
				return nil, &ConfigError{Reason: "weight out of [0,1]"}
			}
			sumExplicit += it.Weight
		} else {
			nUnweighted++
		}
	}
	if sumExplicit > 1+weightEpsilon {
		return nil, &ConfigError{Reason: "explicit weights sum to more than 1"}
	}
	remainder := 1 - sumExplicit
	out := make([]Weighted[T], len(items))
	copy(out, items)
	if nUnweighted == 0 {
		if math.Abs(remainder) > weightEpsilon {
			return nil, &ConfigError{Reason: "explicit weights must sum to 1 when no unweighted entries are present"}
		}
		return out, nil
	}
	if remainder <= weightEpsilon {
		return nil, &ConfigError{Reason: "unweighted entries present but no remainder left to split"}
	}
	share := remainder / float64(nUnweighted)
	for i := range out {
		if !out[i].HasWeight {
			out[i].Weight = share
			out[i].HasWeight = true
		}
	}
	return out, nil
}

// ConfigError reports a configuration error: a problem detected eagerly,
// before any generation or property run starts.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "gen: configuration error: " + e.Reason }

// selectWeighted draws an index in [0, len(weights)) using one in_range
// draw plus one next_boolean(weight) draw per rejection cycle, as specified
// for one_of/element_of selection — a reject-and-resample scheme rather
// than an alias table, kept for bit-for-bit determinism against the spec's
// described draw sequence.
func selectWeighted(r *rng.Random, weights []float64) int {
	n := len(weights)
	for {
		idx := int(r.InRange(0, int64(n)))
		if r.NextBoolean(weights[idx]) {
			return idx
		}
	}
}
