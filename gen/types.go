// Package gen provides the generator algebra: primitives and combinators
// that produce shrink.Shrinkable values from an rng.Random, preserving
// shrink information across every combinator.
package gen

import (
	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
)

// Generator is a function from a random source to a Shrinkable. Every
// combinator in this package takes and returns values of this type, so
// shrink trees compose the same way generators do.
type Generator[T any] func(r *rng.Random) shrink.Shrinkable[T]

// Size bounds a container generator's length. Min/Max are both inclusive.
type Size struct {
	Min int
	Max int
}

// DefaultContainerSize is used by container generators when no explicit
// Size is requested (see §6 of the spec: default container length is
// 0..10).
var DefaultContainerSize = Size{Min: 0, Max: 10}

// DefaultNumRuns is the default number of examples for_all draws.
const DefaultNumRuns = 200

// DefaultStatefulNumRuns is the default number of sequences a stateful
// harness run draws.
const DefaultStatefulNumRuns = 100
