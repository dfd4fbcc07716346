// Package prop runs a generator-driven predicate many times over seeded
// random input, classifies each outcome, and greedily shrinks the first
// failure to a locally minimal counterexample.
package prop

import (
	"fmt"

	"github.com/pkg/errors"
)

// preconditionError is the distinguished, silent skip signal a predicate
// returns to discard an input without counting it as a failure.
type preconditionError struct {
	reason string
}

func (e *preconditionError) Error() string {
	if e.reason == "" {
		return "prop: precondition failed"
	}
	return "prop: precondition failed: " + e.reason
}

// Precondition builds the distinguished skip error a predicate returns to
// discard the current input. reason is optional context, shown only in
// verbose logging.
func Precondition(reason string) error {
	return &preconditionError{reason: reason}
}

// IsPrecondition reports whether err (or anything it wraps) is a
// precondition skip signal.
func IsPrecondition(err error) bool {
	var p *preconditionError
	return errors.As(err, &p)
}

// GenerationError reports a failure that happened while building inputs,
// before the predicate ever ran: a filter that never accepted a value, an
// out-of-range Shrinkable path, or similar. It is reported directly, with
// no shrink attempt, since there is no failing Shrinkable to shrink.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("prop: generation error in %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError wraps err as a GenerationError attributed to op.
func NewGenerationError(op string, err error) error {
	return &GenerationError{Op: op, Err: errors.WithStack(err)}
}

// ConfigurationError reports a problem detected eagerly, before generation
// or any run starts: matrix called with zero lists, invalid weights, and
// the like.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return "prop: configuration error: " + e.Reason }

// PropertyFailure is the error a failed for_all/matrix/stateful run
// returns: a predicate that returned a non-precondition error, carrying
// the run's seed and the minimal counterexample found by shrinking.
type PropertyFailure struct {
	RunID         string
	ReplayCapsule string
	Seed          int64
	ExamplesRun   int
	ShrinkSteps   int
	Args          []any
	Cause         error
	Trace         []ShrinkStep
}

// ShrinkStep records one accepted shrink during the search: which argument
// index shrank, and what the full argument list looked like right after.
type ShrinkStep struct {
	ArgIndex int
	Args     []any
}

func (e *PropertyFailure) Error() string {
	report := FormatReport(e)
	return report
}

func (e *PropertyFailure) Unwrap() error { return e.Cause }
