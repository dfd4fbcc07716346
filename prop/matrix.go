package prop

import "github.com/pkg/errors"

// Matrix2 invokes predicate once per element of the Cartesian product of
// as and bs — exactly len(as)*len(bs) calls, with no randomness and no
// shrinking. If every combination skips via precondition, the run is
// reported as a failure the same way a for_all run overwhelmed by skips
// is.
func Matrix2[A, B any](predicate func(A, B) error, as []A, bs []B) error {
	if len(as) == 0 || len(bs) == 0 {
		return &ConfigurationError{Reason: "matrix called with an empty input list"}
	}
	total := 0
	skips := 0
	for _, a := range as {
		for _, b := range bs {
			total++
			err := predicate(a, b)
			if err == nil {
				continue
			}
			if IsPrecondition(err) {
				skips++
				continue
			}
			return &PropertyFailure{ExamplesRun: total, Args: []any{a, b}, Cause: err}
		}
	}
	if skips == total {
		return &PropertyFailure{ExamplesRun: total, Cause: errors.New("too many preconditions")}
	}
	return nil
}

// Matrix3 extends Matrix2 to three input lists.
func Matrix3[A, B, C any](predicate func(A, B, C) error, as []A, bs []B, cs []C) error {
	if len(as) == 0 || len(bs) == 0 || len(cs) == 0 {
		return &ConfigurationError{Reason: "matrix called with an empty input list"}
	}
	total := 0
	skips := 0
	for _, a := range as {
		for _, b := range bs {
			for _, c := range cs {
				total++
				err := predicate(a, b, c)
				if err == nil {
					continue
				}
				if IsPrecondition(err) {
					skips++
					continue
				}
				return &PropertyFailure{ExamplesRun: total, Args: []any{a, b, c}, Cause: err}
			}
		}
	}
	if skips == total {
		return &PropertyFailure{ExamplesRun: total, Cause: errors.New("too many preconditions")}
	}
	return nil
}
