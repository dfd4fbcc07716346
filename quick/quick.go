// Package quick provides quick testing utilities for Go.
// It includes helper functions for common testing patterns, particularly
// for value comparison and assertion utilities.
package quick

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Equal compares two values of the same type and fails the test if they are not equal.
// It uses go-cmp for deep comparison and provides detailed diff output when values differ.
// The function calls t.Helper() to mark itself as a test helper function.
//
// Parameters:
//   - t: The testing.T instance for the current test
//   - got: The actual value obtained from the code under test
//   - want: The expected value
//
// Example usage:
//
//	quick.Equal(t, result, expected)
//	quick.Equal(t, []int{1, 2, 3}, []int{1, 2, 3})
//	quick.Equal(t, map[string]int{"a": 1}, map[string]int{"a": 1})
func Equal[T any](t *testing.T, got, want T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// CheckEqual is Equal without a *testing.T: it returns the diff as an error
// instead of failing a test directly, for use inside a for_all predicate or
// a stateful post_check where there is no *testing.T to hand.
func CheckEqual[T any](got, want T) error {
	if diff := cmp.Diff(want, got); diff != "" {
		return fmt.Errorf("mismatch (-want +got):\n%s", diff)
	}
	return nil
}

// CheckEqualAsSet is CheckEqual but ignores slice element order, for
// comparing model and object state where a stateful Action is free to
// reorder entries (e.g. a set-backed model versus a slice-backed object).
func CheckEqualAsSet[T any](got, want []T) error {
	sorted := func(s []T) []T {
		out := append([]T{}, s...)
		sort.Slice(out, func(i, j int) bool {
			return fmt.Sprintf("%v", out[i]) < fmt.Sprintf("%v", out[j])
		})
		return out
	}
	return CheckEqual(sorted(got), sorted(want))
}
