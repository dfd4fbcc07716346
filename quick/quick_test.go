package quick

import (
	"testing"
)

func TestCheckEqualNoDiff(t *testing.T) {
	if err := CheckEqual([]int{1, 2, 3}, []int{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckEqualReportsDiff(t *testing.T) {
	err := CheckEqual([]int{1, 2}, []int{1, 2, 3})
	if err == nil {
		t.Fatal("expected a diff error")
	}
}

func TestCheckEqualAsSetIgnoresOrder(t *testing.T) {
	if err := CheckEqualAsSet([]int{3, 1, 2}, []int{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckEqualAsSetStillCatchesMismatch(t *testing.T) {
	err := CheckEqualAsSet([]int{1, 2, 2}, []int{1, 2, 3})
	if err == nil {
		t.Fatal("expected a mismatch error")
	}
}
