package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNear fails t if got differs from want by more than eps.
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > eps {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireSliceNear fails t if got and want differ in length or if any
// element pair exceeds eps (absolute tolerance).
func RequireSliceNear(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if math.IsNaN(diff) || diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two
// slices. Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// RequireAscending fails t if the sequence is not strictly increasing.
func RequireAscending(t *testing.T, data []float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if data[i] <= data[i-1] {
			t.Fatalf("index %d: %v <= %v, sequence not ascending", i, data[i], data[i-1])
		}
	}
}
