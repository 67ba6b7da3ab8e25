package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-raman/internal/testutil"
)

func TestFillNaN(t *testing.T) {
	trace := []float64{math.NaN(), 2, math.NaN(), math.NaN(), 8, math.NaN()}
	FillNaN(trace)
	testutil.RequireSliceNear(t, trace, []float64{2, 2, 4, 6, 8, 8}, 1e-12)
}

func TestFillNaNNoGaps(t *testing.T) {
	trace := []float64{1, 2, 3}
	FillNaN(trace)
	testutil.RequireSliceNear(t, trace, []float64{1, 2, 3}, 0)
}

func TestFillNaNAllNaN(t *testing.T) {
	trace := []float64{math.NaN(), math.NaN()}
	FillNaN(trace)
	for i, v := range trace {
		if !math.IsNaN(v) {
			t.Fatalf("index %d: got %v, want NaN preserved", i, v)
		}
	}
}

func TestHermite4ReproducesCubics(t *testing.T) {
	// Hermite interpolation through uniform samples of a cubic must
	// reproduce it exactly in the central interval.
	f := func(x float64) float64 { return 2*x*x*x - x*x + 3*x - 5 }
	for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := Hermite4(frac, f(-1), f(0), f(1), f(2))
		testutil.RequireNear(t, got, f(frac), 1e-9)
	}
}

func TestHermite4Endpoints(t *testing.T) {
	testutil.RequireNear(t, Hermite4(0, 7, 1, 4, 9), 1, 0)
	testutil.RequireNear(t, Hermite4(1, 7, 1, 4, 9), 4, 0)
}

func TestResampleIdentity(t *testing.T) {
	xs := testutil.Ramp(32, 100, 2)
	ys := testutil.GaussianTrace(32, []float64{16}, []float64{1}, []float64{3})

	got, err := Resample(xs, ys, xs)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	testutil.RequireSliceNear(t, got, ys, 1e-12)
}

func TestResampleSmoothCurve(t *testing.T) {
	// Halving the sampling step of a smooth curve must track the
	// underlying function closely.
	xs := testutil.Ramp(64, 0, 1)
	ys := make([]float64, 64)
	for i := range ys {
		ys[i] = math.Sin(float64(i) * 0.2)
	}

	targets := testutil.Ramp(127, 0, 0.5)
	got, err := Resample(xs, ys, targets)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	for i, x := range targets {
		testutil.RequireNear(t, got[i], math.Sin(x*0.2), 1e-3)
	}
}

func TestResampleClampsOutside(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{10, 20, 30, 40}

	got, err := Resample(xs, ys, []float64{-5, 99})
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	testutil.RequireSliceNear(t, got, []float64{10, 40}, 0)
}

func TestResampleRejectsBadAxis(t *testing.T) {
	if _, err := Resample([]float64{0, 2, 1}, []float64{1, 2, 3}, []float64{1}); !errors.Is(err, ErrAxisNotAscending) {
		t.Fatalf("err = %v, want ErrAxisNotAscending", err)
	}
	if _, err := Resample([]float64{0, 1}, []float64{1}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if _, err := Resample([]float64{0}, []float64{1}, nil); err == nil {
		t.Fatal("expected too-few-samples error")
	}
}
