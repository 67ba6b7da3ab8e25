package polyfit

import (
	"errors"
	"math"
	"testing"
)

func TestFitRecoversLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2.5*v - 7
	}

	coeffs, residual, err := Fit(x, y, 1)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if len(coeffs) != 2 {
		t.Fatalf("coefficient count: got %d, want 2", len(coeffs))
	}
	if math.Abs(coeffs[0]+7) > 1e-9 || math.Abs(coeffs[1]-2.5) > 1e-9 {
		t.Fatalf("coefficients %v, want [-7 2.5]", coeffs)
	}
	if residual > 1e-12 {
		t.Fatalf("residual %v, want ~0", residual)
	}
}

func TestFitRecoversQuadratic(t *testing.T) {
	x := []float64{-3, -1, 0, 2, 4, 7, 9}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 0.5*v*v - 3*v + 1
	}

	coeffs, residual, err := Fit(x, y, 2)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	want := []float64{1, -3, 0.5}
	for j := range want {
		if math.Abs(coeffs[j]-want[j]) > 1e-8 {
			t.Fatalf("coefficient %d: got %v, want %v", j, coeffs[j], want[j])
		}
	}
	if residual > 1e-10 {
		t.Fatalf("residual %v, want ~0", residual)
	}
}

func TestFitReportsResidual(t *testing.T) {
	// Points off a line by exactly +-1: best line is the middle,
	// residual is the sum of squared offsets.
	x := []float64{0, 1, 2, 3}
	y := []float64{1, -1, 1, -1}

	_, residual, err := Fit(x, y, 0)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if math.Abs(residual-4) > 1e-9 {
		t.Fatalf("residual %v, want 4", residual)
	}
}

func TestFitUnderdetermined(t *testing.T) {
	_, _, err := Fit([]float64{1, 2}, []float64{1, 2}, 2)
	if !errors.Is(err, ErrUnderdetermined) {
		t.Fatalf("err = %v, want ErrUnderdetermined", err)
	}
}

func TestFitLengthMismatch(t *testing.T) {
	if _, _, err := Fit([]float64{1, 2, 3}, []float64{1, 2}, 1); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestEval(t *testing.T) {
	coeffs := []float64{1, 0, 2} // 1 + 2x^2
	if got := Eval(coeffs, 3); math.Abs(got-19) > 1e-12 {
		t.Fatalf("Eval = %v, want 19", got)
	}
	if got := Eval(nil, 5); got != 0 {
		t.Fatalf("Eval(nil) = %v, want 0", got)
	}
}
