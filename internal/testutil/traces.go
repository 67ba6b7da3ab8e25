// Package testutil provides tolerance helpers and synthetic spectral
// traces shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// GaussianTrace generates a baseline-free intensity trace of the given
// length with Gaussian peaks of the given amplitudes centered at the
// given sample positions. Centers, amplitudes and widths must have
// equal lengths.
func GaussianTrace(length int, centers, amplitudes, widths []float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		x := float64(i)
		for p := range centers {
			d := (x - centers[p]) / widths[p]
			out[i] += amplitudes[p] * math.Exp(-0.5*d*d)
		}
	}
	return out
}

// UniformPeakTrace generates a trace with equal-amplitude, equal-width
// Gaussian peaks at the given integer sample positions.
func UniformPeakTrace(length int, centers []int, amplitude, width float64) []float64 {
	c := make([]float64, len(centers))
	a := make([]float64, len(centers))
	w := make([]float64, len(centers))
	for i, pos := range centers {
		c[i] = float64(pos)
		a[i] = amplitude
		w[i] = width
	}
	return GaussianTrace(length, c, a, w)
}

// AddNoise returns a copy of the trace with deterministic uniform noise
// in [-amplitude, amplitude] added.
func AddNoise(trace []float64, seed int64, amplitude float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, len(trace))
	for i, v := range trace {
		out[i] = v + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// DCTrace returns a constant-valued trace.
func DCTrace(length int, value float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns a linearly increasing sequence start, start+step, ...
func Ramp(length int, start, step float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}
