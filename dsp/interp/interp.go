package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrAxisNotAscending is returned when a source axis is not strictly
// increasing.
var ErrAxisNotAscending = errors.New("interp: source axis must be strictly ascending")

// FillNaN repairs NaN samples in place by linear interpolation between
// the nearest finite neighbors. Leading and trailing NaN runs take the
// nearest finite value. A trace without finite samples is left
// untouched.
func FillNaN(trace []float64) {
	prev := -1
	for i := 0; i < len(trace); i++ {
		if math.IsNaN(trace[i]) {
			continue
		}
		switch {
		case prev < 0 && i > 0:
			for j := 0; j < i; j++ {
				trace[j] = trace[i]
			}
		case prev >= 0 && i > prev+1:
			step := (trace[i] - trace[prev]) / float64(i-prev)
			for j := prev + 1; j < i; j++ {
				trace[j] = trace[prev] + step*float64(j-prev)
			}
		}
		prev = i
	}
	if prev >= 0 {
		for j := prev + 1; j < len(trace); j++ {
			trace[j] = trace[prev]
		}
	}
}

// Hermite4 computes cubic 4-point interpolation at fraction t in
// [0, 1] between x0 and x1, using the neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Resample evaluates the trace (xs, ys) at each target position.
// Interior targets use Hermite interpolation over the four bracketing
// samples; targets in the first or last interval use linear
// interpolation; targets outside the axis clamp to the boundary value.
// xs must be strictly ascending and match ys in length.
func Resample(xs, ys, targets []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interp: axis length %d does not match trace length %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("interp: need at least 2 samples, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: xs[%d]=%v, xs[%d]=%v", ErrAxisNotAscending, i-1, xs[i-1], i, xs[i])
		}
	}

	out := make([]float64, len(targets))
	for k, x := range targets {
		out[k] = at(xs, ys, x)
	}
	return out, nil
}

// at evaluates the trace at one position.
func at(xs, ys []float64, x float64) float64 {
	switch {
	case x <= xs[0]:
		return ys[0]
	case x >= xs[len(xs)-1]:
		return ys[len(ys)-1]
	}

	// i is the interval index with xs[i] <= x < xs[i+1].
	i := sort.SearchFloat64s(xs, x)
	if xs[i] > x {
		i--
	}
	t := (x - xs[i]) / (xs[i+1] - xs[i])

	if i == 0 || i+2 >= len(xs) {
		return ys[i] + t*(ys[i+1]-ys[i])
	}
	return Hermite4(t, ys[i-1], ys[i], ys[i+1], ys[i+2])
}
