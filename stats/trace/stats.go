// Package trace computes descriptive statistics of intensity traces.
//
// The statistics feed spectrum normalization and noise estimation:
// min/max for rescaling, mean and standard deviation for
// standardization, the median as a robust baseline estimate, and the
// higher moments as baseline-shape diagnostics.
package trace

import (
	"math"
	"sort"
)

// Stats holds descriptive statistics of an intensity trace.
type Stats struct {
	Length   int
	Mean     float64
	Median   float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Range    float64 // Max - Min
	Variance float64
	Std      float64
	Skewness float64
	Kurtosis float64 // excess kurtosis
}

// Calculate computes all statistics of the trace. Moments are
// accumulated in a single pass using Welford's online algorithm for
// numerical stability; the median needs a sorted copy and is computed
// separately.
func Calculate(trace []float64) Stats {
	n := len(trace)
	if n == 0 {
		return Stats{}
	}

	// Welford accumulators.
	var (
		mean float64
		m2   float64
		m3   float64
		m4   float64
	)

	maxVal, minVal := trace[0], trace[0]
	maxPos, minPos := 0, 0

	for i, x := range trace {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:   n,
		Mean:     mean,
		Median:   Median(trace),
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Range:    maxVal - minVal,
		Variance: variance,
		Std:      math.Sqrt(variance),
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}

// Median returns the median of the trace without modifying it. The
// even-length median is the mean of the two central values. An empty
// trace yields 0.
func Median(trace []float64) float64 {
	if len(trace) == 0 {
		return 0
	}
	sorted := make([]float64, len(trace))
	copy(sorted, trace)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}

// MinMax returns the smallest and largest trace values in one pass. An
// empty trace yields (0, 0).
func MinMax(trace []float64) (lo, hi float64) {
	if len(trace) == 0 {
		return 0, 0
	}
	lo, hi = trace[0], trace[0]
	for _, v := range trace[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
