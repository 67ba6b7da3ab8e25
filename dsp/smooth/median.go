package smooth

import (
	"fmt"
	"sort"
)

// Median applies a sliding median filter of the given kernel size and
// returns the filtered trace. The kernel size must be odd and positive;
// size 1 returns an unmodified copy. Samples beyond the trace edges are
// treated as zero, matching common spectral tooling.
func Median(trace []float64, kernelSize int) ([]float64, error) {
	if kernelSize <= 0 || kernelSize%2 == 0 {
		return nil, fmt.Errorf("smooth: median kernel size must be odd and > 0: %d", kernelSize)
	}
	out := make([]float64, len(trace))
	if kernelSize == 1 {
		copy(out, trace)
		return out, nil
	}

	half := kernelSize / 2
	window := make([]float64, kernelSize)
	for i := range trace {
		for k := 0; k < kernelSize; k++ {
			j := i - half + k
			if j < 0 || j >= len(trace) {
				window[k] = 0
			} else {
				window[k] = trace[j]
			}
		}
		sort.Float64s(window)
		out[i] = window[half]
	}
	return out, nil
}
