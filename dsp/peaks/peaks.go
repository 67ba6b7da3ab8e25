package peaks

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInsufficientPeaks is returned when a trace contains fewer local
// maxima than the number of peaks requested.
var ErrInsufficientPeaks = errors.New("peaks: insufficient peaks in trace")

// Peak is a local intensity maximum of a trace.
type Peak struct {
	// Index is the sample position of the maximum. For flat-topped
	// peaks it is the midpoint of the plateau.
	Index int
	// Intensity is the trace value at Index.
	Intensity float64
	// Prominence is the topographic prominence of the peak.
	Prominence float64
}

// Find returns all peaks of the trace with prominence >= minProminence,
// ordered by ascending sample index. The first and last samples never
// qualify as peaks. A negative minProminence is treated as zero.
func Find(trace []float64, minProminence float64) []Peak {
	all := localMaxima(trace)
	if minProminence <= 0 {
		return all
	}
	out := all[:0]
	for _, p := range all {
		if p.Prominence >= minProminence {
			out = append(out, p)
		}
	}
	return out
}

// FindNMostProminent returns the n highest-prominence peaks of the
// trace, ordered by ascending sample index. Prominence ties are broken
// in favor of the lower index. It returns [ErrInsufficientPeaks] when
// the trace holds fewer than n local maxima.
func FindNMostProminent(trace []float64, n int) ([]Peak, error) {
	if n <= 0 {
		return nil, fmt.Errorf("peaks: peak count must be > 0: %d", n)
	}
	all := localMaxima(trace)
	if len(all) < n {
		return nil, fmt.Errorf("%w: found %d, need %d", ErrInsufficientPeaks, len(all), n)
	}

	byProminence := make([]Peak, len(all))
	copy(byProminence, all)
	sort.SliceStable(byProminence, func(i, j int) bool {
		if byProminence[i].Prominence != byProminence[j].Prominence {
			return byProminence[i].Prominence > byProminence[j].Prominence
		}
		return byProminence[i].Index < byProminence[j].Index
	})

	kept := byProminence[:n]
	sort.Slice(kept, func(i, j int) bool { return kept[i].Index < kept[j].Index })
	return kept, nil
}

// localMaxima scans the trace for interior local maxima and computes
// their prominences. Flat-topped maxima are reported once, at the
// plateau midpoint; plateaus touching either trace edge are skipped.
func localMaxima(trace []float64) []Peak {
	var out []Peak
	n := len(trace)
	i := 1
	for i < n-1 {
		if trace[i-1] >= trace[i] {
			i++
			continue
		}
		// Climbing edge found; walk across a possible plateau.
		ahead := i + 1
		for ahead < n-1 && trace[ahead] == trace[i] {
			ahead++
		}
		if trace[ahead] < trace[i] {
			mid := (i + ahead - 1) / 2
			out = append(out, Peak{
				Index:      mid,
				Intensity:  trace[mid],
				Prominence: prominence(trace, mid),
			})
		}
		i = ahead
	}
	return out
}

// prominence computes topographic prominence of the maximum at p:
// extend left and right until the trace exceeds trace[p] or an edge is
// reached, take the minimum of each excursion, and subtract the higher
// of the two minima from the peak height.
func prominence(trace []float64, p int) float64 {
	h := trace[p]

	leftMin := h
	for i := p - 1; i >= 0; i-- {
		if trace[i] > h {
			break
		}
		if trace[i] < leftMin {
			leftMin = trace[i]
		}
	}

	rightMin := h
	for i := p + 1; i < len(trace); i++ {
		if trace[i] > h {
			break
		}
		if trace[i] < rightMin {
			rightMin = trace[i]
		}
	}

	base := leftMin
	if rightMin > base {
		base = rightMin
	}
	return h - base
}
