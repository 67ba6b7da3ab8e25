package peaks

// Refine estimates the sub-sample position and height of a peak by
// fitting a parabola through the sample at index and its two
// neighbors:
//
//	x = i + (y[i-1] - y[i+1]) / (2*(y[i-1] - 2*y[i] + y[i+1]))
//
// Peaks at the trace edge, degenerate (collinear) windows, and vertices
// falling outside the three-sample window are returned unrefined.
func Refine(trace []float64, index int) (x, y float64) {
	if index <= 0 || index >= len(trace)-1 {
		return float64(index), valueAt(trace, index)
	}

	ym1 := trace[index-1]
	y0 := trace[index]
	yp1 := trace[index+1]

	denom := ym1 - 2*y0 + yp1
	if denom == 0 {
		return float64(index), y0
	}
	offset := (ym1 - yp1) / (2 * denom)
	if offset <= -1 || offset >= 1 {
		return float64(index), y0
	}

	x = float64(index) + offset
	// Height of the parabola at its vertex.
	y = y0 - 0.25*(ym1-yp1)*offset
	return x, y
}

// RefineAll applies [Refine] to every peak and returns the refined
// sample positions and heights in input order.
func RefineAll(trace []float64, found []Peak) (xs, ys []float64) {
	xs = make([]float64, len(found))
	ys = make([]float64, len(found))
	for i, p := range found {
		xs[i], ys[i] = Refine(trace, p.Index)
	}
	return xs, ys
}

func valueAt(trace []float64, i int) float64 {
	if i < 0 || i >= len(trace) {
		return 0
	}
	return trace[i]
}
