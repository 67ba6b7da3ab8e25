package calib

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-raman/internal/polyfit"
)

// CalibrateExcitation fits a polynomial of the given degree mapping
// pixel index to wavelength (nm) through the matched neon peaks. The
// curve is valid over the full pixel domain of the trace the matches
// came from; extrapolation beyond the outermost matched peaks carries
// no accuracy guarantee.
//
// The fit fails with [ErrCalibrationFit] when fewer than degree+1
// matches are supplied or when the sum of squared residuals exceeds
// residualBound (a non-positive bound disables the check).
func CalibrateExcitation(matches []Match, degree int, residualBound float64) (Curve, error) {
	return fitMatches(matches, degree, residualBound, "excitation")
}

// fitMatches runs a least-squares fit of reference values against peak
// pixel positions, shared by both calibration stages.
func fitMatches(matches []Match, degree int, residualBound float64, stage string) (Curve, error) {
	if degree < 1 {
		return Curve{}, fmt.Errorf("%w: %s fit degree must be >= 1: %d", ErrCalibrationFit, stage, degree)
	}
	xs := make([]float64, len(matches))
	ys := make([]float64, len(matches))
	for i, m := range matches {
		xs[i] = m.position()
		ys[i] = m.Line.Value
	}
	return fitPairs(xs, ys, degree, residualBound, stage)
}

func fitPairs(xs, ys []float64, degree int, residualBound float64, stage string) (Curve, error) {
	coeffs, residual, err := polyfit.Fit(xs, ys, degree)
	if err != nil {
		if errors.Is(err, polyfit.ErrUnderdetermined) {
			return Curve{}, fmt.Errorf("%w: %s fit underdetermined: %d matches for degree %d",
				ErrCalibrationFit, stage, len(xs), degree)
		}
		return Curve{}, fmt.Errorf("%w: %s fit: %v", ErrCalibrationFit, stage, err)
	}
	if residualBound > 0 && residual > residualBound {
		return Curve{}, fmt.Errorf("%w: %s fit residual %.3g exceeds bound %.3g",
			ErrCalibrationFit, stage, residual, residualBound)
	}
	return Curve{coeffs: coeffs}, nil
}
