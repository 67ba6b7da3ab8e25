package calib

import "fmt"

// CalibrateEmission refines an excitation curve into a pixel-to-Raman-
// shift mapping using matched acetonitrile peaks.
//
// Each matched peak's position is mapped through the excitation
// curve to an observed wavelength, converted to an observed shift via
// [RamanShift] with the laser wavelength, and a correction polynomial
// of the given degree is fit from observed to canonical shift. The
// returned [ShiftCurve] composes all three steps.
//
// Fit failures follow the same rules as [CalibrateExcitation], applied
// to the correction fit.
func CalibrateEmission(excitation Curve, laserNM float64, matches []Match, degree int, residualBound float64) (ShiftCurve, error) {
	if laserNM <= 0 {
		return ShiftCurve{}, fmt.Errorf("%w: laser wavelength must be > 0 nm: %f", ErrCalibrationFit, laserNM)
	}
	if degree < 1 {
		return ShiftCurve{}, fmt.Errorf("%w: emission fit degree must be >= 1: %d", ErrCalibrationFit, degree)
	}

	observed := make([]float64, len(matches))
	canonical := make([]float64, len(matches))
	for i, m := range matches {
		wavelength := excitation.Eval(m.position())
		observed[i] = RamanShift(laserNM, wavelength)
		canonical[i] = m.Line.Value
	}

	correction, err := fitPairs(observed, canonical, degree, residualBound, "emission")
	if err != nil {
		return ShiftCurve{}, err
	}
	return ShiftCurve{
		Excitation: excitation,
		LaserNM:    laserNM,
		Correction: correction,
	}, nil
}
