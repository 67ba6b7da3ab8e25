package calib

import "github.com/cwbudde/algo-raman/internal/polyfit"

// Curve is a fitted polynomial axis mapping. It is immutable once
// produced by a calibration fit.
type Curve struct {
	coeffs []float64
}

// NewCurve constructs a curve from coefficients in ascending power
// order. The coefficients are copied.
func NewCurve(coeffs []float64) Curve {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Curve{coeffs: c}
}

// Eval evaluates the curve at x.
func (c Curve) Eval(x float64) float64 {
	return polyfit.Eval(c.coeffs, x)
}

// Apply evaluates the curve over all xs and returns a new slice.
func (c Curve) Apply(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = c.Eval(x)
	}
	return out
}

// Coeffs returns a copy of the coefficients in ascending power order.
func (c Curve) Coeffs() []float64 {
	out := make([]float64, len(c.coeffs))
	copy(out, c.coeffs)
	return out
}

// Degree returns the polynomial degree, or -1 for a zero curve.
func (c Curve) Degree() int {
	return len(c.coeffs) - 1
}

// ShiftCurve maps camera pixel index to Raman shift by composing an
// excitation curve (pixel to nm), the wavenumber-difference relation
// relative to the laser line, and the emission correction fit.
type ShiftCurve struct {
	Excitation Curve
	LaserNM    float64
	Correction Curve
}

// Eval evaluates the composed mapping at a (possibly fractional)
// pixel position.
func (s ShiftCurve) Eval(pixel float64) float64 {
	wavelength := s.Excitation.Eval(pixel)
	return s.Correction.Eval(RamanShift(s.LaserNM, wavelength))
}

// Apply evaluates the composed mapping over all pixel positions.
func (s ShiftCurve) Apply(pixels []float64) []float64 {
	out := make([]float64, len(pixels))
	for i, p := range pixels {
		out[i] = s.Eval(p)
	}
	return out
}

// RamanShift converts an observed emission wavelength to a Raman shift
// in cm^-1 given the excitation wavelength, both in nm:
//
//	shift = 1e7 * (1/laser - 1/observed)
func RamanShift(laserNM, observedNM float64) float64 {
	return 1e7 * (1/laserNM - 1/observedNM)
}
