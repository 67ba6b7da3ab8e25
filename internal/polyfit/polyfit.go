// Package polyfit provides least-squares polynomial fitting over sample
// points, the numeric primitive behind both calibration stages.
package polyfit

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	errLengthMismatch = errors.New("polyfit: x and y must have same length")
	errNegativeDegree = errors.New("polyfit: degree must be >= 0")
)

// ErrUnderdetermined is returned when fewer sample points than
// coefficients are supplied.
var ErrUnderdetermined = errors.New("polyfit: underdetermined system")

// Fit fits a polynomial of the given degree to the points (x[i], y[i])
// by linear least squares and returns the coefficients in ascending
// power order together with the sum of squared residuals.
//
// At least degree+1 points are required; with exactly degree+1 points
// the fit interpolates and the residual is zero up to rounding.
func Fit(x, y []float64, degree int) ([]float64, float64, error) {
	if len(x) != len(y) {
		return nil, 0, fmt.Errorf("%w: %d vs %d", errLengthMismatch, len(x), len(y))
	}
	if degree < 0 {
		return nil, 0, fmt.Errorf("%w: %d", errNegativeDegree, degree)
	}
	n := len(x)
	cols := degree + 1
	if n < cols {
		return nil, 0, fmt.Errorf("%w: %d points for degree %d", ErrUnderdetermined, n, degree)
	}

	// Vandermonde design matrix.
	a := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		v := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, v)
			v *= x[i]
		}
	}
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, y[i])
	}

	var qr mat.QR
	qr.Factorize(a)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, b); err != nil {
		return nil, 0, fmt.Errorf("polyfit: solve failed: %w", err)
	}

	coeffs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		coeffs[j] = sol.AtVec(j)
	}

	residual := 0.0
	for i := 0; i < n; i++ {
		d := Eval(coeffs, x[i]) - y[i]
		residual += d * d
	}
	return coeffs, residual, nil
}

// Eval evaluates a polynomial with ascending-power coefficients at x
// using Horner's scheme. An empty coefficient slice evaluates to 0.
func Eval(coeffs []float64, x float64) float64 {
	acc := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}
	return acc
}
