// Package interp provides interpolation primitives for spectral
// traces: gap repair for dropped camera samples, and resampling of a
// calibrated spectrum onto a new wavenumber axis.
//
// Resampling uses 4-point cubic Hermite interpolation in the interior
// and falls back to linear interpolation near the trace boundaries.
package interp
