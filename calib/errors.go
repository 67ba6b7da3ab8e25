package calib

import "errors"

var (
	// ErrPeakCountMismatch is returned when no one-to-one assignment
	// between detected peaks and reference lines can be constructed.
	ErrPeakCountMismatch = errors.New("calib: peak count does not match reference lines")

	// ErrCalibrationFit is returned when a calibration fit is
	// underdetermined or its residual exceeds the configured bound.
	ErrCalibrationFit = errors.New("calib: calibration fit failed")

	// ErrInputShapeMismatch is returned when the sample, neon and
	// acetonitrile traces do not share the same pixel domain.
	ErrInputShapeMismatch = errors.New("calib: input traces have mismatched shapes")
)
