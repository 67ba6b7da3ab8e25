// Package calib implements the two-stage wavelength/wavenumber
// calibration procedure for raw OpenRAMAN spectra.
//
// The excitation stage matches detected peaks in a neon lamp capture
// against the known neon emission lines and fits a polynomial mapping
// camera pixel index to absolute wavelength. The emission stage
// converts that wavelength axis to Raman shift relative to the laser
// line and refines it against the known acetonitrile reference peaks.
// [Calibrator] sequences both stages over a sample capture; the
// individual stages are exported for callers that manage their own
// reference tables.
//
// All computations are pure and allocate their results fresh per run;
// a [Calibrator] is safe for concurrent use.
package calib
