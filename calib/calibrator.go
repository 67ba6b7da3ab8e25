package calib

import (
	"fmt"

	"github.com/cwbudde/algo-raman/dsp/peaks"
	"github.com/cwbudde/algo-raman/dsp/smooth"
	"github.com/cwbudde/algo-raman/stats/trace"
)

const (
	defaultExcitationWavelengthNM  = 532.0
	defaultKernelSize              = 5
	defaultFitDegree               = 1
	defaultExcitationResidualBound = 10.0
	defaultEmissionResidualBound   = 100.0
)

// Config holds the calibration parameters. The zero value selects the
// OpenRAMAN defaults: 532 nm diode laser, median kernel 5, linear fits
// for both stages.
type Config struct {
	// ExcitationWavelengthNM is the laser line in nm.
	ExcitationWavelengthNM float64
	// KernelSize is the median filter kernel applied to both
	// calibration traces before peak detection. Must be odd; 1
	// disables smoothing.
	KernelSize int
	// LowpassCutoff, when in (0, 1), additionally low-pass filters
	// the calibration traces at this fraction of Nyquist.
	LowpassCutoff float64
	// ExcitationDegree is the pixel-to-wavelength fit degree.
	ExcitationDegree int
	// EmissionDegree is the shift correction fit degree.
	EmissionDegree int
	// ExcitationResidualBound caps the sum of squared residuals of
	// the excitation fit (nm^2). Negative disables the check.
	ExcitationResidualBound float64
	// EmissionResidualBound caps the sum of squared residuals of the
	// emission correction fit (cm^-2). Negative disables the check.
	EmissionResidualBound float64
	// RefinePeaks enables parabolic sub-pixel refinement of the
	// acetonitrile peak positions before the correction fit.
	RefinePeaks bool
	// NeonLines overrides the neon reference table.
	NeonLines []Line
	// AcetonitrileLines overrides the acetonitrile reference table.
	AcetonitrileLines []Line
}

func normalizeConfig(cfg Config) Config {
	if cfg.ExcitationWavelengthNM <= 0 {
		cfg.ExcitationWavelengthNM = defaultExcitationWavelengthNM
	}
	if cfg.KernelSize <= 0 {
		cfg.KernelSize = defaultKernelSize
	}
	if cfg.ExcitationDegree <= 0 {
		cfg.ExcitationDegree = defaultFitDegree
	}
	if cfg.EmissionDegree <= 0 {
		cfg.EmissionDegree = defaultFitDegree
	}
	if cfg.ExcitationResidualBound == 0 {
		cfg.ExcitationResidualBound = defaultExcitationResidualBound
	}
	if cfg.EmissionResidualBound == 0 {
		cfg.EmissionResidualBound = defaultEmissionResidualBound
	}
	if cfg.NeonLines == nil {
		cfg.NeonLines = NeonLinesNM
	}
	if cfg.AcetonitrileLines == nil {
		cfg.AcetonitrileLines = AcetonitrileShiftsCM1
	}
	return cfg
}

// Calibrator sequences the excitation and emission calibration stages.
type Calibrator struct {
	cfg Config
}

// NewCalibrator creates a calibrator with normalized configuration.
func NewCalibrator(cfg Config) *Calibrator {
	return &Calibrator{cfg: normalizeConfig(cfg)}
}

// Config returns the normalized configuration.
func (c *Calibrator) Config() Config {
	return c.cfg
}

// Calibrate runs both calibration stages and returns the Raman shift
// axis (cm^-1) for the sample trace together with the composed curve,
// so further captures from the same session can be calibrated with
// [ShiftCurve.Apply].
//
// The three traces must share one pixel domain; a length mismatch is
// [ErrInputShapeMismatch]. Any stage failure aborts the run and
// surfaces the originating error unchanged.
func (c *Calibrator) Calibrate(sample, neon, acetonitrile []float64) ([]float64, ShiftCurve, error) {
	if len(sample) == 0 {
		return nil, ShiftCurve{}, fmt.Errorf("%w: empty sample trace", ErrInputShapeMismatch)
	}
	if len(neon) != len(sample) || len(acetonitrile) != len(sample) {
		return nil, ShiftCurve{}, fmt.Errorf("%w: sample %d, neon %d, acetonitrile %d",
			ErrInputShapeMismatch, len(sample), len(neon), len(acetonitrile))
	}

	curve, err := c.CalibrateTraces(neon, acetonitrile)
	if err != nil {
		return nil, ShiftCurve{}, err
	}

	pixels := make([]float64, len(sample))
	for i := range pixels {
		pixels[i] = float64(i)
	}
	return curve.Apply(pixels), curve, nil
}

// CalibrateTraces derives the composed pixel-to-shift curve from the
// neon and acetonitrile calibration traces alone. The traces must have
// equal length.
func (c *Calibrator) CalibrateTraces(neon, acetonitrile []float64) (ShiftCurve, error) {
	if len(neon) == 0 || len(neon) != len(acetonitrile) {
		return ShiftCurve{}, fmt.Errorf("%w: neon %d, acetonitrile %d",
			ErrInputShapeMismatch, len(neon), len(acetonitrile))
	}

	neonPrep, err := c.preprocess(neon)
	if err != nil {
		return ShiftCurve{}, err
	}
	acetoPrep, err := c.preprocess(acetonitrile)
	if err != nil {
		return ShiftCurve{}, err
	}

	neonPeaks, err := peaks.FindNMostProminent(neonPrep, len(c.cfg.NeonLines))
	if err != nil {
		return ShiftCurve{}, err
	}
	neonMatches, err := MatchByRank(neonPeaks, c.cfg.NeonLines)
	if err != nil {
		return ShiftCurve{}, err
	}
	excitation, err := CalibrateExcitation(neonMatches, c.cfg.ExcitationDegree, c.cfg.ExcitationResidualBound)
	if err != nil {
		return ShiftCurve{}, err
	}

	acetoPeaks, err := peaks.FindNMostProminent(acetoPrep, len(c.cfg.AcetonitrileLines))
	if err != nil {
		return ShiftCurve{}, err
	}
	acetoMatches, err := MatchByRank(acetoPeaks, c.cfg.AcetonitrileLines)
	if err != nil {
		return ShiftCurve{}, err
	}
	if c.cfg.RefinePeaks {
		for i := range acetoMatches {
			acetoMatches[i].Position, _ = peaks.Refine(acetoPrep, acetoMatches[i].Peak.Index)
		}
	}
	return CalibrateEmission(excitation, c.cfg.ExcitationWavelengthNM, acetoMatches,
		c.cfg.EmissionDegree, c.cfg.EmissionResidualBound)
}

// preprocess smooths a calibration trace and rescales it to [0, 1] so
// prominence ranking is threshold-independent across captures.
func (c *Calibrator) preprocess(raw []float64) ([]float64, error) {
	out, err := smooth.Median(raw, c.cfg.KernelSize)
	if err != nil {
		return nil, err
	}
	if c.cfg.LowpassCutoff > 0 && c.cfg.LowpassCutoff < 1 {
		out, err = smooth.Lowpass(out, c.cfg.LowpassCutoff)
		if err != nil {
			return nil, err
		}
	}
	return minMaxScale(out), nil
}

// minMaxScale rescales in place to [0, 1]. Flat traces are returned
// unchanged; they contain no peaks and fail later with a clearer error.
func minMaxScale(data []float64) []float64 {
	lo, hi := trace.MinMax(data)
	if hi == lo {
		return data
	}
	scale := 1 / (hi - lo)
	for i, v := range data {
		data[i] = (v - lo) * scale
	}
	return data
}
