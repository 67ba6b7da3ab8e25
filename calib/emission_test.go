package calib

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-raman/dsp/peaks"
	"github.com/cwbudde/algo-raman/internal/testutil"
)

// wavelengthForShift inverts RamanShift for test setup.
func wavelengthForShift(laserNM, shiftCM1 float64) float64 {
	return 1e7 / (1e7/laserNM - shiftCM1)
}

func TestRamanShiftKnownValue(t *testing.T) {
	// A 532 nm laser and an emission line at the wavelength
	// corresponding to 2253 cm^-1 must convert back within 1 cm^-1.
	wavelength := wavelengthForShift(532, 2253)
	testutil.RequireNear(t, RamanShift(532, wavelength), 2253, 1)
}

func TestRamanShiftZeroAtLaserLine(t *testing.T) {
	testutil.RequireNear(t, RamanShift(532, 532), 0, 1e-9)
}

func TestCalibrateEmissionIdentityCorrection(t *testing.T) {
	// Peaks whose pixel positions map exactly onto the canonical
	// shifts through the excitation curve: the correction must be
	// the identity within float tolerance.
	excitation := NewCurve([]float64{500, 0.1})
	laser := 532.0
	indices := []int{600, 800, 1100, 1300, 1350}

	matches := make([]Match, len(indices))
	for i, px := range indices {
		shift := RamanShift(laser, excitation.Eval(float64(px)))
		matches[i] = Match{
			Peak: peaks.Peak{Index: px, Prominence: 1},
			Line: Line{Value: shift},
		}
	}

	curve, err := CalibrateEmission(excitation, laser, matches, 1, 1e-6)
	if err != nil {
		t.Fatalf("CalibrateEmission: %v", err)
	}
	for i, px := range indices {
		testutil.RequireNear(t, curve.Eval(float64(px)), matches[i].Line.Value, 1e-6)
	}
	// Identity correction: slope ~1, offset ~0.
	coeffs := curve.Correction.Coeffs()
	testutil.RequireNear(t, coeffs[0], 0, 1e-6)
	testutil.RequireNear(t, coeffs[1], 1, 1e-9)
}

func TestCalibrateEmissionCorrectsOffset(t *testing.T) {
	// Simulate a 3 cm^-1 systematic offset between the rough axis
	// and the canonical shifts; the correction must absorb it.
	excitation := NewCurve([]float64{500, 0.1})
	laser := 532.0
	indices := []int{600, 800, 1100, 1300}

	matches := make([]Match, len(indices))
	for i, px := range indices {
		shift := RamanShift(laser, excitation.Eval(float64(px)))
		matches[i] = Match{
			Peak: peaks.Peak{Index: px, Prominence: 1},
			Line: Line{Value: shift + 3},
		}
	}

	curve, err := CalibrateEmission(excitation, laser, matches, 1, 1e-6)
	if err != nil {
		t.Fatalf("CalibrateEmission: %v", err)
	}
	for i, px := range indices {
		testutil.RequireNear(t, curve.Eval(float64(px)), matches[i].Line.Value, 1e-6)
	}
}

func TestCalibrateEmissionUnderdetermined(t *testing.T) {
	excitation := NewCurve([]float64{500, 0.1})
	matches := []Match{{Peak: peaks.Peak{Index: 600}, Line: Line{Value: 918}}}

	_, err := CalibrateEmission(excitation, 532, matches, 1, -1)
	if !errors.Is(err, ErrCalibrationFit) {
		t.Fatalf("err = %v, want ErrCalibrationFit", err)
	}
}

func TestCalibrateEmissionResidualBound(t *testing.T) {
	excitation := NewCurve([]float64{500, 0.1})
	laser := 532.0
	indices := []int{600, 800, 1100, 1300}
	offsets := []float64{0, 40, -40, 0} // inconsistent by tens of cm^-1

	matches := make([]Match, len(indices))
	for i, px := range indices {
		shift := RamanShift(laser, excitation.Eval(float64(px)))
		matches[i] = Match{
			Peak: peaks.Peak{Index: px, Prominence: 1},
			Line: Line{Value: shift + offsets[i]},
		}
	}

	_, err := CalibrateEmission(excitation, laser, matches, 1, 10)
	if !errors.Is(err, ErrCalibrationFit) {
		t.Fatalf("err = %v, want ErrCalibrationFit", err)
	}
}

func TestCalibrateEmissionRejectsBadLaser(t *testing.T) {
	if _, err := CalibrateEmission(NewCurve([]float64{500, 0.1}), 0, nil, 1, -1); !errors.Is(err, ErrCalibrationFit) {
		t.Fatalf("err = %v, want ErrCalibrationFit", err)
	}
}
