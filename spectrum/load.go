package spectrum

import (
	"github.com/cwbudde/algo-raman/calib"
	"github.com/cwbudde/algo-raman/dsp/interp"
	"github.com/cwbudde/algo-raman/readers"
)

// FromOpenRamanFiles reads an OpenRAMAN sample trace together with its
// neon and acetonitrile calibration captures and returns the fully
// calibrated spectrum. The OpenRAMAN instrument records raw pixel
// intensities, so the wavenumber axis is derived by running both
// calibration stages on the companion traces.
//
// NaN intensities in the calibration traces are replaced by linear
// interpolation before calibration; NaN cells in the sample trace are
// kept as-is.
func FromOpenRamanFiles(samplePath, neonPath, acetonitrilePath string, cfg calib.Config) (Spectrum, error) {
	sample, err := readers.OpenRamanCSVFile(samplePath)
	if err != nil {
		return Spectrum{}, err
	}
	neon, err := readers.OpenRamanCSVFile(neonPath)
	if err != nil {
		return Spectrum{}, err
	}
	acetonitrile, err := readers.OpenRamanCSVFile(acetonitrilePath)
	if err != nil {
		return Spectrum{}, err
	}

	interp.FillNaN(neon)
	interp.FillNaN(acetonitrile)

	axis, _, err := calib.NewCalibrator(cfg).Calibrate(sample, neon, acetonitrile)
	if err != nil {
		return Spectrum{}, err
	}
	return New(axis, sample)
}

// FromHoribaFile reads a Horiba MacroRam TXT export as a calibrated
// spectrum along with its metadata preamble.
func FromHoribaFile(path string) (Spectrum, map[string]string, error) {
	wavenumbers, intensities, metadata, err := readers.HoribaTXTFile(path)
	if err != nil {
		return Spectrum{}, nil, err
	}
	s, err := New(wavenumbers, intensities)
	if err != nil {
		return Spectrum{}, nil, err
	}
	return s, metadata, nil
}

// FromRenishawFile reads a Renishaw WiRE export as a calibrated
// spectrum.
func FromRenishawFile(path string) (Spectrum, error) {
	wavenumbers, intensities, err := readers.RenishawCSVFile(path)
	if err != nil {
		return Spectrum{}, err
	}
	return New(wavenumbers, intensities)
}

// FromWasatchFile reads an ENLIGHTEN (Wasatch) CSV export as a
// calibrated spectrum along with its metadata rows.
func FromWasatchFile(path string) (Spectrum, map[string]string, error) {
	wavenumbers, intensities, metadata, err := readers.WasatchCSVFile(path)
	if err != nil {
		return Spectrum{}, nil, err
	}
	s, err := New(wavenumbers, intensities)
	if err != nil {
		return Spectrum{}, nil, err
	}
	return s, metadata, nil
}
