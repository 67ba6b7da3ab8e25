// Package spectrum provides the calibrated Raman spectrum container
// shared by all instrument loaders.
package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-raman/dsp/interp"
	"github.com/cwbudde/algo-raman/dsp/peaks"
	"github.com/cwbudde/algo-raman/dsp/smooth"
	"github.com/cwbudde/algo-raman/stats/trace"
)

var (
	errLengthMismatch = errors.New("spectrum: wavenumbers and intensities must have same length")
	errEmpty          = errors.New("spectrum: empty spectrum")
)

// Spectrum is a calibrated Raman spectrum: paired wavenumber (cm^-1)
// and intensity samples. Methods never mutate the receiver; they
// return derived spectra with freshly allocated slices.
type Spectrum struct {
	WavenumbersCM1 []float64
	Intensities    []float64
}

// New constructs a spectrum and validates that both axes share one
// length.
func New(wavenumbersCM1, intensities []float64) (Spectrum, error) {
	if len(wavenumbersCM1) != len(intensities) {
		return Spectrum{}, fmt.Errorf("%w: %d vs %d", errLengthMismatch, len(wavenumbersCM1), len(intensities))
	}
	if len(wavenumbersCM1) == 0 {
		return Spectrum{}, errEmpty
	}
	return Spectrum{WavenumbersCM1: wavenumbersCM1, Intensities: intensities}, nil
}

// Len returns the number of samples.
func (s Spectrum) Len() int {
	return len(s.Intensities)
}

// Between clips the spectrum to the open wavenumber interval
// (minCM1, maxCM1).
func (s Spectrum) Between(minCM1, maxCM1 float64) Spectrum {
	var wavenumbers, intensities []float64
	for i, w := range s.WavenumbersCM1 {
		if w > minCM1 && w < maxCM1 {
			wavenumbers = append(wavenumbers, w)
			intensities = append(intensities, s.Intensities[i])
		}
	}
	return Spectrum{WavenumbersCM1: wavenumbers, Intensities: intensities}
}

// Normalize rescales intensities to [0, 1] by min-max normalization.
// A flat spectrum is returned unchanged.
func (s Spectrum) Normalize() Spectrum {
	lo, hi := trace.MinMax(s.Intensities)
	out := cloneSpectrum(s)
	if hi == lo {
		return out
	}
	scale := 1 / (hi - lo)
	for i, v := range out.Intensities {
		out.Intensities[i] = (v - lo) * scale
	}
	return out
}

// Standardize rescales intensities to zero mean and unit standard
// deviation. A flat spectrum is returned unchanged.
func (s Spectrum) Standardize() Spectrum {
	out := cloneSpectrum(s)
	st := trace.Calculate(out.Intensities)
	if st.Std == 0 {
		return out
	}
	for i, v := range out.Intensities {
		out.Intensities[i] = (v - st.Mean) / st.Std
	}
	return out
}

// Smooth median-filters the intensities with the given kernel size.
func (s Spectrum) Smooth(kernelSize int) (Spectrum, error) {
	smoothed, err := smooth.Median(s.Intensities, kernelSize)
	if err != nil {
		return Spectrum{}, err
	}
	wavenumbers := make([]float64, len(s.WavenumbersCM1))
	copy(wavenumbers, s.WavenumbersCM1)
	return Spectrum{WavenumbersCM1: wavenumbers, Intensities: smoothed}, nil
}

// Resample evaluates the spectrum on a new wavenumber axis using
// cubic interpolation. The receiver's axis must be strictly ascending;
// target positions outside it clamp to the boundary intensities.
func (s Spectrum) Resample(wavenumbersCM1 []float64) (Spectrum, error) {
	intensities, err := interp.Resample(s.WavenumbersCM1, s.Intensities, wavenumbersCM1)
	if err != nil {
		return Spectrum{}, err
	}
	axis := make([]float64, len(wavenumbersCM1))
	copy(axis, wavenumbersCM1)
	return Spectrum{WavenumbersCM1: axis, Intensities: intensities}, nil
}

// SNR estimates the signal-to-noise ratio as the peak intensity above
// the median divided by the standard deviation of the residual left
// after median smoothing.
func (s Spectrum) SNR() (float64, error) {
	if s.Len() < 3 {
		return 0, errEmpty
	}
	kernel := 5
	if s.Len() < kernel {
		kernel = 3
	}
	smoothed, err := smooth.Median(s.Intensities, kernel)
	if err != nil {
		return 0, err
	}

	// Ignore the zero-padded filter edges.
	half := kernel / 2
	residual := make([]float64, 0, s.Len()-2*half)
	for i := half; i < s.Len()-half; i++ {
		residual = append(residual, s.Intensities[i]-smoothed[i])
	}
	noise := trace.Calculate(residual).Std
	if noise == 0 {
		return math.Inf(1), nil
	}

	st := trace.Calculate(s.Intensities)
	return (st.Max - st.Median) / noise, nil
}

// NMostProminentWavenumbers locates the n most prominent intensity
// peaks and returns their wavenumbers in ascending order.
func (s Spectrum) NMostProminentWavenumbers(n int) ([]float64, error) {
	found, err := peaks.FindNMostProminent(s.Intensities, n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(found))
	for i, p := range found {
		out[i] = s.WavenumbersCM1[p.Index]
	}
	return out, nil
}

// ProminentWavenumbers returns the wavenumbers of all peaks clearing
// the given prominence threshold, in ascending order.
func (s Spectrum) ProminentWavenumbers(minProminence float64) []float64 {
	found := peaks.Find(s.Intensities, minProminence)
	out := make([]float64, len(found))
	for i, p := range found {
		out[i] = s.WavenumbersCM1[p.Index]
	}
	return out
}

func cloneSpectrum(s Spectrum) Spectrum {
	wavenumbers := make([]float64, len(s.WavenumbersCM1))
	copy(wavenumbers, s.WavenumbersCM1)
	intensities := make([]float64, len(s.Intensities))
	copy(intensities, s.Intensities)
	return Spectrum{WavenumbersCM1: wavenumbers, Intensities: intensities}
}
