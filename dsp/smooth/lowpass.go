package smooth

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Lowpass smooths a trace by zeroing spectral content above the given
// cutoff, expressed as a fraction (0, 1] of the Nyquist frequency. The
// trace is zero-padded to a power of two internally; a cutoff of 1
// returns an unmodified copy.
//
// A raised-cosine transition band one eighth of the cutoff wide is
// applied to limit ringing around narrow peaks.
func Lowpass(trace []float64, cutoff float64) ([]float64, error) {
	if cutoff <= 0 || cutoff > 1 {
		return nil, fmt.Errorf("smooth: lowpass cutoff must be in (0, 1]: %f", cutoff)
	}
	out := make([]float64, len(trace))
	if cutoff == 1 || len(trace) == 0 {
		copy(out, trace)
		return out, nil
	}

	fftSize := nextPowerOf2(len(trace))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("smooth: fft plan: %w", err)
	}

	inData := make([]complex128, fftSize)
	for i, v := range trace {
		inData[i] = complex(v, 0)
	}
	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, inData); err != nil {
		return nil, fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	// Apply the bin mask on split real/imaginary parts.
	re := make([]float64, fftSize)
	im := make([]float64, fftSize)
	for i, c := range freq {
		re[i] = real(c)
		im[i] = imag(c)
	}
	mask := binMask(fftSize, cutoff)
	vecmath.MulBlockInPlace(re, mask)
	vecmath.MulBlockInPlace(im, mask)
	for i := range freq {
		freq[i] = complex(re[i], im[i])
	}

	timeData := make([]complex128, fftSize)
	if err := plan.Inverse(timeData, freq); err != nil {
		return nil, fmt.Errorf("smooth: inverse FFT failed: %w", err)
	}
	for i := range out {
		out[i] = real(timeData[i])
	}
	return out, nil
}

// binMask builds a symmetric low-pass mask over fftSize bins with a
// raised-cosine rolloff ending at cutoff (in Nyquist fractions).
func binMask(fftSize int, cutoff float64) []float64 {
	mask := make([]float64, fftSize)
	nyquist := fftSize / 2
	edge := cutoff * float64(nyquist)
	rolloff := edge / 8
	passband := edge - rolloff

	for i := range mask {
		// Bin i and fftSize-i carry the same frequency.
		f := float64(i)
		if i > nyquist {
			f = float64(fftSize - i)
		}
		switch {
		case f <= passband:
			mask[i] = 1
		case f < edge:
			t := (f - passband) / rolloff
			mask[i] = 0.5 * (1 + math.Cos(math.Pi*t))
		default:
			mask[i] = 0
		}
	}
	return mask
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
