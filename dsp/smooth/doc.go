// Package smooth provides smoothing filters for noisy spectral traces.
//
// [Median] is the default choice for calibration captures: it removes
// cosmic-ray spikes without widening the peaks used for line matching.
// [Lowpass] is an FFT-based alternative for traces with broadband noise.
package smooth
