// Package readers parses the tabular output files of the supported
// Raman spectrometers.
//
// OpenRAMAN captures carry raw pixel-indexed intensities that still
// need calibration (see package calib); the Horiba, Renishaw and
// Wasatch instruments write already calibrated wavenumber axes.
// Instruments that store their axis in descending order are flipped to
// ascending on read.
package readers
