package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/algo-raman/calib"
)

// settings mirrors calib.Config for the YAML settings file. Omitted
// keys fall back to the library defaults.
type settings struct {
	ExcitationWavelengthNM  float64 `yaml:"excitation_wavelength_nm"`
	KernelSize              int     `yaml:"kernel_size"`
	LowpassCutoff           float64 `yaml:"lowpass_cutoff"`
	ExcitationDegree        int     `yaml:"excitation_degree"`
	EmissionDegree          int     `yaml:"emission_degree"`
	ExcitationResidualBound float64 `yaml:"excitation_residual_bound"`
	EmissionResidualBound   float64 `yaml:"emission_residual_bound"`
}

// loadSettings reads a YAML settings file into a calibration config.
// An empty path selects the defaults.
func loadSettings(path string) (calib.Config, error) {
	if path == "" {
		return calib.Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return calib.Config{}, fmt.Errorf("reading settings: %w", err)
	}
	var s settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return calib.Config{}, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return calib.Config{
		ExcitationWavelengthNM:  s.ExcitationWavelengthNM,
		KernelSize:              s.KernelSize,
		LowpassCutoff:           s.LowpassCutoff,
		ExcitationDegree:        s.ExcitationDegree,
		EmissionDegree:          s.EmissionDegree,
		ExcitationResidualBound: s.ExcitationResidualBound,
		EmissionResidualBound:   s.EmissionResidualBound,
	}, nil
}
