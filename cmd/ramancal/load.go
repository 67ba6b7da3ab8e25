package main

import (
	"fmt"

	"github.com/cwbudde/algo-raman/spectrum"
)

// vendorFlags holds the shared spectrum-loading flags of the peaks and
// plot commands.
type vendorFlags struct {
	vendor       string
	neon         string
	acetonitrile string
	settingsPath string
}

// loadSpectrum reads the given file as a spectrum according to the
// vendor flag. OpenRAMAN files additionally need the neon and
// acetonitrile calibration captures.
func loadSpectrum(path string, f vendorFlags) (spectrum.Spectrum, error) {
	switch f.vendor {
	case "openraman":
		if f.neon == "" || f.acetonitrile == "" {
			return spectrum.Spectrum{}, fmt.Errorf("vendor openraman needs --neon and --acetonitrile")
		}
		cfg, err := loadSettings(f.settingsPath)
		if err != nil {
			return spectrum.Spectrum{}, err
		}
		return spectrum.FromOpenRamanFiles(path, f.neon, f.acetonitrile, cfg)
	case "horiba":
		s, _, err := spectrum.FromHoribaFile(path)
		return s, err
	case "renishaw":
		return spectrum.FromRenishawFile(path)
	case "wasatch":
		s, _, err := spectrum.FromWasatchFile(path)
		return s, err
	default:
		return spectrum.Spectrum{}, fmt.Errorf("unknown vendor %q (want openraman, horiba, renishaw or wasatch)", f.vendor)
	}
}
