package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-raman/spectrum"
)

func newCalibrateCommand() *cobra.Command {
	var (
		neonPath     string
		acetoPath    string
		settingsPath string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "calibrate [flags] sample.csv",
		Short: "Derive the Raman shift axis of an OpenRAMAN capture",
		Long: `Calibrate runs the two-stage OpenRAMAN calibration: the neon capture
fixes the pixel-to-wavelength map against known Ne I emission lines, and
the acetonitrile capture corrects the resulting Raman shift axis against
its known vibrational bands. The calibrated spectrum is written as CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(settingsPath)
			if err != nil {
				return err
			}
			s, err := spectrum.FromOpenRamanFiles(args[0], neonPath, acetoPath, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return writeSpectrumCSV(out, s)
		},
	}

	cmd.Flags().StringVarP(&neonPath, "neon", "n", "", "neon calibration capture (required)")
	cmd.Flags().StringVarP(&acetoPath, "acetonitrile", "a", "", "acetonitrile calibration capture (required)")
	cmd.Flags().StringVarP(&settingsPath, "settings", "s", "", "YAML calibration settings file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output CSV path, - for stdout")
	cmd.MarkFlagRequired("neon")
	cmd.MarkFlagRequired("acetonitrile")
	return cmd
}

func writeSpectrumCSV(w io.Writer, s spectrum.Spectrum) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Raman Shift (cm-1)", "Intensity (a.u.)"}); err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		record := []string{
			strconv.FormatFloat(s.WavenumbersCM1[i], 'g', -1, 64),
			strconv.FormatFloat(s.Intensities[i], 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing spectrum: %w", err)
	}
	return nil
}
