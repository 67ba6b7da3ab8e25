// Command ramancal calibrates and inspects Raman spectra from
// instrument exports.
//
// OpenRAMAN captures are raw pixel traces; the calibrate command
// derives their Raman shift axis from companion neon and acetonitrile
// captures. Horiba, Renishaw and Wasatch exports already carry a
// wavenumber axis and can be inspected directly.
//
// Examples:
//
//	ramancal calibrate -n neon.csv -a acetonitrile.csv sample.csv
//	ramancal peaks --vendor horiba --count 5 sample.txt
//	ramancal plot --vendor wasatch -o sample.png sample.csv
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "ramancal",
		Short:         "Calibrate and inspect Raman spectra",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCalibrateCommand(), newPeaksCommand(), newPlotCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ramancal:", err)
		os.Exit(1)
	}
}
