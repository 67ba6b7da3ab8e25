package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPeaksCommand() *cobra.Command {
	var (
		flags      vendorFlags
		count      int
		prominence float64
	)

	cmd := &cobra.Command{
		Use:   "peaks [flags] spectrum-file",
		Short: "Locate the most prominent Raman bands of a spectrum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSpectrum(args[0], flags)
			if err != nil {
				return err
			}
			s = s.Normalize()

			var bands []float64
			if count > 0 {
				bands, err = s.NMostProminentWavenumbers(count)
				if err != nil {
					return err
				}
			} else {
				bands = s.ProminentWavenumbers(prominence)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tRaman shift (cm-1)")
			for i, w := range bands {
				fmt.Fprintf(tw, "%d\t%.1f\n", i+1, w)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&flags.vendor, "vendor", "openraman", "file format: openraman, horiba, renishaw or wasatch")
	cmd.Flags().StringVarP(&flags.neon, "neon", "n", "", "neon capture (openraman only)")
	cmd.Flags().StringVarP(&flags.acetonitrile, "acetonitrile", "a", "", "acetonitrile capture (openraman only)")
	cmd.Flags().StringVarP(&flags.settingsPath, "settings", "s", "", "YAML calibration settings file")
	cmd.Flags().IntVarP(&count, "count", "c", 0, "report the n most prominent peaks in axis order")
	cmd.Flags().Float64VarP(&prominence, "prominence", "p", 0.1, "prominence floor relative to the normalized trace")
	return cmd
}
