package main

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-raman/spectrum"
)

func newPlotCommand() *cobra.Command {
	var (
		flags   vendorFlags
		outPath string
		title   string
	)

	cmd := &cobra.Command{
		Use:   "plot [flags] spectrum-file",
		Short: "Render a spectrum to an image file",
		Long: `Plot renders the spectrum as a line chart. The output format follows
the file extension: .png, .svg, .pdf, .eps or .tif.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSpectrum(args[0], flags)
			if err != nil {
				return err
			}
			return savePlot(s, title, outPath)
		},
	}

	cmd.Flags().StringVar(&flags.vendor, "vendor", "openraman", "file format: openraman, horiba, renishaw or wasatch")
	cmd.Flags().StringVarP(&flags.neon, "neon", "n", "", "neon capture (openraman only)")
	cmd.Flags().StringVarP(&flags.acetonitrile, "acetonitrile", "a", "", "acetonitrile capture (openraman only)")
	cmd.Flags().StringVarP(&flags.settingsPath, "settings", "s", "", "YAML calibration settings file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "spectrum.png", "output image path")
	cmd.Flags().StringVarP(&title, "title", "t", "", "plot title")
	return cmd
}

func savePlot(s spectrum.Spectrum, title, path string) error {
	xy := make(plotter.XYs, s.Len())
	for i := range xy {
		xy[i].X = s.WavenumbersCM1[i]
		xy[i].Y = s.Intensities[i]
	}
	line, err := plotter.NewLine(xy)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Raman shift (cm-1)"
	p.Y.Label.Text = "Intensity (a.u.)"
	p.Add(line)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
