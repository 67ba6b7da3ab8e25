package readers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when an expected data column is absent
// from a file header.
var ErrMissingColumn = errors.New("readers: missing column")

const openRamanIntensityColumn = "Intensity (a.u.)"

// OpenRamanCSV reads the intensity trace from an OpenRAMAN CSV
// export. The spectral axis is not calibrated by the instrument; the
// returned slice is indexed by camera pixel.
//
// Empty intensity cells are read as NaN, matching the behavior of the
// spreadsheet tooling the format comes from.
func OpenRamanCSV(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("readers: openraman header: %w", err)
	}
	col := -1
	for i, name := range header {
		if strings.TrimSpace(name) == openRamanIntensityColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, openRamanIntensityColumn)
	}

	var intensities []float64
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("readers: openraman row %d: %w", len(intensities)+2, err)
		}
		if col >= len(row) {
			return nil, fmt.Errorf("readers: openraman row %d: too few fields", len(intensities)+2)
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			intensities = append(intensities, math.NaN())
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("readers: openraman row %d: %w", len(intensities)+2, err)
		}
		intensities = append(intensities, v)
	}
	return intensities, nil
}

// OpenRamanCSVFile reads an OpenRAMAN CSV export from disk.
func OpenRamanCSVFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readers: %w", err)
	}
	defer f.Close()
	return OpenRamanCSV(f)
}
