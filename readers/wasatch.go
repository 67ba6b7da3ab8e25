package readers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	wasatchWavenumberColumn = "Wavenumber"
	wasatchIntensityColumn  = "Processed"
)

// WasatchCSV reads an ENLIGHTEN (Wasatch) CSV export: key,value
// metadata rows followed by a named column header and the data block.
// The Wavenumber and Processed columns are extracted; the axis is
// already ascending.
func WasatchCSV(r io.Reader) (wavenumbersCM1, intensities []float64, metadata map[string]string, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	metadata = make(map[string]string)

	wavenumberCol, intensityCol := -1, -1
	line := 0
	for wavenumberCol < 0 {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, nil, nil, fmt.Errorf("%w: %q", ErrMissingColumn, wasatchWavenumberColumn)
		}
		if err != nil {
			return nil, nil, nil, fmt.Errorf("readers: wasatch line %d: %w", line+1, err)
		}
		line++

		for i, name := range row {
			switch strings.TrimSpace(name) {
			case wasatchWavenumberColumn:
				wavenumberCol = i
			case wasatchIntensityColumn:
				intensityCol = i
			}
		}
		if wavenumberCol >= 0 {
			break
		}
		if len(row) >= 2 && strings.TrimSpace(row[0]) != "" {
			metadata[strings.TrimSpace(row[0])] = strings.TrimSpace(row[1])
		}
	}
	if intensityCol < 0 {
		return nil, nil, nil, fmt.Errorf("%w: %q", ErrMissingColumn, wasatchIntensityColumn)
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, nil, fmt.Errorf("readers: wasatch line %d: %w", line+1, err)
		}
		line++
		if wavenumberCol >= len(row) || intensityCol >= len(row) {
			continue
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(row[wavenumberCol]), 64)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("readers: wasatch line %d: %w", line, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[intensityCol]), 64)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("readers: wasatch line %d: %w", line, err)
		}
		wavenumbersCM1 = append(wavenumbersCM1, w)
		intensities = append(intensities, v)
	}
	if len(wavenumbersCM1) == 0 {
		return nil, nil, nil, fmt.Errorf("readers: wasatch: no data rows")
	}
	return wavenumbersCM1, intensities, metadata, nil
}

// WasatchCSVFile reads an ENLIGHTEN CSV export from disk.
func WasatchCSVFile(path string) ([]float64, []float64, map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("readers: %w", err)
	}
	defer f.Close()
	return WasatchCSV(f)
}
