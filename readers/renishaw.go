package readers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// RenishawCSV reads a Renishaw WiRE single-point export: tab-separated
// wavenumber/intensity rows without a metadata preamble, axis written
// in descending order and flipped to ascending on read. An optional
// non-numeric header row is skipped.
func RenishawCSV(r io.Reader) (wavenumbersCM1, intensities []float64, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		w, v, err := parsePair(text, "\t")
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, nil, fmt.Errorf("readers: renishaw line %d: %w", line, err)
		}
		wavenumbersCM1 = append(wavenumbersCM1, w)
		intensities = append(intensities, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("readers: renishaw: %w", err)
	}
	if len(wavenumbersCM1) == 0 {
		return nil, nil, fmt.Errorf("readers: renishaw: no data rows")
	}

	reverseInPlace(wavenumbersCM1)
	reverseInPlace(intensities)
	return wavenumbersCM1, intensities, nil
}

// RenishawCSVFile reads a Renishaw WiRE export from disk.
func RenishawCSVFile(path string) ([]float64, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("readers: %w", err)
	}
	defer f.Close()
	return RenishawCSV(f)
}
