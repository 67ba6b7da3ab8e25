package readers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// horibaHeaderLines is the fixed metadata preamble length of a Horiba
// MacroRam TXT export.
const horibaHeaderLines = 32

// HoribaTXT reads a Horiba MacroRam TXT export: a 32-line tab-separated
// metadata preamble followed by tab-separated wavenumber/intensity
// rows. The instrument writes the axis in descending order; both
// slices are flipped to ascending on read.
func HoribaTXT(r io.Reader) (wavenumbersCM1, intensities []float64, metadata map[string]string, err error) {
	scanner := bufio.NewScanner(r)
	metadata = make(map[string]string)

	for i := 0; i < horibaHeaderLines; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, nil, nil, fmt.Errorf("readers: horiba header: %w", err)
			}
			return nil, nil, nil, fmt.Errorf("readers: horiba header: file ends at line %d", i+1)
		}
		key, value, found := strings.Cut(scanner.Text(), "\t")
		key = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(key), "="))
		if found && key != "" {
			metadata[key] = strings.TrimSpace(value)
		}
	}

	line := horibaHeaderLines
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		w, v, err := parsePair(text, "\t")
		if err != nil {
			return nil, nil, nil, fmt.Errorf("readers: horiba line %d: %w", line, err)
		}
		wavenumbersCM1 = append(wavenumbersCM1, w)
		intensities = append(intensities, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("readers: horiba: %w", err)
	}

	reverseInPlace(wavenumbersCM1)
	reverseInPlace(intensities)
	return wavenumbersCM1, intensities, metadata, nil
}

// HoribaTXTFile reads a Horiba MacroRam TXT export from disk.
func HoribaTXTFile(path string) ([]float64, []float64, map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("readers: %w", err)
	}
	defer f.Close()
	return HoribaTXT(f)
}

// parsePair splits a data row on the separator and parses two floats.
func parsePair(text, sep string) (float64, float64, error) {
	first, second, found := strings.Cut(text, sep)
	if !found {
		// Fall back to arbitrary whitespace separation.
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return 0, 0, fmt.Errorf("expected two fields, got %q", text)
		}
		first, second = fields[0], fields[1]
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(second), 64)
	if err != nil {
		return 0, 0, err
	}
	return w, v, nil
}

func reverseInPlace(data []float64) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}
