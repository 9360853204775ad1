package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Pair names a reference image and an image to compare against it.
type Pair struct {
	Reference string
	Distorted string
}

// LoadPairs reads a two-column CSV of reference,distorted paths.
// hasHeader skips the first line if true. Relative paths are resolved
// against the directory holding the CSV file.
func LoadPairs(filename string, hasHeader bool) ([]Pair, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}
	if len(records) <= startRow {
		return nil, fmt.Errorf("csv file has no data rows")
	}

	dir := filepath.Dir(filename)
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}

	pairs := make([]Pair, 0, len(records)-startRow)
	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != 2 {
			return nil, fmt.Errorf("expected 2 columns at row %d, got %d", i, len(record))
		}
		ref, dist := strings.TrimSpace(record[0]), strings.TrimSpace(record[1])
		if ref == "" || dist == "" {
			return nil, fmt.Errorf("empty path at row %d", i)
		}
		pairs = append(pairs, Pair{Reference: resolve(ref), Distorted: resolve(dist)})
	}
	return pairs, nil
}
