package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadPairsCSV reads a CSV with x/y columns and returns them as one polyline in row order.
// Column detection: x|lon|lng|long|longitude and y|lat|latitude (case-insensitive).
func LoadPairsCSV(path string) (Polyline, error) {
	f, err := os.Open(path)
	if err != nil {
		return Polyline{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Polyline{}, err
	}
	if len(recs) == 0 {
		return Polyline{}, errors.New("empty csv")
	}
	idxX, idxY := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return Polyline{}, errors.New("csv: x/y columns not found")
	}
	rows := make([][]float64, 0, len(recs)-1)
	for n, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			return Polyline{}, fmt.Errorf("csv row %d: %w", n+2, ErrNotPair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		if err != nil {
			return Polyline{}, fmt.Errorf("csv row %d: %w", n+2, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err != nil {
			return Polyline{}, fmt.Errorf("csv row %d: %w", n+2, err)
		}
		rows = append(rows, []float64{x, y})
	}
	xs, ys, err := UnzipSlices(rows)
	if err != nil {
		return Polyline{}, err
	}
	if len(xs) == 0 {
		return Polyline{}, errors.New("csv: no points")
	}
	return Polyline{XS: xs, YS: ys}, nil
}

// LoadPairs reads a point-pair file, picking the parser from the extension.
func LoadPairs(path string) (Polyline, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadPairsCSV(path)
	case ".wkt", ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return Polyline{}, err
		}
		return ParsePolyline(string(data))
	default:
		return Polyline{}, fmt.Errorf("unsupported point file: %q", ext)
	}
}
