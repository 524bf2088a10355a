package geom

import (
	"errors"
	"fmt"
)

// ErrNotPair is returned when a coordinate row does not hold exactly two values.
var ErrNotPair = errors.New("not an [x, y] pair")

// Unzip splits point pairs into parallel x and y sequences.
func Unzip(pairs [][2]float64) (xs, ys []float64) {
	xs = make([]float64, 0, len(pairs))
	ys = make([]float64, 0, len(pairs))
	for _, p := range pairs {
		xs = append(xs, p[0])
		ys = append(ys, p[1])
	}
	return xs, ys
}

// UnzipSlices is Unzip for rows of unchecked length.
func UnzipSlices(rows [][]float64) (xs, ys []float64, err error) {
	xs = make([]float64, 0, len(rows))
	ys = make([]float64, 0, len(rows))
	for i, r := range rows {
		if len(r) != 2 {
			return nil, nil, fmt.Errorf("row %d has %d values: %w", i, len(r), ErrNotPair)
		}
		xs = append(xs, r[0])
		ys = append(ys, r[1])
	}
	return xs, ys, nil
}

// Zip pairs up parallel sequences, stopping at the shorter one.
func Zip(xs, ys []float64) [][2]float64 {
	n := min(len(xs), len(ys))
	out := make([][2]float64, n)
	for i := 0; i < n; i++ {
		out[i] = [2]float64{xs[i], ys[i]}
	}
	return out
}

// SamplePairs is the demo line plotted when no input is given.
func SamplePairs() [][2]float64 {
	return [][2]float64{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}
}
