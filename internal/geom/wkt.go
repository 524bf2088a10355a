package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParsePolyline reads point pairs from text. Accepted forms:
// LINESTRING(x y, ...), MULTIPOINT(x y, ...), POINT(x y) and bare "x y, x y"
// tuples separated by commas or newlines.
func ParsePolyline(text string) (Polyline, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Polyline{}, errors.New("empty input")
	}
	up := strings.ToUpper(s)
	body := s
	switch {
	case strings.HasPrefix(up, "LINESTRING"), strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Polyline{}, fmt.Errorf("wkt %s: invalid", strings.ToLower(strings.Fields(up)[0]))
		}
		// MULTIPOINT((1 2), (3 4)) is legal too
		body = strings.NewReplacer("(", "", ")", "").Replace(s[i+1 : j])
	case strings.ContainsAny(up[:1], "ABCDEFGHIJKLMNOPQRSTUVWXYZ"):
		return Polyline{}, errors.New("unsupported wkt type")
	}
	rows, err := parseTuples(body)
	if err != nil {
		return Polyline{}, err
	}
	xs, ys, err := UnzipSlices(rows)
	if err != nil {
		return Polyline{}, err
	}
	if len(xs) == 0 {
		return Polyline{}, errors.New("no coordinates parsed")
	}
	return Polyline{XS: xs, YS: ys}, nil
}

func parseTuples(block string) ([][]float64, error) {
	var rows [][]float64
	split := func(r rune) bool { return r == ',' || r == '\n' || r == ';' }
	for n, tup := range strings.FieldsFunc(block, split) {
		parts := strings.Fields(tup)
		if len(parts) == 0 {
			continue
		}
		row := make([]float64, 0, len(parts))
		for _, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, fmt.Errorf("tuple %d: %w", n, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
