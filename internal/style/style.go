// Package style holds the color convention shared by the terminal viewer and
// the figure exporter.
package style

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"roadview/internal/geom"
)

// Style is the drawing convention. Colors are "#RRGGBB".
type Style struct {
	Line      string  `yaml:"line"`
	Reference string  `yaml:"reference"`
	Left      string  `yaml:"left"`
	Right     string  `yaml:"right"`
	Width     float64 `yaml:"width"`         // points
	FigureW   float64 `yaml:"figure_width"`  // centimeters
	FigureH   float64 `yaml:"figure_height"` // centimeters
	Title     string  `yaml:"title"`
}

// Default keeps reference lines apart from boundaries by color.
func Default() Style {
	return Style{
		Line:      "#1F77B4",
		Reference: "#D62728",
		Left:      "#1F77B4",
		Right:     "#1F77B4",
		Width:     1,
		FigureW:   16,
		FigureH:   12,
	}
}

// LoadFile reads a YAML style file and merges it over the defaults.
func LoadFile(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("failed to read style file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML data into a Style.
func Parse(data []byte) (Style, error) {
	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("failed to parse style YAML: %w", err)
	}
	applyDefaults(&s)
	for _, c := range []string{s.Line, s.Reference, s.Left, s.Right} {
		if _, err := ParseHex(c); err != nil {
			return Style{}, err
		}
	}
	if s.Width < 0 || s.FigureW < 0 || s.FigureH < 0 {
		return Style{}, fmt.Errorf("style: sizes must not be negative")
	}
	return s, nil
}

// applyDefaults fills in default values for fields left empty.
func applyDefaults(s *Style) {
	d := Default()
	if s.Line == "" {
		s.Line = d.Line
	}
	if s.Reference == "" {
		s.Reference = d.Reference
	}
	if s.Left == "" {
		s.Left = d.Left
	}
	if s.Right == "" {
		s.Right = d.Right
	}
	if s.Width == 0 {
		s.Width = d.Width
	}
	if s.FigureW == 0 {
		s.FigureW = d.FigureW
	}
	if s.FigureH == 0 {
		s.FigureH = d.FigureH
	}
}

// Color returns the hex color for a layer kind.
func (s Style) Color(kind geom.LayerKind) string {
	switch kind {
	case geom.LayerReference:
		return s.Reference
	case geom.LayerLeft:
		return s.Left
	case geom.LayerRight:
		return s.Right
	default:
		return s.Line
	}
}

// RGBA returns the layer color; unparsable values fall back to black.
func (s Style) RGBA(kind geom.LayerKind) color.RGBA {
	c, err := ParseHex(s.Color(kind))
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

// ParseHex parses "#RRGGBB" or "#RGB".
func ParseHex(h string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(h), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("style: invalid color %q", h)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("style: invalid color %q", h)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
