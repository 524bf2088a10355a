// Package plot draws geometry layers into static figures.
package plot

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"roadview/internal/geom"
	"roadview/internal/style"
)

// Formats that Render and Save accept.
var Formats = []string{"png", "svg", "pdf", "jpg", "eps", "tif"}

// NewFigure builds a plot with one line per polyline. Every non-empty layer
// gets one legend entry in the style color of its kind.
func NewFigure(d geom.Data, st style.Style) (*gplot.Plot, error) {
	lines, legend, err := buildLines(d, st)
	if err != nil {
		return nil, err
	}
	p := gplot.New()
	p.Title.Text = st.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	for _, l := range lines {
		p.Add(l)
	}
	for _, e := range legend {
		p.Legend.Add(e.label, e.line)
	}
	return p, nil
}

type legendEntry struct {
	label string
	line  *plotter.Line
}

func buildLines(d geom.Data, st style.Style) ([]*plotter.Line, []legendEntry, error) {
	var (
		lines  []*plotter.Line
		legend []legendEntry
	)
	for _, layer := range d.Layers {
		first := true
		for i, pl := range layer.Lines {
			if pl.Len() == 0 {
				continue
			}
			l, err := plotter.NewLine(xys(pl))
			if err != nil {
				return nil, nil, fmt.Errorf("%s[%d]: %w", layer.Kind, i, err)
			}
			l.Color = st.RGBA(layer.Kind)
			l.Width = vg.Points(st.Width)
			lines = append(lines, l)
			if first {
				legend = append(legend, legendEntry{label: layer.Kind.Label(), line: l})
				first = false
			}
		}
	}
	return lines, legend, nil
}

func xys(pl geom.Polyline) plotter.XYs {
	pts := make(plotter.XYs, pl.Len())
	for i := range pts {
		pts[i].X = pl.XS[i]
		pts[i].Y = pl.YS[i]
	}
	return pts
}

// Render writes the figure to w in the given format.
func Render(w io.Writer, format string, d geom.Data, st style.Style) error {
	p, err := NewFigure(d, st)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(st.FigureW)*vg.Centimeter, vg.Length(st.FigureH)*vg.Centimeter, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes the figure to path; the format follows the extension.
func Save(path string, d geom.Data, st style.Style) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !supported(format) {
		return fmt.Errorf("unsupported figure format %q", format)
	}
	p, err := NewFigure(d, st)
	if err != nil {
		return err
	}
	return p.Save(vg.Length(st.FigureW)*vg.Centimeter, vg.Length(st.FigureH)*vg.Centimeter, path)
}

func supported(format string) bool {
	if format == "jpeg" || format == "tiff" {
		return true
	}
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
