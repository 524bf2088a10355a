package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roadview/internal/geom"
)

// cellToXY converts a map cell coordinate back to data x/y using bbox, zoom, and pan.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	y := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return x, y, true
}

// screenXYMicro maps data x/y into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (y - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// drawLayers rasterizes every visible polyline into a braille buffer.
func (m Model) drawLayers(w, h int) *brailleBuf {
	br := newBrailleBuf(w, h)
	for _, layer := range m.data.Layers {
		if !m.layers.on(layer.Kind) {
			continue
		}
		owner := int8(layer.Kind)
		for _, pl := range layer.Lines {
			var prev *[2]int
			for i := 0; i < pl.Len(); i++ {
				mx, my, ok := m.screenXYMicro(pl.XS[i], pl.YS[i], w, h)
				if !ok {
					continue
				}
				if prev != nil {
					br.drawLineMicro(prev[0], prev[1], mx, my, owner)
				} else {
					br.setPixel(mx, my, owner)
				}
				prev = &[2]int{mx, my}
			}
		}
	}
	return br
}

func (m Model) renderMap(w, h int) string {
	rows := m.drawLayers(w, h).cells()

	// Hover highlight: mark the cell of the hovered vertex
	hoverX, hoverY := -1, -1
	if m.hovering && m.hoverHasVertex {
		hoverX, hoverY = m.hoverMicX/2, m.hoverMicY/4
	}

	styles := make(map[int8]lipgloss.Style, len(geom.LayerKinds))
	for _, k := range geom.LayerKinds {
		styles[int8(k)+1] = lipgloss.NewStyle().Foreground(lipgloss.Color(m.st.Color(k)))
	}

	lines := make([]string, len(rows))
	for y, row := range rows {
		var sb strings.Builder
		// flush runs of cells drawn by the same layer in one style
		run := make([]rune, 0, len(row))
		var runOwner int8
		flush := func() {
			if len(run) == 0 {
				return
			}
			if st, ok := styles[runOwner]; ok {
				sb.WriteString(st.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		for x, c := range row {
			if x == hoverX && y == hoverY {
				flush()
				sb.WriteString(hoverStyle.Render("◯"))
				continue
			}
			if c.owner != runOwner {
				flush()
				runOwner = c.owner
			}
			run = append(run, c.r)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// inspectNearest finds the visible vertex closest to the viewport center.
func (m Model) inspectNearest() (geom.Vertex, bool) {
	_, _, w, h := m.layout()
	x, y, ok := m.cellToXY(w/2, h/2, w, h)
	if !ok {
		return geom.Vertex{}, false
	}
	return m.index.Nearest(x, y)
}
