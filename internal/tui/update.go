package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"roadview/internal/geom"
)

const sidebarWidth = 28

// layerKeys maps the number keys to the layer they toggle.
var layerKeys = map[string]geom.LayerKind{
	"1": geom.LayerLine,
	"2": geom.LayerReference,
	"3": geom.LayerLeft,
	"4": geom.LayerRight,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showAttrs && (msg.String() == "up" || msg.String() == "down") {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1", "2", "3", "4":
			k := layerKeys[key]
			m.layers = m.layers.toggle(k)
			m.reindex()
			m.status = fmt.Sprintf("%s: %v", k.Label(), m.layers.on(k))
		case "l":
			// toggle all layers
			if m.layers == allLayers {
				m.layers = 0
			} else {
				m.layers = allLayers
			}
			m.reindex()
			m.status = m.layerStatus()
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "esc":
			m.inspectPopup = ""
			m.showAttrs = false
		case "i":
			v, ok := m.inspectNearest()
			if ok {
				name := filepath.Base(m.selPath)
				if m.selPath == "" {
					name = "<pasted>"
				}
				lines, points := m.data.Counts()
				meta := []string{
					fmt.Sprintf("name: %s", name),
					fmt.Sprintf("path: %s", m.selPath),
					fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.data.BBox.MinX, m.data.BBox.MinY, m.data.BBox.MaxX, m.data.BBox.MaxY),
					fmt.Sprintf("counts: lines=%d pts=%d", lines, points),
					fmt.Sprintf("nearest: %s[%d] point %d", v.Kind, v.Line, v.Index),
					fmt.Sprintf("x=%.6f y=%.6f", v.X, v.Y),
				}
				m.inspectPopup = strings.Join(meta, "\n")
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no vertex nearby"
				m.status = m.inspectPopup
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.updateHover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		pl, err := geom.ParsePolyline(text)
		if err != nil {
			m.status = "paste error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setData(geom.NewData(geom.Layer{Kind: geom.LayerLine, Lines: []geom.Polyline{pl}}))
		m.status = "rendered pasted pairs  " + m.status
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// layout returns the map origin and size; it must match View.
func (m Model) layout() (originX, originY, w, h int) {
	sw, gap := 0, 0
	if m.showSidebar {
		sw, gap = sidebarWidth, 1
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	w = max(10, contentWidth-sw-1)
	return sw + gap, headerHeight, w, contentHeight
}

// updateHover tracks the mouse over the map and snaps to the nearest visible vertex.
func (m *Model) updateHover(cx, cy int) {
	ox, oy, w, h := m.layout()
	if cx < ox || cx >= ox+w || cy < oy || cy >= oy+h {
		m.hovering = false
		return
	}
	m.hovering = true
	m.hoverCellX = cx - ox
	m.hoverCellY = cy - oy
	x, y, ok := m.cellToXY(m.hoverCellX, m.hoverCellY, w, h)
	m.hoverHasGeo = ok
	m.hoverHasVertex = false
	if !ok {
		return
	}
	m.hoverX, m.hoverY = x, y
	v, found := m.index.Nearest(x, y)
	if !found {
		return
	}
	mx, my, ok := m.screenXYMicro(v.X, v.Y, w, h)
	if !ok {
		return
	}
	m.hoverVertex = v
	m.hoverHasVertex = true
	m.hoverMicX, m.hoverMicY = mx, my
}

func (m Model) layerStatus() string {
	shown := m.layerKindsShown()
	if len(shown) == 0 {
		return "layers: none"
	}
	names := make([]string, len(shown))
	for i, k := range shown {
		names[i] = k.String()
	}
	return "layers: " + strings.Join(names, " ")
}

func (m Model) layerKindsShown() []geom.LayerKind {
	var out []geom.LayerKind
	for _, k := range geom.LayerKinds {
		if m.layers.on(k) {
			out = append(out, k)
		}
	}
	return out
}
