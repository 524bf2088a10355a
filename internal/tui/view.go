package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	_, _, mapWidth, mapHeight := m.layout()
	contentWidth := max(10, m.width)

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, mapHeight-2)
	}

	// Header
	header := titleStyle.Render(" roadview ─ road map viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// the canvas uses the full map area; it has no border
	canvasW, canvasH := max(8, mapWidth), max(4, mapHeight)
	var mapView string
	if m.showAttrs {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	} else {
		var canvas string
		if m.pasteMode {
			// size textarea to map area
			m.ta.SetWidth(canvasW)
			m.ta.SetHeight(min(canvasH, 12))
			canvas = m.ta.View()
		} else {
			canvas = m.renderMap(canvasW, canvasH)
		}
		// plain map canvas: no border, no background highlight
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(canvas)
	}

	// Build inspect popup box (center-left overlay, not in map column)
	popup := ""
	if m.inspectPopup != "" && !m.showAttrs {
		maxPopupW := max(20, min(48, contentWidth/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, mapHeight, lipgloss.Left, lipgloss.Center, box)
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer: status + legend, help, and hover coordinates at bottom-right
	status := dimStyle.Render(" " + m.status + " ")
	legend := m.renderLegend()
	coords := ""
	if m.hovering && m.hoverHasGeo {
		c := fmt.Sprintf("  x=%.5f y=%.5f", m.hoverX, m.hoverY)
		if m.hoverHasVertex {
			v := m.hoverVertex
			c += fmt.Sprintf("  %s[%d]#%d (%.5f, %.5f)", v.Kind, v.Line, v.Index, v.X, v.Y)
		}
		coords = dimStyle.Render(c + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, legend)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right)),
		m.renderHelp(),
	)

	// Compose UI with popup overlay between header and body
	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderLegend shows a colored sample for every visible, non-empty layer.
func (m Model) renderLegend() string {
	var parts []string
	for _, layer := range m.data.Layers {
		if len(layer.Lines) == 0 || !m.layers.on(layer.Kind) {
			continue
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(m.st.Color(layer.Kind))).Render("━━")
		parts = append(parts, swatch+" "+layer.Kind.Label())
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"1-4 layers",
		"Tab sidebar",
		"Enter open",
		"p paste",
		"a table",
		"i inspect",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
