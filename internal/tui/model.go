package tui

import (
	"fmt"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"roadview/internal/geom"
	"roadview/internal/style"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	data  geom.Data
	bbox  geom.BBox // projection box, never degenerate once data is set
	index *geom.VertexIndex
	st    style.Style

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	layers layerMask

	// inspect popup
	inspectPopup string

	// hover state
	hovering       bool
	hoverCellX     int
	hoverCellY     int
	hoverMicX      int
	hoverMicY      int
	hoverHasGeo    bool
	hoverX         float64
	hoverY         float64
	hoverHasVertex bool
	hoverVertex    geom.Vertex

	// polyline table
	showAttrs bool
	tbl       table.Model
}

func New() Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "roadview ready",
		st:          style.Default(),
		layers:      allLayers,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste x y pairs (\"1 2, 3 4\" or LINESTRING(...)). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// polyline table setup (rows follow the dataset)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithData opens the viewer on already loaded data; name is shown as its source.
func NewWithData(name string, d geom.Data) Model {
	m := New()
	m.selPath = name
	m.setData(d)
	return m
}

// WithStyle replaces the color convention.
func (m Model) WithStyle(st style.Style) Model {
	m.st = st
	return m
}

// setData swaps the dataset and resets the viewport.
func (m *Model) setData(d geom.Data) {
	m.data = d
	m.bbox = d.BBox.Padded()
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.layers = allLayers
	m.inspectPopup = ""
	m.hovering = false
	m.reindex()
	lines, points := d.Counts()
	m.status = fmt.Sprintf("counts: lines=%d pts=%d", lines, points)
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// reindex rebuilds the vertex index over the visible layers.
func (m *Model) reindex() {
	layers := m.layers
	m.index = geom.NewVertexIndex(m.data, layers.on)
}

func (m Model) Init() tea.Cmd { return nil }
