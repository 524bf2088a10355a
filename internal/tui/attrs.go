package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the polyline table from the current dataset.
func (m *Model) refreshAttrs() {
	cols, rows := m.buildAttributes()
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no polylines in current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols))
	for i, c := range cols {
		w := len(c) + 2
		switch i {
		case 1:
			w = 18
		case 4, 5:
			w = 22
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		trows = append(trows, table.Row(r))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes lists one row per polyline: layer, index, vertex count,
// path length and end points.
func (m *Model) buildAttributes() ([]string, [][]string) {
	cols := []string{"#", "layer", "idx", "pts", "start", "end", "length"}
	var rows [][]string
	for _, layer := range m.data.Layers {
		for i, pl := range layer.Lines {
			start, end := "-", "-"
			if pl.Len() > 0 {
				start = fmt.Sprintf("%.3f, %.3f", pl.XS[0], pl.YS[0])
				end = fmt.Sprintf("%.3f, %.3f", pl.XS[pl.Len()-1], pl.YS[pl.Len()-1])
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", len(rows)+1),
				layer.Kind.String(),
				fmt.Sprintf("%d", i),
				fmt.Sprintf("%d", pl.Len()),
				start,
				end,
				fmt.Sprintf("%.3f", pl.Length()),
			})
		}
	}
	return cols, rows
}
