package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"roadview/internal/geom"
	"roadview/internal/roadmap"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func supportedExt(ext string) bool {
	switch ext {
	case ".xml", ".csv", ".wkt", ".txt":
		return true
	}
	return false
}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if supportedExt(ext) {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a map file (.xml) or a point-pair file into the model.
// On failure the current dataset is kept and the error goes to the status bar.
func (m *Model) loadPath(p string) {
	var d geom.Data
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".xml":
		res, err := roadmap.Extract(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		d = res.Data()
	case ".csv", ".wkt", ".txt":
		pl, err := geom.LoadPairs(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		d = geom.NewData(geom.Layer{Kind: geom.LayerLine, Lines: []geom.Polyline{pl}})
	default:
		m.status = "unsupported file: " + ext
		return
	}
	m.selPath = p
	m.setData(d)
	m.status = "loaded: " + filepath.Base(p) + "  " + m.status
}
