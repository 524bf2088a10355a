package tui

import "roadview/internal/geom"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// layerMask is a set of visible layer kinds.
type layerMask uint8

const allLayers = layerMask(1<<geom.LayerLine | 1<<geom.LayerReference | 1<<geom.LayerLeft | 1<<geom.LayerRight)

func (m layerMask) on(k geom.LayerKind) bool { return m&(1<<k) != 0 }

func (m layerMask) toggle(k geom.LayerKind) layerMask { return m ^ (1 << k) }
