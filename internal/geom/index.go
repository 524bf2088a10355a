package geom

import "github.com/dhconnelly/rtreego"

const (
	tolerance   = 1e-9
	minChildren = 25
	maxChildren = 50
	dimensions  = 2
)

// Vertex identifies one point of one polyline.
type Vertex struct {
	Kind  LayerKind
	Line  int
	Index int
	X     float64
	Y     float64
}

// vertexItem wraps a Vertex for R-Tree indexing
type vertexItem struct {
	Vertex
	rect *rtreego.Rect
}

func (vi *vertexItem) Bounds() *rtreego.Rect {
	return vi.rect
}

// VertexIndex answers nearest-vertex queries over rendered data.
type VertexIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewVertexIndex indexes every vertex of the layers accepted by include
// (all layers when include is nil).
func NewVertexIndex(d Data, include func(LayerKind) bool) *VertexIndex {
	ix := &VertexIndex{tree: rtreego.NewTree(dimensions, minChildren, maxChildren)}
	for _, l := range d.Layers {
		if include != nil && !include(l.Kind) {
			continue
		}
		for li, pl := range l.Lines {
			for i := 0; i < pl.Len(); i++ {
				v := Vertex{Kind: l.Kind, Line: li, Index: i, X: pl.XS[i], Y: pl.YS[i]}
				ix.tree.Insert(&vertexItem{v, rtreego.Point{v.X, v.Y}.ToRect(tolerance)})
				ix.size++
			}
		}
	}
	return ix
}

func (ix *VertexIndex) Size() int { return ix.size }

// Nearest returns the indexed vertex closest to (x, y).
func (ix *VertexIndex) Nearest(x, y float64) (Vertex, bool) {
	if ix == nil || ix.size == 0 {
		return Vertex{}, false
	}
	item, ok := ix.tree.NearestNeighbor(rtreego.Point{x, y}).(*vertexItem)
	if !ok || item == nil {
		return Vertex{}, false
	}
	return item.Vertex, true
}
