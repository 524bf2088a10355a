package geom

import "math"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows the box to cover (x, y). The zero box is treated as empty
// until the first call when first is true.
func (b *BBox) Extend(x, y float64, first bool) {
	if first {
		*b = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Valid reports whether the box has a non-zero extent on both axes.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Padded returns a box that can be projected: degenerate axes are widened
// by one unit around their center.
func (b BBox) Padded() BBox {
	if b.MaxX <= b.MinX {
		b.MinX -= 0.5
		b.MaxX += 0.5
	}
	if b.MaxY <= b.MinY {
		b.MinY -= 0.5
		b.MaxY += 0.5
	}
	return b
}

// Polyline is an ordered path kept as two parallel coordinate sequences.
type Polyline struct {
	XS []float64 `json:"xs" yaml:"xs"`
	YS []float64 `json:"ys" yaml:"ys"`
}

// NewPolyline builds a polyline from point pairs.
func NewPolyline(pairs [][2]float64) Polyline {
	xs, ys := Unzip(pairs)
	return Polyline{XS: xs, YS: ys}
}

func (p Polyline) Len() int { return len(p.XS) }

func (p Polyline) At(i int) [2]float64 { return [2]float64{p.XS[i], p.YS[i]} }

// Pairs returns the points of the polyline in draw order.
func (p Polyline) Pairs() [][2]float64 { return Zip(p.XS, p.YS) }

// Length is the sum of the segment lengths.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < p.Len(); i++ {
		total += math.Hypot(p.XS[i]-p.XS[i-1], p.YS[i]-p.YS[i-1])
	}
	return total
}

func (p Polyline) BBox() BBox {
	var bb BBox
	for i := 0; i < p.Len(); i++ {
		bb.Extend(p.XS[i], p.YS[i], i == 0)
	}
	return bb
}

type LayerKind int

const (
	LayerLine LayerKind = iota
	LayerReference
	LayerLeft
	LayerRight
)

// LayerKinds lists every kind in draw order.
var LayerKinds = []LayerKind{LayerLine, LayerReference, LayerLeft, LayerRight}

func (k LayerKind) String() string {
	switch k {
	case LayerReference:
		return "reference_lines"
	case LayerLeft:
		return "left_boundaries"
	case LayerRight:
		return "right_boundaries"
	default:
		return "line"
	}
}

// Label is the legend text for the kind.
func (k LayerKind) Label() string {
	switch k {
	case LayerReference:
		return "reference line"
	case LayerLeft:
		return "left boundary"
	case LayerRight:
		return "right boundary"
	default:
		return "line"
	}
}

// Layer groups the polylines drawn with one style.
type Layer struct {
	Kind  LayerKind
	Lines []Polyline
}

// Data is a minimal geometry container for rendering
type Data struct {
	Layers []Layer
	BBox   BBox
}

// NewData assembles layers and computes their joint bbox.
func NewData(layers ...Layer) Data {
	d := Data{Layers: layers}
	first := true
	for _, l := range layers {
		for _, pl := range l.Lines {
			for i := 0; i < pl.Len(); i++ {
				d.BBox.Extend(pl.XS[i], pl.YS[i], first)
				first = false
			}
		}
	}
	return d
}

// Layer returns the layer of the given kind, if present.
func (d Data) Layer(kind LayerKind) (Layer, bool) {
	for _, l := range d.Layers {
		if l.Kind == kind {
			return l, true
		}
	}
	return Layer{}, false
}

// Counts returns the number of polylines and vertices across all layers.
func (d Data) Counts() (lines, points int) {
	for _, l := range d.Layers {
		lines += len(l.Lines)
		for _, pl := range l.Lines {
			points += pl.Len()
		}
	}
	return lines, points
}

func (d Data) Empty() bool {
	_, n := d.Counts()
	return n == 0
}
