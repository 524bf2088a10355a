package roadmap

import "roadview/internal/geom"

// Result holds the polylines of one map document in document order.
// Boundaries keep no link to the lane they came from.
type Result struct {
	ReferenceLines  []geom.Polyline `json:"reference_lines" yaml:"reference_lines"`
	LeftBoundaries  []geom.Polyline `json:"left_boundaries" yaml:"left_boundaries"`
	RightBoundaries []geom.Polyline `json:"right_boundaries" yaml:"right_boundaries"`
}

func newResult() *Result {
	return &Result{
		ReferenceLines:  []geom.Polyline{},
		LeftBoundaries:  []geom.Polyline{},
		RightBoundaries: []geom.Polyline{},
	}
}

// Data converts the result into render layers: reference lines, then left
// and right boundaries.
func (r *Result) Data() geom.Data {
	return geom.NewData(
		geom.Layer{Kind: geom.LayerReference, Lines: r.ReferenceLines},
		geom.Layer{Kind: geom.LayerLeft, Lines: r.LeftBoundaries},
		geom.Layer{Kind: geom.LayerRight, Lines: r.RightBoundaries},
	)
}

// Summary describes a result in counts.
type Summary struct {
	ReferenceLines  int       `json:"reference_lines" yaml:"reference_lines"`
	LeftBoundaries  int       `json:"left_boundaries" yaml:"left_boundaries"`
	RightBoundaries int       `json:"right_boundaries" yaml:"right_boundaries"`
	Points          int       `json:"points" yaml:"points"`
	BBox            geom.BBox `json:"bbox" yaml:"bbox"`
}

func (r *Result) Summary() Summary {
	d := r.Data()
	_, points := d.Counts()
	return Summary{
		ReferenceLines:  len(r.ReferenceLines),
		LeftBoundaries:  len(r.LeftBoundaries),
		RightBoundaries: len(r.RightBoundaries),
		Points:          points,
		BBox:            d.BBox,
	}
}
