// Package roadmap extracts lane boundaries and reference lines from road map XML files.
//
// The document is walked as a labeled tree: root > road > section > lane >
// left_boundary|right_boundary > point, with reference_line nodes living next to
// the lanes of a section. Only tag names drive the walk; the section level is
// entered whatever its tag is.
package roadmap

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"roadview/internal/geom"
)

const (
	TagRoad          = "road"
	TagLane          = "lane"
	TagLeftBoundary  = "left_boundary"
	TagRightBoundary = "right_boundary"
	TagReferenceLine = "reference_line"
	TagPoint         = "point"

	AttrX = "x"
	AttrY = "y"
)

// Class is the role of an element, decided from its tag alone.
type Class int

const (
	ClassOther Class = iota
	ClassRoad
	ClassLane
	ClassLeftBoundary
	ClassRightBoundary
	ClassReferenceLine
	ClassPoint
)

// Classify maps a tag name to its class. Matching is exact.
func Classify(tag string) Class {
	switch tag {
	case TagRoad:
		return ClassRoad
	case TagLane:
		return ClassLane
	case TagLeftBoundary:
		return ClassLeftBoundary
	case TagRightBoundary:
		return ClassRightBoundary
	case TagReferenceLine:
		return ClassReferenceLine
	case TagPoint:
		return ClassPoint
	}
	return ClassOther
}

// Extract reads the map file at path. The file is closed before returning.
func Extract(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()
	return ExtractReader(f)
}

// ExtractReader parses a whole map document from r.
func ExtractReader(r io.Reader) (*Result, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return ExtractDocument(doc)
}

// ExtractDocument walks an already parsed document.
func ExtractDocument(doc *etree.Document) (*Result, error) {
	if err := checkDocument(doc); err != nil {
		return nil, err
	}
	root := doc.Root()
	res := newResult()
	roads := root.ChildElements()
	roadIdx := tagOrdinals(roads)
	for ri, road := range roads {
		if Classify(road.Tag) != ClassRoad {
			continue
		}
		roadPath := step("", road, roadIdx[ri])
		// the section tag is not checked
		sections := road.ChildElements()
		sectionIdx := tagOrdinals(sections)
		for si, section := range sections {
			sectionPath := step(roadPath, section, sectionIdx[si])
			children := section.ChildElements()
			childIdx := tagOrdinals(children)
			for ci, child := range children {
				childPath := step(sectionPath, child, childIdx[ci])
				cls := Classify(child.Tag)
				if cls == ClassLane {
					if err := res.addLane(child, childPath); err != nil {
						return nil, err
					}
				}
				if cls == ClassReferenceLine {
					pl, err := collectPoints(child, childPath)
					if err != nil {
						return nil, err
					}
					res.ReferenceLines = append(res.ReferenceLines, pl)
				}
			}
		}
	}
	return res, nil
}

// checkDocument requires exactly one root element and no text outside it.
func checkDocument(doc *etree.Document) error {
	roots := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return fmt.Errorf("%w: text outside the root element", ErrMalformed)
			}
		}
	}
	switch {
	case roots == 0:
		return fmt.Errorf("%w: no root element", ErrMalformed)
	case roots > 1:
		return fmt.Errorf("%w: %d root elements", ErrMalformed, roots)
	}
	return nil
}

func (r *Result) addLane(lane *etree.Element, path string) error {
	children := lane.ChildElements()
	idx := tagOrdinals(children)
	for i, child := range children {
		var dst *[]geom.Polyline
		switch Classify(child.Tag) {
		case ClassLeftBoundary:
			dst = &r.LeftBoundaries
		case ClassRightBoundary:
			dst = &r.RightBoundaries
		default:
			continue
		}
		pl, err := collectPoints(child, step(path, child, idx[i]))
		if err != nil {
			return err
		}
		*dst = append(*dst, pl)
	}
	return nil
}

// collectPoints reads the point children of el, in document order, into a polyline.
func collectPoints(el *etree.Element, path string) (geom.Polyline, error) {
	pl := geom.Polyline{XS: []float64{}, YS: []float64{}}
	n := 0
	for _, pt := range el.ChildElements() {
		if Classify(pt.Tag) != ClassPoint {
			continue
		}
		ptPath := step(path, pt, n)
		n++
		x, err := floatAttr(pt, AttrX, ptPath)
		if err != nil {
			return geom.Polyline{}, err
		}
		y, err := floatAttr(pt, AttrY, ptPath)
		if err != nil {
			return geom.Polyline{}, err
		}
		pl.XS = append(pl.XS, x)
		pl.YS = append(pl.YS, y)
	}
	return pl, nil
}

func floatAttr(el *etree.Element, key, path string) (float64, error) {
	a := el.SelectAttr(key)
	if a == nil {
		return 0, &PathError{Path: path, Err: fmt.Errorf("%w %q", ErrMissingAttribute, key)}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
	if err != nil {
		return 0, &PathError{Path: path, Err: fmt.Errorf("%w: attribute %q: %w", ErrMalformed, key, err)}
	}
	return v, nil
}

// tagOrdinals gives each element its position among the siblings sharing its tag.
func tagOrdinals(els []*etree.Element) []int {
	seen := make(map[string]int, len(els))
	out := make([]int, len(els))
	for i, el := range els {
		out[i] = seen[el.Tag]
		seen[el.Tag]++
	}
	return out
}

func step(parent string, el *etree.Element, i int) string {
	s := fmt.Sprintf("%s[%d]", el.Tag, i)
	if parent == "" {
		return s
	}
	return parent + "/" + s
}
