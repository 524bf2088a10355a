package roadmap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadview/internal/geom"
)

const oneLane = `<?xml version="1.0"?>
<map>
  <road id="1">
    <section>
      <lane id="1">
        <left_boundary>
          <point x="0" y="0"/>
          <point x="1" y="1"/>
        </left_boundary>
        <right_boundary>
          <point x="0" y="2"/>
          <point x="1" y="3"/>
        </right_boundary>
      </lane>
    </section>
  </road>
</map>`

func pl(xs, ys []float64) geom.Polyline { return geom.Polyline{XS: xs, YS: ys} }

func extractString(t *testing.T, doc string) (*Result, error) {
	t.Helper()
	return ExtractReader(strings.NewReader(doc))
}

func TestExtractBoundaries(t *testing.T) {
	res, err := extractString(t, oneLane)
	require.NoError(t, err)

	assert.Equal(t, []geom.Polyline{pl([]float64{0, 1}, []float64{0, 1})}, res.LeftBoundaries)
	assert.Equal(t, []geom.Polyline{pl([]float64{0, 1}, []float64{2, 3})}, res.RightBoundaries)
	require.NotNil(t, res.ReferenceLines)
	assert.Empty(t, res.ReferenceLines)
}

func TestExtractReferenceLineNextToLane(t *testing.T) {
	doc := `<map><road><section>
  <lane>
    <left_boundary><point x="0" y="0"/><point x="1" y="1"/></left_boundary>
    <right_boundary><point x="0" y="2"/><point x="1" y="3"/></right_boundary>
  </lane>
  <reference_line><point x="5" y="5"/><point x="6" y="6"/></reference_line>
</section></road></map>`
	res, err := extractString(t, doc)
	require.NoError(t, err)

	assert.Equal(t, []geom.Polyline{pl([]float64{5, 6}, []float64{5, 6})}, res.ReferenceLines)
	assert.Len(t, res.LeftBoundaries, 1)
	assert.Len(t, res.RightBoundaries, 1)
}

func TestExtractEmptyDocument(t *testing.T) {
	for _, doc := range []string{`<map/>`, `<map><other/><section/></map>`} {
		res, err := extractString(t, doc)
		require.NoError(t, err)
		assert.NotNil(t, res.ReferenceLines)
		assert.NotNil(t, res.LeftBoundaries)
		assert.NotNil(t, res.RightBoundaries)
		assert.Empty(t, res.ReferenceLines)
		assert.Empty(t, res.LeftBoundaries)
		assert.Empty(t, res.RightBoundaries)
	}
}

func TestExtractMissingAttribute(t *testing.T) {
	doc := `<map><road><section><lane>
  <left_boundary><point x="0" y="0"/><point y="1"/></left_boundary>
</lane></section></road></map>`
	res, err := extractString(t, doc)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrMissingAttribute)

	var pe *PathError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "road[0]/section[0]/lane[0]/left_boundary[0]/point[1]", pe.Path)
	assert.Contains(t, err.Error(), `"x"`)

	_, err = extractString(t, `<map><road><s><reference_line><point x="1"/></reference_line></s></road></map>`)
	assert.ErrorIs(t, err, ErrMissingAttribute)
}

func TestExtractBadNumber(t *testing.T) {
	_, err := extractString(t, `<map><road><s><lane><right_boundary><point x="1" y="north"/></right_boundary></lane></s></road></map>`)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.NotErrorIs(t, err, ErrMissingAttribute)
}

func TestExtractCoordinateWhitespace(t *testing.T) {
	res, err := extractString(t, `<map><road><s><lane><left_boundary><point x=" 1.5" y="2 "/></left_boundary></lane></s></road></map>`)
	require.NoError(t, err)
	assert.Equal(t, []geom.Polyline{pl([]float64{1.5}, []float64{2})}, res.LeftBoundaries)
}

func TestExtractErrorPathCountsSameTagSiblings(t *testing.T) {
	doc := `<map><junk/><road><s>
  <junk/>
  <lane><right_boundary/><junk/><left_boundary><junk/><point x="0" y="0"/><point x="1"/></left_boundary></lane>
</s></road></map>`
	_, err := extractString(t, doc)
	var pe *PathError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "road[0]/s[0]/lane[0]/left_boundary[0]/point[1]", pe.Path)
}

func TestExtractUnknownTagsIgnored(t *testing.T) {
	doc := `<map>
  <unknown_tag><section><lane><left_boundary><point x="9" y="9"/></left_boundary></lane></section></unknown_tag>
  <road>
    <unknown_tag/>
    <section>
      <unknown_tag x="1"/>
      <lane>
        <unknown_tag><point x="7" y="7"/></unknown_tag>
        <left_boundary>
          <unknown_tag/>
          <point x="0" y="0"/>
          <point x="1" y="1"/>
        </left_boundary>
      </lane>
    </section>
  </road>
</map>`
	res, err := extractString(t, doc)
	require.NoError(t, err)
	assert.Equal(t, []geom.Polyline{pl([]float64{0, 1}, []float64{0, 1})}, res.LeftBoundaries)
	assert.Empty(t, res.ReferenceLines)
	assert.Empty(t, res.RightBoundaries)
}

func TestExtractReferenceLineReadsPointChildrenOnly(t *testing.T) {
	// non-point children of a reference line are skipped, attributes or not
	doc := `<map><road><section>
  <reference_line><unknown_tag/><pt y="1"/><point x="5" y="5"/></reference_line>
</section></road></map>`
	res, err := extractString(t, doc)
	require.NoError(t, err)
	assert.Equal(t, []geom.Polyline{pl([]float64{5}, []float64{5})}, res.ReferenceLines)
}

func TestExtractTagMatchIsExact(t *testing.T) {
	doc := `<map><Road><s><lane><left_boundary><point x="0" y="0"/></left_boundary></lane></s></Road>
<road><s><Lane><left_boundary><point x="0" y="0"/></left_boundary></Lane>
<lane><LEFT_BOUNDARY><point x="0" y="0"/></LEFT_BOUNDARY></lane></s></road></map>`
	res, err := extractString(t, doc)
	require.NoError(t, err)
	assert.Empty(t, res.LeftBoundaries)
}

func TestExtractFlattensRoadsInDocumentOrder(t *testing.T) {
	doc := `<map>
  <road><s1>
    <lane><left_boundary><point x="1" y="0"/></left_boundary></lane>
    <lane><left_boundary><point x="2" y="0"/></left_boundary></lane>
  </s1><s2>
    <lane><left_boundary><point x="3" y="0"/></left_boundary><right_boundary><point x="3" y="1"/></right_boundary></lane>
  </s2></road>
  <road><section>
    <reference_line><point x="4" y="0"/></reference_line>
    <lane><left_boundary><point x="5" y="0"/></left_boundary></lane>
    <reference_line><point x="6" y="0"/></reference_line>
  </section></road>
</map>`
	res, err := extractString(t, doc)
	require.NoError(t, err)

	var lefts []float64
	for _, b := range res.LeftBoundaries {
		lefts = append(lefts, b.XS[0])
	}
	assert.Equal(t, []float64{1, 2, 3, 5}, lefts)
	require.Len(t, res.ReferenceLines, 2)
	assert.Equal(t, 4.0, res.ReferenceLines[0].XS[0])
	assert.Equal(t, 6.0, res.ReferenceLines[1].XS[0])
	assert.Len(t, res.RightBoundaries, 1)
}

func TestExtractReferenceLineOutsideSectionSkipped(t *testing.T) {
	// reference lines are matched at the section-child level only
	doc := `<map><road>
  <reference_line><point x="1" y="1"/></reference_line>
  <section><lane><reference_line><point x="2" y="2"/></reference_line></lane></section>
</road></map>`
	res, err := extractString(t, doc)
	require.NoError(t, err)
	assert.Empty(t, res.ReferenceLines)
}

func TestExtractEmptyBoundaryKept(t *testing.T) {
	res, err := extractString(t, `<map><road><s><lane><left_boundary/></lane></s></road></map>`)
	require.NoError(t, err)
	require.Len(t, res.LeftBoundaries, 1)
	assert.Equal(t, 0, res.LeftBoundaries[0].Len())
}

func TestExtractMalformed(t *testing.T) {
	for _, doc := range []string{
		`<map><road name=unquoted></road></map>`,
		`<map><road`,
		``,
		`just text`,
		`<map/><map><road><s><lane><left_boundary><point x="1" y="1"/></left_boundary></lane></s></road></map>`,
		`<map/>trailing junk`,
	} {
		t.Run(doc, func(t *testing.T) {
			res, err := extractString(t, doc)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "map.xml")
	require.NoError(t, os.WriteFile(p, []byte(oneLane), 0o644))

	res, err := Extract(p)
	require.NoError(t, err)
	assert.Len(t, res.LeftBoundaries, 1)

	_, err = Extract(filepath.Join(dir, "absent.xml"))
	assert.ErrorIs(t, err, ErrFileAccess)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractDocument(t *testing.T) {
	doc := etree.NewDocument()
	road := doc.CreateElement("map").CreateElement("road")
	ref := road.CreateElement("section").CreateElement("reference_line")
	pt := ref.CreateElement("point")
	pt.CreateAttr("x", "1.5")
	pt.CreateAttr("y", "-2")

	res, err := ExtractDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, []geom.Polyline{pl([]float64{1.5}, []float64{-2})}, res.ReferenceLines)

	_, err = ExtractDocument(etree.NewDocument())
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestClassify(t *testing.T) {
	tests := map[string]Class{
		"road":           ClassRoad,
		"lane":           ClassLane,
		"left_boundary":  ClassLeftBoundary,
		"right_boundary": ClassRightBoundary,
		"reference_line": ClassReferenceLine,
		"point":          ClassPoint,
		"section":        ClassOther,
		"unknown_tag":    ClassOther,
		"":               ClassOther,
		"Lane":           ClassOther,
	}
	for tag, want := range tests {
		assert.Equal(t, want, Classify(tag), tag)
	}
}

func TestResultDataAndSummary(t *testing.T) {
	doc := `<map><road><section>
  <lane>
    <left_boundary><point x="0" y="0"/><point x="1" y="1"/></left_boundary>
    <right_boundary><point x="0" y="2"/><point x="1" y="3"/></right_boundary>
  </lane>
  <reference_line><point x="5" y="5"/><point x="6" y="6"/></reference_line>
</section></road></map>`
	res, err := extractString(t, doc)
	require.NoError(t, err)

	d := res.Data()
	require.Len(t, d.Layers, 3)
	assert.Equal(t, geom.LayerReference, d.Layers[0].Kind)
	assert.Equal(t, geom.LayerLeft, d.Layers[1].Kind)
	assert.Equal(t, geom.LayerRight, d.Layers[2].Kind)
	assert.Equal(t, geom.BBox{MinX: 0, MinY: 0, MaxX: 6, MaxY: 6}, d.BBox)

	s := res.Summary()
	assert.Equal(t, Summary{ReferenceLines: 1, LeftBoundaries: 1, RightBoundaries: 1, Points: 6, BBox: d.BBox}, s)
}
