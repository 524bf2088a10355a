package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadview/internal/geom"
	"roadview/internal/style"
)

func sampleData() geom.Data {
	return geom.NewData(
		geom.Layer{Kind: geom.LayerReference, Lines: []geom.Polyline{geom.NewPolyline([][2]float64{{5, 5}, {6, 6}})}},
		geom.Layer{Kind: geom.LayerLeft, Lines: []geom.Polyline{
			geom.NewPolyline([][2]float64{{0, 0}, {1, 1}}),
			geom.NewPolyline([][2]float64{{2, 0}, {3, 1}}),
		}},
		geom.Layer{Kind: geom.LayerRight, Lines: []geom.Polyline{{XS: []float64{}, YS: []float64{}}}},
	)
}

func TestBuildLines(t *testing.T) {
	st := style.Default()
	lines, legend, err := buildLines(sampleData(), st)
	require.NoError(t, err)

	// the empty right boundary is not drawn
	require.Len(t, lines, 3)
	assert.Equal(t, st.RGBA(geom.LayerReference), lines[0].Color)
	assert.Equal(t, st.RGBA(geom.LayerLeft), lines[1].Color)
	assert.Equal(t, 2, lines[2].XYs.Len())
	assert.Equal(t, 3.0, lines[2].XYs[1].X)

	require.Len(t, legend, 2)
	assert.Equal(t, "reference line", legend[0].label)
	assert.Equal(t, "left boundary", legend[1].label)
	assert.Same(t, lines[1], legend[1].line)
}

func TestNewFigure(t *testing.T) {
	st := style.Default()
	st.Title = "map"
	p, err := NewFigure(sampleData(), st)
	require.NoError(t, err)
	assert.Equal(t, "map", p.Title.Text)
}

func TestRender(t *testing.T) {
	var png bytes.Buffer
	require.NoError(t, Render(&png, "png", sampleData(), style.Default()))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, Render(&svg, "svg", sampleData(), style.Default()))
	assert.Contains(t, svg.String(), "<svg")

	assert.Error(t, Render(&svg, "bmp", sampleData(), style.Default()))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "map.png")
	require.NoError(t, Save(out, sampleData(), style.Default()))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, Save(filepath.Join(dir, "map.gif"), sampleData(), style.Default()))
	assert.Error(t, Save(filepath.Join(dir, "map"), sampleData(), style.Default()))
}
