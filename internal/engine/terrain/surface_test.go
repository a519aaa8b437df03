package terrain

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

type constSource float32

func (s constSource) HeightAt(_, _ math.Vec2) float32 { return float32(s) }

func TestStatisticReduce(t *testing.T) {
	tests := []struct {
		stat    Statistic
		samples []float32
		want    float32
	}{
		{Average, []float32{1, 2, 3}, 2},
		{Median, []float32{3, 1, 2}, 2},
		{Median, []float32{4, 1, 3, 2}, 2.5},
		{Min, []float32{3, -1, 2}, -1},
		{Max, []float32{3, -1, 2}, 3},
		{Average, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.stat.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stat.Reduce(tt.samples...))
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	samples := []float32{3, 1, 2}
	Median.Reduce(samples...)
	assert.Equal(t, []float32{3, 1, 2}, samples)
}

func TestParseStatistic(t *testing.T) {
	s, err := ParseStatistic("MEDIAN")
	require.NoError(t, err)
	assert.Equal(t, Median, s)

	_, err = ParseStatistic("mode")
	assert.Error(t, err)
	assert.Equal(t, "Statistic(9)", Statistic(9).String())
}

func TestCellSurfaceReproducesPlanes(t *testing.T) {
	plane := func(p math.Vec2) float32 { return 2*p.X - 3*p.Y + 1 }

	s := &CellSurface{Center: plane(math.Vec2{}), SampleRadius: 0.9}
	for i := range s.Corners {
		s.Corners[i] = plane(hex.CornerVector(i).Scale(0.9))
	}

	points := []math.Vec2{
		{X: 0, Y: 0},
		{X: 0.3, Y: 0.1},
		{X: -0.2, Y: 0.5},
		{X: 0, Y: -0.7},
		hex.CornerVector(2),             // extrapolated beyond the samples
		hex.CornerVector(5).Scale(0.95), // between rings
	}
	for _, p := range points {
		assert.InDelta(t, plane(p), s.Intersect(p), 1e-4, "at %v", p)
	}
}

func TestCellSurfaceHitsSamples(t *testing.T) {
	s := &CellSurface{Center: 1, Corners: [6]float32{2, 3, 4, 5, 6, 7}, SampleRadius: 0.9}
	for i := range 6 {
		assert.InDelta(t, s.Corners[i], s.Intersect(hex.CornerVector(i).Scale(0.9)), 1e-5)
	}
	assert.Equal(t, float32(1), s.Intersect(math.Vec2{}))
}

func TestHeightMapBuild(t *testing.T) {
	coords := hex.NewSet(hex.Disk(hex.Origin, 1)...)
	hm := HeightMap{Name: "const", Source: constSource(0.5), Scale: 2, Offset: 1}

	surfaces := hm.Build(coords, NewUVScaler(coords), 0.1)

	require.Len(t, surfaces, 7)
	for c, s := range surfaces {
		assert.True(t, coords.Contains(c))
		assert.Equal(t, float32(2), s.Center)
		assert.InDelta(t, 0.9, s.SampleRadius, 1e-6)
		for _, h := range s.Corners {
			assert.Equal(t, float32(2), h)
		}
	}
}

func TestBakeHeightMapsIsAdditive(t *testing.T) {
	m := NewMap()
	m.ApplyRadius(1)
	m.HeightMaps = []HeightMap{
		{Name: "a", Source: constSource(0.5), Scale: 2},
		{Name: "b", Source: constSource(0.25), Scale: 4, Offset: 0.5},
	}

	m.BakeHeightMaps()

	require.Len(t, m.Surface, 7)
	for c := range m.Coords {
		assert.InDelta(t, 2.5, m.Height(c, math.Vec2{X: 0.2, Y: -0.3}), 1e-5)
	}
}

func TestBakeWithoutHeightMapsIsFlat(t *testing.T) {
	m := NewMap()
	m.ApplyRadius(1)
	m.Surface[hex.Origin] = Flat(3)

	m.BakeHeightMaps()

	assert.Empty(t, m.Surface)
	assert.Equal(t, float32(0), m.Height(hex.Origin, math.Vec2{}))
}

func TestNoiseSourceIsDeterministic(t *testing.T) {
	a := NewNoiseSource(7, 0.08, 4, 0.5)
	b := NewNoiseSource(7, 0.08, 4, 0.5)

	for _, p := range []math.Vec2{{X: 0, Y: 0}, {X: 3.2, Y: -1.5}, {X: 10, Y: 20}} {
		h := a.HeightAt(p, math.Vec2{})
		assert.Equal(t, h, b.HeightAt(p, math.Vec2{}))
		assert.GreaterOrEqual(t, h, float32(0))
		assert.LessOrEqual(t, h, float32(1))
	}
}

func TestImageSource(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(1, 0, color.Gray{Y: 255})
	img.SetGray(0, 1, color.Gray{Y: 255})

	src := NewImageSource(img)

	tests := []struct {
		uv   math.Vec2
		want float32
	}{
		{math.Vec2{X: 0, Y: 1}, 0}, // top-left pixel
		{math.Vec2{X: 1, Y: 1}, 1}, // top-right pixel
		{math.Vec2{X: 0, Y: 0}, 1}, // bottom-left pixel
		{math.Vec2{X: 1, Y: 0}, 0}, // bottom-right pixel
		{math.Vec2{X: 0.5, Y: 0.5}, 0.5},
		{math.Vec2{X: -3, Y: 7}, 0}, // clamped
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, src.HeightAt(math.Vec2{}, tt.uv), 1e-5, "uv %v", tt.uv)
	}
}

func TestUVScaler(t *testing.T) {
	coords := hex.NewSet(hex.Disk(hex.Origin, 2)...)
	s := NewUVScaler(coords)

	for c := range coords {
		for i := range 6 {
			uv := s.UV(c.Corner(i))
			assert.GreaterOrEqual(t, uv.X, float32(-1e-5))
			assert.LessOrEqual(t, uv.X, float32(1+1e-5))
			assert.GreaterOrEqual(t, uv.Y, float32(-1e-5))
			assert.LessOrEqual(t, uv.Y, float32(1+1e-5))
		}
	}

	center := s.UV(hex.Origin.Position())
	assert.InDelta(t, 0.5, center.X, 1e-5)
	assert.InDelta(t, 0.5, center.Y, 1e-5)

	empty := NewUVScaler(hex.NewSet())
	assert.Equal(t, math.Vec2{X: 3, Y: 4}, empty.UV(math.Vec2{X: 3, Y: 4}))
}
