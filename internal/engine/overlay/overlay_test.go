package overlay

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/hexterrain/internal/engine/mesh"
	"github.com/Faultbox/hexterrain/pkg/hex"
)

func ring(c hex.Coord, i int) mesh.Node {
	radius := float32(1)
	if i >= 6 {
		radius = 0.9
	}
	xy := c.Position().Add(hex.CornerVector(i).Scale(radius))
	return mesh.Node{Vertex: xy.Vec3(0), UV: xy}
}

func newTestSet() *Set {
	s := NewSet()
	cfg := mesh.Config{Factory: ring, Triangles: mesh.BorderTriangles}
	s.Add(Highlight, "TerrainHighlight", "Standard", cfg, Color{1, 0, 0, 1})
	s.Add(Outline, "TerrainOutline", "Standard", cfg, White)
	return s
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "highlight", Highlight.String())
	assert.Equal(t, "obstacle", Obstacle.String())
	assert.Equal(t, "Category(42)", Category(42).String())
	assert.Len(t, Categories, len(categoryNames))
}

func TestGetCreatesPerViewer(t *testing.T) {
	s := newTestSet()

	_, ok := s.Lookup(Highlight, 1)
	assert.False(t, ok)

	a, ok := s.Get(Highlight, 1)
	require.True(t, ok)
	b, ok := s.Get(Highlight, 2)
	require.True(t, ok)
	assert.NotSame(t, a, b)

	again, _ := s.Get(Highlight, 1)
	assert.Same(t, a, again)
	assert.Equal(t, []int{1, 2}, s.Viewers(Highlight))

	assert.False(t, a.Visible(), "new overlays start hidden")
	assert.Equal(t, Color{1, 0, 0, 1}, a.Color())
	assert.Equal(t, "TerrainHighlight", a.Name)

	_, ok = s.Get(Selection, 1)
	assert.False(t, ok, "unregistered category")
}

func TestViewersAreIndependent(t *testing.T) {
	s := newTestSet()
	a, _ := s.Get(Highlight, 1)
	b, _ := s.Get(Highlight, 2)

	a.Set(slices.Values([]hex.Coord{hex.Origin, {Q: 1, R: 0}}))
	a.Show()
	a.SetColor(Color{0, 1, 0, 1})

	assert.True(t, a.Displays(hex.Origin))
	assert.False(t, b.Displays(hex.Origin))
	assert.False(t, b.Visible())
	assert.Equal(t, Color{1, 0, 0, 1}, b.Color())
	assert.Equal(t, 0, b.Mesh().Len())
	assert.Equal(t, 2, a.Mesh().Len())
}

func TestShowHideKeepsGeometry(t *testing.T) {
	s := newTestSet()
	o, _ := s.Get(Outline, 0)
	o.Set(slices.Values(hex.Disk(hex.Origin, 1)))
	rev := o.Mesh().Revision()

	o.Show()
	assert.True(t, o.Visible())
	o.Hide()
	assert.False(t, o.Visible())

	assert.Equal(t, rev, o.Mesh().Revision())
	assert.Equal(t, 7, o.Coords().Len())
}

func TestSetReplacesCells(t *testing.T) {
	s := newTestSet()
	o, _ := s.Get(Outline, 0)

	o.Set(slices.Values(hex.Disk(hex.Origin, 1)))
	o.Set(slices.Values([]hex.Coord{{Q: 5, R: 5}}))

	assert.Equal(t, 1, o.Mesh().Len())
	assert.True(t, o.Displays(hex.Coord{Q: 5, R: 5}))
	assert.False(t, o.Displays(hex.Origin))
}

func TestUpdateOnlyDisplayedCells(t *testing.T) {
	s := newTestSet()
	o, _ := s.Get(Outline, 0)
	o.Set(slices.Values(hex.Disk(hex.Origin, 1)))

	assert.Equal(t, 1, o.Update(hex.Origin, hex.Coord{Q: 9, R: 9}))
	assert.Equal(t, 7, o.UpdateAll())
	assert.Equal(t, 7, s.UpdateAll())
}

func TestRemoveViewer(t *testing.T) {
	s := newTestSet()
	s.Get(Highlight, 3)
	s.Get(Outline, 3)
	s.Get(Outline, 4)

	s.RemoveViewer(3)

	_, ok := s.Lookup(Highlight, 3)
	assert.False(t, ok)
	_, ok = s.Lookup(Outline, 3)
	assert.False(t, ok)
	_, ok = s.Lookup(Outline, 4)
	assert.True(t, ok)
}

func TestAddReplacesCategory(t *testing.T) {
	s := newTestSet()
	old, _ := s.Get(Outline, 0)
	old.Show()

	s.Add(Outline, "Thicker", "Standard", mesh.Config{Factory: ring, Triangles: mesh.BorderTriangles}, White)

	o, _ := s.Get(Outline, 0)
	assert.NotSame(t, old, o)
	assert.Equal(t, "Thicker", o.Name)
	assert.Equal(t, 2, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(Outline))
}
