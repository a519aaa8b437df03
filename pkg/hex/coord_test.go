package hex

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/hexterrain/pkg/math"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
		want int
	}{
		{"same", Origin, Origin, 0},
		{"neighbor", Origin, Coord{1, 0}, 1},
		{"diagonal", Origin, Coord{1, 1}, 2},
		{"across", Coord{-2, 1}, Coord{2, -1}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a))
		})
	}
}

func TestNeighborsAreAdjacent(t *testing.T) {
	c := Coord{3, -2}
	for i, n := range c.Neighbors() {
		assert.Equal(t, 1, Distance(c, n), "neighbor %d", i)
		assert.Equal(t, n, c.Neighbor(i))
		assert.Equal(t, n, c.Neighbor(i+6), "index wraps")
		// The neighbor across edge i sees us across edge i+3.
		assert.Equal(t, c, n.Neighbor(i+3))
	}
}

func TestNeighborDirectionMatchesLayout(t *testing.T) {
	// Neighbor 0 is to the right; neighbors proceed counter-clockwise.
	right := Origin.Neighbor(0).Position()
	assert.InDelta(t, 0, right.Y, 1e-5)
	assert.Greater(t, right.X, float32(0))

	upperRight := Origin.Neighbor(1).Position()
	assert.Greater(t, upperRight.Y, float32(0))
	assert.Greater(t, upperRight.X, float32(0))
}

func TestCornerVector(t *testing.T) {
	c0 := CornerVector(0)
	assert.Greater(t, c0.X, float32(0), "corner 0 is on the right")
	assert.Greater(t, c0.Y, float32(0), "corner 0 is at the top")

	for i := range 6 {
		assert.InDelta(t, Radius, CornerVector(i).Length(), 1e-5)
		// Counter-clockwise winding.
		assert.Greater(t, CornerVector(i).Cross(CornerVector(i+1)), float32(0))
	}
	assert.Equal(t, CornerVector(2), CornerVector(8))
}

func TestCornerNeighborsShareCorners(t *testing.T) {
	c := Coord{-1, 2}
	for i, pair := range CornerNeighbors {
		own := c.Corner(i)
		for _, nc := range pair {
			other := c.Neighbor(nc.Neighbor).Corner(nc.Corner)
			assert.InDelta(t, own.X, other.X, 1e-4, "corner %d via neighbor %d", i, nc.Neighbor)
			assert.InDelta(t, own.Y, other.Y, 1e-4, "corner %d via neighbor %d", i, nc.Neighbor)
		}
	}
}

func TestAtPositionRoundTrip(t *testing.T) {
	for _, c := range Disk(Coord{2, -1}, 4) {
		assert.Equal(t, c, AtPosition(c.Position()))

		// Points just inside any corner still belong to the cell.
		for i := range 6 {
			p := c.Position().Add(CornerVector(i).Scale(0.9))
			assert.Equal(t, c, AtPosition(p), "cell %v corner %d", c, i)
		}
	}
}

func TestRingAndDisk(t *testing.T) {
	assert.Equal(t, []Coord{Origin}, Ring(Origin, 0))

	for k := 1; k <= 3; k++ {
		ring := Ring(Origin, k)
		require.Len(t, ring, 6*k)
		for _, c := range ring {
			assert.Equal(t, k, Distance(Origin, c))
		}
		assert.Len(t, NewSet(ring...), 6*k, "ring cells are unique")
	}

	disk := Disk(Origin, 2)
	assert.Len(t, disk, 19)
	for _, c := range disk {
		assert.LessOrEqual(t, Distance(Origin, c), 2)
	}
}

func TestWithinRect(t *testing.T) {
	corner := math.Vec2{X: 4, Y: 4}
	lo, hi := CartesianRectangleBounds(corner, corner.Scale(-1))
	assert.Equal(t, Coord{-lo.Q, -lo.R}, hi, "bounds are symmetric")

	seq := WithinRect(lo, hi)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second, "sequence is restartable")

	cells := NewSet(first...)
	assert.Len(t, cells, len(first), "no duplicates")
	assert.True(t, cells.Contains(Origin))

	pLo, pHi := lo.Position(), hi.Position()
	for c := range cells {
		p := c.Position()
		assert.GreaterOrEqual(t, p.X, pLo.X-1e-3)
		assert.LessOrEqual(t, p.X, pHi.X+1e-3)
		assert.GreaterOrEqual(t, p.Y, pLo.Y-1e-3)
		assert.LessOrEqual(t, p.Y, pHi.Y+1e-3)
		assert.True(t, cells.Contains(Coord{-c.Q, -c.R}), "mirror of %v", c)
	}
}

func TestWithinRectStopsEarly(t *testing.T) {
	n := 0
	for range WithinRect(Coord{-5, -5}, Coord{5, 5}) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestSet(t *testing.T) {
	s := NewSet(Coord{1, 2}, Origin)
	assert.True(t, s.Contains(Origin))
	assert.Equal(t, []Coord{Origin, {1, 2}}, s.Sorted())

	clone := s.Clone()
	clone.Remove(Origin)
	assert.True(t, s.Contains(Origin), "clone is independent")
	assert.False(t, s.Equal(clone))

	clone.Add(Origin)
	assert.True(t, s.Equal(clone))

	s.Clear()
	assert.Equal(t, 0, s.Len())
}
