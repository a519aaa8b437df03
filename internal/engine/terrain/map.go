package terrain

import (
	"iter"

	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// Map owns the grid, its height surface and its layers.
// Layer and Surface entries always refer to members of Coords.
type Map struct {
	Coords hex.Set

	// SurfaceWidth and SurfaceHeight size the cartesian rectangle filled by
	// ApplyDimensions. Both are forced odd so a center cell exists.
	SurfaceWidth  int
	SurfaceHeight int

	// Placement band: FacilityRadius < Distance(origin, c) <= PeripheralRadius.
	FacilityRadius   int
	PeripheralRadius int

	// DetailWidth insets the interior corner ring: it sits at radius 1-DetailWidth.
	DetailWidth float32

	NeighborStyle              Statistic
	NeighborStyleInterpolation float32 // 0 keeps raw corner heights, 1 fully blends

	Surface    map[hex.Coord]HeightSurface
	HeightMaps []HeightMap
	Layers     LayerSet
}

// NewMap returns an empty map with default parameters.
func NewMap() *Map {
	return &Map{
		Coords:                     make(hex.Set),
		SurfaceWidth:               21,
		SurfaceHeight:              21,
		FacilityRadius:             1,
		PeripheralRadius:           6,
		DetailWidth:                0.1,
		NeighborStyle:              Average,
		NeighborStyleInterpolation: 1,
		Surface:                    make(map[hex.Coord]HeightSurface),
	}
}

// ApplyDimensions replaces Coords with every cell inside the
// SurfaceWidth x SurfaceHeight rectangle centered on the origin.
func (m *Map) ApplyDimensions() {
	if m.SurfaceWidth%2 == 0 {
		m.SurfaceWidth++
	}
	if m.SurfaceHeight%2 == 0 {
		m.SurfaceHeight++
	}

	corner := math.Vec2{X: float32(m.SurfaceWidth / 2), Y: float32(m.SurfaceHeight / 2)}
	lo, hi := hex.CartesianRectangleBounds(corner, corner.Scale(-1))
	m.setCoords(hex.Collect(hex.WithinRect(lo, hi)))
}

// ApplyRadius replaces Coords with the hexagon of the given radius around the origin.
func (m *Map) ApplyRadius(radius int) {
	m.setCoords(hex.NewSet(hex.Disk(hex.Origin, radius)...))
}

func (m *Map) setCoords(coords hex.Set) {
	m.Coords = coords
	m.Layers.Retain(coords)
	for c := range m.Surface {
		if !coords.Contains(c) {
			delete(m.Surface, c)
		}
	}
}

// BakeHeightMaps evaluates every height map over Coords and replaces Surface
// with their sum. Without height maps the surface is flat at zero.
func (m *Map) BakeHeightMaps() {
	uv := NewUVScaler(m.Coords)
	baked := make(map[hex.Coord]*CellSurface, m.Coords.Len())
	for _, hm := range m.HeightMaps {
		for c, s := range hm.Build(m.Coords, uv, m.DetailWidth) {
			if acc, ok := baked[c]; ok {
				acc.add(s)
			} else {
				baked[c] = &s
			}
		}
	}

	m.Surface = make(map[hex.Coord]HeightSurface, len(baked))
	for c, s := range baked {
		m.Surface[c] = s
	}
}

// Contains reports whether c is part of the grid.
func (m *Map) Contains(c hex.Coord) bool {
	return m.Coords.Contains(c)
}

// Height evaluates the surface of c at a point relative to its center.
// Cells without a surface entry are flat at zero.
func (m *Map) Height(c hex.Coord, local math.Vec2) float32 {
	s, ok := m.Surface[c]
	if !ok {
		return 0
	}
	return s.Intersect(local)
}

// IsPassable reports whether units may move through c.
func (m *Map) IsPassable(c hex.Coord) bool {
	return m.Contains(c) && m.Layers.Contains(Passable, c) && !m.Layers.Contains(Obstacle, c)
}

// IsBuildable reports whether a structure may be placed on c.
func (m *Map) IsBuildable(c hex.Coord) bool {
	return m.Contains(c) && m.Layers.Contains(Buildable, c) && !m.Layers.Contains(Obstacle, c)
}

// InPlacementRange reports whether c lies in the placement band around the origin.
func (m *Map) InPlacementRange(c hex.Coord) bool {
	d := hex.Distance(hex.Origin, c)
	return d > m.FacilityRadius && d <= m.PeripheralRadius
}

// OutsidePlacementRange is the negation of InPlacementRange.
func (m *Map) OutsidePlacementRange(c hex.Coord) bool {
	return !m.InPlacementRange(c)
}

// WithinPlacementRange yields the grid cells in the placement band, row by row.
func (m *Map) WithinPlacementRange() iter.Seq[hex.Coord] {
	return func(yield func(hex.Coord) bool) {
		for _, c := range m.Coords.Sorted() {
			if m.InPlacementRange(c) && !yield(c) {
				return
			}
		}
	}
}
