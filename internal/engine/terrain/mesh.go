package terrain

import (
	"github.com/Faultbox/hexterrain/internal/engine/mesh"
	"github.com/Faultbox/hexterrain/internal/engine/picking"
	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// Hit describes where a ray met the ground.
type Hit struct {
	Point    math.Vec3 // world space
	Distance float32   // along the world ray
	Coord    hex.Coord
}

// Mesh is the pickable ground geometry. Vertices are built in local space;
// Transform places them in the world.
type Mesh struct {
	Builder   *mesh.Builder
	Transform math.Mat4
}

// NewMesh wraps a builder configured with cfg, placed at the world origin.
func NewMesh(cfg mesh.Config) *Mesh {
	return &Mesh{
		Builder:   mesh.New(cfg),
		Transform: math.Identity(),
	}
}

// Set rebuilds the geometry of coords.
func (m *Mesh) Set(coords []hex.Coord) {
	m.Builder.Set(coords)
}

// Update recomputes the given cells in place.
func (m *Mesh) Update(coords ...hex.Coord) int {
	return m.Builder.Update(coords...)
}

// UpdateAll recomputes every built cell in place.
func (m *Mesh) UpdateAll() int {
	return m.Builder.UpdateAll()
}

// Revision increases whenever the geometry changes.
func (m *Mesh) Revision() int {
	return m.Builder.Revision()
}

// Bounds returns the local-space box around all batches.
func (m *Mesh) Bounds() picking.AABB {
	box := picking.EmptyAABB()
	for _, b := range m.Builder.Batches() {
		box = box.Union(b.Bounds())
	}
	return box
}

// IntersectRay casts a world-space ray against every batch and returns the
// nearest hit with the cell under it.
func (m *Mesh) IntersectRay(r picking.Ray) (Hit, bool) {
	local := r.Transform(m.Transform.Inverse())

	var (
		best  float32
		found bool
	)
	for _, b := range m.Builder.Batches() {
		if t, _, ok := b.IntersectRay(local); ok && (!found || t < best) {
			best, found = t, true
		}
	}
	if !found {
		return Hit{}, false
	}

	p := local.At(best)
	world := m.Transform.TransformPoint(p)
	return Hit{
		Point:    world,
		Distance: world.Distance(r.Origin),
		Coord:    hex.AtPosition(p.XY()),
	}, true
}

// IntersectPosition drops pos straight down onto the ground and returns the
// hit lifted by offset. Off the ground, pos is returned unchanged.
func (m *Mesh) IntersectPosition(pos math.Vec3, offset float32) math.Vec3 {
	box := m.Bounds()
	if box.Empty() {
		return pos
	}

	top := pos.Z
	for i := range 8 {
		corner := box.Min
		if i&1 != 0 {
			corner.X = box.Max.X
		}
		if i&2 != 0 {
			corner.Y = box.Max.Y
		}
		if i&4 != 0 {
			corner.Z = box.Max.Z
		}
		top = max(top, m.Transform.TransformPoint(corner).Z)
	}

	origin := math.Vec3{X: pos.X, Y: pos.Y, Z: top + 1}
	hit, ok := m.IntersectRay(picking.NewRay(origin, math.Vec3{Z: -1}))
	if !ok {
		return pos
	}
	return hit.Point.Add(math.Vec3{Z: offset})
}

// Sample reduces the 12 corner vertices of c per axis.
func (m *Mesh) Sample(c hex.Coord, x, y, z Statistic) math.Vec3 {
	var xs, ys, zs [mesh.NodesPerCell]float32
	for i, n := range m.Builder.Nodes(c) {
		xs[i], ys[i], zs[i] = n.Vertex.X, n.Vertex.Y, n.Vertex.Z
	}
	return math.Vec3{X: x.Reduce(xs[:]...), Y: y.Reduce(ys[:]...), Z: z.Reduce(zs[:]...)}
}

// SampleZ reduces the heights of the 12 corner vertices of c.
func (m *Mesh) SampleZ(c hex.Coord, alg Statistic) float32 {
	var zs [mesh.NodesPerCell]float32
	for i, n := range m.Builder.Nodes(c) {
		zs[i] = n.Vertex.Z
	}
	return alg.Reduce(zs[:]...)
}
