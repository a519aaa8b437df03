package terrain

import (
	"github.com/Faultbox/hexterrain/internal/engine/mesh"
	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// corners evaluates the 12 logical corners of cells against a Map.
// Corners 0-5 lie on the cell outline, 6-11 on the interior ring.
type corners struct {
	m  *Map
	uv UVScaler
}

func newCorners(m *Map) *corners {
	k := &corners{m: m}
	k.refresh()
	return k
}

// refresh refits the texture mapping after Coords changed.
func (k *corners) refresh() {
	k.uv = NewUVScaler(k.m.Coords)
}

func (k *corners) outer() float32 { return hex.Radius }

func (k *corners) inner() float32 { return hex.Radius * (1 - k.m.DetailWidth) }

// interiorZ is the raw surface height under interior corner i of c.
func (k *corners) interiorZ(c hex.Coord, i int) float32 {
	return k.m.Height(c, hex.CornerVector(i).Scale(k.inner()))
}

// base is the node factory of the ground mesh. Interior corners take the
// surface height directly. Exterior corners blend toward a statistic of the
// three interior corners that meet at them: this cell's and the two adjacent
// cells'. An adjacent cell outside the grid contributes this cell's sample.
func (k *corners) base(c hex.Coord, i int) mesh.Node {
	radius := k.outer()
	if i >= 6 {
		radius = k.inner()
	}
	local := hex.CornerVector(i).Scale(radius)
	p := c.Position().Add(local)
	z := k.m.Height(c, local)

	if i < 6 && k.m.NeighborStyleInterpolation > 0 {
		own := k.interiorZ(c, i)
		samples := [3]float32{own, own, own}
		for j, nc := range hex.CornerNeighbors[i] {
			if n := c.Neighbor(nc.Neighbor); k.m.Contains(n) {
				samples[j+1] = k.interiorZ(n, nc.Corner)
			}
		}
		blended := k.m.NeighborStyle.Reduce(samples[:]...)
		z = math.Lerpf(z, blended, k.m.NeighborStyleInterpolation)
	}

	return mesh.Node{Vertex: p.Vec3(z), UV: k.uv.UV(p)}
}

// outline returns the node factory of a border of constant width: exterior
// corners match the ground mesh, interior corners sit width along the edge
// from each exterior corner toward its interior counterpart.
func (k *corners) outline(width float32) mesh.NodeFactory {
	return func(c hex.Coord, i int) mesh.Node {
		if i < 6 {
			return k.base(c, i)
		}
		v1 := k.base(c, i-6).Vertex
		v2 := k.base(c, i).Vertex
		p := v1.Add(v2.Sub(v1).Normalize().Scale(width))
		return mesh.Node{Vertex: p, UV: k.uv.UV(p.XY())}
	}
}
