// Package mesh builds batched hexagon geometry from a per-corner node factory.
package mesh

import (
	"github.com/Faultbox/hexterrain/internal/engine/picking"
	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// NodesPerCell is the number of logical corners a factory is asked for per cell:
// 0-5 are the exterior ring, 6-11 the interior ring (6+i sits inward from i).
const NodesPerCell = 12

// DefaultMaxVertices keeps every batch addressable by 16-bit indices.
const DefaultMaxVertices = 65000

// Node is one generated vertex.
type Node struct {
	Vertex math.Vec3
	UV     math.Vec2
}

// NodeFactory produces the node for corner i of cell c.
type NodeFactory func(c hex.Coord, i int) Node

// Config describes how a Builder triangulates cells.
type Config struct {
	Factory NodeFactory

	// Triangles is the per-cell triangle template; each entry indexes [0, NodesPerCell).
	Triangles []int

	// FlatShaded gives every triangle its own vertices so normals are per face.
	// Otherwise the cell's 12 nodes are shared between its triangles.
	FlatShaded bool

	// MaxVertices caps the vertex count of a single batch. Zero means DefaultMaxVertices.
	MaxVertices int
}

// Batch holds the geometry of a bounded subset of cells, ready for upload
// to one vertex/index buffer.
type Batch struct {
	Vertices  []math.Vec3
	UVs       []math.Vec2
	Normals   []math.Vec3
	Triangles []uint32

	// Coords lists the cells in the order their vertex blocks appear.
	Coords []hex.Coord

	bounds picking.AABB
	dirty  bool
}

// slot locates a cell's vertex block.
type slot struct {
	batch int
	cell  int
}
