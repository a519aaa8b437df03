package mesh

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/hexterrain/internal/logger"
	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// Builder triangulates a set of cells into fixed-capacity batches and keeps a
// cell index so single cells can be recomputed in place.
type Builder struct {
	factory      NodeFactory
	triangles    []int
	flatShaded   bool
	maxVertices  int
	vertsPerCell int

	batches  []*Batch
	index    map[hex.Coord]slot
	revision int
}

// New creates a builder. It panics if the triangle template is malformed,
// since templates are fixed at compile time.
func New(cfg Config) *Builder {
	if cfg.Factory == nil {
		panic("mesh: nil node factory")
	}
	if len(cfg.Triangles) == 0 || len(cfg.Triangles)%3 != 0 {
		panic(fmt.Sprintf("mesh: triangle template has %d indices, want a positive multiple of 3", len(cfg.Triangles)))
	}
	for _, idx := range cfg.Triangles {
		if idx < 0 || idx >= NodesPerCell {
			panic(fmt.Sprintf("mesh: triangle template index %d out of range", idx))
		}
	}

	maxVertices := cfg.MaxVertices
	if maxVertices <= 0 {
		maxVertices = DefaultMaxVertices
	}

	vertsPerCell := NodesPerCell
	if cfg.FlatShaded {
		vertsPerCell = len(cfg.Triangles)
	}

	return &Builder{
		factory:      cfg.Factory,
		triangles:    append([]int(nil), cfg.Triangles...),
		flatShaded:   cfg.FlatShaded,
		maxVertices:  maxVertices,
		vertsPerCell: vertsPerCell,
		index:        make(map[hex.Coord]slot),
	}
}

// Set rebuilds all geometry for coords, packing cells into as many batches as needed.
// Duplicate coordinates are built once.
func (b *Builder) Set(coords []hex.Coord) {
	b.batches = b.batches[:0]
	clear(b.index)

	perBatch := max(1, b.maxVertices/b.vertsPerCell)

	var batch *Batch
	for _, c := range coords {
		if _, dup := b.index[c]; dup {
			continue
		}
		if batch == nil || len(batch.Coords) == perBatch {
			batch = b.newBatch(min(perBatch, len(coords)-b.cellCount()))
		}

		cell := len(batch.Coords)
		batch.Coords = append(batch.Coords, c)
		b.index[c] = slot{batch: len(b.batches) - 1, cell: cell}

		b.writeTopology(batch, cell)
		b.writeCell(batch, cell, c)
	}

	// Trim capacity reserved for duplicates.
	if batch != nil {
		n := len(batch.Coords)
		batch.Vertices = batch.Vertices[:n*b.vertsPerCell]
		batch.UVs = batch.UVs[:n*b.vertsPerCell]
		batch.Normals = batch.Normals[:n*b.vertsPerCell]
		batch.Triangles = batch.Triangles[:n*len(b.triangles)]
	}

	b.revision++
	logger.Debug("mesh built",
		zap.Int("cells", len(b.index)),
		zap.Int("batches", len(b.batches)),
		zap.Int("vertices", b.VertexCount()),
		zap.Int("revision", b.revision))
}

// Update recomputes vertices, UVs and normals of the given cells in place.
// Topology is unchanged. Cells that were not part of the last Set are skipped.
// Returns the number of cells updated.
func (b *Builder) Update(coords ...hex.Coord) int {
	updated := 0
	for _, c := range coords {
		s, ok := b.index[c]
		if !ok {
			logger.Debug("mesh update skipped unknown cell", zap.Stringer("coord", c))
			continue
		}
		b.writeCell(b.batches[s.batch], s.cell, c)
		updated++
	}
	if updated > 0 {
		b.revision++
	}
	return updated
}

// UpdateAll recomputes every cell in place.
func (b *Builder) UpdateAll() int {
	updated := 0
	for _, batch := range b.batches {
		for cell, c := range batch.Coords {
			b.writeCell(batch, cell, c)
			updated++
		}
	}
	if updated > 0 {
		b.revision++
	}
	return updated
}

// Clear drops all geometry.
func (b *Builder) Clear() {
	b.batches = b.batches[:0]
	clear(b.index)
	b.revision++
}

// Batches returns the built batches. Callers must not modify the slice.
func (b *Builder) Batches() []*Batch {
	return b.batches
}

// Revision counts the Set, Update and Clear calls that changed geometry.
func (b *Builder) Revision() int {
	return b.revision
}

// Contains reports whether c was part of the last Set.
func (b *Builder) Contains(c hex.Coord) bool {
	_, ok := b.index[c]
	return ok
}

// Len returns the number of built cells.
func (b *Builder) Len() int {
	return len(b.index)
}

// VertexCount returns the total number of vertices across batches.
func (b *Builder) VertexCount() int {
	n := 0
	for _, batch := range b.batches {
		n += len(batch.Vertices)
	}
	return n
}

// Nodes evaluates the factory for all corners of c without touching the batches.
func (b *Builder) Nodes(c hex.Coord) [NodesPerCell]Node {
	var nodes [NodesPerCell]Node
	for i := range nodes {
		nodes[i] = b.factory(c, i)
	}
	return nodes
}

// Cell returns the vertex block of c within its batch.
func (b *Builder) Cell(c hex.Coord) (vertices []math.Vec3, ok bool) {
	s, ok := b.index[c]
	if !ok {
		return nil, false
	}
	start := s.cell * b.vertsPerCell
	return b.batches[s.batch].Vertices[start : start+b.vertsPerCell], true
}

// Summary describes the built geometry.
func (b *Builder) Summary() string {
	tris := 0
	for _, batch := range b.batches {
		tris += batch.TriangleCount()
	}
	return fmt.Sprintf("%d cells, %d batches, %d vertices, %d triangles, revision %d",
		len(b.index), len(b.batches), b.VertexCount(), tris, b.revision)
}

func (b *Builder) cellCount() int {
	return len(b.index)
}

func (b *Builder) newBatch(cells int) *Batch {
	verts := cells * b.vertsPerCell
	batch := &Batch{
		Vertices:  make([]math.Vec3, verts),
		UVs:       make([]math.Vec2, verts),
		Normals:   make([]math.Vec3, verts),
		Triangles: make([]uint32, cells*len(b.triangles)),
		Coords:    make([]hex.Coord, 0, cells),
		dirty:     true,
	}
	b.batches = append(b.batches, batch)
	return batch
}

// writeTopology fills the index range of one cell.
func (b *Builder) writeTopology(batch *Batch, cell int) {
	base := uint32(cell * b.vertsPerCell)
	out := batch.Triangles[cell*len(b.triangles):]
	for k, idx := range b.triangles {
		if b.flatShaded {
			out[k] = base + uint32(k)
		} else {
			out[k] = base + uint32(idx)
		}
	}
}

// writeCell evaluates the factory for one cell and fills its vertex block.
func (b *Builder) writeCell(batch *Batch, cell int, c hex.Coord) {
	nodes := b.Nodes(c)
	base := cell * b.vertsPerCell
	verts := batch.Vertices[base : base+b.vertsPerCell]
	uvs := batch.UVs[base : base+b.vertsPerCell]
	normals := batch.Normals[base : base+b.vertsPerCell]

	if b.flatShaded {
		for k, idx := range b.triangles {
			verts[k] = nodes[idx].Vertex
			uvs[k] = nodes[idx].UV
		}
		for k := 0; k < len(b.triangles); k += 3 {
			n := faceNormal(verts[k], verts[k+1], verts[k+2]).Normalize()
			normals[k], normals[k+1], normals[k+2] = n, n, n
		}
	} else {
		for i, node := range nodes {
			verts[i] = node.Vertex
			uvs[i] = node.UV
			normals[i] = math.Vec3{}
		}
		for k := 0; k < len(b.triangles); k += 3 {
			i0, i1, i2 := b.triangles[k], b.triangles[k+1], b.triangles[k+2]
			n := faceNormal(verts[i0], verts[i1], verts[i2])
			normals[i0] = normals[i0].Add(n)
			normals[i1] = normals[i1].Add(n)
			normals[i2] = normals[i2].Add(n)
		}
		for i := range normals {
			normals[i] = normals[i].Normalize()
		}
	}

	batch.dirty = true
}

// faceNormal returns the area-weighted normal of a counter-clockwise triangle.
func faceNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}
