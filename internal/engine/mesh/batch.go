package mesh

import (
	"github.com/Faultbox/hexterrain/internal/engine/picking"
)

// Bounds returns the axis-aligned box around every vertex in the batch.
func (b *Batch) Bounds() picking.AABB {
	if b.dirty {
		b.bounds = picking.EmptyAABB()
		for _, v := range b.Vertices {
			b.bounds = b.bounds.Extend(v)
		}
		b.dirty = false
	}
	return b.bounds
}

// TriangleCount returns the number of triangles in the batch.
func (b *Batch) TriangleCount() int {
	return len(b.Triangles) / 3
}

// IntersectRay returns the nearest triangle hit by the ray, if any.
// The box test rejects most misses before any triangle is visited.
func (b *Batch) IntersectRay(r picking.Ray) (t float32, triangle int, hit bool) {
	if _, ok := r.IntersectAABB(b.Bounds()); !ok {
		return 0, -1, false
	}

	triangle = -1
	for i := 0; i+2 < len(b.Triangles); i += 3 {
		v0 := b.Vertices[b.Triangles[i]]
		v1 := b.Vertices[b.Triangles[i+1]]
		v2 := b.Vertices[b.Triangles[i+2]]
		d, ok := r.IntersectTriangle(v0, v1, v2)
		if ok && (!hit || d < t) {
			t, triangle, hit = d, i/3, true
		}
	}
	return t, triangle, hit
}
