package picking

import (
	gomath "math"

	"github.com/Faultbox/hexterrain/pkg/math"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// EmptyAABB returns a box that contains nothing and grows with Extend.
func EmptyAABB() AABB {
	return AABB{
		Min: math.Vec3{X: gomath.MaxFloat32, Y: gomath.MaxFloat32, Z: gomath.MaxFloat32},
		Max: math.Vec3{X: -gomath.MaxFloat32, Y: -gomath.MaxFloat32, Z: -gomath.MaxFloat32},
	}
}

// NewAABB creates an AABB from two opposite corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: math.Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// Empty reports whether the box contains no points.
func (b AABB) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend grows the box to include p.
func (b AABB) Extend(p math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)},
		Max: math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box containing both.
func (b AABB) Union(other AABB) AABB {
	if other.Empty() {
		return b
	}
	return b.Extend(other.Min).Extend(other.Max)
}

// Contains reports whether p lies inside the box (inclusive).
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
