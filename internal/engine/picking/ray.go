// Package picking provides ray casting against terrain geometry.
package picking

import (
	gomath "math"

	"github.com/Faultbox/hexterrain/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// NewRay creates a ray, normalizing the direction.
func NewRay(origin, direction math.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform moves the ray into another space. The direction is renormalized,
// so distances measured along the result are in the target space's units.
func (r Ray) Transform(m math.Mat4) Ray {
	return NewRay(m.TransformPoint(r.Origin), m.TransformDirection(r.Direction))
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Normalized device coords (-1 to 1), Y flipped
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH

	nearWorld := unproject(invViewProj, math.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := unproject(invViewProj, math.Vec4{ndcX, ndcY, 1.0, 1.0})

	return NewRay(nearWorld, farWorld.Sub(nearWorld))
}

func unproject(m math.Mat4, v math.Vec4) math.Vec3 {
	w := m.MulVec4(v)
	if w[3] != 0 {
		return math.Vec3{X: w[0] / w[3], Y: w[1] / w[3], Z: w[2] / w[3]}
	}
	return math.Vec3{X: w[0], Y: w[1], Z: w[2]}
}

// IntersectPlaneZ intersects the ray with a horizontal plane at height z.
func (r Ray) IntersectPlaneZ(z float32) (p math.Vec3, ok bool) {
	if gomath.Abs(float64(r.Direction.Z)) < 0.001 {
		return math.Vec3{}, false // Ray parallel to plane
	}

	t := (z - r.Origin.Z) / r.Direction.Z
	if t < 0 {
		return math.Vec3{}, false // Intersection behind ray origin
	}
	return r.At(t), true
}

// IntersectTriangle tests the ray against triangle (a, b, c) from either side
// (Möller–Trumbore). Returns the distance along the ray.
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (t float32, hit bool) {
	const epsilon = 1e-7

	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	pvec := r.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if det > -epsilon && det < epsilon {
		return 0, false // Parallel to the triangle plane
	}
	invDet := 1 / det

	tvec := r.Origin.Sub(a)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(edge1)
	v := r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = edge2.Dot(qvec) * invDet
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	if box.Empty() {
		return 0, false
	}

	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := range 3 {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
