package terrain

import (
	gomath "math"

	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// HeightSurface maps a point relative to a cell center to an elevation.
type HeightSurface interface {
	Intersect(local math.Vec2) float32
}

// Flat is a surface of constant height.
type Flat float32

// Intersect returns the constant height.
func (f Flat) Intersect(math.Vec2) float32 {
	return float32(f)
}

// SurfaceFunc adapts a plain function to HeightSurface.
type SurfaceFunc func(local math.Vec2) float32

// Intersect calls f.
func (f SurfaceFunc) Intersect(local math.Vec2) float32 {
	return f(local)
}

// CellSurface is a baked surface: one height at the center and one on each of
// the six corner directions at SampleRadius. Heights between samples are
// interpolated linearly over the triangle fan and extrapolated beyond it.
type CellSurface struct {
	Center       float32
	Corners      [6]float32
	SampleRadius float32
}

// Intersect evaluates the fan triangle containing local.
func (s *CellSurface) Intersect(local math.Vec2) float32 {
	if local.X == 0 && local.Y == 0 {
		return s.Center
	}

	// Corner k sits at 30+60k degrees; sector k spans corners k and k+1.
	angle := gomath.Atan2(float64(local.Y), float64(local.X)) - gomath.Pi/6
	if angle < 0 {
		angle += 2 * gomath.Pi
	}
	k := min(int(angle/(gomath.Pi/3)), 5)

	a := hex.CornerVector(k).Scale(s.SampleRadius)
	b := hex.CornerVector(k + 1).Scale(s.SampleRadius)
	det := a.Cross(b)
	wa := local.Cross(b) / det
	wb := a.Cross(local) / det

	return s.Center + wa*(s.Corners[k]-s.Center) + wb*(s.Corners[(k+1)%6]-s.Center)
}

// add accumulates another bake sampled at the same radius.
func (s *CellSurface) add(other CellSurface) {
	s.Center += other.Center
	for i := range s.Corners {
		s.Corners[i] += other.Corners[i]
	}
}
