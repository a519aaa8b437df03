// Package camera provides an orbit camera over the terrain and turns cursor
// positions into picking rays.
package camera

import (
	gomath "math"

	"github.com/Faultbox/hexterrain/internal/engine/picking"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// OrbitCamera orbits around a center point. Z is up.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Elevation above the ground plane (radians)
	Yaw      float32 // Rotation around +Z, 0 looks toward +Y (radians)

	// Projection
	FovY float32 // radians
	Near float32
	Far  float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        30.0,
		Pitch:           0.9,
		Yaw:             0.0,
		FovY:            gomath.Pi / 4,
		Near:            0.1,
		Far:             1000.0,
		MinDistance:     2.0,
		MaxDistance:     500.0,
		MinPitch:        0.1,
		MaxPitch:        gomath.Pi / 2,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	horiz := c.Distance * float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: c.Center.X - horiz*float32(gomath.Sin(float64(c.Yaw))),
		Y: c.Center.Y - horiz*float32(gomath.Cos(float64(c.Yaw))),
		Z: c.Center.Z + c.Distance*float32(gomath.Sin(float64(c.Pitch))),
	}
}

// up is the screen-up direction: the horizontal view direction.
// It stays valid when looking straight down.
func (c *OrbitCamera) up() math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Sin(float64(c.Yaw))),
		Y: float32(gomath.Cos(float64(c.Yaw))),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, c.up())
}

// ProjectionMatrix returns the perspective projection for a viewport aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ScreenRay returns the world-space ray under a pixel of a viewport.
func (c *OrbitCamera) ScreenRay(x, y, width, height float32) picking.Ray {
	viewProj := c.ProjectionMatrix(width / height).Mul(c.ViewMatrix())
	return picking.ScreenToRay(x, y, width, height, viewProj.Inverse())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = min(max(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch), c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = min(max(c.Distance, c.MinDistance), c.MaxDistance)
}

// HandleMovement pans the center point relative to the current yaw.
func (c *OrbitCamera) HandleMovement(forward, right float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	sin := float32(gomath.Sin(float64(c.Yaw)))
	cos := float32(gomath.Cos(float64(c.Yaw)))

	c.Center.X += (sin*forward + cos*right) * speed
	c.Center.Y += (cos*forward - sin*right) * speed
}

// FitToBounds centers the camera on a box and backs off until it is in view.
func (c *OrbitCamera) FitToBounds(box picking.AABB) {
	if box.Empty() {
		return
	}
	c.Center = box.Min.Add(box.Max).Scale(0.5)

	radius := box.Max.Sub(box.Min).Length() / 2
	c.Distance = radius / float32(gomath.Sin(float64(c.FovY)/2))
	c.Distance = min(max(c.Distance, c.MinDistance), c.MaxDistance)
}
