package terrain

import (
	gomath "math"

	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// UVScaler maps cartesian positions into the unit square spanned by the
// outer extent of a set of cells.
type UVScaler struct {
	Min  math.Vec2
	Size math.Vec2
}

// NewUVScaler fits the scaler to every cell of coords, corners included.
// An empty set yields the identity mapping.
func NewUVScaler(coords hex.Set) UVScaler {
	if coords.Len() == 0 {
		return UVScaler{Size: math.Vec2{X: 1, Y: 1}}
	}

	halfW := hex.Radius * float32(gomath.Sqrt(3)) / 2
	halfH := hex.Radius

	lo := math.Vec2{X: gomath.MaxFloat32, Y: gomath.MaxFloat32}
	hi := math.Vec2{X: -gomath.MaxFloat32, Y: -gomath.MaxFloat32}
	for c := range coords {
		p := c.Position()
		lo.X = min(lo.X, p.X-halfW)
		lo.Y = min(lo.Y, p.Y-halfH)
		hi.X = max(hi.X, p.X+halfW)
		hi.Y = max(hi.Y, p.Y+halfH)
	}
	return UVScaler{Min: lo, Size: hi.Sub(lo)}
}

// UV returns the normalized position of p.
func (s UVScaler) UV(p math.Vec2) math.Vec2 {
	return math.Vec2{
		X: (p.X - s.Min.X) / s.Size.X,
		Y: (p.Y - s.Min.Y) / s.Size.Y,
	}
}
