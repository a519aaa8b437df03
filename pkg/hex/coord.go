// Package hex implements an axial coordinate lattice over a pointy-top hexagonal tiling.
//
// Layout conventions (unit radius, X right, Y up):
//   - neighbor 0 is to the right, the others proceed counter-clockwise
//   - corner 0 is at the upper right, the others proceed counter-clockwise
//   - corner i sits between neighbor i and neighbor i+1
package hex

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/hexterrain/pkg/math"
)

// Radius is the distance from a cell center to any of its corners.
const Radius float32 = 1.0

var sqrt3 = float32(gomath.Sqrt(3))

// Coord is an axial (q, r) coordinate. The implicit cube coordinate is s = -q - r.
type Coord struct {
	Q int
	R int
}

// Origin is the center cell of every grid.
var Origin = Coord{}

// directions holds the axial offsets of the six neighbors, counter-clockwise from the right.
var directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

// corners holds the unit hexagon corner offsets, counter-clockwise from the upper right.
var corners = func() [6]math.Vec2 {
	var c [6]math.Vec2
	for i := range c {
		angle := gomath.Pi/6 + float64(i)*gomath.Pi/3
		c[i] = math.Vec2{
			X: float32(gomath.Cos(angle)) * Radius,
			Y: float32(gomath.Sin(angle)) * Radius,
		}
	}
	return c
}()

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// String returns "(q,r)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// Add returns c + other.
func (c Coord) Add(other Coord) Coord {
	return Coord{c.Q + other.Q, c.R + other.R}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord {
	return Coord{c.Q * k, c.R * k}
}

// Neighbor returns the adjacent coordinate across edge i. i is taken mod 6.
func (c Coord) Neighbor(i int) Coord {
	return c.Add(directions[mod6(i)])
}

// Neighbors returns the six adjacent coordinates.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, dir := range directions {
		result[i] = c.Add(dir)
	}
	return result
}

// Position returns the cell center on the cartesian plane.
func (c Coord) Position() math.Vec2 {
	return math.Vec2{
		X: Radius * sqrt3 * (float32(c.Q) + float32(c.R)/2),
		Y: Radius * 1.5 * float32(c.R),
	}
}

// Corner returns the cartesian position of corner i of this cell.
func (c Coord) Corner(i int) math.Vec2 {
	return c.Position().Add(CornerVector(i))
}

// CornerVector returns the unit hexagon offset of corner i. i is taken mod 6.
func CornerVector(i int) math.Vec2 {
	return corners[mod6(i)]
}

// Distance returns the lattice distance between two coordinates.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

// AtPosition returns the cell containing a cartesian point.
func AtPosition(p math.Vec2) Coord {
	x := float64(p.X / Radius)
	y := float64(p.Y / Radius)
	q := gomath.Sqrt(3)/3*x - y/3
	r := 2.0 / 3.0 * y
	return round(q, r)
}

// round converts fractional axial coordinates to the nearest cell using cube rounding.
func round(q, r float64) Coord {
	s := -q - r
	rq, rr, rs := gomath.Round(q), gomath.Round(r), gomath.Round(s)

	dq := gomath.Abs(rq - q)
	dr := gomath.Abs(rr - r)
	ds := gomath.Abs(rs - s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return Coord{Q: int(rq), R: int(rr)}
}

func mod6(i int) int {
	i %= 6
	if i < 0 {
		i += 6
	}
	return i
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
