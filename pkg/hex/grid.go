package hex

import (
	"iter"
	gomath "math"

	"github.com/Faultbox/hexterrain/pkg/math"
)

// Ring returns the coordinates at exactly distance k from center,
// starting from direction 4 and walking the six sides in order.
// If k == 0, returns [center].
func Ring(center Coord, k int) []Coord {
	if k <= 0 {
		return []Coord{center}
	}
	res := make([]Coord, 0, 6*k)
	cur := center.Add(directions[4].Scale(k))
	for side := range 6 {
		for range k {
			res = append(res, cur)
			cur = cur.Add(directions[side])
		}
	}
	return res
}

// Disk returns all coordinates at distance <= k from center.
func Disk(center Coord, k int) []Coord {
	res := make([]Coord, 0, 1+3*k*(k+1))
	for q := -k; q <= k; q++ {
		for r := max(-k, -q-k); r <= min(k, -q+k); r++ {
			res = append(res, center.Add(Coord{q, r}))
		}
	}
	return res
}

// CartesianRectangleBounds returns the cells holding the lower-left and the
// upper-right corners of the rectangle spanned by two cartesian points.
func CartesianRectangleBounds(a, b math.Vec2) (lo, hi Coord) {
	minP := math.Vec2{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	maxP := math.Vec2{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	return AtPosition(minP), AtPosition(maxP)
}

// WithinRect yields every cell whose center lies inside the cartesian box
// spanned by the centers of a and b. The sequence is finite and can be
// ranged over any number of times.
func WithinRect(a, b Coord) iter.Seq[Coord] {
	pa, pb := a.Position(), b.Position()
	minX := float64(min(pa.X, pb.X))
	maxX := float64(max(pa.X, pb.X))
	rLo, rHi := min(a.R, b.R), max(a.R, b.R)

	const eps = 1e-4
	step := float64(sqrt3 * Radius)

	return func(yield func(Coord) bool) {
		for r := rLo; r <= rHi; r++ {
			// Center x of (q, r) is step * (q + r/2).
			shift := float64(r) / 2
			qLo := int(gomath.Ceil(minX/step - shift - eps))
			qHi := int(gomath.Floor(maxX/step - shift + eps))
			for q := qLo; q <= qHi; q++ {
				if !yield(Coord{Q: q, R: r}) {
					return
				}
			}
		}
	}
}
