// Package geometry provides the 2D vector and polyline primitives underlying
// the glazing layout engine: distances, interior angles, line intersection,
// parallel-offset polylines, and piecewise-linear table interpolation.
//
// All functions are pure. Degenerate input never panics; it produces the
// documented sentinel value instead (180 degrees for a degenerate angle, no
// result for parallel lines).
package geometry

import (
	"math"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// parallelEpsilon is the minimum cross product magnitude below which two
// directions are treated as parallel.
const parallelEpsilon = 1e-9

// degenerateEpsilon is the minimum ray length for an angle to be meaningful.
const degenerateEpsilon = 1e-9

// Distance returns the Euclidean distance between two points in mm.
func Distance(a, b model.Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Perpendicular returns the unit left-hand normal of a direction vector.
// A zero-length input yields the zero vector.
func Perpendicular(dx, dy float64) (float64, float64) {
	length := math.Sqrt(dx*dx + dy*dy)
	if length < degenerateEpsilon {
		return 0, 0
	}
	return -dy / length, dx / length
}

// LineLineIntersection intersects two infinite lines, each given as a point
// and a direction. The second return value is false when the lines are
// parallel or near-parallel.
func LineLineIntersection(p1 model.Point2D, d1x, d1y float64, p2 model.Point2D, d2x, d2y float64) (model.Point2D, bool) {
	cross := d1x*d2y - d1y*d2x
	if math.Abs(cross) < parallelEpsilon {
		return model.Point2D{}, false
	}
	t := ((p2.X-p1.X)*d2y - (p2.Y-p1.Y)*d2x) / cross
	return model.Point2D{
		X: p1.X + d1x*t,
		Y: p1.Y + d1y*t,
	}, true
}

// AngleBetweenSegments returns the interior angle at vertex between the rays
// to p1 and p3, in degrees, range [0,180]. Either ray collapsing to a point
// is degenerate and returns 180 ("no turn").
func AngleBetweenSegments(p1, vertex, p3 model.Point2D) float64 {
	v1x := p1.X - vertex.X
	v1y := p1.Y - vertex.Y
	v2x := p3.X - vertex.X
	v2y := p3.Y - vertex.Y

	l1 := math.Sqrt(v1x*v1x + v1y*v1y)
	l2 := math.Sqrt(v2x*v2x + v2y*v2y)
	if l1 < degenerateEpsilon || l2 < degenerateEpsilon {
		return 180
	}

	cos := (v1x*v2x + v1y*v2y) / (l1 * l2)
	cos = Clamp(cos, -1, 1)
	return math.Acos(cos) * 180 / math.Pi
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round1 rounds to one decimal place. Used on every presentation value so
// displayed numbers stay stable; internal computation is never rounded.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
