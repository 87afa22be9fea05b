package geometry

import (
	"math"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// offsetSegment is one original guide segment shifted sideways along its
// left-hand normal.
type offsetSegment struct {
	a, b   model.Point2D
	dx, dy float64 // unit direction of the original segment
}

// CalculateOffsetPoints computes a parallel polyline shifted sideways by
// offsetDistance along each segment's left-hand normal. Interior vertices are
// the pairwise intersections of consecutive offset segments (true miter
// join); when consecutive segments are parallel the raw offset endpoint is
// used instead. The first and last points are additionally pulled inward
// along their own segment's direction by startInset and endInset, which
// shortens a guide overlay away from the true corners.
//
// Fewer than two input points yields an empty result.
func CalculateOffsetPoints(points []model.Point2D, offsetDistance, startInset, endInset float64) []model.Point2D {
	if len(points) < 2 {
		return nil
	}

	segs := make([]offsetSegment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		dx := points[i+1].X - points[i].X
		dy := points[i+1].Y - points[i].Y
		length := math.Sqrt(dx*dx + dy*dy)
		if length < degenerateEpsilon {
			// Zero-length segment: carry the previous direction so the
			// chain stays index-stable.
			if len(segs) > 0 {
				prev := segs[len(segs)-1]
				dx, dy = prev.dx, prev.dy
			} else {
				dx, dy = 1, 0
			}
		} else {
			dx /= length
			dy /= length
		}
		nx, ny := Perpendicular(dx, dy)
		segs = append(segs, offsetSegment{
			a:  model.Point2D{X: points[i].X + nx*offsetDistance, Y: points[i].Y + ny*offsetDistance},
			b:  model.Point2D{X: points[i+1].X + nx*offsetDistance, Y: points[i+1].Y + ny*offsetDistance},
			dx: dx,
			dy: dy,
		})
	}

	result := make([]model.Point2D, 0, len(points))

	first := segs[0]
	result = append(result, model.Point2D{
		X: first.a.X + first.dx*startInset,
		Y: first.a.Y + first.dy*startInset,
	})

	for i := 1; i < len(segs); i++ {
		prev := segs[i-1]
		cur := segs[i]
		pt, ok := LineLineIntersection(prev.a, prev.dx, prev.dy, cur.a, cur.dx, cur.dy)
		if !ok {
			// Parallel neighbours: fall back to the raw offset endpoint.
			pt = prev.b
		}
		result = append(result, pt)
	}

	last := segs[len(segs)-1]
	result = append(result, model.Point2D{
		X: last.b.X - last.dx*endInset,
		Y: last.b.Y - last.dy*endInset,
	})

	return result
}
