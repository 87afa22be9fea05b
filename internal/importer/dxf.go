package importer

import (
	"fmt"
	"math"

	"github.com/piwi3910/GlazeCut/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// segment represents a line segment between two 2D points, used for chaining
// disconnected LINE entities into one polyline.
type segment struct {
	start model.Point2D
	end   model.Point2D
}

// chainTolerance is the maximum endpoint distance (mm) for two segments to
// be considered connected.
const chainTolerance = 0.01

// ImportGuideDXF imports a guide polyline from a DXF file. The first
// LWPOLYLINE wins; otherwise connected LINE entities are chained into an
// open polyline. Closed shapes are rejected since a guide never closes.
func ImportGuideDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			guide := lwPolylineToGuide(e)
			if guide.EdgeCount() == 0 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 2 vertices")
				continue
			}
			result.Guide = guide
			return result

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point2D{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point2D{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	if len(segments) == 0 {
		result.Errors = append(result.Errors, "No polyline or line entities found in DXF file")
		return result
	}

	guide, leftover := chainSegments(segments)
	if leftover > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d disconnected line(s) ignored", leftover))
	}
	if guide.EdgeCount() == 0 {
		result.Errors = append(result.Errors, "Could not chain LINE entities into a polyline")
		return result
	}

	result.Guide = guide
	return result
}

// lwPolylineToGuide converts a DXF LWPOLYLINE entity to a guide. Bulged
// (arc) vertices are flattened to their endpoints; a glazing guide is
// straight runs only.
func lwPolylineToGuide(lw *entity.LwPolyline) model.Guide {
	var guide model.Guide
	for _, v := range lw.Vertices {
		guide = append(guide, model.Point2D{X: v[0], Y: v[1]})
	}
	return guide
}

// chainSegments connects loose LINE segments into one open polyline,
// starting from the first segment and greedily extending at the tail.
// Returns the chained guide and the number of segments left unconnected.
func chainSegments(segments []segment) (model.Guide, int) {
	if len(segments) == 0 {
		return nil, 0
	}

	used := make([]bool, len(segments))
	guide := model.Guide{segments[0].start, segments[0].end}
	used[0] = true
	remaining := len(segments) - 1

	for remaining > 0 {
		tail := guide[len(guide)-1]
		extended := false
		for i, s := range segments {
			if used[i] {
				continue
			}
			if pointsClose(tail, s.start) {
				guide = append(guide, s.end)
			} else if pointsClose(tail, s.end) {
				guide = append(guide, s.start)
			} else {
				continue
			}
			used[i] = true
			remaining--
			extended = true
			break
		}
		if !extended {
			break
		}
	}

	return guide, remaining
}

func pointsClose(a, b model.Point2D) bool {
	return math.Abs(a.X-b.X) < chainTolerance && math.Abs(a.Y-b.Y) < chainTolerance
}
