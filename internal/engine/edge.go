package engine

import (
	"github.com/piwi3910/GlazeCut/internal/geometry"
	"github.com/piwi3910/GlazeCut/internal/model"
)

// SignedAngleAt returns the signed interior angle at vertex, in degrees: the
// magnitude comes from the interior angle between the rays to prev and next,
// the sign from the turn direction of the chain (left turn positive).
func SignedAngleAt(prev, vertex, next model.Point2D) float64 {
	a := geometry.AngleBetweenSegments(prev, vertex, next)
	cross := (vertex.X-prev.X)*(next.Y-vertex.Y) - (vertex.Y-prev.Y)*(next.X-vertex.X)
	if cross < 0 {
		return -a
	}
	return a
}

// ComputeEdgeData aggregates everything the engine knows about one edge:
// geometry, wall connections, corner offsets, panel fittings, residual gap,
// and rail cut lengths. Returns nil for an out-of-range index. All numeric
// fields are rounded to 0.1 mm on output; the underlying computation is not.
//
// A terminal edge has angle 0 and is never wall-connected on its open end;
// an interior end is wall-connected iff the adjacent edge is classified wall.
func ComputeEdgeData(spec model.GlazingSpec, guide model.Guide, configs []model.EdgeConfig, index int, frameHeight float64) *model.ComputedEdgeData {
	if index < 0 || index >= guide.EdgeCount() || index >= len(configs) {
		return nil
	}

	start := guide[index]
	end := guide[index+1]
	edgeLength := geometry.Distance(start, end)

	startAngle := 0.0
	if index > 0 {
		startAngle = SignedAngleAt(guide[index-1], start, end)
	}
	endAngle := 0.0
	if index+2 < len(guide) {
		endAngle = SignedAngleAt(start, end, guide[index+2])
	}

	startWall := index > 0 && configs[index-1].Class == model.EdgeWall
	endWall := index+1 < len(configs) && configs[index+1].Class == model.EdgeWall

	startOffset := CalculateOffset(spec, startAngle, startWall)
	endOffset := CalculateOffset(spec, endAngle, endWall)

	cfg := configs[index]
	var total float64
	for _, p := range cfg.Panels {
		total += p.Length + p.OffsetLeft + p.OffsetRight
	}

	fittings := []model.PanelFittingResult{}
	if cfg.Class != model.EdgeWall {
		fittings = CalculatePanelFittings(spec, cfg.Panels, startAngle, endAngle, frameHeight)
	}

	return &model.ComputedEdgeData{
		SideNumber:           index + 1,
		EdgeLength:           geometry.Round1(edgeLength),
		StartAngle:           geometry.Round1(startAngle),
		EndAngle:             geometry.Round1(endAngle),
		StartConnectedToWall: startWall,
		EndConnectedToWall:   endWall,
		ProfileOffsetLeft:    geometry.Round1(startOffset.ProfileOffset),
		ProfileOffsetRight:   geometry.Round1(endOffset.ProfileOffset),
		TotalModuleLength:    geometry.Round1(total),
		SpelGuide:            geometry.Round1(edgeLength - total),
		CutLengths:           CalculateCutLengths(spec, edgeLength, startOffset.ProfileOffset, endOffset.ProfileOffset, startAngle, endAngle),
		PanelFittings:        fittings,
	}
}

// ComputeAllEdges runs ComputeEdgeData for every edge of the guide. Edges
// without a matching config are skipped, so the result length equals
// min(guide.EdgeCount(), len(configs)).
func ComputeAllEdges(spec model.GlazingSpec, guide model.Guide, configs []model.EdgeConfig, frameHeight float64) []model.ComputedEdgeData {
	var out []model.ComputedEdgeData
	for i := 0; i < guide.EdgeCount(); i++ {
		if data := ComputeEdgeData(spec, guide, configs, i, frameHeight); data != nil {
			out = append(out, *data)
		}
	}
	return out
}

// AutoGenerateForEdge regenerates the panel list for one edge from the guide
// geometry, using the same angle and wall-connection derivation as
// ComputeEdgeData. evenSplit selects the free-glass-width generator. Returns
// nil for an out-of-range index and an empty list for a wall edge.
func AutoGenerateForEdge(spec model.GlazingSpec, guide model.Guide, configs []model.EdgeConfig, index int, evenSplit bool) []model.Panel {
	if index < 0 || index >= guide.EdgeCount() || index >= len(configs) {
		return nil
	}
	if configs[index].Class == model.EdgeWall {
		return []model.Panel{}
	}

	start := guide[index]
	end := guide[index+1]
	edgeLength := geometry.Distance(start, end)

	startAngle := 0.0
	if index > 0 {
		startAngle = SignedAngleAt(guide[index-1], start, end)
	}
	endAngle := 0.0
	if index+2 < len(guide) {
		endAngle = SignedAngleAt(start, end, guide[index+2])
	}

	startWall := index > 0 && configs[index-1].Class == model.EdgeWall
	endWall := index+1 < len(configs) && configs[index+1].Class == model.EdgeWall

	if evenSplit {
		return EvenDistributePanels(spec, edgeLength, startAngle, endAngle, startWall, endWall)
	}
	return AutoGeneratePanels(spec, edgeLength, startAngle, endAngle, startWall, endWall)
}
