package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/GlazeCut/internal/geometry"
	"github.com/piwi3910/GlazeCut/internal/model"
)

// AutoGeneratePanels partitions an edge's available length into a
// manufacturable set of panels from the standard width catalog.
//
// The available length is the edge length minus both corner offsets. Edges
// shorter than the short-edge threshold get a single clamped degenerate panel
// rather than none. Otherwise the panel count is fixed by the maximum panel
// width, and the per-panel width is either snapped to the catalog ladder
// (single panel), split exactly (free-width mode below the threshold), or
// found by an exhaustive two-size split search over the ladder.
func AutoGeneratePanels(spec model.GlazingSpec, edgeLength, startAngle, endAngle float64, startWall, endWall bool) []model.Panel {
	return generatePanels(spec, edgeLength, startAngle, endAngle, startWall, endWall, false)
}

// EvenDistributePanels is the free-glass-width sibling of AutoGeneratePanels:
// it always splits the available glass length into equal shares, skipping the
// catalog snap and the split search.
func EvenDistributePanels(spec model.GlazingSpec, edgeLength, startAngle, endAngle float64, startWall, endWall bool) []model.Panel {
	return generatePanels(spec, edgeLength, startAngle, endAngle, startWall, endWall, true)
}

func generatePanels(spec model.GlazingSpec, edgeLength, startAngle, endAngle float64, startWall, endWall, evenSplit bool) []model.Panel {
	left := CalculateOffset(spec, startAngle, startWall).Offset
	right := CalculateOffset(spec, endAngle, endWall).Offset
	available := edgeLength - left - right

	if available < spec.ShortEdgeThreshold {
		// Degenerate edge: one clamped panel rather than zero panels.
		p := model.NewPanel("Panel 1", math.Max(spec.MinPanelLength, math.Round(available)))
		p.OffsetLeft = geometry.Round1(left)
		p.OffsetRight = geometry.Round1(right)
		return []model.Panel{p}
	}

	numPanels := int(math.Ceil(available / spec.MaxPanelWidth))
	if numPanels < 1 {
		numPanels = 1
	}

	betweenOffsets := float64(numPanels-1) * spec.MiddleOffset * 2
	availableForGlass := available - betweenOffsets
	avg := availableForGlass / float64(numPanels)

	var lengths []float64
	switch {
	case evenSplit:
		lengths = equalSplit(numPanels, avg)
	case numPanels == 1:
		lengths = []float64{snapToStandard(avg)}
	case avg < spec.FreeWidthThreshold:
		// Free-width mode: exact split, no catalog search.
		lengths = equalSplit(numPanels, avg)
	default:
		lengths = searchSplit(spec, numPanels, avg, availableForGlass)
	}

	panels := make([]model.Panel, len(lengths))
	for i, length := range lengths {
		p := model.NewPanel(fmt.Sprintf("Panel %d", i+1), math.Max(spec.MinPanelLength, length))
		if i == 0 {
			p.OffsetLeft = geometry.Round1(left)
		} else {
			p.OffsetLeft = spec.MiddleOffset
		}
		if i == len(lengths)-1 {
			p.OffsetRight = geometry.Round1(right)
		} else {
			p.OffsetRight = spec.MiddleOffset
		}
		panels[i] = p
	}

	return assignEndLocks(panels)
}

// snapToStandard snaps an average width to the nearest catalog value. Below
// the catalog minimum the raw rounded value is kept (there is no smaller
// standard size to reach for).
func snapToStandard(avg float64) float64 {
	ladder := model.StandardPanelWidths
	if avg < ladder[0] {
		return math.Round(avg)
	}
	best := ladder[0]
	for _, w := range ladder[1:] {
		if math.Abs(avg-w) < math.Abs(avg-best) {
			best = w
		}
	}
	return best
}

// equalSplit returns n equal shares of n*avg, each rounded to the mm.
func equalSplit(n int, avg float64) []float64 {
	lengths := make([]float64, n)
	for i := range lengths {
		lengths[i] = math.Round(avg)
	}
	return lengths
}

// searchSplit exhaustively tries every (numLarge, numSmall) split over two
// adjacent catalog sizes. The scoring policy is a business rule: prefer the
// split with the smallest absolute deviation that does not undershoot by more
// than the tolerance; failing that, the smallest absolute deviation of any
// sign; failing everything, an equal free-width split.
func searchSplit(spec model.GlazingSpec, numPanels int, avg, availableForGlass float64) []float64 {
	ladder := model.StandardPanelWidths

	baseSize := ladder[len(ladder)-1]
	for _, w := range ladder {
		if w >= avg {
			baseSize = w
			break
		}
	}
	smallerSize := math.Max(ladder[0], baseSize-30)

	bestQualIdx := -1
	bestQualScore := 0.0
	bestAnyIdx := -1
	bestAnyScore := 0.0

	for numLarge := 0; numLarge <= numPanels; numLarge++ {
		numSmall := numPanels - numLarge
		total := float64(numLarge)*baseSize + float64(numSmall)*smallerSize
		score := total - availableForGlass

		if bestAnyIdx < 0 || math.Abs(score) < math.Abs(bestAnyScore) {
			bestAnyIdx = numLarge
			bestAnyScore = score
		}
		if score >= spec.SplitTolerance {
			if bestQualIdx < 0 || math.Abs(score) < math.Abs(bestQualScore) {
				bestQualIdx = numLarge
				bestQualScore = score
			}
		}
	}

	numLarge := bestQualIdx
	if numLarge < 0 {
		numLarge = bestAnyIdx
	}
	if numLarge < 0 {
		return equalSplit(numPanels, avg)
	}

	// Smaller size first, then larger: manufacturing convention for the
	// default right-opening layout.
	lengths := make([]float64, 0, numPanels)
	for i := 0; i < numPanels-numLarge; i++ {
		lengths = append(lengths, smallerSize)
	}
	for i := 0; i < numLarge; i++ {
		lengths = append(lengths, baseSize)
	}
	return lengths
}

// assignEndLocks gives the first left-opening panel and the last
// right-opening panel a single lock. A double lock set by the user is never
// downgraded.
func assignEndLocks(panels []model.Panel) []model.Panel {
	for i := range panels {
		if panels[i].Opening == model.OpeningLeft {
			if panels[i].Lock != model.LockDouble {
				panels[i].Lock = model.LockSingle
			}
			break
		}
	}
	for i := len(panels) - 1; i >= 0; i-- {
		if panels[i].Opening == model.OpeningRight {
			if panels[i].Lock != model.LockDouble {
				panels[i].Lock = model.LockSingle
			}
			break
		}
	}
	return panels
}

// RecalcPanelOffsets re-derives every offsetLeft/offsetRight for an existing
// panel list without resizing the panels. Edge-boundary panels get the corner
// offsets; interior boundaries get the passruta offset when either neighbour
// across the boundary is a fixed pane, else the normal middle offset.
func RecalcPanelOffsets(spec model.GlazingSpec, panels []model.Panel, startAngle, endAngle float64, startWall, endWall bool) []model.Panel {
	if len(panels) == 0 {
		return []model.Panel{}
	}
	left := CalculateOffset(spec, startAngle, startWall).Offset
	right := CalculateOffset(spec, endAngle, endWall).Offset

	out := make([]model.Panel, len(panels))
	copy(out, panels)

	for i := range out {
		if i == 0 {
			out[i].OffsetLeft = geometry.Round1(left)
		} else {
			out[i].OffsetLeft = boundaryOffset(spec, out[i-1], out[i])
		}
		if i == len(out)-1 {
			out[i].OffsetRight = geometry.Round1(right)
		} else {
			out[i].OffsetRight = boundaryOffset(spec, out[i], out[i+1])
		}
	}
	return out
}

// boundaryOffset returns the per-side pull-back at the boundary between two
// neighbouring panels.
func boundaryOffset(spec model.GlazingSpec, a, b model.Panel) float64 {
	if a.Opening == model.OpeningFixed || b.Opening == model.OpeningFixed {
		return spec.PassrutaOffset
	}
	return spec.MiddleOffset
}
