package engine

import (
	"github.com/piwi3910/GlazeCut/internal/geometry"
	"github.com/piwi3910/GlazeCut/internal/model"
)

// GeneratorComparison holds the outcome of running both panel generators on
// the same edge, so the host can show the user what toggling free glass
// width mode would change.
type GeneratorComparison struct {
	Standard     []model.Panel `json:"standard"`
	Even         []model.Panel `json:"even"`
	StandardSpel float64       `json:"standard_spel"` // residual gap with catalog sizing
	EvenSpel     float64       `json:"even_spel"`     // residual gap with equal shares
}

// CompareGenerators runs the catalog generator and the even-distribution
// generator for the same edge and reports both layouts with their residual
// gaps.
func CompareGenerators(spec model.GlazingSpec, edgeLength, startAngle, endAngle float64, startWall, endWall bool) GeneratorComparison {
	standard := AutoGeneratePanels(spec, edgeLength, startAngle, endAngle, startWall, endWall)
	even := EvenDistributePanels(spec, edgeLength, startAngle, endAngle, startWall, endWall)

	return GeneratorComparison{
		Standard:     standard,
		Even:         even,
		StandardSpel: geometry.Round1(edgeLength - panelFootprint(standard)),
		EvenSpel:     geometry.Round1(edgeLength - panelFootprint(even)),
	}
}

// panelFootprint sums the full footprint of a panel list along its edge.
func panelFootprint(panels []model.Panel) float64 {
	var total float64
	for _, p := range panels {
		total += p.Length + p.OffsetLeft + p.OffsetRight
	}
	return total
}
