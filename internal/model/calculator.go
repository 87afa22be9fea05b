package model

import "math"

// GlassEstimate holds the results of a glass purchasing calculation.
type GlassEstimate struct {
	PanelCount      int     `json:"panel_count"`        // Number of panes to order
	TotalGlassArea  float64 `json:"total_glass_area"`   // Net pane area (sq mm)
	TotalGlassSqM   float64 `json:"total_glass_sqm"`    // Net pane area in square meters
	WastePercent    float64 `json:"waste_percent"`      // Waste factor applied (e.g., 10 for 10%)
	AreaWithWaste   float64 `json:"area_with_waste"`    // Area to order including waste (sq mm)
	SqMWithWaste    float64 `json:"sqm_with_waste"`     // Area to order in square meters
	EstimatedCost   float64 `json:"estimated_cost"`     // Total cost if pricing available
	PricePerSqMeter float64 `json:"price_per_sq_meter"` // Price used for estimation
}

const sqmmPerSquareMeter = 1_000_000.0

// CalculateGlassEstimate computes how much glass to order for a set of
// computed edges. Wall edges contribute nothing since they carry no panels.
func CalculateGlassEstimate(edges []ComputedEdgeData, wastePercent, pricePerSqMeter float64) GlassEstimate {
	var totalArea float64
	var count int
	for _, e := range edges {
		for _, f := range e.PanelFittings {
			if f.GlassWidth <= 0 || f.GlassHeight <= 0 {
				continue
			}
			totalArea += f.GlassWidth * f.GlassHeight
			count++
		}
	}

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := math.Ceil(totalArea * wasteFactor)

	return GlassEstimate{
		PanelCount:      count,
		TotalGlassArea:  totalArea,
		TotalGlassSqM:   totalArea / sqmmPerSquareMeter,
		WastePercent:    wastePercent,
		AreaWithWaste:   withWaste,
		SqMWithWaste:    withWaste / sqmmPerSquareMeter,
		EstimatedCost:   withWaste / sqmmPerSquareMeter * pricePerSqMeter,
		PricePerSqMeter: pricePerSqMeter,
	}
}
