package model

import "math"

// SealingSummary holds the calculated brush seal requirements for a project.
// Every pane gets a vertical brush strip on both side profiles.
type SealingSummary struct {
	TotalLinearMM    float64 `json:"total_linear_mm"`     // Total seal length in mm (no waste)
	TotalLinearM     float64 `json:"total_linear_m"`      // Total seal length in meters (no waste)
	WastePercent     float64 `json:"waste_percent"`       // Waste percentage applied
	TotalWithWasteMM float64 `json:"total_with_waste_mm"` // Total with waste in mm
	TotalWithWasteM  float64 `json:"total_with_waste_m"`  // Total with waste in meters
	PanelCount       int     `json:"panel_count"`         // Number of panes needing seals
	StripCount       int     `json:"strip_count"`         // Total number of vertical strips
}

// stripsPerPanel is the number of vertical brush seal strips per pane.
const stripsPerPanel = 2

// CalculateSealing computes the total brush seal length for a set of computed
// edges. wastePercent is the additional percentage to add for waste.
func CalculateSealing(edges []ComputedEdgeData, frameHeight, wastePercent float64) SealingSummary {
	var totalMM float64
	var panelCount int

	for _, e := range edges {
		n := len(e.PanelFittings)
		if n == 0 {
			continue
		}
		totalMM += float64(n*stripsPerPanel) * frameHeight
		panelCount += n
	}

	wasteFactor := 1.0 + (wastePercent / 100.0)
	totalWithWaste := math.Ceil(totalMM * wasteFactor)

	return SealingSummary{
		TotalLinearMM:    totalMM,
		TotalLinearM:     totalMM / 1000.0,
		WastePercent:     wastePercent,
		TotalWithWasteMM: totalWithWaste,
		TotalWithWasteM:  totalWithWaste / 1000.0,
		PanelCount:       panelCount,
		StripCount:       panelCount * stripsPerPanel,
	}
}
