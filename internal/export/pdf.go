// Package export generates the manufacturing paperwork for a computed
// glazing layout: PDF drawing sheets, Excel cut lists, DXF plan drawings,
// and QR-coded panel labels.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/GlazeCut/internal/model"
)

// panelColor represents an RGB color for a drawn panel.
type panelColor struct {
	R, G, B int
}

// panelColors is the rotation of fill colors for panel elevations.
var panelColors = []panelColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	tableHeight  = 60.0
)

// ExportPDF generates a PDF document for a computed glazing layout. Each
// glazed edge is rendered on its own page as a scaled elevation with its cut
// length table, followed by a summary page.
func ExportPDF(path string, p model.Project, edges []model.ComputedEdgeData) error {
	if len(edges) == 0 {
		return fmt.Errorf("no edges to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, edge := range edges {
		pdf.AddPage()
		cfg := model.EdgeConfig{}
		if edge.SideNumber-1 < len(p.EdgeConfigs) {
			cfg = p.EdgeConfigs[edge.SideNumber-1]
		}
		renderEdgePage(pdf, edge, cfg, p.FrameHeight)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, p, edges)

	return pdf.OutputFileAndClose(path)
}

// renderEdgePage draws a single edge elevation on the current PDF page.
func renderEdgePage(pdf *fpdf.Fpdf, edge model.ComputedEdgeData, cfg model.EdgeConfig, frameHeight float64) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	kind := "Glazing"
	if cfg.Class == model.EdgeWall {
		kind = "Wall"
	}
	title := fmt.Sprintf("Side %d: %s (%.1f mm)", edge.SideNumber, kind, edge.EdgeLength)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Panels: %d | Angles: %.1f / %.1f | Module: %.1f mm | Spel: %.1f mm",
		len(cfg.Panels), edge.StartAngle, edge.EndAngle, edge.TotalModuleLength, edge.SpelGuide)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Elevation drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - tableHeight

	scaleX := drawWidth / edge.EdgeLength
	scaleY := drawHeight / frameHeight
	scale := math.Min(scaleX, scaleY)

	canvasW := edge.EdgeLength * scale
	canvasH := frameHeight * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Frame outline
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Panels, positioned by their running footprint
	x := 0.0
	for i, p := range cfg.Panels {
		x += p.OffsetLeft
		col := panelColors[i%len(panelColors)]
		pw := p.Length * scale
		px := offsetX + x*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, offsetY, pw, canvasH, "FD")

		if pw > 15 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(0, 0, 0)
			label := fmt.Sprintf("%s %.0f", string(p.Opening), p.Length)
			labelW := pdf.GetStringWidth(label)
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, offsetY+canvasH/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}

		x += p.Length + p.OffsetRight
	}

	// Dimension annotation below the frame
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	widthLabel := fmt.Sprintf("%.1f mm", edge.EdgeLength)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	renderCutLengthTable(pdf, edge, offsetY+canvasH+8)
}

// renderCutLengthTable draws the four rail cut lengths for an edge.
func renderCutLengthTable(pdf *fpdf.Fpdf, edge model.ComputedEdgeData, y float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 6, "Cut Lengths", "", 0, "L", false, 0, "")
	y += 7

	headers := []string{"Underskena", "Overskena", "Overhallare", "Cover Profile"}
	values := []float64{
		edge.CutLengths.Underskena,
		edge.CutLengths.Overskena,
		edge.CutLengths.Overhallare,
		edge.CutLengths.CoverProfile,
	}
	colWidth := 45.0

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for _, h := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidth, 6, h, "1", 0, "C", true, 0, "")
		xPos += colWidth
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(255, 255, 255)
	xPos = marginLeft
	for _, v := range values {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidth, 6, fmt.Sprintf("%.1f mm", v), "1", 0, "C", true, 0, "")
		xPos += colWidth
	}
}

// renderSummaryPage draws the final summary page with per-edge totals and
// the glass purchasing estimate.
func renderSummaryPage(pdf *fpdf.Fpdf, p model.Project, edges []model.ComputedEdgeData) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Glazing Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Per-edge breakdown table
	colWidths := []float64{15, 25, 25, 20, 20, 35, 35, 35, 35}
	headers := []string{"Side", "Length", "Panels", "Start", "End", "Underskena", "Overskena", "Overhallare", "Cover"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, edge := range edges {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", edge.SideNumber),
			fmt.Sprintf("%.1f", edge.EdgeLength),
			fmt.Sprintf("%d", len(edge.PanelFittings)),
			fmt.Sprintf("%.1f", edge.StartAngle),
			fmt.Sprintf("%.1f", edge.EndAngle),
			fmt.Sprintf("%.1f", edge.CutLengths.Underskena),
			fmt.Sprintf("%.1f", edge.CutLengths.Overskena),
			fmt.Sprintf("%.1f", edge.CutLengths.Overhallare),
			fmt.Sprintf("%.1f", edge.CutLengths.CoverProfile),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Glass and sealing totals
	y += 8
	glass := model.CalculateGlassEstimate(edges, 0, 0)
	sealing := model.CalculateSealing(edges, p.FrameHeight, 0)

	summaryItems := []struct {
		label string
		value string
	}{
		{"Frame Height", fmt.Sprintf("%.0f mm", p.FrameHeight)},
		{"Glass Panes", fmt.Sprintf("%d", glass.PanelCount)},
		{"Glass Area", fmt.Sprintf("%.2f m²", glass.TotalGlassSqM)},
		{"Brush Seal", fmt.Sprintf("%.1f m", sealing.TotalLinearM)},
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Totals", "", 0, "L", false, 0, "")
	y += 9

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by GlazeCut - Balcony Glazing Calculator", "", 0, "C", false, 0, "")
}
