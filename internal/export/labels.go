package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/GlazeCut/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each panel label's QR code.
type LabelInfo struct {
	PanelName   string  `json:"name"`
	SideNumber  int     `json:"side"`
	Length      float64 `json:"length_mm"`
	GlassWidth  float64 `json:"glass_width_mm"`
	GlassHeight float64 `json:"glass_height_mm"`
	Opening     string  `json:"opening"`
	Lock        string  `json:"lock"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows
// per page). Each label cell is approximately 66.7mm x 25.4mm on US Letter.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels for every panel in the
// layout. Each label carries the panel name, dimensions, and a QR code
// encoding the panel metadata as JSON.
func ExportLabels(path string, p model.Project, edges []model.ComputedEdgeData) error {
	labels := CollectLabelInfos(p, edges)
	if len(labels) == 0 {
		return fmt.Errorf("no panels to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PanelName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, idx int, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%d_%s", idx, info.SideNumber, info.PanelName)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Panel name (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	name := info.PanelName
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	// Glass dimensions
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("glass %.1f x %.1f mm", info.GlassWidth, info.GlassHeight)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Side and hardware info
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	sideInfo := fmt.Sprintf("Side %d | %.0f mm | %s %s", info.SideNumber, info.Length, info.Opening, info.Lock)
	pdf.CellFormat(textW, 3, sideInfo, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a computed layout for
// use in testing or alternative export formats.
func CollectLabelInfos(p model.Project, edges []model.ComputedEdgeData) []LabelInfo {
	var labels []LabelInfo
	for _, edge := range edges {
		idx := edge.SideNumber - 1
		if idx < 0 || idx >= len(p.EdgeConfigs) {
			continue
		}
		panels := p.EdgeConfigs[idx].Panels
		for i, f := range edge.PanelFittings {
			if i >= len(panels) {
				break
			}
			labels = append(labels, LabelInfo{
				PanelName:   panels[i].Name,
				SideNumber:  edge.SideNumber,
				Length:      panels[i].Length,
				GlassWidth:  f.GlassWidth,
				GlassHeight: f.GlassHeight,
				Opening:     string(panels[i].Opening),
				Lock:        string(panels[i].Lock),
			})
		}
	}
	return labels
}
