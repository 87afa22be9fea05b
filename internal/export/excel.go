package export

import (
	"fmt"

	"github.com/piwi3910/GlazeCut/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportExcel writes the computed layout to an Excel workbook: one sheet of
// per-edge cut lengths, one sheet of per-panel glass sizes and hardware, and
// a totals sheet with the glass and sealing estimates.
func ExportExcel(path string, p model.Project, edges []model.ComputedEdgeData) error {
	if len(edges) == 0 {
		return fmt.Errorf("no edges to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Edges"); err != nil {
		return err
	}
	if _, err := f.NewSheet("Panels"); err != nil {
		return err
	}
	if _, err := f.NewSheet("Totals"); err != nil {
		return err
	}

	if err := writeEdgesSheet(f, edges); err != nil {
		return err
	}
	if err := writePanelsSheet(f, p, edges); err != nil {
		return err
	}
	if err := writeTotalsSheet(f, p, edges); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeEdgesSheet(f *excelize.File, edges []model.ComputedEdgeData) error {
	headers := []string{
		"Side", "Length (mm)", "Start Angle", "End Angle",
		"Start Wall", "End Wall", "Panels", "Module (mm)", "Spel (mm)",
		"Underskena", "Overskena", "Overhallare", "Cover Profile",
	}
	if err := writeRow(f, "Edges", 1, headers); err != nil {
		return err
	}

	for i, e := range edges {
		row := []interface{}{
			e.SideNumber, e.EdgeLength, e.StartAngle, e.EndAngle,
			e.StartConnectedToWall, e.EndConnectedToWall,
			len(e.PanelFittings), e.TotalModuleLength, e.SpelGuide,
			e.CutLengths.Underskena, e.CutLengths.Overskena,
			e.CutLengths.Overhallare, e.CutLengths.CoverProfile,
		}
		if err := writeRowValues(f, "Edges", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writePanelsSheet(f *excelize.File, p model.Project, edges []model.ComputedEdgeData) error {
	headers := []string{
		"Side", "Panel", "Length (mm)", "Opening", "Lock",
		"Glass Width (mm)", "Glass Height (mm)",
		"Top Left", "Top Right", "Top Lock", "Bottom Lock",
	}
	if err := writeRow(f, "Panels", 1, headers); err != nil {
		return err
	}

	rowNum := 2
	for _, e := range edges {
		idx := e.SideNumber - 1
		if idx < 0 || idx >= len(p.EdgeConfigs) {
			continue
		}
		panels := p.EdgeConfigs[idx].Panels
		for i, fit := range e.PanelFittings {
			if i >= len(panels) {
				break
			}
			row := []interface{}{
				e.SideNumber, panels[i].Name, panels[i].Length,
				string(panels[i].Opening), string(panels[i].Lock),
				fit.GlassWidth, fit.GlassHeight,
				string(fit.TopLeft), string(fit.TopRight),
				string(fit.TopLock), string(fit.BottomLock),
			}
			if err := writeRowValues(f, "Panels", rowNum, row); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}

func writeTotalsSheet(f *excelize.File, p model.Project, edges []model.ComputedEdgeData) error {
	glass := model.CalculateGlassEstimate(edges, 10, 0)
	sealing := model.CalculateSealing(edges, p.FrameHeight, 10)

	rows := [][]interface{}{
		{"Project", p.Name},
		{"Frame Height (mm)", p.FrameHeight},
		{"Glass Panes", glass.PanelCount},
		{"Glass Area (m2)", glass.TotalGlassSqM},
		{"Glass Incl. Waste (m2)", glass.SqMWithWaste},
		{"Brush Seal (m)", sealing.TotalLinearM},
		{"Brush Seal Incl. Waste (m)", sealing.TotalWithWasteM},
	}
	for i, row := range rows {
		if err := writeRowValues(f, "Totals", i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	converted := make([]interface{}, len(values))
	for i, v := range values {
		converted[i] = v
	}
	return writeRowValues(f, sheet, row, converted)
}

func writeRowValues(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
