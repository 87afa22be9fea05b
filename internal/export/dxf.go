package export

import (
	"fmt"

	"github.com/piwi3910/GlazeCut/internal/geometry"
	"github.com/piwi3910/GlazeCut/internal/model"
	"github.com/yofu/dxf"
)

// glazingLineInset is how far the drawn glazing line sits inside the guide,
// and how much it is shortened at each open end, in mm.
const glazingLineInset = 45.0

// ExportDXF writes a plan view of the project to a DXF file: the guide
// polyline on one layer and the inset glazing line on another, so the
// drawing can be overlaid on the architect's floor plan.
func ExportDXF(path string, p model.Project) error {
	if p.Guide.EdgeCount() == 0 {
		return fmt.Errorf("no guide edges to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("GUIDE", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for i := 0; i < len(p.Guide)-1; i++ {
		a, b := p.Guide[i], p.Guide[i+1]
		if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return err
		}
	}

	glazing := geometry.CalculateOffsetPoints([]model.Point2D(p.Guide), glazingLineInset, glazingLineInset, glazingLineInset)
	if len(glazing) >= 2 {
		if _, err := d.AddLayer("GLAZING", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return err
		}
		for i := 0; i < len(glazing)-1; i++ {
			a, b := glazing[i], glazing[i+1]
			if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
				return err
			}
		}
	}

	return d.SaveAs(path)
}
