// GlazeCut: Balcony Glazing Layout Calculator
//
// Computes panel layouts, lock hardware, and rail cut lengths from a
// user-drawn balcony footprint, and exports manufacturing paperwork.
//
// Build:
//   go build -o glazecut ./cmd/glazecut
//
// Usage:
//   glazecut -new l-shape -project balcony.json
//   glazecut -project balcony.json -autogen
//   glazecut -project balcony.json -pdf layout.pdf -xlsx cutlist.xlsx
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/piwi3910/GlazeCut/internal/engine"
	"github.com/piwi3910/GlazeCut/internal/export"
	"github.com/piwi3910/GlazeCut/internal/importer"
	"github.com/piwi3910/GlazeCut/internal/model"
	"github.com/piwi3910/GlazeCut/internal/project"
)

func main() {
	var (
		projectPath = flag.String("project", "", "path to the project JSON file")
		newTemplate = flag.String("new", "", "create a new project from a builtin template (straight, l-shape, u-shape)")
		importDXF   = flag.String("import-dxf", "", "replace the project guide with a polyline from a DXF file")
		importCSV   = flag.String("import-csv", "", "replace the project guide with points from a CSV file")
		autogen     = flag.Bool("autogen", false, "regenerate panels for every glazing edge")
		evenSplit   = flag.Bool("even", false, "with -autogen, distribute free glass widths evenly")
		pdfPath     = flag.String("pdf", "", "write a PDF drawing sheet to this path")
		xlsxPath    = flag.String("xlsx", "", "write an Excel cut list to this path")
		dxfPath     = flag.String("dxf", "", "write a DXF plan drawing to this path")
		labelsPath  = flag.String("labels", "", "write QR panel labels PDF to this path")
	)
	flag.Parse()

	if *projectPath == "" {
		fmt.Fprintln(os.Stderr, "glazecut: -project is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*projectPath, *newTemplate, *importDXF, *importCSV, *autogen, *evenSplit, *pdfPath, *xlsxPath, *dxfPath, *labelsPath); err != nil {
		fmt.Fprintf(os.Stderr, "glazecut: %v\n", err)
		os.Exit(1)
	}
}

func run(projectPath, newTemplate, importDXF, importCSV string, autogen, evenSplit bool, pdfPath, xlsxPath, dxfPath, labelsPath string) error {
	p, err := loadOrCreate(projectPath, newTemplate)
	if err != nil {
		return err
	}
	dirty := newTemplate != ""

	if importDXF != "" {
		result := importer.ImportGuideDXF(importDXF)
		if err := applyImport(&p, result); err != nil {
			return err
		}
		dirty = true
	}
	if importCSV != "" {
		result := importer.ImportGuideCSV(importCSV)
		if err := applyImport(&p, result); err != nil {
			return err
		}
		dirty = true
	}

	if autogen {
		for i := range p.EdgeConfigs {
			p.EdgeConfigs[i].Panels = engine.AutoGenerateForEdge(p.Spec, p.Guide, p.EdgeConfigs, i, evenSplit)
		}
		dirty = true
	}

	if dirty {
		if err := project.SaveProject(projectPath, p); err != nil {
			return fmt.Errorf("saving project: %w", err)
		}
	}

	edges := engine.ComputeAllEdges(p.Spec, p.Guide, p.EdgeConfigs, p.FrameHeight)
	printCutList(p, edges)

	if pdfPath != "" {
		if err := export.ExportPDF(pdfPath, p, edges); err != nil {
			return fmt.Errorf("PDF export: %w", err)
		}
		fmt.Printf("wrote %s\n", pdfPath)
	}
	if xlsxPath != "" {
		if err := export.ExportExcel(xlsxPath, p, edges); err != nil {
			return fmt.Errorf("Excel export: %w", err)
		}
		fmt.Printf("wrote %s\n", xlsxPath)
	}
	if dxfPath != "" {
		if err := export.ExportDXF(dxfPath, p); err != nil {
			return fmt.Errorf("DXF export: %w", err)
		}
		fmt.Printf("wrote %s\n", dxfPath)
	}
	if labelsPath != "" {
		if err := export.ExportLabels(labelsPath, p, edges); err != nil {
			return fmt.Errorf("label export: %w", err)
		}
		fmt.Printf("wrote %s\n", labelsPath)
	}

	return nil
}

// loadOrCreate loads the project, or creates one from a builtin template
// when -new is given.
func loadOrCreate(path, templateID string) (model.Project, error) {
	if templateID != "" {
		t, ok := model.GetTemplate(templateID)
		if !ok {
			return model.Project{}, fmt.Errorf("unknown template %q", templateID)
		}
		return t.ToProject("Untitled"), nil
	}
	p, err := project.LoadProject(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("loading project: %w", err)
	}
	return p, nil
}

// applyImport replaces the project guide with an import result, printing
// warnings and failing on errors.
func applyImport(p *model.Project, result importer.ImportResult) error {
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		return fmt.Errorf("guide import failed")
	}
	p.Guide = result.Guide
	p.SyncEdgeConfigs()
	return nil
}

// printCutList writes a per-edge cut list to stdout.
func printCutList(p model.Project, edges []model.ComputedEdgeData) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Side\tLength\tPanels\tSpel\tUnderskena\tOverskena\tOverhallare\tCover\n")
	for _, e := range edges {
		fmt.Fprintf(w, "%d\t%.1f\t%d\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			e.SideNumber, e.EdgeLength, len(e.PanelFittings), e.SpelGuide,
			e.CutLengths.Underskena, e.CutLengths.Overskena,
			e.CutLengths.Overhallare, e.CutLengths.CoverProfile)
	}
	w.Flush()

	glass := model.CalculateGlassEstimate(edges, 0, 0)
	fmt.Printf("\n%d panes, %.2f m² glass, frame height %.0f mm\n",
		glass.PanelCount, glass.TotalGlassSqM, p.FrameHeight)
}
