package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestGuideEdgeCount(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{5, 4},
	}
	for _, tt := range tests {
		g := make(Guide, tt.points)
		if got := g.EdgeCount(); got != tt.want {
			t.Errorf("EdgeCount with %d points = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestGuideEdge(t *testing.T) {
	g := Guide{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 104}}

	e, ok := g.Edge(0)
	if !ok {
		t.Fatal("expected edge 0 to exist")
	}
	if e.Index != 0 || e.Length != 5 {
		t.Errorf("edge 0 = %+v, want index 0 length 5", e)
	}

	e, ok = g.Edge(1)
	if !ok {
		t.Fatal("expected edge 1 to exist")
	}
	if e.Length != 100 {
		t.Errorf("edge 1 length = %v, want 100", e.Length)
	}

	if _, ok := g.Edge(-1); ok {
		t.Error("edge -1 should not exist")
	}
	if _, ok := g.Edge(2); ok {
		t.Error("edge 2 should not exist")
	}
}

func TestNewPanelDefaults(t *testing.T) {
	p := NewPanel("Panel 1", 580)

	if len(p.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", p.ID)
	}
	if p.Name != "Panel 1" {
		t.Errorf("name = %q", p.Name)
	}
	if p.Length != 580 {
		t.Errorf("length = %v", p.Length)
	}
	if p.Opening != OpeningRight {
		t.Errorf("opening = %q, want %q", p.Opening, OpeningRight)
	}
	if p.Lock != LockNone {
		t.Errorf("lock = %q, want %q", p.Lock, LockNone)
	}

	q := NewPanel("Panel 2", 580)
	if p.ID == q.ID {
		t.Error("panel IDs should be unique")
	}
}

func TestNewEdgeConfig(t *testing.T) {
	c := NewEdgeConfig()
	if c.Class != EdgeGlazing {
		t.Errorf("class = %q, want glazing", c.Class)
	}
	if c.Panels == nil || len(c.Panels) != 0 {
		t.Errorf("panels = %v, want empty non-nil", c.Panels)
	}
}

func TestNewProject(t *testing.T) {
	p := NewProject()
	if p.Name != "Untitled" {
		t.Errorf("name = %q", p.Name)
	}
	if p.FrameHeight != 2000 {
		t.Errorf("frame height = %v, want 2000", p.FrameHeight)
	}
	if p.Spec != DefaultGlazingSpec() {
		t.Error("spec should be the defaults")
	}
}

func TestSyncEdgeConfigs_Grows(t *testing.T) {
	p := NewProject()
	p.Guide = Guide{{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 1000, Y: 1000}}

	p.SyncEdgeConfigs()
	if len(p.EdgeConfigs) != 2 {
		t.Fatalf("expected 2 configs, got %d", len(p.EdgeConfigs))
	}
}

func TestSyncEdgeConfigs_ShrinksKeepingPrefix(t *testing.T) {
	p := NewProject()
	p.Guide = Guide{{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 1000, Y: 1000}}
	p.SyncEdgeConfigs()
	p.EdgeConfigs[0].Class = EdgeWall

	p.Guide = p.Guide[:2]
	p.SyncEdgeConfigs()

	if len(p.EdgeConfigs) != 1 {
		t.Fatalf("expected 1 config, got %d", len(p.EdgeConfigs))
	}
	if p.EdgeConfigs[0].Class != EdgeWall {
		t.Error("surviving config should keep its classification")
	}
}

func TestProjectJSONRoundTrip(t *testing.T) {
	p := NewProject()
	p.Name = "Balcony 12"
	p.Guide = Guide{{X: 0, Y: 0}, {X: 3000, Y: 0}}
	p.SyncEdgeConfigs()
	p.EdgeConfigs[0].Panels = []Panel{NewPanel("Panel 1", 580)}
	p.EdgeConfigs[0].Panels[0].Opening = OpeningLeft
	p.EdgeConfigs[0].Panels[0].Lock = LockDouble

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Project
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Name != p.Name {
		t.Errorf("name = %q", got.Name)
	}
	if len(got.Guide) != 2 || got.Guide[1].X != 3000 {
		t.Errorf("guide = %v", got.Guide)
	}
	panel := got.EdgeConfigs[0].Panels[0]
	if panel.Opening != OpeningLeft || panel.Lock != LockDouble {
		t.Errorf("panel symbols lost: %+v", panel)
	}
}

func TestDefaultGlazingSpecValues(t *testing.T) {
	s := DefaultGlazingSpec()

	if s.ZeroAngleOffset != 46.5 {
		t.Errorf("ZeroAngleOffset = %v", s.ZeroAngleOffset)
	}
	if s.MaxPanelWidth != 700 {
		t.Errorf("MaxPanelWidth = %v", s.MaxPanelWidth)
	}
	if s.MinPanelLength != 100 {
		t.Errorf("MinPanelLength = %v", s.MinPanelLength)
	}
	if s.FrameHeightDeduction != 94 {
		t.Errorf("FrameHeightDeduction = %v", s.FrameHeightDeduction)
	}
}

func TestStandardPanelWidthsLadder(t *testing.T) {
	if len(StandardPanelWidths) == 0 {
		t.Fatal("ladder is empty")
	}
	if StandardPanelWidths[0] != 430 {
		t.Errorf("ladder starts at %v, want 430", StandardPanelWidths[0])
	}
	last := StandardPanelWidths[len(StandardPanelWidths)-1]
	if last != 700 {
		t.Errorf("ladder ends at %v, want 700", last)
	}
	for i := 1; i < len(StandardPanelWidths); i++ {
		if StandardPanelWidths[i]-StandardPanelWidths[i-1] != 30 {
			t.Errorf("ladder step at %d is not 30", i)
		}
	}
}

func TestWallJunctionTablesAligned(t *testing.T) {
	if len(WallJunctionAngles) != len(WallJunctionWallOffsets) {
		t.Error("wall offset table length mismatch")
	}
	if len(WallJunctionAngles) != len(WallJunctionGlazingOffsets) {
		t.Error("glazing offset table length mismatch")
	}
	for i := 1; i < len(WallJunctionAngles); i++ {
		if WallJunctionAngles[i] >= WallJunctionAngles[i-1] {
			t.Error("angles must be strictly descending")
		}
	}
}

func TestFittingWidth(t *testing.T) {
	tests := []struct {
		f    Fitting
		want float64
	}{
		{FittingMeetingLockFemale, 17.0},
		{FittingMeetingLockMale, 17.0},
		{FittingEndLockFemale, 23.5},
		{FittingEndLockMale, 23.5},
		{Fitting90LockFemale, 26.0},
		{Fitting90LockMale, 26.0},
		{FittingVariableEndCap, 20.0},
		{FittingNone, 0},
		{Fitting("unknown"), 0},
	}
	for _, tt := range tests {
		if got := FittingWidth(tt.f); got != tt.want {
			t.Errorf("FittingWidth(%q) = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestCalculateGlassEstimate(t *testing.T) {
	edges := []ComputedEdgeData{
		{
			PanelFittings: []PanelFittingResult{
				{GlassWidth: 500, GlassHeight: 2000},
				{GlassWidth: 500, GlassHeight: 2000},
			},
		},
		{PanelFittings: nil}, // wall edge
	}

	est := CalculateGlassEstimate(edges, 10, 100)

	if est.PanelCount != 2 {
		t.Errorf("panel count = %d, want 2", est.PanelCount)
	}
	if est.TotalGlassSqM != 2.0 {
		t.Errorf("total sqm = %v, want 2.0", est.TotalGlassSqM)
	}
	if est.SqMWithWaste != 2.2 {
		t.Errorf("sqm with waste = %v, want 2.2", est.SqMWithWaste)
	}
	if math.Abs(est.EstimatedCost-220) > 1e-9 {
		t.Errorf("cost = %v, want 220", est.EstimatedCost)
	}
}

func TestCalculateGlassEstimate_SkipsNonPositivePanes(t *testing.T) {
	edges := []ComputedEdgeData{
		{
			PanelFittings: []PanelFittingResult{
				{GlassWidth: 0, GlassHeight: 2000},
				{GlassWidth: 500, GlassHeight: -5},
				{GlassWidth: 400, GlassHeight: 1000},
			},
		},
	}

	est := CalculateGlassEstimate(edges, 0, 0)
	if est.PanelCount != 1 {
		t.Errorf("panel count = %d, want 1", est.PanelCount)
	}
}

func TestCalculateSealing(t *testing.T) {
	edges := []ComputedEdgeData{
		{PanelFittings: make([]PanelFittingResult, 3)},
		{PanelFittings: nil},
		{PanelFittings: make([]PanelFittingResult, 2)},
	}

	s := CalculateSealing(edges, 2000, 10)

	if s.PanelCount != 5 {
		t.Errorf("panel count = %d, want 5", s.PanelCount)
	}
	if s.StripCount != 10 {
		t.Errorf("strip count = %d, want 10", s.StripCount)
	}
	if s.TotalLinearMM != 20000 {
		t.Errorf("total mm = %v, want 20000", s.TotalLinearMM)
	}
	if s.TotalWithWasteMM != 22000 {
		t.Errorf("with waste = %v, want 22000", s.TotalWithWasteMM)
	}
}
