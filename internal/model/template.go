package model

import (
	"time"

	"github.com/google/uuid"
)

// GuideTemplate represents a reusable balcony footprint: a guide polyline and
// the matching per-edge classifications, but no panels or computed results.
type GuideTemplate struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   string      `json:"created_at"`
	Guide       Guide       `json:"guide"`
	EdgeClasses []EdgeClass `json:"edge_classes"`
}

// NewGuideTemplate creates a template from the given guide and edge configs.
// Panels are intentionally excluded; a template captures geometry only.
func NewGuideTemplate(name, description string, guide Guide, configs []EdgeConfig) GuideTemplate {
	classes := make([]EdgeClass, len(configs))
	for i, c := range configs {
		classes[i] = c.Class
	}
	return GuideTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Guide:       append(Guide{}, guide...),
		EdgeClasses: classes,
	}
}

// ToProject creates a fresh Project from this template. Edge configs are
// rebuilt with empty panel lists so the host can auto-generate or hand-edit.
func (t GuideTemplate) ToProject(projectName string) Project {
	p := NewProject()
	p.Name = projectName
	p.Guide = append(Guide{}, t.Guide...)
	p.SyncEdgeConfigs()
	for i := range p.EdgeConfigs {
		if i < len(t.EdgeClasses) {
			p.EdgeConfigs[i].Class = t.EdgeClasses[i]
		}
	}
	return p
}

// BuiltinTemplates are the stock balcony footprints offered for new projects.
// All dimensions in mm; glazing on every edge unless noted.
var BuiltinTemplates = []GuideTemplate{
	{
		ID:          "straight",
		Name:        "Straight",
		Description: "Single straight glazed run between two walls",
		Guide:       Guide{{X: 0, Y: 0}, {X: 3000, Y: 0}},
		EdgeClasses: []EdgeClass{EdgeGlazing},
	},
	{
		ID:          "l-shape",
		Name:        "L-Shape",
		Description: "Corner balcony, two glazed runs at 90 degrees",
		Guide:       Guide{{X: 0, Y: 0}, {X: 3000, Y: 0}, {X: 3000, Y: 1500}},
		EdgeClasses: []EdgeClass{EdgeGlazing, EdgeGlazing},
	},
	{
		ID:          "u-shape",
		Name:        "U-Shape",
		Description: "Protruding balcony, glazed front with two glazed sides",
		Guide:       Guide{{X: 0, Y: 0}, {X: 0, Y: 1400}, {X: 3200, Y: 1400}, {X: 3200, Y: 0}},
		EdgeClasses: []EdgeClass{EdgeGlazing, EdgeGlazing, EdgeGlazing},
	},
}

// GetTemplate returns a builtin template by ID, or false if not found.
func GetTemplate(id string) (GuideTemplate, bool) {
	for _, t := range BuiltinTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return GuideTemplate{}, false
}
