package model

import (
	"math"

	"github.com/google/uuid"
)

// Point2D represents a 2D coordinate in mm.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Guide is the ordered, non-closing polyline describing the perimeter being
// glazed. Consecutive points define edges; edge i always spans points i and i+1.
type Guide []Point2D

// EdgeCount returns the number of edges defined by the guide.
func (g Guide) EdgeCount() int {
	if len(g) < 2 {
		return 0
	}
	return len(g) - 1
}

// Edge represents one segment of the guide. Edges are never stored; they are
// always derived from two consecutive guide points.
type Edge struct {
	Index  int     `json:"index"`
	Start  Point2D `json:"start"`
	End    Point2D `json:"end"`
	Length float64 `json:"length"`
}

// Edge returns the derived edge at the given index, or false when the index
// is out of range.
func (g Guide) Edge(i int) (Edge, bool) {
	if i < 0 || i >= g.EdgeCount() {
		return Edge{}, false
	}
	dx := g[i+1].X - g[i].X
	dy := g[i+1].Y - g[i].Y
	return Edge{
		Index:  i,
		Start:  g[i],
		End:    g[i+1],
		Length: math.Sqrt(dx*dx + dy*dy),
	}, true
}

// Opening is the opening direction of a panel.
type Opening string

const (
	OpeningRight Opening = ">" // Slides open to the right
	OpeningLeft  Opening = "<" // Slides open to the left
	OpeningFixed Opening = "X" // Fixed pane (passruta), does not open
)

// LockSymbol is the user-facing lock marking on a panel.
type LockSymbol string

const (
	LockNone   LockSymbol = "-"
	LockSingle LockSymbol = "|"
	LockDouble LockSymbol = "||"
)

// Panel represents one glazing unit (pane + frame) placed along an edge.
// Panels are user- or generator-authored and mutable by the host; the engine
// only reads them except when explicitly asked to regenerate.
type Panel struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Length      float64    `json:"length"` // mm
	Opening     Opening    `json:"opening"`
	Lock        LockSymbol `json:"lock"`
	OffsetLeft  float64    `json:"offset_left"`  // mm pull-back at the left boundary
	OffsetRight float64    `json:"offset_right"` // mm pull-back at the right boundary
}

func NewPanel(name string, length float64) Panel {
	return Panel{
		ID:      uuid.New().String()[:8],
		Name:    name,
		Length:  length,
		Opening: OpeningRight,
		Lock:    LockNone,
	}
}

// EdgeClass classifies an edge as a solid wall or a glazed run.
type EdgeClass string

const (
	EdgeWall    EdgeClass = "wall"
	EdgeGlazing EdgeClass = "glazing"
)

// EdgeConfig is the per-edge persisted state. The host must keep one
// EdgeConfig per edge (len(configs) == len(guide)-1). A wall edge always
// carries an empty panel list.
type EdgeConfig struct {
	Class  EdgeClass `json:"status"`
	Panels []Panel   `json:"panels"`
}

// NewEdgeConfig returns a glazing edge config with no panels.
func NewEdgeConfig() EdgeConfig {
	return EdgeConfig{Class: EdgeGlazing, Panels: []Panel{}}
}

// Project ties everything together for save/load. The guide and edge configs
// are the externally-owned persisted state; everything computed from them is
// transient.
type Project struct {
	Name        string       `json:"name"`
	Guide       Guide        `json:"guide"`
	EdgeConfigs []EdgeConfig `json:"edge_configs"`
	FrameHeight float64      `json:"frame_height"` // mm
	Spec        GlazingSpec  `json:"spec"`
}

func NewProject() Project {
	return Project{
		Name:        "Untitled",
		Guide:       Guide{},
		EdgeConfigs: []EdgeConfig{},
		FrameHeight: 2000,
		Spec:        DefaultGlazingSpec(),
	}
}

// SyncEdgeConfigs grows or shrinks the edge config list to match the guide.
// Existing configs keep their classification and panels.
func (p *Project) SyncEdgeConfigs() {
	want := p.Guide.EdgeCount()
	for len(p.EdgeConfigs) < want {
		p.EdgeConfigs = append(p.EdgeConfigs, NewEdgeConfig())
	}
	if len(p.EdgeConfigs) > want {
		p.EdgeConfigs = p.EdgeConfigs[:want]
	}
}
