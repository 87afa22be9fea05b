package model

// GlazingSpec holds the manufacturing constants for a profile system. The
// engine functions take a GlazingSpec as a plain parameter so the constants
// stay swappable for testing or alternate profile systems; there is no hidden
// global state.
type GlazingSpec struct {
	// Corner offset model
	ZeroAngleOffset         float64 `json:"zero_angle_offset"`          // mm pull-back at a straight run or wall butt-joint
	ConvexFactor            float64 `json:"convex_factor"`              // scale for convex glazing corners
	ConcaveFactor           float64 `json:"concave_factor"`             // scale for concave glazing corners
	CornerAddend            float64 `json:"corner_addend"`              // mm added to both corner formulas
	WallSquareOffset        float64 `json:"wall_square_offset"`         // mm at a square wall junction (88..99 deg)
	WallSquareProfileOffset float64 `json:"wall_square_profile_offset"` // profile pull-back at a square wall junction

	// Panel sizing
	MaxPanelWidth      float64 `json:"max_panel_width"`      // mm, widest single panel
	FreeWidthThreshold float64 `json:"free_width_threshold"` // mm, below this average the split is free-width
	MinPanelLength     float64 `json:"min_panel_length"`     // mm, never generate a shorter panel
	ShortEdgeThreshold float64 `json:"short_edge_threshold"` // mm, below this the edge gets one degenerate panel
	MiddleOffset       float64 `json:"middle_offset"`        // mm per side at an interior panel boundary
	PassrutaOffset     float64 `json:"passruta_offset"`      // mm per side next to a fixed pane
	SplitTolerance     float64 `json:"split_tolerance"`      // mm, most negative acceptable split score

	// Cut length rail distances
	OverskenaDistance    float64 `json:"overskena_distance"`     // mm, top rail miter distance
	OverhallareDistance  float64 `json:"overhallare_distance"`   // mm, top retainer miter distance
	CoverProfileDistance float64 `json:"cover_profile_distance"` // mm, cover profile miter distance
	WallBonus            float64 `json:"wall_bonus"`             // mm added to the cover profile per wall-butt end

	// Glass sizing
	FrameHeightDeduction float64 `json:"frame_height_deduction"` // mm removed from frame height for the glass pane
}

// DefaultGlazingSpec returns the constants of the standard profile system.
func DefaultGlazingSpec() GlazingSpec {
	return GlazingSpec{
		ZeroAngleOffset:         46.5,
		ConvexFactor:            25.5,
		ConcaveFactor:           18.5,
		CornerAddend:            21.0,
		WallSquareOffset:        56.5,
		WallSquareProfileOffset: -14.0,

		MaxPanelWidth:      700,
		FreeWidthThreshold: 400,
		MinPanelLength:     100,
		ShortEdgeThreshold: 50,
		MiddleOffset:       2,
		PassrutaOffset:     6,
		SplitTolerance:     -5,

		OverskenaDistance:    11.0,
		OverhallareDistance:  25.0,
		CoverProfileDistance: 32.5,
		WallBonus:            25.0,

		FrameHeightDeduction: 94.0,
	}
}

// StandardPanelWidths is the catalog ladder of manufacturable panel widths in
// mm. The panel generator snaps to and searches over these values.
var StandardPanelWidths = []float64{430, 460, 490, 520, 550, 580, 610, 640, 670, 700}

// Oblique wall junction interpolation tables, ported from the legacy tooling
// tolerances. Angles are sorted descending; the offset model interpolates
// linearly between rows and clamps outside the domain.
var (
	WallJunctionAngles         = []float64{157, 150, 140, 130, 120, 110, 99}
	WallJunctionWallOffsets    = []float64{20, 18, 15, 11.5, 8, 4, 0}
	WallJunctionGlazingOffsets = []float64{26, 23, 19, 14.5, 10, 5, 0}
)
