package model

// Fitting is a named hardware fitting mounted at a panel corner.
type Fitting string

const (
	FittingNone              Fitting = ""
	FittingMeetingLockFemale Fitting = "meeting_lock_female"
	FittingMeetingLockMale   Fitting = "meeting_lock_male"
	FittingEndLockFemale     Fitting = "end_lock_female"
	FittingEndLockMale       Fitting = "end_lock_male"
	Fitting90LockFemale      Fitting = "90_lock_female"
	Fitting90LockMale        Fitting = "90_lock_male"
	FittingVariableEndCap    Fitting = "variable_end_cap"
)

// fittingWidths maps each corner fitting to the horizontal space it consumes
// on the pane, in mm. Unmapped fittings consume nothing.
var fittingWidths = map[Fitting]float64{
	FittingMeetingLockFemale: 17.0,
	FittingMeetingLockMale:   17.0,
	FittingEndLockFemale:     23.5,
	FittingEndLockMale:       23.5,
	Fitting90LockFemale:      26.0,
	Fitting90LockMale:        26.0,
	FittingVariableEndCap:    20.0,
}

// FittingWidth returns the pane width consumed by a fitting, 0 if unmapped.
func FittingWidth(f Fitting) float64 {
	return fittingWidths[f]
}

// LockHardware is a panel-level locking device, as opposed to the corner
// fittings that join neighbouring panels.
type LockHardware string

const (
	LockHardwareNone           LockHardware = ""
	LockHardwareDoubleOverlock LockHardware = "double_overlock"
	LockHardwareSingleOverlock LockHardware = "single_overlock"
	LockHardwareTurnLock       LockHardware = "turn_lock"
	LockHardwareTurnLockLeft   LockHardware = "turn_lock_left"
	LockHardwareDLeft          LockHardware = "d_lock_left"
	LockHardwareDRight         LockHardware = "d_lock_right"
)

// PanelFittingResult is the derived, read-only hardware classification for
// one panel.
type PanelFittingResult struct {
	PanelID     string       `json:"panel_id"`
	TopLeft     Fitting      `json:"top_left"`
	TopRight    Fitting      `json:"top_right"`
	BottomLeft  Fitting      `json:"bottom_left"`
	BottomRight Fitting      `json:"bottom_right"`
	TopLock     LockHardware `json:"top_lock"`
	BottomLock  LockHardware `json:"bottom_lock"`
	GlassWidth  float64      `json:"glass_width"`  // mm, pane width net of corner fittings
	GlassHeight float64      `json:"glass_height"` // mm, pane height net of the frame rails
}

// CutLengths holds the four manufacturing cut lengths for the aluminum rail
// profiles bounding a glazed edge. The legacy Swedish profile names are kept
// as the domain vocabulary.
type CutLengths struct {
	Underskena   float64 `json:"underskena"`    // bottom rail
	Overskena    float64 `json:"overskena"`     // top rail
	Overhallare  float64 `json:"overhallare"`   // top retainer
	CoverProfile float64 `json:"cover_profile"` // cover profile
}

// ComputedEdgeData is the aggregate computed record for one edge. It is
// recomputed from scratch on every query and never cached by the engine.
type ComputedEdgeData struct {
	SideNumber           int                  `json:"side_number"`
	EdgeLength           float64              `json:"edge_length"`
	StartAngle           float64              `json:"start_angle"`
	EndAngle             float64              `json:"end_angle"`
	StartConnectedToWall bool                 `json:"start_connected_to_wall"`
	EndConnectedToWall   bool                 `json:"end_connected_to_wall"`
	ProfileOffsetLeft    float64              `json:"profile_offset_left"`
	ProfileOffsetRight   float64              `json:"profile_offset_right"`
	TotalModuleLength    float64              `json:"total_module_length"`
	SpelGuide            float64              `json:"spel_guide"` // signed residual gap, diagnostic
	CutLengths           CutLengths           `json:"cut_lengths"`
	PanelFittings        []PanelFittingResult `json:"panel_fittings"`
}
