// Package engine implements the glazing layout calculations: the
// angle-dependent corner offset model, the panel auto-generator, the panel
// fitting classifier, the rail cut length calculator, and the per-edge
// aggregator that ties them together.
//
// Every function is a pure mapping from immutable inputs to freshly
// allocated outputs. The engine holds no state between calls, so the host
// may recompute on every edit without locks or memoization hazards.
package engine

import (
	"math"

	"github.com/piwi3910/GlazeCut/internal/geometry"
	"github.com/piwi3910/GlazeCut/internal/model"
)

// CornerOffset is the result of the edge offset model for one corner: how far
// the glazing module is pulled back from the raw edge endpoint, and how far
// the rail profiles shift relative to the module.
type CornerOffset struct {
	Offset        float64 `json:"offset"`
	ProfileOffset float64 `json:"profile_offset"`
}

// Square wall junction bounds in degrees. A wall-connected corner inside this
// band is treated as a plain 90-degree butt joint.
const (
	wallSquareMin = 88.0
	wallSquareMax = 99.0
	wallObliqueMax = 157.0
)

// CalculateOffset maps a corner turn angle and wall-connected flag to the
// corner offset pair. The branch order reproduces the legacy tooling rules:
//
//  1. angle 0: straight run or wall butt-joint, fixed offset, no profile shift
//  2. wall-connected square junction (|angle| in [88,99]): fixed constants
//  3. wall-connected oblique junction (|angle| in (99,157]): interpolated
//  4. convex glazing corner (angle > 0): miter formula, convex factor
//  5. concave glazing corner (angle < 0): miter formula, concave factor
//
// The wall flag is ignored for angle 0.
func CalculateOffset(spec model.GlazingSpec, angle float64, wallConnected bool) CornerOffset {
	if angle == 0 {
		return CornerOffset{Offset: spec.ZeroAngleOffset, ProfileOffset: 0}
	}

	abs := math.Abs(angle)

	if wallConnected && abs >= wallSquareMin && abs <= wallSquareMax {
		return CornerOffset{
			Offset:        spec.WallSquareOffset,
			ProfileOffset: spec.WallSquareProfileOffset,
		}
	}

	if wallConnected && abs > wallSquareMax && abs <= wallObliqueMax {
		glazing := geometry.InterpolateFromTable(abs, model.WallJunctionAngles, model.WallJunctionGlazingOffsets)
		return CornerOffset{
			Offset:        50.5 + 10 - glazing - 4,
			ProfileOffset: -10 + glazing - 4,
		}
	}

	factor := spec.ConvexFactor
	if angle < 0 {
		factor = spec.ConcaveFactor
	}
	miter := math.Tan((180 - angle) / 2 * math.Pi / 180)
	return CornerOffset{
		Offset:        miter*factor + spec.CornerAddend,
		ProfileOffset: 0,
	}
}

// WallJunctionWallOffset interpolates the wall-side pull-back column of the
// oblique junction table. The wall-side value does not enter the module
// offset formulas; it is reported for profile prep on the wall side.
func WallJunctionWallOffset(angle float64) float64 {
	return geometry.InterpolateFromTable(math.Abs(angle), model.WallJunctionAngles, model.WallJunctionWallOffsets)
}
