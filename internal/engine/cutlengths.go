package engine

import (
	"math"

	"github.com/piwi3910/GlazeCut/internal/geometry"
	"github.com/piwi3910/GlazeCut/internal/model"
)

// OffsetDueToMiter returns how much a rail at the given distance from the
// glazing line must lengthen (or shorten, for concave corners) to meet a
// mitered cut at the given corner angle. A zero angle is a square butt cut.
func OffsetDueToMiter(distance, angle float64) float64 {
	if angle == 0 {
		return 0
	}
	return distance * math.Tan((180-angle)/2*math.Pi/180)
}

// CalculateCutLengths derives the four rail cut lengths for an edge. The
// bottom rail (underskena) runs exactly the edge length adjusted by the
// profile offsets; the remaining rails sit at fixed distances from the
// glazing line and pick up a miter correction per corner. The cover profile
// additionally gains a wall bonus at every wall-butt (zero angle) end.
func CalculateCutLengths(spec model.GlazingSpec, edgeLength, profileOffsetLeft, profileOffsetRight, startAngle, endAngle float64) model.CutLengths {
	underskena := edgeLength + profileOffsetLeft + profileOffsetRight

	overskena := underskena +
		OffsetDueToMiter(spec.OverskenaDistance, startAngle) +
		OffsetDueToMiter(spec.OverskenaDistance, endAngle)

	overhallare := underskena +
		OffsetDueToMiter(spec.OverhallareDistance, startAngle) +
		OffsetDueToMiter(spec.OverhallareDistance, endAngle)

	coverProfile := underskena +
		OffsetDueToMiter(spec.CoverProfileDistance, startAngle) +
		OffsetDueToMiter(spec.CoverProfileDistance, endAngle)
	if startAngle == 0 {
		coverProfile += spec.WallBonus
	}
	if endAngle == 0 {
		coverProfile += spec.WallBonus
	}

	return model.CutLengths{
		Underskena:   geometry.Round1(underskena),
		Overskena:    geometry.Round1(overskena),
		Overhallare:  geometry.Round1(overhallare),
		CoverProfile: geometry.Round1(coverProfile),
	}
}
