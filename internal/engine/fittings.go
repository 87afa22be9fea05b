package engine

import (
	"math"

	"github.com/piwi3910/GlazeCut/internal/geometry"
	"github.com/piwi3910/GlazeCut/internal/model"
)

// A 90-degree end lock applies inside this open band around a right angle.
const (
	ninetyLockMin = 86.0
	ninetyLockMax = 94.0
)

// fittingContext carries the per-edge facts the classification rules read.
type fittingContext struct {
	panels     []model.Panel
	startAngle float64
	endAngle   float64
	leftCount  int // panels opening '<' on this edge
	rightCount int // panels opening '>' on this edge
}

// fittingRule mutates the working result for panel i. Rules run in a fixed
// priority order; later rules override earlier ones, which makes the legacy
// if/else override chain auditable rule by rule.
type fittingRule func(ctx *fittingContext, i int, r *model.PanelFittingResult)

var fittingRules = []fittingRule{
	ruleMeetingDefaults,
	ruleEdgeStart,
	ruleEdgeEnd,
	ruleFixedNeighbours,
	ruleSymbolLocks,
	ruleUniqueDirection,
}

// CalculatePanelFittings assigns corner lock fittings and panel-level lock
// hardware to every panel on an edge, and derives the net glass size.
func CalculatePanelFittings(spec model.GlazingSpec, panels []model.Panel, startAngle, endAngle, frameHeight float64) []model.PanelFittingResult {
	results := make([]model.PanelFittingResult, len(panels))
	if len(panels) == 0 {
		return results
	}

	ctx := &fittingContext{
		panels:     panels,
		startAngle: startAngle,
		endAngle:   endAngle,
	}
	for _, p := range panels {
		switch p.Opening {
		case model.OpeningLeft:
			ctx.leftCount++
		case model.OpeningRight:
			ctx.rightCount++
		}
	}

	for i := range panels {
		r := &results[i]
		r.PanelID = panels[i].ID
		for _, rule := range fittingRules {
			rule(ctx, i, r)
		}
		r.GlassWidth = geometry.Round1(panels[i].Length - model.FittingWidth(r.TopLeft) - model.FittingWidth(r.TopRight))
		r.GlassHeight = geometry.Round1(frameHeight - spec.FrameHeightDeduction)
	}
	return results
}

// ruleMeetingDefaults puts a meeting lock pair at every boundary: female on
// the left corner, male on the right.
func ruleMeetingDefaults(ctx *fittingContext, i int, r *model.PanelFittingResult) {
	r.TopLeft = model.FittingMeetingLockFemale
	r.BottomLeft = model.FittingMeetingLockFemale
	r.TopRight = model.FittingMeetingLockMale
	r.BottomRight = model.FittingMeetingLockMale
}

// ruleEdgeStart replaces the first panel's left corner with the edge-start
// lock selected by the start angle.
func ruleEdgeStart(ctx *fittingContext, i int, r *model.PanelFittingResult) {
	if i != 0 {
		return
	}
	f := edgeLockFor(ctx.startAngle, model.FittingEndLockFemale, model.Fitting90LockFemale)
	r.TopLeft = f
	r.BottomLeft = f
}

// ruleEdgeEnd is the symmetric rule for the last panel's right corner.
func ruleEdgeEnd(ctx *fittingContext, i int, r *model.PanelFittingResult) {
	if i != len(ctx.panels)-1 {
		return
	}
	f := edgeLockFor(ctx.endAngle, model.FittingEndLockMale, model.Fitting90LockMale)
	r.TopRight = f
	r.BottomRight = f
}

// edgeLockFor selects the hardware for an edge-terminal corner.
func edgeLockFor(angle float64, endLock, ninetyLock model.Fitting) model.Fitting {
	abs := math.Abs(angle)
	switch {
	case angle == 0:
		return endLock
	case abs > ninetyLockMin && abs < ninetyLockMax:
		return ninetyLock
	default:
		return model.FittingVariableEndCap
	}
}

// ruleFixedNeighbours forces a variable end cap on any boundary that touches
// a fixed pane. Fixed glass is incompatible with snap-fit meeting hardware.
func ruleFixedNeighbours(ctx *fittingContext, i int, r *model.PanelFittingResult) {
	panels := ctx.panels
	if i > 0 {
		if panels[i-1].Opening == model.OpeningFixed ||
			(panels[i].Opening == model.OpeningFixed && panels[i-1].Opening != model.OpeningFixed) {
			r.TopLeft = model.FittingVariableEndCap
			r.BottomLeft = model.FittingVariableEndCap
		}
	}
	if i < len(panels)-1 {
		if panels[i+1].Opening == model.OpeningFixed ||
			(panels[i].Opening == model.OpeningFixed && panels[i+1].Opening != model.OpeningFixed) {
			r.TopRight = model.FittingVariableEndCap
			r.BottomRight = model.FittingVariableEndCap
		}
	}
}

// ruleSymbolLocks maps the panel's lock symbol to its default hardware.
func ruleSymbolLocks(ctx *fittingContext, i int, r *model.PanelFittingResult) {
	switch ctx.panels[i].Lock {
	case model.LockDouble:
		r.TopLock = model.LockHardwareDoubleOverlock
		r.BottomLock = model.LockHardwareTurnLock
	case model.LockSingle:
		r.TopLock = model.LockHardwareSingleOverlock
		r.BottomLock = model.LockHardwareTurnLock
	default:
		r.TopLock = model.LockHardwareNone
		r.BottomLock = model.LockHardwareNone
	}
}

// ruleUniqueDirection overrides the symbol default when a panel is the only
// one opening in its direction on the edge.
func ruleUniqueDirection(ctx *fittingContext, i int, r *model.PanelFittingResult) {
	switch ctx.panels[i].Opening {
	case model.OpeningLeft:
		if ctx.leftCount == 1 {
			r.TopLock = model.LockHardwareDLeft
			r.BottomLock = model.LockHardwareTurnLockLeft
		}
	case model.OpeningRight:
		if ctx.rightCount == 1 {
			r.TopLock = model.LockHardwareDRight
			r.BottomLock = model.LockHardwareTurnLock
		}
	}
}
